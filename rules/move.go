package rules

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Move is a transition between two positions. Every Move must come from
// LegalMoves on the position it is applied to; no independent legality
// check happens anywhere downstream.
type Move struct {
	From      Square
	To        Square
	Promotion Piece // NoPiece when not a promotion
	Captured  Piece // NoPiece when nothing is captured

	raw dragontoothmg.Move
}

// String renders the move in UCI notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	return m.raw.String()
}

// wrapMove attaches capture metadata by probing the board before the move
// is applied. A pawn stepping diagonally onto an empty square is an en
// passant capture.
func (p Position) wrapMove(raw dragontoothmg.Move) Move {
	m := Move{
		From:      raw.From(),
		To:        raw.To(),
		Promotion: Piece(raw.Promote()),
		raw:       raw,
	}
	if pc, _, ok := p.PieceAt(m.To); ok {
		m.Captured = pc
	} else if mover, _, _ := p.PieceAt(m.From); mover == Pawn && m.From%8 != m.To%8 {
		m.Captured = Pawn
	}
	return m
}

// ParseMove resolves a UCI move string against the legal moves of pos.
// Legality is membership: a string that names no generated move is
// rejected. A bare promotion letter may arrive separately from a UI, so
// promo (may be empty) is appended to 4-character input.
func ParseMove(pos Position, uci, promo string) (Move, bool) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	if len(uci) == 4 && promo != "" {
		uci += strings.ToLower(promo[:1])
	}
	for _, m := range pos.LegalMoves() {
		if m.String() == uci {
			return m, true
		}
	}
	return Move{}, false
}

// SAN renders a simple algebraic notation for a move legal in pos:
// piece letter, capture marker, destination, promotion suffix, and a
// check or mate suffix probed from the resulting position. Disambiguation
// between twin pieces is by originating square, which is always valid
// even where a file letter would do.
func SAN(pos Position, m Move) string {
	piece, _, _ := pos.PieceAt(m.From)

	var sb strings.Builder
	switch {
	case piece == King && m.To == m.From+2:
		sb.WriteString("O-O")
	case piece == King && m.From == m.To+2:
		sb.WriteString("O-O-O")
	default:
		if piece == Pawn {
			if m.Captured != NoPiece {
				sb.WriteByte('a' + byte(m.From%8))
				sb.WriteByte('x')
			}
		} else {
			sb.WriteString(pieceLetters[piece])
			if ambiguous(pos, m, piece) {
				sb.WriteString(SquareName(m.From))
			}
			if m.Captured != NoPiece {
				sb.WriteByte('x')
			}
		}
		sb.WriteString(SquareName(m.To))
		if m.Promotion != NoPiece {
			sb.WriteByte('=')
			sb.WriteString(pieceLetters[m.Promotion])
		}
	}

	next := pos.Apply(m)
	if next.IsCheckmate() {
		sb.WriteByte('#')
	} else if next.InCheck() {
		sb.WriteByte('+')
	}
	return sb.String()
}

func ambiguous(pos Position, m Move, piece Piece) bool {
	for _, other := range pos.LegalMoves() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if pc, _, _ := pos.PieceAt(other.From); pc == piece {
			return true
		}
	}
	return false
}

// Outcome classifies a position for the surrounding game loop.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Drawn
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	}
	return "*"
}

// GameOutcome maps a position to its result. In a checkmate position the
// winner is the side that just moved.
func GameOutcome(p Position) Outcome {
	switch {
	case p.IsCheckmate():
		if p.SideToMove() == White {
			return BlackWins
		}
		return WhiteWins
	case p.IsStalemate(), p.IsDraw():
		return Drawn
	}
	return Ongoing
}
