// Package rules adapts the dragontoothmg move generator to the surface the
// move-selection engine consumes: an immutable Position value, legal move
// enumeration, copy-on-apply simulation and terminal-state queries. All
// legality questions are answered here; the engine package trusts every
// Move it holds to have come from LegalMoves on the same Position.
package rules

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is a piece kind, aligned with dragontoothmg's numbering so board
// probes can be cast directly.
type Piece uint8

const (
	NoPiece Piece = Piece(dragontoothmg.Nothing)
	Pawn    Piece = Piece(dragontoothmg.Pawn)
	Knight  Piece = Piece(dragontoothmg.Knight)
	Bishop  Piece = Piece(dragontoothmg.Bishop)
	Rook    Piece = Piece(dragontoothmg.Rook)
	Queen   Piece = Piece(dragontoothmg.Queen)
	King    Piece = Piece(dragontoothmg.King)
)

var pieceLetters = [7]string{"", "", "N", "B", "R", "Q", "K"}

// Square indexes the board a1=0 .. h8=63.
type Square = uint8

// SquareName returns the coordinate name of sq, e.g. "e4".
func SquareName(sq Square) string {
	return string([]byte{'a' + sq%8, '1' + sq/8})
}

// Position is a complete snapshot of game state. It is a value type: Apply
// returns a fresh Position and never mutates its receiver, so one Position
// may be shared read-only across concurrent selections.
type Position struct {
	board dragontoothmg.Board
}

// Startpos returns the standard initial position.
func Startpos() Position {
	return Position{board: dragontoothmg.ParseFen(dragontoothmg.Startpos)}
}

// FromFEN parses a FEN record. dragontoothmg assumes well-formed input, so
// the shape is validated first and malformed records come back as errors.
func FromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("rules: malformed FEN %q: want at least 4 fields, got %d", fen, len(fields))
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("rules: malformed FEN %q: want 8 ranks, got %d", fen, len(ranks))
	}
	for _, r := range ranks {
		n := 0
		for _, ch := range r {
			switch {
			case ch >= '1' && ch <= '8':
				n += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				n++
			default:
				return Position{}, fmt.Errorf("rules: malformed FEN %q: bad piece char %q", fen, ch)
			}
		}
		if n != 8 {
			return Position{}, fmt.Errorf("rules: malformed FEN %q: rank %q covers %d squares", fen, r, n)
		}
	}
	if fields[1] != "w" && fields[1] != "b" {
		return Position{}, fmt.Errorf("rules: malformed FEN %q: bad side-to-move %q", fen, fields[1])
	}
	if len(fields) < 6 {
		// dragontoothmg wants all six fields. A truncated record is missing
		// the halfmove clock and then the fullmove number, in that order.
		if len(fields) == 4 {
			fields = append(fields, "0")
		}
		fields = append(fields, "1")
		fen = strings.Join(fields, " ")
	}
	return Position{board: dragontoothmg.ParseFen(fen)}, nil
}

// FEN serializes the position.
func (p Position) FEN() string {
	return p.board.ToFen()
}

func (p Position) String() string {
	return p.FEN()
}

// SideToMove returns whose turn it is.
func (p Position) SideToMove() Color {
	if p.board.Wtomove {
		return White
	}
	return Black
}

// LegalMoves enumerates every legal move in the generator's order. The
// order is deterministic for a given position and is relied on for
// default and tie-break selection.
func (p Position) LegalMoves() []Move {
	raw := p.board.GenerateLegalMoves()
	moves := make([]Move, len(raw))
	for i, m := range raw {
		moves[i] = p.wrapMove(m)
	}
	return moves
}

// Apply plays a move on an independent copy and returns the resulting
// position. The move must come from LegalMoves on this exact position.
func (p Position) Apply(m Move) Position {
	next := p.board
	next.Apply(m.raw)
	return Position{board: next}
}

// InCheck reports whether the side to move is in check.
func (p Position) InCheck() bool {
	return p.board.OurKingInCheck()
}

// IsCheckmate reports whether the side to move has been mated.
func (p Position) IsCheckmate() bool {
	return p.board.OurKingInCheck() && len(p.board.GenerateLegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no moves but is not in
// check.
func (p Position) IsStalemate() bool {
	return !p.board.OurKingInCheck() && len(p.board.GenerateLegalMoves()) == 0
}

// IsDraw reports a drawn position: fifty-move rule or insufficient mating
// material (bare kings, or a lone knight or bishop). Repetition needs the
// game record and is the caller's concern.
func (p Position) IsDraw() bool {
	if p.board.Halfmoveclock >= 100 {
		return true
	}
	return p.insufficientMaterial()
}

// IsTerminal reports whether the game is over in this position.
func (p Position) IsTerminal() bool {
	if p.IsDraw() {
		return true
	}
	return len(p.board.GenerateLegalMoves()) == 0
}

func (p Position) insufficientMaterial() bool {
	w, b := p.board.White, p.board.Black
	if w.Pawns|b.Pawns|w.Rooks|b.Rooks|w.Queens|b.Queens != 0 {
		return false
	}
	minors := bits.OnesCount64(w.Knights | w.Bishops | b.Knights | b.Bishops)
	return minors <= 1
}

// PieceAt probes a square. ok is false for an empty square.
func (p Position) PieceAt(sq Square) (piece Piece, color Color, ok bool) {
	if pc, found := pieceOn(sq, &p.board.White); found {
		return pc, White, true
	}
	if pc, found := pieceOn(sq, &p.board.Black); found {
		return pc, Black, true
	}
	return NoPiece, White, false
}

func pieceOn(sq Square, side *dragontoothmg.Bitboards) (Piece, bool) {
	bb := uint64(1) << sq
	switch {
	case side.Pawns&bb != 0:
		return Pawn, true
	case side.Knights&bb != 0:
		return Knight, true
	case side.Bishops&bb != 0:
		return Bishop, true
	case side.Rooks&bb != 0:
		return Rook, true
	case side.Queens&bb != 0:
		return Queen, true
	case side.Kings&bb != 0:
		return King, true
	}
	return NoPiece, false
}
