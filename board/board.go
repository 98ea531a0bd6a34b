package board

import (
	"fmt"
	"strings"
)

// Board represents a chess position as bitboards. A square's piece type and
// its color are stored in separate sets: a square in one of the piece sets
// is in exactly one color set, and the other way round.
//
// The zero value is the empty board with White to move. Board is a plain
// value; copy it (or call Clone) to explore variations independently.
type Board struct {
	pieces [6]Bitboard // by PieceType, color-agnostic
	colors [2]Bitboard // by Color, piece-agnostic

	// Turn is the color to move next. ParseFEN leaves it White; parsers of
	// the remaining FEN fields set it after decoding.
	Turn Color
}

// NewBoard returns an empty board with White to move.
func NewBoard() Board {
	return Board{Turn: White}
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	return b
}

// Pieces returns the squares holding a piece of the given type, either color.
func (b Board) Pieces(pt PieceType) Bitboard {
	if !pt.IsValid() {
		return Empty
	}
	return b.pieces[pt]
}

// Colors returns the squares holding a piece of the given color.
func (b Board) Colors(c Color) Bitboard {
	if !c.IsValid() {
		return Empty
	}
	return b.colors[c]
}

// PiecesOf returns the squares holding a piece of the given type and color.
func (b Board) PiecesOf(pt PieceType, c Color) Bitboard {
	return b.Pieces(pt) & b.Colors(c)
}

// Occupied returns all occupied squares.
func (b Board) Occupied() Bitboard {
	return b.colors[White] | b.colors[Black]
}

// Count returns the number of pieces on the board.
func (b Board) Count() int {
	return b.Occupied().PopCount()
}

// IsEmpty returns true if the square is empty.
func (b Board) IsEmpty(sq Square) bool {
	return !b.touched().IsSet(sq)
}

// touched is every square present in any piece or color set.
func (b Board) touched() Bitboard {
	var bb Bitboard
	for _, p := range b.pieces {
		bb |= p
	}
	return bb | b.colors[White] | b.colors[Black]
}

// PieceOn returns the type of the piece on the square, or NoPieceType.
// Piece sets are tested in declaration order, Pawn first.
func (b Board) PieceOn(sq Square) PieceType {
	bb := SquareBB(sq)
	for _, pt := range PieceTypes {
		if b.pieces[pt]&bb != 0 {
			return pt
		}
	}
	return NoPieceType
}

// ColorOn returns the color of the piece on the square, or NoColor.
func (b Board) ColorOn(sq Square) Color {
	bb := SquareBB(sq)
	for _, c := range Colors {
		if b.colors[c]&bb != 0 {
			return c
		}
	}
	return NoColor
}

// PieceAt returns the colored piece on the square, or NoPiece.
func (b Board) PieceAt(sq Square) Piece {
	return NewPiece(b.PieceOn(sq), b.ColorOn(sq))
}

func checkPlacement(pt PieceType, c Color, sq Square) error {
	if !pt.IsValid() {
		return fmt.Errorf("%w: piece type %d", ErrInvalidPiece, pt)
	}
	if !c.IsValid() {
		return fmt.Errorf("%w: color %d", ErrInvalidPiece, c)
	}
	if !sq.IsValid() {
		return fmt.Errorf("%w: index %d", ErrInvalidSquare, sq)
	}
	return nil
}

// holds reports whether the square is in both the piece and the color set.
func (b *Board) holds(pt PieceType, c Color, sq Square) bool {
	return b.pieces[pt].IsSet(sq) && b.colors[c].IsSet(sq)
}

// Set places a piece on an empty square. Placing the same piece and color
// again is a no-op; any other occupant gives ErrSquareOccupied.
func (b *Board) Set(pt PieceType, c Color, sq Square) error {
	if err := checkPlacement(pt, c, sq); err != nil {
		logRejected(b, "set", err)
		return err
	}
	if b.touched().IsSet(sq) {
		if b.holds(pt, c, sq) && b.PieceOn(sq) == pt && b.ColorOn(sq) == c {
			return nil
		}
		err := fmt.Errorf("%w: %s holds %s", ErrSquareOccupied, sq, b.PieceAt(sq))
		logRejected(b, "set", err)
		return err
	}
	b.place(pt, c, sq)
	return nil
}

// Unset removes a piece. The square must hold exactly that piece type and
// color, otherwise the board is left unchanged and ErrPieceMismatch is
// returned.
func (b *Board) Unset(pt PieceType, c Color, sq Square) error {
	if err := checkPlacement(pt, c, sq); err != nil {
		logRejected(b, "unset", err)
		return err
	}
	if !b.holds(pt, c, sq) {
		err := fmt.Errorf("%w: %s does not hold %s", ErrPieceMismatch, sq, NewPiece(pt, c))
		logRejected(b, "unset", err)
		return err
	}
	b.remove(pt, c, sq)
	return nil
}

func (b *Board) place(pt PieceType, c Color, sq Square) {
	b.pieces[pt] = b.pieces[pt].Set(sq)
	b.colors[c] = b.colors[c].Set(sq)
}

func (b *Board) remove(pt PieceType, c Color, sq Square) {
	b.pieces[pt] = b.pieces[pt].Unset(sq)
	b.colors[c] = b.colors[c].Unset(sq)
}

// MakeMove relocates the piece on from to to and passes the turn. Moves are
// not checked for legality: any piece may go to any other square, and a
// piece on the destination is captured whatever its color. Castling, en
// passant and promotion are not handled.
//
// A move from an empty square returns ErrEmptySource without touching the
// board or the turn.
func (b *Board) MakeMove(from, to Square) error {
	err := b.makeMove(from, to)
	if err != nil {
		logRejected(b, "move", err)
	}
	return err
}

func (b *Board) makeMove(from, to Square) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: move %d-%d", ErrInvalidSquare, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrSameSquare, from)
	}

	pt, c := b.PieceOn(from), b.ColorOn(from)
	if pt == NoPieceType && c == NoColor {
		return fmt.Errorf("%w: %s", ErrEmptySource, from)
	}
	if pt == NoPieceType || c == NoColor {
		return fmt.Errorf("%w: %s has piece %s and color %s", ErrCorruptBoard, from, pt, c)
	}

	capturedType, capturedColor := b.PieceOn(to), b.ColorOn(to)
	if (capturedType == NoPieceType) != (capturedColor == NoColor) {
		return fmt.Errorf("%w: %s has piece %s and color %s", ErrCorruptBoard, to, capturedType, capturedColor)
	}

	if capturedType != NoPieceType {
		b.remove(capturedType, capturedColor, to)
	}
	b.remove(pt, c, from)
	b.place(pt, c, to)
	b.Turn = b.Turn.Other()
	return nil
}

// Validate checks that the piece and color sets agree: no square is in two
// piece sets or both color sets, and the union of the piece sets equals the
// union of the color sets.
func (b Board) Validate() error {
	var seen, overlap Bitboard
	for _, p := range b.pieces {
		overlap |= seen & p
		seen |= p
	}
	overlap |= b.colors[White] & b.colors[Black]
	mismatch := seen ^ b.Occupied()

	if overlap == 0 && mismatch == 0 {
		return nil
	}

	var problems []string
	if overlap != 0 {
		problems = append(problems, "overlapping sets on "+squareList(overlap))
	}
	if mismatch != 0 {
		problems = append(problems, "piece and color sets differ on "+squareList(mismatch))
	}
	return fmt.Errorf("%w: %s", ErrCorruptBoard, strings.Join(problems, "; "))
}

func squareList(bb Bitboard) string {
	names := make([]string, 0, bb.PopCount())
	bb.ForEach(func(sq Square) {
		names = append(names, sq.String())
	})
	return strings.Join(names, " ")
}
