// Package board implements a chess position using bitboards: piece placement
// decoding from FEN, mechanical move application and a text rendering.
package board

import "fmt"

// File is a column of the board (0-7, where 0=a, 7=h).
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Right returns the file to the right. Wraps around from h to a.
func (f File) Right() File {
	return (f + 1) & 7
}

// Left returns the file to the left. Wraps around from a to h.
func (f File) Left() File {
	return (f - 1) & 7
}

func (f File) String() string {
	return string(rune('a' + f&7))
}

// Rank is a row of the board (0-7, where 0=1st, 7=8th).
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Up returns the rank above. Wraps around from 8th to 1st.
func (r Rank) Up() Rank {
	return (r + 1) & 7
}

// Down returns the rank below. Wraps around from 1st to 8th.
func (r Rank) Down() Rank {
	return (r - 1) & 7
}

func (r Rank) String() string {
	return string(rune('1' + r&7))
}

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(r&7)<<3 ^ Square(f&7)
}

// SquareFromIndex returns the square with the given index, or
// ErrInvalidSquare if the index is outside 0-63.
func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i >= int(NoSquare) {
		return NoSquare, fmt.Errorf("%w: index %d", ErrInvalidSquare, i)
	}
	return Square(i), nil
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Bitboard returns the singleton set holding only this square.
func (sq Square) Bitboard() Bitboard {
	return SquareBB(sq)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(File(file), Rank(rank)), nil
}
