package board

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them; most are wrapped with
// the square or character that caused them.
var (
	// ErrInvalidFenCharacter indicates a symbol outside the piece-placement
	// alphabet.
	ErrInvalidFenCharacter = errors.New("invalid FEN character")

	// ErrInvalidFenStructure indicates a wrong rank count, a rank that does
	// not hold exactly 8 squares, or an empty placement field.
	ErrInvalidFenStructure = errors.New("invalid FEN structure")

	ErrInvalidSquare  = errors.New("invalid square")
	ErrInvalidPiece   = errors.New("invalid piece")
	ErrSquareOccupied = errors.New("square occupied")
	ErrPieceMismatch  = errors.New("piece mismatch")

	// ErrEmptySource indicates a move from a square holding no piece. The
	// board and turn are left unchanged.
	ErrEmptySource = errors.New("no piece on source square")

	ErrSameSquare = errors.New("source and destination are the same square")

	// ErrCorruptBoard indicates the piece and color bitboards disagree.
	ErrCorruptBoard = errors.New("corrupt board")
)

// FENError reports where in the placement field decoding failed.
type FENError struct {
	Err    error // ErrInvalidFenCharacter or ErrInvalidFenStructure
	Offset int   // byte offset into the placement field, -1 if not tied to one
	Char   byte  // offending character, 0 if none
	Rank   Rank  // rank being decoded
	Detail string
}

func (e *FENError) Error() string {
	msg := e.Err.Error()
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Char != 0 {
		msg += fmt.Sprintf(" (%q)", e.Char)
	}
	msg += " on rank " + e.Rank.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the sentinel error.
func (e *FENError) Unwrap() error {
	return e.Err
}
