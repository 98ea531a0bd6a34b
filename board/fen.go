package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartingBoard returns the standard starting position, White to move.
func StartingBoard() Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: cannot decode StartFEN: " + err.Error())
	}
	return b
}

// ParseFEN decodes the piece-placement field of a FEN string, the text up to
// the first whitespace. The other fields are ignored and the returned board
// has White to move.
//
// On failure the returned error is a *FENError wrapping
// ErrInvalidFenCharacter or ErrInvalidFenStructure, and the board is the
// zero value.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return Board{}, &FENError{Err: ErrInvalidFenStructure, Offset: -1, Rank: Rank8, Detail: "empty placement field"}
	}

	b, err := parsePiecePlacement(fields[0])
	if err != nil {
		return Board{}, err
	}
	return b, nil
}

// parsePiecePlacement walks the placement field from a8 towards h1.
func parsePiecePlacement(placement string) (Board, error) {
	b := NewBoard()
	rank := Rank8
	ranks := 1
	squares := 0 // squares consumed on the current rank

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if squares != 8 {
				return Board{}, rankLengthError(i, rank, squares)
			}
			if ranks == 8 {
				return Board{}, &FENError{Err: ErrInvalidFenStructure, Offset: i, Char: c, Rank: rank, Detail: "more than 8 ranks"}
			}
			rank = rank.Down()
			ranks++
			squares = 0

		case c >= '1' && c <= '8':
			n := int(c - '0')
			if squares+n > 8 {
				return Board{}, &FENError{Err: ErrInvalidFenStructure, Offset: i, Char: c, Rank: rank,
					Detail: "skip of " + strconv.Itoa(n) + " after " + strconv.Itoa(squares) + " squares overflows the rank"}
			}
			squares += n

		default:
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return Board{}, &FENError{Err: ErrInvalidFenCharacter, Offset: i, Char: c, Rank: rank}
			}
			if squares >= 8 {
				return Board{}, &FENError{Err: ErrInvalidFenStructure, Offset: i, Char: c, Rank: rank, Detail: "more than 8 squares"}
			}
			b.place(piece.Type(), piece.Color(), NewSquare(File(squares), rank))
			squares++
		}
	}

	if squares != 8 {
		return Board{}, rankLengthError(len(placement), rank, squares)
	}
	if ranks != 8 {
		return Board{}, &FENError{Err: ErrInvalidFenStructure, Offset: -1, Rank: rank,
			Detail: "need 8 ranks, got " + strconv.Itoa(ranks)}
	}
	return b, nil
}

func rankLengthError(offset int, rank Rank, squares int) error {
	return &FENError{Err: ErrInvalidFenStructure, Offset: offset, Rank: rank,
		Detail: "need 8 squares, got " + strconv.Itoa(squares)}
}

// FEN returns the piece-placement field for the board. Squares holding a
// piece type without a color, or the reverse, are written as empty.
func (b Board) FEN() string {
	var sb strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := b.PieceAt(NewSquare(f, r))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	return sb.String()
}
