package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitboardSetUnset(t *testing.T) {
	var a2 Bitboard
	a2 = a2.Set(A2)
	if a2 != 256 {
		t.Errorf("Empty.Set(A2) = %d, want 256", uint64(a2))
	}
	if a2.Set(A2) != a2 {
		t.Error("Set is not idempotent")
	}
	if a2.Unset(A2) != Empty {
		t.Errorf("Unset(A2) = %d, want 0", uint64(a2.Unset(A2)))
	}

	// Clearing an absent square must not set it.
	if got := a2.Unset(A3); got != a2 {
		t.Errorf("Unset of absent square = %d, want %d", uint64(got), uint64(a2))
	}
	if got := Empty.Unset(H8).Unset(H8); got != Empty {
		t.Errorf("Empty.Unset(H8) twice = %d", uint64(got))
	}
}

func TestBitboardRoundTripEverySquare(t *testing.T) {
	for i := 0; i < 64; i++ {
		sq := Square(i)
		bb := Empty.Set(sq)
		if bb != sq.Bitboard() || bb != 1<<i {
			t.Errorf("Set(%v) = %x, want %x", sq, uint64(bb), uint64(1)<<i)
		}
		if !bb.IsSet(sq) || bb.PopCount() != 1 {
			t.Errorf("Set(%v) does not hold exactly %v", sq, sq)
		}
		if bb.Unset(sq) != Empty {
			t.Errorf("Set(%v).Unset(%v) not empty", sq, sq)
		}
	}
}

func TestSquareBBOutOfRange(t *testing.T) {
	if SquareBB(NoSquare) != Empty {
		t.Errorf("SquareBB(NoSquare) = %x", uint64(SquareBB(NoSquare)))
	}
	if Empty.Set(NoSquare) != Empty {
		t.Error("Set(NoSquare) changed the set")
	}
	if Universe.IsSet(NoSquare) {
		t.Error("Universe.IsSet(NoSquare) = true")
	}
}

func TestBitboardSquares(t *testing.T) {
	bb := Empty.Set(H8).Set(A1).Set(E4)

	want := []Square{A1, E4, H8}
	if diff := cmp.Diff(want, bb.Squares()); diff != "" {
		t.Errorf("Squares() mismatch (-want +got):\n%s", diff)
	}

	var visited []Square
	bb.ForEach(func(sq Square) { visited = append(visited, sq) })
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("ForEach mismatch (-want +got):\n%s", diff)
	}

	if bb.LSB() != A1 {
		t.Errorf("LSB() = %v", bb.LSB())
	}
	if Empty.LSB() != NoSquare {
		t.Errorf("Empty.LSB() = %v", Empty.LSB())
	}
	if sq := bb.PopLSB(); sq != A1 || bb.PopCount() != 2 {
		t.Errorf("PopLSB() = %v, remaining %d", sq, bb.PopCount())
	}
}

func TestBitboardMasks(t *testing.T) {
	for i := 0; i < 8; i++ {
		if FileMask[i].PopCount() != 8 || RankMask[i].PopCount() != 8 {
			t.Errorf("mask %d does not hold 8 squares", i)
		}
		for j := 0; j < 8; j++ {
			sq := NewSquare(File(i), Rank(j))
			if !FileMask[i].IsSet(sq) {
				t.Errorf("FileMask[%d] missing %v", i, sq)
			}
			sq = NewSquare(File(j), Rank(i))
			if !RankMask[i].IsSet(sq) {
				t.Errorf("RankMask[%d] missing %v", i, sq)
			}
		}
	}
}

func TestBitboardString(t *testing.T) {
	want := "8 . . . . . . . 1 \n" +
		"7 . . . . . . . . \n" +
		"6 . . . . . . . . \n" +
		"5 . . . . . . . . \n" +
		"4 . . . . 1 . . . \n" +
		"3 . . . . . . . . \n" +
		"2 . . . . . . . . \n" +
		"1 1 . . . . . . . \n" +
		"  a b c d e f g h\n"
	got := Empty.Set(A1).Set(E4).Set(H8).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}
