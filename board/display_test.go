package board

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{
			name: "start",
			fen:  startPlacement,
			want: "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR",
		},
		{
			name: "empty",
			fen:  "8/8/8/8/8/8/8/8",
			want: strings.Repeat("........\n", 7) + "........",
		},
		{
			name: "corners",
			fen:  "k6q/8/8/8/8/8/8/R6K",
			want: "k......q\n........\n........\n........\n........\n........\n........\nR......K",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			got := b.String()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
			if got != b.String() {
				t.Error("String() is not deterministic")
			}
		})
	}
}

func TestDiagram(t *testing.T) {
	b := StartingBoard()
	if err := b.MakeMove(E2, E4); err != nil {
		t.Fatal(err)
	}

	want := "8  r n b q k b n r \n" +
		"7  p p p p p p p p \n" +
		"6  . . . . . . . . \n" +
		"5  . . . . . . . . \n" +
		"4  . . . . P . . . \n" +
		"3  . . . . . . . . \n" +
		"2  P P P P . P P P \n" +
		"1  R N B Q K B N R \n" +
		"\n   a b c d e f g h\n\n" +
		"Side to move: Black\n"
	if diff := cmp.Diff(want, b.Diagram()); diff != "" {
		t.Errorf("Diagram() mismatch (-want +got):\n%s", diff)
	}
}
