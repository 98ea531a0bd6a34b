package board

import "strings"

// String renders the board as 8 lines, rank 8 first, files a to h. White
// pieces are uppercase, black lowercase and empty squares '.'. There is no
// trailing newline.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(8*9 - 1)
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteByte(b.PieceAt(NewSquare(f, r)).Char())
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Diagram returns a labelled rendering with rank and file coordinates and
// the side to move.
func (b Board) Diagram() string {
	var sb strings.Builder
	rows := strings.Split(b.String(), "\n")
	for i, row := range rows {
		sb.WriteString(Rank(7 - i).String())
		sb.WriteString("  ")
		for j := 0; j < len(row); j++ {
			sb.WriteByte(row[j])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	sb.WriteString("Side to move: ")
	sb.WriteString(b.Turn.String())
	sb.WriteByte('\n')
	return sb.String()
}
