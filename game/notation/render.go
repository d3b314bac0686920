package notation

import (
	"fmt"
	"strings"

	"github.com/wricardo/shobu/game/engine"
)

var colorNames = [2]string{"light", "dark"}

// RenderBoards lays the boards out two by two: a and b (Black's home) on top,
// c and d (White's home) below.
func RenderBoards(boards engine.Boards) string {
	var sb strings.Builder
	for pair := 0; pair < 2; pair++ {
		left := engine.BoardIndex(pair * 2)
		right := left + 1
		fmt.Fprintf(&sb, "  %s %-5s      %s %s\n", left.Letter(), colorNames[left.ColorClass()], right.Letter(), colorNames[right.ColorClass()])
		for y := 0; y < engine.BoardSide; y++ {
			sb.WriteString("  ")
			sb.WriteString(renderRow(boards[left], y))
			sb.WriteString("      ")
			sb.WriteString(renderRow(boards[right], y))
			sb.WriteByte('\n')
		}
		if pair == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderRow(b engine.Board, y int) string {
	cells := make([]string, engine.BoardSide)
	for x := range cells {
		cells[x] = Symbol(b[engine.CellAt(x, y)])
	}
	return strings.Join(cells, " ")
}

// Symbol is the single-character rendering of a cell.
func Symbol(p engine.Player) string {
	switch p {
	case engine.Black:
		return "1"
	case engine.White:
		return "2"
	}
	return "."
}
