// Package notation converts between text and engine moves, and renders boards.
//
// A move is written "<board><cell> <direction><length> <board><cell>", for
// example "a1 s1 c2" or "a1 s 1 c2". Boards are a-d, cells 1-16 counted
// left to right and top to bottom.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/shobu/game/engine"
)

// ErrSyntax is returned for input that does not have the shape of a move.
var ErrSyntax = errors.New("invalid move syntax")

// ParseMove reads a move in text notation. Range problems are reported with
// engine.ErrOutOfRange, shape problems with ErrSyntax.
func ParseMove(text string) (engine.Move, error) {
	fields := strings.Fields(strings.ToLower(text))

	// "s 1" is accepted as well as "s1"
	if len(fields) == 4 {
		fields = []string{fields[0], fields[1] + fields[2], fields[3]}
	}
	if len(fields) != 3 {
		return engine.Move{}, fmt.Errorf("%w: expected '<board><cell> <dir><len> <board><cell>', got %q", ErrSyntax, text)
	}

	pb, po, err := ParseSquare(fields[0])
	if err != nil {
		return engine.Move{}, err
	}
	dir, length, err := ParseVector(fields[1])
	if err != nil {
		return engine.Move{}, err
	}
	ab, ao, err := ParseSquare(fields[2])
	if err != nil {
		return engine.Move{}, err
	}
	return engine.NewMove(pb, po, dir, length, ab, ao)
}

// ParseSquare reads a board letter followed by a 1-based cell, e.g. "c16".
func ParseSquare(s string) (engine.BoardIndex, engine.Cell, error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: square %q", ErrSyntax, s)
	}
	board, err := ParseBoardLetter(s[:1])
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cell %q", ErrSyntax, s[1:])
	}
	if n < 1 || n > engine.CellsPerBoard {
		return 0, 0, fmt.Errorf("%w: cell %d must be between 1 and %d", engine.ErrOutOfRange, n, engine.CellsPerBoard)
	}
	return board, engine.Cell(n - 1), nil
}

// ParseBoardLetter maps a-d to board indices 0-3.
func ParseBoardLetter(s string) (engine.BoardIndex, error) {
	s = strings.ToLower(s)
	if len(s) != 1 || s[0] < 'a' || s[0] > 'd' {
		return 0, fmt.Errorf("%w: board %q must be one of a, b, c, d", engine.ErrOutOfRange, s)
	}
	return engine.BoardIndex(s[0] - 'a'), nil
}

// ParseVector reads a direction immediately followed by a length, e.g. "ne2".
func ParseVector(s string) (engine.Direction, int, error) {
	i := strings.IndexAny(s, "0123456789")
	if i <= 0 {
		return 0, 0, fmt.Errorf("%w: direction and length %q", ErrSyntax, s)
	}
	dir, err := engine.ParseDirection(s[:i])
	if err != nil {
		return 0, 0, err
	}
	length, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: length %q", ErrSyntax, s[i:])
	}
	if length < engine.MinLength || length > engine.MaxLength {
		return 0, 0, fmt.Errorf("%w: length %d must be 1 or 2", engine.ErrOutOfRange, length)
	}
	return dir, length, nil
}
