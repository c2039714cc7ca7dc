// Package board holds the letter grids that words are searched for on.
package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyBoard    = errors.New("board has no cells")
	ErrRaggedRows    = errors.New("board rows are not all the same length")
	ErrInvalidLetter = errors.New("board letters must be A-Z")
	ErrBadDimensions = errors.New("bad board dimensions")
	ErrTokenCount    = errors.New("wrong number of board letters")
)

// A Board is any rectangular grid of uppercase letters. A 'Q' cell stands
// for "QU".
type Board interface {
	Rows() int
	Cols() int
	LetterAt(row, col int) byte
}

// Coord is a (row, col) position on a board.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable Board backed by a row-major letter slice.
type Grid struct {
	rows    int
	cols    int
	letters []byte
}

// NewGrid makes a Grid out of equal-length rows. Letters are uppercased;
// anything outside A-Z is rejected. Every character is one cell, so a row
// of "QUIT" is four cells; use a lone Q for a Qu cell.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	g := &Grid{
		rows:    len(rows),
		cols:    len(rows[0]),
		letters: make([]byte, 0, len(rows)*len(rows[0])),
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d letters, expected %d",
				ErrRaggedRows, r, len(row), g.cols)
		}
		row = strings.ToUpper(row)
		for c := 0; c < len(row); c++ {
			if !isLetter(row[c]) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidLetter, row[c], r, c)
			}
			g.letters = append(g.letters, row[c])
		}
	}
	return g, nil
}

// MustGrid is NewGrid for boards known to be well-formed, such as in tests.
func MustGrid(rows ...string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) LetterAt(row, col int) byte {
	return g.letters[row*g.cols+col]
}

// RowStrings returns the rows as raw letters, Q not expanded.
func (g *Grid) RowStrings() []string {
	rows := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		rows[r] = string(g.letters[r*g.cols : (r+1)*g.cols])
	}
	return rows
}

func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteString(fmt.Sprintf("%-3s", cellDisplay(g.LetterAt(r, c))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Validate checks an arbitrary Board before it is handed to a search.
func Validate(b Board) error {
	if b.Rows() <= 0 || b.Cols() <= 0 {
		return ErrEmptyBoard
	}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if l := b.LetterAt(r, c); !isLetter(l) {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidLetter, l, r, c)
			}
		}
	}
	return nil
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func cellDisplay(l byte) string {
	if l == 'Q' {
		return "Qu"
	}
	return string(l)
}
