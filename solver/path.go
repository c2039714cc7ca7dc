package solver

import (
	"strings"

	"github.com/domino14/boggle/board"
)

// FindPath returns one path of adjacent, distinct cells that spells word,
// or nil if the word is not on the board. It does not consult a dictionary.
func FindPath(b board.Board, word string) []board.Coord {
	rows, cols := b.Rows(), b.Cols()
	visited := make([]bool, rows*cols)
	path := make([]board.Coord, 0, len(word))

	var walk func(row, col, i int) bool
	walk = func(row, col, i int) bool {
		seg := cellText(b.LetterAt(row, col))
		if !strings.HasPrefix(word[i:], seg) {
			return false
		}
		idx := row*cols + col
		visited[idx] = true
		path = append(path, board.Coord{Row: row, Col: col})
		if i+len(seg) == len(word) {
			return true
		}
		for _, off := range neighborOffsets {
			nr, nc := row+off[0], col+off[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols || visited[nr*cols+nc] {
				continue
			}
			if walk(nr, nc, i+len(seg)) {
				return true
			}
		}
		visited[idx] = false
		path = path[:len(path)-1]
		return false
	}

	if word == "" {
		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if walk(r, c, 0) {
				return path
			}
		}
	}
	return nil
}

// Spell returns the word a path of cells reads as.
func Spell(b board.Board, path []board.Coord) string {
	var sb strings.Builder
	for _, p := range path {
		sb.WriteString(cellText(b.LetterAt(p.Row, p.Col)))
	}
	return sb.String()
}

func cellText(l byte) string {
	if l == 'Q' {
		return "QU"
	}
	return string(l)
}
