package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ToDisplayText renders the board with column letters and row numbers, the
// way the shell shows it.
func ToDisplayText(b Board) string {
	var str strings.Builder
	str.WriteString("\n    ")
	for c := 0; c < b.Cols(); c++ {
		str.WriteString(fmt.Sprintf("%-3c", 'A'+c))
	}
	str.WriteString("\n   " + strings.Repeat("-", b.Cols()*3) + "\n")
	for r := 0; r < b.Rows(); r++ {
		str.WriteString(fmt.Sprintf("%2d| ", r+1))
		for c := 0; c < b.Cols(); c++ {
			str.WriteString(fmt.Sprintf("%-3s", cellDisplay(b.LetterAt(r, c))))
		}
		str.WriteString("\n")
	}
	return str.String()
}

// FromString parses a compact board such as "CAT/XAX/XXS". Rows can be
// separated by slashes or by whitespace.
func FromString(s string) (*Grid, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
	return NewGrid(rows)
}

// Parse reads a board in token form: a first line with the number of rows
// and columns, followed by one whitespace-separated token per cell. A token
// is either a single letter or "Qu".
//
//	4 4
//	A T E E
//	Qu S L M
//	...
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	dims := make([]int, 2)
	for i := range dims {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing rows/cols header", ErrBadDimensions)
		}
		n, err := strconv.Atoi(scanner.Text())
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadDimensions, scanner.Text())
		}
		dims[i] = n
	}
	g := &Grid{rows: dims[0], cols: dims[1], letters: make([]byte, 0, dims[0]*dims[1])}

	for scanner.Scan() {
		if len(g.letters) == g.rows*g.cols {
			return nil, fmt.Errorf("%w: more than %d", ErrTokenCount, g.rows*g.cols)
		}
		l, err := tokenLetter(scanner.Text())
		if err != nil {
			n := len(g.letters)
			return nil, fmt.Errorf("%w at (%d,%d)", err, n/g.cols, n%g.cols)
		}
		g.letters = append(g.letters, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(g.letters) != g.rows*g.cols {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrTokenCount,
			len(g.letters), g.rows*g.cols)
	}
	return g, nil
}

func tokenLetter(tok string) (byte, error) {
	tok = strings.ToUpper(tok)
	if tok == "QU" {
		return 'Q', nil
	}
	if len(tok) != 1 || !isLetter(tok[0]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, tok)
	}
	return tok[0], nil
}
