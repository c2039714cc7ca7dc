package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/trie"
)

// The eight neighbours of a cell: diagonals and orthogonals.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// A searcher owns the mutable state of one walk: the visited mask and the
// path buffer. It must not be shared between goroutines; the trie and board
// can be.
type searcher struct {
	b       board.Board
	t       trie.Trie
	rows    int
	cols    int
	visited []bool
	path    []byte
	words   WordSet
}

func newSearcher(b board.Board, t trie.Trie) *searcher {
	return &searcher{
		b:       b,
		t:       t,
		rows:    b.Rows(),
		cols:    b.Cols(),
		visited: make([]bool, b.Rows()*b.Cols()),
		path:    make([]byte, 0, 2*b.Rows()*b.Cols()),
		words:   NewWordSet(),
	}
}

func (s *searcher) searchFrom(row, col int) {
	clear(s.visited)
	s.path = s.path[:0]
	s.dfs(row, col, s.t.Root(), 0)
}

// dfs extends the path with the cell at (row, col). node is the trie node
// for the path so far and d is the path length it was reached at, so only
// the newly appended letters need to be walked. Every exit restores path
// and visited to what they were on entry.
func (s *searcher) dfs(row, col int, node trie.NodeIdx, d int) {
	letter := s.b.LetterAt(row, col)
	mark := len(s.path)
	nd := d + 1
	if letter == 'Q' {
		s.path = append(s.path, 'Q', 'U')
		nd = d + 2
	} else {
		s.path = append(s.path, letter)
	}

	next := s.t.Descend(node, s.path, d)
	if next == trie.NoNode {
		s.path = s.path[:mark]
		return
	}
	if len(s.path) >= MinWordLength && s.t.IsWord(next) {
		s.words.Add(string(s.path))
	}

	idx := row*s.cols + col
	s.visited[idx] = true
	for _, off := range neighborOffsets {
		nr, nc := row+off[0], col+off[1]
		if nr < 0 || nr >= s.rows || nc < 0 || nc >= s.cols || s.visited[nr*s.cols+nc] {
			continue
		}
		s.dfs(nr, nc, next, nd)
	}
	s.visited[idx] = false
	s.path = s.path[:mark]
}

// FindAllWords returns every dictionary word of at least MinWordLength
// letters that can be traced on the board along a path of adjacent cells,
// using each cell at most once. A Q cell spells "QU".
func FindAllWords(b board.Board, t trie.Trie) WordSet {
	s := newSearcher(b, t)
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			s.searchFrom(r, c)
		}
	}
	return s.words
}

// FindAllWordsContext is FindAllWords with the starting cells spread over
// threads goroutines. The context is checked before each starting cell; if
// it is done, no words are returned, only the context's error.
func FindAllWordsContext(ctx context.Context, b board.Board, t trie.Trie, threads int) (WordSet, error) {
	logger := zerolog.Ctx(ctx)
	cells := b.Rows() * b.Cols()
	if cells == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return NewWordSet(), nil
	}
	if threads < 1 {
		threads = 1
	}
	if threads > cells {
		threads = cells
	}
	tstart := time.Now()
	results := make([]WordSet, threads)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			s := newSearcher(b, t)
			for cell := w; cell < cells; cell += threads {
				if err := gctx.Err(); err != nil {
					return err
				}
				s.searchFrom(cell/s.cols, cell%s.cols)
			}
			results[w] = s.words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug().Err(err).Msg("search-interrupted")
		return nil, err
	}

	words := results[0]
	for _, r := range results[1:] {
		words.Merge(r)
	}
	logger.Debug().Int("threads", threads).Int("words", words.Len()).
		Dur("elapsed", time.Since(tstart)).Msg("search-finished")
	return words, nil
}
