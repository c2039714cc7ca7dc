package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/trie"
)

func TestCatBoard(t *testing.T) {
	s := NewSolver([]string{"CAT", "CATS", "AT"})
	b := board.MustGrid("CAT", "XAX", "XXS")

	words := s.AllValidWords(b)
	// S is two rows below T, so CATS cannot be traced; AT is too short.
	assert.Equal(t, []string{"CAT"}, words.Sorted())
	assert.Equal(t, 1, s.ScoreOf("CAT"))
	assert.Equal(t, 1, s.ScoreOf("CATS"))
	assert.Equal(t, 0, s.ScoreOf("AT"))
	assert.Equal(t, 0, s.ScoreOf("DOG"))
}

func TestCatsWhenConnected(t *testing.T) {
	s := NewSolver([]string{"CAT", "CATS", "AT"})
	b := board.MustGrid("CAT", "XAS", "XXX")
	assert.Equal(t, []string{"CATS", "CAT"}, s.AllValidWords(b).Sorted())
}

func TestQuCells(t *testing.T) {
	s := NewSolver([]string{"QUIZ", "QUIT", "QI", "QUA", "QU"})
	b := board.MustGrid("QI", "ZT")
	assert.Equal(t, []string{"QUIT", "QUIZ"}, s.AllValidWords(b).Sorted())

	// A lone Q spells two letters, which is too short.
	assert.Equal(t, 0, s.AllValidWords(board.MustGrid("Q")).Len())
	assert.Equal(t, []string{"QUA"}, s.AllValidWords(board.MustGrid("Q", "A")).Sorted())
}

func TestSingleCellBoard(t *testing.T) {
	s := NewSolver([]string{"A", "AA", "AAA", "QU", "QUA"})
	for l := byte('A'); l <= 'Z'; l++ {
		b := board.MustGrid(string(l))
		assert.Equal(t, 0, s.AllValidWords(b).Len())
	}
}

func TestCellsNotReused(t *testing.T) {
	s := NewSolver([]string{"AAA", "ABA", "ABAB"})
	b := board.MustGrid("AB")
	assert.Equal(t, 0, s.AllValidWords(b).Len())
	b = board.MustGrid("AB", "AB")
	// Only two A cells, so AAA is out even though every cell touches every
	// other.
	assert.Equal(t, []string{"ABAB", "ABA"}, s.AllValidWords(b).Sorted())
}

func TestScoreLength(t *testing.T) {
	type testcase struct {
		length int
		score  int
	}
	for _, tc := range []testcase{
		{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 3},
		{7, 5}, {8, 11}, {9, 11}, {16, 11},
	} {
		assert.Equal(t, tc.score, ScoreLength(tc.length), "length %d", tc.length)
	}
	for n := 1; n < 20; n++ {
		assert.GreaterOrEqual(t, ScoreLength(n), ScoreLength(n-1))
	}
}

func TestScoreOfRequiresDictionary(t *testing.T) {
	s := NewSolver([]string{"PRIVATDOZENT"})
	assert.Equal(t, 11, s.ScoreOf("PRIVATDOZENT"))
	assert.Equal(t, 0, s.ScoreOf("PRIVATDOZENTS"))
	assert.Equal(t, 0, s.ScoreOf("PRIVAT"))
}

// searchState checks that a searcher's buffers are back to empty.
func searchState(t *testing.T, s *searcher) {
	t.Helper()
	require.Empty(t, s.path)
	for i, v := range s.visited {
		require.False(t, v, "cell %d left visited", i)
	}
}

func TestSearchRestoresState(t *testing.T) {
	// The dictionary makes both prefix misses and deep hits happen from
	// every cell, so early exits and full unwinds are both exercised.
	tr := trie.Build(trie.NewRTrie(), []string{"QUEST", "EQUATE", "SET", "TEES", "ZZZ"})
	b := board.MustGrid("QES", "UTE", "ASZ")
	s := newSearcher(b, tr)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s.dfs(r, c, tr.Root(), 0)
			searchState(t, s)
		}
	}
	assert.True(t, s.words.Contains("QUEST"))
	assert.True(t, s.words.Contains("SET"))
	assert.False(t, s.words.Contains("ZZZ"))
}

func TestSearchKeepsCallerPrefix(t *testing.T) {
	tr := trie.Build(trie.NewRTrie(), []string{"CATS"})
	b := board.MustGrid("TS")
	s := newSearcher(b, tr)
	s.path = append(s.path, 'C', 'A')
	node := tr.Descend(tr.Root(), s.path, 0)
	s.dfs(0, 0, node, 2)
	assert.Equal(t, "CA", string(s.path))
	assert.True(t, s.words.Contains("CATS"))
}

// randomWords makes a dictionary that is half real walks on the board and
// half random strings, so both hits and misses are plentiful.
func randomWords(rng *rand.Rand, b board.Board, n int) []string {
	words := make([]string, 0, n)
	for len(words) < n {
		if rng.Intn(2) == 0 {
			letters := make([]byte, 3+rng.Intn(5))
			for i := range letters {
				letters[i] = byte('A' + rng.Intn(26))
			}
			words = append(words, string(letters))
			continue
		}
		path := []board.Coord{{Row: rng.Intn(b.Rows()), Col: rng.Intn(b.Cols())}}
		seen := map[board.Coord]bool{path[0]: true}
		for steps := 2 + rng.Intn(7); steps > 0; steps-- {
			last := path[len(path)-1]
			off := neighborOffsets[rng.Intn(8)]
			next := board.Coord{Row: last.Row + off[0], Col: last.Col + off[1]}
			if next.Row < 0 || next.Row >= b.Rows() || next.Col < 0 ||
				next.Col >= b.Cols() || seen[next] {
				continue
			}
			seen[next] = true
			path = append(path, next)
		}
		words = append(words, Spell(b, path))
	}
	return words
}

func randomGrid(rng *rand.Rand, rows, cols int) *board.Grid {
	rs := make([]string, rows)
	for r := range rs {
		row := make([]byte, cols)
		for c := range row {
			// Bias toward a few letters so paths repeat prefixes.
			row[c] = "AEIOQRSTLN"[rng.Intn(10)]
		}
		rs[r] = string(row)
	}
	return board.MustGrid(rs...)
}

func TestAgainstPathOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 30; i++ {
		b := randomGrid(rng, 2+rng.Intn(4), 2+rng.Intn(4))
		dict := randomWords(rng, b, 200)
		s := NewSolver(dict)

		expected := NewWordSet()
		for _, w := range dict {
			if len(w) >= MinWordLength && FindPath(b, w) != nil {
				expected.Add(w)
			}
		}
		got := s.AllValidWords(b)
		require.Equal(t, expected.Sorted(), got.Sorted(), "board\n%v", b)

		for w := range got {
			path := FindPath(b, w)
			require.NotNil(t, path)
			assert.Equal(t, w, Spell(b, path))
			assert.Greater(t, s.ScoreOf(w), 0)
		}
	}
}

func TestTernaryTrieAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		b := randomGrid(rng, 4, 4)
		dict := randomWords(rng, b, 300)
		r := NewSolver(dict)
		s := NewSolver(dict, WithTernaryTrie())
		assert.Equal(t, r.AllValidWords(b).Sorted(), s.AllValidWords(b).Sorted())
		for _, w := range dict {
			assert.Equal(t, r.ScoreOf(w), s.ScoreOf(w))
		}
	}
}

func TestThreadsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b := randomGrid(rng, 5, 5)
	dict := randomWords(rng, b, 500)
	serial := FindAllWords(b, trie.Build(trie.NewRTrie(), dict))
	for _, threads := range []int{0, 1, 2, 3, 8, 64} {
		s := NewSolver(dict, WithThreads(threads))
		words, err := s.AllValidWordsContext(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, serial.Sorted(), words.Sorted(), "threads %d", threads)
	}
}

func TestCancelledSearchReturnsNothing(t *testing.T) {
	s := NewSolver([]string{"CAT"}, WithThreads(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	words, err := s.AllValidWordsContext(ctx, board.MustGrid("CAT", "CAT"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, words)

	sol, err := s.Solve(ctx, board.MustGrid("CAT"))
	assert.Error(t, err)
	assert.Nil(t, sol)
}

func TestSolve(t *testing.T) {
	s := NewSolver([]string{"CAT", "CATS", "SCAT", "ACTS", "AT", "TACS"})
	b := board.MustGrid("CA", "ST")
	sol, err := s.Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, []ScoredWord{
		{"ACTS", 1}, {"CATS", 1}, {"SCAT", 1}, {"TACS", 1}, {"CAT", 1},
	}, sol.Words)
	assert.Equal(t, 5, sol.Total)

	threaded, err := s.SolveThreads(context.Background(), b, 4)
	require.NoError(t, err)
	assert.Equal(t, sol, threaded)
}

func TestFindPath(t *testing.T) {
	b := board.MustGrid("QI", "ZT")
	path := FindPath(b, "QUIZ")
	require.Len(t, path, 3)
	assert.Equal(t, board.Coord{Row: 0, Col: 0}, path[0])
	assert.Equal(t, "QUIZ", Spell(b, path))
	assert.Nil(t, FindPath(b, "QIZ"))
	assert.Nil(t, FindPath(b, "TIT"))
	assert.Nil(t, FindPath(b, ""))
}
