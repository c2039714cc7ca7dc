// Package solver finds and scores every word on a board.
package solver

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/trie"
)

// ScoredWord is one found word and its points.
type ScoredWord struct {
	Word  string `yaml:"word" json:"word"`
	Score int    `yaml:"score" json:"score"`
}

// Solution is the full result of solving a board.
type Solution struct {
	Words []ScoredWord `yaml:"words" json:"words"`
	Total int          `yaml:"total" json:"total"`
}

type Option func(*options)

type options struct {
	ternary bool
	threads int
}

// WithTernaryTrie stores the dictionary in a ternary search trie instead of
// the default 26-way trie.
func WithTernaryTrie() Option {
	return func(o *options) {
		o.ternary = true
	}
}

// WithThreads sets how many goroutines AllValidWordsContext and Solve use.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// Solver holds a dictionary and answers board and scoring queries against
// it. The dictionary does not change after NewSolver returns, so a Solver
// can be used from several goroutines at once.
type Solver struct {
	trie    trie.Trie
	threads int
}

// NewSolver builds the dictionary trie. Words are assumed to be uppercase
// A-Z already; see the lexicon package for loading and checking word lists.
func NewSolver(dictionary []string, opts ...Option) *Solver {
	o := &options{threads: 1}
	for _, opt := range opts {
		opt(o)
	}
	var t trie.Trie
	kind := "rtrie"
	if o.ternary {
		t = trie.NewTST()
		kind = "tst"
	} else {
		t = trie.NewRTrie()
	}
	trie.Build(t, dictionary)
	log.Debug().Str("kind", kind).Int("words", t.NumWords()).
		Int("nodes", t.NumNodes()).Msg("built-dictionary")
	return &Solver{trie: t, threads: o.threads}
}

func (s *Solver) Trie() trie.Trie {
	return s.trie
}

func (s *Solver) Threads() int {
	return s.threads
}

// AllValidWords returns every word of three or more letters on the board.
func (s *Solver) AllValidWords(b board.Board) WordSet {
	return FindAllWords(b, s.trie)
}

// AllValidWordsContext is AllValidWords using the configured number of
// threads, stopping early if ctx is done.
func (s *Solver) AllValidWordsContext(ctx context.Context, b board.Board) (WordSet, error) {
	return FindAllWordsContext(ctx, b, s.trie, s.threads)
}

func (s *Solver) ScoreOf(word string) int {
	return ScoreOf(word, s.trie)
}

// Solve finds all words and scores them. Words come back longest first.
func (s *Solver) Solve(ctx context.Context, b board.Board) (*Solution, error) {
	return s.SolveThreads(ctx, b, s.threads)
}

// SolveThreads is Solve with an explicit number of search goroutines.
func (s *Solver) SolveThreads(ctx context.Context, b board.Board, threads int) (*Solution, error) {
	words, err := FindAllWordsContext(ctx, b, s.trie, threads)
	if err != nil {
		return nil, err
	}
	scored := lo.Map(words.Sorted(), func(w string, _ int) ScoredWord {
		return ScoredWord{Word: w, Score: s.ScoreOf(w)}
	})
	return &Solution{
		Words: scored,
		Total: lo.SumBy(scored, func(sw ScoredWord) int { return sw.Score }),
	}, nil
}
