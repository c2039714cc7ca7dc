// Package automatic shakes up and solves many random boards in a row,
// keeping statistics about how many words and points each board holds.
package automatic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/solver"
	"github.com/domino14/boggle/stats"
)

const histogramBins = 15

var (
	ErrAlreadyRunning = errors.New("boards are already being solved, please wait till complete")
	ErrNoBoards       = errors.New("number of boards must be positive")
)

// Options configures a batch of boards.
type Options struct {
	Boards  int
	Threads int
	Rows    int
	Cols    int
	// Seeds fixes the board for each run. If Boards is zero it defaults
	// to len(Seeds).
	Seeds [][32]byte
	// LogWriter, if set, receives one CSV line per solved board.
	LogWriter io.Writer
}

// BoardResult is what one solved board came to.
type BoardResult struct {
	Index   int
	Board   string
	Words   int
	Score   int
	Longest string
}

// Results aggregates a batch of solved boards.
type Results struct {
	Rows    int
	Cols    int
	Boards  int
	Words   stats.Statistic
	Scores  stats.Statistic
	Best    BoardResult
	Longest string

	scores []float64
}

func (r *Results) add(br BoardResult) {
	r.Boards++
	r.Words.Push(float64(br.Words))
	r.Scores.Push(float64(br.Score))
	r.scores = append(r.scores, float64(br.Score))
	if r.Boards == 1 || br.Score > r.Best.Score ||
		(br.Score == r.Best.Score && br.Index < r.Best.Index) {
		r.Best = br
	}
	if longerWord(br.Longest, r.Longest) {
		r.Longest = br.Longest
	}
}

func longerWord(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

// Histogram buckets the per-board scores.
func (r *Results) Histogram(bins int) histogram.Histogram {
	return histogram.Hist(bins, r.scores)
}

// Summary is a human-readable report of the batch.
func (r *Results) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Boards solved: %d (%dx%d)\n", r.Boards, r.Rows, r.Cols)
	if r.Boards == 0 {
		return sb.String()
	}
	fmt.Fprintf(&sb, "Words per board: %.2f ± %.2f (min %.0f, max %.0f)\n",
		r.Words.Mean(), r.Words.ConfidenceInterval(95), r.Words.Min(), r.Words.Max())
	fmt.Fprintf(&sb, "Points per board: %.2f ± %.2f (min %.0f, max %.0f)\n",
		r.Scores.Mean(), r.Scores.ConfidenceInterval(95), r.Scores.Min(), r.Scores.Max())
	fmt.Fprintf(&sb, "Best board: %s (%d points, %d words)\n", r.Best.Board, r.Best.Score, r.Best.Words)
	if r.Longest != "" {
		fmt.Fprintf(&sb, "Longest word: %s\n", r.Longest)
	}
	// A histogram of identical values has zero-width buckets.
	if r.Scores.Max() > r.Scores.Min() {
		sb.WriteString("Score histogram:\n")
		if err := histogram.Fprint(&sb, r.Histogram(histogramBins), histogram.Linear(40)); err != nil {
			fmt.Fprintf(&sb, "(histogram unavailable: %v)\n", err)
		}
	}
	return sb.String()
}

// Runner solves batches of boards with one solver. Only one batch may run
// at a time.
type Runner struct {
	solver  *solver.Solver
	running atomic.Bool
}

func NewRunner(s *solver.Solver) *Runner {
	return &Runner{solver: s}
}

// IsRunning reports whether a batch is in progress.
func (r *Runner) IsRunning() bool {
	return r.running.Load()
}

// NumBoards is the number of boards a run solves: Boards, or one per seed
// when Boards is zero.
func (o Options) NumBoards() int {
	if o.Boards == 0 {
		return len(o.Seeds)
	}
	return o.Boards
}

// Validate checks the board count, seed count and board dimensions.
func (o Options) Validate() error {
	n := o.NumBoards()
	if n <= 0 {
		return ErrNoBoards
	}
	if len(o.Seeds) > 0 && n > len(o.Seeds) {
		return fmt.Errorf("only %d seeds for %d boards", len(o.Seeds), n)
	}
	if o.Rows <= 0 || o.Cols <= 0 {
		return board.ErrBadDimensions
	}
	return nil
}

// Run solves the requested boards across opts.Threads workers. If ctx is
// cancelled, the results gathered so far are returned along with ctx's error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Results, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := opts.NumBoards()
	threads := max(1, opts.Threads)
	threads = min(threads, n)

	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer r.running.Store(false)

	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("boards", n).Int("threads", threads).Msg("starting-autosolve")

	if opts.LogWriter != nil {
		if _, err := io.WriteString(opts.LogWriter, "index,board,words,score,longest\n"); err != nil {
			return nil, err
		}
	}

	res := &Results{Rows: opts.Rows, Cols: opts.Cols}
	var mu sync.Mutex
	jobs := make(chan int, threads)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range n {
			if gctx.Err() == nil {
				select {
				case jobs <- i:
					continue
				case <-gctx.Done():
				}
			}
			logger.Info().Int("queued", i).Msg("got stop signal, exiting soon...")
			return gctx.Err()
		}
		return nil
	})

	for t := 0; t < threads; t++ {
		g.Go(func() error {
			for i := range jobs {
				br := r.solveOne(i, opts)
				mu.Lock()
				res.add(br)
				var err error
				if opts.LogWriter != nil {
					_, err = fmt.Fprintf(opts.LogWriter, "%d,%s,%d,%d,%s\n",
						br.Index, br.Board, br.Words, br.Score, br.Longest)
				}
				mu.Unlock()
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	logger.Debug().Int("solved", res.Boards).Err(err).Msg("autosolve-finished")
	return res, err
}

func (r *Runner) solveOne(i int, opts Options) BoardResult {
	var g *board.Grid
	if len(opts.Seeds) > 0 {
		g = board.Shake(board.NewSeededShaker(opts.Seeds[i]), opts.Rows, opts.Cols)
	} else {
		g = board.Random(opts.Rows, opts.Cols)
	}
	words := r.solver.AllValidWords(g).Sorted()
	br := BoardResult{
		Index: i,
		Board: strings.Join(g.RowStrings(), "/"),
		Words: len(words),
		Score: lo.SumBy(words, r.solver.ScoreOf),
	}
	if len(words) > 0 {
		br.Longest = words[0]
	}
	return br
}
