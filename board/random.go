package board

import (
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Shaker supplies the randomness for shaking up a board.
type Shaker interface {
	Intn(n int) int
	Perm(n int) []int
}

type cryptoShaker struct{}

func (cryptoShaker) Intn(n int) int    { return frand.Intn(n) }
func (cryptoShaker) Perm(n int) []int { return frand.Perm(n) }

type seededShaker struct {
	r *rand.Rand
}

// NewSeededShaker returns a Shaker that always produces the same sequence
// of boards for the same seed.
func NewSeededShaker(seed [32]byte) Shaker {
	return seededShaker{r: rand.New(rand.NewChaCha8(seed))}
}

func (s seededShaker) Intn(n int) int    { return s.r.IntN(n) }
func (s seededShaker) Perm(n int) []int { return s.r.Perm(n) }

// DiceFor returns the dice set for a board size, or nil if there isn't one.
func DiceFor(rows, cols int) []string {
	switch {
	case rows == 4 && cols == 4:
		return ClassicDice
	case rows == 5 && cols == 5:
		return BigDice
	}
	return nil
}

// Random shakes up a new board. 4x4 and 5x5 boards use their dice sets;
// any other size draws each cell by English letter frequency.
func Random(rows, cols int) *Grid {
	return Shake(cryptoShaker{}, rows, cols)
}

// Shake is Random with the caller's source of randomness.
func Shake(s Shaker, rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	g := &Grid{rows: rows, cols: cols, letters: make([]byte, rows*cols)}
	dice := DiceFor(rows, cols)
	if dice != nil {
		for i, d := range s.Perm(len(dice)) {
			die := dice[d]
			g.letters[i] = die[s.Intn(len(die))]
		}
		return g
	}
	log.Debug().Int("rows", rows).Int("cols", cols).Msg("no-dice-set-using-letter-frequencies")
	total := 0
	for _, w := range letterWeights {
		total += w
	}
	for i := range g.letters {
		g.letters[i] = weightedLetter(s.Intn(total))
	}
	return g
}

func weightedLetter(n int) byte {
	for i, w := range letterWeights {
		if n < w {
			return byte('A' + i)
		}
		n -= w
	}
	return 'E'
}
