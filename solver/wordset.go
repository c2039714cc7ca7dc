package solver

import (
	"sort"

	"github.com/samber/lo"
)

// WordSet is a set of distinct words found on a board.
type WordSet map[string]struct{}

func NewWordSet() WordSet {
	return make(WordSet)
}

func (ws WordSet) Add(word string) {
	ws[word] = struct{}{}
}

func (ws WordSet) Contains(word string) bool {
	_, ok := ws[word]
	return ok
}

func (ws WordSet) Len() int {
	return len(ws)
}

// Merge adds every word of other into ws.
func (ws WordSet) Merge(other WordSet) {
	for w := range other {
		ws[w] = struct{}{}
	}
}

// Sorted returns the words longest first, ties broken alphabetically.
func (ws WordSet) Sorted() []string {
	words := lo.Keys(ws)
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}
