package solver

import "github.com/domino14/boggle/trie"

// MinWordLength is the shortest word that counts, measured with Q as "QU".
const MinWordLength = 3

// ScoreLength maps a word length to its point value.
func ScoreLength(n int) int {
	switch {
	case n < 3:
		return 0
	case n < 5:
		return 1
	case n < 6:
		return 2
	case n < 7:
		return 3
	case n < 8:
		return 5
	default:
		return 11
	}
}

// ScoreOf scores a word against a dictionary. Words not in the dictionary
// are worth nothing no matter their length.
func ScoreOf(word string, t trie.Trie) int {
	if !t.Contains(word) {
		return 0
	}
	return ScoreLength(len(word))
}
