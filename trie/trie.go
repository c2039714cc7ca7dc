// Package trie holds the prefix trees used to answer "is this a word" and
// "is this a prefix of some word" while walking a board.
//
// Both implementations store their nodes in a flat arena and hand out
// NodeIdx handles into it, the same way the KWG and GADDAG node arrays work.
// Index 0 is never a real node; it stands for "no such prefix".
package trie

// NodeIdx addresses a node inside a trie's arena.
type NodeIdx uint32

// NoNode is returned by Descend when the walked text is not a prefix of any
// inserted word.
const NoNode NodeIdx = 0

const (
	// AlphabetSize is the number of letters a trie can branch on (A-Z).
	AlphabetSize = 26
	rootIdx      = NodeIdx(1)
)

// Trie is the contract the search engine relies on. Words are uppercase A-Z.
type Trie interface {
	// Insert adds a word. Inserting the same word twice has no further effect.
	Insert(word string)
	// Contains returns true only if word itself was inserted.
	Contains(word string) bool
	// Root returns the node for the empty prefix.
	Root() NodeIdx
	// Descend walks from the given node consuming text[start:], returning the
	// node reached or NoNode as soon as a letter has no child.
	Descend(from NodeIdx, text []byte, start int) NodeIdx
	// IsWord returns whether the prefix spelled up to n is a complete word.
	IsWord(n NodeIdx) bool
	NumNodes() int
	NumWords() int
}

// Build inserts all words into t and returns it.
func Build(t Trie, words []string) Trie {
	for _, w := range words {
		t.Insert(w)
	}
	return t
}
