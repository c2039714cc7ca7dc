package trie

import "sort"

type rnode struct {
	children [AlphabetSize]NodeIdx
	isWord   bool
}

// RTrie is a 26-way trie. Each node has one child slot per letter, indexed
// by letter - 'A'. Letters outside A-Z fault with an index out of range.
type RTrie struct {
	nodes    []rnode
	numWords int
}

// NewRTrie returns an empty trie with just the root.
func NewRTrie() *RTrie {
	// nodes[0] is the NoNode sentinel; its children are all NoNode, so
	// walking from it never goes anywhere.
	return &RTrie{nodes: make([]rnode, 2)}
}

func (t *RTrie) Root() NodeIdx {
	return rootIdx
}

func (t *RTrie) step(n NodeIdx, c byte) NodeIdx {
	return t.nodes[n].children[c-'A']
}

func (t *RTrie) Insert(word string) {
	if word == "" {
		return
	}
	n := rootIdx
	for i := 0; i < len(word); i++ {
		slot := word[i] - 'A'
		next := t.nodes[n].children[slot]
		if next == NoNode {
			t.nodes = append(t.nodes, rnode{})
			next = NodeIdx(len(t.nodes) - 1)
			t.nodes[n].children[slot] = next
		}
		n = next
	}
	if !t.nodes[n].isWord {
		t.nodes[n].isWord = true
		t.numWords++
	}
}

func (t *RTrie) find(word string) NodeIdx {
	n := rootIdx
	for i := 0; n != NoNode && i < len(word); i++ {
		n = t.step(n, word[i])
	}
	return n
}

func (t *RTrie) Contains(word string) bool {
	if word == "" {
		return false
	}
	return t.nodes[t.find(word)].isWord
}

func (t *RTrie) Descend(from NodeIdx, text []byte, start int) NodeIdx {
	n := from
	for i := start; n != NoNode && i < len(text); i++ {
		n = t.step(n, text[i])
	}
	return n
}

func (t *RTrie) IsWord(n NodeIdx) bool {
	return t.nodes[n].isWord
}

// NumNodes counts allocated nodes, root included.
func (t *RTrie) NumNodes() int {
	return len(t.nodes) - 1
}

func (t *RTrie) NumWords() int {
	return t.numWords
}

// KeysWithPrefix returns every inserted word starting with prefix, sorted.
func (t *RTrie) KeysWithPrefix(prefix string) []string {
	n := t.find(prefix)
	if n == NoNode {
		return nil
	}
	var keys []string
	buf := []byte(prefix)
	t.collect(n, &buf, &keys)
	sort.Strings(keys)
	return keys
}

func (t *RTrie) collect(n NodeIdx, buf *[]byte, keys *[]string) {
	if t.nodes[n].isWord {
		*keys = append(*keys, string(*buf))
	}
	for slot, child := range t.nodes[n].children {
		if child == NoNode {
			continue
		}
		*buf = append(*buf, byte('A'+slot))
		t.collect(child, buf, keys)
		*buf = (*buf)[:len(*buf)-1]
	}
}

// LongestPrefixOf returns the longest inserted word that is a prefix of
// query, or "" if there is none.
func (t *RTrie) LongestPrefixOf(query string) string {
	length := 0
	n := rootIdx
	for i := 0; i < len(query); i++ {
		n = t.step(n, query[i])
		if n == NoNode {
			break
		}
		if t.nodes[n].isWord {
			length = i + 1
		}
	}
	return query[:length]
}
