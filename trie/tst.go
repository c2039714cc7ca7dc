package trie

type tnode struct {
	c          byte
	isWord     bool
	lo, eq, hi NodeIdx
}

// TST is a ternary search trie. It uses less memory per node than RTrie at
// the cost of a slower descent, since each letter is found by walking a small
// binary tree of siblings.
//
// A NodeIdx handed out by a TST addresses the node holding the last letter
// consumed. Root is a virtual node whose eq link is the top of the tree.
type TST struct {
	nodes    []tnode
	numWords int
}

func NewTST() *TST {
	return &TST{nodes: make([]tnode, 2)}
}

func (t *TST) Root() NodeIdx {
	return rootIdx
}

func (t *TST) newNode(c byte) NodeIdx {
	t.nodes = append(t.nodes, tnode{c: c})
	return NodeIdx(len(t.nodes) - 1)
}

// step finds the child of n for letter c among the siblings hanging off
// n's eq link.
func (t *TST) step(n NodeIdx, c byte) NodeIdx {
	cur := t.nodes[n].eq
	for cur != NoNode {
		nc := t.nodes[cur].c
		switch {
		case c < nc:
			cur = t.nodes[cur].lo
		case c > nc:
			cur = t.nodes[cur].hi
		default:
			return cur
		}
	}
	return NoNode
}

func (t *TST) Insert(word string) {
	if word == "" {
		return
	}
	parent := rootIdx
	for i := 0; i < len(word); i++ {
		c := word[i]
		cur := t.nodes[parent].eq
		if cur == NoNode {
			cur = t.newNode(c)
			t.nodes[parent].eq = cur
		}
		for t.nodes[cur].c != c {
			if c < t.nodes[cur].c {
				next := t.nodes[cur].lo
				if next == NoNode {
					next = t.newNode(c)
					t.nodes[cur].lo = next
				}
				cur = next
			} else {
				next := t.nodes[cur].hi
				if next == NoNode {
					next = t.newNode(c)
					t.nodes[cur].hi = next
				}
				cur = next
			}
		}
		parent = cur
	}
	if !t.nodes[parent].isWord {
		t.nodes[parent].isWord = true
		t.numWords++
	}
}

func (t *TST) Contains(word string) bool {
	if word == "" {
		return false
	}
	n := rootIdx
	for i := 0; n != NoNode && i < len(word); i++ {
		n = t.step(n, word[i])
	}
	return t.nodes[n].isWord
}

func (t *TST) Descend(from NodeIdx, text []byte, start int) NodeIdx {
	n := from
	for i := start; n != NoNode && i < len(text); i++ {
		n = t.step(n, text[i])
	}
	return n
}

func (t *TST) IsWord(n NodeIdx) bool {
	return t.nodes[n].isWord
}

// NumNodes counts letter nodes; the virtual root is not included.
func (t *TST) NumNodes() int {
	return len(t.nodes) - 2
}

func (t *TST) NumWords() int {
	return t.numWords
}
