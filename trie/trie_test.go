package trie

import (
	"testing"

	"github.com/matryer/is"
)

type testpair struct {
	word  string
	found bool
}

var testWords = []string{
	"CAT", "CATS", "AT", "QUIZ", "QUIT", "QUITE", "ZYZZYVA", "A", "CATAMARAN",
}

var containsTests = []testpair{
	{"CAT", true},
	{"CATS", true},
	{"AT", true},
	{"A", true},
	{"CA", false},
	{"C", false},
	{"CATA", false},
	{"CATAMARAN", true},
	{"CATAMARANS", false},
	{"QU", false},
	{"QUI", false},
	{"QUIZ", true},
	{"QUITE", true},
	{"ZYZZYVA", true},
	{"ZYZZYV", false},
	{"DOG", false},
	{"", false},
}

var prefixTests = []testpair{
	{"C", true},
	{"CA", true},
	{"CATAM", true},
	{"QU", true},
	{"QUIZZ", false},
	{"Q", true},
	{"QI", false},
	{"B", false},
	{"ZYZZYVAS", false},
}

func makeTries() map[string]Trie {
	return map[string]Trie{
		"rtrie": Build(NewRTrie(), testWords),
		"tst":   Build(NewTST(), testWords),
	}
}

func TestContains(t *testing.T) {
	is := is.New(t)
	for name, tr := range makeTries() {
		for _, pair := range containsTests {
			if tr.Contains(pair.word) != pair.found {
				t.Errorf("%s: for %q expected %v", name, pair.word, pair.found)
			}
		}
		is.Equal(tr.NumWords(), len(testWords))
	}
}

func TestDescendPrefixes(t *testing.T) {
	for name, tr := range makeTries() {
		for _, pair := range prefixTests {
			n := tr.Descend(tr.Root(), []byte(pair.word), 0)
			if (n != NoNode) != pair.found {
				t.Errorf("%s: for prefix %q expected %v", name, pair.word, pair.found)
			}
		}
	}
}

func TestDescendIncremental(t *testing.T) {
	is := is.New(t)
	for _, tr := range makeTries() {
		buf := []byte("QU")
		n := tr.Descend(tr.Root(), buf, 0)
		is.True(n != NoNode)
		is.True(!tr.IsWord(n))

		buf = append(buf, 'I')
		n = tr.Descend(n, buf, 2)
		is.True(n != NoNode)

		buf = append(buf, 'T')
		n = tr.Descend(n, buf, 3)
		is.True(tr.IsWord(n))

		// Descending with nothing new to consume stays put.
		is.Equal(tr.Descend(n, buf, len(buf)), n)

		buf = append(buf, 'E')
		n = tr.Descend(n, buf, 4)
		is.True(tr.IsWord(n))

		buf = append(buf, 'X')
		is.Equal(tr.Descend(n, buf, 5), NoNode)
		// Nothing comes back from NoNode.
		is.Equal(tr.Descend(NoNode, []byte("CAT"), 0), NoNode)
	}
}

func TestInsertIdempotent(t *testing.T) {
	is := is.New(t)
	for name, ctor := range map[string]func() Trie{
		"rtrie": func() Trie { return NewRTrie() },
		"tst":   func() Trie { return NewTST() },
	} {
		once := ctor()
		once.Insert("QUIZ")
		many := ctor()
		for i := 0; i < 5; i++ {
			many.Insert("QUIZ")
		}
		is.Equal(once.NumNodes(), many.NumNodes())
		is.Equal(many.NumWords(), 1)
		if !many.Contains("QUIZ") {
			t.Errorf("%s: expected QUIZ", name)
		}
	}
}

func TestContainsSurvivesLaterInserts(t *testing.T) {
	is := is.New(t)
	tr := NewRTrie()
	tr.Insert("CATS")
	is.True(!tr.Contains("CAT"))
	tr.Insert("CAT")
	tr.Insert("CATAPULT")
	tr.Insert("C")
	is.True(tr.Contains("CATS"))
	is.True(tr.Contains("CAT"))
	is.True(tr.Contains("C"))
}

func TestEmptyInsertIgnored(t *testing.T) {
	is := is.New(t)
	for _, tr := range []Trie{NewRTrie(), NewTST()} {
		tr.Insert("")
		is.Equal(tr.NumWords(), 0)
		is.True(!tr.IsWord(tr.Root()))
	}
}

func TestRTrieBadLetterFaults(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic for a lowercase letter")
		}
	}()
	NewRTrie().Insert("cat")
}

func TestKeysWithPrefix(t *testing.T) {
	is := is.New(t)
	tr := Build(NewRTrie(), testWords).(*RTrie)
	is.Equal(tr.KeysWithPrefix("QUI"), []string{"QUIT", "QUITE", "QUIZ"})
	is.Equal(tr.KeysWithPrefix("CAT"), []string{"CAT", "CATAMARAN", "CATS"})
	is.Equal(len(tr.KeysWithPrefix("")), len(testWords))
	is.Equal(len(tr.KeysWithPrefix("X")), 0)
}

func TestLongestPrefixOf(t *testing.T) {
	is := is.New(t)
	tr := Build(NewRTrie(), testWords).(*RTrie)
	is.Equal(tr.LongestPrefixOf("CATSUP"), "CATS")
	is.Equal(tr.LongestPrefixOf("CATAMA"), "CAT")
	is.Equal(tr.LongestPrefixOf("ATOM"), "AT")
	is.Equal(tr.LongestPrefixOf("DOG"), "")
}

func TestTSTAndRTrieSameLetterCount(t *testing.T) {
	is := is.New(t)
	r := Build(NewRTrie(), testWords)
	s := Build(NewTST(), testWords)
	// One node per stored letter in both; the RTrie also has a root.
	is.Equal(r.NumNodes()-1, s.NumNodes())
}
