// Package lexicon reads the word lists that solvers are built from.
package lexicon

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/domino14/word-golib/tilemapping"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Lexicon is a named list of uppercase A-Z words.
type Lexicon struct {
	Name  string
	Words []string
	// Skipped counts lines that were not usable words.
	Skipped int
}

// wordChecker reports whether a normalized word can go into a trie.
type wordChecker func(word string) bool

// IsPlainWord reports whether word is non-empty and made only of the
// letters A-Z.
func IsPlainWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// tileMappingChecker accepts words that are plain A-Z and that map one
// letter to one tile in tm, with no blanks.
func tileMappingChecker(tm *tilemapping.TileMapping) wordChecker {
	return func(word string) bool {
		if !IsPlainWord(word) {
			return false
		}
		mw, err := tilemapping.ToMachineWord(word, tm)
		if err != nil || len(mw) != len(word) {
			return false
		}
		for _, ml := range mw {
			if ml == 0 {
				return false
			}
		}
		return true
	}
}

// ReadWords reads one word per line; anything after the first field on a
// line (definitions, probabilities) is ignored, as are blank lines and lines
// starting with #. Words are uppercased. Words with letters outside A-Z
// are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	lex, err := readLexicon(r, "", IsPlainWord)
	if err != nil {
		return nil, err
	}
	return lex.Words, nil
}

func readLexicon(r io.Reader, name string, check wordChecker) (*Lexicon, error) {
	upper := cases.Upper(language.English)
	lex := &Lexicon{Name: name}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		word := upper.String(fields[0])
		// Case mapping may expand a letter (ß to SS); such words are not A-Z.
		if utf8.RuneCountInString(word) != utf8.RuneCountInString(fields[0]) || !check(word) {
			lex.Skipped++
			log.Debug().Str("word", fields[0]).Msg("skipping-invalid-word")
			continue
		}
		lex.Words = append(lex.Words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if lex.Skipped > 0 {
		log.Info().Str("lexicon", name).Int("skipped", lex.Skipped).Msg("skipped-invalid-words")
	}
	log.Debug().Str("lexicon", name).Int("words", len(lex.Words)).Msg("read-lexicon")
	return lex, nil
}
