package lexicon

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/domino14/word-golib/cache"
	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/tilemapping"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/config"
)

const (
	CacheKeyPrefix = "wordlist:"
	// FileExtension is the extension of word list files under
	// <data-path>/lexica.
	FileExtension = ".txt"
)

// cacheLoadFunc returns the function that loads a named word list into
// word-golib's global cache. The checker is resolved beforehand since the
// cache is locked while a load func runs.
func cacheLoadFunc(check wordChecker) func(cfg *wglconfig.Config, key string) (interface{}, error) {
	return func(cfg *wglconfig.Config, key string) (interface{}, error) {
		name := strings.TrimPrefix(key, CacheKeyPrefix)
		path := filepath.Join(cfg.DataPath, "lexica", name+FileExtension)
		return loadFile(path, name, check)
	}
}

// checkerFor validates words against the English tile mapping when the
// letter distribution is available, and against plain A-Z otherwise.
func checkerFor(cfg *wglconfig.Config) wordChecker {
	ld, err := tilemapping.EnglishLetterDistribution(cfg)
	if err != nil {
		log.Debug().Err(err).Msg("no-english-distribution-using-plain-letters")
		return IsPlainWord
	}
	return tileMappingChecker(ld.TileMapping())
}

// Load gets a named word list, reading <data-path>/lexica/<name>.txt the
// first time and the cached copy after that.
func Load(cfg *config.Config, name string) (*Lexicon, error) {
	wcfg := cfg.WGLConfig()
	obj, err := cache.Load(wcfg, CacheKeyPrefix+name, cacheLoadFunc(checkerFor(wcfg)))
	if err != nil {
		return nil, err
	}
	lex, ok := obj.(*Lexicon)
	if !ok {
		return nil, errors.New("could not read word list " + name)
	}
	return lex, nil
}

// LoadFile reads a word list from a path, bypassing the cache. The lexicon
// is named after the file.
func LoadFile(path string) (*Lexicon, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return loadFile(path, name, IsPlainWord)
}

func loadFile(path, name string, check wordChecker) (*Lexicon, error) {
	log.Debug().Msgf("Loading %v ...", path)
	file, _, err := cache.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %s: %w", name, err)
	}
	defer file.Close()
	return readLexicon(file, name, check)
}
