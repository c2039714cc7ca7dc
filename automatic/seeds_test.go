package automatic

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	seeds := GenerateSeeds(5)
	is.Equal(len(seeds), 5)
	is.True(seeds[0] != seeds[1])

	var buf bytes.Buffer
	is.NoErr(WriteSeeds(&buf, seeds))
	is.True(strings.HasPrefix(buf.String(), "#"))
	read, err := ReadSeeds(&buf)
	is.NoErr(err)
	is.Equal(read, seeds)
}

func TestSaveLoadSeeds(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	seeds := GenerateSeeds(3)
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	_, err = LoadSeeds(filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)
}

func TestReadSeedsErrors(t *testing.T) {
	is := is.New(t)
	_, err := ReadSeeds(strings.NewReader("# header\n\nnot*base64\n"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "line 3"))

	_, err = ReadSeeds(strings.NewReader("AAAA\n"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "invalid seed length"))
}
