// Package testhelpers has fixtures shared by package tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/domino14/boggle/config"
)

// WriteWordList writes words one per line to dir/name, creating any
// directories in name, and returns the file's path.
func WriteWordList(t testing.TB, dir, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ConfigWithDataPath returns a default config that finds lexica under dir.
func ConfigWithDataPath(t testing.TB, dir string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Load([]string{"--data-path", dir}); err != nil {
		t.Fatal(err)
	}
	return cfg
}
