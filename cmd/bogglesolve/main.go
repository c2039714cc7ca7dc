// bogglesolve prints every word on a board and the board's total score.
//
//	bogglesolve [-format text|yaml] <dictionary-file> <board-file|ROW/ROW/...>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/solver"
)

var errUsage = errors.New("usage: bogglesolve [-format text|yaml] [-threads n] [-ternary-trie] <dictionary-file> <board-file|ROW/ROW/...>")

type report struct {
	Board []string            `yaml:"board"`
	Words []solver.ScoredWord `yaml:"words"`
	Total int                 `yaml:"total"`
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	fs := pflag.NewFlagSet("bogglesolve", pflag.ContinueOnError)
	format := fs.String("format", "text", "output format: text or yaml")
	threads := fs.Int("threads", 1, "goroutines used to search the board")
	ternary := fs.Bool("ternary-trie", false, "store the dictionary in a ternary search trie")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	if *format != "text" && *format != "yaml" {
		return fmt.Errorf("unknown format %q", *format)
	}

	lex, err := lexicon.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := readBoard(fs.Arg(1))
	if err != nil {
		return err
	}

	opts := []solver.Option{solver.WithThreads(*threads)}
	if *ternary {
		opts = append(opts, solver.WithTernaryTrie())
	}
	s := solver.NewSolver(lex.Words, opts...)
	sol, err := s.Solve(context.Background(), b)
	if err != nil {
		return err
	}

	if *format == "yaml" {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(report{Board: b.RowStrings(), Words: sol.Words, Total: sol.Total}); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, sw := range sol.Words {
		fmt.Fprintln(w, sw.Word)
	}
	_, err = fmt.Fprintf(w, "Score = %d\n", sol.Total)
	return err
}

// readBoard reads a board file if arg names one, otherwise parses arg
// itself as rows.
func readBoard(arg string) (*board.Grid, error) {
	f, err := os.Open(arg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return board.FromString(arg)
		}
		return nil, err
	}
	defer f.Close()
	return board.Parse(f)
}
