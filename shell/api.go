package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/boggle/automatic"
	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/solver"
	"github.com/domino14/boggle/trie"
)

const (
	defaultAutosolveBoards = 100
	maxPrefixWords         = 200
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

// settable maps the config keys the `set` command may change to a parser
// for their values.
var settable = map[string]func(string) (any, error){
	config.ConfigDefaultLexicon: func(s string) (any, error) { return strings.ToUpper(s), nil },
	config.ConfigBoardRows:      positiveInt,
	config.ConfigBoardCols:      positiveInt,
	config.ConfigSolverThreads:  positiveInt,
	config.ConfigTernaryTrie:    func(s string) (any, error) { return strconv.ParseBool(s) },
}

func positiveInt(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errors.New("value must be positive")
	}
	return n, nil
}

func (sc *ShellController) buildSolver(words []string) *solver.Solver {
	opts := []solver.Option{solver.WithThreads(sc.config.GetInt(config.ConfigSolverThreads))}
	if sc.config.GetBool(config.ConfigTernaryTrie) {
		opts = append(opts, solver.WithTernaryTrie())
	}
	return solver.NewSolver(words, opts...)
}

func (sc *ShellController) loadLexicon(name string) (*Response, error) {
	var lex *lexicon.Lexicon
	var err error
	if strings.ContainsRune(name, os.PathSeparator) || filepath.Ext(name) != "" {
		lex, err = lexicon.LoadFile(name)
	} else {
		lex, err = lexicon.Load(sc.config, strings.ToUpper(name))
	}
	if err != nil {
		return nil, err
	}
	sc.lexicon = lex
	sc.solver = sc.buildSolver(lex.Words)
	return msg(fmt.Sprintf("loaded %s: %d words, %d trie nodes",
		lex.Name, len(lex.Words), sc.solver.Trie().NumNodes())), nil
}

func (sc *ShellController) lexiconCmd(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.lexicon == nil {
			return nil, errNoLexicon
		}
		return msg(fmt.Sprintf("%s: %d words (%d lines skipped)",
			sc.lexicon.Name, len(sc.lexicon.Words), sc.lexicon.Skipped)), nil
	}
	return sc.loadLexicon(cmd.args[0])
}

func (sc *ShellController) boardCmd(cmd *shellcmd) (*Response, error) {
	sub := "show"
	if len(cmd.args) > 0 {
		sub = cmd.args[0]
	}
	switch sub {
	case "show":
		if sc.board == nil {
			return nil, errNoBoard
		}
	case "random":
		rows := sc.config.GetInt(config.ConfigBoardRows)
		cols := sc.config.GetInt(config.ConfigBoardCols)
		if len(cmd.args) == 3 {
			var err error
			if rows, err = strconv.Atoi(cmd.args[1]); err != nil {
				return nil, err
			}
			if cols, err = strconv.Atoi(cmd.args[2]); err != nil {
				return nil, err
			}
		} else if len(cmd.args) != 1 {
			return nil, errors.New("usage: board random [rows cols]")
		}
		g := board.Random(rows, cols)
		if g == nil {
			return nil, board.ErrBadDimensions
		}
		sc.board = g
	case "set":
		if len(cmd.args) < 2 {
			return nil, errors.New("usage: board set <ROW/ROW/...>")
		}
		g, err := board.FromString(strings.Join(cmd.args[1:], " "))
		if err != nil {
			return nil, err
		}
		sc.board = g
	case "load":
		if len(cmd.args) != 2 {
			return nil, errors.New("usage: board load <file>")
		}
		f, err := os.Open(cmd.args[1])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := board.Parse(f)
		if err != nil {
			return nil, err
		}
		sc.board = g
	default:
		return nil, errors.New("unrecognized board subcommand: " + sub)
	}
	return msg(board.ToDisplayText(sc.board)), nil
}

func (sc *ShellController) ready() error {
	if sc.solver == nil {
		return errNoLexicon
	}
	if sc.board == nil {
		return errNoBoard
	}
	return nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if err := sc.ready(); err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.solver.Threads())
	if err != nil {
		return nil, err
	}
	sol, err := sc.solver.SolveThreads(context.Background(), sc.board, threads)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(board.ToDisplayText(sc.board))
	sb.WriteString("\n")
	for _, w := range sol.Words {
		fmt.Fprintf(&sb, "%-16s %3d\n", w.Word, w.Score)
	}
	fmt.Fprintf(&sb, "%d words. Score = %d", len(sol.Words), sol.Total)
	return msg(sb.String()), nil
}

// wordArg uppercases a word typed at the shell and rejects anything that
// is not plain A-Z.
func wordArg(arg string) (string, error) {
	word := strings.ToUpper(arg)
	if !lexicon.IsPlainWord(word) {
		return "", fmt.Errorf("%q is not a word of letters A-Z", arg)
	}
	return word, nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: score <word>")
	}
	word, err := wordArg(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%s: %d", word, sc.solver.ScoreOf(word))), nil
}

func (sc *ShellController) path(cmd *shellcmd) (*Response, error) {
	if sc.board == nil {
		return nil, errNoBoard
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: path <word>")
	}
	word, err := wordArg(cmd.args[0])
	if err != nil {
		return nil, err
	}
	p := solver.FindPath(sc.board, word)
	if p == nil {
		return msg(word + " cannot be traced on this board"), nil
	}
	coords := lo.Map(p, func(c board.Coord, _ int) string { return c.String() })
	out := word + ": " + strings.Join(coords, " ")
	if sc.solver != nil && sc.solver.ScoreOf(word) == 0 {
		out += " (not a scoring word)"
	}
	return msg(out), nil
}

func (sc *ShellController) prefix(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: prefix <letters>")
	}
	rt, ok := sc.solver.Trie().(*trie.RTrie)
	if !ok {
		return nil, errors.New("prefix listing needs the 26-way trie; `set ternary-trie false` and reload the lexicon")
	}
	pfx, err := wordArg(cmd.args[0])
	if err != nil {
		return nil, err
	}
	words := rt.KeysWithPrefix(pfx)
	if len(words) == 0 {
		return msg("no words"), nil
	}
	out := strings.Join(lo.Slice(words, 0, maxPrefixWords), " ")
	if len(words) > maxPrefixWords {
		out += fmt.Sprintf(" ... (%d total)", len(words))
	}
	return msg(out), nil
}

func (sc *ShellController) autosolve(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		switch cmd.args[0] {
		case "stop":
			sc.autoMu.Lock()
			defer sc.autoMu.Unlock()
			if sc.autoCancel == nil {
				return nil, errors.New("no autosolve running")
			}
			sc.autoCancel()
			return msg("stopping autosolve"), nil
		case "show":
			sc.autoMu.Lock()
			defer sc.autoMu.Unlock()
			if sc.autoResults == nil {
				return nil, errors.New("no autosolve results yet")
			}
			return msg(sc.autoResults.Summary()), nil
		default:
			return nil, errors.New("unrecognized autosolve argument: " + cmd.args[0])
		}
	}
	if sc.solver == nil {
		return nil, errNoLexicon
	}

	opts, cleanup, err := sc.autosolveOptions(cmd.options)
	if err != nil {
		return nil, err
	}

	sc.autoMu.Lock()
	if sc.autoCancel != nil {
		sc.autoMu.Unlock()
		cleanup()
		return nil, errors.New("autosolve already running, please do `autosolve stop` first")
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoCancel = cancel
	sc.autoDone = done
	sc.autoMu.Unlock()

	runner := automatic.NewRunner(sc.solver)
	go func() {
		defer close(done)
		defer cancel()
		res, err := runner.Run(ctx, opts)
		cleanup()
		sc.autoMu.Lock()
		sc.autoCancel = nil
		if res != nil {
			sc.autoResults = res
		}
		sc.autoMu.Unlock()
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Err(err).Msg("autosolve-failed")
			return
		}
		log.Info().Int("boards", res.Boards).Msg("autosolve-done")
		sc.showMessage(res.Summary())
	}()

	n := opts.Boards
	if n == 0 {
		n = len(opts.Seeds)
	}
	return msg(fmt.Sprintf("solving %d random %dx%d boards with %d threads; `autosolve show` or `autosolve stop`",
		n, opts.Rows, opts.Cols, opts.Threads)), nil
}

// autosolveOptions turns command options into runner options. The returned
// cleanup func closes any log file that was opened.
func (sc *ShellController) autosolveOptions(co CmdOptions) (automatic.Options, func(), error) {
	cleanup := func() {}
	var opts automatic.Options
	var err error
	if opts.Rows, err = co.IntDefault("rows", sc.config.GetInt(config.ConfigBoardRows)); err != nil {
		return opts, cleanup, err
	}
	if opts.Cols, err = co.IntDefault("cols", sc.config.GetInt(config.ConfigBoardCols)); err != nil {
		return opts, cleanup, err
	}
	if opts.Threads, err = co.IntDefault("threads", sc.config.GetInt(config.ConfigSolverThreads)); err != nil {
		return opts, cleanup, err
	}
	defaultBoards := defaultAutosolveBoards
	if seedFile := co.String("seeds"); seedFile != "" {
		if opts.Seeds, err = automatic.LoadSeeds(seedFile); err != nil {
			return opts, cleanup, err
		}
		defaultBoards = 0
	}
	if opts.Boards, err = co.IntDefault("n", defaultBoards); err != nil {
		return opts, cleanup, err
	}
	saveFile := co.String("saveseeds")
	if saveFile != "" && opts.Seeds != nil {
		return opts, cleanup, errors.New("-seeds and -saveseeds cannot be used together")
	}
	if err = opts.Validate(); err != nil {
		return opts, cleanup, err
	}
	if saveFile != "" {
		opts.Seeds = automatic.GenerateSeeds(opts.Boards)
		if err = automatic.SaveSeeds(opts.Seeds, saveFile); err != nil {
			return opts, cleanup, err
		}
	}
	if logFile := co.String("log"); logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return opts, cleanup, err
		}
		opts.LogWriter = f
		cleanup = func() { f.Close() }
	}
	return opts, cleanup, nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	sc.config.Lock()
	defer sc.config.Unlock()
	if len(cmd.args) == 0 {
		keys := lo.Keys(settable)
		sort.Strings(keys)
		lines := lo.Map(keys, func(k string, _ int) string {
			return fmt.Sprintf("%-16s %v", k, sc.config.Get(k))
		})
		return msg(strings.Join(lines, "\n")), nil
	}
	key := cmd.args[0]
	parse, ok := settable[key]
	if !ok {
		return nil, errors.New("cannot set " + key)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s: %v", key, sc.config.Get(key))), nil
	}
	val, err := parse(cmd.args[1])
	if err != nil {
		return nil, err
	}
	sc.config.Set(key, val)
	if sc.lexicon != nil && (key == config.ConfigSolverThreads || key == config.ConfigTernaryTrie) {
		sc.solver = sc.buildSolver(sc.lexicon.Words)
	}
	return msg(fmt.Sprintf("set %s to %v", key, val)), nil
}
