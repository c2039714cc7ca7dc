package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/automatic"
	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/solver"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoLexicon         = errors.New("no lexicon loaded; use the `lexicon` command first")
	errNoBoard           = errors.New("no board yet; use `board random` or `board set` first")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	lexicon *lexicon.Lexicon
	solver  *solver.Solver
	board   *board.Grid

	autoMu      sync.Mutex
	autoCancel  context.CancelFunc
	autoDone    chan struct{}
	autoResults *automatic.Results
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writePrompt() string {
	return "\033[32mboggle>\033[0m "
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := newController(cfg, os.Stderr)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          writePrompt(),
		HistoryFile:     filepath.Join(os.TempDir(), "boggle_readline.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()

	if name := cfg.GetString(config.ConfigDefaultLexicon); name != "" {
		if _, err := sc.loadLexicon(name); err != nil {
			log.Warn().Err(err).Str("lexicon", name).Msg("could-not-load-default-lexicon")
		}
	}
	return sc
}

func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{out: out, config: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		field := fields[idx]
		if strings.HasPrefix(field, "-") && len(field) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := field[1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, field)
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errors.New("sending quit signal")
	case "help":
		if cmd.args == nil {
			return usage("usage")
		}
		return usage(cmd.args[0])
	case "lexicon":
		return sc.lexiconCmd(cmd)
	case "board":
		return sc.boardCmd(cmd)
	case "solve":
		return sc.solve(cmd)
	case "score":
		return sc.score(cmd)
	case "path":
		return sc.path(cmd)
	case "prefix":
		return sc.prefix(cmd)
	case "autosolve":
		return sc.autosolve(cmd)
	case "set":
		return sc.set(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, errors.New("command not recognized: " + cmd.cmd)
	}
}

// Execute runs a single line as if it were typed into the shell.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		sc.Execute(sig, line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup stops any batch still running.
func (sc *ShellController) Cleanup() {
	sc.autoMu.Lock()
	defer sc.autoMu.Unlock()
	if sc.autoCancel != nil {
		sc.autoCancel()
		sc.autoCancel = nil
	}
}
