package shell

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-threads")
	Args    []string // Possible argument values (for non-option arguments)
}

var commandMetadata = map[string]CommandMetadata{
	"board": {
		Args: []string{"show", "random", "set", "load"},
	},
	"solve": {
		Options: []string{"-threads"},
	},
	"autosolve": {
		Options: []string{"-n", "-threads", "-rows", "-cols", "-seeds", "-saveseeds", "-log"},
		Args:    []string{"stop", "show"},
	},
	"help": {
		Args: []string{"lexicon", "board", "solve", "autosolve", "set"},
	},
}

var commandNames = []string{
	"help", "lexicon", "board", "solve", "score", "path", "prefix",
	"autosolve", "set", "exit",
}

var boolValues = []string{"true", "false"}

// lexiconNames lists the word lists under <data-path>/lexica.
func (c *ShellCompleter) lexiconNames() []string {
	pattern := filepath.Join(c.sc.config.GetString(config.ConfigDataPath), "lexica", "*"+lexicon.FileExtension)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	return lo.Map(files, func(f string, _ int) string {
		return strings.TrimSuffix(filepath.Base(f), lexicon.FileExtension)
	})
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// Unbalanced quotes; fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case cmdName == "set" && len(fields) == 1 && endsWithSpace,
			cmdName == "set" && len(fields) == 2 && !endsWithSpace:
			completions = lo.Keys(settable)
			sort.Strings(completions)
		case cmdName == "lexicon" && len(fields) <= 2:
			completions = c.lexiconNames()
		case cmdName == "set" && lastCompleteField == "ternary-trie":
			completions = boolValues
		case strings.HasPrefix(lastCompleteField, "-"):
			// An option's value; nothing sensible to offer.
		default:
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
