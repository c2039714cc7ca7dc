package config

import (
	"path/filepath"
	"strings"
	"sync"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath       = "data-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigBoardRows      = "board-rows"
	ConfigBoardCols      = "board-cols"
	ConfigSolverThreads  = "solver-threads"
	ConfigTernaryTrie    = "ternary-trie"
	ConfigDebug          = "debug"
	ConfigLogLevel       = "log-level"
	ConfigCPUProfile     = "cpu-profile"
)

// Config is a viper instance with our defaults, flags and BOGGLE_*
// environment variables bound into it.
type Config struct {
	sync.Mutex
	viper.Viper

	args []string
}

// DefaultConfig returns a config with only the defaults (and environment)
// applied.
func DefaultConfig() *Config {
	c := &Config{}
	c.Load(nil)
	return c
}

// Load (re)initializes the config from the command line arguments. Flags
// override environment variables, which override defaults.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()

	fs := pflag.NewFlagSet("boggle", pflag.ContinueOnError)
	// Everything from the first non-flag on is a shell command.
	fs.SetInterspersed(false)
	fs.String(ConfigDataPath, "./data", "directory holding lexica")
	fs.String(ConfigDefaultLexicon, "TWL06", "the word list loaded at startup")
	fs.Int(ConfigBoardRows, 4, "rows on a random board")
	fs.Int(ConfigBoardCols, 4, "columns on a random board")
	fs.Int(ConfigSolverThreads, 1, "goroutines used to search a board")
	fs.Bool(ConfigTernaryTrie, false, "store the dictionary in a ternary search trie")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLogLevel, "info", "log level (debug, info, warn, error)")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("boggle")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// Args are the command line arguments left over after flags were parsed.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths makes the data path absolute relative to basepath,
// typically the directory holding the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	c.Lock()
	defer c.Unlock()
	dp := c.GetString(ConfigDataPath)
	if !filepath.IsAbs(dp) {
		c.Set(ConfigDataPath, filepath.Join(basepath, dp))
	}
}

// WGLConfig is the configuration word-golib needs for its cache and loaders.
func (c *Config) WGLConfig() *wglconfig.Config {
	return &wglconfig.Config{DataPath: c.GetString(ConfigDataPath)}
}

// SanitizedSettings are the settings safe to print to logs.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
