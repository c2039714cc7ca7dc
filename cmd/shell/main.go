package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/shell"
)

var (
	GitVersion string
)

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level, err := zerolog.ParseLevel(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Info().Msgf("boggle %v, executable path: %v", GitVersion, exPath)
	log.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	sc := shell.NewShellController(cfg)
	defer sc.Cleanup()

	argsLine := strings.TrimSpace(strings.Join(cfg.Args(), " "))
	if argsLine != "" {
		// One-shot mode: run the command and leave.
		sc.Execute(make(chan os.Signal, 1), argsLine)
		return
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(done)
	}()

	go sc.Loop(sig)
	<-done
	log.Info().Msg("shutting down")
}
