// pong is a terminal Pong game: solo against an AI or two players on one
// keyboard, played locally or over SSH.
//
// Usage:
//
//	pong                     - Open the menu
//	pong play                - Start a match directly
//	pong serve               - Start SSH server for remote play
//	pong config              - Print the effective settings as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible matches
//	--config <path>     - Settings file (default: ~/.pong/pong.yaml)
//	--log-file <path>   - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong is the classic two-paddle game rendered in the terminal.

Play solo against an AI with four difficulty levels, or with two players
sharing one keyboard. Settings can be changed from the menu while playing.

Available commands:
  play     - Start a match directly
  serve    - Start SSH server for remote play
  config   - Print the effective settings

Examples:
  pong
  pong play --mode multi
  pong play --difficulty impossible --win-score 5
  pong serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The terminal belongs to the game, so
// logs go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// newEnv loads the settings and opens the match history for a local session.
// apply may adjust the settings before the store is created.
func newEnv(logger *log.Logger, apply func(*config.Settings) error) (tui.Env, func(), error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return tui.Env{}, nil, err
	}
	if apply != nil {
		if err := apply(&settings); err != nil {
			return tui.Env{}, nil, err
		}
	}

	store, err := config.NewStore(settings)
	if err != nil {
		return tui.Env{}, nil, err
	}

	env := tui.Env{
		Settings: store,
		Logger:   logger,
		FPS:      flagFPS,
		Seed:     flagSeed,
	}

	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("match history disabled", "error", err)
		return env, func() {}, nil
	}
	env.Ledger = ledger
	return env, func() {
		if err := ledger.Close(); err != nil {
			logger.Warn("closing match history", "error", err)
		}
	}, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
