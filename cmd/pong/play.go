package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	flagMode       string
	flagDifficulty string
	flagScheme     string
	flagWinScore   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match",
	Long: `Start a match without going through the menu.

Controls (AZERTY scheme, the default):
  Z/S        - Player 1 up/down
  Up/Down    - Player 2 up/down (two-player mode)
  P/Esc      - Pause/resume
  R          - Play again (after match over or while paused)
  B          - Back to menu (after match over or while paused)
  Q/Ctrl+C   - Quit

With --scheme qwerty, player 1 uses W/S instead.

Difficulty options (solo mode):
  easy, medium, hard, impossible

Examples:
  pong play
  pong play --mode multi
  pong play --difficulty hard --scheme qwerty
  pong play --win-score 3 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "solo", "Game mode: solo or multi")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "AI difficulty: easy, medium, hard, impossible")
	playCmd.Flags().StringVar(&flagScheme, "scheme", "", "Keyboard scheme: azerty or qwerty")
	playCmd.Flags().IntVar(&flagWinScore, "win-score", 0, "Points needed to win (0 = from settings)")
}

// playOverrides applies the play flags on top of the loaded settings.
func playOverrides(s *config.Settings) error {
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		s.Difficulty = d
	}
	if flagScheme != "" {
		scheme, err := config.ParseControlScheme(flagScheme)
		if err != nil {
			return err
		}
		s.ControlScheme = scheme
	}
	if flagWinScore > 0 {
		s.WinScore = flagWinScore
	}
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	mode, err := pong.ParseMode(flagMode)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	env, cleanup, err := newEnv(logger, playOverrides)
	if err != nil {
		return err
	}
	defer cleanup()

	width, height := terminalSize()
	return tui.Run(env, mode, width, height)
}
