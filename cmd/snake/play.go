package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --seed 7
  snake play --config ./config.yaml --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one session and writes the exit message to out. The log file is
// closed before it returns, on every path.
func play(out io.Writer) error {
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()
	logger = sessionLogger(logger)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("configuration failed", "err", err)
		return err
	}
	logger.Info("configuration loaded", "source", source, "grid", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	// Get terminal size to warn early if the board will not fit
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	needW, needH := snake.RequiredSize(cfg.Bounds())
	needH += tui.FooterHeight
	if rt.ScreenW < needW || rt.ScreenH < needH {
		logger.Warn("terminal is smaller than the board", "need", fmt.Sprintf("%dx%d", needW, needH),
			"have", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))
	}

	rt.FPS = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting session", "seed", rt.Seed, "speed", cfg.Snake.Speed)

	game := snake.New(cfg, rt.Seed)
	state, runErr := tui.Run(game, tui.Options{
		Runtime: rt,
		Speed:   cfg.Snake.Speed,
		Ramp:    cfg.Speed,
		Logger:  logger,
	})

	return writeExitMessage(out, state, runErr)
}

// writeExitMessage reports how the session ended. A crash into a wall is a
// normal ending and prints the final length; any other error is returned.
func writeExitMessage(w io.Writer, state core.GameState, runErr error) error {
	switch {
	case errors.Is(runErr, snake.ErrGameOver):
		_, err := fmt.Fprintf(w, "Game over!\nLength: %d  Eaten: %d\n", state.Length, state.Eaten)
		return err
	case runErr != nil:
		return runErr
	}
	return nil
}
