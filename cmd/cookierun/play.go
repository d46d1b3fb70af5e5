package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-run/internal/platform/tui"
	"github.com/vovakirdan/cookie-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter              - Start the run
  Space/Up/W, click  - Jump
  P                  - Pause
  R                  - Restart (after the run ends)
  B/Esc              - Leave the game
  Q/Ctrl+C           - Quit

Examples:
  cookierun play cookierun
  cookierun play donutchase --seed 42
  cookierun play cookierun --config ./my-runner.yaml --log-file run.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'cookierun list' to see available games.")
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		fail(err)
	}
}
