package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-run/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the game and character menu",
	Long: `Start in interactive menu mode.

Pick a variant to play or open the character gallery. Leaving a game
with B/Esc returns to the menu; the chosen character is kept for the
rest of the session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  cookierun menu
  cookierun menu --fps 30 --character 1`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := tuiLogger()
	defer closeLog()

	if err := tui.RunSession(runtimeConfig(), logger); err != nil {
		fail(err)
	}
}
