package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-run/internal/catalog"
	"github.com/vovakirdan/cookie-run/internal/platform/tui"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Browse the character gallery",
	Long: `Open the character gallery. Locked characters are shown but cannot
be chosen. The chosen index is printed so it can be passed to --character.`,
	Run: runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()
	res, err := tui.RunGallery(cfg.Character, cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		fail(err)
	}
	if res.Quit {
		return
	}

	_, c := catalog.Select(res.Selected)
	fmt.Printf("Selected %s %s (%s)\n", c.Emoji, c.Name, c.Rarity)
	fmt.Printf("Play with: cookierun play cookierun --character %d\n", res.Selected)
}
