// cookierun is an endless-runner arcade for the terminal.
//
// Usage:
//
//	cookierun list                  - List available games
//	cookierun play <game>           - Play a game
//	cookierun menu                  - Menu with game and character selection
//	cookierun characters            - Browse the character gallery
//	cookierun sim <game>            - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Custom runner config YAML
//	--character <n>     - Character index from the gallery
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log destination for interactive commands
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cookie-run/internal/config"
	"github.com/vovakirdan/cookie-run/internal/core"
	"github.com/vovakirdan/cookie-run/internal/games/cookierun"
	"github.com/vovakirdan/cookie-run/internal/logging"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagCharacter int
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cookierun",
	Short: "Cookie Run - an endless runner in your terminal",
	Long: `Cookie Run is a terminal endless runner with two variants:

  cookierun   - collect coins, jump over spikes and gaps
  donutchase  - chase the donut thief, collect donuts for a speed boost

Available commands:
  list        - Show all available games
  play        - Play a specific game directly
  menu        - Interactive menu with the character gallery
  characters  - Browse the character gallery
  sim         - Run a game headless and print the result

Examples:
  cookierun play cookierun
  cookierun play donutchase --character 3
  cookierun menu
  cookierun sim cookierun --ticks 5000 --autopilot`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Check(flagConfig, configTargets(cmd, args)...); err != nil {
			return err
		}
		cookierun.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().IntVar(&flagCharacter, "character", 0, "Character index (see 'cookierun characters')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(simCmd)
}

// configTargets names the games a --config file must load for. Commands
// that take a game check only that one; the rest check every variant.
func configTargets(cmd *cobra.Command, args []string) []string {
	switch cmd.Name() {
	case "play", "sim":
		if len(args) == 1 {
			if _, ok := config.DefaultFor(args[0]); ok {
				return args[:1]
			}
		}
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Character: flagCharacter,
	}
}

// tuiLogger opens the logger for commands that own the terminal.
func tuiLogger() (*log.Logger, func() error) {
	logger, closeFn, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		fail(err)
	}
	return logger, closeFn
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
