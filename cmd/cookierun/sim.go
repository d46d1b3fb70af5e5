package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-run/internal/config"
	"github.com/vovakirdan/cookie-run/internal/logging"
	"github.com/vovakirdan/cookie-run/internal/platform/headless"
	"github.com/vovakirdan/cookie-run/internal/runner"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagPaced     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless",
	Long: `Run the simulation without a terminal UI and print the outcome.

Without --autopilot the runner never jumps. The run stops when it ends,
when --ticks is reached, or on Ctrl+C.

Examples:
  cookierun sim cookierun
  cookierun sim donutchase --autopilot --seed 7
  cookierun sim cookierun --autopilot --ticks 10000 --paced`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until the run ends)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump over obstacles automatically")
	simCmd.Flags().BoolVar(&flagPaced, "paced", false, "Tick at --fps instead of as fast as possible")
}

func runSim(_ *cobra.Command, args []string) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fail(err)
	}

	cfg, err := config.Load(args[0], flagConfig)
	if err != nil {
		fail(err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := runner.NewSession(cfg, seed)
	if err != nil {
		fail(err)
	}

	opts := headless.Options{
		TickRate: flagFPS,
		Paced:    flagPaced,
		MaxTicks: flagTicks,
	}
	if flagAutopilot {
		opts.Pilot = runner.NewAutopilot(cfg).WantsJump
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := headless.New(session, opts, logger.With("game", args[0], "seed", seed)).Run(ctx)
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	st := res.Final
	fmt.Printf("run:      %s\n", res.RunID)
	fmt.Printf("outcome:  %s (%s)\n", st.Status, res.Reason)
	fmt.Printf("ticks:    %d\n", res.Ticks)
	fmt.Printf("score:    %d\n", st.Score)
	fmt.Printf("currency: %d\n", st.Currency)
	if cfg.Pursuit.Enabled {
		fmt.Printf("gap:      %.1f\n", st.Distance)
		fmt.Printf("lives:    %d\n", st.Lives)
	} else {
		fmt.Printf("distance: %.1f\n", st.Distance)
	}
}
