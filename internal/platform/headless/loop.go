// Package headless drives a runner session without a terminal, for the
// simulator command and for tests.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cookie-run/internal/logging"
	"github.com/vovakirdan/cookie-run/internal/runner"
)

// Target is what the loop drives. *runner.Session satisfies it.
type Target interface {
	runner.Stepper
	Start() bool
	Status() runner.Status
	Snapshot() runner.State
	TriggerJump() bool
}

// Observer receives a snapshot after every tick.
type Observer func(runner.State)

// Pilot decides before each tick whether to jump.
type Pilot func(runner.State) bool

// StopReason tells why Run returned.
type StopReason int

const (
	StopTerminal  StopReason = iota // The run reached Lose or Win
	StopLimit                       // MaxTicks reached
	StopCancelled                   // Context cancelled
)

func (r StopReason) String() string {
	switch r {
	case StopTerminal:
		return "terminal"
	case StopLimit:
		return "limit"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options configures a Loop.
type Options struct {
	TickRate int  // Ticks per second when paced
	Paced    bool // false runs as fast as possible
	MaxTicks int  // 0 means no limit
	Observer Observer
	Pilot    Pilot
}

// Result summarizes one Run.
type Result struct {
	RunID  string
	Ticks  int
	Reason StopReason
	Final  runner.State
}

// Loop owns the tick cadence for one target.
type Loop struct {
	target Target
	opts   Options
	logger *log.Logger
}

// New creates a loop. A nil logger discards output.
func New(target Target, opts Options, logger *log.Logger) *Loop {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{target: target, opts: opts, logger: logger}
}

// Run starts the target if needed and ticks it until the run ends, the tick
// limit is hit or ctx is cancelled. No tick happens after Run returns.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: logging.NewRunID()}
	logger := l.logger.With("run_id", res.RunID)

	if l.target.Status() != runner.StatusRunning {
		l.target.Start()
	}
	logger.Info("run started", "paced", l.opts.Paced, "tick_rate", l.opts.TickRate, "max_ticks", l.opts.MaxTicks)

	var tick <-chan time.Time
	if l.opts.Paced {
		ticker := time.NewTicker(time.Second / time.Duration(l.opts.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return l.finish(logger, res, StopCancelled, err)
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return l.finish(logger, res, StopCancelled, ctx.Err())
			case <-tick:
			}
		}

		if l.opts.Pilot != nil && l.opts.Pilot(l.target.Snapshot()) {
			l.target.TriggerJump()
		}
		running := l.target.Tick()
		res.Ticks++

		if l.opts.Observer != nil {
			l.opts.Observer(l.target.Snapshot())
		}
		if !running {
			return l.finish(logger, res, StopTerminal, nil)
		}
		if l.opts.MaxTicks > 0 && res.Ticks >= l.opts.MaxTicks {
			return l.finish(logger, res, StopLimit, nil)
		}
	}
}

func (l *Loop) finish(logger *log.Logger, res Result, reason StopReason, err error) (Result, error) {
	res.Reason = reason
	res.Final = l.target.Snapshot()
	logger.Info("run finished",
		"reason", reason,
		"status", res.Final.Status,
		"ticks", res.Ticks,
		"score", res.Final.Score,
		"currency", res.Final.Currency,
	)
	if err != nil {
		return res, fmt.Errorf("headless: run %s: %w", res.RunID, err)
	}
	return res, nil
}
