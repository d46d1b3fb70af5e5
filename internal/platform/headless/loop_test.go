package headless

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cookie-run/internal/config"
	"github.com/vovakirdan/cookie-run/internal/runner"
)

func newSession(t *testing.T, cfg config.RunnerConfig) *runner.Session {
	t.Helper()
	s, err := runner.NewSession(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRunStopsOnTerminalState(t *testing.T) {
	s := newSession(t, config.DefaultCookieRunConfig())

	observed := 0
	loop := New(s, Options{Observer: func(runner.State) { observed++ }}, nil)
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if res.Reason != StopTerminal || !res.Final.IsTerminalLose() {
		t.Fatalf("reason = %v status = %v, expected terminal/lose", res.Reason, res.Final.Status)
	}
	if res.Ticks != 164 || observed != 164 {
		t.Errorf("ticks = %d observed = %d, expected 164", res.Ticks, observed)
	}
	if res.RunID == "" {
		t.Error("result should carry a run ID")
	}
}

func TestRunWithPilotHitsLimit(t *testing.T) {
	cfg := config.DefaultCookieRunConfig()
	s := newSession(t, cfg)
	pilot := runner.NewAutopilot(cfg)

	loop := New(s, Options{MaxTicks: 2000, Pilot: pilot.WantsJump}, nil)
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != StopLimit || res.Ticks != 2000 {
		t.Errorf("reason = %v ticks = %d, expected limit after 2000", res.Reason, res.Ticks)
	}
	if !res.Final.IsRunning() {
		t.Error("autopilot run should still be going at the limit")
	}
}

// countingTarget records ticks so the test can check none happen after Run.
type countingTarget struct {
	*runner.Session
	ticks int
}

func (c *countingTarget) Tick() bool {
	c.ticks++
	return c.Session.Tick()
}

func TestRunCancellation(t *testing.T) {
	cfg := config.DefaultCookieRunConfig()
	target := &countingTarget{Session: newSession(t, cfg)}
	pilot := runner.NewAutopilot(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := New(target, Options{
		Paced:    true,
		TickRate: 1000,
		Pilot:    pilot.WantsJump,
		Observer: func(st runner.State) {
			if st.Tick == 10 {
				cancel()
			}
		},
	}, nil)

	res, err := loop.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, expected context.Canceled", err)
	}
	if res.Reason != StopCancelled || res.Ticks != 10 {
		t.Errorf("reason = %v ticks = %d, expected cancelled after 10", res.Reason, res.Ticks)
	}

	after := target.ticks
	time.Sleep(20 * time.Millisecond)
	if target.ticks != after {
		t.Error("target ticked after Run returned")
	}
}

func TestRunUnpacedCancelledBeforeStart(t *testing.T) {
	s := newSession(t, config.DefaultCookieRunConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(s, Options{}, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, expected context.Canceled", err)
	}
	if res.Ticks != 0 {
		t.Errorf("ticks = %d, expected 0", res.Ticks)
	}
}

func TestRunLogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	s := newSession(t, config.DefaultCookieRunConfig())
	res, err := New(s, Options{}, logger).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	wants := []string{
		"run started",
		"run finished",
		res.RunID,
		"ticks=164",
		fmt.Sprintf("score=%d", res.Final.Score),
		fmt.Sprintf("currency=%d", res.Final.Currency),
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRestartsFinishedSession(t *testing.T) {
	s := newSession(t, config.DefaultCookieRunConfig())
	loop := New(s, Options{}, nil)

	first, _ := loop.Run(context.Background())
	second, _ := loop.Run(context.Background())
	if first.Ticks != second.Ticks {
		t.Errorf("second run ticks = %d, expected %d", second.Ticks, first.Ticks)
	}
	if first.RunID == second.RunID {
		t.Error("each run should get its own ID")
	}
}

func TestStopReasonString(t *testing.T) {
	tests := map[StopReason]string{
		StopTerminal:  "terminal",
		StopLimit:     "limit",
		StopCancelled: "cancelled",
	}
	for r, want := range tests {
		if r.String() != want {
			t.Errorf("%d.String() = %q, expected %q", r, r.String(), want)
		}
	}
}
