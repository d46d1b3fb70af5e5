// Package cookierun adapts the runner simulation to the platform Game
// interface. It registers both variants: Cookie Run (collect coins, avoid
// spikes and gaps) and Donut Chase (catch the thief while collecting donuts).
package cookierun

import (
	"time"

	"github.com/vovakirdan/cookie-run/internal/catalog"
	"github.com/vovakirdan/cookie-run/internal/config"
	"github.com/vovakirdan/cookie-run/internal/core"
	"github.com/vovakirdan/cookie-run/internal/registry"
	"github.com/vovakirdan/cookie-run/internal/runner"
)

// Variant describes the presentation of one runner variant.
type Variant struct {
	ID          string
	Title       string
	Summary     string
	Currency    string // HUD label for collected items
	Collectible rune
	ItemColor   core.Color
}

var variants = map[string]Variant{
	config.CookieRunID: {
		ID:          config.CookieRunID,
		Title:       "Cookie Run",
		Summary:     "Collect coins, jump spikes and gaps",
		Currency:    "Coins",
		Collectible: '●',
		ItemColor:   core.ColorGold,
	},
	config.DonutChaseID: {
		ID:          config.DonutChaseID,
		Title:       "Donut Chase",
		Summary:     "Catch the donut thief before it escapes",
		Currency:    "Donuts",
		Collectible: 'o',
		ItemColor:   core.ColorPink,
	},
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game wraps a runner.Session for one variant. Pausing is a presentation
// concern and lives here, not in the simulation.
type Game struct {
	variant   Variant
	runtime   core.RuntimeConfig
	cfg       config.RunnerConfig
	session   *runner.Session
	character catalog.Character
	paused    bool
	frame     int // Animation counter, advanced on running ticks
}

// New creates a game for the given variant ID. Unknown IDs fall back to
// Cookie Run.
func New(id string) *Game {
	v, ok := variants[id]
	if !ok {
		v = variants[config.CookieRunID]
	}
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the variant config and leaves a fresh session waiting for
// the start command.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant.ID, configPath)
	if err != nil {
		cfg, _ = config.DefaultFor(g.variant.ID)
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := runner.NewSession(cfg, seed)
	if err != nil {
		cfg, _ = config.DefaultFor(g.variant.ID)
		session, _ = runner.NewSession(cfg, seed)
	}

	g.cfg = cfg
	g.session = session
	_, g.character = catalog.Select(runtime.Character)
	g.paused = false
	g.frame = 0
}

// Step applies this frame's input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch st := g.session.Status(); {
	case st == runner.StatusIdle:
		if in.Has(core.ActionStart) {
			g.session.Start()
		}
		return core.StepResult{State: g.State()}
	case st.Terminal():
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.session.Restart()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	// A pause toggle consumes the frame in both directions.
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.TriggerJump()
	}
	g.session.Tick()
	g.frame++

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.Status()
	return core.GameState{
		Score:    g.session.Snapshot().Score,
		Started:  st != runner.StatusIdle,
		GameOver: st.Terminal(),
		Won:      st == runner.StatusWin,
		Paused:   g.paused,
	}
}

// Snapshot exposes the simulation state for read-only use.
func (g *Game) Snapshot() runner.State {
	return g.session.Snapshot()
}

// Character returns the character drawn as the player.
func (g *Game) Character() catalog.Character {
	return g.character
}

// Register both variants with the registry
func init() {
	for id, v := range variants {
		info := registry.GameInfo{ID: v.ID, Title: v.Title, Summary: v.Summary}
		registry.Register(info, func() registry.Game {
			return New(id)
		})
	}
}
