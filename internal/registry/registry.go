// Package registry maps runner variant IDs to factories. Variants register
// from init() so the CLI and menu discover them without importing each one.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/cookie-run/internal/core"
)

// ErrUnknownGame is wrapped by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is what the platform drives: a fixed-tick simulation plus a
// renderer into a cell buffer. Timing and input mapping stay outside.
type Game interface {
	// ID is the CLI and config key, e.g. "donutchase".
	ID() string
	Title() string

	// Reset builds a fresh session that waits for a start action.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances at most one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo is the listing metadata for a variant.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // One line for menus and `list`
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics on an empty or duplicate ID, both of
// which are programming errors in an init().
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game ID")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates the variant registered under id. The error for an
// unknown ID wraps ErrUnknownGame and names the known IDs.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q (known: %s)", ErrUnknownGame, id, strings.Join(ids(), ", "))
	}
	return e.factory(), nil
}

func ids() []string {
	infos := List()
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.ID
	}
	return out
}
