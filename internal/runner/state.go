// Package runner implements the endless-runner simulation: spawning,
// scrolling, jump physics, collision resolution and the session state
// machine. It knows nothing about terminals; renderers read snapshots.
package runner

import "github.com/vovakirdan/cookie-run/internal/config"

// Status is the session state machine position.
type Status int

const (
	StatusIdle    Status = iota // Not started yet
	StatusRunning               // Ticks are processed
	StatusLose                  // Terminal: crashed, out of lives or enemy escaped
	StatusWin                   // Terminal: enemy caught (pursuit only)
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusLose:
		return "lose"
	case StatusWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends a run.
func (s Status) Terminal() bool {
	return s == StatusLose || s == StatusWin
}

// ObstacleKind distinguishes obstacle visuals. Both kinds collide the same way.
type ObstacleKind int

const (
	KindSpike ObstacleKind = iota
	KindGap
)

// String returns the config name of the kind.
func (k ObstacleKind) String() string {
	if k == KindGap {
		return config.KindGap
	}
	return config.KindSpike
}

func parseKind(s string) ObstacleKind {
	if s == config.KindGap {
		return KindGap
	}
	return KindSpike
}

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	X    float64
	Kind ObstacleKind
}

// Collectible is a coin or donut scrolling toward the player.
type Collectible struct {
	X float64
	Y float64
}

// State is the complete simulation state of one run.
// The Session owns it exclusively; everyone else gets a Clone.
type State struct {
	Tick         int
	Score        int
	Currency     int
	Lives        int     // Only meaningful when lives are enabled
	MissedStreak int     // Consecutive collectibles lost off the left edge
	Distance     float64 // Distance run, or the gap to the enemy in pursuit mode
	PlayerY      float64 // Vertical offset above the playfield floor
	VelocityY    float64
	Airborne     bool
	BoostTicks   int
	Status       Status

	Obstacles    []Obstacle
	Collectibles []Collectible

	obstacleTimer    int
	collectibleTimer int
}

// IsRunning reports whether ticks are being processed.
func (s State) IsRunning() bool { return s.Status == StatusRunning }

// IsTerminalLose reports whether the run ended in a loss.
func (s State) IsTerminalLose() bool { return s.Status == StatusLose }

// IsTerminalWin reports whether the run ended in a win.
func (s State) IsTerminalWin() bool { return s.Status == StatusWin }

// Clone returns a deep copy safe to hand to renderers.
func (s State) Clone() State {
	c := s
	c.Obstacles = append(make([]Obstacle, 0, len(s.Obstacles)), s.Obstacles...)
	c.Collectibles = append(make([]Collectible, 0, len(s.Collectibles)), s.Collectibles...)
	return c
}

// initialState returns the state every start and restart begins from.
func initialState(cfg config.RunnerConfig) State {
	s := State{
		PlayerY:      cfg.Physics.GroundLevel,
		Status:       StatusRunning,
		Obstacles:    make([]Obstacle, 0, 8),
		Collectibles: make([]Collectible, 0, 16),
	}
	if cfg.Lives.Enabled {
		s.Lives = cfg.Lives.Initial
	}
	if cfg.Pursuit.Enabled {
		s.Distance = cfg.Pursuit.InitialGap
	}
	return s
}
