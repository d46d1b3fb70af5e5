package runner

import "github.com/vovakirdan/cookie-run/internal/config"

// autopilotLead is how many ticks ahead of the hit band the autopilot jumps.
const autopilotLead = 2

// Autopilot decides jumps from a snapshot. It clears obstacles and ignores
// collectibles; it exists for the headless simulator and demos.
type Autopilot struct {
	cfg config.RunnerConfig
}

// NewAutopilot creates an autopilot for the given rules.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	return &Autopilot{cfg: cfg}
}

// WantsJump reports whether the player should jump before the next tick.
func (a *Autopilot) WantsJump(s State) bool {
	if s.Status != StatusRunning || s.Airborne {
		return false
	}
	speed := a.cfg.Physics.Speed
	if s.BoostTicks > 0 {
		speed *= a.cfg.Boost.Multiplier
	}
	edge := a.cfg.Collision.BandMax
	for _, o := range s.Obstacles {
		if o.X > edge && o.X <= edge+autopilotLead*speed {
			return true
		}
	}
	return false
}
