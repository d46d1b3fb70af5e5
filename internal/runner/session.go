package runner

import (
	"math/rand"

	"github.com/vovakirdan/cookie-run/internal/config"
)

// Stepper is the contract between the simulation and whatever owns the
// tick cadence (a Bubble Tea program, the headless loop, a test).
type Stepper interface {
	// Tick advances one step and reports whether the run is still going.
	// A caller must stop scheduling once Tick returns false.
	Tick() bool
}

// Session is the state machine around one runner variant:
// Idle -> Running -> Lose|Win -> Running ...
type Session struct {
	cfg   config.RunnerConfig
	rng   *rand.Rand
	state State
}

var _ Stepper = (*Session)(nil)

// NewSession validates cfg and returns an idle session.
func NewSession(cfg config.RunnerConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		state: State{Status: StatusIdle, PlayerY: cfg.Physics.GroundLevel},
	}, nil
}

// Start begins a fresh run from Idle or a terminal state.
// It is ignored while a run is in progress and reports whether it took effect.
func (s *Session) Start() bool {
	if s.state.Status == StatusRunning {
		return false
	}
	s.state = initialState(s.cfg)
	return true
}

// Restart is Start from a terminal state.
func (s *Session) Restart() bool {
	return s.Start()
}

// Reseed replaces the spawn RNG; the next run uses the new sequence.
func (s *Session) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Tick advances the run by one step.
func (s *Session) Tick() bool {
	s.state = Step(s.state, &s.cfg, s.rng)
	return s.state.Status == StatusRunning
}

// TriggerJump launches the player when running and standing on the ground.
// Any other call is silently ignored. It reports whether a jump started.
func (s *Session) TriggerJump() bool {
	st := &s.state
	if st.Status != StatusRunning || st.Airborne || st.PlayerY != s.cfg.Physics.GroundLevel {
		return false
	}
	st.Airborne = true
	st.PlayerY = s.cfg.Physics.JumpHeight
	st.VelocityY = 0
	return true
}

// Snapshot returns a deep copy of the current state for read-only use.
func (s *Session) Snapshot() State {
	return s.state.Clone()
}

// Status returns the current state machine position.
func (s *Session) Status() Status {
	return s.state.Status
}

// Config returns the rules this session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
