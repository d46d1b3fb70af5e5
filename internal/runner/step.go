package runner

import (
	"math/rand"

	"github.com/vovakirdan/cookie-run/internal/config"
	"github.com/vovakirdan/cookie-run/internal/core"
)

// Step advances s by one tick and returns the result. Step takes ownership
// of s: the returned State may share its entity slices. A State that is not
// running is returned unchanged.
func Step(s State, cfg *config.RunnerConfig, rng *rand.Rand) State {
	if s.Status != StatusRunning {
		return s
	}

	s.Tick++
	s.Score += cfg.Scoring.PerTick
	if !cfg.Pursuit.Enabled {
		s.Distance += cfg.Scoring.DistancePerTick
	}

	applyGravity(&s, cfg)

	speed := scrollSpeed(&s, cfg)
	if cfg.Pursuit.Enabled {
		s.Distance += cfg.Pursuit.EnemySpeed - speed
		switch {
		case s.Distance <= cfg.Pursuit.CatchGap:
			s.Status = StatusWin
			return s
		case s.Distance >= cfg.Pursuit.EscapeGap:
			s.Status = StatusLose
			return s
		}
	}

	spawn(&s, cfg, rng)
	scroll(&s, cfg, speed)
	if s.Status != StatusRunning {
		return s
	}

	resolveCollisions(&s, cfg)
	return s
}

// applyGravity integrates the jump arc. Landing clamps to the ground exactly.
func applyGravity(s *State, cfg *config.RunnerConfig) {
	if !s.Airborne {
		return
	}
	s.VelocityY -= cfg.Physics.Gravity
	next := s.PlayerY + s.VelocityY
	if next <= cfg.Physics.GroundLevel {
		s.PlayerY = cfg.Physics.GroundLevel
		s.VelocityY = 0
		s.Airborne = false
		return
	}
	s.PlayerY = next
}

// scrollSpeed consumes one boost tick and returns this tick's horizontal speed.
func scrollSpeed(s *State, cfg *config.RunnerConfig) float64 {
	speed := cfg.Physics.Speed
	if s.BoostTicks > 0 {
		speed *= cfg.Boost.Multiplier
		s.BoostTicks--
	}
	return speed
}

// scroll moves every entity left and culls what passed its threshold.
// Lost collectibles feed the miss streak when lives are enabled.
func scroll(s *State, cfg *config.RunnerConfig, speed float64) {
	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= speed
		if o.X > cfg.Spawn.ObstacleCull {
			obstacles = append(obstacles, o)
		}
	}
	s.Obstacles = obstacles

	missed := 0
	collectibles := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		c.X -= speed
		if c.X > cfg.Spawn.CollectibleCull {
			collectibles = append(collectibles, c)
		} else {
			missed++
		}
	}
	s.Collectibles = collectibles

	if !cfg.Lives.Enabled {
		return
	}
	for range missed {
		s.MissedStreak++
		if s.MissedStreak >= cfg.Lives.MissesPerLife {
			s.MissedStreak = 0
			loseLife(s)
		}
	}
}

// resolveCollisions tests both lists against the player hit-box. Every
// qualifying entity applies its effect; there is no single-winner rule.
func resolveCollisions(s *State, cfg *config.RunnerConfig) {
	hits := 0
	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if inBand(o.X, cfg) && s.PlayerY < cfg.Collision.Clearance {
			hits++
			continue
		}
		obstacles = append(obstacles, o)
	}
	s.Obstacles = obstacles

	for range hits {
		if cfg.Lives.Enabled {
			loseLife(s)
		} else {
			s.Status = StatusLose
		}
	}

	collectibles := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		reach := core.AbsF(c.Y - (s.PlayerY + cfg.Collision.PickupOffset))
		if inBand(c.X, cfg) && reach < cfg.Collision.PickupTolerance {
			collect(s, cfg)
			continue
		}
		collectibles = append(collectibles, c)
	}
	s.Collectibles = collectibles
}

func inBand(x float64, cfg *config.RunnerConfig) bool {
	return core.InRange(x, cfg.Collision.BandMin, cfg.Collision.BandMax)
}

func collect(s *State, cfg *config.RunnerConfig) {
	s.Currency += cfg.Scoring.CollectCurrency
	s.Score += cfg.Scoring.CollectScore
	s.MissedStreak = 0
	if cfg.Boost.Ticks > 0 {
		s.BoostTicks = cfg.Boost.Ticks
	}
}

// loseLife removes a life and ends the run at zero.
func loseLife(s *State) {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives == 0 {
		s.Status = StatusLose
	}
}
