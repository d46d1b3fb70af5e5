// Package config provides YAML-based configuration loading for the runner
// variants. Every tunable of the simulation lives here so that both variants
// share one stepper and differ only in data.
package config

import (
	"errors"
	"fmt"
)

// Game identifiers for the two runner variants.
const (
	CookieRunID  = "cookierun"
	DonutChaseID = "donutchase"
)

// Obstacle kinds understood by the spawner.
const (
	KindSpike = "spike"
	KindGap   = "gap"
)

// RunnerConfig contains all configuration for one runner variant.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Playfield RunnerPlayfield `yaml:"playfield"`
	Spawn     RunnerSpawn     `yaml:"spawn"`
	Collision RunnerCollision `yaml:"collision"`
	Scoring   RunnerScoring   `yaml:"scoring"`
	Lives     RunnerLives     `yaml:"lives"`
	Pursuit   RunnerPursuit   `yaml:"pursuit"`
	Boost     RunnerBoost     `yaml:"boost"`
}

// RunnerPhysics defines the jump arc and scroll speed.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Velocity lost per airborne tick
	JumpHeight  float64 `yaml:"jump_height"`  // Offset the player is launched to
	GroundLevel float64 `yaml:"ground_level"` // Resting vertical offset
	Speed       float64 `yaml:"speed"`        // Base horizontal scroll per tick
}

// RunnerPlayfield defines the horizontal track.
type RunnerPlayfield struct {
	Width   float64 `yaml:"width"`
	PlayerX float64 `yaml:"player_x"` // Fixed horizontal screen position of the player
}

// RunnerSpawn defines spawn periods, entity attributes and cull thresholds.
type RunnerSpawn struct {
	ObstaclePeriod     int       `yaml:"obstacle_period"`
	CollectiblePeriod  int       `yaml:"collectible_period"`
	ObstacleKinds      []string  `yaml:"obstacle_kinds"`
	CollectibleHeights []float64 `yaml:"collectible_heights"`
	ObstacleCull       float64   `yaml:"obstacle_cull"`    // Obstacles at or left of this are dropped
	CollectibleCull    float64   `yaml:"collectible_cull"` // Collectibles at or left of this are dropped
}

// RunnerCollision defines the player hit-box.
type RunnerCollision struct {
	BandMin         float64 `yaml:"band_min"`         // Closed horizontal band [band_min, band_max]
	BandMax         float64 `yaml:"band_max"`         //
	Clearance       float64 `yaml:"clearance"`        // Offset below which an obstacle hits
	PickupOffset    float64 `yaml:"pickup_offset"`    // Added to player offset for pickups
	PickupTolerance float64 `yaml:"pickup_tolerance"` // Max vertical distance for a pickup
}

// RunnerScoring defines fixed per-event increments.
type RunnerScoring struct {
	PerTick         int     `yaml:"per_tick"`
	DistancePerTick float64 `yaml:"distance_per_tick"`
	CollectScore    int     `yaml:"collect_score"`
	CollectCurrency int     `yaml:"collect_currency"`
}

// RunnerLives enables the life counter layer. When disabled an obstacle hit
// ends the run immediately.
type RunnerLives struct {
	Enabled       bool `yaml:"enabled"`
	Initial       int  `yaml:"initial"`
	MissesPerLife int  `yaml:"misses_per_life"`
}

// RunnerPursuit enables the chase termination rules.
type RunnerPursuit struct {
	Enabled    bool    `yaml:"enabled"`
	InitialGap float64 `yaml:"initial_gap"`
	EnemySpeed float64 `yaml:"enemy_speed"`
	CatchGap   float64 `yaml:"catch_gap"`  // Gap at or below this is a win
	EscapeGap  float64 `yaml:"escape_gap"` // Gap at or above this is a loss
}

// RunnerBoost defines the speed boost granted by a pickup.
type RunnerBoost struct {
	Ticks      int     `yaml:"ticks"` // 0 disables boosting
	Multiplier float64 `yaml:"multiplier"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpHeight <= c.Physics.GroundLevel {
		errs = append(errs, fmt.Errorf("physics.jump_height must be above ground_level"))
	}
	if c.Physics.Speed <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed must be positive, got %v", c.Physics.Speed))
	}
	if c.Playfield.Width <= 0 {
		errs = append(errs, fmt.Errorf("playfield.width must be positive, got %v", c.Playfield.Width))
	}
	if c.Spawn.ObstaclePeriod <= 0 || c.Spawn.CollectiblePeriod <= 0 {
		errs = append(errs, errors.New("spawn periods must be positive"))
	}
	if len(c.Spawn.ObstacleKinds) == 0 {
		errs = append(errs, errors.New("spawn.obstacle_kinds must not be empty"))
	}
	for _, k := range c.Spawn.ObstacleKinds {
		if k != KindSpike && k != KindGap {
			errs = append(errs, fmt.Errorf("spawn.obstacle_kinds: unknown kind %q", k))
		}
	}
	if len(c.Spawn.CollectibleHeights) == 0 {
		errs = append(errs, errors.New("spawn.collectible_heights must not be empty"))
	}
	if c.Spawn.ObstacleCull >= c.Playfield.Width || c.Spawn.CollectibleCull >= c.Playfield.Width {
		errs = append(errs, errors.New("spawn cull thresholds must lie left of the playfield edge"))
	}
	if c.Collision.BandMin > c.Collision.BandMax {
		errs = append(errs, fmt.Errorf("collision band is inverted: [%v, %v]", c.Collision.BandMin, c.Collision.BandMax))
	}
	if c.Lives.Enabled && (c.Lives.Initial <= 0 || c.Lives.MissesPerLife <= 0) {
		errs = append(errs, errors.New("lives.initial and lives.misses_per_life must be positive when lives are enabled"))
	}
	if c.Pursuit.Enabled && c.Pursuit.CatchGap >= c.Pursuit.EscapeGap {
		errs = append(errs, errors.New("pursuit.catch_gap must be below escape_gap"))
	}
	if c.Boost.Ticks < 0 {
		errs = append(errs, fmt.Errorf("boost.ticks must not be negative, got %d", c.Boost.Ticks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
