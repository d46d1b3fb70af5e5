package config

import (
	_ "embed"
)

//go:embed defaults/cookierun.yaml
var defaultCookieRunYAML []byte

//go:embed defaults/donutchase.yaml
var defaultDonutChaseYAML []byte

// DefaultCookieRunConfig returns the coin-collecting runner configuration.
func DefaultCookieRunConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:     0.8,
			JumpHeight:  150,
			GroundLevel: 0,
			Speed:       5,
		},
		Playfield: RunnerPlayfield{
			Width:   600,
			PlayerX: 50,
		},
		Spawn: RunnerSpawn{
			ObstaclePeriod:     60,
			CollectiblePeriod:  30,
			ObstacleKinds:      []string{KindSpike, KindGap},
			CollectibleHeights: []float64{80, 40},
			ObstacleCull:       -50,
			CollectibleCull:    -30,
		},
		Collision: RunnerCollision{
			BandMin:         20,
			BandMax:         80,
			Clearance:       30,
			PickupOffset:    20,
			PickupTolerance: 30,
		},
		Scoring: RunnerScoring{
			PerTick:         1,
			DistancePerTick: 0.1,
			CollectScore:    50,
			CollectCurrency: 1,
		},
		Boost: RunnerBoost{
			Ticks:      0,
			Multiplier: 1,
		},
	}
}

// DefaultDonutChaseConfig returns the pursuit runner configuration.
func DefaultDonutChaseConfig() RunnerConfig {
	cfg := DefaultCookieRunConfig()
	cfg.Spawn.ObstaclePeriod = 80
	cfg.Spawn.CollectiblePeriod = 50
	cfg.Spawn.ObstacleKinds = []string{KindSpike}
	cfg.Scoring.DistancePerTick = 0
	cfg.Lives = RunnerLives{
		Enabled:       true,
		Initial:       3,
		MissesPerLife: 3,
	}
	cfg.Pursuit = RunnerPursuit{
		Enabled:    true,
		InitialGap: 300,
		EnemySpeed: 5.5,
		CatchGap:   50,
		EscapeGap:  600,
	}
	cfg.Boost = RunnerBoost{
		Ticks:      90,
		Multiplier: 1.5,
	}
	return cfg
}

// DefaultFor returns the hardcoded default for a game ID.
func DefaultFor(gameID string) (RunnerConfig, bool) {
	switch gameID {
	case CookieRunID:
		return DefaultCookieRunConfig(), true
	case DonutChaseID:
		return DefaultDonutChaseConfig(), true
	default:
		return RunnerConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case CookieRunID:
		return defaultCookieRunYAML
	case DonutChaseID:
		return defaultDonutChaseYAML
	default:
		return nil
	}
}
