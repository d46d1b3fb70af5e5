package runner

import (
	"math/rand"

	"github.com/vovakirdan/cookie-run/internal/config"
)

// spawn advances both spawn timers. A timer that exceeds its period resets
// and appends a new entity at the right edge of the playfield.
func spawn(s *State, cfg *config.RunnerConfig, rng *rand.Rand) {
	s.obstacleTimer++
	if s.obstacleTimer > cfg.Spawn.ObstaclePeriod {
		s.obstacleTimer = 0
		kinds := cfg.Spawn.ObstacleKinds
		s.Obstacles = append(s.Obstacles, Obstacle{
			X:    cfg.Playfield.Width,
			Kind: parseKind(kinds[rng.Intn(len(kinds))]),
		})
	}

	s.collectibleTimer++
	if s.collectibleTimer > cfg.Spawn.CollectiblePeriod {
		s.collectibleTimer = 0
		heights := cfg.Spawn.CollectibleHeights
		s.Collectibles = append(s.Collectibles, Collectible{
			X: cfg.Playfield.Width,
			Y: heights[rng.Intn(len(heights))],
		})
	}
}
