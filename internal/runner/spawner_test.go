package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cookie-run/internal/config"
)

func TestSpawnPeriods(t *testing.T) {
	tests := []struct {
		name             string
		cfg              config.RunnerConfig
		firstObstacle    int
		firstCollectible int
	}{
		{"cookierun", config.DefaultCookieRunConfig(), 61, 31},
		{"donutchase", config.DefaultDonutChaseConfig(), 81, 51},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := initialState(tc.cfg)
			rng := rand.New(rand.NewSource(1))
			obstacleAt, collectibleAt := 0, 0

			for tick := 1; tick <= 200 && (obstacleAt == 0 || collectibleAt == 0); tick++ {
				spawn(&s, &tc.cfg, rng)
				if obstacleAt == 0 && len(s.Obstacles) > 0 {
					obstacleAt = tick
				}
				if collectibleAt == 0 && len(s.Collectibles) > 0 {
					collectibleAt = tick
				}
			}

			if obstacleAt != tc.firstObstacle {
				t.Errorf("first obstacle on call %d, expected %d", obstacleAt, tc.firstObstacle)
			}
			if collectibleAt != tc.firstCollectible {
				t.Errorf("first collectible on call %d, expected %d", collectibleAt, tc.firstCollectible)
			}
		})
	}
}

func TestSpawnAtRightEdge(t *testing.T) {
	cfg := config.DefaultCookieRunConfig()
	s := initialState(cfg)
	rng := rand.New(rand.NewSource(7))

	for range 300 {
		spawn(&s, &cfg, rng)
	}
	for _, o := range s.Obstacles {
		if o.X != cfg.Playfield.Width {
			t.Errorf("obstacle spawned at %v, expected %v", o.X, cfg.Playfield.Width)
		}
	}
	for _, c := range s.Collectibles {
		if c.X != cfg.Playfield.Width {
			t.Errorf("collectible spawned at %v, expected %v", c.X, cfg.Playfield.Width)
		}
		if c.Y != 40 && c.Y != 80 {
			t.Errorf("collectible height %v not in the configured set", c.Y)
		}
	}
}

func TestSpawnChoicesAreUniform(t *testing.T) {
	cfg := config.DefaultCookieRunConfig()
	// Period 0 spawns on every call.
	cfg.Spawn.ObstaclePeriod = 0
	cfg.Spawn.CollectiblePeriod = 0

	s := initialState(cfg)
	rng := rand.New(rand.NewSource(42))
	const n = 10000
	for range n {
		spawn(&s, &cfg, rng)
	}

	gaps, high := 0, 0
	for _, o := range s.Obstacles {
		if o.Kind == KindGap {
			gaps++
		}
	}
	for _, c := range s.Collectibles {
		if c.Y == 80 {
			high++
		}
	}

	if len(s.Obstacles) != n || len(s.Collectibles) != n {
		t.Fatalf("spawned %d/%d, expected %d each", len(s.Obstacles), len(s.Collectibles), n)
	}
	if gaps < 4500 || gaps > 5500 {
		t.Errorf("gap share %d/%d is far from even", gaps, n)
	}
	if high < 4500 || high > 5500 {
		t.Errorf("high coin share %d/%d is far from even", high, n)
	}
}

func TestChaseSpawnsOnlySpikes(t *testing.T) {
	cfg := config.DefaultDonutChaseConfig()
	cfg.Spawn.ObstaclePeriod = 0
	s := initialState(cfg)
	rng := rand.New(rand.NewSource(3))

	for range 500 {
		spawn(&s, &cfg, rng)
	}
	for _, o := range s.Obstacles {
		if o.Kind != KindSpike {
			t.Fatalf("donut chase spawned %v", o.Kind)
		}
	}
}
