package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the stock game configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Size:          50,
			RotationSpeed: 2.5,
			ThrustForce:   100,
		},
		Projectile: ProjectileConfig{
			Speed:    500,
			Lifetime: 2 * time.Second,
			Standoff: 20,
			Size:     10,
		},
		Spawn: SpawnConfig{
			InitialCount:  4,
			MinDistance:   100,
			MaxRetries:    64,
			Period:        5 * time.Second,
			EdgeOffset:    50,
			HeadingJitter: 0.5,
		},
		Scoring: ScoringConfig{
			Policy:  ScoringFlat,
			PerKill: 1,
		},
		Collision: CollisionConfig{
			Broadphase: BroadphaseNaive,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}
