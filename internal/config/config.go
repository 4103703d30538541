// Package config provides YAML-based game configuration loading,
// validation, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Scoring policies.
const (
	ScoringFlat    = "flat"    // Fixed amount per destroyed asteroid
	ScoringClassic = "classic" // Size-weighted: small rocks are worth more
)

// Broad-phase strategies for projectile/asteroid collision.
const (
	BroadphaseNaive = "naive" // All-pairs scan
	BroadphaseGrid  = "grid"  // Uniform spatial grid
)

// Config contains all tunable game parameters.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Collision  CollisionConfig  `yaml:"collision"`
	Loop       LoopConfig       `yaml:"loop"`
}

// WorldConfig defines the play rectangle in logical units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines player ship handling.
type ShipConfig struct {
	Size          float64 `yaml:"size"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per second
	ThrustForce   float64 `yaml:"thrust_force"`   // Units per second²
}

// ProjectileConfig defines fired projectiles.
type ProjectileConfig struct {
	Speed    float64       `yaml:"speed"`
	Lifetime time.Duration `yaml:"lifetime"`
	Standoff float64       `yaml:"standoff"`
	Size     float64       `yaml:"size"`
}

// SpawnConfig defines initial seeding and periodic edge injection.
type SpawnConfig struct {
	InitialCount  int           `yaml:"initial_count"`
	MinDistance   float64       `yaml:"min_distance"` // Exclusion radius around the center
	MaxRetries    int           `yaml:"max_retries"`  // Placement attempts before accepting the last sample
	Period        time.Duration `yaml:"period"`       // 0 disables injection
	EdgeOffset    float64       `yaml:"edge_offset"`  // Distance outside the edge
	HeadingJitter float64       `yaml:"heading_jitter"`
}

// ScoringConfig defines how kills are scored.
type ScoringConfig struct {
	Policy  string `yaml:"policy"`
	PerKill int    `yaml:"per_kill"` // Used by the flat policy
}

// CollisionConfig selects the broad-phase.
type CollisionConfig struct {
	Broadphase string `yaml:"broadphase"`
}

// LoopConfig defines host loop timing and randomness.
type LoopConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = derive from the clock
}

// FrameTime returns the target duration of one frame.
func (l LoopConfig) FrameTime() time.Duration {
	if l.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.TickRate)
}

// Validate reports every out-of-range field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size %gx%g must be positive", c.World.Width, c.World.Height)
	check(c.Ship.Size > 0, "ship.size %g must be positive", c.Ship.Size)
	check(c.Ship.RotationSpeed >= 0, "ship.rotation_speed %g must not be negative", c.Ship.RotationSpeed)
	check(c.Ship.ThrustForce >= 0, "ship.thrust_force %g must not be negative", c.Ship.ThrustForce)
	check(c.Projectile.Speed > 0, "projectile.speed %g must be positive", c.Projectile.Speed)
	check(c.Projectile.Lifetime > 0, "projectile.lifetime %s must be positive", c.Projectile.Lifetime)
	check(c.Projectile.Size > 0, "projectile.size %g must be positive", c.Projectile.Size)
	check(c.Spawn.InitialCount >= 0, "spawn.initial_count %d must not be negative", c.Spawn.InitialCount)
	check(c.Spawn.MinDistance >= 0, "spawn.min_distance %g must not be negative", c.Spawn.MinDistance)
	check(c.Spawn.MaxRetries > 0, "spawn.max_retries %d must be positive", c.Spawn.MaxRetries)
	check(c.Spawn.Period >= 0, "spawn.period %s must not be negative", c.Spawn.Period)
	check(c.Spawn.HeadingJitter >= 0, "spawn.heading_jitter %g must not be negative", c.Spawn.HeadingJitter)
	check(c.Scoring.Policy == ScoringFlat || c.Scoring.Policy == ScoringClassic,
		"scoring.policy %q must be %q or %q", c.Scoring.Policy, ScoringFlat, ScoringClassic)
	check(c.Scoring.Policy != ScoringFlat || c.Scoring.PerKill > 0, "scoring.per_kill %d must be positive", c.Scoring.PerKill)
	check(c.Collision.Broadphase == BroadphaseNaive || c.Collision.Broadphase == BroadphaseGrid,
		"collision.broadphase %q must be %q or %q", c.Collision.Broadphase, BroadphaseNaive, BroadphaseGrid)
	check(c.Loop.TickRate > 0, "loop.tick_rate %d must be positive", c.Loop.TickRate)

	return errors.Join(errs...)
}
