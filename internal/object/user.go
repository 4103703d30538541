package object

import (
	"math"

	"github.com/tomz197/driftrocks/internal/physics"
)

// Player ship defaults.
const (
	PlayerSize          = 50.0  // Collision diameter
	PlayerRotationSpeed = 2.5   // Radians per second
	PlayerThrustForce   = 100.0 // Acceleration units per second²
)

// ShipSpec holds the tunables for the player ship.
type ShipSpec struct {
	Size          float64
	RotationSpeed float64
	ThrustForce   float64
}

// DefaultShipSpec returns the stock ship parameters.
func DefaultShipSpec() ShipSpec {
	return ShipSpec{
		Size:          PlayerSize,
		RotationSpeed: PlayerRotationSpeed,
		ThrustForce:   PlayerThrustForce,
	}
}

// Controls is the subset of frame intents that steer the ship.
type Controls struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// NewPlayer creates a stationary ship at pos pointing up.
func NewPlayer(pos physics.Vec2, spec ShipSpec) Entity {
	return Entity{
		Kind:   KindPlayer,
		Pos:    pos,
		Radius: spec.Size / 2,
	}
}

// Forward returns the unit vector a ship with the given rotation faces.
// Rotation 0 faces +Y; positive rotation turns counter-clockwise.
func Forward(angle float64) physics.Vec2 {
	return physics.Vec2{X: -math.Sin(angle), Y: math.Cos(angle)}
}

// Steer applies rotation and thrust to the ship for dt seconds.
// Velocity only accumulates: there is no drag and no speed cap.
func (e *Entity) Steer(c Controls, spec ShipSpec, dt float64) {
	if c.RotateLeft {
		e.Angle += spec.RotationSpeed * dt
	}
	if c.RotateRight {
		e.Angle -= spec.RotationSpeed * dt
	}

	// Normalize angle to [-π, π]
	for e.Angle > math.Pi {
		e.Angle -= 2 * math.Pi
	}
	for e.Angle < -math.Pi {
		e.Angle += 2 * math.Pi
	}

	if c.Thrust {
		e.Vel = e.Vel.Add(Forward(e.Angle).Scale(spec.ThrustForce * dt))
	}
}
