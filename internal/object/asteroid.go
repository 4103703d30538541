package object

import "github.com/tomz197/driftrocks/internal/physics"

// SizeClass represents the size category of an asteroid.
type SizeClass int

const (
	SizeSmall  SizeClass = 1
	SizeMedium SizeClass = 2
	SizeLarge  SizeClass = 3
)

// Size properties for each asteroid size class.
var asteroidDiameters = map[SizeClass]float64{
	SizeSmall:  20.0,
	SizeMedium: 40.0,
	SizeLarge:  80.0,
}

var asteroidSpeeds = map[SizeClass]float64{
	SizeSmall:  100.0,
	SizeMedium: 75.0,
	SizeLarge:  50.0,
}

// String returns the lowercase size name.
func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Diameter returns the render and collision diameter for the size class.
func (s SizeClass) Diameter() float64 {
	return asteroidDiameters[s]
}

// Radius returns the collision radius for the size class.
func (s SizeClass) Radius() float64 {
	return asteroidDiameters[s] / 2
}

// Speed returns the spawn speed for the size class.
func (s SizeClass) Speed() float64 {
	return asteroidSpeeds[s]
}

// NewAsteroid creates an asteroid of the given size at pos, travelling along
// heading (radians, measured from +X) at the size class speed.
func NewAsteroid(pos physics.Vec2, size SizeClass, heading float64) Entity {
	return Entity{
		Kind:   KindAsteroid,
		Pos:    pos,
		Vel:    physics.FromAngle(heading).Scale(size.Speed()),
		Size:   size,
		Radius: size.Radius(),
	}
}
