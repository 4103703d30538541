package object

import "time"

// ProjectileSpeed is the muzzle speed of projectiles.
const ProjectileSpeed = 500.0

// ProjectileLifetime is how long projectiles last before disappearing.
const ProjectileLifetime = 2 * time.Second

// ProjectileSize is the width of the square projectile footprint.
const ProjectileSize = 10.0

// ProjectileStandoff is how far ahead of the ship's center projectiles appear.
const ProjectileStandoff = 20.0

// ProjectileSpec holds the tunables for a fired projectile.
type ProjectileSpec struct {
	Speed    float64
	Lifetime time.Duration
	Standoff float64
	Size     float64
}

// DefaultProjectileSpec returns the stock projectile parameters.
func DefaultProjectileSpec() ProjectileSpec {
	return ProjectileSpec{
		Speed:    ProjectileSpeed,
		Lifetime: ProjectileLifetime,
		Standoff: ProjectileStandoff,
		Size:     ProjectileSize,
	}
}

// NewProjectile creates a projectile fired from the nose of ship, travelling
// along the ship's forward direction. The shooter's velocity is not inherited.
func NewProjectile(ship *Entity, spec ProjectileSpec) Entity {
	forward := Forward(ship.Angle)
	return Entity{
		Kind:     KindProjectile,
		Pos:      ship.Pos.Add(forward.Scale(spec.Standoff)),
		Vel:      forward.Scale(spec.Speed),
		Angle:    ship.Angle,
		Lifetime: spec.Lifetime,
		Radius:   spec.Size / 2,
	}
}

// Expired reports whether a projectile has used up its lifetime.
func (e *Entity) Expired() bool {
	return e.Lifetime <= 0
}
