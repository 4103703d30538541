package sim

import (
	"time"

	"github.com/tomz197/driftrocks/internal/object"
)

// updateProjectiles ages and expires existing projectiles, fires a new one
// on the fire edge, then drops every projectile outside b. A projectile is
// not aged on the frame it was fired.
func (s *Sim) updateProjectiles(dt time.Duration, fire bool, b object.Bounds, haveBounds bool) {
	s.store.Each(object.KindProjectile, func(id object.ID, e *object.Entity) {
		e.Lifetime -= dt
		if e.Expired() {
			s.store.Remove(id)
		}
	})

	if fire {
		s.fire()
	}

	if !haveBounds {
		return
	}
	s.store.Each(object.KindProjectile, func(id object.ID, e *object.Entity) {
		if !b.Contains(e.Pos) {
			s.store.Remove(id)
		}
	})
}

// fire spawns a projectile from the player's nose. Without a player nothing happens.
func (s *Sim) fire() {
	_, ship, ok := s.store.Player()
	if !ok {
		return
	}
	p := object.NewProjectile(ship, s.shot)
	id := s.store.Add(p)
	s.emit(Event{Kind: EventProjectileFired, ID: id, Pos: p.Pos})
	s.log.Debug("projectile fired", "x", p.Pos.X, "y", p.Pos.Y)
}
