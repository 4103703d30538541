package sim

import "github.com/tomz197/driftrocks/internal/object"

// move integrates every entity's position by its velocity over dt seconds.
func (s *Sim) move(dt float64) {
	s.store.EachLive(func(_ object.ID, e *object.Entity) {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	})
}
