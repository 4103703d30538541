package sim

import "github.com/tomz197/driftrocks/internal/object"

// wrap teleports players and asteroids that crossed an edge to the opposite
// edge. Entering asteroids are left alone until they are inside b, unless
// they stray more than two edge offsets out.
func (s *Sim) wrap(b object.Bounds) {
	outer := b.Grow(2 * s.cfg.Spawn.EdgeOffset)

	s.store.EachLive(func(_ object.ID, e *object.Entity) {
		if !e.Kind.Wraps() {
			return
		}
		if e.Entering {
			switch {
			case b.Contains(e.Pos):
				e.Entering = false
			case !outer.Contains(e.Pos):
				e.Entering = false
				b.Wrap(&e.Pos)
			}
			return
		}
		b.Wrap(&e.Pos)
	})
}
