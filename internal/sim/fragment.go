package sim

import (
	"math"

	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// fragmentRule says what a destroyed asteroid breaks into.
type fragmentRule struct {
	into  object.SizeClass
	count int
}

// Small asteroids have no rule and vanish.
var fragmentRules = map[object.SizeClass]fragmentRule{
	object.SizeLarge:  {into: object.SizeMedium, count: 2},
	object.SizeMedium: {into: object.SizeSmall, count: 2},
}

// fragment queues the byproducts of an asteroid of the given size destroyed
// at pos. Each piece gets its own uniform heading.
func (s *Sim) fragment(pos physics.Vec2, size object.SizeClass) {
	rule, ok := fragmentRules[size]
	if !ok {
		return
	}
	for range rule.count {
		heading := s.rng.Float64() * 2 * math.Pi
		s.pending = append(s.pending, object.NewAsteroid(pos, rule.into, heading))
	}
}
