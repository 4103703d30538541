package sim

import (
	"math"
	"time"

	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// SpawnTimer is a repeating countdown. It fires at most once per Tick and
// drops any backlog beyond one period.
type SpawnTimer struct {
	Period  time.Duration // <= 0 disables the timer
	elapsed time.Duration
}

// Tick advances the timer by dt and reports whether it fired.
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	if t.Period <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Period {
		return false
	}
	t.elapsed %= t.Period
	return true
}

// Reset restarts the countdown from zero.
func (t *SpawnTimer) Reset() {
	t.elapsed = 0
}

// Edges of the play rectangle, for injection.
const (
	edgeTop = iota
	edgeBottom
	edgeLeft
	edgeRight
	edgeCount
)

// seedAsteroids places the round's initial large asteroids and returns how
// many were added.
func (s *Sim) seedAsteroids(b object.Bounds) int {
	n := s.cfg.Spawn.InitialCount
	for range n {
		pos := s.seedPosition(b)
		heading := s.rng.Float64() * 2 * math.Pi
		id := s.store.Add(object.NewAsteroid(pos, object.SizeLarge, heading))
		s.emit(Event{Kind: EventAsteroidSpawned, ID: id, Pos: pos, Size: object.SizeLarge})
	}
	return n
}

// seedPosition samples a uniform point in b away from the center. After
// MaxRetries rejected samples the last one is used anyway.
func (s *Sim) seedPosition(b object.Bounds) physics.Vec2 {
	var pos physics.Vec2
	for range max(s.cfg.Spawn.MaxRetries, 1) {
		pos = physics.Vec2{
			X: (s.rng.Float64()*2 - 1) * b.HalfWidth(),
			Y: (s.rng.Float64()*2 - 1) * b.HalfHeight(),
		}
		if pos.Len() >= s.cfg.Spawn.MinDistance {
			return pos
		}
	}
	s.log.Warn("asteroid placement exhausted retries, using last sample",
		"retries", s.cfg.Spawn.MaxRetries, "x", pos.X, "y", pos.Y)
	return pos
}

// injectAsteroid spawns one large asteroid just outside a random edge,
// aimed roughly at the center.
func (s *Sim) injectAsteroid(b object.Bounds) {
	off := s.cfg.Spawn.EdgeOffset
	hw, hh := b.HalfWidth(), b.HalfHeight()

	var pos physics.Vec2
	switch s.rng.IntN(edgeCount) {
	case edgeTop:
		pos = physics.Vec2{X: (s.rng.Float64()*2 - 1) * hw, Y: hh + off}
	case edgeBottom:
		pos = physics.Vec2{X: (s.rng.Float64()*2 - 1) * hw, Y: -hh - off}
	case edgeLeft:
		pos = physics.Vec2{X: -hw - off, Y: (s.rng.Float64()*2 - 1) * hh}
	case edgeRight:
		pos = physics.Vec2{X: hw + off, Y: (s.rng.Float64()*2 - 1) * hh}
	}

	jitter := s.cfg.Spawn.HeadingJitter
	heading := physics.Vec2{}.Sub(pos).Heading() + (s.rng.Float64()*2-1)*jitter

	a := object.NewAsteroid(pos, object.SizeLarge, heading)
	a.Entering = !b.Contains(pos)
	id := s.store.Add(a)
	s.emit(Event{Kind: EventAsteroidSpawned, ID: id, Pos: pos, Size: object.SizeLarge})
	s.log.Debug("asteroid injected", "x", pos.X, "y", pos.Y)
}
