package sim

import (
	"time"

	"github.com/tomz197/driftrocks/internal/object"
)

// Step advances the game by dt and returns what happened during the frame.
// The returned slice is reused by the next call.
//
// Frame order: player control, movement, wrap, projectile lifecycle, spawn
// timer, collisions with fragmentation, then the round state update. While
// Loading only the state update runs. In GameOver entities keep drifting
// but the spawn timer and collisions stop.
func (s *Sim) Step(dt time.Duration, in Intents) []Event {
	s.events = s.events[:0]
	if dt < 0 {
		dt = 0
	}

	if s.state != StateLoading {
		secs := dt.Seconds()
		bounds, haveBounds := s.bounds()
		haveBounds = haveBounds && bounds.Valid()

		s.steer(in, secs)
		s.move(secs)
		if haveBounds {
			s.wrap(bounds)
		}
		s.updateProjectiles(dt, in.FireEdge, bounds, haveBounds)

		if s.state == StatePlaying {
			if s.timer.Tick(dt) {
				s.injectAsteroid(s.playBounds())
			}
			s.collide()
		}
	}

	s.updateRound(in)
	return s.events
}

// steer applies rotation and thrust intents to the player, if there is one.
func (s *Sim) steer(in Intents, dt float64) {
	_, ship, ok := s.store.Player()
	if !ok {
		return
	}
	ship.Steer(object.Controls{
		RotateLeft:  in.RotateLeft,
		RotateRight: in.RotateRight,
		Thrust:      in.Thrust,
	}, s.ship, dt)
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}
