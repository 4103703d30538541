package sim

import (
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// RoundState is the current game phase.
type RoundState int

const (
	StateLoading  RoundState = iota // Waiting on assets
	StatePlaying                    // Active gameplay
	StateGameOver                   // Player died, waiting for restart
)

// String returns the state name.
func (r RoundState) String() string {
	switch r {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// updateRound applies the transition for the frame, if any.
func (s *Sim) updateRound(in Intents) {
	switch s.state {
	case StateLoading:
		if s.AssetsReady() {
			s.enter(StatePlaying)
		}
	case StatePlaying:
		if s.playerDied {
			s.enter(StateGameOver)
		}
	case StateGameOver:
		if in.RestartEdge {
			s.enter(StatePlaying)
		}
	}
	s.playerDied = false
}

// enter switches to next and runs its entry action. Entering the current
// state does nothing.
func (s *Sim) enter(next RoundState) {
	if next == s.state {
		return
	}
	prev := s.state
	s.state = next

	switch next {
	case StatePlaying:
		s.resetRound()
		s.store.Add(object.NewPlayer(physics.Vec2{}, s.ship))
		seeded := s.seedAsteroids(s.playBounds())
		s.emit(Event{Kind: EventRoundStarted})
		s.log.Info("round started", "from", prev, "asteroids", seeded)
	case StateGameOver:
		s.store.Clear(object.KindPlayer)
		s.log.Info("game over", "score", s.score)
	}
}

// resetRound clears every entity, the score and the spawn timer.
func (s *Sim) resetRound() {
	s.store.Clear(object.KindPlayer, object.KindProjectile, object.KindAsteroid)
	s.pending = s.pending[:0]
	s.score = 0
	s.timer.Reset()
}
