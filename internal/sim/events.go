package sim

import (
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventRoundStarted EventKind = iota + 1
	EventProjectileFired
	EventAsteroidSpawned
	EventAsteroidDestroyed
	EventPlayerDied
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round-started"
	case EventProjectileFired:
		return "projectile-fired"
	case EventAsteroidSpawned:
		return "asteroid-spawned"
	case EventAsteroidDestroyed:
		return "asteroid-destroyed"
	case EventPlayerDied:
		return "player-died"
	default:
		return "unknown"
	}
}

// Event is one notable change made by Step. Fields beyond Kind are set
// where they apply.
type Event struct {
	Kind   EventKind
	ID     object.ID
	Pos    physics.Vec2
	Size   object.SizeClass
	Points int
}
