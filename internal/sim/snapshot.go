package sim

import (
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// EntityView is a read-only copy of one entity for presentation.
type EntityView struct {
	ID     object.ID
	Kind   object.Kind
	Pos    physics.Vec2
	Angle  float64
	Size   object.SizeClass
	Radius float64
}

// Snapshot is the state a presentation layer needs to draw one frame.
type Snapshot struct {
	Score    int
	State    RoundState
	Entities []EntityView
}

// Snapshot copies out the current frame.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Score:    s.score,
		State:    s.state,
		Entities: s.AppendEntities(nil),
	}
}

// AppendEntities appends a view of every live entity to dst, so renderers
// can reuse one buffer between frames.
func (s *Sim) AppendEntities(dst []EntityView) []EntityView {
	s.store.EachLive(func(id object.ID, e *object.Entity) {
		dst = append(dst, EntityView{
			ID:     id,
			Kind:   e.Kind,
			Pos:    e.Pos,
			Angle:  e.Angle,
			Size:   e.Size,
			Radius: e.Radius,
		})
	})
	return dst
}
