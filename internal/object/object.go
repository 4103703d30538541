// Package object holds the entity store and the per-kind entity constructors.
package object

import (
	"time"

	"github.com/tomz197/driftrocks/internal/physics"
)

// Kind discriminates the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindAsteroid
	KindProjectile
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAsteroid:
		return "asteroid"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Wraps reports whether entities of this kind teleport across play-area edges.
func (k Kind) Wraps() bool {
	return k == KindPlayer || k == KindAsteroid
}

// ID is a stable entity handle: a slot index plus the slot's generation.
// A stale ID (slot freed and reused) never resolves to the new occupant.
type ID struct {
	index uint32
	gen   uint32
}

// Nil is the zero ID; it never resolves.
var Nil ID

// IsNil reports whether id is the zero handle.
func (id ID) IsNil() bool {
	return id.gen == 0
}

// Key packs the handle into one integer, unique among all IDs a store has
// handed out.
func (id ID) Key() uint64 {
	return uint64(id.gen)<<32 | uint64(id.index)
}

// Entity is one game object. Kind selects which fields are meaningful:
// Angle is used by the player, Size by asteroids, Lifetime by projectiles.
type Entity struct {
	Kind     Kind
	Pos      physics.Vec2
	Vel      physics.Vec2
	Angle    float64       // Rotation in radians, counter-clockwise; 0 points +Y
	Size     SizeClass     // Asteroid size category
	Lifetime time.Duration // Remaining projectile lifetime
	Radius   float64       // Collision radius (half the diameter)

	// Entering marks an asteroid injected from outside the play area that
	// has not yet crossed into it; wrapping skips it until it does.
	Entering bool
}

// slot is one arena cell. gen starts at 1 for the first occupant and is
// bumped on every removal.
type slot struct {
	gen   uint32
	alive bool
	ent   Entity
}

// Store is an arena of entities with generational IDs and free-list reuse.
// It is owned by a single simulation and is not safe for concurrent use.
type Store struct {
	slots  []slot
	free   []uint32
	counts [KindProjectile + 1]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts e and returns its handle.
func (s *Store) Add(e Entity) ID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	if sl.gen == 0 {
		sl.gen = 1
	}
	sl.alive = true
	sl.ent = e
	s.counts[e.Kind]++
	return ID{index: idx, gen: sl.gen}
}

// Get returns the live entity for id. The pointer is valid until the entity
// is removed; do not retain it across frames.
func (s *Store) Get(id ID) (*Entity, bool) {
	if id.IsNil() || int(id.index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.index]
	if !sl.alive || sl.gen != id.gen {
		return nil, false
	}
	return &sl.ent, true
}

// Alive reports whether id still refers to a live entity.
func (s *Store) Alive(id ID) bool {
	_, ok := s.Get(id)
	return ok
}

// Remove frees the entity for id. It returns false if id was already gone,
// so removing twice is harmless.
func (s *Store) Remove(id ID) bool {
	e, ok := s.Get(id)
	if !ok {
		return false
	}
	s.counts[e.Kind]--
	sl := &s.slots[id.index]
	sl.alive = false
	sl.ent = Entity{}
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	s.free = append(s.free, id.index)
	return true
}

// Count returns the number of live entities of kind k.
func (s *Store) Count(k Kind) int {
	if int(k) >= len(s.counts) {
		return 0
	}
	return s.counts[k]
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// Each calls fn for every live entity of kind k in slot order.
// fn may remove the entity it is visiting but must not add entities.
func (s *Store) Each(k Kind, fn func(id ID, e *Entity)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.alive || sl.ent.Kind != k {
			continue
		}
		fn(ID{index: uint32(i), gen: sl.gen}, &sl.ent)
	}
}

// EachLive calls fn for every live entity in slot order.
func (s *Store) EachLive(fn func(id ID, e *Entity)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive {
			fn(ID{index: uint32(i), gen: sl.gen}, &sl.ent)
		}
	}
}

// IDs appends the handles of all live entities of kind k to dst.
func (s *Store) IDs(dst []ID, k Kind) []ID {
	s.Each(k, func(id ID, _ *Entity) {
		dst = append(dst, id)
	})
	return dst
}

// Player returns the first live player entity, if any.
func (s *Store) Player() (ID, *Entity, bool) {
	if s.counts[KindPlayer] == 0 {
		return Nil, nil, false
	}
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive && sl.ent.Kind == KindPlayer {
			return ID{index: uint32(i), gen: sl.gen}, &sl.ent, true
		}
	}
	return Nil, nil, false
}

// Clear removes every entity of the given kinds.
func (s *Store) Clear(kinds ...Kind) {
	for _, k := range kinds {
		s.Each(k, func(id ID, _ *Entity) {
			s.Remove(id)
		})
	}
}
