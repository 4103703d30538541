package sim

import (
	"slices"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// collide runs the projectile pass, then the player pass, then adds the
// queued fragments to the store.
func (s *Sim) collide() {
	s.projectiles = s.store.IDs(s.projectiles[:0], object.KindProjectile)
	s.asteroids = s.store.IDs(s.asteroids[:0], object.KindAsteroid)

	if s.cfg.Collision.Broadphase == config.BroadphaseGrid {
		s.projectileHitsGrid()
	} else {
		s.projectileHitsNaive()
	}
	s.playerHits()
	s.flushSpawned()
}

// projectileHitsNaive tests every projectile against every asteroid.
func (s *Sim) projectileHitsNaive() {
	for _, pid := range s.projectiles {
		p, ok := s.store.Get(pid)
		if !ok {
			continue
		}
		hit := false
		for _, aid := range s.asteroids {
			if s.hitAsteroid(p, aid) {
				hit = true
			}
		}
		if hit {
			s.store.Remove(pid)
		}
	}
}

// projectileHitsGrid buckets asteroids into a uniform grid and tests each
// projectile against its neighborhood only. Candidates are visited in
// snapshot order so results match the naive pass exactly.
func (s *Sim) projectileHitsGrid() {
	b := s.playBounds()
	cell := object.SizeLarge.Radius() + s.shot.Size/2
	if s.grid == nil || !s.grid.Fits(b.Width, b.Height, cell) {
		s.grid = physics.NewSpatialGrid(b.Width, b.Height, cell)
	}
	s.grid.Clear()
	for i, aid := range s.asteroids {
		if a, ok := s.store.Get(aid); ok {
			s.grid.Insert(a.Pos, i)
		}
	}

	for _, pid := range s.projectiles {
		p, ok := s.store.Get(pid)
		if !ok {
			continue
		}
		s.candidates = s.candidates[:0]
		s.grid.QueryAround(p.Pos, func(i int) bool {
			s.candidates = append(s.candidates, i)
			return false
		})
		slices.Sort(s.candidates)

		hit := false
		for _, i := range s.candidates {
			if s.hitAsteroid(p, s.asteroids[i]) {
				hit = true
			}
		}
		if hit {
			s.store.Remove(pid)
		}
	}
}

// hitAsteroid destroys the asteroid if it is still alive and overlaps p.
func (s *Sim) hitAsteroid(p *object.Entity, aid object.ID) bool {
	a, ok := s.store.Get(aid)
	if !ok || !physics.CirclesOverlap(p.Pos, p.Radius, a.Pos, a.Radius) {
		return false
	}
	s.destroyAsteroid(aid, a)
	return true
}

// destroyAsteroid removes the asteroid, scores it and queues its fragments.
func (s *Sim) destroyAsteroid(id object.ID, a *object.Entity) {
	pos, size := a.Pos, a.Size
	s.store.Remove(id)

	points := s.scorer.Points(size)
	s.score += points
	s.fragment(pos, size)

	s.emit(Event{Kind: EventAsteroidDestroyed, ID: id, Pos: pos, Size: size, Points: points})
	s.log.Debug("asteroid destroyed", "size", size, "points", points, "score", s.score)
}

// playerHits checks the player against the asteroids that survived the
// projectile pass. Fragments queued this frame are not considered.
func (s *Sim) playerHits() {
	pid, player, ok := s.store.Player()
	if !ok {
		return
	}
	for _, aid := range s.asteroids {
		a, ok := s.store.Get(aid)
		if !ok {
			continue
		}
		if physics.CirclesOverlap(player.Pos, player.Radius, a.Pos, a.Radius) {
			pos := player.Pos
			s.store.Remove(pid)
			s.playerDied = true
			s.emit(Event{Kind: EventPlayerDied, ID: pid, Pos: pos})
			s.log.Debug("player destroyed", "x", pos.X, "y", pos.Y)
			return
		}
	}
}

// flushSpawned adds every queued entity to the store.
func (s *Sim) flushSpawned() {
	for _, e := range s.pending {
		id := s.store.Add(e)
		s.emit(Event{Kind: EventAsteroidSpawned, ID: id, Pos: e.Pos, Size: e.Size})
	}
	s.pending = s.pending[:0]
}
