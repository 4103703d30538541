package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

func bigWorld(c *config.Config) {
	c.World.Width = 10000
	c.World.Height = 10000
}

func TestProjectileLifetime(t *testing.T) {
	s := newPlaying(t, quietConfig(bigWorld))
	const dt = 100 * time.Millisecond

	// Frame 0: fired, not aged.
	evs := s.Step(dt, Intents{FireEdge: true})
	fired := eventsOf(evs, EventProjectileFired)
	require.Len(t, fired, 1)
	id := fired[0].ID

	for frame := 1; frame <= 19; frame++ {
		s.Step(dt, Intents{})
		p, ok := s.store.Get(id)
		require.True(t, ok, "projectile must exist at t=%v", time.Duration(frame)*dt)
		assert.Positive(t, p.Lifetime)
	}

	p, _ := s.store.Get(id)
	assert.Equal(t, 100*time.Millisecond, p.Lifetime)

	s.Step(dt, Intents{})
	assert.False(t, s.store.Alive(id), "projectile must be gone at t=2s")
	assert.Zero(t, s.Count(object.KindProjectile))
}

func TestProjectileLifetimeTicks(t *testing.T) {
	tests := []struct {
		dt    time.Duration
		ticks int // ceil(2s / dt)
	}{
		{100 * time.Millisecond, 20},
		{300 * time.Millisecond, 7},
		{20 * time.Millisecond, 100},
		{250 * time.Millisecond, 8},
		{3 * time.Second, 1},
	}
	for _, tc := range tests {
		t.Run(tc.dt.String(), func(t *testing.T) {
			s := newPlaying(t, quietConfig(bigWorld, func(c *config.Config) {
				c.Projectile.Speed = 1
			}))
			s.Step(0, Intents{FireEdge: true})
			require.Equal(t, 1, s.Count(object.KindProjectile))

			ticks := 0
			for s.Count(object.KindProjectile) > 0 {
				s.Step(tc.dt, Intents{})
				ticks++
				require.LessOrEqual(t, ticks, tc.ticks)
			}
			assert.Equal(t, tc.ticks, ticks)
		})
	}
}

func TestFireSpawnsFromNose(t *testing.T) {
	s := newPlaying(t, quietConfig())

	s.Step(0, Intents{FireEdge: true})
	var shots []*object.Entity
	s.store.Each(object.KindProjectile, func(_ object.ID, e *object.Entity) {
		shots = append(shots, e)
	})
	require.Len(t, shots, 1)
	assert.InDelta(t, 0, shots[0].Pos.X, 1e-9)
	assert.InDelta(t, 20, shots[0].Pos.Y, 1e-9)
	assert.InDelta(t, 500, shots[0].Vel.Y, 1e-9)
	assert.Equal(t, 2*time.Second, shots[0].Lifetime)
	assert.Equal(t, 5.0, shots[0].Radius)
}

func TestFireIsOnePerEdge(t *testing.T) {
	s := newPlaying(t, quietConfig())

	s.Step(10*time.Millisecond, Intents{FireEdge: true})
	s.Step(10*time.Millisecond, Intents{})
	s.Step(10*time.Millisecond, Intents{FireEdge: true})
	assert.Equal(t, 2, s.Count(object.KindProjectile))
}

func TestFireWithoutPlayer(t *testing.T) {
	s := newPlaying(t, quietConfig())
	s.store.Clear(object.KindPlayer)

	evs := s.Step(10*time.Millisecond, Intents{FireEdge: true})
	assert.Empty(t, eventsOf(evs, EventProjectileFired))
	assert.Zero(t, s.Count(object.KindProjectile))
	assert.Equal(t, StatePlaying, s.State())
}

func TestProjectileLeavesBounds(t *testing.T) {
	s := newPlaying(t, quietConfig())

	id := addProjectile(s, physics.Vec2{X: 395}, physics.Vec2{X: 1000})
	s.Step(10*time.Millisecond, Intents{})
	assert.False(t, s.store.Alive(id), "removed on exit with lifetime left")

	// Projectiles never wrap, even on the edge.
	edge := addProjectile(s, physics.Vec2{X: 400, Y: 300}, physics.Vec2{})
	s.Step(10*time.Millisecond, Intents{})
	e, ok := s.store.Get(edge)
	require.True(t, ok)
	assert.Equal(t, physics.Vec2{X: 400, Y: 300}, e.Pos)
}

func TestFreshProjectileOutsideBoundsIsRemoved(t *testing.T) {
	s := newPlaying(t, quietConfig())
	_, ship, _ := s.store.Player()
	ship.Pos = physics.Vec2{Y: 295}

	s.Step(0, Intents{FireEdge: true})
	assert.Zero(t, s.Count(object.KindProjectile))
}
