package sim

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

func TestSpawnTimer(t *testing.T) {
	timer := SpawnTimer{Period: 5 * time.Second}

	assert.False(t, timer.Tick(4*time.Second))
	assert.True(t, timer.Tick(time.Second))
	assert.False(t, timer.Tick(4900*time.Millisecond))

	// Backlog is dropped: a huge step fires once.
	assert.True(t, timer.Tick(time.Minute))
	assert.Equal(t, 4900*time.Millisecond, timer.elapsed)
	assert.True(t, timer.Tick(100*time.Millisecond))

	timer.Reset()
	assert.False(t, timer.Tick(4*time.Second))
}

func TestSpawnTimerDisabled(t *testing.T) {
	for _, period := range []time.Duration{0, -time.Second} {
		timer := SpawnTimer{Period: period}
		assert.False(t, timer.Tick(time.Hour))
	}
}

func TestSeeding(t *testing.T) {
	cfg := quietConfig(func(c *config.Config) {
		c.Spawn.InitialCount = 40
	})
	s := newPlaying(t, cfg)

	bounds := object.Bounds{Width: cfg.World.Width, Height: cfg.World.Height}
	require.Equal(t, 40, s.Count(object.KindAsteroid))
	s.store.Each(object.KindAsteroid, func(_ object.ID, e *object.Entity) {
		assert.Equal(t, object.SizeLarge, e.Size)
		assert.True(t, bounds.Contains(e.Pos), "seeded inside the rectangle: %v", e.Pos)
		assert.GreaterOrEqual(t, e.Pos.Len(), cfg.Spawn.MinDistance, "seeded away from the ship")
		assert.InDelta(t, 50, e.Vel.Len(), 1e-9)
	})
}

func TestSeedingExhaustsRetries(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	cfg := quietConfig(func(c *config.Config) {
		c.Spawn.InitialCount = 3
		c.Spawn.MinDistance = 1e6
		c.Spawn.MaxRetries = 5
	})
	s := newPlaying(t, cfg, WithLogger(logger))

	assert.Equal(t, 3, s.Count(object.KindAsteroid), "last sample is accepted")
	assert.Contains(t, buf.String(), "exhausted retries")
}

func TestSeedingIsDeterministic(t *testing.T) {
	cfg := quietConfig(func(c *config.Config) { c.Spawn.InitialCount = 4 })
	a := newPlaying(t, cfg, WithRand(NewRand(42)))
	b := newPlaying(t, cfg, WithRand(NewRand(42)))
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestInjection(t *testing.T) {
	cfg := quietConfig(func(c *config.Config) {
		c.Spawn.Period = time.Second
	})
	s := newPlaying(t, cfg)
	bounds := object.Bounds{Width: cfg.World.Width, Height: cfg.World.Height}

	// A long frame still spawns only one asteroid.
	evs := s.Step(10*time.Second, Intents{})
	spawned := eventsOf(evs, EventAsteroidSpawned)
	require.Len(t, spawned, 1)

	e, ok := s.store.Get(spawned[0].ID)
	require.True(t, ok)
	assert.Equal(t, object.SizeLarge, e.Size)
	assert.True(t, e.Entering)
	assert.False(t, bounds.Contains(e.Pos))
	assert.True(t, bounds.Grow(cfg.Spawn.EdgeOffset).Contains(e.Pos))

	hw, hh := bounds.HalfWidth(), bounds.HalfHeight()
	onEdge := math.Abs(math.Abs(e.Pos.X)-hw-cfg.Spawn.EdgeOffset) < 1e-9 ||
		math.Abs(math.Abs(e.Pos.Y)-hh-cfg.Spawn.EdgeOffset) < 1e-9
	assert.True(t, onEdge, "spawned one edge offset outside: %v", e.Pos)

	// Heading is within the jitter of straight at the center.
	toCenter := physics.Vec2{}.Sub(e.Pos).Heading()
	diff := math.Remainder(e.Vel.Heading()-toCenter, 2*math.Pi)
	assert.LessOrEqual(t, math.Abs(diff), cfg.Spawn.HeadingJitter+1e-9)
	assert.InDelta(t, 50, e.Vel.Len(), 1e-9)
}

func TestInjectionHeadingsStayInJitter(t *testing.T) {
	cfg := quietConfig(func(c *config.Config) { c.Spawn.Period = time.Second })
	s := newPlaying(t, cfg)
	bounds := s.playBounds()

	for range 200 {
		s.injectAsteroid(bounds)
	}
	edges := map[string]int{}
	s.store.Each(object.KindAsteroid, func(_ object.ID, e *object.Entity) {
		toCenter := physics.Vec2{}.Sub(e.Pos).Heading()
		diff := math.Remainder(e.Vel.Heading()-toCenter, 2*math.Pi)
		assert.LessOrEqual(t, math.Abs(diff), cfg.Spawn.HeadingJitter+1e-9)

		switch {
		case e.Pos.Y > bounds.HalfHeight():
			edges["top"]++
		case e.Pos.Y < -bounds.HalfHeight():
			edges["bottom"]++
		case e.Pos.X < -bounds.HalfWidth():
			edges["left"]++
		default:
			edges["right"]++
		}
	})
	assert.Len(t, edges, 4, "every edge is used")
}

func TestTimerOnlyTicksWhilePlaying(t *testing.T) {
	cfg := quietConfig(func(c *config.Config) { c.Spawn.Period = time.Second })
	s := newPlaying(t, cfg)

	s.Step(600*time.Millisecond, Intents{})
	assert.Equal(t, 600*time.Millisecond, s.timer.elapsed)

	s.store.Clear(object.KindPlayer)
	s.playerDied = true
	s.updateRound(Intents{})
	require.Equal(t, StateGameOver, s.State())

	s.Step(5*time.Second, Intents{})
	assert.Zero(t, s.Count(object.KindAsteroid))
	assert.Equal(t, 600*time.Millisecond, s.timer.elapsed)

	s.Step(0, Intents{RestartEdge: true})
	require.Equal(t, StatePlaying, s.State())
	assert.Zero(t, s.timer.elapsed, "timer restarts with the round")
}
