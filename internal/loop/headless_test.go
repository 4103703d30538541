package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/sim"
)

var pilot = Autopilot{FireEvery: 15, ThrustEvery: 240}

func TestSimulate(t *testing.T) {
	cfg := config.Default()
	sum := Simulate(context.Background(), cfg, SimulateOptions{
		Duration:  30 * time.Second,
		Autopilot: pilot,
		Rand:      sim.NewRand(3),
	})

	assert.Equal(t, 1800, sum.Frames)
	assert.Equal(t, 30*time.Second, sum.Simulated.Round(time.Millisecond))
	assert.GreaterOrEqual(t, sum.Rounds, 1)
	assert.Positive(t, sum.Shots)
	assert.Equal(t, sum.Rounds-1, sum.Deaths-boolToInt(sum.Final == sim.StateGameOver))
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() Summary {
		return Simulate(context.Background(), config.Default(), SimulateOptions{
			Duration:  20 * time.Second,
			Autopilot: pilot,
			Rand:      sim.NewRand(11),
		})
	}
	assert.Equal(t, run(), run())
}

func TestSimulateHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum := Simulate(ctx, config.Default(), SimulateOptions{Duration: time.Hour, Autopilot: pilot})
	assert.Zero(t, sum.Frames)
}

func TestAutopilot(t *testing.T) {
	const frame = time.Second / 60

	in := pilot.Intents(0, sim.StatePlaying, frame)
	assert.True(t, in.FireEdge)
	assert.True(t, in.Thrust)
	assert.True(t, in.RotateLeft)

	in = pilot.Intents(121, sim.StatePlaying, frame)
	assert.False(t, in.FireEdge)
	assert.False(t, in.Thrust)
	assert.True(t, in.RotateRight)

	assert.Equal(t, sim.Intents{RestartEdge: true}, pilot.Intents(7, sim.StateGameOver, frame))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
