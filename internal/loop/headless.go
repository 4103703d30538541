package loop

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/sim"
)

// Summary reports what happened during a headless run.
type Summary struct {
	Frames    int
	Simulated time.Duration
	Rounds    int // Rounds started
	Deaths    int
	Shots     int
	Kills     int
	BestScore int
	Final     sim.RoundState
}

// Autopilot scripts intents for a headless run: it turns steadily, fires on
// a fixed cadence, thrusts in bursts and restarts after every death.
type Autopilot struct {
	FireEvery   int // Frames between shots; <= 0 never fires
	ThrustEvery int // Frames between half-second thrust bursts; <= 0 never thrusts
}

// Intents returns the controls for frame n given the current state.
func (a Autopilot) Intents(n int, state sim.RoundState, frameTime time.Duration) sim.Intents {
	if state == sim.StateGameOver {
		return sim.Intents{RestartEdge: true}
	}
	in := sim.Intents{RotateLeft: (n/120)%2 == 0, RotateRight: (n/120)%2 == 1}
	if a.FireEvery > 0 && n%a.FireEvery == 0 {
		in.FireEdge = true
	}
	if a.ThrustEvery > 0 {
		burst := max(int(500*time.Millisecond/max(frameTime, time.Millisecond)), 1)
		in.Thrust = n%a.ThrustEvery < burst
	}
	return in
}

// SimulateOptions configures Simulate.
type SimulateOptions struct {
	Duration  time.Duration // Simulated time to run for
	Autopilot Autopilot
	Logger    *log.Logger
	Rand      *rand.Rand
}

// Simulate runs the game without a terminal at the configured tick rate,
// as fast as possible, for the whole frames that fit in opts.Duration or
// until ctx is cancelled.
func Simulate(ctx context.Context, cfg config.Config, opts SimulateOptions) Summary {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	simOpts := []sim.Option{sim.WithLogger(logger)}
	if opts.Rand != nil {
		simOpts = append(simOpts, sim.WithRand(opts.Rand))
	}
	game := sim.New(cfg, simOpts...)
	dt := cfg.Loop.FrameTime()

	frames := int(opts.Duration / dt)

	var sum Summary
	for sum.Frames < frames {
		if sum.Frames%256 == 0 && ctx.Err() != nil {
			break
		}

		in := opts.Autopilot.Intents(sum.Frames, game.State(), dt)
		for _, ev := range game.Step(dt, in) {
			switch ev.Kind {
			case sim.EventRoundStarted:
				sum.Rounds++
			case sim.EventProjectileFired:
				sum.Shots++
			case sim.EventAsteroidDestroyed:
				sum.Kills++
				sum.BestScore = max(sum.BestScore, game.Score())
			case sim.EventPlayerDied:
				sum.Deaths++
				logger.Debug("player died", "frame", sum.Frames, "score", game.Score(),
					"asteroids", game.Count(object.KindAsteroid))
			}
		}

		sum.Frames++
		sum.Simulated += dt
	}
	sum.Final = game.State()
	return sum
}
