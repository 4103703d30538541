package input

import "github.com/tomz197/driftrocks/internal/sim"

// Edges converts held-key samples into per-frame game intents. Fire and
// restart are reported only on the frame their key goes down.
type Edges struct {
	fire    bool
	restart bool
}

// Intents returns the intents for one frame of input.
// Space fires; Enter or Space restarts.
func (e *Edges) Intents(in Input) sim.Intents {
	restart := in.Enter || in.Fire
	out := sim.Intents{
		RotateLeft:  in.Left,
		RotateRight: in.Right,
		Thrust:      in.Up,
		FireEdge:    in.Fire && !e.fire,
		RestartEdge: restart && !e.restart,
	}
	e.fire = in.Fire
	e.restart = restart
	return out
}
