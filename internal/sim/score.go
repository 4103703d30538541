package sim

import (
	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/object"
)

// Classic per-size points. Smaller asteroids are worth more.
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Scorer decides how many points a destroyed asteroid is worth.
type Scorer interface {
	Points(size object.SizeClass) int
}

// FlatScorer awards the same amount for every asteroid.
type FlatScorer int

// Points implements Scorer.
func (f FlatScorer) Points(object.SizeClass) int { return int(f) }

// ClassicScorer awards points by asteroid size.
type ClassicScorer struct{}

// Points implements Scorer.
func (ClassicScorer) Points(size object.SizeClass) int {
	switch size {
	case object.SizeLarge:
		return ScoreLargeAsteroid
	case object.SizeMedium:
		return ScoreMediumAsteroid
	case object.SizeSmall:
		return ScoreSmallAsteroid
	default:
		return 0
	}
}

// NewScorer returns the scorer for the configured policy. Unknown policies
// fall back to one point per kill.
func NewScorer(cfg config.ScoringConfig) Scorer {
	switch cfg.Policy {
	case config.ScoringClassic:
		return ClassicScorer{}
	default:
		if cfg.PerKill <= 0 {
			return FlatScorer(1)
		}
		return FlatScorer(cfg.PerKill)
	}
}
