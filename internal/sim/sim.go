// Package sim is the frame-stepped game core: it owns the entity store and
// advances movement, wrapping, projectiles, spawning, collisions,
// fragmentation and the round state machine for one game.
//
// A Sim is not safe for concurrent use. Hosts drive it from a single
// goroutine by calling Step once per frame.
package sim

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
)

// Intents are the normalized controls for one frame. The edge fields are
// true only on the frame the control went down.
type Intents struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	FireEdge    bool
	RestartEdge bool
}

// Asset names a presentation resource the round waits for before starting.
type Asset int

const (
	AssetPlayerSprite Asset = iota + 1
	AssetAsteroidSprite
)

// requiredAssets must all be ready before Loading gives way to Playing.
var requiredAssets = []Asset{AssetPlayerSprite, AssetAsteroidSprite}

// String returns the asset name.
func (a Asset) String() string {
	switch a {
	case AssetPlayerSprite:
		return "player-sprite"
	case AssetAsteroidSprite:
		return "asteroid-sprite"
	default:
		return "unknown"
	}
}

// AssetProbe reports whether a presentation asset has finished loading.
type AssetProbe interface {
	Ready(asset Asset) bool
}

// AssetProbeFunc adapts a function to AssetProbe.
type AssetProbeFunc func(asset Asset) bool

// Ready implements AssetProbe.
func (f AssetProbeFunc) Ready(asset Asset) bool { return f(asset) }

// BoundsFunc returns the current play rectangle. It is called once per
// frame; ok == false skips wrapping and out-of-bounds removal for that frame.
type BoundsFunc func() (b object.Bounds, ok bool)

// Sim is one running game.
type Sim struct {
	cfg    config.Config
	ship   object.ShipSpec
	shot   object.ProjectileSpec
	store  *object.Store
	rng    *rand.Rand
	log    *log.Logger
	bounds BoundsFunc
	assets AssetProbe
	scorer Scorer

	state RoundState
	score int
	timer SpawnTimer

	playerDied bool
	pending    []object.Entity // Byproducts queued during the collision pass
	events     []Event

	// Collision scratch, reused between frames.
	grid        *physics.SpatialGrid
	projectiles []object.ID
	asteroids   []object.ID
	candidates  []int
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the random source used for spawn positions and headings.
func WithRand(r *rand.Rand) Option {
	return func(s *Sim) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithBounds sets the play rectangle source. The default returns the
// configured world size.
func WithBounds(fn BoundsFunc) Option {
	return func(s *Sim) {
		if fn != nil {
			s.bounds = fn
		}
	}
}

// WithAssets sets the asset probe queried while Loading. The default
// reports every asset ready.
func WithAssets(p AssetProbe) Option {
	return func(s *Sim) {
		if p != nil {
			s.assets = p
		}
	}
}

// New creates a game in the Loading state. cfg is expected to have passed
// config.Validate.
func New(cfg config.Config, opts ...Option) *Sim {
	world := object.Bounds{Width: cfg.World.Width, Height: cfg.World.Height}
	s := &Sim{
		cfg: cfg,
		ship: object.ShipSpec{
			Size:          cfg.Ship.Size,
			RotationSpeed: cfg.Ship.RotationSpeed,
			ThrustForce:   cfg.Ship.ThrustForce,
		},
		shot: object.ProjectileSpec{
			Speed:    cfg.Projectile.Speed,
			Lifetime: cfg.Projectile.Lifetime,
			Standoff: cfg.Projectile.Standoff,
			Size:     cfg.Projectile.Size,
		},
		store:  object.NewStore(),
		log:    log.New(io.Discard),
		bounds: func() (object.Bounds, bool) { return world, true },
		assets: AssetProbeFunc(func(Asset) bool { return true }),
		scorer: NewScorer(cfg.Scoring),
		state:  StateLoading,
		timer:  SpawnTimer{Period: cfg.Spawn.Period},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(cfg.Loop.Seed)
	}
	return s
}

// NewRand returns a PCG-backed generator. A zero seed derives one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Score returns the current round's score.
func (s *Sim) Score() int { return s.score }

// State returns the current round state.
func (s *Sim) State() RoundState { return s.state }

// Count returns the number of live entities of kind k.
func (s *Sim) Count(k object.Kind) int { return s.store.Count(k) }

// AssetsReady reports whether every required asset is loaded.
func (s *Sim) AssetsReady() bool {
	for _, a := range requiredAssets {
		if !s.assets.Ready(a) {
			return false
		}
	}
	return true
}

// Config returns the configuration the game was created with.
func (s *Sim) Config() config.Config { return s.cfg }

// playBounds returns the current rectangle, or the configured world when the
// host has none to offer.
func (s *Sim) playBounds() object.Bounds {
	if b, ok := s.bounds(); ok && b.Valid() {
		return b
	}
	return object.Bounds{Width: s.cfg.World.Width, Height: s.cfg.World.Height}
}
