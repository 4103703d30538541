// Package loop runs a game in a terminal with the standard
// Input → Update → Draw cycle, and headlessly for soak runs.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/driftrocks/internal/config"
	"github.com/tomz197/driftrocks/internal/draw"
	"github.com/tomz197/driftrocks/internal/input"
	"github.com/tomz197/driftrocks/internal/sim"
)

// maxFrameDelta caps the step after a stall (e.g. a suspended terminal).
const maxFrameDelta = 250 * time.Millisecond

// Minimum terminal size the game can be drawn in.
const (
	minCols = 40
	minRows = 16
)

// Options configures a Client.
type Options struct {
	TermSizeFunc      draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Logger            *log.Logger       // Defaults to discarding
	Rand              *rand.Rand        // Defaults to one seeded from the config
	Renderer          *lipgloss.Renderer
	Username          string
	InactivityTimeout time.Duration // 0 disables the idle disconnect
}

// Client plays one game on one terminal.
type Client struct {
	cfg      config.Config
	game     *sim.Sim
	canvas   *draw.Canvas
	out      *draw.ChunkWriter
	writer   io.Writer
	stream   *input.Stream
	edges    input.Edges
	styles   styles
	log      *log.Logger
	opts     Options
	termSize draw.TermSizeFunc

	cols, rows int
	sized      bool // Terminal is large enough to draw in
	title      bool // Title screen is up; the game is not stepped
	lastInput  time.Time
	entities   []sim.EntityView
	popups     []popup
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(cfg config.Config, r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	c := &Client{
		cfg:       cfg,
		canvas:    draw.NewCanvas(1, 1, cfg.World.Width, cfg.World.Height),
		out:       draw.NewChunkWriter(w),
		writer:    w,
		stream:    input.StartStream(r),
		styles:    newStyles(renderer),
		log:       logger,
		opts:      opts,
		termSize:  termSize,
		title:     true,
		lastInput: time.Now(),
	}

	simOpts := []sim.Option{
		sim.WithLogger(logger),
		sim.WithAssets(sim.AssetProbeFunc(c.assetReady)),
	}
	if opts.Rand != nil {
		simOpts = append(simOpts, sim.WithRand(opts.Rand))
	}
	c.game = sim.New(cfg, simOpts...)
	return c
}

// assetReady reports every sprite ready once the terminal can show it.
func (c *Client) assetReady(sim.Asset) bool {
	return c.sized
}

// Game returns the simulation driven by the client.
func (c *Client) Game() *sim.Sim {
	return c.game
}

// Run starts the client loop. It blocks until the player quits, the input
// closes, the client idles out or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	frameTime := c.cfg.Loop.FrameTime()
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(c.writer)
			return nil
		default:
		}

		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(c.stream)
		if in.Quit || in.Closed {
			break
		}
		if len(in.Pressed) > 0 {
			c.lastInput = frameStart
		}
		if c.idle(frameStart) {
			c.log.Info("disconnecting idle player", "user", c.opts.Username)
			break
		}

		// ===== UPDATE PHASE =====
		c.updateScreen()
		intents := c.edges.Intents(in)
		if c.title {
			if intents.FireEdge || intents.RestartEdge {
				c.title = false
			}
		} else {
			c.step(delta, intents)
		}

		// ===== DRAW PHASE =====
		if err := c.drawFrame(frameStart); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// step advances the game, logs what happened and ages score popups.
func (c *Client) step(delta time.Duration, intents sim.Intents) {
	c.agePopups(delta)
	for _, ev := range c.game.Step(delta, intents) {
		switch ev.Kind {
		case sim.EventAsteroidDestroyed:
			c.popups = append(c.popups, popup{pos: ev.Pos, points: ev.Points, ttl: popupLifetime})
		case sim.EventRoundStarted:
			c.popups = c.popups[:0]
		case sim.EventPlayerDied:
			c.log.Info("player died", "user", c.opts.Username, "score", c.game.Score())
		}
	}
}

// idle reports whether the player has been silent past the timeout.
func (c *Client) idle(now time.Time) bool {
	return c.opts.InactivityTimeout > 0 && now.Sub(c.lastInput) >= c.opts.InactivityTimeout
}

// updateScreen re-reads the terminal size and refits the canvas.
func (c *Client) updateScreen() {
	cols, rows, err := c.termSize()
	if err != nil {
		c.sized = false
		return
	}
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		width, height, offCol, offRow := draw.Fit(cols, rows, c.cfg.World.Width, c.cfg.World.Height)
		c.canvas.Resize(width, height)
		c.canvas.SetOffset(offCol, offRow)
		draw.ClearScreen(c.writer)
	}
	c.sized = cols >= minCols && rows >= minRows
}
