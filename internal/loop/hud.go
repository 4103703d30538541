package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
	"github.com/tomz197/driftrocks/internal/sim"
)

const controlsHelp = "A/D or Arrows rotate · W or Up thrust · SPACE shoot · Q quit"

// popupLifetime is how long a "+N" label stays next to a destroyed asteroid.
const popupLifetime = 600 * time.Millisecond

type popup struct {
	pos    physics.Vec2
	points int
	ttl    time.Duration
}

// styles holds the lipgloss styles for text overlays, bound to one
// renderer so each SSH session gets its own color profile.
type styles struct {
	title  lipgloss.Style
	hud    lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	panel  lipgloss.Style
	alert  lipgloss.Style
	prompt lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		hud:    r.NewStyle().Foreground(lipgloss.Color("245")),
		value:  r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color("240")),
		panel:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2),
		alert:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		prompt: r.NewStyle().Foreground(lipgloss.Color("226")),
	}
}

// drawUI draws the overlay for the current screen.
func (c *Client) drawUI(now time.Time) {
	switch {
	case c.title:
		c.drawTitle()
	case c.game.State() == sim.StateLoading:
		c.drawCentered(c.styles.dim.Render("loading..."))
	case c.game.State() == sim.StatePlaying:
		c.drawPopups()
		c.drawHUD()
	case c.game.State() == sim.StateGameOver:
		c.drawHUD()
		c.drawGameOver(now)
	}
}

// drawHUD draws the status line above the play area.
func (c *Client) drawHUD() {
	left := c.styles.hud.Render("Score ") + c.styles.value.Render(fmt.Sprint(c.game.Score()))
	right := c.styles.hud.Render(fmt.Sprintf("Rocks %d", c.game.Count(object.KindAsteroid)))

	c.out.WriteAt(2, 1, left)
	c.out.WriteAt(max(c.cols-lipgloss.Width(right), 1), 1, right)
}

// agePopups drops expired popups in place.
func (c *Client) agePopups(delta time.Duration) {
	kept := c.popups[:0]
	for _, p := range c.popups {
		if p.ttl -= delta; p.ttl > 0 {
			kept = append(kept, p)
		}
	}
	c.popups = kept
}

// drawPopups writes the points of recent kills at their positions.
func (c *Client) drawPopups() {
	for _, p := range c.popups {
		col, row := c.canvas.ToCell(p.pos)
		c.out.WriteAt(col, row, c.styles.prompt.Render(fmt.Sprintf("+%d", p.points)))
	}
}

// drawTitle draws the title screen.
func (c *Client) drawTitle() {
	body := lipgloss.JoinVertical(lipgloss.Center,
		c.styles.title.Render("D R I F T R O C K S"),
		"",
		c.styles.prompt.Render("Press SPACE to Start"),
		"",
		c.styles.dim.Render(controlsHelp),
	)
	c.drawCentered(c.styles.panel.Render(body))
}

// drawGameOver draws the game over panel. The prompt blinks.
func (c *Client) drawGameOver(now time.Time) {
	prompt := "Press SPACE to Restart"
	if now.UnixMilli()/500%2 == 1 {
		prompt = strings.Repeat(" ", len(prompt))
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		c.styles.alert.Render("GAME OVER"),
		"",
		c.styles.hud.Render("Score ")+c.styles.value.Render(fmt.Sprint(c.game.Score())),
		"",
		c.styles.prompt.Render(prompt),
	)
	c.drawCentered(c.styles.panel.Render(body))
}

// drawTooSmall asks for a bigger terminal.
func (c *Client) drawTooSmall() {
	msg := fmt.Sprintf("Terminal too small: %dx%d, need %dx%d", c.cols, c.rows, minCols, minRows)
	c.drawCentered(c.styles.alert.Render(msg))
}

// drawCentered writes a possibly multi-line block centered on the terminal.
func (c *Client) drawCentered(block string) {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)
	col := max((c.cols-width)/2+1, 1)
	row := max((c.rows-len(lines))/2+1, 1)
	for i, line := range lines {
		c.out.WriteAt(col, row+i, line)
	}
}
