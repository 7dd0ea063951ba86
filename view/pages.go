package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/render"
)

// Brand is shown at the left of the navbar and on the home page
const Brand = "Galactic Mavericks"

// staticPage is a text-only view with nothing to mount
type staticPage struct {
	path  string
	label string
	body  string
}

func (p *staticPage) Path() string                      { return p.path }
func (p *staticPage) Title() string                     { return displayName(p.label) }
func (p *staticPage) Mount(Env) error                   { return nil }
func (p *staticPage) Unmount()                          {}
func (p *staticPage) HandleKey(ev *tcell.EventKey) bool { return false }

func (p *staticPage) Draw(buf *render.RenderBuffer, area render.Viewport) {
	drawParagraphs(buf, area, p.Title(), p.body)
}

// NewHome creates the landing page at /
func NewHome() View {
	return &staticPage{
		path:  "/",
		label: "home",
		body: Brand + "\n\n" +
			"A small orrery for the terminal. Pick a page from the bar above " +
			"with its number key.\n\n" +
			"The solar system page animates five bodies on elliptical orbits; " +
			"each completed revolution rings a chime. The platformer page is a " +
			"tiny gravity sandbox.\n\n" +
			"Press q or Esc to quit.",
	}
}

// NewAbout creates the about page
func NewAbout() View {
	return &staticPage{
		path:  "/about",
		label: "about",
		body: "Every orbit is an ellipse centred on the star. Each frame a body's " +
			"phase grows by a fixed increment divided by its semi-major axis, so " +
			"outer planets move slower. This approximates, but does not follow, " +
			"Kepler's third law.\n\n" +
			"Solar system keys: p pause, + and - zoom.\n" +
			"Platformer keys: arrows or h and l move, space or k jumps, r resets.",
	}
}

// notFound renders for any path without a route
type notFound struct {
	path string
}

func (n *notFound) Path() string                      { return n.path }
func (n *notFound) Title() string                     { return displayName("not found") }
func (n *notFound) Mount(Env) error                   { return nil }
func (n *notFound) Unmount()                          {}
func (n *notFound) HandleKey(ev *tcell.EventKey) bool { return false }

func (n *notFound) Draw(buf *render.RenderBuffer, area render.Viewport) {
	if area.Empty() {
		return
	}
	msg := "404 · no page at " + n.path
	y := area.Y + area.H/2
	buf.WriteString(centered(area, msg), y, msg, render.RgbWarning, tcell.AttrBold)
}
