package view

import (
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/render"
	"github.com/mattn/go-runewidth"
)

// Router maps paths to views and owns the mounted one
// Navigate always unmounts the current view before mounting the next
type Router struct {
	env    Env
	routes []View
	byPath map[string]View

	current  View
	path     string
	mountErr error
	changes  int
}

// NewRouter registers views in navbar order; later duplicates of a path are ignored
func NewRouter(env Env, views ...View) *Router {
	r := &Router{
		env:    env,
		byPath: make(map[string]View, len(views)),
	}
	for _, v := range views {
		if _, dup := r.byPath[v.Path()]; dup {
			log.Printf("router: duplicate route %s ignored", v.Path())
			continue
		}
		r.byPath[v.Path()] = v
		r.routes = append(r.routes, v)
	}
	return r
}

// Routes returns the registered views in navbar order
func (r *Router) Routes() []View {
	return r.routes
}

// Current returns the active view, nil before the first Navigate
func (r *Router) Current() View {
	return r.current
}

// Path returns the active path
func (r *Router) Path() string {
	return r.path
}

// MountErr is the error from mounting the active view
func (r *Router) MountErr() error {
	return r.mountErr
}

// Navigate switches to path; unknown paths show a not-found page
// A mount error is returned but the view stays active to render its own fallback
func (r *Router) Navigate(path string) error {
	if r.current != nil {
		r.current.Unmount()
	}

	next, ok := r.byPath[path]
	if !ok {
		next = &notFound{path: path}
	}

	r.current = next
	r.path = path
	r.changes++
	r.mountErr = next.Mount(r.env)
	if r.mountErr != nil {
		log.Printf("router: mount %s: %v", path, r.mountErr)
	} else {
		log.Printf("router: navigated to %s", path)
	}
	return r.mountErr
}

// Close unmounts the active view
func (r *Router) Close() {
	if r.current != nil {
		r.current.Unmount()
		r.current = nil
	}
}

// HandleKey routes digits to navigation, m to the chime mute, and everything else to the view
// Returns false when the application should exit
func (r *Router) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	}

	if r.current != nil && r.current.HandleKey(ev) {
		return true
	}

	if ev.Key() == tcell.KeyRune {
		ch := ev.Rune()
		if ch == 'q' {
			return false
		}
		if ch == 'm' && r.env.Chime != nil {
			muted := !r.env.Chime.Muted()
			r.env.Chime.SetMuted(muted)
			log.Printf("router: chime muted=%v", muted)
			return true
		}
		if ch >= '1' && ch <= '9' {
			if i := int(ch - '1'); i < len(r.routes) {
				_ = r.Navigate(r.routes[i].Path())
			}
		}
	}
	return true
}

// Render draws the active view below the navbar rows; satisfies render.Layer
func (r *Router) Render(buf *render.RenderBuffer) {
	if r.current == nil {
		return
	}
	w, h := buf.Bounds()
	area := render.Viewport{X: 0, Y: constant.NavbarRows, W: w, H: h - constant.NavbarRows}
	r.current.Draw(buf, area)
}

// Navbar returns the layer drawing the brand, route links and key hints
// Registered above the view so a view overflowing its area cannot cover it
func (r *Router) Navbar() render.Layer {
	return render.LayerFunc(r.drawNavbar)
}

func (r *Router) drawNavbar(buf *render.RenderBuffer) {
	w, _ := buf.Bounds()
	if w <= 0 {
		return
	}
	buf.FillRow(0, render.RgbNavbar)

	x := buf.WriteString(1, 0, Brand, render.RgbWarning, tcell.AttrBold)
	x = buf.WriteString(x, 0, " │ ", render.RgbDim, tcell.AttrNone)

	for i, v := range r.routes {
		label := " " + strconv.Itoa(i+1) + " " + v.Title() + " "
		if x+runewidth.StringWidth(label) > w {
			break
		}
		fg := render.RgbForeground
		attrs := tcell.AttrNone
		if v == r.current {
			for c := x; c < x+runewidth.StringWidth(label); c++ {
				buf.SetBgOnly(c, 0, render.RgbNavbarActive)
			}
			fg = render.RgbAccent
			attrs = tcell.AttrBold
		}
		x = buf.WriteString(x, 0, label, fg, attrs)
	}

	hint := "q quit "
	if r.env.Chime != nil {
		if r.env.Chime.Muted() {
			hint = "m unmute · " + hint
		} else {
			hint = "m mute · " + hint
		}
	}
	if hx := w - runewidth.StringWidth(hint); hx > x {
		buf.WriteString(hx, 0, hint, render.RgbDim, tcell.AttrNone)
	}
}

// Changes counts navigations
func (r *Router) Changes() int {
	return r.changes
}
