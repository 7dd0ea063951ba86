// Package view implements the routed pages of the orrery front-end and the
// router that mounts and tears them down.
package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Chimer receives revolution cues; audio.Chime satisfies it
type Chimer interface {
	PlayRevolution(index int)
	SetMuted(muted bool)
	Muted() bool
}

// Env is what the router hands to a view on mount
type Env struct {
	Frames    orbit.Scheduler
	Buffer    *render.RenderBuffer
	Chime     Chimer // nil disables cues
	Increment float64
}

// View is one routed page
// Mount may fail; the router keeps a failed view active so it can render its own fallback
type View interface {
	Path() string
	Title() string
	Mount(env Env) error
	Unmount()
	HandleKey(ev *tcell.EventKey) bool
	Draw(buf *render.RenderBuffer, area render.Viewport)
}

// displayName title-cases a route label for the navbar and page headers
func displayName(s string) string {
	return cases.Title(language.English).String(s)
}
