package view

import (
	"strings"
	"testing"

	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/render"
)

type recordingChime struct {
	indices []int
	muted   bool
}

func (c *recordingChime) PlayRevolution(index int) {
	c.indices = append(c.indices, index)
}

func (c *recordingChime) SetMuted(muted bool) { c.muted = muted }
func (c *recordingChime) Muted() bool         { return c.muted }

func newTestEnv(t *testing.T, w, h int) (Env, *frame.Queue) {
	t.Helper()
	q := frame.NewQueue()
	return Env{
		Frames:    q,
		Buffer:    render.NewRenderBuffer(w, h),
		Increment: 0.01,
	}, q
}

// rowText flattens one buffer row, skipping wide-rune continuation cells
func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		switch {
		case r < 0:
		case r == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func screenText(buf *render.RenderBuffer) string {
	_, h := buf.Bounds()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.WriteString(rowText(buf, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}
