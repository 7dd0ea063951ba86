package view

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/render"
	"github.com/mattn/go-runewidth"
)

// wrap breaks text into lines no wider than width display columns
// Words wider than width are hard-split
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineW := 0
		for _, w := range words {
			ww := runewidth.StringWidth(w)
			for ww > width {
				if lineW > 0 {
					lines = append(lines, line.String())
					line.Reset()
					lineW = 0
				}
				head := runewidth.Truncate(w, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(w)
					head = w[:size]
				}
				lines = append(lines, head)
				w = w[len(head):]
				ww = runewidth.StringWidth(w)
			}
			if ww == 0 {
				continue
			}

			need := ww
			if lineW > 0 {
				need++
			}
			if lineW+need > width {
				lines = append(lines, line.String())
				line.Reset()
				lineW = 0
				need = ww
			}
			if lineW > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(w)
			lineW += need
		}
		if lineW > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}

// centered returns the x that centers s within area
func centered(area render.Viewport, s string) int {
	x := area.X + (area.W-runewidth.StringWidth(s))/2
	if x < area.X {
		x = area.X
	}
	return x
}

// drawParagraphs writes a title and wrapped body text inside area with a margin
func drawParagraphs(buf *render.RenderBuffer, area render.Viewport, title string, body string) {
	if area.Empty() {
		return
	}

	y := area.Y + 1
	buf.WriteString(centered(area, title), y, title, render.RgbAccent, tcell.AttrBold)
	y += 2

	margin := 4
	if area.W < 20 {
		margin = 0
	}
	for _, line := range wrap(body, area.W-2*margin) {
		if y >= area.Y+area.H {
			return
		}
		buf.WriteString(area.X+margin, y, line, render.RgbForeground, tcell.AttrNone)
		y++
	}
}
