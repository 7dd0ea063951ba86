package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell in the compositor
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}
