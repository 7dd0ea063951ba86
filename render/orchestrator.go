package render

import (
	"github.com/gdamore/tcell/v2"
)

// Layer draws one slice of the frame into the shared buffer
type Layer interface {
	Render(buf *RenderBuffer)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(buf *RenderBuffer)

func (f LayerFunc) Render(buf *RenderBuffer) { f(buf) }

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator composes registered layers and flushes the result to the screen
type RenderOrchestrator struct {
	screen   tcell.Screen
	buffer   *RenderBuffer
	layers   []layerEntry
	regCount int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Buffer exposes the compositor for renderers that draw outside the layer pass
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame clears the buffer, runs every layer in priority order, and flushes
func (o *RenderOrchestrator) RenderFrame() {
	o.buffer.Clear()
	for _, e := range o.layers {
		e.layer.Render(o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
}
