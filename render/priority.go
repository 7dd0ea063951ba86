package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityView RenderPriority = iota
	PriorityUI
)
