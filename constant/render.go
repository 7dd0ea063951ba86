package constant

// Layout rows reserved outside the view region
const (
	NavbarRows = 1
	HUDRows    = 1
)

// Camera defaults for the solar scene
const (
	CameraDistance = 48.0 // units back from the origin along +Z
	CameraHeight   = 22.0 // units above the orbital plane
	CameraFocal    = 14.0
	CameraNear     = 0.5

	// CellAspect is the width:height ratio correction for terminal cells (1:2)
	CellAspect = 2.0

	// ViewScale maps projected units to a fraction of the view height
	ViewScale = 0.13

	// Zoom limits shared by every host
	ZoomMin = ViewScale / 4
	ZoomMax = ViewScale * 8
)

// Sphere shading
const (
	GlowFactor     = 1.6  // glow radius as a multiple of the sphere radius
	MinSphereCells = 0.35 // projected radius below which a body draws as a single glyph
	DepthFalloff   = 0.45 // max brightness loss at the far depth
)
