package constant

// Platformer arena and movement, in arena pixels
const (
	ArenaWidth  = 640
	ArenaHeight = 480

	PlayerWidth  = 24
	PlayerHeight = 32
	PlayerStartX = 120
	PlayerStartY = 80

	Gravity   = 2400.0 // px/s²
	MoveSpeed = 120.0  // px/s while a direction key is held
	JumpForce = 640.0  // px/s initial upward velocity

	// MoveHoldSeconds is how long a single key press keeps moving the player
	// Terminals report presses, not releases
	MoveHoldSeconds = 0.12

	FloorHeight = 48
)
