package render

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbForeground = RGB{192, 202, 245}
	RgbDim        = RGB{100, 100, 110}
	RgbAccent     = RGB{122, 162, 247}
	RgbWarning    = RGB{255, 200, 50}
	RgbError      = RGB{247, 118, 142}

	RgbNavbar       = RGB{36, 40, 59}
	RgbNavbarActive = RGB{65, 72, 104}

	RgbStarfield = RGB{70, 74, 100}
	RgbGround    = RGB{86, 60, 40}
	RgbGrass     = RGB{60, 140, 70}
	RgbPlayer    = RGB{255, 158, 100}
)
