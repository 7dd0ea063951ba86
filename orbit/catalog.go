package orbit

// SolarSystem returns the default scene: a central star and four planets
// Earth keeps the circular 10-unit orbit of the first demo scene
func SolarSystem() []Body {
	return []Body{
		{ID: "sun", Radius: 5, Color: "#ffff00"},
		{ID: "mercury", Radius: 0.5, Color: "#b5b5b5", Orbit: Orbit{SemiMajor: 7, SemiMinor: 6.4}},
		{ID: "earth", Radius: 1, Color: "#0000ff", Orbit: Orbit{SemiMajor: 10, SemiMinor: 10}},
		{ID: "mars", Radius: 0.8, Color: "#c1440e", Orbit: Orbit{SemiMajor: 16, SemiMinor: 14}},
		{ID: "jupiter", Radius: 2, Color: "#d8a25e", Orbit: Orbit{SemiMajor: 24, SemiMinor: 21}},
	}
}
