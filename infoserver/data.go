package infoserver

import (
	"strings"

	"solarsystem/info"
)

// planetOrder keeps list responses in orbital order
var planetOrder = []string{
	"mercury", "venus", "earth", "mars", "jupiter", "saturn", "uranus", "neptune",
}

var planets = map[string]info.PlanetInfo{
	"mercury": {
		Name:            "Mercury",
		Diameter:        "4,879 km",
		DistanceFromSun: "57.9 million km",
		OrbitalPeriod:   "88 Earth days",
		DayLength:       "59 Earth days",
		Temperature:     "-180°C to 430°C",
		Moons:           0,
		Description:     "Mercury is the smallest planet in our solar system and closest to the Sun.",
	},
	"venus": {
		Name:            "Venus",
		Diameter:        "12,104 km",
		DistanceFromSun: "108.2 million km",
		OrbitalPeriod:   "225 Earth days",
		DayLength:       "243 Earth days",
		Temperature:     "465°C (average)",
		Moons:           0,
		Description:     "Venus is the hottest planet in our solar system due to its thick atmosphere.",
	},
	"earth": {
		Name:            "Earth",
		Diameter:        "12,742 km",
		DistanceFromSun: "149.6 million km",
		OrbitalPeriod:   "365.25 days",
		DayLength:       "24 hours",
		Temperature:     "15°C (average)",
		Moons:           1,
		Description:     "Earth is the only planet known to support life.",
	},
	"mars": {
		Name:            "Mars",
		Diameter:        "6,779 km",
		DistanceFromSun: "227.9 million km",
		OrbitalPeriod:   "687 Earth days",
		DayLength:       "24.6 hours",
		Temperature:     "-65°C (average)",
		Moons:           2,
		Description:     "Mars is known as the Red Planet due to iron oxide on its surface.",
	},
	"jupiter": {
		Name:            "Jupiter",
		Diameter:        "139,820 km",
		DistanceFromSun: "778.5 million km",
		OrbitalPeriod:   "11.86 Earth years",
		DayLength:       "9.93 hours",
		Temperature:     "-110°C (cloud top)",
		Moons:           95,
		Description:     "Jupiter is the largest planet in our solar system with the famous Great Red Spot.",
	},
	"saturn": {
		Name:            "Saturn",
		Diameter:        "116,460 km",
		DistanceFromSun: "1.4 billion km",
		OrbitalPeriod:   "29.46 Earth years",
		DayLength:       "10.7 hours",
		Temperature:     "-140°C (cloud top)",
		Moons:           146,
		Description:     "Saturn is famous for its stunning ring system made of ice and rock.",
	},
	"uranus": {
		Name:            "Uranus",
		Diameter:        "50,724 km",
		DistanceFromSun: "2.9 billion km",
		OrbitalPeriod:   "84 Earth years",
		DayLength:       "17.2 hours",
		Temperature:     "-195°C (cloud top)",
		Moons:           28,
		Description:     "Uranus rotates on its side, possibly due to a collision with an Earth-sized object.",
	},
	"neptune": {
		Name:            "Neptune",
		Diameter:        "49,244 km",
		DistanceFromSun: "4.5 billion km",
		OrbitalPeriod:   "164.8 Earth years",
		DayLength:       "16.1 hours",
		Temperature:     "-200°C (cloud top)",
		Moons:           16,
		Description:     "Neptune has the strongest winds in the solar system, reaching 2,100 km/h.",
	},
}

var sun = info.SunInfo{
	Name:               "Sun",
	Type:               "G-type main-sequence star",
	Diameter:           "1,392,700 km",
	Mass:               "1.989 × 10³⁰ kg",
	SurfaceTemperature: "5,500°C",
	CoreTemperature:    "15 million°C",
	Age:                "4.6 billion years",
	Composition:        "73% Hydrogen, 25% Helium",
	Description:        "The Sun is the star at the center of our Solar System. It provides the energy that sustains life on Earth.",
}

// LookupPlanet finds a planet case-insensitively
func LookupPlanet(name string) (info.PlanetInfo, bool) {
	p, ok := planets[strings.ToLower(name)]
	return p, ok
}

// Planets returns every planet in orbital order
func Planets() []info.PlanetInfo {
	out := make([]info.PlanetInfo, 0, len(planetOrder))
	for _, key := range planetOrder {
		out = append(out, planets[key])
	}
	return out
}
