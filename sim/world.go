package sim

import (
	"math/rand"
	"strings"
)

// World is the single mutable scene state shared by the updaters and the
// control handlers. The frame loop owns body kinematics and effect pools;
// control handlers own Toggles.
type World struct {
	Sun           Sun
	Bodies        []*CelestialBody
	OrbitLines    []OrbitLine
	Flares        []Flare
	CosmicRays    []CosmicRay
	ShootingStars []ShootingStar
	Toggles       Toggles
}

// NewWorld builds the scene from a validated catalog and fills the effect pools
func NewWorld(cat *Catalog, rng *rand.Rand) *World {
	w := &World{
		Sun:           cat.Sun,
		Bodies:        cat.Bodies,
		OrbitLines:    make([]OrbitLine, 0, len(cat.Bodies)),
		Flares:        make([]Flare, FlarePoolSize),
		CosmicRays:    make([]CosmicRay, CosmicRayPoolSize),
		ShootingStars: make([]ShootingStar, ShootingStarPoolSize),
		Toggles:       DefaultToggles(),
	}

	for _, body := range cat.Bodies {
		w.OrbitLines = append(w.OrbitLines, NewOrbitLine(body.Name, body.Distance))
	}
	for i := range w.Flares {
		w.Flares[i] = NewFlare(w.Sun.Radius, rng)
	}
	for i := range w.CosmicRays {
		w.CosmicRays[i] = NewCosmicRay(rng)
	}
	for i := range w.ShootingStars {
		w.ShootingStars[i] = NewShootingStar(rng)
	}
	return w
}

// OrbitsVisible reports whether orbit lines should be drawn this frame
func (w *World) OrbitsVisible() bool {
	return w.Toggles.ShowOrbits
}

// BodyByName finds a body case-insensitively
func (w *World) BodyByName(name string) (int, *CelestialBody, bool) {
	for i, body := range w.Bodies {
		if strings.EqualFold(body.Name, name) {
			return i, body, true
		}
	}
	return -1, nil, false
}

// ActiveShootingStars counts stars currently falling
func (w *World) ActiveShootingStars() int {
	n := 0
	for i := range w.ShootingStars {
		if w.ShootingStars[i].Active {
			n++
		}
	}
	return n
}
