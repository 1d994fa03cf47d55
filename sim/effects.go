package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// EffectsUpdater advances the flare, cosmic ray and shooting star pools
type EffectsUpdater struct {
	rng *rand.Rand
}

// NewEffectsUpdater uses rng for every respawn and activation
func NewEffectsUpdater(rng *rand.Rand) *EffectsUpdater {
	return &EffectsUpdater{rng: rng}
}

// Update steps each effect family according to its toggle
func (u *EffectsUpdater) Update(w *World, frame Frame, cameraPos mgl64.Vec3) {
	ctx := EffectContext{
		Frame:     frame,
		CameraPos: cameraPos,
		SunRadius: w.Sun.Radius,
		Rand:      u.rng,
	}

	// Hidden flares are frozen; the renderer reads the toggle for visibility.
	if w.Toggles.ShowFlares {
		for i := range w.Flares {
			w.Flares[i] = w.Flares[i].Step(ctx)
		}
	}

	for i := range w.CosmicRays {
		if !w.Toggles.ShowCosmicRays {
			w.CosmicRays[i].Opacity = 0
			continue
		}
		w.CosmicRays[i] = w.CosmicRays[i].Step()
	}

	for i := range w.ShootingStars {
		if !w.Toggles.ShowShootingStars {
			w.ShootingStars[i].Opacity = 0
			continue
		}
		w.ShootingStars[i] = w.ShootingStars[i].Step(ctx)
	}
}
