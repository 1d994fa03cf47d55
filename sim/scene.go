package sim

import (
	"math/rand"
	"time"
)

// Scene wires the world, camera and updaters into one per-frame pass
type Scene struct {
	World   *World
	Camera  *CameraRig
	Orbital *OrbitalUpdater
	Effects *EffectsUpdater
	Labels  []Label

	clock *FrameClock
	frame Frame
}

// NewScene builds a scene from a catalog. rng drives every random effect.
func NewScene(cat *Catalog, cam *CameraRig, clock *FrameClock, rng *rand.Rand) *Scene {
	return &Scene{
		World:   NewWorld(cat, rng),
		Camera:  cam,
		Orbital: NewOrbitalUpdater(),
		Effects: NewEffectsUpdater(rng),
		Labels:  make([]Label, 0, len(cat.Bodies)),
		clock:   clock,
	}
}

// Tick runs one frame timed by the wall clock
func (s *Scene) Tick(now time.Time) Frame {
	return s.run(s.clock.Tick(now))
}

// Step runs one frame with an explicit delta in seconds
func (s *Scene) Step(dt float64) Frame {
	return s.run(s.clock.Advance(dt))
}

// run is the frame pass: orbits, effects, camera, labels
func (s *Scene) run(frame Frame) Frame {
	s.frame = frame
	s.Orbital.Update(s.World, s.frame, s.Camera.Position)
	s.Effects.Update(s.World, s.frame, s.Camera.Position)
	s.Camera.Update(s.frame.Elapsed)
	s.Labels = ProjectLabels(s.World, s.Camera, s.Labels)
	return s.frame
}

// Frame returns the most recent frame
func (s *Scene) Frame() Frame {
	return s.frame
}

// Now is the scene time used to schedule camera transitions
func (s *Scene) Now() float64 {
	return s.clock.Elapsed()
}
