package sim

import "github.com/go-gl/mathgl/mgl64"

// Base scales turn catalog speeds into radians per second
const (
	BaseOrbitScale = 0.1
	BaseSpinScale  = 0.5
)

// OrbitalUpdater advances every body's orbit and spin angles
type OrbitalUpdater struct {
	OrbitScale float64
	SpinScale  float64
}

// NewOrbitalUpdater uses the package base scales
func NewOrbitalUpdater() *OrbitalUpdater {
	return &OrbitalUpdater{OrbitScale: BaseOrbitScale, SpinScale: BaseSpinScale}
}

// Update moves the bodies by one frame and refreshes the shading parameters
// of the bodies and the sun.
func (u *OrbitalUpdater) Update(w *World, frame Frame, cameraPos mgl64.Vec3) {
	orbitRate := frame.Delta * u.OrbitScale * w.Toggles.OrbitSpeed
	spinRate := frame.Delta * u.SpinScale * w.Toggles.RotationSpeed

	for _, body := range w.Bodies {
		body.Advance(orbitRate*body.OrbitSpeed, spinRate*body.RotationSpeed)
		body.ShaderTime = frame.Elapsed
		body.ViewDir = viewDirection(body.Position, cameraPos)
	}
	w.Sun.ShaderTime = frame.Elapsed
}

func viewDirection(from, to mgl64.Vec3) mgl64.Vec3 {
	d := to.Sub(from)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return d.Normalize()
}
