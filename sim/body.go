package sim

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const twoPi = 2 * math.Pi

// OrbitSegments is the number of points in each precomputed orbit polyline
const OrbitSegments = 128

// Atmosphere describes the optional glow shell around a body
type Atmosphere struct {
	Color color.NRGBA
	Scale float64 // shell radius as a multiple of the body radius
}

// CelestialBody is a single orbiting body. Static fields come from the catalog;
// the angle, position and shading fields are rewritten every frame.
type CelestialBody struct {
	Name          string
	Radius        float64
	Distance      float64
	OrbitSpeed    float64
	RotationSpeed float64
	Color         color.NRGBA
	Atmosphere    *Atmosphere
	HasRings      bool

	OrbitAngle float64
	SpinAngle  float64
	Position   mgl64.Vec3

	// Shading parameters consumed by the renderer
	ShaderTime float64
	ViewDir    mgl64.Vec3 // unit vector from the body toward the camera
}

// NewCelestialBody builds a body from a catalog entry and places it at angle zero
func NewCelestialBody(entry BodyEntry) (*CelestialBody, error) {
	base, err := parseHexColor(entry.Color)
	if err != nil {
		return nil, err
	}

	body := &CelestialBody{
		Name:          entry.Name,
		Radius:        entry.Radius,
		Distance:      entry.Distance,
		OrbitSpeed:    entry.OrbitSpeed,
		RotationSpeed: entry.RotationSpeed,
		Color:         base,
		HasRings:      entry.HasRings,
	}

	if entry.HasAtmosphere {
		atmo, err := parseHexColor(entry.AtmosphereColor)
		if err != nil {
			return nil, err
		}
		scale := entry.AtmosphereSize
		if scale <= 1 {
			scale = defaultAtmosphereScale
		}
		body.Atmosphere = &Atmosphere{Color: atmo, Scale: scale}
	}

	body.updatePosition()
	return body, nil
}

// Advance moves the body along its orbit and spins it about its axis
func (b *CelestialBody) Advance(orbitDelta, spinDelta float64) {
	b.OrbitAngle = wrapAngle(b.OrbitAngle + orbitDelta)
	b.SpinAngle = wrapAngle(b.SpinAngle + spinDelta)
	b.updatePosition()
}

func (b *CelestialBody) updatePosition() {
	b.Position = mgl64.Vec3{
		b.Distance * math.Cos(b.OrbitAngle),
		0,
		b.Distance * math.Sin(b.OrbitAngle),
	}
}

// BoundingRadius is the radius used for picking; it includes the atmosphere shell
func (b *CelestialBody) BoundingRadius() float64 {
	if b.Atmosphere != nil {
		return b.Radius * b.Atmosphere.Scale
	}
	return b.Radius
}

// Sun is the central star. It never moves; only its shader time advances.
type Sun struct {
	Name       string
	Radius     float64
	Color      color.NRGBA
	CoronaSize float64
	ShaderTime float64
}

// OrbitLine is an immutable closed polyline at a body's orbital distance
type OrbitLine struct {
	Body   string
	Points []mgl64.Vec3
}

// NewOrbitLine precomputes the loop for the given radius
func NewOrbitLine(body string, radius float64) OrbitLine {
	points := make([]mgl64.Vec3, OrbitSegments+1)
	for i := 0; i <= OrbitSegments; i++ {
		angle := float64(i) / OrbitSegments * twoPi
		points[i] = mgl64.Vec3{radius * math.Cos(angle), 0, radius * math.Sin(angle)}
	}
	points[OrbitSegments] = points[0]
	return OrbitLine{Body: body, Points: points}
}

// wrapAngle maps an angle into [0, 2π)
func wrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
