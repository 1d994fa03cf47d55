package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Flare pool and spawn parameters
const (
	FlarePoolSize = 50

	flareMinMaxAge   = 50.0
	flareMaxAgeRange = 100.0 // max-age drawn from [50, 150)
	flareShellMin    = 1.0   // spawn shell, in sun radii
	flareShellMax    = 1.15
	flareMinSpeed    = 0.5
	flareSpeedRange  = 1.5
	flareMinAmp      = 0.1
	flareAmpRange    = 0.4

	flareBaseOpacity    = 0.35
	flareVisibleOpacity = 0.55
	flareFadeDistance   = 250.0 // beyond this camera distance flares keep only the base opacity
)

// Flare is a solar surface particle oscillating around its origin
type Flare struct {
	Origin    mgl64.Vec3
	Position  mgl64.Vec3
	Speed     float64
	Amplitude float64
	Phase     float64
	Age       float64
	MaxAge    float64
	Scale     float64
	Opacity   float64
}

// EffectContext carries the per-frame inputs shared by every effect step
type EffectContext struct {
	Frame     Frame
	CameraPos mgl64.Vec3
	SunRadius float64
	Rand      *rand.Rand
}

// NewFlare spawns a flare somewhere on the shell around the sun
func NewFlare(sunRadius float64, rng *rand.Rand) Flare {
	var f Flare
	f.respawn(sunRadius, rng)
	f.Speed = flareMinSpeed + rng.Float64()*flareSpeedRange
	f.Amplitude = flareMinAmp + rng.Float64()*flareAmpRange
	f.Phase = rng.Float64() * twoPi
	f.Scale = 1
	f.Opacity = flareBaseOpacity
	return f
}

// Step returns the flare one frame later
func (f Flare) Step(ctx EffectContext) Flare {
	t := ctx.Frame.Elapsed*f.Speed + f.Phase
	f.Position = f.Origin.Add(mgl64.Vec3{
		math.Sin(t) * f.Amplitude,
		math.Sin(t*1.3) * f.Amplitude,
		math.Sin(t*0.7) * f.Amplitude,
	})
	f.Scale = 1 + 0.3*math.Sin(2*t)

	dist := f.Position.Sub(ctx.CameraPos).Len()
	visibility := clamp01(1 - dist/flareFadeDistance)
	f.Opacity = clamp01(flareBaseOpacity + flareVisibleOpacity*visibility)

	f.Age += ctx.Frame.Delta
	if f.Age >= f.MaxAge {
		f.respawn(ctx.SunRadius, ctx.Rand)
	}
	return f
}

func (f *Flare) respawn(sunRadius float64, rng *rand.Rand) {
	r := sunRadius * (flareShellMin + rng.Float64()*(flareShellMax-flareShellMin))
	f.Origin = randomOnSphere(rng).Mul(r)
	f.Position = f.Origin
	f.Age = 0
	f.MaxAge = flareMinMaxAge + rng.Float64()*flareMaxAgeRange
}

// randomOnSphere returns a uniformly distributed unit vector
func randomOnSphere(rng *rand.Rand) mgl64.Vec3 {
	theta := rng.Float64() * twoPi
	cosPhi := 2*rng.Float64() - 1
	sinPhi := math.Sqrt(1 - cosPhi*cosPhi)
	return mgl64.Vec3{sinPhi * math.Cos(theta), cosPhi, sinPhi * math.Sin(theta)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
