package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Cosmic ray pool and hysteresis band
const (
	CosmicRayPoolSize = 20

	RayMinOpacity = 0.1
	RayMaxOpacity = 0.6

	rayFadeStep     = 0.01
	rayRotationRate = 0.001
	rayLength       = 60.0
	rayMinRadius    = 120.0
	rayRadiusRange  = 180.0
	rayMinSpeed     = 0.5
	raySpeedRange   = 1.0
)

// CosmicRay is a fixed-length streak whose opacity oscillates inside
// [RayMinOpacity, RayMaxOpacity]
type CosmicRay struct {
	Center    mgl64.Vec3
	Direction mgl64.Vec3 // unit direction of the segment before rotation
	Length    float64
	Opacity   float64
	FadingIn  bool
	Speed     float64
	Rotation  float64 // drift about the vertical axis, radians
}

// NewCosmicRay places a ray at a random spot in the outer scene
func NewCosmicRay(rng *rand.Rand) CosmicRay {
	radius := rayMinRadius + rng.Float64()*rayRadiusRange
	return CosmicRay{
		Center:    randomOnSphere(rng).Mul(radius),
		Direction: randomOnSphere(rng),
		Length:    rayLength,
		Opacity:   RayMinOpacity + rng.Float64()*(RayMaxOpacity-RayMinOpacity),
		FadingIn:  rng.Intn(2) == 0,
		Speed:     rayMinSpeed + rng.Float64()*raySpeedRange,
	}
}

// Step returns the ray one frame later
func (r CosmicRay) Step() CosmicRay {
	// A ray shown again after being hidden resumes from the band floor
	if r.Opacity < RayMinOpacity {
		r.Opacity = RayMinOpacity
		r.FadingIn = true
	}
	if r.FadingIn {
		r.Opacity += rayFadeStep * r.Speed
		if r.Opacity >= RayMaxOpacity {
			r.Opacity = RayMaxOpacity
			r.FadingIn = false
		}
	} else {
		r.Opacity -= rayFadeStep * r.Speed
		if r.Opacity <= RayMinOpacity {
			r.Opacity = RayMinOpacity
			r.FadingIn = true
		}
	}
	r.Rotation = wrapAngle(r.Rotation + rayRotationRate*r.Speed)
	return r
}

// Endpoints returns the two ends of the segment with the drift applied
func (r CosmicRay) Endpoints() (mgl64.Vec3, mgl64.Vec3) {
	dir := mgl64.Rotate3DY(r.Rotation).Mul3x1(r.Direction)
	half := dir.Mul(r.Length / 2)
	center := mgl64.Rotate3DY(r.Rotation).Mul3x1(r.Center)
	return center.Sub(half), center.Add(half)
}
