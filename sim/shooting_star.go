package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Shooting star pool and motion parameters
const (
	ShootingStarPoolSize = 10
	TrailLength          = 20

	// FallHeight normalizes the fade. It is fixed rather than derived from the
	// spawn altitude, so stars spawned low fade out early.
	FallHeight = 400.0
	StarFloor  = -100.0

	starMinAltitude   = 200.0
	starAltitudeRange = 200.0
	starSpread        = 400.0 // horizontal spawn range, centred on the origin
	starDrift         = 0.5   // max horizontal component of the fall direction
	starMinSpeed      = 2.0
	starSpeedRange    = 3.0
	starMinDelay      = 2.0
	starDelayRange    = 8.0
)

// ShootingStar is a pooled streak that waits, falls and fades, then waits again
type ShootingStar struct {
	Active         bool
	Position       mgl64.Vec3
	StartY         float64
	Direction      mgl64.Vec3
	Speed          float64
	Trail          []mgl64.Vec3 // most recent first
	Opacity        float64
	Timer          float64
	NextActivation float64
}

// NewShootingStar returns an inactive star with a random first delay
func NewShootingStar(rng *rand.Rand) ShootingStar {
	return ShootingStar{
		Trail:          make([]mgl64.Vec3, 0, TrailLength),
		NextActivation: nextActivationDelay(rng),
	}
}

// Step returns the star one frame later
func (s ShootingStar) Step(ctx EffectContext) ShootingStar {
	if !s.Active {
		s.Timer += ctx.Frame.Delta
		if s.Timer > s.NextActivation {
			s.activate(ctx.Rand)
		}
		return s
	}

	s.Position = s.Position.Add(s.Direction.Mul(s.Speed))
	s.Trail = prependTrail(s.Trail, s.Position)

	fade := s.FadeProgress()
	s.Opacity = math.Max(0, 1-fade)

	if s.Position.Y() < StarFloor || fade > 1 {
		s.deactivate(ctx.Rand)
	}
	return s
}

// FadeProgress is the fall distance normalized by FallHeight
func (s ShootingStar) FadeProgress() float64 {
	return (s.StartY - s.Position.Y()) / FallHeight
}

func (s *ShootingStar) activate(rng *rand.Rand) {
	s.Active = true
	s.Timer = 0
	s.Position = mgl64.Vec3{
		(rng.Float64() - 0.5) * starSpread,
		starMinAltitude + rng.Float64()*starAltitudeRange,
		(rng.Float64() - 0.5) * starSpread,
	}
	s.StartY = s.Position.Y()
	s.Direction = mgl64.Vec3{
		(rng.Float64()*2 - 1) * starDrift,
		-1,
		(rng.Float64()*2 - 1) * starDrift,
	}.Normalize()
	s.Speed = starMinSpeed + rng.Float64()*starSpeedRange
	s.Trail = make([]mgl64.Vec3, 0, TrailLength)
	s.Opacity = 1
}

func (s *ShootingStar) deactivate(rng *rand.Rand) {
	s.Active = false
	s.Opacity = 0
	s.Timer = 0
	s.NextActivation = nextActivationDelay(rng)
}

func nextActivationDelay(rng *rand.Rand) float64 {
	return starMinDelay + rng.Float64()*starDelayRange
}

// prependTrail returns a new trail with p at the front, dropping the oldest
// point past TrailLength. The input slice is never written.
func prependTrail(trail []mgl64.Vec3, p mgl64.Vec3) []mgl64.Vec3 {
	n := min(len(trail)+1, TrailLength)
	next := make([]mgl64.Vec3, n, TrailLength)
	next[0] = p
	copy(next[1:], trail)
	return next
}
