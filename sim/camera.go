package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraConfig holds the static parameters of the camera rig
type CameraConfig struct {
	FOV           float64 // vertical field of view in degrees
	Near, Far     float64
	Damping       float64 // fraction of pending motion applied per frame
	MinDistance   float64
	MaxDistance   float64
	HomePosition  mgl64.Vec3
	HomeTarget    mgl64.Vec3
	FlyToDuration float64 // seconds
}

// DefaultCameraConfig looks down on the inner system at a slight angle
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FOV:           60,
		Near:          0.1,
		Far:           5000,
		Damping:       0.05,
		MinDistance:   5,
		MaxDistance:   400,
		HomePosition:  mgl64.Vec3{0, 60, 120},
		HomeTarget:    mgl64.Vec3{0, 0, 0},
		FlyToDuration: 1.5,
	}
}

// Transition is a scripted eased move of both position and look-at target
type Transition struct {
	StartPos, EndPos       mgl64.Vec3
	StartTarget, EndTarget mgl64.Vec3
	StartTime              float64
	Duration               float64
}

// Progress returns the linear progress at time now, clamped to [0, 1]
func (t *Transition) Progress(now float64) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return clamp01((now - t.StartTime) / t.Duration)
}

// EaseOutCubic maps linear progress to 1-(1-p)^3
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Sample returns the interpolated position and target at time now
func (t *Transition) Sample(now float64) (pos, target mgl64.Vec3) {
	e := EaseOutCubic(t.Progress(now))
	return lerpVec(t.StartPos, t.EndPos, e), lerpVec(t.StartTarget, t.EndTarget, e)
}

// CameraRig is a damped orbit/pan/zoom camera with one optional transition.
// While a transition runs, user input is dropped.
type CameraRig struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3

	cfg    CameraConfig
	width  int
	height int

	pendingAzimuth   float64
	pendingElevation float64
	pendingZoom      float64
	pendingPan       mgl64.Vec3

	transition *Transition
}

var worldUp = mgl64.Vec3{0, 1, 0}

const (
	minPolar = 0.05
	maxPolar = math.Pi - 0.05
	zoomBase = 0.95 // distance multiplier per unit of zoom input
	panScale = 0.0015
)

// NewCameraRig places the rig at its home pose
func NewCameraRig(cfg CameraConfig, width, height int) *CameraRig {
	c := &CameraRig{
		Position: cfg.HomePosition,
		Target:   cfg.HomeTarget,
		cfg:      cfg,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport records the render surface size; repeated calls are harmless
func (c *CameraRig) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
}

// Viewport returns the current render surface size
func (c *CameraRig) Viewport() (int, int) {
	return c.width, c.height
}

// Aspect is width over height of the viewport
func (c *CameraRig) Aspect() float64 {
	if c.height == 0 {
		return 1
	}
	return float64(c.width) / float64(c.height)
}

// Rotate queues an orbit around the target, in radians
func (c *CameraRig) Rotate(dAzimuth, dElevation float64) {
	if c.transition != nil {
		return
	}
	c.pendingAzimuth += dAzimuth
	c.pendingElevation += dElevation
}

// Pan queues a screen-space translation of both position and target. dx and
// dy are in pixels; the step scales with the distance to the target.
func (c *CameraRig) Pan(dx, dy float64) {
	if c.transition != nil {
		return
	}
	forward := c.Target.Sub(c.Position)
	dist := forward.Len()
	if dist == 0 {
		return
	}
	right := forward.Cross(worldUp)
	if right.Len() == 0 {
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(forward.Normalize())

	scale := dist * panScale
	c.pendingPan = c.pendingPan.Add(right.Mul(-dx * scale)).Add(up.Mul(dy * scale))
}

// Zoom queues a dolly toward (positive) or away from (negative) the target
func (c *CameraRig) Zoom(delta float64) {
	if c.transition != nil {
		return
	}
	c.pendingZoom += delta
}

// FlyTo starts a transition toward the given pose, replacing any running one
func (c *CameraRig) FlyTo(position, target mgl64.Vec3, now float64) {
	c.FlyToOver(position, target, now, c.cfg.FlyToDuration)
}

// FlyToOver is FlyTo with an explicit duration in seconds
func (c *CameraRig) FlyToOver(position, target mgl64.Vec3, now, duration float64) {
	c.clearPending()
	c.transition = &Transition{
		StartPos:    c.Position,
		EndPos:      position,
		StartTarget: c.Target,
		EndTarget:   target,
		StartTime:   now,
		Duration:    duration,
	}
}

// FocusOn flies to a vantage point just outside the given body
func (c *CameraRig) FocusOn(body *CelestialBody, now float64) {
	outward := mgl64.Vec3{body.Position.X(), 0, body.Position.Z()}
	if outward.Len() == 0 {
		outward = mgl64.Vec3{0, 0, 1}
	}
	standoff := math.Max(body.BoundingRadius()*6, c.cfg.MinDistance*1.5)
	offset := outward.Normalize().Mul(standoff).Add(worldUp.Mul(standoff * 0.5))
	c.FlyTo(body.Position.Add(offset), body.Position, now)
}

// Reset flies back to the home pose
func (c *CameraRig) Reset(now float64) {
	c.FlyTo(c.cfg.HomePosition, c.cfg.HomeTarget, now)
}

// Transitioning reports whether a scripted move is in flight
func (c *CameraRig) Transitioning() bool {
	return c.transition != nil
}

// Update advances the rig to time now: the transition if one is running,
// otherwise one damping step of the pending user motion.
func (c *CameraRig) Update(now float64) {
	if c.transition != nil {
		c.Position, c.Target = c.transition.Sample(now)
		if c.transition.Progress(now) >= 1 {
			c.transition = nil
		}
		return
	}
	c.applyDamping()
}

func (c *CameraRig) applyDamping() {
	k := c.cfg.Damping

	// Pan translates position and target together
	offset := c.Position.Sub(c.Target)
	c.Target = c.Target.Add(c.pendingPan.Mul(k))

	radius := offset.Len()
	if radius == 0 {
		radius = c.cfg.MinDistance
		offset = mgl64.Vec3{0, 0, radius}
	}
	azimuth := math.Atan2(offset.X(), offset.Z())
	polar := math.Acos(math.Max(-1, math.Min(1, offset.Y()/radius)))

	azimuth += c.pendingAzimuth * k
	polar = math.Max(minPolar, math.Min(maxPolar, polar-c.pendingElevation*k))
	radius *= math.Pow(zoomBase, c.pendingZoom*k)
	radius = math.Max(c.cfg.MinDistance, math.Min(c.cfg.MaxDistance, radius))

	c.Position = c.Target.Add(mgl64.Vec3{
		radius * math.Sin(polar) * math.Sin(azimuth),
		radius * math.Cos(polar),
		radius * math.Sin(polar) * math.Cos(azimuth),
	})

	decay := 1 - k
	c.pendingAzimuth *= decay
	c.pendingElevation *= decay
	c.pendingZoom *= decay
	c.pendingPan = c.pendingPan.Mul(decay)
}

func (c *CameraRig) clearPending() {
	c.pendingAzimuth, c.pendingElevation, c.pendingZoom = 0, 0, 0
	c.pendingPan = mgl64.Vec3{}
}

// View is the world-to-camera matrix
func (c *CameraRig) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, worldUp)
}

// Projection is the perspective matrix for the current viewport
func (c *CameraRig) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.cfg.FOV), c.Aspect(), c.cfg.Near, c.cfg.Far)
}

// Project maps a world point to pixel coordinates. ok is false for points
// behind the camera.
func (c *CameraRig) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * float64(c.width)
	y = (1 - ndcY) / 2 * float64(c.height)
	return x, y, true
}

// ProjectedRadius approximates the on-screen radius in pixels of a sphere
func (c *CameraRig) ProjectedRadius(center mgl64.Vec3, radius float64) float64 {
	dist := center.Sub(c.Position).Len()
	if dist <= radius {
		return float64(c.height)
	}
	halfFOV := mgl64.DegToRad(c.cfg.FOV) / 2
	return radius / (dist * math.Tan(halfFOV)) * float64(c.height) / 2
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
func (c *CameraRig) ScreenToNDC(x, y float64) (float64, float64) {
	if c.width == 0 || c.height == 0 {
		return 0, 0
	}
	return x/float64(c.width)*2 - 1, 1 - y/float64(c.height)*2
}

// Ray returns the camera position and the unit direction through the given
// normalized device coordinates
func (c *CameraRig) Ray(ndcX, ndcY float64) (origin, dir mgl64.Vec3) {
	inv := c.Projection().Mul4(c.View()).Inv()
	near := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})
	nearPt := near.Vec3().Mul(1 / near.W())
	farPt := far.Vec3().Mul(1 / far.W())
	return c.Position, farPt.Sub(nearPt).Normalize()
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
