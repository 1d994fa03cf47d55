package game

import (
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"solarsystem/sim"
)

// Render constants
const (
	starfieldCount    = 600
	starfieldRadius   = 1500.0
	ringInner         = 1.4
	ringOuter         = 2.3
	ringBands         = 4
	ringSegments      = 72
	minBodyPixels     = 1.5
	nightSideDarkness = 0.65
	trailOpacityMax   = 0.8
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorStarfield  = color.NRGBA{R: 200, G: 205, B: 230, A: 255}
	colorOrbit      = color.NRGBA{R: 90, G: 110, B: 160, A: 110}
	colorCosmicRay  = color.NRGBA{R: 140, G: 200, B: 255, A: 255}
	colorShooting   = color.NRGBA{R: 255, G: 250, B: 235, A: 255}
	colorFlare      = color.NRGBA{R: 255, G: 150, B: 40, A: 255}
	colorRing       = color.NRGBA{R: 210, G: 190, B: 140, A: 150}
	colorBounds     = color.NRGBA{R: 0, G: 255, B: 0, A: 160}
)

// Renderer draws a sim.World through a camera rig. Depth is handled by
// painter's ordering; shading is approximated with the per-body shader
// parameters the orbital updater refreshes.
type Renderer struct {
	camera    *sim.CameraRig
	sprites   *Sprites
	starfield []mgl64.Vec3
	order     []int
}

// NewRenderer creates a renderer with a fixed background starfield
func NewRenderer(camera *sim.CameraRig, sprites *Sprites, rng *rand.Rand) *Renderer {
	stars := make([]mgl64.Vec3, starfieldCount)
	for i := range stars {
		theta := rng.Float64() * 2 * math.Pi
		y := rng.Float64()*2 - 1
		r := math.Sqrt(1 - y*y)
		stars[i] = mgl64.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)}.Mul(starfieldRadius)
	}
	return &Renderer{
		camera:    camera,
		sprites:   sprites,
		starfield: stars,
	}
}

// Render draws the whole scene back to front
func (r *Renderer) Render(screen *ebiten.Image, w *sim.World) {
	screen.Fill(colorBackground)

	r.drawStarfield(screen)
	if w.Toggles.ShowCosmicRays {
		r.drawCosmicRays(screen, w.CosmicRays)
	}
	if w.OrbitsVisible() {
		r.drawOrbitLines(screen, w.OrbitLines)
	}
	if w.Toggles.ShowShootingStars {
		r.drawShootingStars(screen, w.ShootingStars)
	}

	// Bodies behind the sun first, then the sun, then the rest
	sunDist := r.camera.Position.Len()
	r.sortBodies(w.Bodies)
	i := 0
	for ; i < len(r.order) && w.Bodies[r.order[i]].Position.Sub(r.camera.Position).Len() > sunDist; i++ {
		r.drawBody(screen, w.Bodies[r.order[i]])
	}
	r.drawSun(screen, &w.Sun)
	if w.Toggles.ShowFlares {
		r.drawFlares(screen, w.Flares)
	}
	for ; i < len(r.order); i++ {
		r.drawBody(screen, w.Bodies[r.order[i]])
	}

	if GetDebugState().ShowBounds {
		r.drawBounds(screen, w)
	}
}

func (r *Renderer) sortBodies(bodies []*sim.CelestialBody) {
	r.order = r.order[:0]
	for i := range bodies {
		r.order = append(r.order, i)
	}
	cam := r.camera.Position
	sort.Slice(r.order, func(a, b int) bool {
		da := bodies[r.order[a]].Position.Sub(cam).Len()
		db := bodies[r.order[b]].Position.Sub(cam).Len()
		return da > db
	})
}

func (r *Renderer) drawStarfield(screen *ebiten.Image) {
	for _, p := range r.starfield {
		// The starfield follows the camera so it reads as infinitely far away
		sx, sy, ok := r.camera.Project(r.camera.Position.Add(p))
		if !ok {
			continue
		}
		screen.Set(int(sx), int(sy), colorStarfield)
	}
}

func (r *Renderer) drawOrbitLines(screen *ebiten.Image, lines []sim.OrbitLine) {
	for _, line := range lines {
		r.strokePolyline(screen, line.Points, 1, colorOrbit)
	}
}

func (r *Renderer) drawCosmicRays(screen *ebiten.Image, rays []sim.CosmicRay) {
	for _, ray := range rays {
		if ray.Opacity <= 0 {
			continue
		}
		a, b := ray.Endpoints()
		ax, ay, okA := r.camera.Project(a)
		bx, by, okB := r.camera.Project(b)
		if !okA || !okB {
			continue
		}
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, withAlpha(colorCosmicRay, ray.Opacity), true)
	}
}

// drawShootingStars draws each active star as a head with a trail that fades
// from the newest point to the oldest
func (r *Renderer) drawShootingStars(screen *ebiten.Image, stars []sim.ShootingStar) {
	for i := range stars {
		s := &stars[i]
		if !s.Active || s.Opacity <= 0 || len(s.Trail) < 2 {
			continue
		}
		for j := 0; j < len(s.Trail)-1; j++ {
			x1, y1, ok1 := r.camera.Project(s.Trail[j])
			x2, y2, ok2 := r.camera.Project(s.Trail[j+1])
			if !ok1 || !ok2 {
				continue
			}
			progress := float64(j) / float64(len(s.Trail)-1)
			alpha := s.Opacity * trailOpacityMax * (1 - progress)
			width := float32(2 * (1 - progress*0.7))
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), width, withAlpha(colorShooting, alpha), true)
		}
		if hx, hy, ok := r.camera.Project(s.Position); ok {
			vector.DrawFilledCircle(screen, float32(hx), float32(hy), 1.5, withAlpha(colorShooting, s.Opacity), true)
		}
	}
}

func (r *Renderer) drawSun(screen *ebiten.Image, sun *sim.Sun) {
	x, y, ok := r.camera.Project(mgl64.Vec3{})
	if !ok {
		return
	}
	radius := r.camera.ProjectedRadius(mgl64.Vec3{}, sun.Radius)

	// Corona breathes with the sun's shader time
	pulse := 1 + 0.06*math.Sin(sun.ShaderTime*1.7) + 0.03*math.Sin(sun.ShaderTime*4.3)
	r.drawSprite(screen, r.sprites.Glow, x, y, radius*sun.CoronaSize*2*pulse, sun.Color, 0.8)

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(math.Max(radius, minBodyPixels)), sun.Color, true)
	core := blend(sun.Color, color.NRGBA{R: 255, G: 255, B: 230, A: 255}, 0.5+0.2*math.Sin(sun.ShaderTime*2.3))
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(math.Max(radius*0.7, 1)), core, true)
}

func (r *Renderer) drawFlares(screen *ebiten.Image, flares []sim.Flare) {
	for _, f := range flares {
		x, y, ok := r.camera.Project(f.Position)
		if !ok {
			continue
		}
		size := r.camera.ProjectedRadius(f.Position, 0.6*f.Scale)
		r.drawSprite(screen, r.sprites.Glow, x, y, math.Max(size*2, 2), colorFlare, f.Opacity)
	}
}

func (r *Renderer) drawBody(screen *ebiten.Image, body *sim.CelestialBody) {
	x, y, ok := r.camera.Project(body.Position)
	if !ok {
		return
	}
	radius := math.Max(r.camera.ProjectedRadius(body.Position, body.Radius), minBodyPixels)

	if body.HasRings {
		r.drawRings(screen, body, false)
	}

	// Day side faces the sun; how much of it we see depends on the view direction
	toSun := mgl64.Vec3{}.Sub(body.Position)
	lit := 1.0
	if toSun.Len() > 0 {
		lit = (1 + body.ViewDir.Dot(toSun.Normalize())) / 2
	}
	shade := blend(body.Color, color.NRGBA{A: 255}, (1-lit)*nightSideDarkness)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), shade, true)

	// Surface marker turning with the spin angle, only while on the near side
	marker := mgl64.Vec3{math.Cos(body.SpinAngle), 0, math.Sin(body.SpinAngle)}
	if marker.Dot(body.ViewDir) > 0 {
		if mx, my, ok := r.camera.Project(body.Position.Add(marker.Mul(body.Radius * 0.8))); ok {
			vector.DrawFilledCircle(screen, float32(mx), float32(my), float32(math.Max(radius*0.18, 0.8)), blend(shade, color.NRGBA{A: 255}, 0.35), true)
		}
	}

	if body.Atmosphere != nil {
		// Rim glow brightens as the view grazes the lit limb
		rim := 0.45 + 0.35*lit + 0.1*math.Sin(body.ShaderTime*0.8)
		r.drawSprite(screen, r.sprites.Rim, x, y, radius*body.Atmosphere.Scale*2, body.Atmosphere.Color, rim)
	}

	if body.HasRings {
		r.drawRings(screen, body, true)
	}
}

// drawRings draws the far or near half of a ring system so the planet
// disc sits between them
func (r *Renderer) drawRings(screen *ebiten.Image, body *sim.CelestialBody, near bool) {
	tilt := mgl64.Rotate3DX(mgl64.DegToRad(26.7))
	toCam := body.ViewDir
	for band := 0; band < ringBands; band++ {
		scale := ringInner + (ringOuter-ringInner)*float64(band)/float64(ringBands-1)
		radius := body.Radius * scale
		for i := 0; i < ringSegments; i++ {
			a0 := float64(i) / ringSegments * 2 * math.Pi
			a1 := float64(i+1) / ringSegments * 2 * math.Pi
			p0 := tilt.Mul3x1(mgl64.Vec3{math.Cos(a0), 0, math.Sin(a0)}).Mul(radius)
			p1 := tilt.Mul3x1(mgl64.Vec3{math.Cos(a1), 0, math.Sin(a1)}).Mul(radius)
			if (p0.Dot(toCam) > 0) != near {
				continue
			}
			x0, y0, ok0 := r.camera.Project(body.Position.Add(p0))
			x1, y1, ok1 := r.camera.Project(body.Position.Add(p1))
			if !ok0 || !ok1 {
				continue
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, colorRing, true)
		}
	}
}

func (r *Renderer) drawBounds(screen *ebiten.Image, w *sim.World) {
	if x, y, ok := r.camera.Project(mgl64.Vec3{}); ok {
		rad := r.camera.ProjectedRadius(mgl64.Vec3{}, w.Sun.Radius)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(rad), 1, colorBounds, true)
	}
	for _, body := range w.Bodies {
		if x, y, ok := r.camera.Project(body.Position); ok {
			rad := r.camera.ProjectedRadius(body.Position, body.BoundingRadius())
			vector.StrokeCircle(screen, float32(x), float32(y), float32(rad), 1, colorBounds, true)
		}
	}
}

func (r *Renderer) strokePolyline(screen *ebiten.Image, points []mgl64.Vec3, width float32, clr color.Color) {
	for i := 0; i < len(points)-1; i++ {
		x0, y0, ok0 := r.camera.Project(points[i])
		x1, y1, ok1 := r.camera.Project(points[i+1])
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}

// drawSprite draws a white sprite centred on (x, y), tinted and additively blended
func (r *Renderer) drawSprite(screen *ebiten.Image, sprite *ebiten.Image, x, y, diameter float64, tint color.Color, alpha float64) {
	if diameter <= 0 || alpha <= 0 {
		return
	}
	scale := diameter / spriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-diameter/2, y-diameter/2)
	op.ColorScale.ScaleWithColor(tint)
	op.ColorScale.ScaleAlpha(float32(math.Min(alpha, 1)))
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(sprite, op)
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, alpha)))
	return c
}

// blend mixes two colours in Lab space
func blend(a, b color.NRGBA, t float64) color.NRGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, math.Max(0, math.Min(1, t))).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: a.A}
}
