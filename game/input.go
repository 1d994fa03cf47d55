package game

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solarsystem/info"
	"solarsystem/sim"
)

const (
	rotateSensitivity = 0.005 // radians per pixel dragged
	clickSlop         = 4.0   // pixels a press may travel and still count as a click
)

// toggleKeys maps visibility keys to the switch they flip
var toggleKeys = map[ebiten.Key]sim.Toggle{
	ebiten.KeyO: sim.ToggleOrbits,
	ebiten.KeyL: sim.ToggleLabels,
	ebiten.KeyF: sim.ToggleFlares,
	ebiten.KeyS: sim.ToggleShootingStars,
	ebiten.KeyC: sim.ToggleCosmicRays,
}

// bodyKeys focus the n-th body in catalog order
var bodyKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Controls turns keyboard and mouse state into camera moves, toggle
// changes and info selections
type Controls struct {
	dragButton ebiten.MouseButton
	dragging   bool
	pressX     int
	pressY     int
	lastX      int
	lastY      int
	travelled  float64

	hovering bool
}

// NewControls creates an idle controller
func NewControls() *Controls {
	return &Controls{}
}

// Update reads this tick's input. It runs before the scene steps so camera
// deltas are damped in the same frame.
func (c *Controls) Update(g *Game) {
	c.handleKeys(g)
	c.handleMouse(g)
}

func (c *Controls) handleKeys(g *Game) {
	w := g.scene.World
	cam := g.scene.Camera
	now := g.scene.Now()

	for key, which := range toggleKeys {
		if inpututil.IsKeyJustPressed(key) {
			w.Toggles.Flip(which)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		w.Toggles.SetOrbitSpeed(w.Toggles.OrbitSpeed - sim.SpeedMultiplierStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		w.Toggles.SetOrbitSpeed(w.Toggles.OrbitSpeed + sim.SpeedMultiplierStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		w.Toggles.SetRotationSpeed(w.Toggles.RotationSpeed - sim.SpeedMultiplierStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		w.Toggles.SetRotationSpeed(w.Toggles.RotationSpeed + sim.SpeedMultiplierStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cam.Reset(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.panel.Close()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) ||
		(ebiten.IsKeyPressed(ebiten.KeyAlt) && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.panel.Select(info.Selection{Sun: true})
		cam.Reset(now)
	}
	for i, key := range bodyKeys {
		if i >= len(w.Bodies) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		body := w.Bodies[i]
		cam.FocusOn(body, now)
		g.panel.Select(info.Selection{Name: strings.ToLower(body.Name)})
	}

	// Debug toggles
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowStats = !debugState.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState := GetDebugState()
		debugState.ShowBounds = !debugState.ShowBounds
	}
}

func (c *Controls) handleMouse(g *Game) {
	cam := g.scene.Camera
	x, y := ebiten.CursorPosition()

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.Zoom(wy)
	}

	for _, button := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if !c.dragging && inpututil.IsMouseButtonJustPressed(button) {
			c.dragging = true
			c.dragButton = button
			c.pressX, c.pressY = x, y
			c.lastX, c.lastY = x, y
			c.travelled = 0
		}
	}

	if c.dragging {
		dx := float64(x - c.lastX)
		dy := float64(y - c.lastY)
		c.lastX, c.lastY = x, y
		c.travelled = math.Max(c.travelled, math.Hypot(float64(x-c.pressX), float64(y-c.pressY)))

		if c.travelled > clickSlop && (dx != 0 || dy != 0) {
			switch c.dragButton {
			case ebiten.MouseButtonLeft:
				cam.Rotate(-dx*rotateSensitivity, dy*rotateSensitivity)
			case ebiten.MouseButtonRight:
				cam.Pan(dx, dy)
			}
		}

		if inpututil.IsMouseButtonJustReleased(c.dragButton) {
			c.dragging = false
			if c.dragButton == ebiten.MouseButtonLeft && c.travelled <= clickSlop {
				c.click(g, x, y)
			}
		}
	}

	c.updateHover(g, x, y)
}

// click requests info for whatever is under the pointer. Empty space and
// clicks on the open panel send nothing.
func (c *Controls) click(g *Game, x, y int) {
	if g.panel.Visible && g.ui.PanelContains(x, y) {
		return
	}
	hit, ok := c.pick(g, x, y)
	if !ok {
		return
	}
	switch hit.Kind {
	case sim.HitSun:
		g.panel.Select(info.Selection{Sun: true})
	case sim.HitBody:
		g.scene.Camera.FocusOn(g.scene.World.Bodies[hit.Index], g.scene.Now())
		g.panel.Select(info.Selection{Name: hit.Key()})
	}
}

func (c *Controls) updateHover(g *Game, x, y int) {
	hovering := false
	if !c.dragging {
		_, hovering = c.pick(g, x, y)
	}
	if hovering == c.hovering {
		return
	}
	c.hovering = hovering
	if hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (c *Controls) pick(g *Game, x, y int) (sim.Hit, bool) {
	cam := g.scene.Camera
	ndcX, ndcY := cam.ScreenToNDC(float64(x), float64(y))
	return sim.Pick(g.scene.World, cam, ndcX, ndcY)
}
