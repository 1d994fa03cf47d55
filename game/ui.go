package game

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"solarsystem/info"
	"solarsystem/sim"
)

const (
	panelWidth   = 320
	panelMargin  = 16
	panelPadding = 12
	lineHeight   = 16
	glyphWidth   = 7 // basicfont.Face7x13 advance
)

var (
	colorLabel       = color.NRGBA{R: 220, G: 225, B: 240, A: 230}
	colorPanelFill   = color.NRGBA{R: 10, G: 14, B: 30, A: 215}
	colorPanelBorder = color.NRGBA{R: 100, G: 130, B: 200, A: 255}
	colorPanelTitle  = color.NRGBA{R: 255, G: 210, B: 120, A: 255}
	colorPanelKey    = color.NRGBA{R: 140, G: 160, B: 210, A: 255}
	colorPanelText   = color.NRGBA{R: 230, G: 232, B: 240, A: 255}
)

// UI draws the overlay: labels, HUD, info panel and debug stats
type UI struct {
	face  *text.GoXFace
	panel image.Rectangle
}

// NewUI creates the overlay with the bundled bitmap font
func NewUI() *UI {
	return &UI{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw renders every overlay element for the current frame
func (u *UI) Draw(screen *ebiten.Image, g *Game) {
	u.drawLabels(screen, g.scene.Labels)
	u.drawHUD(screen, g.scene.World.Toggles)
	u.layoutPanel(screen.Bounds(), g.panel)
	if g.panel.Visible {
		u.drawPanel(screen, g.panel.Content)
	}
	if GetDebugState().ShowStats {
		u.drawStats(screen, g)
	}
}

// PanelContains reports whether a screen point falls inside the panel box
func (u *UI) PanelContains(x, y int) bool {
	return image.Pt(x, y).In(u.panel)
}

func (u *UI) drawLabels(screen *ebiten.Image, labels []sim.Label) {
	for _, l := range labels {
		w, h := text.Measure(l.Text, u.face, lineHeight)
		u.drawText(screen, l.Text, l.X-w/2, l.Y-h, colorLabel)
	}
}

func (u *UI) drawHUD(screen *ebiten.Image, t sim.Toggles) {
	hud := fmt.Sprintf(
		"Orbit speed [ ]: %.1fx   Rotation speed - =: %.1fx\n"+
			"O orbits %s  L labels %s  F flares %s  S shooting stars %s  C cosmic rays %s\n"+
			"Drag: orbit  Right-drag: pan  Wheel: zoom  Click/1-8: planet  0: sun  R: reset  F11: fullscreen",
		t.OrbitSpeed, t.RotationSpeed,
		onOff(t.ShowOrbits), onOff(t.ShowLabels), onOff(t.ShowFlares),
		onOff(t.ShowShootingStars), onOff(t.ShowCosmicRays),
	)
	ebitenutil.DebugPrintAt(screen, hud, 10, screen.Bounds().Dy()-52)
}

// layoutPanel sizes the panel box from its content so hit testing matches
// what was drawn
func (u *UI) layoutPanel(bounds image.Rectangle, p *info.Panel) {
	if !p.Visible {
		u.panel = image.Rectangle{}
		return
	}
	lines := 2 + len(p.Content.Rows()) + 1 + len(wrapText(p.Content.Description, descriptionColumns())) + 2
	height := lines*lineHeight + 2*panelPadding
	x0 := bounds.Max.X - panelWidth - panelMargin
	u.panel = image.Rect(x0, panelMargin, x0+panelWidth, panelMargin+height)
}

func (u *UI) drawPanel(screen *ebiten.Image, c info.Content) {
	r := u.panel
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorPanelFill, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorPanelBorder, true)

	x := float64(r.Min.X + panelPadding)
	y := float64(r.Min.Y + panelPadding)

	u.drawText(screen, c.Name, x, y, colorPanelTitle)
	y += 2 * lineHeight

	for _, row := range c.Rows() {
		u.drawText(screen, row[0]+":", x, y, colorPanelKey)
		u.drawText(screen, row[1], x+100, y, colorPanelText)
		y += lineHeight
	}
	y += lineHeight

	for _, line := range wrapText(c.Description, descriptionColumns()) {
		u.drawText(screen, line, x, y, colorPanelText)
		y += lineHeight
	}
	y += lineHeight
	u.drawText(screen, "[Esc] close", x, y, colorPanelKey)
}

func (u *UI) drawStats(screen *ebiten.Image, g *Game) {
	cam := g.scene.Camera
	frame := g.scene.Frame()
	stats := fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f  frame %d  t=%.1fs\n"+
			"Camera: (%.1f, %.1f, %.1f) -> (%.1f, %.1f, %.1f)  transitioning=%v\n"+
			"Flares: %d  Cosmic rays: %d  Shooting stars: %d/%d active",
		g.fps, ebiten.ActualTPS(), frame.Count, frame.Elapsed,
		cam.Position.X(), cam.Position.Y(), cam.Position.Z(),
		cam.Target.X(), cam.Target.Y(), cam.Target.Z(), cam.Transitioning(),
		len(g.scene.World.Flares), len(g.scene.World.CosmicRays),
		g.scene.World.ActiveShootingStars(), len(g.scene.World.ShootingStars),
	)
	ebitenutil.DebugPrintAt(screen, stats, 10, 10)
}

func (u *UI) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, u.face, op)
}

func descriptionColumns() int {
	return (panelWidth - 2*panelPadding) / glyphWidth
}

// wrapText breaks s into lines of at most cols characters on word boundaries
func wrapText(s string, cols int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > cols {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
