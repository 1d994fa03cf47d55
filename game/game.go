package game

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"solarsystem/info"
	"solarsystem/sim"
)

// Game is the ebiten entry point: it steps the scene, pumps info results
// and draws the frame
type Game struct {
	config   Config
	scene    *sim.Scene
	panel    *info.Panel
	renderer *Renderer
	ui       *UI
	controls *Controls

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling
	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration
	gameStartTime   time.Time
}

// NewGame builds the scene from the configured catalog and connects the
// info panel to the configured service
func NewGame(config Config) (*Game, error) {
	catalog, err := config.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sprites, err := loadSprites()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	camera := sim.NewCameraRig(config.Camera, config.ScreenWidth, config.ScreenHeight)
	scene := sim.NewScene(catalog, camera, sim.NewFrameClock(now), rng)

	log.Printf("Loaded %d bodies around %s (seed %d)", len(catalog.Bodies), catalog.Sun.Name, seed)

	return &Game{
		config:          config,
		scene:           scene,
		panel:           info.NewPanel(info.NewClient(config.InfoServiceURL), config.InfoTimeout),
		renderer:        NewRenderer(camera, sprites, rng),
		ui:              NewUI(),
		controls:        NewControls(),
		fps:             60.0,
		profiler:        NewProfiler("profiles"),
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   now,
	}, nil
}

// Update runs one frame: input, simulation, then any finished info fetches
func (g *Game) Update() error {
	g.controls.Update(g)
	frame := g.scene.Tick(time.Now())
	g.panel.Apply()
	g.trackFPS(frame.Delta)
	return nil
}

// trackFPS recomputes the frame rate every half second and optionally
// captures a profile when it drops
func (g *Game) trackFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	if g.fpsUpdateCounter > 0 {
		g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	}
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	// Skip detection during startup
	if !g.config.ProfileOnFPSDrop || g.fps >= g.config.FPSDropThreshold ||
		time.Since(g.gameStartTime) < 3*time.Second || time.Since(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("FPS drop detected (%.0f FPS). GC stats: NumGC=%d, PauseTotal=%v, HeapAlloc=%d KB",
		g.fps, m.NumGC, time.Duration(m.PauseTotalNs), m.HeapAlloc/1024)

	reason := fmt.Sprintf("fps%.0f-stars%d", g.fps, g.scene.World.ActiveShootingStars())
	if err := g.profiler.CaptureProfile(reason); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the scene and the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.scene.World)
	g.ui.Draw(screen, g)
}

// Layout follows the window size so resizes keep the projection aspect
// in step with the surface
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
