package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldFillsPools(t *testing.T) {
	w := newTestWorld(t)

	assert.Len(t, w.Bodies, 8)
	assert.Len(t, w.OrbitLines, 8)
	assert.Len(t, w.Flares, FlarePoolSize)
	assert.Len(t, w.CosmicRays, CosmicRayPoolSize)
	assert.Len(t, w.ShootingStars, ShootingStarPoolSize)
	assert.Equal(t, DefaultToggles(), w.Toggles)
	assert.Equal(t, 0, w.ActiveShootingStars())

	for i, line := range w.OrbitLines {
		body := w.Bodies[i]
		assert.Equal(t, body.Name, line.Body)
		require.Len(t, line.Points, OrbitSegments+1)
		assert.Equal(t, line.Points[0], line.Points[OrbitSegments], "loop is closed")
		for _, p := range line.Points {
			assert.InDelta(t, body.Distance, math.Hypot(p.X(), p.Z()), 1e-9)
		}
	}
}

func TestOrbitVisibilityIsReversible(t *testing.T) {
	w := newTestWorld(t)
	before := make([][]mgl64.Vec3, len(w.OrbitLines))
	for i, line := range w.OrbitLines {
		before[i] = append([]mgl64.Vec3(nil), line.Points...)
	}

	assert.True(t, w.OrbitsVisible())
	assert.False(t, w.Toggles.Flip(ToggleOrbits))
	assert.False(t, w.OrbitsVisible())
	assert.True(t, w.Toggles.Flip(ToggleOrbits))
	assert.True(t, w.OrbitsVisible())

	for i, line := range w.OrbitLines {
		assert.Equal(t, before[i], line.Points)
	}
}

func TestBodyByName(t *testing.T) {
	w := newTestWorld(t)

	idx, body, ok := w.BodyByName("SATURN")
	require.True(t, ok)
	assert.Equal(t, 5, idx)
	assert.True(t, body.HasRings)

	idx, body, ok = w.BodyByName("Pluto")
	assert.False(t, ok)
	assert.Nil(t, body)
	assert.Equal(t, -1, idx)
}

func TestToggles(t *testing.T) {
	all := []Toggle{ToggleOrbits, ToggleLabels, ToggleFlares, ToggleShootingStars, ToggleCosmicRays}

	for _, which := range all {
		t.Run(which.String(), func(t *testing.T) {
			toggles := DefaultToggles()
			assert.True(t, toggles.Get(which))
			assert.False(t, toggles.Flip(which))
			assert.False(t, toggles.Get(which))
			toggles.Set(which, true)
			assert.True(t, toggles.Get(which))
		})
	}

	var toggles Toggles
	assert.False(t, toggles.Flip(Toggle(99)))
	assert.Equal(t, "unknown", Toggle(99).String())
}

func TestSpeedMultipliers(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 2.5, 2.5},
		{"snaps to tenths", 1.26, 1.3},
		{"above max", 7, MaxSpeedMultiplier},
		{"below min", -1, MinSpeedMultiplier},
		{"nan resets", math.NaN(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var toggles Toggles
			toggles.SetOrbitSpeed(tt.in)
			toggles.SetRotationSpeed(tt.in)
			assert.InDelta(t, tt.want, toggles.OrbitSpeed, 1e-9)
			assert.InDelta(t, tt.want, toggles.RotationSpeed, 1e-9)
		})
	}
}

func TestLabels(t *testing.T) {
	w := newTestWorld(t)
	cam := newTestCamera()

	labels := ProjectLabels(w, cam, nil)
	require.Len(t, labels, len(w.Bodies))
	for i, l := range labels {
		body := w.Bodies[i]
		assert.Equal(t, body.Name, l.Text)
		x, y, ok := cam.Project(body.Position)
		require.True(t, ok)
		assert.InDelta(t, x, l.X, 1e-9)
		assert.Less(t, l.Y, y, "label sits above the body")
	}

	// A body behind the camera gets no label
	w.Bodies[0].Position = cam.Position.Mul(2)
	labels = ProjectLabels(w, cam, labels)
	assert.Len(t, labels, len(w.Bodies)-1)

	w.Toggles.Set(ToggleLabels, false)
	assert.Empty(t, ProjectLabels(w, cam, labels))
}

func TestSceneStep(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	cam := newTestCamera()
	scene := NewScene(cat, cam, NewFrameClock(timeZero), rand.New(rand.NewSource(31)))
	scene.World.Toggles.SetOrbitSpeed(2)

	for i := 0; i < 10; i++ {
		scene.Step(0.1)
	}

	frame := scene.Frame()
	assert.Equal(t, uint64(10), frame.Count)
	assert.InDelta(t, 1.0, frame.Elapsed, 1e-9)
	assert.InDelta(t, 1.0, scene.Now(), 1e-9)

	_, earth, _ := scene.World.BodyByName("earth")
	assert.InDelta(t, 0.2, earth.OrbitAngle, 1e-9)
	assert.NotEmpty(t, scene.Labels)

	// A fly-to scheduled on scene time completes after its duration
	cam.FocusOn(earth, scene.Now())
	for i := 0; i < 20 && cam.Transitioning(); i++ {
		scene.Step(0.1)
	}
	assert.False(t, cam.Transitioning())
}
