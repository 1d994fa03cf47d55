package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	return NewWorld(cat, rand.New(rand.NewSource(1)))
}

func TestOrbitalUpdaterEarthScenario(t *testing.T) {
	w := newTestWorld(t)
	w.Toggles.SetOrbitSpeed(2)
	u := NewOrbitalUpdater()
	clock := NewFrameClock(timeZero)
	cam := mgl64.Vec3{0, 60, 120}

	for i := 0; i < 10; i++ {
		u.Update(w, clock.Advance(0.1), cam)
	}

	_, earth, ok := w.BodyByName("earth")
	require.True(t, ok)

	// 10 frames * 0.1 s * BaseOrbitScale * multiplier 2 * orbit speed 1
	assert.InDelta(t, 0.2, earth.OrbitAngle, 1e-9)
	assert.InDelta(t, 20*math.Cos(0.2), earth.Position.X(), 1e-9)
	assert.InDelta(t, 20*math.Sin(0.2), earth.Position.Z(), 1e-9)
	assert.InDelta(t, 400.0, earth.Position.X()*earth.Position.X()+earth.Position.Z()*earth.Position.Z(), 1e-6)
	assert.Equal(t, 0.0, earth.Position.Y())

	// 10 frames * 0.1 s * BaseSpinScale * multiplier 1 * rotation speed 2
	assert.InDelta(t, 1.0, earth.SpinAngle, 1e-9)

	assert.InDelta(t, 1.0, earth.ShaderTime, 1e-9)
	assert.InDelta(t, 1.0, w.Sun.ShaderTime, 1e-9)
}

func TestOrbitalUpdaterInvariants(t *testing.T) {
	w := newTestWorld(t)
	w.Toggles.SetOrbitSpeed(5)
	w.Toggles.SetRotationSpeed(5)
	u := NewOrbitalUpdater()
	clock := NewFrameClock(timeZero)
	cam := mgl64.Vec3{10, 40, -90}

	for i := 0; i < 2000; i++ {
		u.Update(w, clock.Advance(0.1), cam)
	}

	for _, b := range w.Bodies {
		r := math.Hypot(b.Position.X(), b.Position.Z())
		assert.InDelta(t, b.Distance, r, 1e-9, b.Name)
		assert.GreaterOrEqual(t, b.OrbitAngle, 0.0, b.Name)
		assert.Less(t, b.OrbitAngle, 2*math.Pi, b.Name)
		assert.GreaterOrEqual(t, b.SpinAngle, 0.0, b.Name)
		assert.Less(t, b.SpinAngle, 2*math.Pi, b.Name)
		assert.InDelta(t, 1.0, b.ViewDir.Len(), 1e-9, b.Name)

		toCam := cam.Sub(b.Position).Normalize()
		assert.InDelta(t, 1.0, b.ViewDir.Dot(toCam), 1e-9, b.Name)
	}
}

func TestOrbitalUpdaterZeroMultiplierFreezes(t *testing.T) {
	w := newTestWorld(t)
	w.Toggles.SetOrbitSpeed(0)
	w.Toggles.SetRotationSpeed(0)
	before := make([]mgl64.Vec3, len(w.Bodies))
	for i, b := range w.Bodies {
		before[i] = b.Position
	}

	u := NewOrbitalUpdater()
	clock := NewFrameClock(timeZero)
	for i := 0; i < 50; i++ {
		u.Update(w, clock.Advance(0.05), mgl64.Vec3{0, 50, 50})
	}

	for i, b := range w.Bodies {
		assert.Equal(t, before[i], b.Position, b.Name)
		assert.Equal(t, 0.0, b.SpinAngle, b.Name)
		// Shader time keeps running even when motion is frozen
		assert.InDelta(t, 2.5, b.ShaderTime, 1e-9, b.Name)
	}
}

func TestRetrogradeSpinWraps(t *testing.T) {
	w := newTestWorld(t)
	_, venus, ok := w.BodyByName("Venus")
	require.True(t, ok)
	require.Less(t, venus.RotationSpeed, 0.0)

	u := NewOrbitalUpdater()
	clock := NewFrameClock(timeZero)
	u.Update(w, clock.Advance(0.1), mgl64.Vec3{0, 10, 10})

	assert.Greater(t, venus.SpinAngle, math.Pi, "negative spin wraps below 2π")
	assert.Less(t, venus.SpinAngle, 2*math.Pi)
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-0.5, 2*math.Pi - 0.5},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, wrapAngle(tt.in), 1e-9)
	}
}
