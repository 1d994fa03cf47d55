package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSunThroughCenter(t *testing.T) {
	w := newTestWorld(t)
	cam := newTestCamera()

	hit, ok := Pick(w, cam, 0, 0)
	require.True(t, ok)
	assert.Equal(t, HitSun, hit.Kind)
	assert.Equal(t, -1, hit.Index)
	assert.Equal(t, "sun", hit.Key())
	assert.InDelta(t, cam.Position.Len()-w.Sun.Radius, hit.Distance, 1e-6)
}

func TestPickBodyUnderPointer(t *testing.T) {
	w := newTestWorld(t)
	cam := newTestCamera()

	for i, body := range w.Bodies {
		t.Run(body.Name, func(t *testing.T) {
			x, y, ok := cam.Project(body.Position)
			require.True(t, ok)
			nx, ny := cam.ScreenToNDC(x, y)
			hit, ok := Pick(w, cam, nx, ny)
			require.True(t, ok)
			assert.Equal(t, HitBody, hit.Kind)
			assert.Equal(t, i, hit.Index)
			assert.Equal(t, body.Name, hit.Name)
		})
	}
}

func TestPickMissReturnsNothing(t *testing.T) {
	w := newTestWorld(t)
	cam := newTestCamera()

	// Top corner looks above the orbital plane
	_, ok := Pick(w, cam, 0.99, 0.99)
	assert.False(t, ok)
}

func TestPickNearestWins(t *testing.T) {
	w := newTestWorld(t)
	cam := newTestCamera()

	// Put Mercury between the camera and the sun
	w.Bodies[0].Position = cam.Position.Mul(0.5)

	hit, ok := Pick(w, cam, 0, 0)
	require.True(t, ok)
	assert.Equal(t, HitBody, hit.Kind)
	assert.Equal(t, "Mercury", hit.Name)
	assert.Less(t, hit.Distance, cam.Position.Len()-w.Sun.Radius)
}

func TestPickUsesAtmosphereShell(t *testing.T) {
	w := newTestWorld(t)
	cam := newTestCamera()
	_, earth, _ := w.BodyByName("Earth")
	require.NotNil(t, earth.Atmosphere)

	// Aim just outside the solid radius but inside the atmosphere
	toEarth := earth.Position.Sub(cam.Position)
	side := toEarth.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	edge := earth.Position.Add(side.Mul(earth.Radius * 1.05))
	x, y, ok := cam.Project(edge)
	require.True(t, ok)

	nx, ny := cam.ScreenToNDC(x, y)
	hit, ok := Pick(w, cam, nx, ny)
	require.True(t, ok)
	assert.Equal(t, "Earth", hit.Name)
}

func TestIntersectSphere(t *testing.T) {
	tests := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		want   float64
		hit    bool
	}{
		{"head on", mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}, 9, true},
		{"miss", mgl64.Vec3{0, 5, 10}, mgl64.Vec3{0, 0, -1}, 0, false},
		{"behind", mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}, 0, false},
		{"inside", mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 1, true},
		{"grazing", mgl64.Vec3{1, 0, 10}, mgl64.Vec3{0, 0, -1}, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := intersectSphere(tt.origin, tt.dir, mgl64.Vec3{}, 1)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.want, d, 1e-9)
			}
			assert.False(t, math.IsNaN(d))
		})
	}
}
