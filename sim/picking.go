package sim

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// HitKind distinguishes the star from the orbiting bodies
type HitKind int

const (
	HitSun HitKind = iota
	HitBody
)

// Hit is the nearest object under the pointer
type Hit struct {
	Kind     HitKind
	Index    int // body index; -1 for the sun
	Name     string
	Distance float64
}

// Key is the lowercase name used by the info service
func (h Hit) Key() string {
	return strings.ToLower(h.Name)
}

// Pick casts a ray through the given normalized device coordinates and
// returns the nearest sun or body it meets.
func Pick(w *World, cam *CameraRig, ndcX, ndcY float64) (Hit, bool) {
	origin, dir := cam.Ray(ndcX, ndcY)

	best := Hit{Index: -1, Distance: math.Inf(1)}
	found := false

	if t, ok := intersectSphere(origin, dir, mgl64.Vec3{}, w.Sun.Radius); ok && t < best.Distance {
		best = Hit{Kind: HitSun, Index: -1, Name: w.Sun.Name, Distance: t}
		found = true
	}
	for i, body := range w.Bodies {
		t, ok := intersectSphere(origin, dir, body.Position, body.BoundingRadius())
		if ok && t < best.Distance {
			best = Hit{Kind: HitBody, Index: i, Name: body.Name, Distance: t}
			found = true
		}
	}
	return best, found
}

// intersectSphere returns the distance along a unit ray to the first
// intersection in front of the origin
func intersectSphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
