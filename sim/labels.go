package sim

// Label is a body name anchored to a screen position
type Label struct {
	Text string
	X, Y float64
}

// ProjectLabels places a label just above every body visible to the camera.
// Nothing is returned when labels are switched off.
func ProjectLabels(w *World, cam *CameraRig, dst []Label) []Label {
	dst = dst[:0]
	if !w.Toggles.ShowLabels {
		return dst
	}
	width, height := cam.Viewport()
	for _, body := range w.Bodies {
		x, y, ok := cam.Project(body.Position)
		if !ok || x < 0 || y < 0 || x > float64(width) || y > float64(height) {
			continue
		}
		r := cam.ProjectedRadius(body.Position, body.BoundingRadius())
		dst = append(dst, Label{Text: body.Name, X: x, Y: y - r - 6})
	}
	return dst
}
