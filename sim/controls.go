package sim

import "math"

// Slider bounds for the speed multipliers
const (
	MinSpeedMultiplier  = 0.0
	MaxSpeedMultiplier  = 5.0
	SpeedMultiplierStep = 0.1
)

// Toggles holds the global UI state. Only control handlers write it; the
// updaters read it every frame.
type Toggles struct {
	OrbitSpeed        float64
	RotationSpeed     float64
	ShowOrbits        bool
	ShowLabels        bool
	ShowFlares        bool
	ShowShootingStars bool
	ShowCosmicRays    bool
}

// DefaultToggles has every effect visible at normal speed
func DefaultToggles() Toggles {
	return Toggles{
		OrbitSpeed:        1,
		RotationSpeed:     1,
		ShowOrbits:        true,
		ShowLabels:        true,
		ShowFlares:        true,
		ShowShootingStars: true,
		ShowCosmicRays:    true,
	}
}

// Toggle identifies one of the boolean visibility switches
type Toggle int

const (
	ToggleOrbits Toggle = iota
	ToggleLabels
	ToggleFlares
	ToggleShootingStars
	ToggleCosmicRays
)

func (t Toggle) String() string {
	switch t {
	case ToggleOrbits:
		return "orbits"
	case ToggleLabels:
		return "labels"
	case ToggleFlares:
		return "flares"
	case ToggleShootingStars:
		return "shooting stars"
	case ToggleCosmicRays:
		return "cosmic rays"
	}
	return "unknown"
}

// Set writes a visibility switch
func (t *Toggles) Set(which Toggle, on bool) {
	if flag := t.flag(which); flag != nil {
		*flag = on
	}
}

// Flip inverts a visibility switch and returns the new value
func (t *Toggles) Flip(which Toggle) bool {
	flag := t.flag(which)
	if flag == nil {
		return false
	}
	*flag = !*flag
	return *flag
}

// Get reads a visibility switch
func (t *Toggles) Get(which Toggle) bool {
	if flag := t.flag(which); flag != nil {
		return *flag
	}
	return false
}

func (t *Toggles) flag(which Toggle) *bool {
	switch which {
	case ToggleOrbits:
		return &t.ShowOrbits
	case ToggleLabels:
		return &t.ShowLabels
	case ToggleFlares:
		return &t.ShowFlares
	case ToggleShootingStars:
		return &t.ShowShootingStars
	case ToggleCosmicRays:
		return &t.ShowCosmicRays
	}
	return nil
}

// SetOrbitSpeed stores the orbit slider value
func (t *Toggles) SetOrbitSpeed(v float64) {
	t.OrbitSpeed = clampMultiplier(v)
}

// SetRotationSpeed stores the rotation slider value
func (t *Toggles) SetRotationSpeed(v float64) {
	t.RotationSpeed = clampMultiplier(v)
}

func clampMultiplier(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	v = math.Max(MinSpeedMultiplier, math.Min(MaxSpeedMultiplier, v))
	// Keep slider steps on clean tenths
	return math.Round(v/SpeedMultiplierStep) * SpeedMultiplierStep
}
