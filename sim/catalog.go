package sim

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var defaultCatalogData []byte

const defaultAtmosphereScale = 1.1

// ErrEmptyCatalog is returned when no body in a catalog survives validation
var ErrEmptyCatalog = errors.New("catalog contains no usable bodies")

// BodyEntry is one row of the body catalog as written in TOML
type BodyEntry struct {
	Name            string  `toml:"name"`
	Radius          float64 `toml:"radius"`
	Distance        float64 `toml:"distance"`
	OrbitSpeed      float64 `toml:"orbit_speed"`
	RotationSpeed   float64 `toml:"rotation_speed"`
	Color           string  `toml:"color"`
	AtmosphereColor string  `toml:"atmosphere_color"`
	AtmosphereSize  float64 `toml:"atmosphere_size"`
	HasAtmosphere   bool    `toml:"has_atmosphere"`
	HasRings        bool    `toml:"has_rings"`
}

// SunEntry describes the central star
type SunEntry struct {
	Name       string  `toml:"name"`
	Radius     float64 `toml:"radius"`
	Color      string  `toml:"color"`
	CoronaSize float64 `toml:"corona_size"`
}

// Catalog is the validated scene content
type Catalog struct {
	Sun    Sun
	Bodies []*CelestialBody
}

type rawCatalog struct {
	Sun    SunEntry         `toml:"sun"`
	Bodies []map[string]any `toml:"bodies"`
}

// DefaultCatalog parses the bundled eight-body catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogData)
}

// ParseCatalog decodes a TOML catalog. Each body is decoded and validated on
// its own so a malformed entry only drops that body.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	cat := &Catalog{Sun: sunFromEntry(raw.Sun)}

	for i, fields := range raw.Bodies {
		body, err := decodeBody(fields)
		if err != nil {
			log.Printf("Skipping catalog body #%d: %v", i, err)
			continue
		}
		cat.Bodies = append(cat.Bodies, body)
	}

	if len(cat.Bodies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return cat, nil
}

func decodeBody(fields map[string]any) (*CelestialBody, error) {
	encoded, err := toml.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode entry: %w", err)
	}

	var entry BodyEntry
	if err := toml.Unmarshal(encoded, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return NewCelestialBody(entry)
}

// Validate rejects entries that cannot produce a visible, orbiting body
func (e BodyEntry) Validate() error {
	numbers := []struct {
		field string
		value float64
	}{
		{"radius", e.Radius},
		{"distance", e.Distance},
		{"orbit_speed", e.OrbitSpeed},
		{"rotation_speed", e.RotationSpeed},
		{"atmosphere_size", e.AtmosphereSize},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s: %s must be finite, got %v", e.Name, n.field, n.value)
		}
	}

	switch {
	case e.Name == "":
		return errors.New("missing name")
	case e.Radius <= 0:
		return fmt.Errorf("%s: radius must be positive, got %v", e.Name, e.Radius)
	case e.Distance < 0:
		return fmt.Errorf("%s: distance must not be negative, got %v", e.Name, e.Distance)
	case e.HasAtmosphere && e.AtmosphereColor == "":
		return fmt.Errorf("%s: atmosphere enabled without a colour", e.Name)
	}
	return nil
}

func sunFromEntry(e SunEntry) Sun {
	sun := Sun{
		Name:       e.Name,
		Radius:     e.Radius,
		CoronaSize: e.CoronaSize,
		Color:      color.NRGBA{R: 253, G: 184, B: 19, A: 255},
	}
	if sun.Name == "" {
		sun.Name = "Sun"
	}
	if sun.Radius <= 0 {
		sun.Radius = 5
	}
	if sun.CoronaSize <= 1 {
		sun.CoronaSize = 1.6
	}
	if c, err := parseHexColor(e.Color); err == nil {
		sun.Color = c
	}
	return sun
}

func parseHexColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("failed to parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
