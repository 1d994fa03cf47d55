package game

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"solarsystem/sim"
)

// Config holds viewer configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int `toml:"screen_height"`

	// InfoServiceURL is the base URL of the descriptive-data service
	InfoServiceURL string `toml:"info_service_url"`

	// InfoTimeout bounds a single info request
	InfoTimeout time.Duration `toml:"info_timeout"`

	// Seed drives every random effect; zero picks one from the clock
	Seed int64 `toml:"seed"`

	// CatalogPath optionally replaces the bundled body catalog
	CatalogPath string `toml:"catalog_path"`

	// ProfileOnFPSDrop captures a CPU profile and trace when the frame rate sags
	ProfileOnFPSDrop bool `toml:"profile_on_fps_drop"`

	// FPSDropThreshold is the frame rate below which a capture is triggered
	FPSDropThreshold float64 `toml:"fps_drop_threshold"`

	// Camera holds the static camera rig parameters
	Camera sim.CameraConfig `toml:"-"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1280,
		ScreenHeight:     800,
		InfoServiceURL:   "http://localhost:5000",
		InfoTimeout:      5 * time.Second,
		FPSDropThreshold: 45,
		Camera:           sim.DefaultCameraConfig(),
	}
}

// LoadConfig overlays the TOML file at path onto the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if config.ScreenWidth <= 0 || config.ScreenHeight <= 0 {
		return config, fmt.Errorf("invalid screen size %dx%d", config.ScreenWidth, config.ScreenHeight)
	}
	return config, nil
}

// LoadCatalog reads CatalogPath, or the bundled catalog when it is empty
func (c Config) LoadCatalog() (*sim.Catalog, error) {
	if c.CatalogPath == "" {
		return sim.DefaultCatalog()
	}
	data, err := os.ReadFile(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return sim.ParseCatalog(data)
}
