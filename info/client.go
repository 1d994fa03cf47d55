package info

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the service answers without a body name
var ErrNotFound = errors.New("body not found")

// SunInfo is the payload of GET /api/sun-info
type SunInfo struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	Diameter           string `json:"diameter"`
	Mass               string `json:"mass,omitempty"`
	SurfaceTemperature string `json:"surface_temperature"`
	CoreTemperature    string `json:"core_temperature,omitempty"`
	Age                string `json:"age"`
	Composition        string `json:"composition"`
	Description        string `json:"description"`
}

// PlanetInfo is the payload of GET /api/planet-info/{name}
type PlanetInfo struct {
	Name            string `json:"name"`
	Diameter        string `json:"diameter"`
	DistanceFromSun string `json:"distance_from_sun"`
	OrbitalPeriod   string `json:"orbital_period"`
	DayLength       string `json:"day_length"`
	Temperature     string `json:"temperature"`
	Moons           int    `json:"moons"`
	Description     string `json:"description"`
}

// Client reads descriptive text for bodies from the info service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service rooted at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SunInfo fetches the star's description
func (c *Client) SunInfo(ctx context.Context) (*SunInfo, error) {
	var out SunInfo
	if err := c.get(ctx, "/api/sun-info", &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		return nil, ErrNotFound
	}
	return &out, nil
}

// PlanetInfo fetches a planet's description by lowercase name
func (c *Client) PlanetInfo(ctx context.Context, name string) (*PlanetInfo, error) {
	path := "/api/planet-info/" + url.PathEscape(strings.ToLower(name))

	var out PlanetInfo
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("info service error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
