package info

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sun-info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Sun","type":"G-type main-sequence star (G2V)","diameter":"1,392,700 km","surface_temperature":"5,500°C","age":"4.6 billion years","composition":"73% Hydrogen, 25% Helium","description":"The star at the center."}`))
	})
	mux.HandleFunc("/api/planet-info/earth", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Earth","diameter":"12,742 km","distance_from_sun":"149.6 million km","orbital_period":"365.25 days","day_length":"24 hours","temperature":"15°C average","moons":1,"description":"Our home."}`))
	})
	mux.HandleFunc("/api/planet-info/pluto", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/api/planet-info/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":`))
	})
	mux.HandleFunc("/api/planet-info/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSunInfo(t *testing.T) {
	srv := newTestService(t)
	client := NewClient(srv.URL + "/")

	sun, err := client.SunInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sun", sun.Name)
	assert.Equal(t, "4.6 billion years", sun.Age)
}

func TestClientPlanetInfo(t *testing.T) {
	srv := newTestService(t)
	client := NewClient(srv.URL)

	planet, err := client.PlanetInfo(context.Background(), "Earth")
	require.NoError(t, err)
	assert.Equal(t, "Earth", planet.Name)
	assert.Equal(t, 1, planet.Moons)
	assert.Equal(t, "365.25 days", planet.OrbitalPeriod)
}

func TestClientErrors(t *testing.T) {
	srv := newTestService(t)
	client := NewClient(srv.URL)

	tests := []struct {
		name     string
		body     string
		notFound bool
	}{
		{"empty object is not found", "pluto", true},
		{"unknown route", "vulcan", false},
		{"malformed json", "broken", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planet, err := client.PlanetInfo(context.Background(), tt.body)
			require.Error(t, err)
			assert.Nil(t, planet)
			if tt.notFound {
				assert.ErrorIs(t, err, ErrNotFound)
			}
		})
	}
}

func TestClientHonoursContext(t *testing.T) {
	srv := newTestService(t)
	client := NewClient(srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.PlanetInfo(ctx, "slow")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestContentMapping(t *testing.T) {
	sun := ContentFromSun(&SunInfo{
		Name: "Sun", Type: "G2V", Diameter: "1,392,700 km", SurfaceTemperature: "5,500°C",
		Age: "4.6 billion years", Composition: "H, He", Description: "Star",
	})
	assert.Equal(t, "Center of the Solar System", sun.Distance)
	assert.Equal(t, "4.6 billion years", sun.Period)
	assert.Equal(t, "G2V", sun.DayLength)
	assert.Equal(t, "H, He", sun.Moons)

	sunRows := sun.Rows()
	require.Len(t, sunRows, 6)
	labels := make([]string, 0, len(sunRows))
	for _, row := range sunRows {
		labels = append(labels, row[0])
	}
	assert.Equal(t, []string{"Size", "Distance", "Age", "Type", "Temperature", "Composition"}, labels)
	assert.Equal(t, [2]string{"Age", "4.6 billion years"}, sunRows[2])
	assert.Equal(t, [2]string{"Composition", "H, He"}, sunRows[5])

	planet := ContentFromPlanet(&PlanetInfo{Name: "Mars", Moons: 2, DayLength: "24.6 hours"})
	assert.Equal(t, "2", planet.Moons)
	assert.Equal(t, "24.6 hours", planet.DayLength)

	rows := planet.Rows()
	require.Len(t, rows, 6)
	assert.Equal(t, "Period", rows[2][0])
	assert.Equal(t, "Moons", rows[5][0])
	assert.Equal(t, "2", rows[5][1])
}
