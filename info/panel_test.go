package info

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu        sync.Mutex
	calls     []string
	cancelled chan string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{cancelled: make(chan string, 4)}
}

func (f *fakeFetcher) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeFetcher) SunInfo(ctx context.Context) (*SunInfo, error) {
	f.record("sun")
	return &SunInfo{Name: "Sun", Age: "4.6 billion years", Type: "G2V"}, nil
}

func (f *fakeFetcher) PlanetInfo(ctx context.Context, name string) (*PlanetInfo, error) {
	f.record(name)
	switch name {
	case "earth":
		return &PlanetInfo{Name: "Earth", Moons: 1}, nil
	case "slow":
		<-ctx.Done()
		f.cancelled <- name
		return nil, ctx.Err()
	default:
		return nil, errors.New("service unavailable")
	}
}

func applyEventually(t *testing.T, p *Panel) {
	t.Helper()
	require.Eventually(t, p.Apply, time.Second, 5*time.Millisecond)
}

func TestPanelSelectPlanet(t *testing.T) {
	fetcher := newFakeFetcher()
	p := NewPanel(fetcher, time.Second)
	require.False(t, p.Visible)

	p.Select(Selection{Name: "earth"})
	applyEventually(t, p)

	assert.True(t, p.Visible)
	assert.Equal(t, "Earth", p.Content.Name)
	assert.Equal(t, "1", p.Content.Moons)
}

func TestPanelSelectSun(t *testing.T) {
	p := NewPanel(newFakeFetcher(), time.Second)

	p.Select(Selection{Sun: true})
	applyEventually(t, p)

	assert.Equal(t, "Sun", p.Content.Name)
	assert.Equal(t, "Center of the Solar System", p.Content.Distance)
}

func TestPanelNoRequestWithoutSelection(t *testing.T) {
	fetcher := newFakeFetcher()
	p := NewPanel(fetcher, 0)

	assert.False(t, p.Apply())
	assert.Equal(t, 0, fetcher.callCount())
	assert.Equal(t, 5*time.Second, p.timeout)
}

func TestPanelFailureKeepsContent(t *testing.T) {
	p := NewPanel(newFakeFetcher(), time.Second)
	p.Select(Selection{Name: "earth"})
	applyEventually(t, p)

	p.Select(Selection{Name: "mars"})
	require.Eventually(t, func() bool { return len(p.results) > 0 }, time.Second, 5*time.Millisecond)

	assert.False(t, p.Apply())
	assert.Equal(t, "Earth", p.Content.Name)
	assert.True(t, p.Visible)
}

func TestPanelNewSelectionCancelsPrevious(t *testing.T) {
	fetcher := newFakeFetcher()
	p := NewPanel(fetcher, 10*time.Second)

	p.Select(Selection{Name: "slow"})
	p.Select(Selection{Name: "earth"})

	select {
	case name := <-fetcher.cancelled:
		assert.Equal(t, "slow", name)
	case <-time.After(time.Second):
		t.Fatal("first request was not cancelled")
	}

	applyEventually(t, p)
	assert.Equal(t, "Earth", p.Content.Name)
}

func TestPanelIgnoresStaleResults(t *testing.T) {
	p := NewPanel(newFakeFetcher(), time.Second)
	p.Select(Selection{Name: "earth"})
	applyEventually(t, p)

	p.results <- result{gen: p.gen - 1, content: Content{Name: "Stale"}}
	assert.False(t, p.Apply())
	assert.Equal(t, "Earth", p.Content.Name)
}

func TestPanelClose(t *testing.T) {
	p := NewPanel(newFakeFetcher(), time.Second)
	p.Select(Selection{Name: "earth"})
	applyEventually(t, p)

	p.Close()
	assert.False(t, p.Visible)
	assert.Equal(t, "Earth", p.Content.Name)
}
