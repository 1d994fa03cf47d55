package info

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Fetcher is the read side of the info service
type Fetcher interface {
	SunInfo(ctx context.Context) (*SunInfo, error)
	PlanetInfo(ctx context.Context, name string) (*PlanetInfo, error)
}

// Selection names what the user clicked
type Selection struct {
	Sun  bool
	Name string // lowercase body name; ignored for the sun
}

// Content is the fixed set of fields the panel displays
type Content struct {
	Name        string
	Size        string
	Distance    string
	Period      string
	DayLength   string
	Temperature string
	Moons       string
	Description string

	// Sun relabels Period, DayLength and Moons as age, star type and composition
	Sun bool
}

// Rows returns the labelled fields in display order
func (c Content) Rows() [][2]string {
	if c.Sun {
		return [][2]string{
			{"Size", c.Size},
			{"Distance", c.Distance},
			{"Age", c.Period},
			{"Type", c.DayLength},
			{"Temperature", c.Temperature},
			{"Composition", c.Moons},
		}
	}
	return [][2]string{
		{"Size", c.Size},
		{"Distance", c.Distance},
		{"Period", c.Period},
		{"Day length", c.DayLength},
		{"Temperature", c.Temperature},
		{"Moons", c.Moons},
	}
}

// ContentFromSun maps the star's payload onto the panel fields
func ContentFromSun(s *SunInfo) Content {
	return Content{
		Name:        s.Name,
		Size:        s.Diameter,
		Distance:    "Center of the Solar System",
		Period:      s.Age,
		DayLength:   s.Type,
		Temperature: s.SurfaceTemperature,
		Moons:       s.Composition,
		Description: s.Description,
		Sun:         true,
	}
}

// ContentFromPlanet maps a planet's payload onto the panel fields
func ContentFromPlanet(p *PlanetInfo) Content {
	return Content{
		Name:        p.Name,
		Size:        p.Diameter,
		Distance:    p.DistanceFromSun,
		Period:      p.OrbitalPeriod,
		DayLength:   p.DayLength,
		Temperature: p.Temperature,
		Moons:       fmt.Sprintf("%d", p.Moons),
		Description: p.Description,
	}
}

type result struct {
	gen     uint64
	content Content
	err     error
}

// Panel bridges selections to the info service. Fetches run on their own
// goroutines; results only reach the panel fields through Apply, which the
// frame loop calls.
type Panel struct {
	Content Content
	Visible bool

	fetcher Fetcher
	timeout time.Duration
	results chan result
	gen     uint64
	cancel  context.CancelFunc
}

// NewPanel creates a hidden panel backed by fetcher
func NewPanel(fetcher Fetcher, timeout time.Duration) *Panel {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Panel{
		fetcher: fetcher,
		timeout: timeout,
		results: make(chan result, 4),
	}
}

// Select starts a fetch for sel, abandoning any fetch still in flight
func (p *Panel) Select(sel Selection) {
	if p.cancel != nil {
		p.cancel()
	}
	p.gen++
	gen := p.gen

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	p.cancel = cancel

	go func() {
		defer cancel()
		content, err := p.fetch(ctx, sel)
		select {
		case p.results <- result{gen: gen, content: content, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (p *Panel) fetch(ctx context.Context, sel Selection) (Content, error) {
	if sel.Sun {
		s, err := p.fetcher.SunInfo(ctx)
		if err != nil {
			return Content{}, err
		}
		return ContentFromSun(s), nil
	}
	planet, err := p.fetcher.PlanetInfo(ctx, sel.Name)
	if err != nil {
		return Content{}, err
	}
	return ContentFromPlanet(planet), nil
}

// Apply drains finished fetches. Stale and failed results leave the panel as
// it was. It reports whether the content changed.
func (p *Panel) Apply() bool {
	changed := false
	for {
		select {
		case r := <-p.results:
			if r.gen != p.gen {
				continue
			}
			if r.err != nil {
				log.Printf("Info request failed: %v", r.err)
				continue
			}
			p.Content = r.content
			p.Visible = true
			changed = true
		default:
			return changed
		}
	}
}

// Close hides the panel; its content is kept for the next open
func (p *Panel) Close() {
	p.Visible = false
}
