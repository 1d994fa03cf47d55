package infoserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Config holds the info server settings
type Config struct {
	// Addr is the listen address
	Addr string

	// StaticDir, when set, is served under /app (the wasm build of the viewer)
	StaticDir string

	// AllowOrigins lists the browser origins allowed by CORS
	AllowOrigins []string

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64

	// Burst is the per-client burst size
	Burst int
}

// DefaultConfig matches the original development server on port 5000
func DefaultConfig() Config {
	return Config{
		Addr:         ":5000",
		AllowOrigins: []string{"http://localhost:5000", "http://localhost:8080"},
		RateLimit:    20,
		Burst:        40,
	}
}

// Server is the descriptive-data service
type Server struct {
	config  Config
	metrics *MetricsCollector
	limiter *IPRateLimiter
	router  *gin.Engine
}

// NewServer builds the router with CORS, rate limiting and metrics
func NewServer(config Config) *Server {
	// cors.New panics on an empty origin list
	if len(config.AllowOrigins) == 0 {
		config.AllowOrigins = DefaultConfig().AllowOrigins
		log.Printf("No CORS origins configured, using %v", config.AllowOrigins)
	}

	s := &Server{
		config:  config,
		metrics: NewMetricsCollector(),
		limiter: NewIPRateLimiter(rate.Limit(config.RateLimit), config.Burst),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	r.GET("/metrics", s.metrics.Handler())

	api := r.Group("/api")
	api.Use(s.metrics.Middleware(), s.limiter.Middleware(s.metrics))
	{
		api.GET("/sun-info", GetSunInfo)
		api.GET("/planet-info/:name", s.GetPlanetInfo)
		api.GET("/planets", GetPlanets)
	}

	if s.config.StaticDir != "" {
		r.Static("/app", s.config.StaticDir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/app/")
		})
	}

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// sweepLimiter evicts idle client buckets until ctx is done
func (s *Server) sweepLimiter(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.limiter.Sweep(limiterIdleTTL); n > 0 {
				log.Printf("Evicted %d idle rate limiter entries", n)
			}
		}
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Solar system info service listening on %s", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()
	go s.sweepLimiter(ctx, limiterSweepInterval)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
