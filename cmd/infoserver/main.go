package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"solarsystem/infoserver"
)

func main() {
	config := infoserver.DefaultConfig()

	// Parse command line flags
	addr := flag.String("addr", "", "Listen address (or set SOLAR_ADDR env var)")
	static := flag.String("static", "", "Directory with the wasm build of the viewer, served under /app")
	origins := flag.String("origins", strings.Join(config.AllowOrigins, ","), "Comma separated CORS origins")
	rateLimit := flag.Float64("rate", config.RateLimit, "Requests per second allowed per client")
	burst := flag.Int("burst", config.Burst, "Burst size per client")
	release := flag.Bool("release", false, "Run gin in release mode")
	flag.Parse()

	// Get listen address from flag or environment
	listen := *addr
	if listen == "" {
		listen = os.Getenv("SOLAR_ADDR")
	}
	if listen != "" {
		config.Addr = listen
	}

	config.StaticDir = *static
	config.AllowOrigins = splitList(*origins)
	config.RateLimit = *rateLimit
	config.Burst = *burst

	if *release {
		gin.SetMode(gin.ReleaseMode)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("   3D ANIMATED SOLAR SYSTEM - INFO SERVICE")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("   API:     http://localhost%s/api/planet-info/earth\n", config.Addr)
	fmt.Printf("   Metrics: http://localhost%s/metrics\n", config.Addr)
	if config.StaticDir != "" {
		fmt.Printf("   Viewer:  http://localhost%s/app/\n", config.Addr)
	}
	fmt.Println(strings.Repeat("=", 60))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infoserver.NewServer(config).Run(ctx); err != nil {
		log.Fatalf("Info service stopped: %v", err)
	}
	log.Println("Info service shut down")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
