package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"solarsystem/game"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Optional TOML file overriding the default viewer settings")
	infoURL := flag.String("info-url", "", "Info service base URL (or set SOLAR_INFO_URL env var)")
	seed := flag.Int64("seed", 0, "Random seed for effects (0 picks one from the clock)")
	profileOnDrop := flag.Bool("profile-on-drop", false, "Capture a CPU profile and trace when FPS drops")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Info service URL from flag or environment
	url := *infoURL
	if url == "" {
		url = os.Getenv("SOLAR_INFO_URL")
	}
	if url != "" {
		config.InfoServiceURL = url
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *profileOnDrop {
		config.ProfileOnFPSDrop = true
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("   3D ANIMATED SOLAR SYSTEM")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("   Info service: %s\n", config.InfoServiceURL)
	fmt.Println("   Click a planet or press 1-8 for details, 0 for the sun")
	fmt.Println(strings.Repeat("=", 60))

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("3D Animated Solar System")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
