package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-raymarcher/pkg/config"
	"github.com/df07/go-raymarcher/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 0, "Port to serve on (0 = config value)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	scenesDir := flag.String("scenes", "", "Directory of YAML scene files")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Web.Port = *port
	}
	if *scenesDir != "" {
		cfg.ScenesDir = *scenesDir
	}

	webServer := server.NewServer(cfg)

	log.Printf("SDF Raymarcher Web Server")
	log.Printf("Render with http://localhost:%d/api/render?scene=%s", cfg.Web.Port, cfg.Scene)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
