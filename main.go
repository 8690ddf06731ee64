package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"arbowling/internal/config"
	"arbowling/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	port := flag.Int("port", 0, "server port (overrides config)")
	simulate := flag.Bool("simulate", false, "play one headless game and print its events")
	seed := flag.Uint64("seed", 1, "random seed for -simulate")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	if *simulate {
		if err := runSimulation(cfg.Game.Engine(), *seed); err != nil {
			log.Fatalf("simulation error: %v", err)
		}
		return
	}

	sub, err := fs.Sub(static, "web/static")
	if err != nil {
		log.Fatalf("static fs: %v", err)
	}
	srv := server.New(cfg, sub)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
