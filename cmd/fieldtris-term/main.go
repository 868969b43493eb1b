package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/plus3/fieldtris/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path of the TOML config file.")
	seed := flag.Uint64("seed", 0, "Seed for the figure generator (0 keeps the configured seed).")
	catalog := flag.String("catalog", "", "Shape catalog: classic or standard.")
	logPath := flag.String("log", "", "Append log output to this file while the terminal is in use.")
	interval := flag.Duration("interval", 16*time.Millisecond, "Frame interval.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Field.Seed = *seed
	}
	if *catalog != "" {
		cfg.Field.Catalog = *catalog
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	// the screen owns the terminal, so log lines go to a file or nowhere
	logOut := io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	term, err := newTerminal(cfg)
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	log.SetOutput(logOut)
	log.Printf("Starting %dx%d field, %s catalog, step %dms",
		cfg.Field.Width, cfg.Field.Height, cfg.Field.Catalog, cfg.Field.StepMS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	term.Run(ctx, cancel, *interval)

	log.SetOutput(os.Stderr)
	stats := term.session.Engine.Stats()
	log.Printf("Game finished: %d figures, %d landings", stats.Spawns, stats.Landings)
}
