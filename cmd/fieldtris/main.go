package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/debugui"
	debugui_ebiten "github.com/plus3/fieldtris/debugui/ebiten"
	"github.com/plus3/fieldtris/session"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path of the TOML config file.")
	seed := flag.Uint64("seed", 0, "Seed for the figure generator (0 keeps the configured seed).")
	catalog := flag.String("catalog", "", "Shape catalog: classic or standard.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	writeConfig := flag.String("write-config", "", "Write the effective config to this path and exit.")
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
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote config to %s", *writeConfig)
		return
	}

	game := &Game{
		cfg:  cfg,
		keys: session.NewKeyQueue(16),
	}

	var opts []session.Option
	if cfg.Debug {
		game.imgui = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		game.overlay = &debugui.ImguiSystem{}
		opts = append(opts, session.WithSystems(game.overlay))
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	game.session, err = session.New(cfg, game.keys, opts...)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	if game.overlay != nil {
		game.overlay.Add(debugui.NewFieldInspector(game.session.Engine).Render)
		game.overlay.Add(debugui.NewPerformanceStats(game.session.Scheduler, 120).Render)
	}

	log.Printf("Starting %dx%d field, %s catalog, step %dms",
		cfg.Field.Width, cfg.Field.Height, cfg.Field.Catalog, cfg.Field.StepMS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
