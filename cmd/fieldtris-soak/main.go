// Command fieldtris-soak plays the engine headless with random input and
// reports whether the field stayed consistent.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/field"
	"github.com/plus3/fieldtris/frame"
	"github.com/plus3/fieldtris/session"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	maxFrames := flag.Int("frames", 0, "Stop after this many frames (0 runs for the full duration).")
	frameTime := flag.Duration("frame-time", time.Second/60, "Simulated time per frame.")
	seed := flag.Uint64("seed", 1, "Seed for figures and input.")
	keyRate := flag.Float64("key-rate", 0.2, "Probability of a key press per frame.")
	configPath := flag.String("config", config.DefaultPath, "Path of the TOML config file.")
	catalog := flag.String("catalog", "", "Shape catalog: classic or standard.")
	restart := flag.Bool("restart", true, "Start a new game when one ends.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Field.Seed = *seed
	if *catalog != "" {
		cfg.Field.Catalog = *catalog
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	log.Println("Starting soak run...")

	keys := session.NewKeyQueue(1)
	monkey := newMonkey(*seed, *keyRate, keys)
	checker := &invariantSystem{restart: *restart}

	sess, err := session.New(cfg, keys, session.WithSystems(checker))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	checker.engine = sess.Engine

	report := &Report{
		Duration:   *duration,
		FrameTime:  *frameTime,
		Seed:       *seed,
		Catalog:    cfg.Field.Catalog,
		FieldSize:  fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height),
		UpdateTime: Stats{Samples: make([]time.Duration, 0)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if *maxFrames > 0 && report.Frames >= int64(*maxFrames) {
				break Loop
			}
			monkey.press()

			updateStart := time.Now()
			sess.Step(*frameTime)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.Frames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Collect(checker, sess.Scheduler.Stats(), monkey.pressed)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(checker.violations) > 0 {
		log.Fatalf("%d invariant violations", len(checker.violations))
	}
}

// monkey presses random bound keys.
type monkey struct {
	rng     *rand.Rand
	rate    float64
	keys    *session.KeyQueue
	choices []field.Key
	pressed int64
}

func newMonkey(seed uint64, rate float64, keys *session.KeyQueue) *monkey {
	return &monkey{
		rng:  rand.New(rand.NewPCG(seed, seed+1)),
		rate: rate,
		keys: keys,
		choices: []field.Key{
			'w', 'g', 'h', 'a', 'd', 's', field.KeySpace,
			field.KeyUp, field.KeyLeft, field.KeyRight, field.KeyDown,
		},
	}
}

func (m *monkey) press() {
	if m.rng.Float64() >= m.rate {
		return
	}
	if m.keys.Push(m.choices[m.rng.IntN(len(m.choices))]) {
		m.pressed++
	}
}

// invariantSystem verifies the field after every frame and restarts
// finished games.
type invariantSystem struct {
	engine     *field.Engine
	restart    bool
	violations []string
	games      int
	totals     field.Stats
}

func (s *invariantSystem) Execute(f *frame.UpdateFrame) {
	if err := s.engine.Verify(); err != nil {
		s.violations = append(s.violations, fmt.Sprintf("frame %d: %v", f.Number, err))
	}
	if s.engine.GameOver() && s.restart {
		s.finishGame()
		s.engine.Reset()
	}
}

func (s *invariantSystem) finishGame() {
	s.games++
	s.addStats()
}

// addStats folds the current game's counters into the totals.
func (s *invariantSystem) addStats() {
	st := s.engine.Stats()
	s.totals.Spawns += st.Spawns
	s.totals.Landings += st.Landings
	s.totals.GravityTicks += st.GravityTicks
	s.totals.RejectedRotations += st.RejectedRotations
	s.totals.DegradedSpawns += st.DegradedSpawns
}
