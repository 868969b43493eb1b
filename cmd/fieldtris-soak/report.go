package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/fieldtris/frame"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	FrameTime time.Duration
	Seed      uint64
	Catalog   string
	FieldSize string

	// Results
	Frames        int64
	TotalTime     time.Duration
	UpdateTime    Stats
	KeysPressed   int64
	GamesFinished int
	Spawns        int
	Landings      int
	GravityTicks  int
	Rejected      int
	Degraded      int
	Violations    []string
	Systems       []frame.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect folds the finished games and the running one into the report.
// Only games that ended count towards GamesFinished.
func (r *Report) Collect(checker *invariantSystem, sched *frame.SchedulerStats, keys int64) {
	checker.addStats()
	r.GamesFinished = checker.games
	r.Spawns = checker.totals.Spawns
	r.Landings = checker.totals.Landings
	r.GravityTicks = checker.totals.GravityTicks
	r.Rejected = checker.totals.RejectedRotations
	r.Degraded = checker.totals.DegradedSpawns
	r.Violations = checker.violations
	r.Systems = sched.Systems
	r.KeysPressed = keys
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Field Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Simulated Frame Time:** {{.FrameTime}}
- **Seed:** {{.Seed}}
- **Catalog:** {{.Catalog}}
- **Field:** {{.FieldSize}}

## Play
- **Frames:** {{.Frames}} ({{simulated .Frames .FrameTime}} simulated)
- **Keys Pressed:** {{.KeysPressed}}
- **Games Finished:** {{.GamesFinished}}
- **Figures Spawned:** {{.Spawns}}
- **Landings:** {{.Landings}}
- **Gravity Ticks:** {{.GravityTicks}}
- **Rejected Rotations:** {{.Rejected}}
- **Degraded Spawns:** {{.Degraded}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Num GC:         {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

## Invariant Violations: {{len .Violations}}
{{range .Violations}}- {{.}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"simulated": func(frames int64, frameTime time.Duration) string {
			return (time.Duration(frames) * frameTime).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
