package frame_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/fieldtris/frame"
)

type countingSystem struct {
	ExecuteCount int
	TotalElapsed time.Duration
	log          *[]string
	name         string
}

func (s *countingSystem) Execute(f *frame.UpdateFrame) {
	s.ExecuteCount++
	s.TotalElapsed += f.Elapsed
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

type deferringSystem struct {
	log *[]string
}

func (s *deferringSystem) Execute(f *frame.UpdateFrame) {
	f.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var order []string
		scheduler := frame.NewScheduler()
		scheduler.Register(&countingSystem{log: &order, name: "input"})
		scheduler.Register(&deferringSystem{log: &order})
		scheduler.Register(&countingSystem{log: &order, name: "gravity"})

		scheduler.Once(16 * time.Millisecond)

		want := []string{"input", "gravity", "deferred"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], order[i])
			}
		}

		scheduler.Once(16 * time.Millisecond)
		if len(order) != 6 {
			t.Errorf("expected deferred work to be flushed once per frame, got %v", order)
		}
	})

	t.Run("elapsed time reaches systems", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(10 * time.Millisecond)
		scheduler.Once(15 * time.Millisecond)

		if counter.ExecuteCount != 2 {
			t.Errorf("expected 2 executions, got %d", counter.ExecuteCount)
		}
		if counter.TotalElapsed != 25*time.Millisecond {
			t.Errorf("expected 25ms total, got %s", counter.TotalElapsed)
		}
	})

	t.Run("frame numbers", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		var numbers []uint64
		scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
			numbers = append(numbers, f.Number)
		}))
		scheduler.Once(0)
		scheduler.Once(0)
		if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 2 {
			t.Errorf("expected frames [1 2], got %v", numbers)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := frame.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(frame.SystemFunc(func(*frame.UpdateFrame) {}))

	stats := scheduler.Stats()
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any run, got %s", stats.Systems[0].MinDuration)
	}

	for range 3 {
		scheduler.Once(time.Millisecond)
	}

	stats = scheduler.Stats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", stats.Frames)
	}
	if stats.Systems[0].Name != "countingSystem" {
		t.Errorf("expected name countingSystem, got %s", stats.Systems[0].Name)
	}
	if stats.Systems[1].Name != "SystemFunc" {
		t.Errorf("expected name SystemFunc, got %s", stats.Systems[1].Name)
	}
	for _, s := range stats.Systems {
		if s.ExecutionCount != 3 {
			t.Errorf("%s: expected 3 executions, got %d", s.Name, s.ExecutionCount)
		}
		if s.MinDuration > s.MaxDuration {
			t.Errorf("%s: min %s above max %s", s.Name, s.MinDuration, s.MaxDuration)
		}
	}
}

func TestCommands(t *testing.T) {
	scheduler := frame.NewScheduler()
	var ran []int
	scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
		f.Commands.Defer(func() {
			ran = append(ran, 1)
			f.Commands.Defer(func() { ran = append(ran, 2) })
		})
		if f.Commands.Len() != 1 {
			t.Errorf("expected 1 queued command, got %d", f.Commands.Len())
		}
	}))

	scheduler.Once(0)
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Errorf("expected nested defers to run in the same flush, got %v", ran)
	}
}
