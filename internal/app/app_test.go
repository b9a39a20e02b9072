package app_test

import (
	"errors"
	"testing"
	"time"

	"github.com/calyx/engine/internal/app"
	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/core/event"
)

type frameCounter struct {
	ecs.SystemBase
	frames int
	limit  int
}

func (s *frameCounter) Update(ecs.FrameTimeInfo) bool {
	s.frames++
	return s.frames < s.limit
}

func TestSetFixedTimeStepRejectsNonPositive(t *testing.T) {
	a := app.New(nil)
	if err := a.SetFixedTimeStep(0); !errors.Is(err, ecs.ErrInvalidTimeStep) {
		t.Fatalf("err = %v, want ErrInvalidTimeStep", err)
	}
	if err := a.SetFixedTimeStep(-0.1); !errors.Is(err, ecs.ErrInvalidTimeStep) {
		t.Fatalf("err = %v, want ErrInvalidTimeStep", err)
	}
	if err := a.SetFixedTimeStep(0.01); err != nil {
		t.Fatalf("valid step rejected: %v", err)
	}
}

func TestRunStopsWhenAllWorldsFinish(t *testing.T) {
	a := app.New(nil)
	w := a.AddWorld()
	counter := ecs.AddSystem(w, &frameCounter{limit: 3})

	a.Run()

	if counter.frames != 3 {
		t.Fatalf("system ran %d frames, want 3", counter.frames)
	}
}

func TestRunWithCallback(t *testing.T) {
	a := app.New(nil)
	w := a.AddWorld()
	ecs.AddSystem(w, &frameCounter{limit: 2})

	frames := 0
	a.RunWith(func(info ecs.FrameTimeInfo) {
		frames++
		if info.SubstepTime != app.DefaultFixedTimeStep {
			t.Fatalf("substep time = %v, want default", info.SubstepTime)
		}
	})
	if frames == 0 {
		t.Fatalf("callback never ran")
	}
}

func TestQuitStopsTheLoop(t *testing.T) {
	a := app.New(nil)
	w := a.AddWorld()
	ecs.AddSystem(w, &frameCounter{limit: 1 << 30})

	done := make(chan struct{})
	go func() {
		a.Run()
		close(done)
	}()
	a.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop after Quit")
	}
}

func TestFixedSubstepAccumulation(t *testing.T) {
	a := app.New(nil)
	w := a.AddWorld()
	ecs.AddSystem(w, &frameCounter{limit: 1 << 30})
	if err := a.SetFixedTimeStep(1e-6); err != nil {
		t.Fatalf("set fixed time step: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	a.RunOnce()

	info := a.TimeInfo()
	if info.DeltaTime <= 0 {
		t.Fatalf("delta time = %v, want > 0", info.DeltaTime)
	}
	if info.SubstepCount < 1 {
		t.Fatalf("substep count = %d, want at least one substep after sleeping", info.SubstepCount)
	}
	if info.GlobalTime < info.DeltaTime {
		t.Fatalf("global time %v must accumulate deltas", info.GlobalTime)
	}
}

func TestWorldEventsReachApplicationBus(t *testing.T) {
	a := app.New(nil)
	w := a.AddWorld()

	finished := 0
	event.Subscribe(a.Events(), func(ecs.WorldFinished) { finished++ })

	ecs.AddSystem(w, &frameCounter{limit: 1})
	a.Run()
	// The finish event is emitted on the last frame; one more frame's
	// dispatch delivers it.
	a.RunOnce()

	if finished != 1 {
		t.Fatalf("WorldFinished delivered %d times, want 1", finished)
	}
}
