// Package app drives one or more ECS worlds through a frame loop with
// fixed-substep time accounting. The application computes FrameTimeInfo each
// frame and hands it to every active world; the worlds never measure time
// themselves.
package app

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/core/event"
)

// DefaultFixedTimeStep is the substep duration used until SetFixedTimeStep
// is called, roughly one substep per frame at 60 FPS.
const DefaultFixedTimeStep = 1.0 / 60.0

// Application owns a set of worlds and updates them sequentially each frame.
// A world whose Update returns false has its active bit cleared; the loop
// ends when no active world remains or Quit is called.
type Application struct {
	worlds       []*ecs.World
	activeWorlds ecs.Bitset

	timeInfo      ecs.FrameTimeInfo
	lastFrameTime time.Time
	remainingTime float64

	bus     *event.Bus
	log     *zap.Logger
	running atomic.Bool
}

// New creates an application with no worlds. A nil logger disables logging.
func New(log *zap.Logger) *Application {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Application{
		bus:           event.NewBus(),
		log:           log,
		lastFrameTime: time.Now(),
	}
	a.timeInfo.SubstepTime = DefaultFixedTimeStep
	a.running.Store(true)
	return a
}

// Events returns the application's event bus. Worlds added through AddWorld
// emit their lifecycle events here; delivery happens at frame start.
func (a *Application) Events() *event.Bus {
	return a.bus
}

// Worlds returns the owned worlds in addition order.
func (a *Application) Worlds() []*ecs.World {
	return a.worlds
}

// TimeInfo returns the timing of the frame currently being processed.
func (a *Application) TimeInfo() ecs.FrameTimeInfo {
	return a.timeInfo
}

// SetFixedTimeStep sets the fixed substep duration in seconds. It returns
// ErrInvalidTimeStep when the value is not positive.
func (a *Application) SetFixedTimeStep(seconds float64) error {
	if seconds <= 0 {
		return ecs.ErrInvalidTimeStep
	}
	a.timeInfo.SubstepTime = seconds
	return nil
}

// AddWorld creates a new active world wired to the application's event bus.
func (a *Application) AddWorld() *ecs.World {
	return a.adopt(ecs.NewWorld())
}

// AddWorldWithCapacity is AddWorld with entity storage preallocated.
func (a *Application) AddWorldWithCapacity(entityCount int) *ecs.World {
	return a.adopt(ecs.NewWorldWithCapacity(entityCount))
}

func (a *Application) adopt(w *ecs.World) *ecs.World {
	w.SetEventBus(a.bus)
	a.worlds = append(a.worlds, w)
	a.activeWorlds.SetBit(len(a.worlds)-1, true)
	return w
}

// Run processes frames until every world finishes or Quit is called.
func (a *Application) Run() {
	a.log.Debug("application running")
	for a.RunOnce() {
	}
	a.log.Debug("application exiting")
}

// RunWith is Run with a per-frame callback, invoked after each frame with
// that frame's timing.
func (a *Application) RunWith(callback func(ecs.FrameTimeInfo)) {
	for a.RunOnce() {
		callback(a.timeInfo)
	}
}

// RunOnce processes a single frame: dispatch last frame's events, measure
// frame time, accumulate fixed substeps, and update every active world. It
// returns false when the loop should stop.
func (a *Application) RunOnce() bool {
	a.bus.SwapBuffers()
	a.bus.DispatchAll()

	now := time.Now()
	a.timeInfo.DeltaTime = now.Sub(a.lastFrameTime).Seconds()
	a.timeInfo.GlobalTime += a.timeInfo.DeltaTime
	a.lastFrameTime = now

	a.timeInfo.SubstepCount = 0
	a.remainingTime += a.timeInfo.DeltaTime
	for a.remainingTime >= a.timeInfo.SubstepTime {
		a.timeInfo.SubstepCount++
		a.remainingTime -= a.timeInfo.SubstepTime
	}

	for i, w := range a.worlds {
		if !a.worldActive(i) {
			continue
		}
		if !w.Update(a.timeInfo) {
			a.activeWorlds.SetBit(i, false)
			a.log.Info("world finished", zap.Int("world", i))
		}
	}

	return a.running.Load() && !a.activeWorlds.IsEmpty()
}

// Quit stops the loop after the current frame. Safe to call from another
// goroutine, e.g. a signal handler.
func (a *Application) Quit() {
	a.running.Store(false)
}

func (a *Application) worldActive(i int) bool {
	return i < a.activeWorlds.Size() && a.activeWorlds.Test(i)
}
