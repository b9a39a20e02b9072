package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calyx/engine/internal/app"
	"github.com/calyx/engine/internal/config"
	"github.com/calyx/engine/internal/core/ecs"
	"github.com/calyx/engine/internal/core/event"
	"github.com/calyx/engine/internal/data"
	"github.com/calyx/engine/internal/scripting"
	"github.com/calyx/engine/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/engine.toml"
	if p := os.Getenv("CALYX_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// A missing config file runs on defaults; a broken one is fatal.
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = config.Defaults()
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Build the application and its world
	a := app.New(log)
	if err := a.SetFixedTimeStep(cfg.Engine.FixedTimeStep); err != nil {
		return fmt.Errorf("fixed time step: %w", err)
	}
	world := a.AddWorldWithCapacity(cfg.Engine.EntityCapacity)

	ecs.AddSystem(world, system.NewMovementSystem())
	ecs.AddSystem(world, system.NewSpinSystem())
	ecs.AddSystem(world, system.NewLifetimeSystem(world, log))

	if cfg.Scripting.Enabled {
		engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
		if err != nil {
			return fmt.Errorf("lua engine: %w", err)
		}
		ecs.AddSystem(world, system.NewScriptSystem(engine, log))
		log.Info("scripting enabled", zap.String("dir", cfg.Scripting.Dir))
	}

	// 4. Spawn the startup scene, if configured
	if cfg.Scene.Path != "" {
		scene, err := data.LoadScene(cfg.Scene.Path)
		if err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
		count := scene.Spawn(world)
		log.Info("scene spawned", zap.String("scene", scene.Name), zap.Int("entities", count))
	}

	// 5. Observe engine lifecycle events
	event.Subscribe(a.Events(), func(ev ecs.SystemDeactivated) {
		log.Info("system deactivated", zap.Int("system", int(ev.System)))
	})
	event.Subscribe(a.Events(), func(ev ecs.EntityRemoved) {
		log.Debug("entity removed", zap.Uint64("entity", uint64(ev.Entity)))
	})
	event.Subscribe(a.Events(), func(ecs.WorldFinished) {
		log.Info("world finished")
	})

	// 6. Run until every world finishes or a signal arrives
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-shutdownCh
		log.Info("shutdown signal", zap.String("signal", sig.String()))
		a.Quit()
	}()

	log.Info("engine running",
		zap.Float64("fixed_time_step", cfg.Engine.FixedTimeStep),
		zap.Int("entity_capacity", cfg.Engine.EntityCapacity))
	a.Run()

	world.Destroy()
	log.Info("engine stopped")
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
