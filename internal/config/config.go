package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine    EngineConfig    `toml:"engine"`
	Scene     SceneConfig     `toml:"scene"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
}

type EngineConfig struct {
	FixedTimeStep  float64 `toml:"fixed_time_step"` // substep duration in seconds
	EntityCapacity int     `toml:"entity_capacity"` // preallocated entity storage
}

type SceneConfig struct {
	Path string `toml:"path"` // YAML scene file spawned at startup, empty = none
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // directory of .lua scripts
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration, used when no config file
// exists.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			FixedTimeStep:  1.0 / 60.0,
			EntityCapacity: 256,
		},
		Scripting: ScriptingConfig{
			Enabled: false,
			Dir:     "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
