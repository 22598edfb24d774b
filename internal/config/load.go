package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration of the binaries.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Game    GameConfig    `toml:"game"`
	Scores  ScoresConfig  `toml:"scores"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type GameConfig struct {
	LevelFile    string  `toml:"level_file"` // empty = generated demo level
	StartPaused  bool    `toml:"start_paused"`
	MaxDeltaTime float64 `toml:"max_delta_time"`
	Seed         int64   `toml:"seed"` // 0 = time based
}

type ScoresConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.MaxDeltaTime <= 0 {
		cfg.Game.MaxDeltaTime = MaxDeltaTime
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Waypoint Defense",
			TPS:    TPS,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Game: GameConfig{
			StartPaused:  true,
			MaxDeltaTime: MaxDeltaTime,
		},
		Scores: ScoresConfig{
			Enabled: false,
			Path:    "scores.db",
		},
	}
}
