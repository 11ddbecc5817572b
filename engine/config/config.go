package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the TOML-backed application configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Assets AssetsConfig `toml:"assets"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AssetsConfig struct {
	// RootDir is the directory asset paths resolve against and the
	// root the change watcher observes.
	RootDir      string         `toml:"root_dir"`
	WatchChanges bool           `toml:"watch_changes"`
	Textures     TexturesConfig `toml:"textures"`
	Audio        AudioConfig    `toml:"audio"`
}

type TexturesConfig struct {
	FlipY bool `toml:"flip_y"`
}

type AudioConfig struct {
	SampleRate uint32 `toml:"sample_rate"`
	Channels   uint8  `toml:"channels"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Assets: AssetsConfig{
			RootDir:      "assets",
			WatchChanges: true,
			Textures: TexturesConfig{
				FlipY: true,
			},
			Audio: AudioConfig{
				SampleRate: 44100,
				Channels:   2,
			},
		},
	}
}

// Load reads a TOML file over the defaults. Missing keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config '%s': %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Assets.RootDir == "" {
		return fmt.Errorf("assets.root_dir must not be empty")
	}
	if c.Assets.Audio.SampleRate == 0 {
		return fmt.Errorf("assets.audio.sample_rate must be > 0")
	}
	if c.Assets.Audio.Channels == 0 {
		return fmt.Errorf("assets.audio.channels must be > 0")
	}
	return nil
}
