package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/orbfolio/content"
	"github.com/lixenwraith/orbfolio/parameter"
)

// Config is the startup configuration. Defaults are compiled in; a TOML file
// overrides fields it sets. Nothing here is consulted on the per-frame path
type Config struct {
	Seed uint64 `toml:"seed"`

	Audio AudioConfig `toml:"audio"`
	Scene SceneConfig `toml:"scene"`

	// Projects replaces the built-in portfolio when non-empty
	Projects []content.Project `toml:"projects"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

type SceneConfig struct {
	CameraDistance float64 `toml:"camera_distance"`
	OrbSpacing     float64 `toml:"orb_spacing"`
	Starfield      bool    `toml:"starfield"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Seed: 0, // 0 = derive from wall clock at startup
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.7,
		},
		Scene: SceneConfig{
			CameraDistance: parameter.CameraDistance,
			OrbSpacing:     parameter.OrbSpacing,
			Starfield:      true,
		},
	}
}

// Load reads a TOML file over the defaults. A missing path returns defaults;
// a malformed file returns an error with the offending path
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ProjectList returns the configured portfolio, falling back to the built-in
func (c *Config) ProjectList() []content.Project {
	if len(c.Projects) > 0 {
		return c.Projects
	}
	return content.DefaultProjects
}
