package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries command defaults read from a .gomesh.toml file. Flags
// given on the command line win over config values.
type Config struct {
	Validate struct {
		Epsilon float64 `toml:"epsilon"`
	} `toml:"validate"`
	Triangulate struct {
		Optimal bool `toml:"optimal"`
		EarClip bool `toml:"earclip"`
	} `toml:"triangulate"`
	Watch struct {
		DebounceMS int `toml:"debounce_ms"`
	} `toml:"watch"`
}

var config Config

// configPath returns the first config file that exists: $GOMESH_CONFIG,
// ./.gomesh.toml, then ~/.gomesh.toml.
func configPath() string {
	if path := os.Getenv("GOMESH_CONFIG"); path != "" {
		return path
	}

	candidates := []string{".gomesh.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".gomesh.toml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadConfig() {
	path := configPath()
	if path == "" {
		return
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config %s: %v\n", path, err)
		config = Config{}
	}
}
