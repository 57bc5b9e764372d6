package config

import (
	_ "embed"
)

//go:embed defaults/minofall.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Title: TitleKeys{
				Up:     []string{"k", "up"},
				Down:   []string{"j", "down"},
				Submit: []string{"enter"},
			},
			Game: GameKeys{
				Left:     []string{"h", "left"},
				Right:    []string{"l", "right"},
				HardDrop: []string{"j", "space"},
				SpinCW:   []string{"g", "up"},
				SpinCCW:  []string{"s", "down"},
			},
		},
		Gravity: GravityConfig{
			IntervalMS: 1500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
