// Package config provides YAML-based configuration loading for the
// shell: key bindings per stage and gravity tuning.
package config

import "time"

// Config is the full user-facing configuration.
type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Gravity GravityConfig `yaml:"gravity"`
}

// KeysConfig groups key bindings by shell stage.
type KeysConfig struct {
	Title TitleKeys `yaml:"title"`
	Game  GameKeys  `yaml:"game"`
}

// TitleKeys are the bindings active on the title screen. Each entry
// lists the accepted key names in bubbletea notation.
type TitleKeys struct {
	Up     []string `yaml:"up"`
	Down   []string `yaml:"down"`
	Submit []string `yaml:"submit"`
}

// GameKeys are the bindings active during play.
type GameKeys struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	HardDrop []string `yaml:"hard_drop"`
	SpinCW   []string `yaml:"spin_cw"`
	SpinCCW  []string `yaml:"spin_ccw"`
}

// GravityConfig tunes the descent clock.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the gravity interval as a duration. Non-positive
// values mean "use the game's built-in default".
func (g GravityConfig) Interval() time.Duration {
	if g.IntervalMS <= 0 {
		return 0
	}
	return time.Duration(g.IntervalMS) * time.Millisecond
}
