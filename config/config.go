// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.aimuz.me/haunt/haunt"
)

const (
	appName        = "haunt"
	configFileName = "config.json"
)

const (
	DefaultInterval     = haunt.DefaultInterval
	DefaultCalmDuration = 30 * time.Second
	DefaultSoundBackend = "oto"
	DefaultLogLevel     = "info"
)

// Config represents the application configuration.
type Config struct {
	Interval     Duration `json:"interval"`
	CalmDuration Duration `json:"calm_duration"`

	Phrases  []string `json:"phrases,omitempty"`
	Messages []string `json:"messages,omitempty"`

	Sound SoundConfig `json:"sound"`

	// AppeaseHotkey uses gohook key names, e.g. ["ctrl", "shift", "a"].
	// Empty disables the global shortcut.
	AppeaseHotkey []string `json:"appease_hotkey,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
}

// SoundConfig selects the audio backend.
type SoundConfig struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Backend string `json:"backend,omitempty"` // "oto", "pulse" or "none"
}

// Duration is a time.Duration encoded as a Go duration string ("15s").
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load loads configuration from the user config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// SoundEnabled reports whether whisper playback is on. Defaults to true.
func (c *Config) SoundEnabled() bool {
	return c.Sound.Enabled == nil || *c.Sound.Enabled
}

// SoundBackend returns the backend to open, "none" when sound is disabled.
func (c *Config) SoundBackend() string {
	if !c.SoundEnabled() {
		return "none"
	}
	return c.Sound.Backend
}

func (c *Config) applyDefaults() {
	if c.Interval <= 0 {
		c.Interval = Duration(DefaultInterval)
	}
	if c.CalmDuration <= 0 {
		c.CalmDuration = Duration(DefaultCalmDuration)
	}
	c.Phrases = nonBlank(c.Phrases)
	if len(c.Phrases) == 0 {
		c.Phrases = append([]string(nil), haunt.DefaultPhrases...)
	}
	c.Messages = nonBlank(c.Messages)
	if len(c.Messages) == 0 {
		c.Messages = defaultMessages()
	}
	if c.Sound.Backend == "" {
		c.Sound.Backend = DefaultSoundBackend
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func nonBlank(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

func defaultMessages() []string {
	return []string{
		"I'm watching you.",
		"You are not alone.",
		"Look behind you.",
	}
}
