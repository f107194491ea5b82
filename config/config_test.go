package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"go.aimuz.me/haunt/haunt"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Interval.Std() != 15*time.Second {
		t.Errorf("Interval = %v, want 15s", cfg.Interval.Std())
	}
	if cfg.CalmDuration.Std() != 30*time.Second {
		t.Errorf("CalmDuration = %v, want 30s", cfg.CalmDuration.Std())
	}
	if !slices.Equal(cfg.Phrases, haunt.DefaultPhrases) {
		t.Errorf("Phrases = %v", cfg.Phrases)
	}
	if len(cfg.Messages) != 3 {
		t.Errorf("expected 3 default messages, got %d", len(cfg.Messages))
	}
	if !cfg.SoundEnabled() || cfg.SoundBackend() != "oto" {
		t.Errorf("sound = %v/%q, want enabled/oto", cfg.SoundEnabled(), cfg.SoundBackend())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"interval": "2s",
		"calm_duration": "1m",
		"phrases": ["BOO", "  "],
		"sound": {"enabled": false, "backend": "pulse"},
		"appease_hotkey": ["ctrl", "shift", "a"],
		"log_level": " DEBUG "
	}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Interval.Std() != 2*time.Second {
		t.Errorf("Interval = %v", cfg.Interval.Std())
	}
	if cfg.CalmDuration.Std() != time.Minute {
		t.Errorf("CalmDuration = %v", cfg.CalmDuration.Std())
	}
	if !slices.Equal(cfg.Phrases, []string{"BOO"}) {
		t.Errorf("Phrases = %q, want blank entries dropped", cfg.Phrases)
	}
	if cfg.SoundEnabled() {
		t.Error("sound should be disabled")
	}
	if got := cfg.SoundBackend(); got != "none" {
		t.Errorf("SoundBackend = %q, want none when disabled", got)
	}
	if len(cfg.AppeaseHotkey) != 3 {
		t.Errorf("AppeaseHotkey = %v", cfg.AppeaseHotkey)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"negative_interval_defaults", `{"interval": "-5s"}`, false},
		{"bad_duration", `{"interval": "soon"}`, true},
		{"numeric_duration", `{"interval": 15}`, true},
		{"broken_json", `{"interval": `, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			if cfg.Interval.Std() != DefaultInterval {
				t.Errorf("Interval = %v, want default", cfg.Interval.Std())
			}
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"1.5s"` {
		t.Fatalf("got %s", b)
	}
}
