// Package hotkey registers a system-wide keyboard shortcut.
package hotkey

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

// ErrNoKeys is returned by Start when no keys are configured.
var ErrNoKeys = errors.New("no hotkey configured")

// ErrRunning is returned by Start when the manager is already listening.
var ErrRunning = errors.New("hotkey listener already running")

// Manager listens for one key combination and invokes a callback.
// gohook keeps global state, so only one Manager should run at a time.
type Manager struct {
	keys      []string
	onTrigger func()

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewManager creates a manager for keys (gohook names such as "ctrl",
// "shift", "a"). The callback runs on the hook goroutine and must not block.
func NewManager(keys []string, onTrigger func()) *Manager {
	return &Manager{
		keys:      NormalizeKeys(keys),
		onTrigger: onTrigger,
	}
}

// Keys returns the normalized key combination.
func (m *Manager) Keys() []string {
	return slices.Clone(m.keys)
}

// Start registers the shortcut and begins listening.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.keys) == 0 {
		return ErrNoKeys
	}
	if m.running {
		return ErrRunning
	}

	hook.Register(hook.KeyDown, m.keys, func(hook.Event) {
		slog.Debug("hotkey pressed", "keys", strings.Join(m.keys, "+"))
		if m.onTrigger != nil {
			m.onTrigger()
		}
	})

	evChan := hook.Start()
	m.done = make(chan struct{})
	m.running = true

	go func(done chan struct{}) {
		<-hook.Process(evChan)
		close(done)
	}(m.done)

	slog.Info("hotkey registered", "keys", strings.Join(m.keys, "+"))
	return nil
}

// Stop ends listening. It is safe to call when not started.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	done := m.done
	m.mu.Unlock()

	hook.End()
	<-done
}

// NormalizeKeys lower-cases and trims key names and drops blanks and duplicates,
// keeping first-seen order.
func NormalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || slices.Contains(out, k) {
			continue
		}
		out = append(out, k)
	}
	return out
}
