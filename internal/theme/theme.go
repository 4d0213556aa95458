// Package theme holds the visual theme registry and the manager that tracks
// the active selection, persisting changes through the state file.
package theme

import (
	"sync"

	"github.com/kthsports/storefront/internal/state"
)

// Theme is one named color scheme.
type Theme struct {
	Name          string `json:"name"`
	BgPrimary     string `json:"bgPrimary"`
	BgSecondary   string `json:"bgSecondary"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	Accent        string `json:"accent"`
	Border        string `json:"border"`
}

// DefaultName is the theme used before any selection is persisted.
const DefaultName = "default"

var registry = map[string]Theme{
	"default": {
		Name:          "Default",
		BgPrimary:     "#111827",
		BgSecondary:   "#1f2937",
		TextPrimary:   "#ffffff",
		TextSecondary: "#d1d5db",
		Accent:        "#FF8C00",
		Border:        "#FF8C00",
	},
	"light": {
		Name:          "Light",
		BgPrimary:     "#ffffff",
		BgSecondary:   "#f3f4f6",
		TextPrimary:   "#111827",
		TextSecondary: "#4b5563",
		Accent:        "#3b82f6",
		Border:        "#d1d5db",
	},
	"blue": {
		Name:          "Blue",
		BgPrimary:     "#dbeafe",
		BgSecondary:   "#bfdbfe",
		TextPrimary:   "#1e3a8a",
		TextSecondary: "#3b82f6",
		Accent:        "#1d4ed8",
		Border:        "#3b82f6",
	},
	"dark": {
		Name:          "Dark",
		BgPrimary:     "#000000",
		BgSecondary:   "#1a1a1a",
		TextPrimary:   "#ffffff",
		TextSecondary: "#a1a1a1",
		Accent:        "#dc2626",
		Border:        "#dc2626",
	},
	"green": {
		Name:          "Green",
		BgPrimary:     "#dcfce7",
		BgSecondary:   "#bbf7d0",
		TextPrimary:   "#166534",
		TextSecondary: "#22c55e",
		Accent:        "#16a34a",
		Border:        "#22c55e",
	},
}

// Names lists the registered theme names.
func Names() []string {
	return []string{"default", "light", "blue", "dark", "green"}
}

// Lookup returns a registered theme by name.
func Lookup(name string) (Theme, bool) {
	t, ok := registry[name]
	return t, ok
}

// Manager tracks the active theme for the process and persists changes.
// Any component may read or change it without threading it through call
// chains.
type Manager struct {
	mu      sync.RWMutex
	current string
	state   *state.File
}

// NewManager initializes the manager from the persisted selection, falling
// back to the default when nothing valid is stored.
func NewManager(st *state.File) *Manager {
	current := DefaultName
	if saved := st.Theme(); saved != "" {
		if _, ok := registry[saved]; ok {
			current = saved
		}
	}
	return &Manager{current: current, state: st}
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return registry[m.current]
}

// CurrentName returns the active theme's registry name.
func (m *Manager) CurrentName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Change switches the active theme and persists the choice. Unknown names are
// ignored, matching the storefront's behavior.
func (m *Manager) Change(name string) error {
	if _, ok := registry[name]; !ok {
		return nil
	}
	m.mu.Lock()
	m.current = name
	m.mu.Unlock()
	return m.state.SetTheme(name)
}
