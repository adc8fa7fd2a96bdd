package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler handles one key press. It reports false to let lower priority
// bindings (and finally the text input) see the key.
type KeyHandler func(m BuilderModel, key string) (BuilderModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	ViewModes   []int
	Priority    int
}

func (b KeyBinding) AppliesToView(mode int) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m BuilderModel, key string) (BuilderModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToView(m.viewMode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(mode int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForView(mode int) string {
	bindings := r.GetBindingsForView(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

// builderKeys wires the builder's key map.
func builderKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	edit := []int{ViewBuilder}
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "esc", Handler: handleQuit, Description: "quit", ViewModes: edit})
	r.Register(KeyBinding{Key: "esc", Handler: handleCloseHelp, ViewModes: []int{ViewHelp}})
	r.Register(KeyBinding{Key: "f1", Handler: handleToggleHelp, Description: "help"})
	r.Register(KeyBinding{Key: "tab", Handler: handleCycleKind, Description: "kind", ViewModes: edit})
	r.Register(KeyBinding{Key: "ctrl+b", Handler: handleCycleBands, Description: "bands", ViewModes: edit})
	r.Register(KeyBinding{Key: "up", Handler: handleCycleTolerance, Description: "tol+", ViewModes: edit})
	r.Register(KeyBinding{Key: "down", Handler: handleCycleTolerance, Description: "tol-", ViewModes: edit})
	r.Register(KeyBinding{Key: "ctrl+t", Handler: handleToggleTolerance, Description: "show tol", ViewModes: edit})
	r.Register(KeyBinding{Key: "ctrl+k", Handler: handleToggleCondense, Description: "condense", ViewModes: edit})
	r.Register(KeyBinding{Key: "enter", Handler: handleAddLabel, Description: "add", ViewModes: edit})
	r.Register(KeyBinding{Key: "ctrl+d", Handler: handleDropLabel, Description: "drop", ViewModes: edit})
	r.Register(KeyBinding{Key: "ctrl+s", Handler: handleExport, Description: "export", ViewModes: edit})
	return r
}
