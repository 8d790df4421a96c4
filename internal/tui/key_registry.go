package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a matched key. Returning handled=false lets lower
// priority bindings for the same key run.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Panes    []pane
	Priority int
	Enabled  func(m Model) bool
}

// AppliesTo reports whether the binding is live in pane p. No panes means all.
func (b KeyBinding) AppliesTo(p pane) bool {
	if len(b.Panes) == 0 {
		return true
	}
	for _, v := range b.Panes {
		if v == p {
			return true
		}
	}
	return false
}

func (b KeyBinding) active(m Model) bool {
	return b.AppliesTo(m.focus) && (b.Enabled == nil || b.Enabled(m))
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

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.active(m) && key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m, msg.String())
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// BindingsFor lists the bindings that are live for m, highest priority first.
func (r *HandlerRegistry) BindingsFor(m Model) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.active(m) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor builds a help.KeyMap of the live bindings, one entry per help key.
func (r *HandlerRegistry) HelpFor(m Model) helpKeyMap {
	seen := make(map[string]bool)
	var out helpKeyMap
	for _, b := range r.BindingsFor(m) {
		h := b.Binding.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}

type helpKeyMap []key.Binding

func (h helpKeyMap) ShortHelp() []key.Binding { return h }

func (h helpKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
