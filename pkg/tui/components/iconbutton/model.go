package iconbutton

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/downloads/pkg/tui/events"
	"tableflip.dev/downloads/pkg/tui/theme"
	"tableflip.dev/downloads/pkg/tui/ui"
)

var icons = map[string]string{
	"download": "⤓",
	"upload":   "⤒",
	"delete":   "✕",
	"refresh":  "↻",
}

// Icon returns the glyph registered for name, or an empty string.
func Icon(name string) string {
	return icons[name]
}

// KeyMap lists the bindings a focused button reacts to.
type KeyMap struct {
	Press key.Binding
}

// DefaultKeyMap returns the stock button bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
}

// Model is a labelled button with a leading icon.
type Model struct {
	id  events.ComponentID
	bus *events.Bus

	icon      string
	label     string
	ariaLabel string
	disabled  bool
	focused   bool

	keys   KeyMap
	styles theme.ButtonTheme
}

// New constructs an enabled button.
func New(id events.ComponentID, icon, label string) *Model {
	return &Model{
		id:     id,
		bus:    events.NewBus(id),
		icon:   icon,
		label:  label,
		keys:   DefaultKeyMap(),
		styles: theme.Default().Button,
	}
}

// ID returns the component id.
func (m *Model) ID() events.ComponentID { return m.id }

// Bus returns the button's node in the event tree.
func (m *Model) Bus() *events.Bus { return m.bus }

// Mount attaches the button below parent.
func (m *Model) Mount(parent *events.Bus) { m.bus.Mount(parent) }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Press) {
		m.Click()
	}
	return m, nil
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {}

// Click dispatches events.IconButtonClickedMsg. Disabled buttons return nil.
func (m *Model) Click() *events.Event {
	if m.disabled {
		return nil
	}
	return m.bus.Dispatch(events.IconButtonClickedMsg{Component: m.id})
}

// Disabled reports whether the button ignores presses.
func (m *Model) Disabled() bool { return m.disabled }

// SetDisabled blocks or allows presses.
func (m *Model) SetDisabled(v bool) { m.disabled = v }

// AriaDisabled mirrors the aria-disabled attribute; empty when enabled.
func (m *Model) AriaDisabled() string {
	if m.disabled {
		return "true"
	}
	return ""
}

// Label returns the visible label.
func (m *Model) Label() string { return m.label }

// SetAriaLabel replaces the accessible name.
func (m *Model) SetAriaLabel(label string) { m.ariaLabel = label }

// AriaLabel returns the accessible name, falling back to the label.
func (m *Model) AriaLabel() string {
	if m.ariaLabel != "" {
		return m.ariaLabel
	}
	return m.label
}

// Focus implements ui.Focusable.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur implements ui.Focusable.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// Focused implements ui.Focusable.
func (m *Model) Focused() bool { return m.focused }

// View renders the icon and label.
func (m *Model) View() string {
	parts := make([]string, 0, 2)
	if glyph := Icon(m.icon); glyph != "" {
		parts = append(parts, glyph)
	}
	if m.label != "" {
		parts = append(parts, m.label)
	}
	body := strings.Join(parts, " ")
	switch {
	case m.disabled:
		return m.styles.Disabled.Render(body)
	case m.focused:
		return m.styles.Focused.Render(body)
	default:
		return m.styles.Normal.Render(body)
	}
}
