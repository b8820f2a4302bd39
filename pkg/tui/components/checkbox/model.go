package checkbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/downloads/pkg/tui/events"
	"tableflip.dev/downloads/pkg/tui/theme"
	"tableflip.dev/downloads/pkg/tui/ui"
)

// NoIndex marks a checkbox that is not bound to a data row.
const NoIndex = -1

// KeyMap lists the bindings a focused checkbox reacts to.
type KeyMap struct {
	Toggle key.Binding
}

// DefaultKeyMap returns the stock checkbox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

// Model is a single checkbox. User toggles dispatch events.CheckboxChangedMsg
// on the checkbox's bus node; state set through the Set* methods does not.
type Model struct {
	id  events.ComponentID
	bus *events.Bus

	label     string
	ariaLabel string
	dataIndex int

	checked       bool
	indeterminate bool
	disabled      bool
	focused       bool

	keys   KeyMap
	styles theme.CheckboxTheme
}

// New constructs an unchecked, enabled checkbox.
func New(id events.ComponentID, label string) *Model {
	return &Model{
		id:        id,
		bus:       events.NewBus(id),
		label:     label,
		dataIndex: NoIndex,
		keys:      DefaultKeyMap(),
		styles:    theme.Default().Checkbox,
	}
}

// ID returns the component id.
func (m *Model) ID() events.ComponentID { return m.id }

// Bus returns the checkbox's node in the event tree.
func (m *Model) Bus() *events.Bus { return m.bus }

// Mount attaches the checkbox below parent so its events bubble there.
func (m *Model) Mount(parent *events.Bus) { m.bus.Mount(parent) }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Toggle) {
		m.Toggle()
	}
	return m, nil
}

// SetSize implements ui.Component. Checkboxes size to their content.
func (m *Model) SetSize(width, height int) {}

// Toggle flips the checked state the way a user click does: indeterminate is
// cleared and a change event is dispatched. Disabled checkboxes ignore it and
// return nil.
func (m *Model) Toggle() *events.Event {
	if m.disabled {
		return nil
	}
	m.checked = !m.checked
	m.indeterminate = false
	return m.bus.Dispatch(events.CheckboxChangedMsg{
		Component:     m.id,
		Checked:       m.checked,
		Indeterminate: m.indeterminate,
		DataIndex:     m.dataIndex,
	})
}

// Checked reports the checked state.
func (m *Model) Checked() bool { return m.checked }

// SetChecked drives the checked state without dispatching an event.
func (m *Model) SetChecked(checked bool) { m.checked = checked }

// Indeterminate reports the mixed state.
func (m *Model) Indeterminate() bool { return m.indeterminate }

// SetIndeterminate drives the mixed state without dispatching an event.
func (m *Model) SetIndeterminate(v bool) { m.indeterminate = v }

// Disabled reports whether toggling is blocked.
func (m *Model) Disabled() bool { return m.disabled }

// SetDisabled blocks or allows toggling.
func (m *Model) SetDisabled(v bool) { m.disabled = v }

// DataIndex returns the row position carried by the checkbox, or NoIndex.
func (m *Model) DataIndex() int { return m.dataIndex }

// SetDataIndex binds the checkbox to a row position.
func (m *Model) SetDataIndex(i int) { m.dataIndex = i }

// Label returns the visible label.
func (m *Model) Label() string { return m.label }

// SetLabel replaces the visible label.
func (m *Model) SetLabel(label string) { m.label = label }

// AriaLabel returns the accessible name.
func (m *Model) AriaLabel() string { return m.ariaLabel }

// SetAriaLabel replaces the accessible name.
func (m *Model) SetAriaLabel(label string) { m.ariaLabel = label }

// AriaChecked mirrors the aria-checked attribute.
func (m *Model) AriaChecked() string {
	switch {
	case m.indeterminate:
		return "mixed"
	case m.checked:
		return "true"
	default:
		return "false"
	}
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

// KeyMap exposes the bindings for help rendering.
func (m *Model) KeyMap() KeyMap { return m.keys }

// Glyph returns the bare box without label or styling.
func (m *Model) Glyph() string {
	switch {
	case m.indeterminate:
		return "[-]"
	case m.checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

// View renders the box followed by its label.
func (m *Model) View() string {
	box := m.Glyph()
	switch {
	case m.disabled:
		box = m.styles.Disabled.Render(box)
	case m.focused:
		box = m.styles.Focused.Render(box)
	default:
		box = m.styles.Box.Render(box)
	}
	if m.label == "" {
		return box
	}
	label := m.styles.Label.Render(m.label)
	if m.disabled {
		label = m.styles.Disabled.Render(m.label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, box, " ", label)
}
