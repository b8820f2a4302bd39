package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// CheckboxChangedMsg is emitted by a checkbox whenever the user toggles it.
// DataIndex carries the row position for checkboxes rendered inside a grid and
// is -1 for free-standing checkboxes.
type CheckboxChangedMsg struct {
	Component     ComponentID
	Checked       bool
	Indeterminate bool
	DataIndex     int
}

// Describe renders the change in a human-friendly format for logs.
func (m CheckboxChangedMsg) Describe() string {
	return fmt.Sprintf(`component:%q checked:%t indeterminate:%t index:%d`, m.Component, m.Checked, m.Indeterminate, m.DataIndex)
}

// GridSelectionMsg is the normalised selection event a grid emits once per
// toggled row.
type GridSelectionMsg struct {
	Component ComponentID
	Checked   bool
	DataIndex int
}

// Describe renders the selection in a human-friendly format for logs.
func (m GridSelectionMsg) Describe() string {
	return fmt.Sprintf(`component:%q checked:%t index:%d`, m.Component, m.Checked, m.DataIndex)
}

// IconButtonClickedMsg fires when an icon button is activated.
type IconButtonClickedMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m IconButtonClickedMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// NotifyMsg carries a user-facing notice raised by a component.
type NotifyMsg struct {
	Component ComponentID
	Message   string
}

// Describe implements the logging helper.
func (m NotifyMsg) Describe() string {
	return fmt.Sprintf(`component:%q message:%q`, m.Component, firstLine(m.Message))
}

// NotifyCmd wraps a NotifyMsg in a tea.Cmd helper.
func NotifyCmd(component ComponentID, message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Component: component, Message: message}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// Describer is implemented by messages that know how to summarise themselves.
type Describer interface {
	Describe() string
}

// Source reports the component that emitted msg, if any.
func Source(msg tea.Msg) (ComponentID, bool) {
	switch v := msg.(type) {
	case CheckboxChangedMsg:
		return v.Component, true
	case GridSelectionMsg:
		return v.Component, true
	case IconButtonClickedMsg:
		return v.Component, true
	case NotifyMsg:
		return v.Component, true
	case FocusMsg:
		return v.Component, true
	case BlurMsg:
		return v.Component, true
	default:
		return "", false
	}
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i] + "…"
		}
	}
	return s
}
