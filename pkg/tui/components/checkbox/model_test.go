package checkbox

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/downloads/pkg/tui/events"
)

func record(b *events.Bus) *[]events.CheckboxChangedMsg {
	var got []events.CheckboxChangedMsg
	b.Listen(func(e *events.Event) {
		if msg, ok := e.Msg.(events.CheckboxChangedMsg); ok {
			got = append(got, msg)
		}
	})
	return &got
}

func TestToggleDispatchesChange(t *testing.T) {
	parent := events.NewBus("parent")
	cb := New("cb", "Pick me")
	cb.Mount(parent)
	cb.SetDataIndex(4)
	got := record(parent)

	cb.Toggle()
	cb.Toggle()

	if len(*got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(*got))
	}
	first, second := (*got)[0], (*got)[1]
	if !first.Checked || first.DataIndex != 4 || first.Component != "cb" {
		t.Fatalf("unexpected first event %#v", first)
	}
	if second.Checked {
		t.Fatalf("second toggle should uncheck: %#v", second)
	}
}

func TestToggleClearsIndeterminate(t *testing.T) {
	cb := New("all", "")
	cb.SetIndeterminate(true)
	if cb.AriaChecked() != "mixed" {
		t.Fatalf("AriaChecked = %q, want mixed", cb.AriaChecked())
	}
	got := record(cb.Bus())

	cb.Toggle()

	if cb.Indeterminate() || !cb.Checked() {
		t.Fatalf("state after toggle: checked=%t indeterminate=%t", cb.Checked(), cb.Indeterminate())
	}
	if (*got)[0].Indeterminate {
		t.Fatalf("event should report indeterminate=false")
	}
	if (*got)[0].DataIndex != NoIndex {
		t.Fatalf("free-standing checkbox index = %d", (*got)[0].DataIndex)
	}
}

func TestDisabledIgnoresToggle(t *testing.T) {
	cb := New("cb", "")
	cb.SetDisabled(true)
	got := record(cb.Bus())

	if e := cb.Toggle(); e != nil {
		t.Fatalf("disabled toggle returned event")
	}
	if cb.Checked() || len(*got) != 0 {
		t.Fatalf("disabled checkbox changed state")
	}
}

func TestSetCheckedIsSilent(t *testing.T) {
	cb := New("cb", "")
	got := record(cb.Bus())
	cb.SetChecked(true)
	if len(*got) != 0 {
		t.Fatalf("SetChecked dispatched %d events", len(*got))
	}
	if cb.AriaChecked() != "true" {
		t.Fatalf("AriaChecked = %q", cb.AriaChecked())
	}
}

func TestUpdateTogglesOnlyWhenFocused(t *testing.T) {
	cb := New("cb", "")
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	cb.Update(space)
	if cb.Checked() {
		t.Fatalf("unfocused checkbox toggled")
	}

	if cmd := cb.Focus(); cmd == nil {
		t.Fatalf("expected focus cmd")
	}
	cb.Update(space)
	if !cb.Checked() {
		t.Fatalf("focused checkbox did not toggle on space")
	}
	cb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cb.Checked() {
		t.Fatalf("enter should toggle back")
	}
}

func TestViewGlyphs(t *testing.T) {
	cb := New("cb", "Files")
	if !strings.Contains(cb.View(), "[ ]") || !strings.Contains(cb.View(), "Files") {
		t.Fatalf("unexpected view %q", cb.View())
	}
	cb.SetChecked(true)
	if cb.Glyph() != "[x]" {
		t.Fatalf("glyph = %q", cb.Glyph())
	}
	cb.SetIndeterminate(true)
	if cb.Glyph() != "[-]" {
		t.Fatalf("glyph = %q", cb.Glyph())
	}
}
