package iconbutton

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/downloads/pkg/tui/events"
)

func TestClickBubbles(t *testing.T) {
	parent := events.NewBus("list")
	btn := New("download", "download", "Download Selected")
	btn.Mount(parent)

	clicks := 0
	parent.Listen(func(e *events.Event) {
		if msg, ok := e.Msg.(events.IconButtonClickedMsg); ok && msg.Component == "download" {
			clicks++
		}
	})

	btn.Click()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}

	btn.SetDisabled(true)
	if e := btn.Click(); e != nil {
		t.Fatalf("disabled click dispatched")
	}
	if clicks != 1 {
		t.Fatalf("disabled click reached parent")
	}
	if btn.AriaDisabled() != "true" {
		t.Fatalf("AriaDisabled = %q", btn.AriaDisabled())
	}
}

func TestEnterPressesFocusedButton(t *testing.T) {
	btn := New("b", "download", "Go")
	clicks := 0
	btn.Bus().Listen(func(e *events.Event) { clicks++ })

	btn.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if clicks != 0 {
		t.Fatalf("unfocused button pressed")
	}
	btn.Focus()
	btn.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestViewIncludesIcon(t *testing.T) {
	btn := New("b", "download", "Download Selected")
	view := btn.View()
	if !strings.Contains(view, Icon("download")) || !strings.Contains(view, "Download Selected") {
		t.Fatalf("unexpected view %q", view)
	}
	if New("b", "nope", "x").View() == "" {
		t.Fatalf("unknown icon should still render label")
	}
	if btn.AriaLabel() != "Download Selected" {
		t.Fatalf("AriaLabel = %q", btn.AriaLabel())
	}
}
