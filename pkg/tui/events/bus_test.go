package events

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDispatchBubblesToRoot(t *testing.T) {
	root := NewBus("root")
	mid := NewBus("mid")
	leaf := NewBus("leaf")
	mid.Mount(root)
	leaf.Mount(mid)

	var seen []ComponentID
	root.Listen(func(e *Event) { seen = append(seen, root.ID()) })
	mid.Listen(func(e *Event) { seen = append(seen, mid.ID()) })
	leaf.Listen(func(e *Event) { seen = append(seen, leaf.ID()) })

	e := leaf.Dispatch(IconButtonClickedMsg{Component: "leaf"})
	if e.Target != "leaf" {
		t.Fatalf("target = %q, want leaf", e.Target)
	}
	want := []ComponentID{"leaf", "mid", "root"}
	if len(seen) != len(want) {
		t.Fatalf("delivered to %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("delivered to %v, want %v", seen, want)
		}
	}
}

func TestStopPropagationFinishesCurrentNode(t *testing.T) {
	root := NewBus("root")
	child := NewBus("child")
	child.Mount(root)

	var calls []string
	child.Listen(func(e *Event) {
		calls = append(calls, "first")
		e.StopPropagation()
	})
	child.Listen(func(e *Event) { calls = append(calls, "second") })
	root.Listen(func(e *Event) { calls = append(calls, "root") })

	e := child.Dispatch(CheckboxChangedMsg{Component: "child", DataIndex: -1})
	if !e.Stopped() {
		t.Fatalf("expected event to be stopped")
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestNestedDispatchIsDeliveredBeforeReturn(t *testing.T) {
	root := NewBus("root")
	grid := NewBus("grid")
	box := NewBus("box")
	grid.Mount(root)
	box.Mount(grid)

	var got []tea.Msg
	root.Listen(func(e *Event) { got = append(got, e.Msg) })
	grid.Listen(func(e *Event) {
		msg, ok := e.Msg.(CheckboxChangedMsg)
		if !ok {
			return
		}
		grid.Dispatch(GridSelectionMsg{Component: "grid", Checked: msg.Checked, DataIndex: msg.DataIndex})
		e.StopPropagation()
	})

	box.Dispatch(CheckboxChangedMsg{Component: "box", Checked: true, DataIndex: 3})

	if len(got) != 1 {
		t.Fatalf("root saw %d events, want 1: %#v", len(got), got)
	}
	sel, ok := got[0].(GridSelectionMsg)
	if !ok || !sel.Checked || sel.DataIndex != 3 {
		t.Fatalf("unexpected event %#v", got[0])
	}
}

func TestCancel(t *testing.T) {
	b := NewBus("b")
	b.Listen(func(e *Event) { e.Cancel() })
	if e := b.Dispatch(NotifyMsg{}); !e.Canceled() {
		t.Fatalf("expected canceled event")
	}
}

func TestNilBusDispatch(t *testing.T) {
	var b *Bus
	e := b.Dispatch(FocusMsg{Component: "x"})
	if e == nil || e.Target != "" {
		t.Fatalf("unexpected event %#v", e)
	}
}

func TestSource(t *testing.T) {
	id, ok := Source(GridSelectionMsg{Component: "grid"})
	if !ok || id != "grid" {
		t.Fatalf("Source = %q %t", id, ok)
	}
	if _, ok := Source(tea.WindowSizeMsg{}); ok {
		t.Fatalf("window size should have no source")
	}
}
