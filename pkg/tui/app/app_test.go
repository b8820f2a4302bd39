package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/tui/components/grid"
	"tableflip.dev/downloads/pkg/tui/events"
)

func newApp(t *testing.T) *Model {
	t.Helper()
	m, err := New(dataset.Sample(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestDownloadFlowShowsNotice(t *testing.T) {
	m := newApp(t)

	press(m, space)
	if got := m.List().SelectedCount(); got != 2 {
		t.Fatalf("selected = %d, want 2", got)
	}
	press(m, tab)
	press(m, enter)

	notice, ok := m.Notice()
	if !ok || !strings.HasPrefix(notice, "Downloading 2 files:") {
		t.Fatalf("notice = %q", notice)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Downloading 2 files:") {
		t.Fatalf("notice not rendered:\n%s", view)
	}

	// keys other than dismiss are swallowed while the notice is up
	press(m, space)
	if _, ok := m.Notice(); !ok {
		t.Fatalf("notice dismissed by space")
	}
	press(m, enter)
	if _, ok := m.Notice(); ok {
		t.Fatalf("notice still shown after enter")
	}
}

func TestNothingSelectedNotice(t *testing.T) {
	m := newApp(t)
	press(m, tab)
	press(m, enter)
	if n, _ := m.Notice(); n != "No items selected" {
		t.Fatalf("notice = %q", n)
	}
}

func TestNotifyMsgQueues(t *testing.T) {
	m := newApp(t)
	m.Update(events.NotifyMsg{Component: "x", Message: "one"})
	m.Update(events.NotifyMsg{Component: "x", Message: "two"})
	if n, _ := m.Notice(); n != "one" {
		t.Fatalf("notice = %q", n)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if n, _ := m.Notice(); n != "two" {
		t.Fatalf("notice = %q", n)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newApp(t)
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		cmd := press(m, k)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected quit", k)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := newApp(t)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showGuide {
		t.Fatalf("help not shown")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Moving around") {
		t.Fatalf("help not rendered:\n%s", view)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showGuide {
		t.Fatalf("help still shown")
	}
}

func TestViewFitsWindow(t *testing.T) {
	m := newApp(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Fatalf("lines = %d, want 30", len(lines))
	}
	if !strings.Contains(ansi.Strip(m.View()), "netsh.exe") {
		t.Fatalf("grid not rendered")
	}
}

func TestNewRejectsInvalidDataset(t *testing.T) {
	ds := &dataset.Dataset{Rows: []grid.Row{grid.NewRow("name", "a")}}
	if _, err := New(ds, Options{}); err == nil {
		t.Fatalf("expected error for rows without criteria")
	}
}

func TestReloadKeepsSelectionByIndex(t *testing.T) {
	ch := make(chan dataset.Reload, 1)
	m, err := New(dataset.Sample(), Options{Reloads: ch})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Init()
	m.List().Grid().ToggleRow(1)

	ds := dataset.Sample()
	ds.Rows = ds.Rows[:3]
	if cmd := m.applyReload(reloadMsg{reload: dataset.Reload{Dataset: ds}}); cmd == nil {
		t.Fatalf("expected the next wait command")
	}
	if got := m.List().Selected(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("selected after reload = %v", got)
	}

	bad := &dataset.Dataset{Rows: []grid.Row{grid.NewRow("name", "a")}, Criteria: ds.Criteria}
	m.Update(reloadMsg{reload: dataset.Reload{Dataset: bad}})
	if !strings.HasPrefix(m.Status(), "reload rejected") {
		t.Fatalf("status = %q", m.Status())
	}

	m.Update(reloadMsg{closed: true})
	if m.reloads != nil {
		t.Fatalf("closed channel should stop waiting")
	}
}
