package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/downloads/pkg/tui/events"
	"tableflip.dev/downloads/pkg/tui/ui"
)

// mountable components attach their bus below the testbed root so every
// dispatched event reaches the viewer.
type mountable interface {
	ui.Focusable
	Mount(parent *events.Bus)
}

// componentModel hosts one component inside the testbed frame. esc moves
// focus between the harness and the component.
type componentModel struct {
	testbedModel
	component mountable
	footer    func() string
}

func newComponentModel(opts options, c mountable) *componentModel {
	m := &componentModel{
		testbedModel: newTestbedModel(opts),
		component:    c,
	}
	c.Mount(m.bus)
	return m
}

func (m *componentModel) Init() tea.Cmd {
	return m.component.Focus()
}

func (m *componentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.ensureLayout()
		m.component.SetSize(m.innerWidth, m.innerHeight)
	case tea.KeyMsg:
		if v.String() == "esc" {
			if m.component.Focused() {
				cmds = append(cmds, m.component.Blur())
			} else {
				cmds = append(cmds, m.component.Focus())
			}
			break
		}
		if _, cmd := m.component.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		if _, cmd := m.component.Update(m.localMouse(v)); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *componentModel) View() string {
	content := m.component.View()
	if m.footer != nil {
		content += "\n\n" + m.footer()
	}
	return m.composeView(content)
}

func runComponent(m *componentModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
