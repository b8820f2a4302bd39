package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/tui/components/eventviewer"
	"tableflip.dev/downloads/pkg/tui/events"
)

type options struct {
	full    bool
	width   int
	height  int
	dataset string
	sample  string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI testbed harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 100, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "window height when not fullscreen")
	rootCmd.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "YAML dataset to load instead of the built-in sample")
	rootCmd.PersistentFlags().StringVar(&opts.sample, "sample", "files", "built-in sample: files, unconfigured or numeric")

	rootCmd.AddCommand(newGridCmd(&opts))
	rootCmd.AddCommand(newCheckboxCmd(&opts))
	rootCmd.AddCommand(newButtonCmd(&opts))
	rootCmd.AddCommand(newListCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	base := newTestbedModel(opts)
	p := tea.NewProgram(&base, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	focused    bool
	focusOwner events.ComponentID

	bus    *events.Bus
	events *eventviewer.Model

	frameWidth  int
	frameHeight int
	innerWidth  int
	innerHeight int
	eventHeight int
	layoutDirty bool
}

func newTestbedModel(opts options) testbedModel {
	m := testbedModel{
		fullscreen:  opts.full,
		maxWidth:    opts.width,
		maxHeight:   opts.height,
		bus:         events.NewBus("testbed"),
		events:      eventviewer.NewModel(400),
		layoutDirty: true,
	}
	ev := m.events
	m.bus.Listen(func(e *events.Event) {
		ev.Append(eventviewer.FromEvent(e))
	})
	return m
}

func (m *testbedModel) Init() tea.Cmd { return nil }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.recordEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layoutDirty = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case events.FocusMsg:
		m.focused = true
		m.focusOwner = msg.Component
	case events.BlurMsg:
		if m.focusOwner == msg.Component || m.focusOwner == "" {
			m.focused = false
			m.focusOwner = ""
		}
	}

	if m.events != nil {
		m.events.Update(msg)
	}

	return m, nil
}

func (m *testbedModel) View() string {
	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(
			"Testbed UI\n\n" +
				"Run a subcommand (grid, checkbox, button, list) to iterate on a component.\n\n" +
				"Press esc to toggle focus, q to quit.",
		)
	return m.composeView(content)
}

func (m *testbedModel) composeView(content string) string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…"
	}
	m.ensureLayout()

	frameBlock := m.placeFrame(m.renderFrame(content))

	if events := m.renderEvents(); events != "" {
		gap := strings.Repeat("\n", frameGap-1)
		frameBlock = lipgloss.JoinVertical(lipgloss.Left, frameBlock, gap, events)
	}
	return frameBlock
}

func (m *testbedModel) renderFrame(content string) string {
	m.ensureLayout()

	borderStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if m.focused {
		borderStyle = borderStyle.BorderForeground(lipgloss.Color("#39FF14"))
	} else {
		borderStyle = borderStyle.BorderForeground(lipgloss.Color("240"))
	}

	contentView := lipgloss.NewStyle().
		Width(m.innerWidth).
		Height(m.innerHeight).
		MaxWidth(m.innerWidth).
		MaxHeight(m.innerHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	return borderStyle.Render(contentView)
}

func (m *testbedModel) renderEvents() string {
	if m.events == nil || m.eventHeight == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(m.termWidth).
		Height(m.eventHeight).
		Align(lipgloss.Left, lipgloss.Bottom).
		Render(m.events.View())
}

func (m *testbedModel) placeFrame(frame string) string {
	background := lipgloss.NewStyle()
	if !m.focused {
		background = background.Background(lipgloss.Color("#39FF14"))
	}

	height := max(1, m.termHeight-m.eventHeight-frameGap)
	return lipgloss.Place(
		m.termWidth,
		height,
		lipgloss.Center,
		lipgloss.Top,
		frame,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(background.GetBackground()),
	)
}

// contentOrigin returns the terminal cell where component content starts.
func (m *testbedModel) contentOrigin() (int, int) {
	m.ensureLayout()
	frameWidth := m.innerWidth + 2
	x := 0
	if frameWidth < m.termWidth {
		x = (m.termWidth - frameWidth) / 2
	}
	return x + 1, 1
}

// localMouse translates a terminal mouse event into content coordinates.
func (m *testbedModel) localMouse(msg tea.MouseMsg) tea.MouseMsg {
	x, y := m.contentOrigin()
	msg.X -= x
	msg.Y -= y
	return msg
}

func (m *testbedModel) ensureLayout() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	if !m.layoutDirty && m.frameWidth != 0 && m.frameHeight != 0 {
		return
	}

	eventHeight := m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = clamp(frameSpace, minFrameHeight, frameSpace)
	}

	m.frameWidth = width
	m.frameHeight = height
	m.innerWidth = max(1, width-2)
	m.innerHeight = max(1, height-2)
	m.eventHeight = eventHeight
	m.layoutDirty = false

	if m.events != nil && eventHeight > 0 {
		m.events.SetSize(m.termWidth, eventHeight)
	}
}

func (m *testbedModel) computeEventHeight() int {
	if m.events == nil {
		return 0
	}
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	desired := clamp(m.termHeight/4, minEventHeight, maxEventHeight)
	if desired > maxAvailable {
		desired = maxAvailable
	}
	return desired
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	if m.events == nil {
		return
	}
	m.events.Append(eventviewer.FromMsg(msg))
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
