// Package teaui hosts the Bubble Tea program for the download list.
package teaui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/tui/components/downloadlist"
	helpview "tableflip.dev/downloads/pkg/tui/components/help"
	"tableflip.dev/downloads/pkg/tui/events"
	"tableflip.dev/downloads/pkg/tui/theme"
	"tableflip.dev/downloads/pkg/tui/ui/overlay"
)

const rootID events.ComponentID = "downloads"

// KeyMap holds the application level bindings.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the application bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "dismiss")),
	}
}

// Options configure the program.
type Options struct {
	TableLabel string
	Width      int
	Height     int
	Logger     *log.Logger
	// Reloads, when set, replaces the data each time a new dataset arrives.
	Reloads    <-chan dataset.Reload
}

type reloadMsg struct {
	reload dataset.Reload
	closed bool
}

func waitForReload(ch <-chan dataset.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		return reloadMsg{reload: r, closed: !ok}
	}
}

// Model is the root tea.Model.
type Model struct {
	bus    *events.Bus
	list   *downloadlist.Model
	help   help.Model
	guide  *helpview.Model
	keys   KeyMap
	styles theme.Theme
	logger *log.Logger

	notices   []string
	showGuide bool
	status    string
	reloads   <-chan dataset.Reload

	width  int
	height int
}

// New builds the root model around ds.
func New(ds *dataset.Dataset, opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		bus:     events.NewBus(rootID),
		help:    help.New(),
		keys:    DefaultKeyMap(),
		styles:  theme.Default(),
		logger:  logger,
		width:   opts.Width,
		height:  opts.Height,
		reloads: opts.Reloads,
	}
	listOpts := []downloadlist.Option{
		downloadlist.WithNotifier(m),
		downloadlist.WithLogger(logger),
		downloadlist.WithTheme(m.styles),
	}
	if opts.TableLabel != "" {
		listOpts = append(listOpts, downloadlist.WithTableLabel(opts.TableLabel))
	}
	m.list = downloadlist.New(rootID+"/list", listOpts...)
	m.list.Mount(m.bus)
	m.bus.Listen(func(e *events.Event) {
		if d, ok := e.Msg.(events.Describer); ok {
			m.logger.Debug("event", "target", e.Target, "msg", d.Describe())
		}
	})
	if err := m.list.SetData(ds.Rows, ds.Columns, ds.Criteria); err != nil {
		return nil, err
	}
	m.applySizes()
	return m, nil
}

// Notify implements downloadlist.Notifier by queueing a modal notice.
func (m *Model) Notify(message string) {
	m.logger.Info("notice", "message", message)
	m.notices = append(m.notices, message)
}

// Notice returns the notice currently shown, if any.
func (m *Model) Notice() (string, bool) {
	if len(m.notices) == 0 {
		return "", false
	}
	return m.notices[0], true
}

// List exposes the hosted download list.
func (m *Model) List() *downloadlist.Model { return m.list }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.reloads == nil {
		return m.list.Focus()
	}
	return tea.Batch(m.list.Focus(), waitForReload(m.reloads))
}

// Status returns the footer status line.
func (m *Model) Status() string { return m.status }

func (m *Model) applyReload(msg reloadMsg) tea.Cmd {
	if msg.closed {
		m.reloads = nil
		return nil
	}
	switch ds := msg.reload.Dataset; {
	case msg.reload.Err != nil:
		m.logger.Warn("reload failed", "err", msg.reload.Err)
		m.status = "reload failed: " + msg.reload.Err.Error()
	case ds != nil:
		if err := m.list.SetData(ds.Rows, ds.Columns, ds.Criteria); err != nil {
			m.logger.Warn("reload rejected", "err", err)
			m.status = "reload rejected: " + err.Error()
			break
		}
		m.logger.Debug("reloaded", "rows", len(ds.Rows))
		m.status = ""
	}
	return waitForReload(m.reloads)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil
	case events.NotifyMsg:
		m.Notify(msg.Message)
		return m, nil
	case reloadMsg:
		return m, m.applyReload(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if len(m.notices) > 0 {
			return m, nil
		}
		if m.showGuide {
			_, cmd := m.guide.Update(msg)
			return m, cmd
		}
		_, cmd := m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if len(m.notices) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notices = m.notices[1:]
		}
		return nil
	}
	if m.showGuide {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Dismiss):
			m.showGuide = false
			return nil
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		}
		_, cmd := m.guide.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showGuide = true
		m.ensureGuide()
		return nil
	}
	_, cmd := m.list.Update(msg)
	return cmd
}

func (m *Model) ensureGuide() {
	w, h := m.overlayBounds()
	if m.guide == nil {
		m.guide = helpview.New(w, h)
		return
	}
	m.guide.SetSize(w, h)
}

func (m *Model) overlayBounds() (int, int) {
	return max(m.width*3/4, 1), max(m.height*3/4, 1)
}

func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.help.Width = m.width
	m.list.SetSize(m.width, max(1, m.height-1))
	if m.guide != nil {
		m.ensureGuide()
	}
}

// ShortHelp implements help.KeyMap.
func (m *Model) ShortHelp() []key.Binding {
	if len(m.notices) > 0 {
		return []key.Binding{m.keys.Dismiss}
	}
	return append(m.list.ShortHelp(), m.keys.Help, m.keys.Quit)
}

// FullHelp implements help.KeyMap.
func (m *Model) FullHelp() [][]key.Binding {
	return append(m.list.FullHelp(), []key.Binding{m.keys.Help, m.keys.Quit})
}

func (m *Model) renderNotice(message string) string {
	s := m.styles.Modal
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Notice"),
		"",
		s.Body.Render(message),
		"",
		s.Hint.Render("enter to dismiss"),
	)
	return s.Frame.Render(body)
}

// View implements tea.Model.
func (m *Model) View() string {
	footer := m.styles.Footer.Help.Render(m.help.View(m))
	if m.status != "" {
		footer = m.styles.Footer.Status.Render(m.status) + "  " + footer
	}
	base := lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
	if m.width == 0 || m.height == 0 {
		if n, ok := m.Notice(); ok {
			return strings.Join([]string{base, m.renderNotice(n)}, "\n")
		}
		return base
	}

	var fg string
	switch n, ok := m.Notice(); {
	case ok:
		fg = m.renderNotice(n)
	case m.showGuide:
		fg = m.guide.View()
	}
	return overlay.Compose(base, m.width, m.height, fg, overlay.Centered)
}

// Run launches the interactive program.
func Run(ds *dataset.Dataset, opts Options, programOpts ...tea.ProgramOption) error {
	m, err := New(ds, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, programOpts...).Run()
	return err
}
