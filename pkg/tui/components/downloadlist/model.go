package downloadlist

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"tableflip.dev/downloads/pkg/tui/components/checkbox"
	"tableflip.dev/downloads/pkg/tui/components/grid"
	"tableflip.dev/downloads/pkg/tui/components/iconbutton"
	"tableflip.dev/downloads/pkg/tui/events"
	"tableflip.dev/downloads/pkg/tui/theme"
	"tableflip.dev/downloads/pkg/tui/ui"
)

const (
	// DefaultTitle heads the list.
	DefaultTitle = "Download list"
	// NothingSelected is the notice shown when downloading an empty selection.
	NothingSelected = "No items selected"

	controlsGap = 3
)

// KeyMap lists the bindings handled by the list itself.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns tab / shift+tab focus cycling.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithNotifier routes user notices to n.
func WithNotifier(n Notifier) Option {
	return func(m *Model) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTableLabel sets the grid's accessible name.
func WithTableLabel(label string) Option {
	return func(m *Model) { m.tableLabel = label }
}

// WithTheme overrides the default styles.
func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.styles = t }
}

// Model aggregates a grid's selection: it owns the select-all checkbox, the
// download button and the grid, and keeps the selected rows keyed by index.
type Model struct {
	id  events.ComponentID
	bus *events.Bus

	selectAll *checkbox.Model
	download  *iconbutton.Model
	grid      *grid.Model
	controls  []ui.Focusable

	columns  []grid.Column
	criteria *grid.Criteria
	selected map[int]grid.Row

	focusIndex int
	focused    bool
	tableLabel string

	width  int
	height int

	keys     KeyMap
	styles   theme.Theme
	notifier Notifier
	logger   *log.Logger
}

// New constructs an empty download list.
func New(id events.ComponentID, opts ...Option) *Model {
	m := &Model{
		id:         id,
		bus:        events.NewBus(id),
		selected:   map[int]grid.Row{},
		tableLabel: DefaultTitle,
		keys:       DefaultKeyMap(),
		styles:     theme.Default(),
		notifier:   &Recorder{},
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithPrefix(string(id))

	m.selectAll = checkbox.New(id+"/select-all", "")
	m.selectAll.Mount(m.bus)
	m.download = iconbutton.New(id+"/download", "download", "Download Selected")
	m.download.Mount(m.bus)
	m.grid = grid.New(id+"/grid", grid.WithLogger(m.logger), grid.WithStyles(m.styles.Grid))
	m.grid.Mount(m.bus)
	m.grid.SetAria(grid.Aria{Table: grid.TableAria{AriaLabel: m.tableLabel}})
	m.controls = []ui.Focusable{m.selectAll, m.download, m.grid}

	m.bus.Listen(m.handle)
	m.refresh()
	return m
}

// ID returns the component id.
func (m *Model) ID() events.ComponentID { return m.id }

// Bus returns the list's node in the event tree.
func (m *Model) Bus() *events.Bus { return m.bus }

// Mount attaches the list below parent.
func (m *Model) Mount(parent *events.Bus) { m.bus.Mount(parent) }

// Grid exposes the embedded grid.
func (m *Model) Grid() *grid.Model { return m.grid }

// SelectAll exposes the select-all checkbox.
func (m *Model) SelectAll() *checkbox.Model { return m.selectAll }

// DownloadButton exposes the download button.
func (m *Model) DownloadButton() *iconbutton.Model { return m.download }

// SetData hands the data to the grid and re-syncs the selection with the
// grid's checkboxes.
func (m *Model) SetData(rows []grid.Row, columns []grid.Column, criteria *grid.Criteria) error {
	if err := m.grid.SetData(rows, columns, criteria); err != nil {
		return err
	}
	m.columns = columns
	m.criteria = criteria
	m.selected = map[int]grid.Row{}
	for i, row := range rows {
		if cb := m.grid.Checkbox(i); cb != nil && cb.Checked() {
			m.selected[i] = row
		}
	}
	m.refresh()
	return nil
}

func (m *Model) handle(e *events.Event) {
	switch msg := e.Msg.(type) {
	case events.CheckboxChangedMsg:
		if msg.Component != m.selectAll.ID() {
			return
		}
		if msg.Checked {
			m.grid.SelectAllItems()
		} else {
			m.grid.UnselectAllItems()
		}
	case events.IconButtonClickedMsg:
		if msg.Component != m.download.ID() {
			return
		}
		m.notifier.Notify(m.DownloadMessage())
	case events.GridSelectionMsg:
		if msg.Component != m.grid.ID() {
			return
		}
		if msg.Checked {
			if row, ok := m.grid.Row(msg.DataIndex); ok {
				m.selected[msg.DataIndex] = row
			}
		} else {
			delete(m.selected, msg.DataIndex)
		}
		m.logger.Debug("selection", "count", len(m.selected))
	default:
		return
	}
	m.refresh()
}

// refresh re-derives the select-all checkbox from the running selection.
func (m *Model) refresh() {
	n := len(m.selected)
	total := m.grid.SelectableCount()
	label := m.SelectedLabel()
	m.selectAll.SetLabel(label)
	m.selectAll.SetAriaLabel(label + ". Click to select all items.")
	m.selectAll.SetChecked(total > 0 && n == total)
	m.selectAll.SetIndeterminate(n > 0 && n < total)
}

// SelectedLabel summarises the selection.
func (m *Model) SelectedLabel() string {
	if len(m.selected) == 0 {
		return "None Selected"
	}
	return fmt.Sprintf("Selected %d", len(m.selected))
}

// SelectedCount returns the number of selected rows.
func (m *Model) SelectedCount() int { return len(m.selected) }

// Selected returns the selected row indexes in ascending order.
func (m *Model) Selected() []int {
	idx := make([]int, 0, len(m.selected))
	for i := range m.selected {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// SelectedRows returns the selected rows ordered by index.
func (m *Model) SelectedRows() []grid.Row {
	idx := m.Selected()
	rows := make([]grid.Row, len(idx))
	for i, j := range idx {
		rows[i] = m.selected[j]
	}
	return rows
}

// DownloadMessage builds the notice shown when the download button is pressed.
func (m *Model) DownloadMessage() string {
	if len(m.selected) == 0 {
		return NothingSelected
	}
	columns := m.columns
	if len(columns) == 0 {
		r := m.grid.Columns()
		for i, k := range r.Keys {
			columns = append(columns, grid.Column{Key: k, Label: r.Labels[i]})
		}
	}

	items := make([]string, 0, len(m.selected))
	for _, row := range m.SelectedRows() {
		parts := make([]string, 0, len(columns))
		for _, col := range columns {
			if m.criteria != nil && col.Key == m.criteria.Key {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", col.Label, row.Text(col.Key)))
		}
		items = append(items, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("Downloading %d files:\n%s", len(m.selected), strings.Join(items, "\n\n"))
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.cycle(-1)
		}
		_, cmd := m.controls[m.focusIndex].Update(msg)
		return m, cmd
	case tea.MouseMsg:
		return m, m.click(msg)
	}
	return m, nil
}

func (m *Model) cycle(step int) tea.Cmd {
	n := len(m.controls)
	next := ((m.focusIndex+step)%n + n) % n
	return m.focusControl(next)
}

func (m *Model) focusControl(i int) tea.Cmd {
	if i == m.focusIndex && m.controls[i].Focused() {
		return nil
	}
	blur := m.controls[m.focusIndex].Blur()
	m.focusIndex = i
	return tea.Batch(blur, m.controls[i].Focus())
}

// click routes a mouse press to the control under it. Coordinates are relative
// to the list's top-left corner.
func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	titleHeight := lipgloss.Height(m.renderTitle())
	controlsY := titleHeight
	gridY := titleHeight + lipgloss.Height(m.renderControls())

	switch {
	case msg.Y == controlsY:
		boxWidth := lipgloss.Width(m.selectAll.View())
		buttonX := boxWidth + controlsGap
		switch {
		case msg.X < boxWidth:
			m.selectAll.Toggle()
		case msg.X >= buttonX && msg.X < buttonX+lipgloss.Width(m.download.View()):
			m.download.Click()
		}
	case msg.Y >= gridY:
		local := msg
		local.Y -= gridY
		m.grid.Update(local)
	}
	return nil
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	used := lipgloss.Height(m.renderTitle()) + lipgloss.Height(m.renderControls())
	m.grid.SetSize(width, max(1, height-used))
}

// Focus implements ui.Focusable; the last focused control regains focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return tea.Batch(events.FocusCmd(m.id), m.controls[m.focusIndex].Focus())
}

// Blur implements ui.Focusable.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return tea.Batch(m.controls[m.focusIndex].Blur(), events.BlurCmd(m.id))
}

// Focused implements ui.Focusable.
func (m *Model) Focused() bool { return m.focused }

// FocusedControl returns the id of the control holding focus.
func (m *Model) FocusedControl() events.ComponentID {
	switch c := m.controls[m.focusIndex].(type) {
	case *checkbox.Model:
		return c.ID()
	case *iconbutton.Model:
		return c.ID()
	case *grid.Model:
		return c.ID()
	}
	return ""
}

// ShortHelp implements help.KeyMap.
func (m *Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.Next}
	switch m.controls[m.focusIndex].(type) {
	case *grid.Model:
		bindings = append(bindings, m.grid.KeyMap().ShortHelp()...)
	case *checkbox.Model:
		bindings = append(bindings, m.selectAll.KeyMap().Toggle)
	case *iconbutton.Model:
		bindings = append(bindings, iconbutton.DefaultKeyMap().Press)
	}
	return bindings
}

// FullHelp implements help.KeyMap.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Next, m.keys.Prev},
		m.grid.KeyMap().ShortHelp(),
	}
}

func (m *Model) renderTitle() string {
	return m.styles.List.Title.Render(DefaultTitle)
}

func (m *Model) renderControls() string {
	return m.styles.List.Controls.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.selectAll.View(),
		strings.Repeat(" ", controlsGap),
		m.download.View(),
	))
}

// View renders the title, the controls row and the grid.
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderControls(),
		m.grid.View(),
	)
}
