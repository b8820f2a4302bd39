package grid

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/downloads/pkg/tui/components/checkbox"
	"tableflip.dev/downloads/pkg/tui/events"
	"tableflip.dev/downloads/pkg/tui/theme"
	"tableflip.dev/downloads/pkg/tui/ui"
)

// EmptyMessage is rendered in place of the table when there are no rows.
const EmptyMessage = "No data to display"

// Rendered table geometry used for mouse hit testing: top border, header and
// header separator precede the first data row, and the checkbox column spans
// the left border plus a padded "[x]". Headers never wrap.
const (
	firstRowLine  = 3
	checkboxWidth = 6
	passMarker    = "● "
	failMarker    = "  "
)

var gridBorder = lipgloss.NormalBorder()

// TableAria carries accessibility attributes for the table element.
type TableAria struct {
	AriaLabel string
}

// Aria is the accessibility passthrough accepted by the grid.
type Aria struct {
	Table TableAria
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes grid diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l.WithPrefix(string(m.id))
		}
	}
}

// WithStyles overrides the default grid styling.
func WithStyles(s theme.GridTheme) Option {
	return func(m *Model) { m.styles = s }
}

// WithKeyMap overrides the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// Model is a data grid with a leading checkbox column and a roving keyboard
// cursor. Row checkbox changes are republished as events.GridSelectionMsg.
type Model struct {
	id  events.ComponentID
	bus *events.Bus

	rows     []Row
	columns  []Column
	criteria *Criteria
	resolved Resolved
	boxes    []*checkbox.Model

	nav     Navigator
	aria    Aria
	focused bool

	width  int
	height int

	keys   KeyMap
	styles theme.GridTheme
	logger *log.Logger
}

// New constructs an empty grid.
func New(id events.ComponentID, opts ...Option) *Model {
	m := &Model{
		id:     id,
		bus:    events.NewBus(id),
		keys:   DefaultKeyMap(),
		styles: theme.Default().Grid,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.bus.Listen(m.bridge)
	return m
}

// ID returns the component id.
func (m *Model) ID() events.ComponentID { return m.id }

// Bus returns the grid's node in the event tree.
func (m *Model) Bus() *events.Bus { return m.bus }

// Mount attaches the grid below parent so selection events reach it.
func (m *Model) Mount(parent *events.Bus) { m.bus.Mount(parent) }

// SetAria replaces the accessibility passthrough.
func (m *Model) SetAria(a Aria) { m.aria = a }

// AriaLabel returns the table's accessible name.
func (m *Model) AriaLabel() string { return m.aria.Table.AriaLabel }

// SetData replaces the grid contents. Rows, columns and criteria are treated
// as read-only. With rows present the criteria are required and every row must
// carry the criteria field; on error the grid keeps its previous contents.
// Checkbox state is kept by position across calls, except that rows which are
// no longer selectable are unchecked without an event.
func (m *Model) SetData(rows []Row, columns []Column, criteria *Criteria) error {
	if len(rows) == 0 {
		m.rows = nil
		m.columns = columns
		m.criteria = criteria
		m.resolved = Resolved{}
		m.boxes = nil
		return nil
	}

	if err := criteria.Validate(); err != nil {
		return err
	}
	for i, row := range rows {
		if err := criteria.Check(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	resolved := Resolve(rows, columns, criteria)
	boxes := make([]*checkbox.Model, len(rows))
	for i, row := range rows {
		var cb *checkbox.Model
		if i < len(m.boxes) {
			cb = m.boxes[i]
		} else {
			cb = checkbox.New(events.ComponentID(fmt.Sprintf("%s/row-%d", m.id, i)), "")
			cb.Mount(m.bus)
			cb.SetDataIndex(i)
		}
		selectable := criteria.Selectable(row)
		cb.SetDisabled(!selectable)
		if !selectable {
			// A row that lost eligibility cannot stay in the download set.
			cb.SetChecked(false)
		}
		if len(resolved.Keys) > 0 {
			cb.SetAriaLabel("Click to select " + row.Text(resolved.Keys[0]))
		}
		boxes[i] = cb
	}

	m.rows = rows
	m.columns = columns
	m.criteria = criteria
	m.resolved = resolved
	m.boxes = boxes

	if m.nav.Started() {
		m.nav.Clamp(m.bounds(), m.disabled)
	} else {
		m.nav.Start(m.disabled)
		m.logger.Debug("cursor placed", "row", m.nav.Cell().Row, "col", m.nav.Cell().Col)
	}
	return nil
}

// bridge republishes row checkbox changes as grid selection events and keeps
// the raw checkbox event from travelling further.
func (m *Model) bridge(e *events.Event) {
	msg, ok := e.Msg.(events.CheckboxChangedMsg)
	if !ok {
		return
	}
	m.emit(msg.Checked, msg.DataIndex)
	e.StopPropagation()
}

func (m *Model) emit(checked bool, index int) {
	m.logger.Debug("selection changed", "checked", checked, "index", index)
	m.bus.Dispatch(events.GridSelectionMsg{
		Component: m.id,
		Checked:   checked,
		DataIndex: index,
	})
}

// SelectAllItems checks every enabled, unchecked row in order and emits one
// selection event per row it changed.
func (m *Model) SelectAllItems() {
	m.logger.Debug("select all", "rows", len(m.boxes))
	for i, cb := range m.boxes {
		if cb.Disabled() || cb.Checked() {
			continue
		}
		cb.SetChecked(true)
		m.emit(true, i)
	}
}

// UnselectAllItems clears every enabled row in order and emits one selection
// event per enabled row, including rows that were already unchecked.
func (m *Model) UnselectAllItems() {
	m.logger.Debug("unselect all", "rows", len(m.boxes))
	for i, cb := range m.boxes {
		if cb.Disabled() {
			continue
		}
		cb.SetChecked(false)
		m.emit(false, i)
	}
}

// ToggleRow toggles the row's checkbox as a click would.
func (m *Model) ToggleRow(i int) *events.Event {
	if i < 0 || i >= len(m.boxes) {
		return nil
	}
	return m.boxes[i].Toggle()
}

func (m *Model) bounds() Bounds {
	return Bounds{Rows: len(m.rows), Columns: len(m.resolved.Keys)}
}

// disabled reports whether c is a disabled checkbox cell. Data cells are
// never disabled.
func (m *Model) disabled(c Cell) bool {
	if c.Col != 0 || c.Row < 0 || c.Row >= len(m.boxes) {
		return false
	}
	return m.boxes[c.Row].Disabled()
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. Mouse coordinates are expected relative to
// the grid's top-left corner.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if dir := m.keys.Direction(msg); dir != NoDirection {
			m.nav.Handle(dir, m.bounds(), m.disabled)
			c := m.nav.Cell()
			m.logger.Debug("cursor moved", "dir", dir, "row", c.Row, "col", c.Col)
			return m, nil
		}
		if c := m.nav.Cell(); c.Col == 0 && key.Matches(msg, m.keys.Toggle) {
			m.ToggleRow(c.Row)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.X >= checkboxWidth {
			return m, nil
		}
		if row, ok := m.rowAt(msg.Y); ok {
			m.ToggleRow(row)
		}
	}
	return m, nil
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus implements ui.Focusable. The reachable cell takes focus.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	m.nav.Focus()
	return events.FocusCmd(m.id)
}

// Blur implements ui.Focusable.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.nav.Blur()
	return events.BlurCmd(m.id)
}

// Focused implements ui.Focusable.
func (m *Model) Focused() bool { return m.focused }

// KeyMap exposes the bindings for help rendering.
func (m *Model) KeyMap() KeyMap { return m.keys }

// Cursor returns the reachable cell.
func (m *Model) Cursor() Cell { return m.nav.Cell() }

// Reachable reports whether c is the one keyboard-reachable cell.
func (m *Model) Reachable(c Cell) bool {
	return len(m.rows) > 0 && m.nav.Reachable(c)
}

// CellFocused reports whether the reachable cell currently holds focus.
func (m *Model) CellFocused() bool { return m.nav.Focused() }

// CellDisabled reports whether c is a disabled cell.
func (m *Model) CellDisabled(c Cell) bool { return m.disabled(c) }

// Rows returns the current data.
func (m *Model) Rows() []Row { return m.rows }

// Row returns the row at i.
func (m *Model) Row(i int) (Row, bool) {
	if i < 0 || i >= len(m.rows) {
		return nil, false
	}
	return m.rows[i], true
}

// Columns returns the resolved column layout.
func (m *Model) Columns() Resolved { return m.resolved }

// Criteria returns the selection criteria in effect.
func (m *Model) Criteria() *Criteria { return m.criteria }

// Checkbox returns the checkbox of row i.
func (m *Model) Checkbox(i int) *checkbox.Model {
	if i < 0 || i >= len(m.boxes) {
		return nil
	}
	return m.boxes[i]
}

// Selectable reports whether row i may be selected.
func (m *Model) Selectable(i int) bool {
	cb := m.Checkbox(i)
	return cb != nil && !cb.Disabled()
}

// SelectableCount returns the number of enabled rows.
func (m *Model) SelectableCount() int {
	n := 0
	for _, cb := range m.boxes {
		if !cb.Disabled() {
			n++
		}
	}
	return n
}

// View renders the grid, or a placeholder when there is no data.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return m.styles.Empty.Render(EmptyMessage)
	}
	return m.table().Render()
}

// rowAt maps line y of the rendered grid to a data row. Narrow grids wrap
// cells, so a row may span several lines; the row separators of a bordered
// render give each row's extent.
func (m *Model) rowAt(y int) (int, bool) {
	if y < firstRowLine {
		return 0, false
	}
	lines := strings.Split(m.table().BorderRow(true).Render(), "\n")
	if len(lines) <= firstRowLine {
		return 0, false
	}
	row, line := 0, firstRowLine
	for _, l := range lines[firstRowLine:] {
		s := ansi.Strip(l)
		switch {
		case strings.HasPrefix(s, gridBorder.BottomLeft):
			return 0, false
		case strings.HasPrefix(s, gridBorder.MiddleLeft):
			row++
			continue
		}
		if line == y {
			return row, row < len(m.rows)
		}
		line++
	}
	return 0, false
}

func (m *Model) table() *table.Table {
	headers := append([]string{""}, m.resolved.Labels...)
	rows := make([][]string, len(m.rows))
	for i, row := range m.rows {
		cells := make([]string, 0, len(m.resolved.Keys)+1)
		cells = append(cells, m.boxes[i].Glyph())
		for _, k := range m.resolved.Keys {
			cells = append(cells, m.cellText(row, k))
		}
		rows[i] = cells
	}

	t := table.New().
		Border(gridBorder).
		BorderStyle(m.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(m.cellStyle)
	if m.width > 0 {
		t = t.Width(m.width)
	}
	return t
}

func (m *Model) cellText(row Row, key string) string {
	text := row.Text(key)
	if m.criteria == nil || key != m.criteria.Key {
		return text
	}
	marker := m.styles.Fail.Render(failMarker)
	if m.criteria.Passes(row) {
		marker = m.styles.Pass.Render(passMarker)
	}
	return marker + capitalize(text)
}

func (m *Model) cellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		if col > 0 && col-1 < len(m.resolved.Labels) && m.resolved.IsSelectionLabel(m.resolved.Labels[col-1]) {
			return m.styles.SelectionHead
		}
		return m.styles.Header
	}

	style := m.styles.Cell
	if row >= 0 && row < len(m.boxes) && m.boxes[row].Checked() {
		style = m.styles.SelectedRow
	}
	if m.nav.Reachable(Cell{Row: row, Col: col}) {
		if m.focused && m.nav.Focused() {
			return style.Inherit(m.styles.CurrentFocused)
		}
		return style.Inherit(m.styles.Current)
	}
	return style
}

func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
