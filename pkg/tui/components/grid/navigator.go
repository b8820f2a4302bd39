package grid

// Cell addresses one grid cell. Column 0 is the checkbox column; data columns
// start at 1.
type Cell struct {
	Row int
	Col int
}

// Direction is an arrow-key input.
type Direction int

const (
	// NoDirection is any key the navigator ignores.
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Bounds describes the grid the cursor moves in. Rows is the number of data
// rows and Columns the number of data columns, so valid columns are
// 0..Columns inclusive.
type Bounds struct {
	Rows    int
	Columns int
}

// DisabledFunc reports whether a cell cannot hold the cursor.
type DisabledFunc func(Cell) bool

// Initial returns the starting cursor: the top-left cell, or the cell to its
// right when the top-left one is disabled.
func Initial(disabled DisabledFunc) Cell {
	c := Cell{}
	if disabled != nil && disabled(c) {
		c.Col++
	}
	return c
}

// Move applies an arrow key to c. Moves past an edge leave the coordinate
// unchanged. A disabled destination is skipped once to the right; a second
// disabled cell is kept, and so is a disabled cell in the last column since
// the skip never leaves the bounds. The grid only disables column 0, which
// always has a column to its right. The bool result is false for
// NoDirection, which causes no transition at all.
func Move(c Cell, d Direction, b Bounds, disabled DisabledFunc) (Cell, bool) {
	var dr, dc int
	switch d {
	case Up:
		if c.Row != 0 {
			dr = -1
		}
	case Down:
		if c.Row != b.Rows-1 {
			dr = 1
		}
	case Left:
		if c.Col != 0 {
			dc = -1
		}
	case Right:
		if c.Col != b.Columns {
			dc = 1
		}
	default:
		return c, false
	}

	next := Cell{Row: c.Row + dr, Col: c.Col + dc}
	if disabled != nil && disabled(next) && next.Col < b.Columns {
		next.Col++
	}
	return next, true
}

// Navigator owns the roving cursor: exactly one cell is reachable once the
// navigator has been started, and that cell may additionally hold focus.
type Navigator struct {
	cell    Cell
	focused bool
	started bool
}

// Start places the cursor on its initial cell without focusing it. Calling it
// again is a no-op; use Clamp to adjust a started navigator to new bounds.
func (n *Navigator) Start(disabled DisabledFunc) {
	if n.started {
		return
	}
	n.cell = Initial(disabled)
	n.focused = false
	n.started = true
}

// Started reports whether Start has run.
func (n *Navigator) Started() bool { return n.started }

// Handle applies d. On any arrow key the previous cell gives up focus and the
// resulting cell becomes the focused, reachable one, even when the move was
// clamped. NoDirection returns false and changes nothing.
func (n *Navigator) Handle(d Direction, b Bounds, disabled DisabledFunc) bool {
	if !n.started {
		return false
	}
	next, ok := Move(n.cell, d, b, disabled)
	if !ok {
		return false
	}
	n.cell = next
	n.focused = true
	return true
}

// Clamp pulls the cursor back inside b after the data changed underneath it.
func (n *Navigator) Clamp(b Bounds, disabled DisabledFunc) {
	if !n.started {
		return
	}
	if n.cell.Row > b.Rows-1 {
		n.cell.Row = max(0, b.Rows-1)
	}
	if n.cell.Col > b.Columns {
		n.cell.Col = b.Columns
	}
	if disabled != nil && disabled(n.cell) && n.cell.Col < b.Columns {
		n.cell.Col++
	}
}

// Cell returns the reachable cell.
func (n *Navigator) Cell() Cell { return n.cell }

// Reachable reports whether c is the single keyboard-reachable cell.
func (n *Navigator) Reachable(c Cell) bool {
	return n.started && c == n.cell
}

// Focused reports whether the reachable cell holds focus.
func (n *Navigator) Focused() bool { return n.started && n.focused }

// Focus gives the reachable cell focus, as tabbing into the grid does.
func (n *Navigator) Focus() {
	if n.started {
		n.focused = true
	}
}

// Blur releases focus while keeping the cell reachable.
func (n *Navigator) Blur() { n.focused = false }
