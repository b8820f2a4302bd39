package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Grid     GridTheme
	Checkbox CheckboxTheme
	Button   ButtonTheme
	List     ListTheme
	Modal    ModalTheme
}

// FooterTheme groups styles used by the bottom help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// GridTheme styles the selectable data grid.
type GridTheme struct {
	Border         lipgloss.Style
	Header         lipgloss.Style
	SelectionHead  lipgloss.Style
	Cell           lipgloss.Style
	SelectedRow    lipgloss.Style
	Current        lipgloss.Style
	CurrentFocused lipgloss.Style
	Pass           lipgloss.Style
	Fail           lipgloss.Style
	Empty          lipgloss.Style
}

// CheckboxTheme styles checkbox widgets.
type CheckboxTheme struct {
	Box      lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
}

// ButtonTheme styles icon buttons.
type ButtonTheme struct {
	Normal   lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
}

// ListTheme styles the download list container.
type ListTheme struct {
	Title    lipgloss.Style
	Controls lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., notifications).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("#4b95e0")
	hover := lipgloss.Color("238")
	dim := lipgloss.Color("244")

	cell := lipgloss.NewStyle().Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(dim),
		},
		Grid: GridTheme{
			Border:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Header:         cell.Bold(true),
			SelectionHead:  cell.Bold(true).PaddingLeft(3),
			Cell:           cell,
			SelectedRow:    cell.Background(lipgloss.Color("236")),
			Current:        cell.Underline(true),
			CurrentFocused: cell.Reverse(true),
			Pass:           lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Fail:           lipgloss.NewStyle().Foreground(hover),
			Empty:          lipgloss.NewStyle().Bold(true).Foreground(dim),
		},
		Checkbox: CheckboxTheme{
			Box:      lipgloss.NewStyle().Foreground(accent),
			Label:    lipgloss.NewStyle(),
			Focused:  lipgloss.NewStyle().Foreground(accent).Reverse(true),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
		Button: ButtonTheme{
			Normal:   lipgloss.NewStyle().Padding(0, 1),
			Focused:  lipgloss.NewStyle().Padding(0, 1).Background(hover),
			Disabled: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240")),
		},
		List: ListTheme{
			Title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
			Controls: lipgloss.NewStyle().PaddingBottom(1),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Hint:  lipgloss.NewStyle().Foreground(dim),
		},
	}
}
