package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/tui/components/grid"
)

type PrettyPrint struct {
	Out       io.Writer
	ShowIndex bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, selectable, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d of %d selectable\n", selectable, total)
}

// Dataset prints every row with a leading marker for rows that can be
// selected for download.
func (pp *PrettyPrint) Dataset(ds *dataset.Dataset) {
	if len(ds.Rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	cols := grid.Resolve(ds.Rows, ds.Columns, ds.Criteria)
	yes := color.New(color.FgGreen)
	no := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	header := make([]any, 0, len(cols.Labels)+2)
	if pp.ShowIndex {
		header = append(header, "#")
	}
	header = append(header, "")
	for _, l := range cols.Labels {
		header = append(header, l)
	}
	tbl.AddRow(header...)

	for i, row := range ds.Rows {
		cells := make([]any, 0, len(header))
		if pp.ShowIndex {
			cells = append(cells, i)
		}
		if ds.Criteria != nil && ds.Criteria.Selectable(row) {
			cells = append(cells, yes.Sprint("[ ]"))
		} else {
			cells = append(cells, no.Sprint(" - "))
		}
		for _, k := range cols.Keys {
			cells = append(cells, row.Text(k))
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
