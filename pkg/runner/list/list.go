package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/printers"
	"tableflip.dev/downloads/pkg/tui/components/grid"
)

type List struct {
	Title     string
	ShowIndex bool
	Output    string
	Dataset   *dataset.Dataset
	Out       io.Writer
}

type jsonRow struct {
	Index      int            `json:"index"`
	Selectable bool           `json:"selectable"`
	Fields     map[string]any `json:"fields"`
}

func (l *List) Do(ctx context.Context) error {
	if l.Dataset == nil {
		return errors.New("can not list, no dataset")
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}
	for i, row := range l.Dataset.Rows {
		if err := l.Dataset.Criteria.Check(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	switch l.Output {
	case "json":
		rows := make([]jsonRow, 0, len(l.Dataset.Rows))
		for i, row := range l.Dataset.Rows {
			fields := make(map[string]any, len(row))
			for _, f := range row {
				fields[f.Key] = f.Value
			}
			rows = append(rows, jsonRow{
				Index:      i,
				Selectable: l.Dataset.Criteria.Selectable(row),
				Fields:     fields,
			})
		}
		b, err := json.Marshal(rows)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))

	default:
		pp := printers.PrettyPrint{Out: out, ShowIndex: l.ShowIndex}
		pp.TitleWithCount(l.Title, selectable(l.Dataset.Criteria, l.Dataset.Rows), len(l.Dataset.Rows))
		pp.Dataset(l.Dataset)
	}
	return nil
}

func selectable(c *grid.Criteria, rows []grid.Row) int {
	n := 0
	for _, row := range rows {
		if c.Selectable(row) {
			n++
		}
	}
	return n
}
