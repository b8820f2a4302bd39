package main

import (
	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/tui/components/grid"
)

func loadDataset(opts options) (*dataset.Dataset, error) {
	if opts.dataset == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(opts.dataset)
}

// unconfiguredSample drops the column config so the grid falls back to the
// first row's field names.
func unconfiguredSample() *dataset.Dataset {
	ds := dataset.Sample()
	ds.Columns = nil
	return ds
}

// sampleNumericCriteria selects rows by a numeric field.
func sampleNumericCriteria() *dataset.Dataset {
	return &dataset.Dataset{
		Rows: []grid.Row{
			grid.NewRow("name", "report.pdf", "size", 120, "retries", 0),
			grid.NewRow("name", "dump.bin", "size", 4096, "retries", 3),
			grid.NewRow("name", "notes.txt", "size", 2, "retries", 1),
		},
		Columns: []grid.Column{
			{Key: "name", Label: "Name"},
			{Key: "size", Label: "Size (KB)"},
			{Key: "retries", Label: "Retries"},
		},
		Criteria: &grid.Criteria{Key: "retries", Values: []any{3}},
	}
}
