package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"tableflip.dev/downloads/pkg/tui/components/grid"
)

// ErrNotMapping is returned when a data entry is not a mapping of fields.
var ErrNotMapping = errors.New("data entry is not a mapping")

// ErrNotScalar is returned when a field holds a list or mapping.
var ErrNotScalar = errors.New("field value is not a scalar")

// Dataset is everything the download list renders.
type Dataset struct {
	Rows     []grid.Row
	Columns  []grid.Column
	Criteria *grid.Criteria
}

type fileColumn struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

type fileCriteria struct {
	Key    string `yaml:"key"`
	Values []any  `yaml:"values"`
}

type file struct {
	Config            []fileColumn  `yaml:"config"`
	SelectionCriteria *fileCriteria `yaml:"selectionCriteria"`
	Data              []yaml.Node   `yaml:"data"`
}

// Load reads a dataset file. A leading ~ in path is expanded.
func Load(path string) (*Dataset, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", path, err)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return ds, nil
}

// Parse decodes a dataset from YAML. Row fields keep the order they are
// written in.
func Parse(r io.Reader) (*Dataset, error) {
	var raw file
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := &Dataset{}
	for _, c := range raw.Config {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		ds.Columns = append(ds.Columns, grid.Column{Key: c.Key, Label: label})
	}
	if raw.SelectionCriteria != nil {
		ds.Criteria = &grid.Criteria{
			Key:    raw.SelectionCriteria.Key,
			Values: raw.SelectionCriteria.Values,
		}
	}
	for i := range raw.Data {
		row, err := decodeRow(&raw.Data[i])
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func decodeRow(n *yaml.Node) (grid.Row, error) {
	if n.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	row := make(grid.Row, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %q", ErrNotScalar, k.Value)
		}
		var value any
		if err := v.Decode(&value); err != nil {
			return nil, fmt.Errorf("field %q: %w", k.Value, err)
		}
		row = append(row, grid.Field{Key: k.Value, Value: value})
	}
	return row, nil
}
