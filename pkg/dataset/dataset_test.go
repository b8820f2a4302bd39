package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/downloads/pkg/tui/components/grid"
)

const sampleYAML = `
config:
  - key: name
    label: Name
  - key: status
selectionCriteria:
  key: status
  values: [locked, 3]
data:
  - name: a
    status: available
    size: 12
  - status: locked
    name: b
    size: 3.5
`

func TestParseKeepsFieldOrder(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	require.Equal(t, []grid.Column{{Key: "name", Label: "Name"}, {Key: "status", Label: "status"}}, ds.Columns)
	require.Equal(t, "status", ds.Criteria.Key)
	require.Equal(t, []any{"locked", 3}, ds.Criteria.Values)

	require.Len(t, ds.Rows, 2)
	require.Equal(t, []string{"name", "status", "size"}, ds.Rows[0].Keys())
	require.Equal(t, []string{"status", "name", "size"}, ds.Rows[1].Keys())
	require.Equal(t, 12, mustGet(t, ds.Rows[0], "size"))
	require.Equal(t, 3.5, mustGet(t, ds.Rows[1], "size"))

	require.True(t, ds.Criteria.Selectable(ds.Rows[0]))
	require.False(t, ds.Criteria.Selectable(ds.Rows[1]))
}

func TestParseRejectsNestedValues(t *testing.T) {
	_, err := Parse(strings.NewReader("data:\n  - name: a\n    tags: [x, y]\n"))
	require.ErrorIs(t, err, ErrNotScalar)

	_, err = Parse(strings.NewReader("data:\n  - just-a-string\n"))
	require.ErrorIs(t, err, ErrNotMapping)
}

func TestParseEmpty(t *testing.T) {
	ds, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, ds.Rows)
	require.Nil(t, ds.Criteria)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestSampleIsValid(t *testing.T) {
	ds := Sample()
	for i, row := range ds.Rows {
		require.NoError(t, ds.Criteria.Check(row), "row %d", i)
	}
	selectable := 0
	for _, row := range ds.Rows {
		if ds.Criteria.Selectable(row) {
			selectable++
		}
	}
	require.Equal(t, 2, selectable)
}

func mustGet(t *testing.T, row grid.Row, key string) any {
	t.Helper()
	v, ok := row.Get(key)
	require.True(t, ok, "missing %q", key)
	return v
}
