package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Setenv("DOWNLOADS_CONFIG_PATH", dir)
	t.Chdir(dir)
	color.NoColor = true
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListSample(t *testing.T) {
	isolate(t)
	out, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Download list - 2 of 6 selectable")
	require.Contains(t, out, "uxtheme.dll")
}

func TestListDatasetFlagJSON(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "files.yaml")
	body := "selectionCriteria:\n  key: state\n  values: [busy]\ndata:\n  - name: a.txt\n    state: busy\n  - name: b.txt\n    state: idle\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := run(t, "list", "--json", "--dataset", path)
	require.NoError(t, err)

	var rows []struct {
		Index      int            `json:"index"`
		Selectable bool           `json:"selectable"`
		Fields     map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	require.False(t, rows[0].Selectable)
	require.True(t, rows[1].Selectable)
	require.Equal(t, "b.txt", rows[1].Fields["name"])
}

func TestListUsesConfiguredDatasetAndLabel(t *testing.T) {
	dir := isolate(t)
	data := filepath.Join(dir, "files.yaml")
	require.NoError(t, os.WriteFile(data, []byte("selectionCriteria:\n  key: s\n  values: [x]\ndata:\n  - s: y\n"), 0o600))
	conf := "dataset: " + data + "\naria:\n  table: My files\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".downloads.yaml"), []byte(conf), 0o600))

	out, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "My files - 1 of 1 selectable")
}

func TestListMissingDataset(t *testing.T) {
	dir := isolate(t)
	_, err := run(t, "list", "--dataset", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestVersionShort(t *testing.T) {
	isolate(t)
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	require.Contains(t, out, "dev")
}

func TestUIWatchNeedsDatasetFile(t *testing.T) {
	isolate(t)
	_, err := run(t, "ui", "--watch")
	require.EqualError(t, err, "--watch needs a dataset file")
}
