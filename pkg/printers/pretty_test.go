package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/downloads/pkg/dataset"
)

func TestDatasetMarksSelectableRows(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowIndex: true}

	ds := dataset.Sample()
	pp.TitleWithCount("Download list", 2, len(ds.Rows))
	pp.Dataset(ds)

	out := buf.String()
	if !strings.Contains(out, "Download list - 2 of 6 selectable") {
		t.Fatalf("missing title:\n%s", out)
	}
	for _, want := range []string{"Name", "Device", "Status", "smss.exe", "netsh.exe"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "[ ]"); got != 2 {
		t.Errorf("selectable markers = %d, want 2\n%s", got, out)
	}
}

func TestDatasetEmpty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Dataset(&dataset.Dataset{})
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("got %q", buf.String())
	}
}
