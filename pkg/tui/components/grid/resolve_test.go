package grid

import (
	"reflect"
	"testing"
)

func TestResolveFromConfig(t *testing.T) {
	cols := []Column{{Key: "name", Label: "Name"}, {Key: "status", Label: "Status"}}
	r := Resolve(nil, cols, &Criteria{Key: "status", Values: []any{}})

	if !reflect.DeepEqual(r.Keys, []string{"name", "status"}) {
		t.Fatalf("keys = %v", r.Keys)
	}
	if !reflect.DeepEqual(r.Labels, []string{"Name", "Status"}) {
		t.Fatalf("labels = %v", r.Labels)
	}
	if !r.HasSelection || r.SelectionLabel != "Status" {
		t.Fatalf("selection = %q %t", r.SelectionLabel, r.HasSelection)
	}
	if !r.IsSelectionLabel("Status") || r.IsSelectionLabel("Name") {
		t.Fatalf("IsSelectionLabel mismatch")
	}
}

func TestResolveWithoutMatchingSelection(t *testing.T) {
	r := Resolve(nil, []Column{{Key: "name", Label: "Name"}}, &Criteria{Key: "status", Values: []any{}})
	if r.HasSelection || r.IsSelectionLabel("") {
		t.Fatalf("unexpected selection column %q", r.SelectionLabel)
	}
}

func TestResolveFallsBackToFirstRow(t *testing.T) {
	rows := []Row{
		NewRow("name", "a", "device", "Stark", "status", "scheduled"),
		NewRow("other", "ignored"),
	}
	r := Resolve(rows, nil, &Criteria{Key: "status", Values: []any{}})

	want := []string{"name", "device", "status"}
	if !reflect.DeepEqual(r.Keys, want) || !reflect.DeepEqual(r.Labels, want) {
		t.Fatalf("keys=%v labels=%v", r.Keys, r.Labels)
	}
	if r.HasSelection {
		t.Fatalf("fallback layout should not flag a selection column")
	}
	r.Labels[0] = "changed"
	if r.Keys[0] != "name" {
		t.Fatalf("labels must not alias keys")
	}
}
