package grid

import (
	"errors"
	"testing"
)

func TestSelectableAndPassesAreOpposite(t *testing.T) {
	c := &Criteria{Key: "status", Values: []any{"locked", 3}}
	cases := []struct {
		row        Row
		selectable bool
	}{
		{NewRow("name", "a", "status", "available"), true},
		{NewRow("name", "b", "status", "locked"), false},
		{NewRow("name", "c", "status", 3.0), false},
		{NewRow("name", "d", "status", int64(3)), false},
		{NewRow("name", "e", "status", "3"), true},
		{NewRow("name", "f", "status", nil), true},
	}
	for _, tc := range cases {
		if got := c.Selectable(tc.row); got != tc.selectable {
			t.Fatalf("Selectable(%s) = %t, want %t", tc.row, got, tc.selectable)
		}
		if c.Passes(tc.row) == c.Selectable(tc.row) {
			t.Fatalf("Passes and Selectable agree for %s", tc.row)
		}
	}
}

func TestCheckFailsFast(t *testing.T) {
	var nilCriteria *Criteria
	if err := nilCriteria.Check(NewRow("a", 1)); !errors.Is(err, ErrNoCriteria) {
		t.Fatalf("nil criteria: %v", err)
	}
	if err := (&Criteria{Values: []any{}}).Validate(); !errors.Is(err, ErrInvalidCriteria) {
		t.Fatalf("missing key: %v", err)
	}
	if err := (&Criteria{Key: "status"}).Validate(); !errors.Is(err, ErrInvalidCriteria) {
		t.Fatalf("missing values: %v", err)
	}
	c := &Criteria{Key: "status", Values: []any{}}
	if err := c.Check(NewRow("name", "x")); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing field: %v", err)
	}
	if err := c.Check(NewRow("status", "x")); err != nil {
		t.Fatalf("valid row: %v", err)
	}
}

func TestNonComparableValuesNeverMatch(t *testing.T) {
	c := &Criteria{Key: "tags", Values: []any{[]string{"a"}}}
	if !c.Selectable(NewRow("tags", []string{"a"})) {
		t.Fatalf("slices should not compare equal")
	}
}
