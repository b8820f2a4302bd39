package grid

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoCriteria is returned when rows are supplied without selection criteria.
	ErrNoCriteria = errors.New("selection criteria required")
	// ErrInvalidCriteria is returned when the criteria lack a key or values.
	ErrInvalidCriteria = errors.New("selection criteria need a key and values")
	// ErrMissingField is returned when a row has no value for the criteria key.
	ErrMissingField = errors.New("row is missing the selection criteria field")
)

// Criteria decides which rows can be selected. A row is selectable when its
// Key field is not one of Values, and it is flagged as passing when it is.
type Criteria struct {
	Key    string
	Values []any
}

// Validate checks the criteria themselves.
func (c *Criteria) Validate() error {
	if c == nil {
		return ErrNoCriteria
	}
	if c.Key == "" || c.Values == nil {
		return ErrInvalidCriteria
	}
	return nil
}

// Check verifies that row can be evaluated against the criteria.
func (c *Criteria) Check(row Row) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := row.Get(c.Key); !ok {
		return fmt.Errorf("%w: %q", ErrMissingField, c.Key)
	}
	return nil
}

// Selectable reports whether the row's checkbox may be toggled. The row must
// have passed Check.
func (c *Criteria) Selectable(row Row) bool {
	return !c.Passes(row)
}

// Passes reports whether the row's criteria field is one of Values. The row
// must have passed Check.
func (c *Criteria) Passes(row Row) bool {
	v, _ := row.Get(c.Key)
	return c.Contains(v)
}

// Contains reports whether v is one of Values.
func (c *Criteria) Contains(v any) bool {
	for _, want := range c.Values {
		if equal(v, want) {
			return true
		}
	}
	return false
}

// equal compares scalar values, treating all numeric kinds as float64 so that
// a YAML 1 matches an int 1.
func equal(a, b any) bool {
	a, b = normalize(a), normalize(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
