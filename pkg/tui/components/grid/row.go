package grid

import (
	"fmt"
	"strings"
)

// Field is one named value of a Row.
type Field struct {
	Key   string
	Value any
}

// Row is an ordered record. Field order is the order the source declared the
// fields in; rows are identified by their position in the data slice.
type Row []Field

// NewRow builds a row from alternating key/value arguments.
func NewRow(kv ...any) Row {
	row := make(Row, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		row = append(row, Field{Key: fmt.Sprint(kv[i]), Value: kv[i+1]})
	}
	return row
}

// Get returns the value stored under key.
func (r Row) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Text returns the display form of the value under key, or "" when missing.
func (r Row) Text(key string) string {
	v, ok := r.Get(key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Keys returns the field names in declaration order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// String renders the row as key=value pairs.
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, f := range r {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return strings.Join(parts, " ")
}
