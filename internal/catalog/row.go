// Package catalog supplies physical and orbital parameters for stars,
// minor planets, and comets from local datasets.
package catalog

import "math"

// Row is one record of a physical-parameter catalog. Presence of a field
// is tracked separately from its value, so a stored NaN remains
// distinguishable from a missing column.
type Row struct {
	fields map[string]float64
}

// RowOf builds a row from a field map. The map is copied; the row is
// immutable afterwards.
func RowOf(fields map[string]float64) Row {
	m := make(map[string]float64, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return Row{fields: m}
}

// Has reports whether the field exists in the row, NaN values included.
func (r Row) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Value returns the field's value, or NaN if the field is absent.
// Use Has to tell the two NaNs apart.
func (r Row) Value(field string) float64 {
	if v, ok := r.fields[field]; ok {
		return v
	}
	return math.NaN()
}

// Fields returns the field names present in the row.
func (r Row) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	return names
}
