package engine

import "sort"

// Table is a column-oriented, in-memory player table. Columns live in two
// planes: raw string columns as loaded from the source export, and numeric
// columns produced by the sanitizer and the enrichment passes. Row order is
// fixed and shared across every column.
//
// Lookups of absent columns yield zero-valued columns rather than errors;
// a missing column is never a hard failure for the pipeline.
type Table struct {
	rows int
	str  map[string][]string
	num  map[string][]float64
}

// NewTable creates an empty table with a fixed row count.
func NewTable(rows int) *Table {
	return &Table{
		rows: rows,
		str:  make(map[string][]string),
		num:  make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// HasColumn reports whether the column exists in either plane.
func (t *Table) HasColumn(col string) bool {
	if _, ok := t.str[col]; ok {
		return true
	}
	_, ok := t.num[col]
	return ok
}

// Columns returns every column name, sorted for deterministic iteration.
func (t *Table) Columns() []string {
	seen := make(map[string]bool, len(t.str)+len(t.num))
	cols := make([]string, 0, len(t.str)+len(t.num))
	for c := range t.str {
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	for c := range t.num {
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	sort.Strings(cols)
	return cols
}

// Strings returns the raw string column, or an all-empty column when absent.
func (t *Table) Strings(col string) []string {
	if vals, ok := t.str[col]; ok {
		return vals
	}
	return make([]string, t.rows)
}

// Numeric returns the numeric column, or an all-zero column when absent.
func (t *Table) Numeric(col string) []float64 {
	if vals, ok := t.num[col]; ok {
		return vals
	}
	return make([]float64, t.rows)
}

// String returns a single raw cell, "" when the column is absent.
func (t *Table) String(col string, row int) string {
	if vals, ok := t.str[col]; ok && row >= 0 && row < len(vals) {
		return vals[row]
	}
	return ""
}

// Value returns a single numeric cell, 0 when the column is absent.
func (t *Table) Value(col string, row int) float64 {
	if vals, ok := t.num[col]; ok && row >= 0 && row < len(vals) {
		return vals[row]
	}
	return 0
}

// SetStrings installs a raw string column. Columns shorter than the row
// count are padded with empty cells; longer ones are truncated.
func (t *Table) SetStrings(col string, vals []string) {
	fitted := make([]string, t.rows)
	copy(fitted, vals)
	t.str[col] = fitted
}

// SetNumeric installs a numeric column, fitted to the row count.
func (t *Table) SetNumeric(col string, vals []float64) {
	fitted := make([]float64, t.rows)
	copy(fitted, vals)
	t.num[col] = fitted
}

// Clone returns a deep copy. Enrichment always works on a clone so a loaded
// snapshot is never mutated in place.
func (t *Table) Clone() *Table {
	out := NewTable(t.rows)
	for col, vals := range t.str {
		c := make([]string, len(vals))
		copy(c, vals)
		out.str[col] = c
	}
	for col, vals := range t.num {
		c := make([]float64, len(vals))
		copy(c, vals)
		out.num[col] = c
	}
	return out
}

// RowIndexByName returns the first row whose name cell matches, or -1.
// Presentation assumes names are unique; the engine does not enforce it.
func (t *Table) RowIndexByName(name string) int {
	for i, n := range t.Strings(ColName) {
		if n == name {
			return i
		}
	}
	return -1
}
