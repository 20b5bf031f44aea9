package engine

import (
	"strconv"
	"strings"
)

// Sanitize coerces every numeric column to float64, one whole-column pass at
// a time. Placeholder tokens ("-", empty, "nan") and anything that fails to
// parse default to 0; the source exports are noisy and a malformed cell must
// never sink a load. High-score columns strip the trailing not-out marker
// before parsing; the original display string ("54*") stays available in the
// string plane.
func Sanitize(t *Table) {
	for _, col := range NumericColumns() {
		raw, ok := t.str[col]
		if !ok {
			// Column absent from the export: defaults to zero on lookup.
			continue
		}
		stripMarker := highScoreColumn(col)
		vals := make([]float64, len(raw))
		for i, cell := range raw {
			vals[i] = parseCell(cell, stripMarker)
		}
		t.num[col] = vals
	}
}

func parseCell(cell string, stripNotOut bool) float64 {
	s := strings.TrimSpace(cell)
	if stripNotOut {
		s = strings.ReplaceAll(s, "*", "")
	}
	if s == "" || s == "-" || strings.EqualFold(s, "nan") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
