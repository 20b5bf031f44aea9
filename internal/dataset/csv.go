// Package dataset loads the raw season export into the engine table. Only
// structural failure (a missing or empty export) surfaces as an error;
// cell-level noise is the sanitizer's problem.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phf-auction/player-stats-service/internal/engine"
)

// ParseCSV reads a season export (header row of raw schema column names,
// one row per player) into a table. Name cells are trimmed; everything else
// is kept verbatim for the sanitizer.
func ParseCSV(r io.Reader, source string) (*engine.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports are ragged at times

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %w", source, engine.ErrEmptyTable)
	}

	header := records[0]
	rows := records[1:]
	table := engine.NewTable(len(rows))

	for j, col := range header {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		vals := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				vals[i] = row[j]
			}
		}
		if col == engine.ColName {
			for i := range vals {
				vals[i] = strings.TrimSpace(vals[i])
			}
		}
		table.SetStrings(col, vals)
	}

	return table, nil
}

// FileSource loads the export from local disk.
type FileSource struct {
	Path string
}

func (f FileSource) LoadTable(ctx context.Context) (*engine.Table, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return ParseCSV(file, f.Path)
}
