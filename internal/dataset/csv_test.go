package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phf-auction/player-stats-service/internal/engine"
)

func TestParseCSV_TrimsNamesAndKeepsCellsVerbatim(t *testing.T) {
	in := "name,Overall_Batting_Runs,Overall_Batting_HS\n  Asha Rao ,320,88*\nBela Nair,-,21\n"

	table, err := ParseCSV(strings.NewReader(in), "test")
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Asha Rao", "Bela Nair"}, table.Strings(engine.ColName))
	// Placeholders survive parsing; the sanitizer defaults them later.
	assert.Equal(t, "-", table.String(engine.ColOverallBattingRuns, 1))
	assert.Equal(t, "88*", table.String(engine.ColOverallBattingHS, 0))
}

func TestParseCSV_RaggedRowsPadWithEmptyCells(t *testing.T) {
	in := "name,Overall_Batting_Runs,Overall_Batting_Avg\nAsha,320\nBela\n"

	table, err := ParseCSV(strings.NewReader(in), "test")
	require.NoError(t, err)

	assert.Equal(t, "320", table.String(engine.ColOverallBattingRuns, 0))
	assert.Equal(t, "", table.String(engine.ColOverallBattingRuns, 1))
	assert.Equal(t, "", table.String(engine.ColOverallBattingAvg, 0))
}

func TestParseCSV_HeaderOnlyIsEmptyTable(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("name,Overall_Batting_Runs\n"), "test")
	assert.ErrorIs(t, err, engine.ErrEmptyTable)
}

func TestFileSource_LoadTable(t *testing.T) {
	table, err := FileSource{Path: "testdata/players.csv"}.LoadTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, "Asha Rao", table.String(engine.ColName, 0))
	assert.Equal(t, "4/18", table.String(engine.ColOverallBowlingBB, 1))
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: "testdata/does-not-exist.csv"}.LoadTable(context.Background())
	assert.Error(t, err)
}
