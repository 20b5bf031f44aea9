package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_PlaceholdersAndMalformedCellsDefaultToZero(t *testing.T) {
	tbl := NewTable(6)
	tbl.SetStrings(ColOverallBattingAvg, []string{"34.5", "-", "", "nan", "NaN", "abc"})

	Sanitize(tbl)

	assert.Equal(t, []float64{34.5, 0, 0, 0, 0, 0}, tbl.Numeric(ColOverallBattingAvg))
}

func TestSanitize_HighScoreStripsNotOutMarker(t *testing.T) {
	tbl := NewTable(4)
	tbl.SetStrings(ColOverallBattingHS, []string{"54*", "101", "-", "12*"})

	Sanitize(tbl)

	assert.Equal(t, []float64{54, 101, 0, 12}, tbl.Numeric(ColOverallBattingHS))
	// Display string keeps the marker.
	assert.Equal(t, "54*", tbl.String(ColOverallBattingHS, 0))
}

func TestSanitize_AsteriskOutsideHighScoreIsNotStripped(t *testing.T) {
	tbl := NewTable(1)
	tbl.SetStrings(ColOverallBattingRuns, []string{"120*"})

	Sanitize(tbl)

	// Not a high-score column, so "120*" fails to parse and defaults.
	assert.Equal(t, 0.0, tbl.Value(ColOverallBattingRuns, 0))
}

func TestSanitize_AbsentColumnDefaultsToZeroOnLookup(t *testing.T) {
	tbl := NewTable(3)
	tbl.SetStrings(ColName, []string{"a", "b", "c"})

	Sanitize(tbl)

	assert.Equal(t, []float64{0, 0, 0}, tbl.Numeric(ColOverallBowlingEco))
}

func TestSanitize_NeverErrorsOnWhitespaceAndSigns(t *testing.T) {
	tbl := NewTable(4)
	tbl.SetStrings(ColOverallBowlingEco, []string{" 7.25 ", "+3", "-4.5", "--"})

	Sanitize(tbl)

	got := tbl.Numeric(ColOverallBowlingEco)
	assert.Equal(t, 7.25, got[0])
	assert.Equal(t, 3.0, got[1])
	assert.Equal(t, -4.5, got[2])
	assert.Equal(t, 0.0, got[3])
}
