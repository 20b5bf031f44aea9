package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AbsentColumnsYieldZeroValues(t *testing.T) {
	tbl := NewTable(3)

	assert.False(t, tbl.HasColumn("anything"))
	assert.Equal(t, []string{"", "", ""}, tbl.Strings("anything"))
	assert.Equal(t, []float64{0, 0, 0}, tbl.Numeric("anything"))
	assert.Equal(t, "", tbl.String("anything", 1))
	assert.Equal(t, 0.0, tbl.Value("anything", 1))
}

func TestTable_SetColumnsFitToRowCount(t *testing.T) {
	tbl := NewTable(3)
	tbl.SetStrings("short", []string{"a"})
	tbl.SetNumeric("long", []float64{1, 2, 3, 4, 5})

	assert.Equal(t, []string{"a", "", ""}, tbl.Strings("short"))
	assert.Equal(t, []float64{1, 2, 3}, tbl.Numeric("long"))
}

func TestTable_OutOfRangeRowLookups(t *testing.T) {
	tbl := NewTable(2)
	tbl.SetStrings(ColName, []string{"a", "b"})

	assert.Equal(t, "", tbl.String(ColName, -1))
	assert.Equal(t, "", tbl.String(ColName, 2))
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := NewTable(2)
	tbl.SetStrings(ColName, []string{"a", "b"})
	tbl.SetNumeric(ColMVPPoints, []float64{1, 2})

	clone := tbl.Clone()
	clone.SetStrings(ColName, []string{"x", "y"})
	clone.SetNumeric(ColMVPPoints, []float64{9, 9})
	clone.SetNumeric("extra", []float64{7, 7})

	assert.Equal(t, []string{"a", "b"}, tbl.Strings(ColName))
	assert.Equal(t, []float64{1, 2}, tbl.Numeric(ColMVPPoints))
	assert.False(t, tbl.HasColumn("extra"))
}

func TestTable_RowIndexByName(t *testing.T) {
	tbl := NewTable(3)
	tbl.SetStrings(ColName, []string{"Asha", "Bela", "Chitra"})

	assert.Equal(t, 1, tbl.RowIndexByName("Bela"))
	assert.Equal(t, -1, tbl.RowIndexByName("Nobody"))
}

func TestTable_ColumnsAreSortedAndDeduplicated(t *testing.T) {
	tbl := NewTable(1)
	tbl.SetStrings("b", []string{"x"})
	tbl.SetNumeric("b", []float64{1})
	tbl.SetNumeric("a", []float64{2})

	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
}
