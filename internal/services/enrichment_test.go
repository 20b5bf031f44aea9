package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phf-auction/player-stats-service/internal/engine"
)

type stubSource struct {
	table *engine.Table
	err   error
	loads int
}

func (s *stubSource) LoadTable(ctx context.Context) (*engine.Table, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func testTable() *engine.Table {
	tbl := engine.NewTable(2)
	tbl.SetStrings(engine.ColName, []string{"Asha", "Bela"})
	tbl.SetStrings(engine.ColOverallBattingRuns, []string{"320", "45"})
	tbl.SetStrings(engine.ColOverallBattingAvg, []string{"40", "15"})
	tbl.SetStrings(engine.ColOverallBattingSR, []string{"120", "90"})
	tbl.SetStrings(engine.ColOverallBattingInns, []string{"12", "4"})
	tbl.SetStrings(engine.ColOverallBowlingWkts, []string{"2", "14"})
	tbl.SetStrings(engine.ColOverallBowlingInns, []string{"3", "12"})
	tbl.SetStrings(engine.ColOverallBowlingEco, []string{"8.5", "6.2"})
	return tbl
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestEnrichmentService_NotReadyBeforeFirstLoad(t *testing.T) {
	svc := NewEnrichmentService(&stubSource{table: testTable()}, quietLogger())

	assert.False(t, svc.Ready())
	_, ok := svc.Snapshot()
	assert.False(t, ok)
}

func TestEnrichmentService_ReloadPublishesEnrichedSnapshot(t *testing.T) {
	svc := NewEnrichmentService(&stubSource{table: testTable()}, quietLogger())

	snap, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.True(t, svc.Ready())
	assert.True(t, snap.Table.HasColumn(engine.ColMVPPoints))
	assert.True(t, snap.Table.HasColumn(engine.ColInferredRole))
	assert.NotEqual(t, "", snap.LoadID.String())
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestEnrichmentService_SnapshotStableBetweenReloads(t *testing.T) {
	svc := NewEnrichmentService(&stubSource{table: testTable()}, quietLogger())

	first, err := svc.Reload(context.Background())
	require.NoError(t, err)

	got, ok := svc.Snapshot()
	require.True(t, ok)
	assert.Same(t, first, got, "readers see the memoized snapshot until the next reload")

	second, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.LoadID, second.LoadID, "every load cycle gets its own identity")
}

func TestEnrichmentService_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	source := &stubSource{table: testTable()}
	svc := NewEnrichmentService(source, quietLogger())

	first, err := svc.Reload(context.Background())
	require.NoError(t, err)

	source.err = errors.New("upstream down")
	_, err = svc.Reload(context.Background())
	assert.Error(t, err)

	got, ok := svc.Snapshot()
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestEnrichmentService_EmptyTableSurfacesStructuralError(t *testing.T) {
	svc := NewEnrichmentService(&stubSource{table: engine.NewTable(0)}, quietLogger())

	_, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, engine.ErrEmptyTable)
}
