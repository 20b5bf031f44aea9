// Package services owns the dataset lifecycle: load the raw table once,
// run the enrichment pipeline once, and memoize the result until the next
// explicit reload. Readers never see a partially enriched table.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/phf-auction/player-stats-service/internal/engine"
)

// TableSource loads the raw season export.
type TableSource interface {
	LoadTable(ctx context.Context) (*engine.Table, error)
}

// Snapshot is one fully enriched load cycle. Immutable once published; every
// reload produces a wholly new snapshot, so concurrent readers of an old one
// are unaffected.
type Snapshot struct {
	LoadID    uuid.UUID
	LoadedAt  time.Time
	Table     *engine.Table
	Baselines engine.Baselines
}

// EnrichmentService runs the pipeline and caches the latest snapshot.
type EnrichmentService struct {
	source TableSource
	logger *logrus.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

func NewEnrichmentService(source TableSource, logger *logrus.Logger) *EnrichmentService {
	return &EnrichmentService{
		source: source,
		logger: logger,
	}
}

// Reload loads the raw table, enriches it and swaps in the new snapshot.
// On failure the previous snapshot stays in place.
func (s *EnrichmentService) Reload(ctx context.Context) (*Snapshot, error) {
	started := time.Now()

	raw, err := s.source.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player table: %w", err)
	}

	enriched, baselines, err := engine.Enrich(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich player table: %w", err)
	}

	snap := &Snapshot{
		LoadID:    uuid.New(),
		LoadedAt:  time.Now(),
		Table:     enriched,
		Baselines: baselines,
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"load_id":  snap.LoadID.String(),
		"rows":     enriched.Len(),
		"duration": time.Since(started).String(),
	}).Info("Player table enriched")

	return snap, nil
}

// Snapshot returns the latest enriched snapshot, or false before the first
// successful load.
func (s *EnrichmentService) Snapshot() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, false
	}
	return s.snap, true
}

// Ready reports whether a snapshot is available to serve.
func (s *EnrichmentService) Ready() bool {
	_, ok := s.Snapshot()
	return ok
}
