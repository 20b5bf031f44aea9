// Package providers fetches the season export from an upstream HTTP source,
// with circuit-breaker protection and an optional Redis read-through cache
// for the raw payload so restarts do not hammer the upstream.
package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/phf-auction/player-stats-service/internal/dataset"
	"github.com/phf-auction/player-stats-service/internal/engine"
)

const (
	rawPayloadCacheKey = "player-stats:source:raw"
	rawPayloadTTL      = 12 * time.Hour
	maxPayloadBytes    = 8 << 20
)

// SourceClient fetches the raw CSV export over HTTP.
type SourceClient struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	redis   *redis.Client // nil when no cache is configured
	logger  *logrus.Logger
}

// NewSourceClient creates a source client. redisClient may be nil.
func NewSourceClient(url string, timeout time.Duration, threshold int, redisClient *redis.Client, logger *logrus.Logger) *SourceClient {
	settings := gobreaker.Settings{
		Name:        "stats-source",
		MaxRequests: uint32(threshold),
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &SourceClient{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(settings),
		redis:   redisClient,
		logger:  logger,
	}
}

// LoadTable fetches the export and parses it into a raw table. A cached raw
// payload is served when the upstream is unavailable or already fetched
// recently.
func (s *SourceClient) LoadTable(ctx context.Context) (*engine.Table, error) {
	if payload, ok := s.cachedPayload(ctx); ok {
		s.logger.WithField("bytes", len(payload)).Debug("Serving season export from cache")
		return dataset.ParseCSV(bytes.NewReader(payload), s.url)
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch season export: %w", err)
	}
	payload := result.([]byte)

	s.storePayload(ctx, payload)

	return dataset.ParseCSV(bytes.NewReader(payload), s.url)
}

func (s *SourceClient) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *SourceClient) cachedPayload(ctx context.Context) ([]byte, bool) {
	if s.redis == nil {
		return nil, false
	}
	payload, err := s.redis.Get(ctx, rawPayloadCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WithError(err).Warn("Failed to read cached season export")
		}
		return nil, false
	}
	return payload, true
}

func (s *SourceClient) storePayload(ctx context.Context, payload []byte) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, rawPayloadCacheKey, payload, rawPayloadTTL).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache season export")
	}
}
