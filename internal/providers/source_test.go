package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phf-auction/player-stats-service/internal/engine"
)

const exportCSV = "name,Overall_Batting_Runs,Overall_Bowling_Wkts\nAsha,320,2\nBela,45,14\n"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestSourceClient_FetchesAndParsesExport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(exportCSV))
	}))
	defer server.Close()

	client := NewSourceClient(server.URL, 2*time.Second, 5, nil, quietLogger())

	table, err := client.LoadTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "Asha", table.String(engine.ColName, 0))
	assert.Equal(t, "14", table.String(engine.ColOverallBowlingWkts, 1))
}

func TestSourceClient_UpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewSourceClient(server.URL, 2*time.Second, 5, nil, quietLogger())

	_, err := client.LoadTable(context.Background())
	assert.Error(t, err)
}

func TestSourceClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewSourceClient(server.URL, time.Second, 2, nil, quietLogger())

	for i := 0; i < 5; i++ {
		_, err := client.LoadTable(context.Background())
		assert.Error(t, err)
	}

	// Once open, calls fail fast without hitting the upstream.
	_, err := client.LoadTable(context.Background())
	assert.Error(t, err)
}
