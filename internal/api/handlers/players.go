package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phf-auction/player-stats-service/internal/engine"
	"github.com/phf-auction/player-stats-service/internal/models"
	"github.com/phf-auction/player-stats-service/internal/services"
	"github.com/phf-auction/player-stats-service/internal/utils"
)

const maxComparePlayers = 4

// PlayerHandler serves the enriched auction pool.
type PlayerHandler struct {
	svc    *services.EnrichmentService
	logger *logrus.Logger
}

func NewPlayerHandler(svc *services.EnrichmentService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{svc: svc, logger: logger}
}

func (h *PlayerHandler) snapshot(c *gin.Context) (*services.Snapshot, bool) {
	snap, ok := h.svc.Snapshot()
	if !ok {
		utils.SendServiceUnavailable(c, "Player data not loaded yet")
		return nil, false
	}
	return snap, true
}

// ListPlayers returns the auction pool, optionally filtered by inferred role
// and sorted by a headline metric.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	role := c.Query("role")
	sortKey := c.DefaultQuery("sort", "mvp")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	table := snap.Table
	summaries := make([]models.PlayerSummary, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		s := models.SummaryFromTable(table, i)
		if role != "" && !strings.EqualFold(s.InferredRole, role) {
			continue
		}
		summaries = append(summaries, s)
	}

	switch sortKey {
	case "mvp":
		sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].MVPPoints > summaries[j].MVPPoints })
	case "runs":
		sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Runs > summaries[j].Runs })
	case "wickets":
		sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Wickets > summaries[j].Wickets })
	default:
		utils.SendBadRequest(c, "sort must be one of mvp, runs, wickets")
		return
	}

	if limit > 0 && limit < len(summaries) {
		summaries = summaries[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"players":   summaries,
		"total":     len(summaries),
		"load_id":   snap.LoadID.String(),
		"loaded_at": snap.LoadedAt,
	})
}

// GetPlayer returns the full individual profile for one player.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.Param("name"))
	row := snap.Table.RowIndexByName(name)
	if row < 0 {
		utils.SendNotFound(c, "Player not found")
		return
	}

	c.JSON(http.StatusOK, models.ProfileFromTable(snap.Table, row))
}

// ComparePlayers returns headline metric cards for up to four players.
func (h *PlayerHandler) ComparePlayers(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	namesParam := c.Query("names")
	if namesParam == "" {
		utils.SendBadRequest(c, "names query parameter is required")
		return
	}

	names := strings.Split(namesParam, ",")
	if len(names) > maxComparePlayers {
		utils.SendBadRequest(c, "at most 4 players can be compared")
		return
	}

	summaries := make([]models.PlayerSummary, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		row := snap.Table.RowIndexByName(name)
		if row < 0 {
			utils.SendNotFound(c, "Player not found: "+name)
			return
		}
		summaries = append(summaries, models.SummaryFromTable(snap.Table, row))
	}

	c.JSON(http.StatusOK, gin.H{
		"players": summaries,
		"load_id": snap.LoadID.String(),
	})
}

// ReloadDataset triggers a fresh load cycle. The previous snapshot keeps
// serving until the new one is fully enriched.
func (h *PlayerHandler) ReloadDataset(c *gin.Context) {
	snap, err := h.svc.Reload(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to reload player dataset")
		utils.SendInternalError(c, "Failed to reload player dataset")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"load_id":   snap.LoadID.String(),
		"loaded_at": snap.LoadedAt,
		"rows":      snap.Table.Len(),
	})
}

// GetPercentiles returns the quartile guide-line values the scatter charts
// overlay, computed over strictly positive values only.
func (h *PlayerHandler) GetPercentiles(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	metrics := map[string]string{
		"batting_sr":      engine.ColOverallBattingSR,
		"batting_avg":     engine.ColOverallBattingAvg,
		"bowling_economy": engine.ColOverallBowlingEco,
		"bowling_wpi":     engine.ColOverallBowlingWPI,
	}

	quartiles := make(map[string]engine.Quartiles, len(metrics))
	for name, col := range metrics {
		if q, ok := engine.PositiveQuartiles(snap.Table, col); ok {
			quartiles[name] = q
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"percentiles": quartiles,
		"baselines":   snap.Baselines,
		"load_id":     snap.LoadID.String(),
	})
}
