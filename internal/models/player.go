// Package models projects rows of the enriched table into the typed shapes
// the API returns. Projections are display-only copies; they never write
// back into the table.
package models

import (
	"github.com/phf-auction/player-stats-service/internal/engine"
)

// BattingStats is one variant block of a player's batting record.
type BattingStats struct {
	Matches    int     `json:"matches"`
	Innings    int     `json:"innings"`
	NotOuts    int     `json:"not_outs"`
	Runs       int     `json:"runs"`
	HighScore  string  `json:"high_score"` // keeps the not-out marker, e.g. "54*"
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
	Hundreds   int     `json:"hundreds"`
	Fifties    int     `json:"fifties"`
	Thirties   int     `json:"thirties"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	Ducks      int     `json:"ducks"`
}

// BowlingStats is one variant block of a player's bowling record.
type BowlingStats struct {
	Matches    int     `json:"matches"`
	Innings    int     `json:"innings"`
	Overs      float64 `json:"overs"`
	Maidens    int     `json:"maidens"`
	Runs       int     `json:"runs"`
	Wickets    int     `json:"wickets"`
	Best       string  `json:"best"` // "W/R" figures, e.g. "5/20"
	Average    float64 `json:"average"`
	Economy    float64 `json:"economy"`
	StrikeRate float64 `json:"strike_rate"`
	ThreeWkts  int     `json:"three_wickets"`
	FiveWkts   int     `json:"five_wickets"`
	Wides      int     `json:"wides"`
	NoBalls    int     `json:"no_balls"`
}

// Awards are the season award counters.
type Awards struct {
	BestBatter    int `json:"best_batter"`
	BestBowler    int `json:"best_bowler"`
	PlayerOfMatch int `json:"player_of_match"`
}

// PlayerProfile is the full individual view: identity, every variant block,
// awards and the derived metrics.
type PlayerProfile struct {
	Name             string                  `json:"name"`
	CricHeroes       string                  `json:"cricheroes,omitempty"`
	ExtractedID      string                  `json:"extracted_id,omitempty"`
	PlayerType       string                  `json:"player_type,omitempty"`
	TeamOwner        string                  `json:"team_owner,omitempty"`
	Batting          map[string]BattingStats `json:"batting"`
	Bowling          map[string]BowlingStats `json:"bowling"`
	Awards           Awards                  `json:"awards"`
	WicketsPerInning float64                 `json:"wickets_per_inning"`
	MVPPoints        float64                 `json:"mvp_points"`
	InferredRole     string                  `json:"inferred_role"`
}

// PlayerSummary is one row of the auction pool listing.
type PlayerSummary struct {
	Name             string  `json:"name"`
	Runs             int     `json:"runs"`
	BattingAvg       float64 `json:"batting_avg"`
	BattingSR        float64 `json:"batting_sr"`
	HighScore        string  `json:"high_score"`
	Fours            int     `json:"fours"`
	Sixes            int     `json:"sixes"`
	Wickets          int     `json:"wickets"`
	Economy          float64 `json:"economy"`
	BowlingAvg       float64 `json:"bowling_avg"`
	BestBowling      string  `json:"best_bowling"`
	WicketsPerInning float64 `json:"wickets_per_inning"`
	MVPPoints        float64 `json:"mvp_points"`
	InferredRole     string  `json:"inferred_role"`
	Awards           Awards  `json:"awards"`
}

// ProfileFromTable projects one row into the full profile view.
func ProfileFromTable(t *engine.Table, row int) PlayerProfile {
	batting := make(map[string]BattingStats, len(engine.Variants))
	bowling := make(map[string]BowlingStats, len(engine.Variants))
	for _, v := range engine.Variants {
		batting[v] = battingBlock(t, row, v)
		bowling[v] = bowlingBlock(t, row, v)
	}

	return PlayerProfile{
		Name:             t.String(engine.ColName, row),
		CricHeroes:       t.String(engine.ColCricHeroes, row),
		ExtractedID:      t.String(engine.ColExtractedID, row),
		PlayerType:       t.String(engine.ColPlayerType, row),
		TeamOwner:        t.String(engine.ColTeamOwner, row),
		Batting:          batting,
		Bowling:          bowling,
		Awards:           awardsFromTable(t, row),
		WicketsPerInning: t.Value(engine.ColOverallBowlingWPI, row),
		MVPPoints:        t.Value(engine.ColMVPPoints, row),
		InferredRole:     t.String(engine.ColInferredRole, row),
	}
}

// SummaryFromTable projects one row into the pool listing shape.
func SummaryFromTable(t *engine.Table, row int) PlayerSummary {
	return PlayerSummary{
		Name:             t.String(engine.ColName, row),
		Runs:             intVal(t, engine.ColOverallBattingRuns, row),
		BattingAvg:       t.Value(engine.ColOverallBattingAvg, row),
		BattingSR:        t.Value(engine.ColOverallBattingSR, row),
		HighScore:        t.String(engine.ColOverallBattingHS, row),
		Fours:            intVal(t, engine.BattingColumn("Overall", "4s"), row),
		Sixes:            intVal(t, engine.BattingColumn("Overall", "6s"), row),
		Wickets:          intVal(t, engine.ColOverallBowlingWkts, row),
		Economy:          t.Value(engine.ColOverallBowlingEco, row),
		BowlingAvg:       t.Value(engine.ColOverallBowlingAvg, row),
		BestBowling:      t.String(engine.ColOverallBowlingBB, row),
		WicketsPerInning: t.Value(engine.ColOverallBowlingWPI, row),
		MVPPoints:        t.Value(engine.ColMVPPoints, row),
		InferredRole:     t.String(engine.ColInferredRole, row),
		Awards:           awardsFromTable(t, row),
	}
}

func battingBlock(t *engine.Table, row int, variant string) BattingStats {
	col := func(suffix string) string { return engine.BattingColumn(variant, suffix) }
	return BattingStats{
		Matches:    intVal(t, col("Mat"), row),
		Innings:    intVal(t, col("Inns"), row),
		NotOuts:    intVal(t, col("NO"), row),
		Runs:       intVal(t, col("Runs"), row),
		HighScore:  t.String(col("HS"), row),
		Average:    t.Value(col("Avg"), row),
		StrikeRate: t.Value(col("SR"), row),
		Hundreds:   intVal(t, col("100s"), row),
		Fifties:    intVal(t, col("50s"), row),
		Thirties:   intVal(t, col("30s"), row),
		Fours:      intVal(t, col("4s"), row),
		Sixes:      intVal(t, col("6s"), row),
		Ducks:      intVal(t, col("Ducks"), row),
	}
}

func bowlingBlock(t *engine.Table, row int, variant string) BowlingStats {
	col := func(suffix string) string { return engine.BowlingColumn(variant, suffix) }
	return BowlingStats{
		Matches:    intVal(t, col("Mat"), row),
		Innings:    intVal(t, col("Inns"), row),
		Overs:      t.Value(col("Overs"), row),
		Maidens:    intVal(t, col("Maidens"), row),
		Runs:       intVal(t, col("Runs"), row),
		Wickets:    intVal(t, col("Wkts"), row),
		Best:       t.String(col("BB"), row),
		Average:    t.Value(col("Avg"), row),
		Economy:    t.Value(col("Eco"), row),
		StrikeRate: t.Value(col("SR"), row),
		ThreeWkts:  intVal(t, col("3 Wkts"), row),
		FiveWkts:   intVal(t, col("5 Wkts"), row),
		Wides:      intVal(t, col("WD"), row),
		NoBalls:    intVal(t, col("NB"), row),
	}
}

func awardsFromTable(t *engine.Table, row int) Awards {
	return Awards{
		BestBatter:    intVal(t, engine.ColBestBatter, row),
		BestBowler:    intVal(t, engine.ColBestBowler, row),
		PlayerOfMatch: intVal(t, engine.ColPlayerOfMatch, row),
	}
}

func intVal(t *engine.Table, col string, row int) int {
	return int(t.Value(col, row))
}
