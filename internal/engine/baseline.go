package engine

import "sort"

// Fallback baselines used when no row has a strictly positive value for a
// metric. Documented constants, not tunables.
const (
	FallbackBattingAvg     = 20.0
	FallbackBattingSR      = 100.0
	FallbackBattingInnings = 5.0
	FallbackBowlingWPI     = 1.0
	FallbackBowlingEconomy = 7.0
	FallbackBowlingInnings = 5.0
)

// Baselines holds the population reference values every player is scored
// against. Computed once per load from the whole table and then passed by
// value into the scoring pass, never recomputed per row, so every row in a
// load is judged against the same reference.
type Baselines struct {
	BattingAvg     float64 `json:"batting_avg"`
	BattingSR      float64 `json:"batting_sr"`
	BattingInnings float64 `json:"batting_innings"`
	BowlingWPI     float64 `json:"bowling_wpi"`
	BowlingEconomy float64 `json:"bowling_economy"`
	BowlingInnings float64 `json:"bowling_innings"`
}

// ComputeBaselines takes the median of each reference metric over the rows
// where it is strictly positive. Zeros mean "did not bat/bowl", not genuine
// low performance, and must not pull the baseline down. Requires the WPI
// column, so it runs after the WPI pass.
func ComputeBaselines(t *Table) Baselines {
	return Baselines{
		BattingAvg:     positiveMedian(t.Numeric(ColOverallBattingAvg), FallbackBattingAvg),
		BattingSR:      positiveMedian(t.Numeric(ColOverallBattingSR), FallbackBattingSR),
		BattingInnings: positiveMedian(t.Numeric(ColOverallBattingInns), FallbackBattingInnings),
		BowlingWPI:     positiveMedian(t.Numeric(ColOverallBowlingWPI), FallbackBowlingWPI),
		BowlingEconomy: positiveMedian(t.Numeric(ColOverallBowlingEco), FallbackBowlingEconomy),
		BowlingInnings: positiveMedian(t.Numeric(ColOverallBowlingInns), FallbackBowlingInnings),
	}
}

func positiveMedian(vals []float64, fallback float64) float64 {
	pos := positiveSubset(vals)
	if len(pos) == 0 {
		return fallback
	}
	return quantile(pos, 0.5)
}

func positiveSubset(vals []float64) []float64 {
	pos := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v > 0 {
			pos = append(pos, v)
		}
	}
	return pos
}

// Quartiles are the P25/P50/P75 guide lines the scatter overlays draw,
// computed over the positive subset of a metric.
type Quartiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
}

// PositiveQuartiles returns the quartiles of a column over its strictly
// positive values. The ok result is false when no positive values exist.
func PositiveQuartiles(t *Table, col string) (Quartiles, bool) {
	pos := positiveSubset(t.Numeric(col))
	if len(pos) == 0 {
		return Quartiles{}, false
	}
	return Quartiles{
		P25: quantile(pos, 0.25),
		P50: quantile(pos, 0.5),
		P75: quantile(pos, 0.75),
	}, true
}

// quantile computes the q-th quantile with linear interpolation between
// order statistics. vals must be non-empty; it is sorted in place on a copy.
func quantile(vals []float64, q float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
