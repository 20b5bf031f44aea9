package engine

// ScoreScale makes composite scores readable (2.88 → 288). Purely cosmetic,
// kept for output compatibility with the season-1 exports.
const ScoreScale = 100.0

// perfectEconomyFactor stands in for an undefined inverse ratio when a
// bowler has innings on record but a 0 economy. Almost certainly a data
// artifact rather than genuinely unscored bowling; treated as twice the
// median economy performance until the exports prove otherwise.
const perfectEconomyFactor = 2.0

// computeWPI appends wickets-per-inning: overall wickets over overall
// bowling innings, 0 when the player never bowled. A rate metric, so long
// careers do not dominate raw wicket counts.
func computeWPI(t *Table) {
	wkts := t.Numeric(ColOverallBowlingWkts)
	inns := t.Numeric(ColOverallBowlingInns)
	wpi := make([]float64, t.Len())
	for i := range wpi {
		wpi[i] = safeDiv(wkts[i], inns[i])
	}
	t.SetNumeric(ColOverallBowlingWPI, wpi)
}

// computeScores appends the composite MVP score column. Batting and bowling
// sub-scores are additive so specialists score from their one strong axis
// while all-rounders are rewarded on both.
func computeScores(t *Table, b Baselines) {
	avg := t.Numeric(ColOverallBattingAvg)
	sr := t.Numeric(ColOverallBattingSR)
	batInns := t.Numeric(ColOverallBattingInns)
	wpi := t.Numeric(ColOverallBowlingWPI)
	eco := t.Numeric(ColOverallBowlingEco)
	bowlInns := t.Numeric(ColOverallBowlingInns)

	scores := make([]float64, t.Len())
	for i := range scores {
		bat := battingScore(avg[i], sr[i], batInns[i], b)
		bowl := bowlingScore(wpi[i], eco[i], bowlInns[i], b)
		scores[i] = (bat + bowl) * ScoreScale
	}
	t.SetNumeric(ColMVPPoints, scores)
}

// battingScore multiplies the quality ratios against the population medians
// (above 1.0 means above-median on both axes at once) and scales by the
// volume multiplier for innings played.
func battingScore(avg, sr, innings float64, b Baselines) float64 {
	factor := safeDiv(avg, b.BattingAvg) * safeDiv(sr, b.BattingSR)
	return factor * volumeMultiplier(innings)
}

// bowlingScore mirrors battingScore on the bowling axis. Economy is inverted
// since lower is better.
func bowlingScore(wpi, eco, innings float64, b Baselines) float64 {
	ecoFactor := 0.0
	if eco > 0 {
		ecoFactor = safeDiv(b.BowlingEconomy, eco)
	} else if innings > 0 {
		ecoFactor = perfectEconomyFactor
	}
	factor := safeDiv(wpi, b.BowlingWPI) * ecoFactor
	return factor * volumeMultiplier(innings)
}

// volumeMultiplier rewards sustained sample size and damps small-sample
// outliers. Keyed on innings, bucketed identically for batting and bowling.
func volumeMultiplier(innings float64) float64 {
	switch {
	case innings < 5:
		return 0.5
	case innings < 10:
		return 1.0
	case innings < 50:
		return 1.2
	default:
		return 1.5
	}
}

// safeDiv defines n/0 as 0. Zero denominators are routine here (never
// batted, never bowled) and must not surface as errors or infinities.
func safeDiv(n, d float64) float64 {
	if d > 0 {
		return n / d
	}
	return 0
}
