package engine

// Raw schema column names, as they appear in the season export. The engine
// preserves these verbatim so enriched output stays column-compatible with
// the source table.
const (
	ColName        = "name"
	ColCricHeroes  = "cricheroes"
	ColExtractedID = "extracted_id"
	ColPlayerType  = "playertype"
	ColTeamOwner   = "Team Owner"

	ColBestBatter    = "BEST BATTER"
	ColBestBowler    = "BEST BOWLER"
	ColPlayerOfMatch = "PLAYER OF THE MATCH"

	ColOverallBattingRuns = "Overall_Batting_Runs"
	ColOverallBattingAvg  = "Overall_Batting_Avg"
	ColOverallBattingSR   = "Overall_Batting_SR"
	ColOverallBattingInns = "Overall_Batting_Inns"
	ColOverallBattingMat  = "Overall_Batting_Mat"
	ColOverallBattingHS   = "Overall_Batting_HS"

	ColOverallBowlingWkts = "Overall_Bowling_Wkts"
	ColOverallBowlingEco  = "Overall_Bowling_Eco"
	ColOverallBowlingAvg  = "Overall_Bowling_Avg"
	ColOverallBowlingSR   = "Overall_Bowling_SR"
	ColOverallBowlingInns = "Overall_Bowling_Inns"
	ColOverallBowlingMat  = "Overall_Bowling_Mat"
	ColOverallBowlingBB   = "Overall_Bowling_BB"
)

// Derived columns appended by the enrichment pipeline.
const (
	ColOverallBowlingWPI = "Overall_Bowling_WPI"
	ColMVPPoints         = "MVP_Points"
	ColInferredRole      = "Inferred_Role"
)

// Variants groups every stat block: tennis-ball, leather-ball and the
// aggregated overall figures.
var Variants = []string{"Tennis", "Leather", "Overall"}

var battingSuffixes = []string{
	"Mat", "Inns", "NO", "Runs", "HS", "Avg", "SR",
	"100s", "50s", "30s", "4s", "6s", "Ducks",
}

var bowlingSuffixes = []string{
	"Mat", "Inns", "Overs", "Maidens", "Runs", "Wkts",
	"Avg", "Eco", "SR", "3 Wkts", "5 Wkts", "WD", "NB",
}

// BattingColumn returns the raw column name for a batting stat.
func BattingColumn(variant, suffix string) string {
	return variant + "_Batting_" + suffix
}

// BowlingColumn returns the raw column name for a bowling stat.
func BowlingColumn(variant, suffix string) string {
	return variant + "_Bowling_" + suffix
}

// NumericColumns lists every column the sanitizer coerces to numeric: all
// batting and bowling count/rate fields across the three variants plus the
// award counters. Best-bowling figures ("5/20") and identity fields stay as
// opaque strings.
func NumericColumns() []string {
	cols := make([]string, 0, len(Variants)*(len(battingSuffixes)+len(bowlingSuffixes))+3)
	for _, v := range Variants {
		for _, s := range battingSuffixes {
			cols = append(cols, BattingColumn(v, s))
		}
		for _, s := range bowlingSuffixes {
			cols = append(cols, BowlingColumn(v, s))
		}
	}
	cols = append(cols, ColBestBatter, ColBestBowler, ColPlayerOfMatch)
	return cols
}

// highScoreColumn reports whether a column holds a high score, which may
// carry a trailing not-out marker ("54*") that must be stripped before
// numeric parsing.
func highScoreColumn(col string) bool {
	for _, v := range Variants {
		if col == BattingColumn(v, "HS") {
			return true
		}
	}
	return false
}
