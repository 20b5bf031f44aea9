package engine

// Inferred role categories.
const (
	RoleBatter     = "Batter"
	RoleBowler     = "Bowler"
	RoleAllRounder = "All-Rounder"
	RoleNewcomer   = "Newcomer"
)

// Thresholds on raw overall counting stats. Deliberately independent of the
// normalized MVP score.
const (
	bowlerWicketThreshold = 9
	batterRunThreshold    = 200
)

// RoleFor infers a role from overall runs and wickets alone.
func RoleFor(runs, wickets float64) string {
	isBowler := wickets > bowlerWicketThreshold
	isBatter := runs > batterRunThreshold

	switch {
	case isBowler && isBatter:
		return RoleAllRounder
	case isBowler:
		return RoleBowler
	case isBatter:
		return RoleBatter
	default:
		return RoleNewcomer
	}
}

// classifyRoles appends the inferred-role column.
func classifyRoles(t *Table) {
	runs := t.Numeric(ColOverallBattingRuns)
	wkts := t.Numeric(ColOverallBowlingWkts)
	roles := make([]string, t.Len())
	for i := range roles {
		roles[i] = RoleFor(runs[i], wkts[i])
	}
	t.SetStrings(ColInferredRole, roles)
}
