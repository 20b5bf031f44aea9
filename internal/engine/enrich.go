// Package engine computes the derived auction metrics for a season of
// player statistics: it sanitizes the raw numeric columns, computes the
// population baselines, scores every player against them and infers a role.
//
// The pipeline is a pure transformation: the input table is never mutated,
// no step can fail for data-quality reasons, and running it twice over the
// same raw table yields identical output.
package engine

import "errors"

// ErrEmptyTable is the only structural failure the pipeline surfaces: a
// totally absent or empty input table.
var ErrEmptyTable = errors.New("player table is empty")

// Enrich runs the full enrichment pipeline over a raw table and returns an
// enriched copy plus the baselines it was scored against.
//
// Two passes, in a fixed order: a whole-table pass (sanitize, wickets per
// inning, baselines) followed by a per-row pass (composite score, role)
// that consumes the now-frozen baselines. Scoring never recomputes
// baselines mid-pass.
func Enrich(t *Table) (*Table, Baselines, error) {
	if t == nil || t.Len() == 0 {
		return nil, Baselines{}, ErrEmptyTable
	}

	out := t.Clone()

	Sanitize(out)
	computeWPI(out)
	baselines := ComputeBaselines(out)

	computeScores(out, baselines)
	classifyRoles(out)

	return out, baselines, nil
}
