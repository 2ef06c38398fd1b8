package engine

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() RawRecord {
	rec := shotPowerRecord()
	fill := func(prefix string, n int, base, step float64) {
		for i := 1; i <= n; i++ {
			rec[fmt.Sprintf("%s_%d", prefix, i)] = base + float64(i-1)*step
		}
	}
	fill("sprint_10m", 4, 1.9, -0.02)
	fill("agility", 4, 5.2, -0.05)
	fill("reaction", 4, 310, -5)
	fill("vertical_jump", 4, 32, 1)
	fill("single_leg_hop_left", 4, 150, 2)
	fill("single_leg_hop_right", 4, 140, 2)
	fill("jump_endurance", 10, 40, -0.8)
	fill("juggling", 3, 20, 5)
	fill("dribbling", 4, 11.5, -0.1)
	fill("passing", 4, 6, 1)
	fill("onevone_round", 3, 1, 1)
	fill("skill_move", 2, 2, 1)
	rec["ankle_mobility_left"] = 4.5
	rec["ankle_mobility_right"] = 4.0
	rec["skill_moves_both_feet"] = 1.0
	return rec
}

// Two identical runs of the full in-memory pipeline must produce
// byte-identical marshaled raw, normalized and composite payloads.
func TestPipelineDeterminism(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	cfg := EvalConfig{OneVOneRounds: 3, SkillMoves: 2}
	evals := []CohortEvaluation{
		{
			Config: cfg,
			RawScores: map[string]RawRecord{
				"p1": fullRecord(),
				"p2": shotPowerStrongOnly([4]float64{9, 9, 10, 12}),
			},
		},
	}
	years := staticBirthYears(map[string]int{"p1": 2012, "p2": 2012})

	run := func() []byte {
		stats := BuildCohortStats(evals, years)
		ds := Derive(fullRecord(), cfg)
		norm := Normalize(ds.Raw, 2012, true, stats, cat)
		cs := ComputeComposites(norm, cat)

		payload := struct {
			Raw        map[string]Num `json:"raw"`
			Norm       map[string]Num `json:"norm"`
			Composites [4]Num         `json:"composites"`
		}{ds.Raw, norm, cs.Vector()}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		return data
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}

func TestPipelineEndToEndScores(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	cfg := EvalConfig{OneVOneRounds: 3, SkillMoves: 2}
	evals := []CohortEvaluation{
		{
			Config: cfg,
			RawScores: map[string]RawRecord{
				"p1": fullRecord(),
				"p2": fullRecord(),
			},
		},
	}
	years := staticBirthYears(map[string]int{"p1": 2012, "p2": 2012})
	stats := BuildCohortStats(evals, years)

	ds := Derive(fullRecord(), cfg)
	norm := Normalize(ds.Raw, 2012, true, stats, cat)
	cs := ComputeComposites(norm, cat)

	// A complete record inside a populated cohort yields all four scores.
	for i, score := range cs.Vector() {
		require.True(t, score.OK, "dimension %d", i)
		assert.GreaterOrEqual(t, score.V, 0.0)
		assert.LessOrEqual(t, score.V, 1.0)
	}
}
