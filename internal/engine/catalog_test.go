package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Len(t, cat.Tests, 13)
	require.Len(t, cat.Composites, 4)

	ids := make([]string, 0, 4)
	for _, comp := range cat.Composites {
		ids = append(ids, comp.ID)
	}
	assert.Equal(t, []string{"ps", "tc", "ms", "dc"}, ids)

	// Every contributing test carries 2-4 normalized features.
	for _, comp := range cat.Composites {
		for test := range comp.Weights {
			n := len(cat.FeaturesForTest(test))
			assert.GreaterOrEqual(t, n, 2, "test %s", test)
			assert.LessOrEqual(t, n, 4, "test %s", test)
		}
	}
}

func TestDefaultCatalogFeaturesMatchDerivedMetrics(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	// Every catalog feature must be a metric the derivation layer emits.
	ds := Derive(RawRecord{}, EvalConfig{OneVOneRounds: 1, SkillMoves: 1})
	for _, f := range cat.Features {
		assert.Contains(t, ds.Raw, f.ID, "feature %s has no derived metric", f.ID)
	}
}

func TestLoadCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown policy",
			yaml: `
tests: [{id: a, label: A}]
features: [{id: a_avg, test: a, policy: bogus}]
composites:
  - {id: ps, label: PS, weights: {a: 1}}
  - {id: tc, label: TC, weights: {a: 1}}
  - {id: ms, label: MS, weights: {a: 1}}
  - {id: dc, label: DC, weights: {a: 1}}
`,
		},
		{
			name: "feature references unknown test",
			yaml: `
tests: [{id: a, label: A}]
features: [{id: b_avg, test: b, policy: cohort_high}]
composites:
  - {id: ps, label: PS, weights: {a: 1}}
  - {id: tc, label: TC, weights: {a: 1}}
  - {id: ms, label: MS, weights: {a: 1}}
  - {id: dc, label: DC, weights: {a: 1}}
`,
		},
		{
			name: "weight out of range",
			yaml: `
tests: [{id: a, label: A}]
features: [{id: a_avg, test: a, policy: cohort_high}]
composites:
  - {id: ps, label: PS, weights: {a: 4}}
  - {id: tc, label: TC, weights: {a: 1}}
  - {id: ms, label: MS, weights: {a: 1}}
  - {id: dc, label: DC, weights: {a: 1}}
`,
		},
		{
			name: "tolerance band without limit",
			yaml: `
tests: [{id: a, label: A}]
features: [{id: a_pct, test: a, policy: tolerance_band}]
composites:
  - {id: ps, label: PS, weights: {a: 1}}
  - {id: tc, label: TC, weights: {a: 1}}
  - {id: ms, label: MS, weights: {a: 1}}
  - {id: dc, label: DC, weights: {a: 1}}
`,
		},
		{
			name: "wrong composite count",
			yaml: `
tests: [{id: a, label: A}]
features: [{id: a_avg, test: a, policy: cohort_high}]
composites:
  - {id: ps, label: PS, weights: {a: 1}}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
