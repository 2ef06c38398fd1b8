package engine

import "sort"

// CompositeScores is the 4-dimensional player style vector. Each dimension
// is in [0,1] or missing.
type CompositeScores struct {
	PS Num
	TC Num
	MS Num
	DC Num
}

// Vector returns the scores in fixed [ps, tc, ms, dc] order.
func (c CompositeScores) Vector() [4]Num {
	return [4]Num{c.PS, c.TC, c.MS, c.DC}
}

// ComputeComposites folds a player's normalized features into the four
// composite scores. One generic pass consumes the catalog's weight tables:
// per contributing test, every non-missing feature adds value×weight to the
// numerator and weight to the denominator, so a test with more usable
// features carries proportionally more of the composite. A composite whose
// contributing tests yielded no usable feature at all is missing.
func ComputeComposites(norm map[string]Num, cat *Catalog) CompositeScores {
	var cs CompositeScores
	for _, comp := range cat.Composites {
		score := aggregateComposite(comp, norm, cat)
		switch comp.ID {
		case "ps":
			cs.PS = score
		case "tc":
			cs.TC = score
		case "ms":
			cs.MS = score
		case "dc":
			cs.DC = score
		}
	}
	return cs
}

func aggregateComposite(comp Composite, norm map[string]Num, cat *Catalog) Num {
	// Tests are folded in sorted order so repeated runs accumulate floats
	// identically and persisted scores stay byte-for-byte reproducible.
	tests := make([]string, 0, len(comp.Weights))
	for test := range comp.Weights {
		tests = append(tests, test)
	}
	sort.Strings(tests)

	var numerator, denominator float64
	for _, test := range tests {
		w := float64(comp.Weights[test])
		for _, f := range cat.FeaturesForTest(test) {
			v, ok := norm[f.ID]
			if !ok || !v.OK {
				continue
			}
			numerator += v.V * w
			denominator += w
		}
	}
	if denominator == 0 {
		return None()
	}
	return Some(numerator / denominator)
}
