package engine

import "sort"

// Statistical reducers over attempt arrays. Two strictness levels exist:
// the strict reducers return missing if any element is missing (a partial
// attempt set is discarded, not averaged over what happens to be there),
// while MaxOf skips missing elements individually.

// Mean4 is the mean of exactly 4 values.
func Mean4(vs []Num) Num {
	if len(vs) != 4 {
		return Num{}
	}
	return AvgAll(vs)
}

// SumTop2Of4 sums the two largest of exactly 4 values.
func SumTop2Of4(vs []Num) Num {
	if len(vs) != 4 {
		return Num{}
	}
	fs := make([]float64, 0, 4)
	for _, v := range vs {
		if !v.OK {
			return Num{}
		}
		fs = append(fs, v.V)
	}
	sort.Float64s(fs)
	return Some(fs[2] + fs[3])
}

// SumAll sums an array of any length; missing if empty or any element missing.
func SumAll(vs []Num) Num {
	return Fold(vs, 0, func(acc, v float64) float64 { return acc + v })
}

// AvgAll averages an array of any length; missing if empty or any element missing.
func AvgAll(vs []Num) Num {
	return SumAll(vs).Map(func(s float64) float64 { return s / float64(len(vs)) })
}

// MinAll takes the minimum; missing if empty or any element missing.
func MinAll(vs []Num) Num {
	best := Num{}
	for _, v := range vs {
		if !v.OK {
			return Num{}
		}
		if !best.OK || v.V < best.V {
			best = v
		}
	}
	return best
}

// MaxAll takes the maximum; missing if empty or any element missing.
func MaxAll(vs []Num) Num {
	best := Num{}
	for _, v := range vs {
		if !v.OK {
			return Num{}
		}
		if !best.OK || v.V > best.V {
			best = v
		}
	}
	return best
}

// MaxOf is the lenient maximum: missing elements are skipped rather than
// failing the whole computation. Missing only if every element is missing.
func MaxOf(vs []Num) Num {
	best := Num{}
	for _, v := range vs {
		if !v.OK {
			continue
		}
		if !best.OK || v.V > best.V {
			best = v
		}
	}
	return best
}

// RangeAll is the consistency range, max − min over a player's attempts.
func RangeAll(vs []Num) Num {
	return Map2(MaxAll(vs), MinAll(vs), func(max, min float64) float64 { return max - min })
}

// SafeRatio is n/d, missing if either operand is missing or d is zero.
func SafeRatio(n, d Num) Num {
	if !n.OK || !d.OK || d.V == 0 {
		return Num{}
	}
	return Some(n.V / d.V)
}

// SafeAsymmetryPct is (strong − weak) / strong × 100, missing if either
// operand is missing or strong is zero.
func SafeAsymmetryPct(strong, weak Num) Num {
	if !strong.OK || !weak.OK || strong.V == 0 {
		return Num{}
	}
	return Some((strong.V - weak.V) / strong.V * 100)
}

// Clamp01 clamps a value into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
