package engine

// Normalize maps a player's raw derived metrics onto [0,1] features using
// the catalog's per-feature policy. Cohort-relative policies compare against
// the player's birth-year bucket; hasYear=false leaves every feature missing
// since a player outside the cohort buckets cannot be normalized at all.
// The returned map always carries one entry per catalog feature.
func Normalize(raw map[string]Num, year int, hasYear bool, stats CohortStats, cat *Catalog) map[string]Num {
	norm := make(map[string]Num, len(cat.Features))
	for _, f := range cat.Features {
		if !hasYear {
			norm[f.ID] = None()
			continue
		}
		norm[f.ID] = normalizeFeature(f, raw[f.ID], year, stats)
	}
	return norm
}

func normalizeFeature(f Feature, v Num, year int, stats CohortStats) Num {
	switch f.Policy {
	case PolicyCohortHigh:
		r := stats.Range(year, f.ID)
		return normalizeHigher(v, r.Min, r.Max)
	case PolicyCohortLow:
		r := stats.Range(year, f.ID)
		return normalizeLower(v, r.Min, r.Max)
	case PolicyToleranceBand:
		limit := f.Limit
		return v.Map(func(pct float64) float64 { return Clamp01(1 - pct/limit) })
	case PolicyScale13:
		return v.Map(func(s float64) float64 { return Clamp01((s - 1) / 2) })
	case PolicyPassthrough:
		return v.Map(Clamp01)
	default:
		return None()
	}
}

// normalizeHigher is min-max normalization for higher-is-better metrics.
// A degenerate cohort (max == min) scores 1 for the cohort value itself and
// 0 for anything else.
func normalizeHigher(v, min, max Num) Num {
	if !v.OK || !min.OK || !max.OK {
		return None()
	}
	if max.V == min.V {
		if v.V == min.V {
			return Some(1)
		}
		return Some(0)
	}
	return Some((v.V - min.V) / (max.V - min.V))
}

// normalizeLower is the inverted policy for lower-is-better metrics (times).
// A degenerate cohort of identical values is treated as uniformly good.
func normalizeLower(v, min, max Num) Num {
	if !v.OK || !min.OK || !max.OK {
		return None()
	}
	if max.V == min.V {
		return Some(1)
	}
	return Some(1 - (v.V-min.V)/(max.V-min.V))
}
