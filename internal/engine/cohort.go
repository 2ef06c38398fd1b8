package engine

// MetricRange is the running {min, max} a birth-year cohort has produced for
// one raw metric. Both ends stay missing while every observation is missing.
type MetricRange struct {
	Min Num
	Max Num
}

// CohortStats maps birth year -> raw metric name -> observed range. It is
// rebuilt from the team's full evaluation history on every computation run
// and never persisted.
type CohortStats map[int]map[string]MetricRange

// CohortEvaluation is the slice of an evaluation the cohort pass needs: the
// configured attempt counts and every player's raw score record.
type CohortEvaluation struct {
	Config    EvalConfig
	RawScores map[string]RawRecord
}

// BuildCohortStats scans every recorded evaluation for a team and folds each
// player's raw derived metrics into per-birth-year ranges. Players whose
// birth year cannot be resolved are skipped entirely.
func BuildCohortStats(evals []CohortEvaluation, birthYear func(playerID string) (int, bool)) CohortStats {
	stats := make(CohortStats)
	for _, ev := range evals {
		for playerID, rec := range ev.RawScores {
			year, ok := birthYear(playerID)
			if !ok {
				continue
			}
			ds := Derive(rec, ev.Config)
			bucket := stats[year]
			if bucket == nil {
				bucket = make(map[string]MetricRange)
				stats[year] = bucket
			}
			for name, v := range ds.Raw {
				r := bucket[name]
				bucket[name] = r.observe(v)
			}
		}
	}
	return stats
}

// Range looks up the observed range for a (birth year, metric) pair.
func (s CohortStats) Range(year int, metric string) MetricRange {
	return s[year][metric]
}

func (r MetricRange) observe(v Num) MetricRange {
	if !v.OK {
		return r
	}
	if !r.Min.OK || v.V < r.Min.V {
		r.Min = v
	}
	if !r.Max.OK || v.V > r.Max.V {
		r.Max = v
	}
	return r
}
