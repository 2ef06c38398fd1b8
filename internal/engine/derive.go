package engine

// cmPerInch converts knee-to-wall measurements recorded in inches into
// centimeters before any further derivation.
const cmPerInch = 2.54

// EvalConfig carries the per-evaluation attempt counts for the two tests
// whose attempt families are sized by configuration rather than fixed at 4.
type EvalConfig struct {
	OneVOneRounds int
	SkillMoves    int
}

// DerivedSet holds everything computed for one (player, evaluation) pair
// before normalization: the attempt arrays actually consumed and the raw
// metrics derived from them. Values are nullable per key.
type DerivedSet struct {
	Inputs map[string]any
	Raw    map[string]Num
}

// Derive runs the full metric library over one player's raw score record.
// It never fails: malformed or absent attempts surface as missing metrics.
func Derive(rec RawRecord, cfg EvalConfig) *DerivedSet {
	ds := &DerivedSet{
		Inputs: make(map[string]any),
		Raw:    make(map[string]Num),
	}

	deriveShotPower(rec, ds)
	deriveSprint(rec, ds)
	deriveAgility(rec, ds)
	deriveReaction(rec, ds)
	deriveVerticalJump(rec, ds)
	deriveSingleLegHop(rec, ds)
	deriveAnkleMobility(rec, ds)
	deriveJumpEndurance(rec, ds)
	deriveJuggling(rec, ds)
	deriveDribbling(rec, ds)
	derivePassing(rec, ds)
	deriveOneVOne(rec, ds, cfg.OneVOneRounds)
	deriveSkillMoves(rec, ds, cfg.SkillMoves)

	return ds
}

func deriveShotPower(rec RawRecord, ds *DerivedSet) {
	strong := Family(rec, "shot_power_strong", 4)
	weak := Family(rec, "shot_power_weak", 4)
	ds.Inputs["shot_power_strong"] = strong
	ds.Inputs["shot_power_weak"] = weak

	strongAvg := Mean4(strong)
	weakAvg := Mean4(weak)
	ds.Raw["shot_power_strong_avg"] = strongAvg
	ds.Raw["shot_power_weak_avg"] = weakAvg
	ds.Raw["shot_power_strong_max"] = MaxAll(strong)
	ds.Raw["shot_power_weak_to_strong_ratio"] = SafeRatio(weakAvg, strongAvg)
	ds.Raw["shot_power_asymmetry_pct"] = SafeAsymmetryPct(strongAvg, weakAvg)
}

func deriveSprint(rec RawRecord, ds *DerivedSet) {
	runs := Family(rec, "sprint_10m", 4)
	ds.Inputs["sprint_10m"] = runs

	ds.Raw["sprint_10m_best"] = MinAll(runs)
	ds.Raw["sprint_10m_avg"] = Mean4(runs)
	ds.Raw["sprint_10m_consistency_range"] = RangeAll(runs)
}

func deriveAgility(rec RawRecord, ds *DerivedSet) {
	runs := Family(rec, "agility", 4)
	ds.Inputs["agility"] = runs

	ds.Raw["agility_best"] = MinAll(runs)
	ds.Raw["agility_avg"] = Mean4(runs)
}

func deriveReaction(rec RawRecord, ds *DerivedSet) {
	trials := Family(rec, "reaction", 4)
	ds.Inputs["reaction"] = trials

	ds.Raw["reaction_avg"] = Mean4(trials)
	ds.Raw["reaction_best"] = MinAll(trials)
}

func deriveVerticalJump(rec RawRecord, ds *DerivedSet) {
	jumps := Family(rec, "vertical_jump", 4)
	ds.Inputs["vertical_jump"] = jumps

	ds.Raw["vertical_jump_best"] = MaxAll(jumps)
	ds.Raw["vertical_jump_avg"] = Mean4(jumps)
	ds.Raw["vertical_jump_consistency_range"] = RangeAll(jumps)
}

func deriveSingleLegHop(rec RawRecord, ds *DerivedSet) {
	left := Family(rec, "single_leg_hop_left", 4)
	right := Family(rec, "single_leg_hop_right", 4)
	ds.Inputs["single_leg_hop_left"] = left
	ds.Inputs["single_leg_hop_right"] = right

	// Players hop 2 to 4 times per leg, so best-per-side is lenient.
	leftBest := MaxOf(left)
	rightBest := MaxOf(right)
	ds.Raw["single_leg_hop_left_best"] = leftBest
	ds.Raw["single_leg_hop_right_best"] = rightBest

	stronger := MaxAll([]Num{leftBest, rightBest})
	weaker := MinAll([]Num{leftBest, rightBest})
	ds.Raw["single_leg_hop_asymmetry_pct"] = SafeAsymmetryPct(stronger, weaker)
}

func deriveAnkleMobility(rec RawRecord, ds *DerivedSet) {
	left := Field(rec, "ankle_mobility_left")
	right := Field(rec, "ankle_mobility_right")
	ds.Inputs["ankle_mobility_left"] = left
	ds.Inputs["ankle_mobility_right"] = right

	leftCm := left.Map(func(v float64) float64 { return v * cmPerInch })
	rightCm := right.Map(func(v float64) float64 { return v * cmPerInch })
	ds.Raw["ankle_mobility_left_cm"] = leftCm
	ds.Raw["ankle_mobility_right_cm"] = rightCm

	larger := MaxAll([]Num{leftCm, rightCm})
	smaller := MinAll([]Num{leftCm, rightCm})
	ds.Raw["ankle_mobility_asymmetry_pct"] = SafeAsymmetryPct(larger, smaller)
}

func deriveJumpEndurance(rec RawRecord, ds *DerivedSet) {
	jumps := Family(rec, "jump_endurance", 10)
	ds.Inputs["jump_endurance"] = jumps

	ds.Raw["jump_endurance_avg"] = AvgAll(jumps)
	ds.Raw["jump_endurance_best"] = MaxAll(jumps)
	ds.Raw["jump_endurance_dropoff_pct"] = SafeAsymmetryPct(MaxAll(jumps), MinAll(jumps))
}

func deriveJuggling(rec RawRecord, ds *DerivedSet) {
	attempts := Family(rec, "juggling", 3)
	ds.Inputs["juggling"] = attempts

	ds.Raw["juggling_best"] = MaxOf(attempts)
	ds.Raw["juggling_total"] = SumAll(attempts)
}

func deriveDribbling(rec RawRecord, ds *DerivedSet) {
	runs := Family(rec, "dribbling", 4)
	ds.Inputs["dribbling"] = runs

	ds.Raw["dribbling_best"] = MinAll(runs)
	ds.Raw["dribbling_avg"] = Mean4(runs)
	ds.Raw["dribbling_consistency_range"] = RangeAll(runs)
}

func derivePassing(rec RawRecord, ds *DerivedSet) {
	rounds := Family(rec, "passing", 4)
	ds.Inputs["passing"] = rounds

	ds.Raw["passing_total"] = SumAll(rounds)
	ds.Raw["passing_best"] = MaxAll(rounds)
	ds.Raw["passing_top2_sum"] = SumTop2Of4(rounds)
}

// deriveOneVOne reads exactly the configured number of round scores (1 loss,
// 2 draw, 3 win). A configured count of zero means the duel block was not run
// at all: every 1v1 metric is missing, regardless of stray round fields.
func deriveOneVOne(rec RawRecord, ds *DerivedSet, rounds int) {
	if rounds <= 0 {
		ds.Raw["one_v_one_rounds_played"] = None()
		ds.Raw["one_v_one_avg_score"] = None()
		ds.Raw["one_v_one_win_rate"] = None()
		return
	}

	scores := Family(rec, "onevone_round", rounds)
	ds.Inputs["onevone_rounds"] = scores

	played := 0
	wins := 0
	for _, s := range scores {
		if !s.OK {
			continue
		}
		played++
		if s.V == 3 {
			wins++
		}
	}
	ds.Raw["one_v_one_rounds_played"] = Some(float64(played))
	ds.Raw["one_v_one_avg_score"] = AvgAll(scores)
	// The win rate is over the configured round count, not the recorded one:
	// an unrecorded round counts against the player, same as a loss.
	ds.Raw["one_v_one_win_rate"] = SafeRatio(Some(float64(wins)), Some(float64(rounds)))
}

// deriveSkillMoves reads the configured number of move ratings (1..3) plus
// the both-feet flag; a configured count of zero nulls the whole test.
func deriveSkillMoves(rec RawRecord, ds *DerivedSet, moves int) {
	if moves <= 0 {
		ds.Raw["skill_moves_rated"] = None()
		ds.Raw["skill_moves_avg_rating"] = None()
		ds.Raw["skill_moves_both_feet"] = None()
		return
	}

	ratings := Family(rec, "skill_move", moves)
	ds.Inputs["skill_moves"] = ratings

	rated := 0
	for _, r := range ratings {
		if r.OK {
			rated++
		}
	}
	ds.Raw["skill_moves_rated"] = Some(float64(rated))
	ds.Raw["skill_moves_avg_rating"] = AvgAll(ratings)
	ds.Raw["skill_moves_both_feet"] = Field(rec, "skill_moves_both_feet")
}
