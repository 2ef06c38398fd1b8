package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shotPowerRecord() RawRecord {
	return RawRecord{
		"shot_power_strong_1": 10.0,
		"shot_power_strong_2": 12.0,
		"shot_power_strong_3": 14.0,
		"shot_power_strong_4": 8.0,
		"shot_power_weak_1":   6.0,
		"shot_power_weak_2":   7.0,
		"shot_power_weak_3":   5.0,
		"shot_power_weak_4":   6.0,
	}
}

func TestDeriveShotPower(t *testing.T) {
	ds := Derive(shotPowerRecord(), EvalConfig{})

	assert.Equal(t, Some(11), ds.Raw["shot_power_strong_avg"])
	assert.Equal(t, Some(6), ds.Raw["shot_power_weak_avg"])
	assert.Equal(t, Some(14), ds.Raw["shot_power_strong_max"])

	ratio := ds.Raw["shot_power_weak_to_strong_ratio"]
	require.True(t, ratio.OK)
	assert.InDelta(t, 0.545, ratio.V, 0.001)

	asym := ds.Raw["shot_power_asymmetry_pct"]
	require.True(t, asym.OK)
	assert.InDelta(t, 45.45, asym.V, 0.01)
}

func TestDeriveShotPowerPartialAttempts(t *testing.T) {
	rec := shotPowerRecord()
	delete(rec, "shot_power_strong_3")

	ds := Derive(rec, EvalConfig{})

	// A partial attempt set is discarded, not averaged over what is there.
	assert.Equal(t, None(), ds.Raw["shot_power_strong_avg"])
	assert.Equal(t, None(), ds.Raw["shot_power_strong_max"])
	assert.Equal(t, None(), ds.Raw["shot_power_weak_to_strong_ratio"])
	assert.Equal(t, None(), ds.Raw["shot_power_asymmetry_pct"])
	// The weak side is untouched.
	assert.Equal(t, Some(6), ds.Raw["shot_power_weak_avg"])
}

func TestDeriveAnkleMobilityUnitConversion(t *testing.T) {
	ds := Derive(RawRecord{
		"ankle_mobility_left":  4.0,
		"ankle_mobility_right": 5.0,
	}, EvalConfig{})

	assert.Equal(t, Some(4*2.54), ds.Raw["ankle_mobility_left_cm"])
	assert.Equal(t, Some(5*2.54), ds.Raw["ankle_mobility_right_cm"])

	// Asymmetry is computed on the converted values, larger side as strong.
	asym := ds.Raw["ankle_mobility_asymmetry_pct"]
	require.True(t, asym.OK)
	assert.InDelta(t, 20.0, asym.V, 0.001)
}

func TestDeriveSingleLegHopLenientBest(t *testing.T) {
	ds := Derive(RawRecord{
		"single_leg_hop_left_1":  150.0,
		"single_leg_hop_left_3":  162.0,
		"single_leg_hop_right_1": 120.0,
		"single_leg_hop_right_2": 130.0,
	}, EvalConfig{})

	// Best-per-side ignores unattempted hops instead of failing.
	assert.Equal(t, Some(162), ds.Raw["single_leg_hop_left_best"])
	assert.Equal(t, Some(130), ds.Raw["single_leg_hop_right_best"])

	asym := ds.Raw["single_leg_hop_asymmetry_pct"]
	require.True(t, asym.OK)
	assert.InDelta(t, (162.0-130.0)/162.0*100, asym.V, 0.001)
}

func TestDeriveOneVOne(t *testing.T) {
	rec := RawRecord{
		"onevone_round_1": 3.0,
		"onevone_round_2": 1.0,
		"onevone_round_3": 3.0,
		"onevone_round_4": 2.0,
	}

	ds := Derive(rec, EvalConfig{OneVOneRounds: 4})

	assert.Equal(t, Some(4), ds.Raw["one_v_one_rounds_played"])
	assert.Equal(t, Some(2.25), ds.Raw["one_v_one_avg_score"])
	assert.Equal(t, Some(0.5), ds.Raw["one_v_one_win_rate"])
}

func TestDeriveOneVOnePartiallyRecordedRounds(t *testing.T) {
	// An unrecorded round still sits in the win-rate denominator, so the
	// rate is wins over the configured count, not over rounds played.
	rec := RawRecord{
		"onevone_round_1": 3.0,
		"onevone_round_2": 1.0,
		"onevone_round_3": 2.0,
	}

	ds := Derive(rec, EvalConfig{OneVOneRounds: 4})

	assert.Equal(t, Some(3), ds.Raw["one_v_one_rounds_played"])
	assert.Equal(t, None(), ds.Raw["one_v_one_avg_score"])
	assert.Equal(t, Some(0.25), ds.Raw["one_v_one_win_rate"])
}

func TestDeriveOneVOneZeroConfiguredRounds(t *testing.T) {
	// Stray round fields must not resurrect a test configured with 0 rounds.
	rec := RawRecord{
		"onevone_round_1": 3.0,
		"onevone_round_2": 3.0,
	}

	ds := Derive(rec, EvalConfig{OneVOneRounds: 0})

	assert.Equal(t, None(), ds.Raw["one_v_one_rounds_played"])
	assert.Equal(t, None(), ds.Raw["one_v_one_avg_score"])
	assert.Equal(t, None(), ds.Raw["one_v_one_win_rate"])
}

func TestDeriveOneVOneShorterConfiguredCount(t *testing.T) {
	// Only the configured number of rounds is read; extra fields are ignored.
	rec := RawRecord{
		"onevone_round_1": 3.0,
		"onevone_round_2": 3.0,
		"onevone_round_3": 1.0,
	}

	ds := Derive(rec, EvalConfig{OneVOneRounds: 2})

	assert.Equal(t, Some(2), ds.Raw["one_v_one_rounds_played"])
	assert.Equal(t, Some(3), ds.Raw["one_v_one_avg_score"])
	assert.Equal(t, Some(1), ds.Raw["one_v_one_win_rate"])
}

func TestDeriveSkillMoves(t *testing.T) {
	rec := RawRecord{
		"skill_move_1":          2.0,
		"skill_move_2":          3.0,
		"skill_move_3":          1.0,
		"skill_moves_both_feet": 1.0,
	}

	ds := Derive(rec, EvalConfig{SkillMoves: 3})
	assert.Equal(t, Some(3), ds.Raw["skill_moves_rated"])
	assert.Equal(t, Some(2), ds.Raw["skill_moves_avg_rating"])
	assert.Equal(t, Some(1), ds.Raw["skill_moves_both_feet"])

	ds = Derive(rec, EvalConfig{SkillMoves: 0})
	assert.Equal(t, None(), ds.Raw["skill_moves_rated"])
	assert.Equal(t, None(), ds.Raw["skill_moves_avg_rating"])
	assert.Equal(t, None(), ds.Raw["skill_moves_both_feet"])
}

func TestDeriveJumpEndurance(t *testing.T) {
	rec := RawRecord{}
	heights := []float64{40, 40, 39, 38, 38, 37, 36, 35, 34, 30}
	for i, h := range heights {
		rec[fmt.Sprintf("jump_endurance_%d", i+1)] = h
	}

	ds := Derive(rec, EvalConfig{})

	assert.Equal(t, Some(36.7), ds.Raw["jump_endurance_avg"])
	assert.Equal(t, Some(40), ds.Raw["jump_endurance_best"])

	dropoff := ds.Raw["jump_endurance_dropoff_pct"]
	require.True(t, dropoff.OK)
	assert.InDelta(t, (40.0-30.0)/40.0*100, dropoff.V, 0.001)
}

func TestDeriveEmptyRecord(t *testing.T) {
	ds := Derive(RawRecord{}, EvalConfig{OneVOneRounds: 5, SkillMoves: 3})

	for name, v := range ds.Raw {
		if name == "one_v_one_rounds_played" || name == "skill_moves_rated" {
			assert.Equal(t, Some(0), v, "%s counts zero attempts", name)
			continue
		}
		assert.Equal(t, None(), v, "%s should be missing on an empty record", name)
	}
}
