package engine

import (
	"encoding/json"
	"math"
)

// Num is a numeric value that may be missing. The zero value is missing.
// Missing data is normal here, not an error: a test a player skipped or a
// malformed raw field both end up as a missing Num, and every derivation
// built on top propagates that missing-ness instead of failing.
type Num struct {
	V  float64
	OK bool
}

// Some wraps a present value. Non-finite inputs are treated as missing.
func Some(v float64) Num {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Num{}
	}
	return Num{V: v, OK: true}
}

// None is the missing value.
func None() Num { return Num{} }

// Map applies f to a present value and leaves a missing one alone.
func (n Num) Map(f func(float64) float64) Num {
	if !n.OK {
		return Num{}
	}
	return Some(f(n.V))
}

// Map2 combines two values; missing if either is missing.
func Map2(a, b Num, f func(a, b float64) float64) Num {
	if !a.OK || !b.OK {
		return Num{}
	}
	return Some(f(a.V, b.V))
}

// Fold reduces a slice of values. The result is missing if the slice is
// empty or any element is missing.
func Fold(vs []Num, init float64, f func(acc, v float64) float64) Num {
	if len(vs) == 0 {
		return Num{}
	}
	acc := init
	for _, v := range vs {
		if !v.OK {
			return Num{}
		}
		acc = f(acc, v.V)
	}
	return Some(acc)
}

// Ptr converts to a nullable pointer for persistence.
func (n Num) Ptr() *float64 {
	if !n.OK {
		return nil
	}
	v := n.V
	return &v
}

// FromPtr converts a nullable pointer back into a Num.
func FromPtr(p *float64) Num {
	if p == nil {
		return Num{}
	}
	return Some(*p)
}

// MarshalJSON encodes a missing value as null.
func (n Num) MarshalJSON() ([]byte, error) {
	if !n.OK {
		return []byte("null"), nil
	}
	return json.Marshal(n.V)
}

// UnmarshalJSON decodes null as missing.
func (n *Num) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Num{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}
