package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one player's slice of an evaluation's raw scores: a flat map
// of named attempt fields. Values arrive as JSON numbers or numeric strings;
// anything else is indistinguishable from an absent field downstream.
type RawRecord map[string]any

// Field extracts a single named attempt value from the record.
func Field(rec RawRecord, name string) Num {
	v, ok := rec[name]
	if !ok {
		return Num{}
	}
	return coerce(v)
}

// Family extracts an indexed family of fields, prefix_1 .. prefix_n.
// The slice always has length n; unparseable or absent fields are missing.
func Family(rec RawRecord, prefix string, n int) []Num {
	vs := make([]Num, 0, n)
	for i := 1; i <= n; i++ {
		vs = append(vs, Field(rec, fmt.Sprintf("%s_%d", prefix, i)))
	}
	return vs
}

// coerce turns a loosely-typed raw value into a Num. Finite numbers and
// numeric strings pass through; everything else is missing.
func coerce(v any) Num {
	switch x := v.(type) {
	case float64:
		return Some(x)
	case float32:
		return Some(float64(x))
	case int:
		return Some(float64(x))
	case int64:
		return Some(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Num{}
		}
		return Some(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return Num{}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Num{}
		}
		return Some(f)
	default:
		return Num{}
	}
}
