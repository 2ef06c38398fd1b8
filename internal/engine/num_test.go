package engine

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeRejectsNonFinite(t *testing.T) {
	assert.Equal(t, None(), Some(math.NaN()))
	assert.Equal(t, None(), Some(math.Inf(1)))
	assert.Equal(t, None(), Some(math.Inf(-1)))
	assert.Equal(t, Num{V: 5, OK: true}, Some(5))
}

func TestNumCombinators(t *testing.T) {
	double := func(v float64) float64 { return v * 2 }

	assert.Equal(t, Some(8), Some(4).Map(double))
	assert.Equal(t, None(), None().Map(double))

	add := func(a, b float64) float64 { return a + b }
	assert.Equal(t, Some(7), Map2(Some(3), Some(4), add))
	assert.Equal(t, None(), Map2(None(), Some(4), add))
	assert.Equal(t, None(), Map2(Some(3), None(), add))
}

func TestNumPtrRoundTrip(t *testing.T) {
	p := Some(2.5).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 2.5, *p)
	assert.Equal(t, Some(2.5), FromPtr(p))

	assert.Nil(t, None().Ptr())
	assert.Equal(t, None(), FromPtr(nil))
}

func TestNumJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Num{"a": Some(1.5), "b": None()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null}`, string(data))

	var decoded map[string]Num
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Some(1.5), decoded["a"])
	assert.Equal(t, None(), decoded["b"])
}
