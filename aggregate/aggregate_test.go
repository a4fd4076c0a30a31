package aggregate_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gematria/aggregate"
	"github.com/katalvlaran/gematria/encode"
)

func TestAggregateAdam(t *testing.T) {
	t.Parallel()

	res, ok := aggregate.Aggregate(encode.Sequence{1, 4, 40})
	require.True(t, ok)
	assert.Equal(t, int64(45), res.Sum)
	assert.Equal(t, "160", res.Product.String())

	require.False(t, res.InverseSum.Infinite)
	assert.Zero(t, big.NewRat(1, 45).Cmp(res.InverseSum.Value))
	assert.Zero(t, big.NewRat(1, 160).Cmp(res.InverseProduct.Value))
	assert.Equal(t, "0.022222222222222223", res.InverseSum.String())
	assert.Equal(t, "0.00625", res.InverseProduct.String())
}

func TestAggregateEmptyIsSkipped(t *testing.T) {
	t.Parallel()

	_, ok := aggregate.Aggregate(nil)
	assert.False(t, ok)
	_, ok = aggregate.Aggregate(encode.Sequence{})
	assert.False(t, ok)
}

func TestInverseInfinityIffZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int64
		inf  bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"negative", -301, false},
	}
	for _, tc := range tests {
		q := aggregate.Inverse(big.NewInt(tc.n))
		assert.Equal(t, tc.inf, q.Infinite, tc.name)
		if tc.inf {
			assert.Equal(t, aggregate.Infinity, q.String())
			assert.True(t, math.IsInf(q.Float64(), 1))
		}
	}
}

func TestProductIsExact(t *testing.T) {
	t.Parallel()

	seq := make(encode.Sequence, 100)
	for i := range seq {
		seq[i] = 900
	}
	res, ok := aggregate.Aggregate(seq)
	require.True(t, ok)

	want := new(big.Int).Exp(big.NewInt(900), big.NewInt(100), nil)
	assert.Zero(t, want.Cmp(res.Product))
	assert.Equal(t, int64(90000), res.Sum)

	// 900^100 ≈ 2.65e295 still fits float64, so the inverse renders as a float.
	assert.NotEqual(t, aggregate.Infinity, res.InverseProduct.String())
	assert.Greater(t, res.InverseProduct.Float64(), 0.0)
}

func TestInverseBeyondFloat64(t *testing.T) {
	t.Parallel()

	seq := make(encode.Sequence, 200)
	for i := range seq {
		seq[i] = 1000
	}
	res, ok := aggregate.Aggregate(seq)
	require.True(t, ok)
	// 1e-600 underflows float64; the big.Float fallback keeps the exponent.
	assert.Contains(t, res.InverseProduct.String(), "e-60")
}

func TestRatios(t *testing.T) {
	t.Parallel()

	qs := aggregate.Ratios(encode.Sequence{1, 4, 40, 20})
	require.Len(t, qs, 3)
	assert.Equal(t, "4", qs[0].String())
	assert.Equal(t, "10", qs[1].String())
	assert.Equal(t, "0.5", qs[2].String())

	assert.Nil(t, aggregate.Ratios(encode.Sequence{7}))
	assert.True(t, aggregate.Ratio(3, 0).Infinite)
	assert.Equal(t, "0.2694", aggregate.Ratio(111, 412).Format(4))
	assert.Equal(t, "0", aggregate.Ratio(0, 5).String())
}
