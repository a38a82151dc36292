package collections_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fluent/collections"
)

func TestOperatorApply(t *testing.T) {
	tests := []struct {
		op   collections.Operator
		v    any
		want bool
	}{
		{collections.Eq(2), 2, true},
		{collections.Eq(2), int64(2), true},
		{collections.Eq(2), 2.0, true},
		{collections.Eq(2), "2", false},
		{collections.Eq("a"), "a", true},
		{collections.Eq([]int{1}), []int{1}, true},
		{collections.Ne([]int{1}), []int{1}, false},
		{collections.Ne(1), 2, true},
		{collections.Lt(3), uint8(2), true},
		{collections.Lt(3), 3, false},
		{collections.Le(3), 3, true},
		{collections.Gt(-1), uint(0), true},
		{collections.Gt(uint(5)), -1, false},
		{collections.Ge(1.5), 2, true},
		{collections.Ge("b"), "b", true},
		{collections.Lt("b"), "a", true},
		{collections.Contains("ell"), "hello", true},
		{collections.Contains("x"), "hello", false},
		{collections.Contains(2), []int{1, 2}, true},
		{collections.Contains(2), [2]int{3, 4}, false},
		{collections.Contains("k"), map[string]int{"k": 0}, true},
		{collections.Contains(1.0), []int64{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := tt.op.Apply(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "%v applied to %#v", tt.op, tt.v)
		})
	}
}

func TestOperatorApplyErrors(t *testing.T) {
	tests := []struct {
		op collections.Operator
		v  any
	}{
		{collections.Op("approx", 1), 1},
		{collections.Lt("a"), 1},
		{collections.Gt(1), nil},
		{collections.Le([]int{1}), []int{1}},
		{collections.Contains(1), 42},
		{collections.Contains(1), "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			_, err := tt.op.Apply(tt.v)
			assert.ErrorIs(t, err, collections.ErrArgument)
		})
	}
}

func TestOperatorNaN(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		op   collections.Operator
		v    any
		want bool
	}{
		{collections.Eq(nan), nan, false},
		{collections.Ne(nan), nan, true},
		{collections.Eq(1), nan, false},
		{collections.Lt(1), nan, false},
		{collections.Ge(nan), 1, false},
		{collections.Contains(nan), []float64{nan}, false},
	}
	for _, tt := range tests {
		got, err := tt.op.Apply(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v applied to %v", tt.op, tt.v)
	}
}

func TestOperatorAccessors(t *testing.T) {
	op := collections.Ge(10)
	assert.Equal(t, "ge", op.Name())
	assert.Equal(t, 10, op.Operand())
	assert.Equal(t, "ge(10)", op.String())
	assert.Equal(t, "contains(x)", collections.Contains("x").String())
}

func TestEqualityAcrossNumericKinds(t *testing.T) {
	d := collections.NewDict(map[string]float64{"a": 1, "b": 2.5})
	got := d.Keep(collections.Eq(1))
	require.NoError(t, got.Err())
	assert.Equal(t, []string{"a"}, got.Keys())
}
