package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fluent/collections"
)

func TestMapTo(t *testing.T) {
	got := collections.MapTo[string](collections.New(1, 2, 3), strconv.Itoa)
	require.NoError(t, got.Err())
	assert.Equal(t, []string{"1", "2", "3"}, got.ToSlice())
}

func TestMapToErrorReturning(t *testing.T) {
	got := collections.MapTo[int](collections.New("1", "22"), strconv.Atoi)
	require.NoError(t, got.Err())
	assert.Equal(t, []int{1, 22}, got.ToSlice())

	bad := collections.MapTo[int](collections.New("1", "x"), strconv.Atoi)
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.Err(), &numErr)
	assert.Equal(t, 0, bad.Len())
}

func TestMapToWithArgs(t *testing.T) {
	got := collections.MapTo[string](collections.New(int64(5), int64(255)), strconv.FormatInt, 16)
	require.NoError(t, got.Err())
	assert.Equal(t, []string{"5", "ff"}, got.ToSlice())
}

func TestMapToChain(t *testing.T) {
	labels := collections.MapTo[string](
		collections.New(1, 2, 3).Keep(func(n int) bool { return n > 1 }),
		strconv.Itoa,
	).Append("4")
	assert.Equal(t, []string{"2", "3", "4"}, labels.ToSlice())
}

func TestReduce(t *testing.T) {
	sum, err := collections.Reduce(collections.New(1, 2, 3, 4), func(acc, n int) int { return acc + n }, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, sum)

	joined, err := collections.Reduce(collections.New(1, 2), func(acc string, n int) string { return acc + strconv.Itoa(n) }, ">")
	require.NoError(t, err)
	assert.Equal(t, ">12", joined)

	empty, err := collections.Reduce(collections.Empty[int](), func(acc, n int) int { return acc + n }, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, empty)
}
