package arr_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-fluent/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func even(n int) (bool, error) { return n%2 == 0, nil }

var errBoom = errors.New("boom")

// failAt returns a predicate that errors when it sees n and counts its calls.
func failAt(n int, calls *int) func(int) (bool, error) {
	return func(x int) (bool, error) {
		*calls++
		if x == n {
			return false, errBoom
		}
		return false, nil
	}
}

// ─── First / Any / Every ──────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	v, ok, err := arr.First([]int{1, 3, 4, 6}, even)
	if err != nil || !ok || v != 4 {
		t.Fatalf("First = %v, %v, %v; want 4, true, nil", v, ok, err)
	}
	_, ok, err = arr.First([]int{1, 3}, even)
	if err != nil || ok {
		t.Fatal("First without a match should return false")
	}
}

func TestFirstStopsOnError(t *testing.T) {
	calls := 0
	_, _, err := arr.First([]int{1, 2, 3}, failAt(2, &calls))
	if !errors.Is(err, errBoom) {
		t.Fatalf("First err = %v; want errBoom", err)
	}
	if calls != 2 {
		t.Fatalf("First called fn %d times; want 2", calls)
	}
}

func TestAny(t *testing.T) {
	if ok, _ := arr.Any([]int{1, 2}, even); !ok {
		t.Fatal("Any should be true")
	}
	if ok, _ := arr.Any([]int{}, even); ok {
		t.Fatal("Any on empty should be false")
	}
}

func TestEvery(t *testing.T) {
	if ok, _ := arr.Every([]int{2, 4}, even); !ok {
		t.Fatal("Every should be true")
	}
	if ok, _ := arr.Every([]int{2, 3}, even); ok {
		t.Fatal("Every should be false")
	}
	if ok, _ := arr.Every([]int{}, even); !ok {
		t.Fatal("Every on empty should be vacuously true")
	}
}

func TestEveryShortCircuits(t *testing.T) {
	calls := 0
	ok, err := arr.Every([]int{2, 3, 4}, func(n int) (bool, error) {
		calls++
		return even(n)
	})
	if ok || err != nil || calls != 2 {
		t.Fatalf("Every = %v, %v after %d calls; want false, nil after 2", ok, err, calls)
	}
}

func TestCountBy(t *testing.T) {
	n, err := arr.CountBy([]int{1, 2, 3, 4}, even)
	if err != nil || n != 2 {
		t.Fatalf("CountBy = %d, %v; want 2, nil", n, err)
	}
}

// ─── Map / Filter / Reject / Reduce ───────────────────────────────────────────

func TestMap(t *testing.T) {
	got, err := arr.Map([]int{1, 2, 3}, func(n int) (int, error) { return n * 10, nil })
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{10, 20, 30})
}

func TestMapError(t *testing.T) {
	calls := 0
	_, err := arr.Map([]int{1, 2, 3}, func(n int) (bool, error) { return failAt(2, &calls)(n) })
	if !errors.Is(err, errBoom) {
		t.Fatalf("Map err = %v; want errBoom", err)
	}
}

func TestFilterReject(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	kept, _ := arr.Filter(in, even)
	dropped, _ := arr.Reject(in, even)
	assertSlice(t, kept, []int{2, 4})
	assertSlice(t, dropped, []int{1, 3, 5})
}

func TestReduce(t *testing.T) {
	sum := arr.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n }, 0)
	if sum != 10 {
		t.Fatalf("Reduce = %d; want 10", sum)
	}
}

// ─── Index arithmetic ─────────────────────────────────────────────────────────

func TestIndex(t *testing.T) {
	cases := []struct {
		n, i, want int
		ok         bool
	}{
		{5, 0, 0, true},
		{5, 4, 4, true},
		{5, -1, 4, true},
		{5, 5, 5, false},
		{5, -6, -1, false},
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := arr.Index(tc.n, tc.i)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Index(%d, %d) = %d, %v; want %d, %v", tc.n, tc.i, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBounds(t *testing.T) {
	cases := []struct{ n, low, high, wantLow, wantHigh int }{
		{5, 0, 2, 0, 2},
		{5, -2, 10, 3, 5},
		{5, 4, 1, 4, 4},
		{5, -10, -4, 0, 1},
		{0, 0, 3, 0, 0},
	}
	for _, tc := range cases {
		low, high := arr.Bounds(tc.n, tc.low, tc.high)
		if low != tc.wantLow || high != tc.wantHigh {
			t.Fatalf("Bounds(%d, %d, %d) = %d, %d; want %d, %d",
				tc.n, tc.low, tc.high, low, high, tc.wantLow, tc.wantHigh)
		}
	}
}

func TestInsert(t *testing.T) {
	assertSlice(t, arr.Insert([]int{1, 2, 3}, 0, 9), []int{9, 1, 2, 3})
	assertSlice(t, arr.Insert([]int{1, 2, 3}, 99, 9), []int{1, 2, 3, 9})
	assertSlice(t, arr.Insert([]int{1, 2, 3}, -1, 9), []int{1, 2, 9, 3})
	assertSlice(t, arr.Insert([]int{1, 2, 3}, -99, 9), []int{9, 1, 2, 3})
	assertSlice(t, arr.Insert([]int{}, 0, 9), []int{9})
}

func TestSplice(t *testing.T) {
	assertSlice(t, arr.Splice([]int{1, 2, 3, 4, 5}, 2, 5, []int{9, 9}), []int{1, 2, 9, 9})
	assertSlice(t, arr.Splice([]int{1, 2, 3}, 1, 1, []int{7}), []int{1, 7, 2, 3})
	assertSlice(t, arr.Splice([]int{1, 2, 3}, 0, 3, nil), []int{})
}
