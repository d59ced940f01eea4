package reduce_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/tuplekit/tuplekit/reduce"
	"github.com/tuplekit/tuplekit/tuple"
)

// statsOp folds the count, sum and maximum of a sequence.
func statsOp() reduce.Op[tuple.T3[int, int64, int]] {
	return reduce.Ops3(reduce.Sum[int](), reduce.Sum[int64](), reduce.Max(math.MinInt))
}

func statsKernel(i int) tuple.T3[int, int64, int] {
	v := (i * 7919) % 1000
	return tuple.MkT3(1, int64(v), v)
}

func TestForEmpty(t *testing.T) {
	got, err := reduce.For(context.Background(), 0, statsOp(), func(int) tuple.T3[int, int64, int] {
		panic("kernel called")
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tuple.MkT3(0, int64(0), math.MinInt)))
}

func TestForSequential(t *testing.T) {
	got, err := reduce.For(context.Background(), 10, reduce.Sum[int](), func(i int) int {
		return i
	}, reduce.Sequential())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 45))
}

var workerTests = []struct {
	about string
	opts  []reduce.Option
}{{
	about: "sequential",
	opts:  []reduce.Option{reduce.Sequential()},
}, {
	about: "default",
}, {
	about: "many-workers-small-chunks",
	opts:  []reduce.Option{reduce.Workers(16), reduce.ChunkSize(7)},
}, {
	about: "one-chunk",
	opts:  []reduce.Option{reduce.Workers(4), reduce.ChunkSize(1 << 20)},
}, {
	about: "max-chunk-size",
	opts:  []reduce.Option{reduce.Workers(4), reduce.ChunkSize(math.MaxInt)},
}, {
	about: "max-chunk-size-sequential",
	opts:  []reduce.Option{reduce.Sequential(), reduce.ChunkSize(math.MaxInt)},
}, {
	about: "chunk-size-one-short",
	opts:  []reduce.Option{reduce.Workers(4), reduce.ChunkSize(10006)},
}, {
	about: "invalid-values",
	opts:  []reduce.Option{reduce.Workers(-1), reduce.ChunkSize(0)},
}}

func TestForWorkers(t *testing.T) {
	const n = 10007
	var want tuple.T3[int, int64, int]
	want.V2 = math.MinInt
	for i := range n {
		k := statsKernel(i)
		want.V0 += k.V0
		want.V1 += k.V1
		want.V2 = max(want.V2, k.V2)
	}
	for _, test := range workerTests {
		t.Run(test.about, func(t *testing.T) {
			got, err := reduce.For(context.Background(), n, statsOp(), statsKernel, test.opts...)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, want))
		})
	}
}

func TestForLargeChunkSize(t *testing.T) {
	for _, workers := range []int{1, 4} {
		got, err := reduce.For(context.Background(), 10, reduce.Sum[int](), func(i int) int {
			return i
		}, reduce.Workers(workers), reduce.ChunkSize(math.MaxInt))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, 45), qt.Commentf("workers %d", workers))
	}
}

func TestForDeterministicFloat(t *testing.T) {
	// With a fixed chunk size, floating-point results are
	// identical whatever the number of workers.
	kernel := func(i int) tuple.T2[float64, float64] {
		x := 1 / float64(i+1)
		return tuple.MkT2(x, x*x)
	}
	op := reduce.Ops2(reduce.Sum[float64](), reduce.Sum[float64]())
	var results []tuple.T2[float64, float64]
	for _, workers := range []int{1, 2, 3, 8} {
		got, err := reduce.For(context.Background(), 100000, op, kernel, reduce.Workers(workers), reduce.ChunkSize(333))
		qt.Assert(t, qt.IsNil(err))
		results = append(results, got)
	}
	for _, r := range results[1:] {
		qt.Assert(t, qt.CmpEquals(r, results[0], cmp.Comparer(func(x, y float64) bool {
			return math.Float64bits(x) == math.Float64bits(y)
		})))
	}
	qt.Assert(t, qt.IsTrue(math.Abs(results[0].V1-math.Pi*math.Pi/6) < 1e-4))
}

func TestForOrder(t *testing.T) {
	// Concatenation is associative but not commutative,
	// so this checks that partial results are combined in order.
	op := reduce.Func("", func(x, y string) string {
		return x + y
	})
	kernel := func(i int) string {
		return string(rune('a' + i%26))
	}
	want, err := reduce.For(context.Background(), 200, op, kernel, reduce.Sequential())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(want, 200))
	got, err := reduce.For(context.Background(), 200, op, kernel, reduce.Workers(8), reduce.ChunkSize(3))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, want))
}

func TestForCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		var calls atomic.Int64
		_, err := reduce.For(ctx, 10000, reduce.Sum[int](), func(i int) int {
			calls.Add(1)
			return i
		}, reduce.Workers(workers), reduce.ChunkSize(10))
		qt.Assert(t, qt.ErrorIs(err, context.Canceled))
		qt.Assert(t, qt.ErrorMatches(err, `reduction over 10000 indexes not completed: context canceled`))
		qt.Assert(t, qt.Equals(calls.Load(), int64(0)))
	}
}

func TestForCancelledDuring(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls atomic.Int64
	_, err := reduce.For(ctx, 1000, reduce.Sum[int](), func(i int) int {
		if calls.Add(1) == 5 {
			cancel()
		}
		return i
	}, reduce.Sequential(), reduce.ChunkSize(10))
	qt.Assert(t, qt.ErrorIs(err, context.Canceled))
	// The chunk in progress completes; no further chunk starts.
	qt.Assert(t, qt.Equals(calls.Load(), int64(10)))
}

func TestMinMax(t *testing.T) {
	values := []float64{3, -1, 4, 1, -5, 9, 2, 6}
	op := reduce.Ops2(reduce.Min(math.Inf(1)), reduce.Max(math.Inf(-1)))
	got, err := reduce.For(context.Background(), len(values), op, func(i int) tuple.T2[float64, float64] {
		return tuple.MkT2(values[i], values[i])
	}, reduce.ChunkSize(3))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tuple.MkT2(-5.0, 9.0)))
}

func TestOps(t *testing.T) {
	op1 := reduce.Ops1(reduce.Sum[int]())
	qt.Assert(t, qt.Equals(op1.Combine(op1.Identity(), tuple.MkT1(3)), tuple.MkT1(3)))

	op4 := reduce.Ops4(reduce.Sum[int](), reduce.Min(10), reduce.Max(-10), reduce.Func(true, func(x, y bool) bool {
		return x && y
	}))
	qt.Assert(t, qt.Equals(op4.Identity(), tuple.MkT4(0, 10, -10, true)))
	got := op4.Combine(tuple.MkT4(1, 5, 5, true), tuple.MkT4(2, 3, 7, false))
	qt.Assert(t, qt.Equals(got, tuple.MkT4(3, 3, 7, false)))
}
