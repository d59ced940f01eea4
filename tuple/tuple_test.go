package tuple_test

import (
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplekit/tuplekit/tuple"
)

func TestZeroValue(t *testing.T) {
	var x tuple.T3[int, float64, string]
	qt.Assert(t, qt.Equals(x.Get0(), 0))
	qt.Assert(t, qt.Equals(x.Get1(), 0.0))
	qt.Assert(t, qt.Equals(x.Get2(), ""))
	qt.Assert(t, qt.Equals(x.Len(), 3))
	qt.Assert(t, qt.Equals(x.Types(), [3]reflect.Type{
		reflect.TypeFor[int](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[string](),
	}))
}

func TestMkT(t *testing.T) {
	x := tuple.MkT3(1, 2.5, "three")
	qt.Assert(t, qt.Equals(x, tuple.T3[int, float64, string]{1, 2.5, "three"}))
	a, b, c := x.T()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, 2.5))
	qt.Assert(t, qt.Equals(c, "three"))
	qt.Assert(t, qt.Equals(x.String(), "(1, 2.5, three)"))
}

func TestMkTCopies(t *testing.T) {
	v := 5
	x := tuple.MkT2(v, &v)
	v = 6
	// Slot 0 holds a copy; slot 1 refers to v.
	qt.Assert(t, qt.Equals(x.V0, 5))
	qt.Assert(t, qt.Equals(*x.V1, 6))
}

func TestAccessors(t *testing.T) {
	x := tuple.MkT2("a", []int{1, 2})
	*x.Ptr0() = "b"
	qt.Assert(t, qt.Equals(x.Get0(), "b"))

	s := x.Take1()
	qt.Assert(t, qt.DeepEquals(s, []int{1, 2}))
	qt.Assert(t, qt.IsNil(x.V1))

	*x.Ptr1() = append(*x.Ptr1(), 3)
	qt.Assert(t, qt.DeepEquals(x.Get1(), []int{3}))
}

func TestLenAndTypes(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.T1[int]{}.Len(), 1))
	qt.Assert(t, qt.Equals(tuple.T5[int, int, int, int, int]{}.Len(), 5))
	qt.Assert(t, qt.Equals(tuple.T8[int, int, int, int, int, int, int, int]{}.Len(), 8))

	types := tuple.MkT4(int8(1), uint16(2), error(nil), struct{}{}).Types()
	qt.Assert(t, qt.Equals(types[0], reflect.TypeFor[int8]()))
	qt.Assert(t, qt.Equals(types[1], reflect.TypeFor[uint16]()))
	qt.Assert(t, qt.Equals(types[2], reflect.TypeFor[error]()))
	qt.Assert(t, qt.Equals(types[3], reflect.TypeFor[struct{}]()))
}

func TestTie(t *testing.T) {
	x, y := 1, 2
	tied := tuple.Tie2(&x, &y)
	tuple.Store2(tied, tuple.MkT2(10, 20))
	qt.Assert(t, qt.Equals(x, 10))
	qt.Assert(t, qt.Equals(y, 20))

	x = 11
	qt.Assert(t, qt.Equals(tuple.Load2(tied), tuple.MkT2(11, 20)))
}

func TestTieIgnore(t *testing.T) {
	var s string
	tied := tuple.Tie3[int, string, bool](nil, &s, nil)
	tuple.Store3(tied, tuple.MkT3(1, "kept", true))
	qt.Assert(t, qt.Equals(s, "kept"))
	qt.Assert(t, qt.Equals(tuple.Load3(tied), tuple.MkT3(0, "kept", false)))
}

func TestForward(t *testing.T) {
	x := tuple.Forward2(strconv.Atoi("42"))
	qt.Assert(t, qt.Equals(x.V0, 42))
	qt.Assert(t, qt.IsNil(x.V1))

	_, err := tuple.Forward2(strconv.Atoi("x")).T()
	qt.Assert(t, qt.ErrorMatches(err, `.*invalid syntax`))
}

func TestZero(t *testing.T) {
	x := tuple.MkT3(1, 2.5, int8(3))
	qt.Assert(t, qt.Equals(tuple.Zero3(x), tuple.T3[int, float64, int8]{}))
	qt.Assert(t, qt.Equals(tuple.Zero3(x), tuple.MkT3(0, 0.0, int8(0))))
	// The shape argument is not modified.
	qt.Assert(t, qt.Equals(x, tuple.MkT3(1, 2.5, int8(3))))
}

func TestConvert(t *testing.T) {
	got := tuple.Convert2[int64, int64](tuple.MkT2(7, 8))
	qt.Assert(t, qt.Equals(got, tuple.MkT2(int64(7), int64(8))))

	f := tuple.Convert3[float64, int, uint8](tuple.MkT3(int32(-3), 2.9, 300))
	qt.Assert(t, qt.Equals(f, tuple.MkT3(-3.0, 2, uint8(44))))
}

func TestAssign(t *testing.T) {
	var dst tuple.T2[int64, int64]
	tuple.Assign2(&dst, tuple.MkT2(7, 8))
	qt.Assert(t, qt.Equals(dst, tuple.MkT2(int64(7), int64(8))))

	type celsius float64
	var temps tuple.T2[celsius, celsius]
	tuple.Assign2(&temps, tuple.MkT2(int16(-40), uint(100)))
	qt.Assert(t, qt.Equals(temps, tuple.MkT2(celsius(-40), celsius(100))))
}

func TestAssignThroughTie(t *testing.T) {
	var lo, hi int64
	dst := tuple.MkT2(int64(0), int64(0))
	tuple.Assign2(&dst, tuple.MkT2(int32(-1), int32(1)))
	tuple.Store2(tuple.Tie2(&lo, &hi), dst)
	qt.Assert(t, qt.Equals(lo, int64(-1)))
	qt.Assert(t, qt.Equals(hi, int64(1)))
}

func TestMap(t *testing.T) {
	got := tuple.Map3(tuple.MkT3(1, "2", 3.5),
		strconv.Itoa,
		func(s string) int {
			n, _ := strconv.Atoi(s)
			return n
		},
		func(f float64) bool { return f > 3 },
	)
	qt.Assert(t, qt.Equals(got, tuple.MkT3("1", 2, true)))
}

func add3(a, b, c int) int {
	return a + b + c
}

func TestApply(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Apply3(add3, tuple.MkT3(1, 2, 3)), 6))

	s := tuple.Apply2(strconv.FormatInt, tuple.MkT2(int64(255), 16))
	qt.Assert(t, qt.Equals(s, "ff"))

	var order []string
	tuple.Do3(func(a, b, c string) {
		order = append(order, a, b, c)
	}, tuple.MkT3("first", "second", "third"))
	qt.Assert(t, qt.DeepEquals(order, []string{"first", "second", "third"}))
}

func TestArray(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Array3(tuple.MkT3(1, 2, 3)), [3]int{1, 2, 3}))
	qt.Assert(t, qt.Equals(tuple.Array1(tuple.MkT1("x")), [1]string{"x"}))
	qt.Assert(t, qt.Equals(tuple.FromArray4([4]float64{1, 2, 3, 4}), tuple.MkT4(1.0, 2.0, 3.0, 4.0)))
	qt.Assert(t, qt.Equals(tuple.Array4(tuple.FromArray4([4]byte{'a', 'b', 'c', 'd'})), [4]byte{'a', 'b', 'c', 'd'}))
}

func TestCat(t *testing.T) {
	x := tuple.Cat_2_3(tuple.MkT2(1, "two"), tuple.MkT3(3.0, '4', int8(5)))
	qt.Assert(t, qt.Equals(x, tuple.MkT5(1, "two", 3.0, '4', int8(5))))
	qt.Assert(t, qt.Equals(x.Len(), 5))
}

func TestCatPairwise(t *testing.T) {
	a := tuple.MkT1("a")
	b := tuple.MkT2("b", "c")
	c := tuple.MkT3("d", "e", "f")
	d := tuple.MkT2("g", "h")
	got := tuple.Cat_6_2(tuple.Cat_3_3(tuple.Cat_1_2(a, b), c), d)
	want := tuple.MkT8("a", "b", "c", "d", "e", "f", "g", "h")
	qt.Assert(t, qt.Equals(got, want))
	qt.Assert(t, qt.Equals(tuple.Array8(got), [8]string{"a", "b", "c", "d", "e", "f", "g", "h"}))
}

func TestSplit(t *testing.T) {
	x := tuple.MkT5(1, 2, 3, 4, 5)
	parts := tuple.Split_2_3(x)
	qt.Assert(t, qt.Equals(parts.V0, tuple.MkT2(1, 2)))
	qt.Assert(t, qt.Equals(parts.V1, tuple.MkT3(3, 4, 5)))
	qt.Assert(t, qt.Equals(parts.Len(), 2))
}

func TestSplitCatRoundTrip(t *testing.T) {
	x := tuple.MkT5(1, "2", 3.0, false, []byte(nil))
	qt.Assert(t, qt.DeepEquals(tuple.Cat_2_3(tuple.Split_2_3(x).T()), x))
	qt.Assert(t, qt.DeepEquals(tuple.Cat_3_2(tuple.Split_3_2(x).T()), x))

	singles := tuple.Split_1_1_1_1_1(x)
	qt.Assert(t, qt.Equals(singles.V2, tuple.MkT1(3.0)))
	rejoined := tuple.Cat_4_1(
		tuple.Cat_3_1(tuple.Cat_2_1(tuple.Cat_1_1(singles.V0, singles.V1), singles.V2), singles.V3),
		singles.V4,
	)
	qt.Assert(t, qt.DeepEquals(rejoined, x))
}

func TestSplitIdentity(t *testing.T) {
	x := tuple.MkT3(1, 2, 3)
	qt.Assert(t, qt.Equals(tuple.Split_3(x).V0, x))
}

func TestSplitSix(t *testing.T) {
	x := tuple.MkT6(0, 1, 2, 3, 4, 5)
	parts := tuple.Split_1_2_3(x)
	qt.Assert(t, qt.Equals(parts.V0, tuple.MkT1(0)))
	qt.Assert(t, qt.Equals(parts.V1, tuple.MkT2(1, 2)))
	qt.Assert(t, qt.Equals(parts.V2, tuple.MkT3(3, 4, 5)))
}

func TestSplitCatRoundTripEight(t *testing.T) {
	x := tuple.MkT8(0, "1", 2.0, uint8(3), 4, "5", 6.0, int64(7))
	halves := tuple.Split_4_4(x)
	qt.Assert(t, qt.Equals(halves.V1, tuple.MkT4(4, "5", 6.0, int64(7))))
	qt.Assert(t, qt.Equals(tuple.Cat_4_4(halves.T()), x))
	qt.Assert(t, qt.Equals(tuple.Cat_7_1(tuple.Split_7_1(x).T()), x))
	qt.Assert(t, qt.Equals(tuple.Split_8(x).V0, x))
}

func TestNested(t *testing.T) {
	x := tuple.MkT2(tuple.MkT2(1, 2), tuple.MkT1("x"))
	qt.Assert(t, qt.Equals(x.String(), "((1, 2), (x))"))
}

func TestPassByValue(t *testing.T) {
	// Each goroutine gets a private copy of the tuple.
	orig := tuple.MkT3(1, 2, 3)
	results := make([]tuple.T3[int, int, int], 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(x tuple.T3[int, int, int]) {
			defer wg.Done()
			*x.Ptr0() += i
			x.V2 *= i
			results[i] = x
		}(orig)
	}
	wg.Wait()
	qt.Assert(t, qt.Equals(orig, tuple.MkT3(1, 2, 3)))
	for i, r := range results {
		qt.Assert(t, qt.Equals(r, tuple.MkT3(1+i, 2, 3*i)))
	}
}

func TestNoAllocs(t *testing.T) {
	x := tuple.MkT5(1, 2, 3, 4, 5)
	var sink int
	allocs := testing.AllocsPerRun(100, func() {
		parts := tuple.Split_2_3(x)
		y := tuple.Cat_2_3(parts.V0, parts.V1)
		z := tuple.Convert5[int64, int64, int64, int64, int64](y)
		tuple.Assign5(&y, z)
		arr := tuple.Array5(y)
		sink += tuple.Apply3(add3, tuple.MkT3(arr[0], arr[1], y.Get2()))
	})
	qt.Assert(t, qt.Equals(allocs, 0.0))
	qt.Assert(t, qt.Not(qt.Equals(sink, 0)))
}

func BenchmarkSplitCat(b *testing.B) {
	x := tuple.MkT5(1, 2, 3, 4, 5)
	for b.Loop() {
		x = tuple.Cat_2_3(tuple.Split_2_3(x).T())
	}
}

func BenchmarkApply(b *testing.B) {
	x := tuple.MkT3(1, 2, 3)
	sum := 0
	for b.Loop() {
		sum += tuple.Apply3(add3, x)
	}
}
