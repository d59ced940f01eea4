package tuple_test

import (
	"fmt"
	"strings"

	"github.com/tuplekit/tuplekit/tuple"
)

func ExampleMkT3() {
	t := tuple.MkT3("x", 2, 3.5)
	name, n, f := t.T()
	fmt.Println(t, t.Len())
	fmt.Println(name, n, f)
	// Output:
	// (x, 2, 3.5) 3
	// x 2 3.5
}

// This example splits a tuple into two parts and joins them again.
func Example_split() {
	parts := tuple.Split_2_3(tuple.MkT5(1, 2, 3, 4, 5))
	fmt.Println(parts.V0, parts.V1)
	fmt.Println(tuple.Cat_2_3(parts.V0, parts.V1))
	// Output:
	// (1, 2) (3, 4, 5)
	// (1, 2, 3, 4, 5)
}

func ExampleTie3() {
	var key, value string
	// A nil pointer discards the third result.
	tied := tuple.Tie3[string, string, bool](&key, &value, nil)
	tuple.Store3(tied, tuple.Forward3(strings.Cut("answer=42", "=")))
	fmt.Println(key, value)
	// Output:
	// answer 42
}

func ExampleApply3() {
	volume := func(w, h, d float64) float64 {
		return w * h * d
	}
	fmt.Println(tuple.Apply3(volume, tuple.MkT3(2.0, 3.0, 4.0)))
	// Output:
	// 24
}

func ExampleZero3() {
	acc := tuple.MkT3(1.5, 7, uint8(200))
	acc = tuple.Zero3(acc)
	fmt.Println(acc)
	// Output:
	// (0, 0, 0)
}

func ExampleAssign2() {
	var wide tuple.T2[int64, float64]
	tuple.Assign2(&wide, tuple.MkT2(int8(-7), int32(8)))
	fmt.Println(wide)
	// Output:
	// (-7, 8)
}
