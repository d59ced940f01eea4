package reduce

import (
	"cmp"

	"github.com/tuplekit/tuplekit/tuple"
)

// Op describes how values of type T are combined by a reduction.
//
// Combine must be associative, and Identity must return a value e such
// that Combine(e, x) == x for all x. Combine need not be commutative:
// partial results are always combined in index order.
type Op[T any] interface {
	Identity() T
	Combine(x, y T) T
}

// Func returns an Op with the given identity and combine function.
func Func[T any](identity T, combine func(x, y T) T) Op[T] {
	return funcOp[T]{
		identity: identity,
		combine:  combine,
	}
}

type funcOp[T any] struct {
	identity T
	combine  func(x, y T) T
}

func (o funcOp[T]) Identity() T {
	return o.identity
}

func (o funcOp[T]) Combine(x, y T) T {
	return o.combine(x, y)
}

// Sum returns an Op that adds values. Its identity is zero.
func Sum[T tuple.Number]() Op[T] {
	return sumOp[T]{}
}

type sumOp[T tuple.Number] struct{}

func (sumOp[T]) Identity() T {
	var zero T
	return zero
}

func (sumOp[T]) Combine(x, y T) T {
	return x + y
}

// Min returns an Op that takes the smaller of two values.
// The identity should be at least as large as any value
// being reduced, for example math.Inf(1).
func Min[T cmp.Ordered](identity T) Op[T] {
	return Func(identity, func(x, y T) T {
		return min(x, y)
	})
}

// Max returns an Op that takes the larger of two values.
// The identity should be no larger than any value
// being reduced, for example math.Inf(-1).
func Max[T cmp.Ordered](identity T) Op[T] {
	return Func(identity, func(x, y T) T {
		return max(x, y)
	})
}
