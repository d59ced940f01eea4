// Package tuple is a collection of generic struct types
// that hold a specific number of values.
//
// A tuple of arity N is the type TN, a plain struct with one field per
// element: V0 holds the first element, V1 the second and so on. There is
// no indirection, so a tuple has the same layout as the equivalent
// hand-written struct and can be copied, compared and passed by value
// exactly like one. No operation in this package allocates, panics or
// returns an error: every structural mismatch, such as an out-of-range
// index, a partition that does not add up, or elements of differing type
// where one type is required, is a compile-time type error.
//
// Each tuple type has accessors for every slot (Get0, Ptr0, Take0 and so
// on), its arity (Len) and element types (Types), and a T method that
// returns all the elements so they can be bound in one statement:
//
//	x, y, z := t.T()
//
// The per-arity functions build tuples (MkT3, Tie3, Forward3, Zero3),
// convert them (Convert3, Assign3, Map3), consume them (Apply3, Do3,
// Array3) and restructure them. Cat_M_N concatenates a tuple of arity M
// with one of arity N; longer concatenations are built pairwise from
// left to right. Split_n0_n1_... partitions a tuple into consecutive
// sub-tuples of the named sizes.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run ../cmd/tuplegen --kind tuple --out tuple_gen.go
//go:generate go run ../cmd/tuplegen --kind cat --out cat_gen.go
//go:generate go run ../cmd/tuplegen --kind split --out split_gen.go
