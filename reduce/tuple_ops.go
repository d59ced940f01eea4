package reduce

import "github.com/tuplekit/tuplekit/tuple"

// Ops1 returns an Op over one-element tuples that combines
// slot 0 with o0.
func Ops1[A0 any](o0 Op[A0]) Op[tuple.T1[A0]] {
	return ops1[A0]{o0}
}

type ops1[A0 any] struct {
	o0 Op[A0]
}

func (o ops1[A0]) Identity() tuple.T1[A0] {
	return tuple.MkT1(o.o0.Identity())
}

func (o ops1[A0]) Combine(x, y tuple.T1[A0]) tuple.T1[A0] {
	return tuple.MkT1(o.o0.Combine(x.V0, y.V0))
}

// Ops2 returns an Op over pairs that combines each slot
// with the corresponding op.
func Ops2[A0, A1 any](o0 Op[A0], o1 Op[A1]) Op[tuple.T2[A0, A1]] {
	return ops2[A0, A1]{o0, o1}
}

type ops2[A0, A1 any] struct {
	o0 Op[A0]
	o1 Op[A1]
}

func (o ops2[A0, A1]) Identity() tuple.T2[A0, A1] {
	return tuple.MkT2(o.o0.Identity(), o.o1.Identity())
}

func (o ops2[A0, A1]) Combine(x, y tuple.T2[A0, A1]) tuple.T2[A0, A1] {
	return tuple.MkT2(
		o.o0.Combine(x.V0, y.V0),
		o.o1.Combine(x.V1, y.V1),
	)
}

// Ops3 returns an Op over three-element tuples that combines
// each slot with the corresponding op.
func Ops3[A0, A1, A2 any](o0 Op[A0], o1 Op[A1], o2 Op[A2]) Op[tuple.T3[A0, A1, A2]] {
	return ops3[A0, A1, A2]{o0, o1, o2}
}

type ops3[A0, A1, A2 any] struct {
	o0 Op[A0]
	o1 Op[A1]
	o2 Op[A2]
}

func (o ops3[A0, A1, A2]) Identity() tuple.T3[A0, A1, A2] {
	return tuple.MkT3(o.o0.Identity(), o.o1.Identity(), o.o2.Identity())
}

func (o ops3[A0, A1, A2]) Combine(x, y tuple.T3[A0, A1, A2]) tuple.T3[A0, A1, A2] {
	return tuple.MkT3(
		o.o0.Combine(x.V0, y.V0),
		o.o1.Combine(x.V1, y.V1),
		o.o2.Combine(x.V2, y.V2),
	)
}

// Ops4 returns an Op over four-element tuples that combines
// each slot with the corresponding op.
func Ops4[A0, A1, A2, A3 any](o0 Op[A0], o1 Op[A1], o2 Op[A2], o3 Op[A3]) Op[tuple.T4[A0, A1, A2, A3]] {
	return ops4[A0, A1, A2, A3]{o0, o1, o2, o3}
}

type ops4[A0, A1, A2, A3 any] struct {
	o0 Op[A0]
	o1 Op[A1]
	o2 Op[A2]
	o3 Op[A3]
}

func (o ops4[A0, A1, A2, A3]) Identity() tuple.T4[A0, A1, A2, A3] {
	return tuple.MkT4(o.o0.Identity(), o.o1.Identity(), o.o2.Identity(), o.o3.Identity())
}

func (o ops4[A0, A1, A2, A3]) Combine(x, y tuple.T4[A0, A1, A2, A3]) tuple.T4[A0, A1, A2, A3] {
	return tuple.MkT4(
		o.o0.Combine(x.V0, y.V0),
		o.o1.Combine(x.V1, y.V1),
		o.o2.Combine(x.V2, y.V2),
		o.o3.Combine(x.V3, y.V3),
	)
}
