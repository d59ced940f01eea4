package reduce_test

import (
	"context"
	"fmt"
	"math"

	"github.com/tuplekit/tuplekit/reduce"
	"github.com/tuplekit/tuplekit/tuple"
)

// This example estimates a stable time step for an advection scheme
// on a two-dimensional grid. A kernel computes the edge velocity of
// every cell along each axis; the reduction keeps the largest speed
// per axis, and the time step is limited by the fastest crossing.
func Example_timeStep() {
	const nx, ny = 64, 32
	dx := tuple.MkT2(1.0/nx, 1.0/ny)
	velocity := func(cell int) tuple.T2[float64, float64] {
		i, j := cell%nx, cell/nx
		x, y := (float64(i)+0.5)*dx.V0, (float64(j)+0.5)*dx.V1
		// Solid-body rotation about the center of the domain.
		return tuple.MkT2(math.Abs(y-0.5), math.Abs(x-0.5))
	}
	maxSpeed := reduce.Ops2(reduce.Max(0.0), reduce.Max(0.0))
	umax, err := reduce.For(context.Background(), nx*ny, maxSpeed, velocity)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dt := math.Inf(1)
	for axis, h := range tuple.Array2(dx) {
		u := tuple.Array2(umax)[axis]
		dt = min(dt, h/(1e-10+u))
	}
	const cfl = 0.9
	fmt.Printf("max speed %v\n", umax)
	fmt.Printf("dt %.5f\n", cfl*dt)
	// Output:
	// max speed (0.484375, 0.4921875)
	// dt 0.02903
}

// This example computes the L1 norm, the squared L2 norm and the
// maximum norm of a residual in a single pass.
func Example_norms() {
	residual := []float64{0.5, -2, 1.5, -0.25}
	norms := reduce.Ops3(reduce.Sum[float64](), reduce.Sum[float64](), reduce.Max(0.0))
	got, err := reduce.For(context.Background(), len(residual), norms, func(i int) tuple.T3[float64, float64, float64] {
		r := math.Abs(residual[i])
		return tuple.MkT3(r, r*r, r)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	l1, l2sq, linf := got.T()
	fmt.Println(l1, math.Sqrt(l2sq), linf)
	// Output:
	// 4.25 2.5617376914898995 2
}
