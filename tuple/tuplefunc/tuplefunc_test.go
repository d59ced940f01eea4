package tuplefunc_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/tuplekit/tuplekit/tuple"
	"github.com/tuplekit/tuplekit/tuple/tuplefunc"
)

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

func TestToA(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToA_2_2(divmod)
	q, r := f(tuple.MkT2(17, 5))
	c.Assert(q, qt.Equals, 3)
	c.Assert(r, qt.Equals, 2)
}

func TestToR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToR_2_2(divmod)
	c.Assert(f(17, 5), qt.Equals, tuple.MkT2(3, 2))
}

func TestToAR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAR_2_2(divmod)
	c.Assert(f(tuple.MkT2(9, 4)), qt.Equals, tuple.MkT2(2, 1))

	// A single-argument, single-result function composes
	// with the tuple algebra.
	g := tuplefunc.ToAR_1_1(strings.ToUpper)
	c.Assert(g(tuple.MkT1("abc")), qt.Equals, tuple.MkT1("ABC"))
}

func TestToAE(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAE_2_1(strconv.ParseFloat)
	x, err := f(tuple.MkT2("0.5", 64))
	c.Assert(err, qt.IsNil)
	c.Assert(x, qt.Equals, 0.5)

	parse := tuplefunc.ToAE_1_1(strconv.Atoi)
	n, err := parse(tuple.MkT1("12"))
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 12)

	_, err = parse(tuple.MkT1("twelve"))
	c.Assert(err, qt.ErrorMatches, `.*invalid syntax`)
}

func TestToRE(t *testing.T) {
	c := qt.New(t)
	errOdd := errors.New("odd")
	halves := func(n int) (int, int, error) {
		if n%2 != 0 {
			return 0, 0, errOdd
		}
		return n / 2, n / 2, nil
	}
	f := tuplefunc.ToRE_1_2(halves)
	got, err := f(10)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.MkT2(5, 5))

	_, err = f(3)
	c.Assert(err, qt.ErrorIs, errOdd)
}

func TestToCARE(t *testing.T) {
	c := qt.New(t)
	type ctxKey struct{}
	lookup := func(ctx context.Context, key string, def int) (string, int, error) {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		prefix, _ := ctx.Value(ctxKey{}).(string)
		return prefix + key, def * 2, nil
	}
	f := tuplefunc.ToCARE_2_2(lookup)
	ctx := context.WithValue(context.Background(), ctxKey{}, "p/")
	got, err := f(ctx, tuple.MkT2("k", 21))
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.MkT2("p/k", 42))

	ctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f(ctx, tuple.MkT2("k", 21))
	c.Assert(err, qt.ErrorIs, context.Canceled)
}

func TestToCR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToCR_1_3(func(ctx context.Context, s string) (string, int, bool) {
		return s, len(s), ctx != nil
	})
	c.Assert(f(context.Background(), "four"), qt.Equals, tuple.MkT3("four", 4, true))
}

func TestApplyEquivalence(t *testing.T) {
	c := qt.New(t)
	add := func(a, b, x int) int {
		return a*x + b
	}
	args := tuple.MkT3(2, 3, 4)
	c.Assert(tuplefunc.ToA_3_1(add)(args), qt.Equals, tuple.Apply3(add, args))
}
