package tuplegen

import (
	"fmt"
	"strings"
)

// funcVariant describes one shape of tuplefunc conversion.
type funcVariant struct {
	ctx     bool // leading context.Context argument kept separate
	args    bool // arguments packed into a tuple
	results bool // results packed into a tuple
	err     bool // trailing error result kept separate
}

func (v funcVariant) name(n, m int) string {
	var b strings.Builder
	b.WriteString("To")
	if v.ctx {
		b.WriteString("C")
	}
	if v.args {
		b.WriteString("A")
	}
	if v.results {
		b.WriteString("R")
	}
	if v.err {
		b.WriteString("E")
	}
	fmt.Fprintf(&b, "_%d_%d", n, m)
	return b.String()
}

func funcVariants() []funcVariant {
	var vs []funcVariant
	for _, ctx := range []bool{false, true} {
		for _, ar := range [][2]bool{{true, false}, {false, true}, {true, true}} {
			for _, err := range []bool{false, true} {
				vs = append(vs, funcVariant{
					ctx:     ctx,
					args:    ar[0],
					results: ar[1],
					err:     err,
				})
			}
		}
	}
	return vs
}

func (g *generator) genFunc(v funcVariant, n, m int) {
	as := list("A", 0, n)
	rs := list("R", 0, m)
	argTuple := "tuple." + tupleType(n, as)
	resTuple := "tuple." + tupleType(m, rs)

	var srcArgs, dstArgs, litArgs, callArgs []string
	if v.ctx {
		srcArgs = append(srcArgs, "context.Context")
		dstArgs = append(dstArgs, "context.Context")
		litArgs = append(litArgs, "ctx context.Context")
		callArgs = append(callArgs, "ctx")
	}
	srcArgs = append(srcArgs, names("A", 0, n)...)
	if v.args {
		dstArgs = append(dstArgs, argTuple)
		litArgs = append(litArgs, "a "+argTuple)
		callArgs = append(callArgs, names("a.V", 0, n)...)
	} else {
		dstArgs = append(dstArgs, names("A", 0, n)...)
		litArgs = append(litArgs, params("a", "A", n))
		callArgs = append(callArgs, names("a", 0, n)...)
	}

	srcResults := names("R", 0, m)
	var dstResults []string
	if v.results {
		dstResults = []string{resTuple}
	} else {
		dstResults = names("R", 0, m)
	}
	if v.err {
		srcResults = append(srcResults, "error")
		dstResults = append(dstResults, "error")
	}

	srcType := "func(" + strings.Join(srcArgs, ", ") + ") " + results(srcResults)
	dstType := "func(" + strings.Join(dstArgs, ", ") + ") " + results(dstResults)
	litSig := "func(" + strings.Join(litArgs, ", ") + ") " + results(dstResults)
	call := "f(" + strings.Join(callArgs, ", ") + ")"

	var does []string
	if v.args {
		does = append(does, "takes its arguments as a tuple")
	}
	if v.results {
		does = append(does, "returns its results as a tuple")
	}
	var kept []string
	if v.ctx {
		kept = append(kept, "context argument")
	}
	if v.err {
		kept = append(kept, "error result")
	}

	name := v.name(n, m)
	g.printf("\n// %s converts f to a function that %s.\n", name, joinWords(does))
	switch len(kept) {
	case 1:
		g.printf("// The %s is passed through unchanged.\n", kept[0])
	case 2:
		g.printf("// The %s are passed through unchanged.\n", joinWords(kept))
	}
	g.printf("func %s[%s, %s any](f %s) %s {\n", name, as, rs, srcType, dstType)
	g.printf("\treturn %s {\n", litSig)
	if v.results {
		rvals := names("r", 0, m)
		if v.err {
			rvals = append(rvals, "err")
		}
		g.printf("\t\t%s := %s\n", strings.Join(rvals, ", "), call)
		ret := resTuple + "{" + list("r", 0, m) + "}"
		if v.err {
			ret += ", err"
		}
		g.printf("\t\treturn %s\n", ret)
	} else {
		g.printf("\t\treturn %s\n", call)
	}
	g.printf("\t}\n")
	g.printf("}\n")
}
