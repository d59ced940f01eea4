package tuplegen

import "strings"

func (g *generator) genCat(m, n int) {
	as := list("A", 0, m)
	bs := list("B", 0, n)
	r := tupleType(m+n, as+", "+bs)
	g.printf("\n// Cat_%d_%d returns the concatenation of a and b.\n", m, n)
	g.printf("func Cat_%d_%d[%s, %s any](a %s, b %s) %s {\n", m, n, as, bs, tupleType(m, as), tupleType(n, bs), r)
	g.printf("\treturn %s{%s, %s}\n", r, list("a.V", 0, m), list("b.V", 0, n))
	g.printf("}\n")
}

func (g *generator) genSplit(parts []int) {
	total := 0
	sizes := make([]string, len(parts))
	subTypes := make([]string, len(parts))
	subVals := make([]string, len(parts))
	for i, p := range parts {
		sizes[i] = itoa(p)
		subTypes[i] = tupleType(p, list("A", total, p))
		subVals[i] = subTypes[i] + "{" + list("t.V", total, p) + "}"
		total += p
	}
	name := "Split_" + strings.Join(sizes, "_")
	r := tupleType(len(parts), strings.Join(subTypes, ", "))
	if len(parts) == 1 {
		g.printf("\n// %s returns t wrapped in a single-element tuple.\n", name)
	} else {
		g.printf("\n// %s splits t into consecutive tuples of sizes %s.\n", name, joinWords(sizes))
	}
	g.printf("func %s[%s any](t %s) %s {\n", name, list("A", 0, total), tupleType(total, list("A", 0, total)), r)
	g.printf("\treturn %s{\n", r)
	for _, v := range subVals {
		g.printf("\t\t%s,\n", v)
	}
	g.printf("\t}\n")
	g.printf("}\n")
}
