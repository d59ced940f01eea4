package tuplegen

import "strings"

func (g *generator) genTuple(n int) {
	as := list("A", 0, n)
	bs := list("B", 0, n)
	t := tupleType(n, as)
	ptrs := tupleType(n, "*"+strings.Join(names("A", 0, n), ", *"))
	vals := list("t.V", 0, n)

	g.printf("\n// T%d holds a tuple of %d value%s.\n", n, n, plural(n))
	g.printf("type %s struct {\n", tupleType(n, as+" any"))
	for i := 0; i < n; i++ {
		g.printf("\tV%d A%d\n", i, i)
	}
	g.printf("}\n")

	g.printf("\n// MkT%d returns a T%d holding the given values.\n", n, n)
	g.printf("// To store a reference rather than a copy, pass a pointer.\n")
	g.printf("func MkT%d[%s any](%s) %s {\n", n, as, params("a", "A", n), t)
	g.printf("\treturn %s{%s}\n", t, list("a", 0, n))
	g.printf("}\n")

	g.printf("\n// T returns all the values in the tuple.\n")
	g.printf("func (t %s) T() %s {\n", t, results(names("A", 0, n)))
	g.printf("\treturn %s\n", vals)
	g.printf("}\n")

	g.printf("\n// Len returns the number of values in the tuple.\n")
	g.printf("func (%s) Len() int {\n", t)
	g.printf("\treturn %d\n", n)
	g.printf("}\n")

	g.printf("\n// Types returns the element types of the tuple in slot order.\n")
	g.printf("func (%s) Types() [%d]reflect.Type {\n", t, n)
	typeFors := make([]string, n)
	for i := range typeFors {
		typeFors[i] = "reflect.TypeFor[A" + itoa(i) + "]()"
	}
	g.printf("\treturn [%d]reflect.Type{%s}\n", n, strings.Join(typeFors, ", "))
	g.printf("}\n")

	g.printf("\n// String returns the tuple formatted as a parenthesized list.\n")
	g.printf("func (t %s) String() string {\n", t)
	g.printf("\treturn fmt.Sprintf(\"(%s)\", %s)\n", repeat("%v", n), vals)
	g.printf("}\n")

	for i := 0; i < n; i++ {
		g.printf("\n// Get%d returns the value in slot %d.\n", i, i)
		g.printf("func (t %s) Get%d() A%d {\n", t, i, i)
		g.printf("\treturn t.V%d\n", i)
		g.printf("}\n")

		g.printf("\n// Ptr%d returns a pointer to slot %d.\n", i, i)
		g.printf("func (t *%s) Ptr%d() *A%d {\n", t, i, i)
		g.printf("\treturn &t.V%d\n", i)
		g.printf("}\n")

		g.printf("\n// Take%d returns the value in slot %d and resets the slot to its zero value.\n", i, i)
		g.printf("func (t *%s) Take%d() A%d {\n", t, i, i)
		g.printf("\tv := t.V%d\n", i)
		g.printf("\tvar zero A%d\n", i)
		g.printf("\tt.V%d = zero\n", i)
		g.printf("\treturn v\n")
		g.printf("}\n")
	}

	g.printf("\n// Tie%d returns a tuple of pointers to the given variables.\n", n)
	g.printf("// Storing through the result with Store%d assigns to the variables.\n", n)
	g.printf("func Tie%d[%s any](%s) %s {\n", n, as, params("p", "*A", n), ptrs)
	g.printf("\treturn %s{%s}\n", ptrs, list("p", 0, n))
	g.printf("}\n")

	g.printf("\n// Load%d returns the values pointed to by t.\n", n)
	g.printf("// A nil pointer yields the zero value for its slot.\n")
	g.printf("func Load%d[%s any](t %s) %s {\n", n, as, ptrs, t)
	g.printf("\tvar r %s\n", t)
	for i := 0; i < n; i++ {
		g.printf("\tif t.V%d != nil {\n", i)
		g.printf("\t\tr.V%d = *t.V%d\n", i, i)
		g.printf("\t}\n")
	}
	g.printf("\treturn r\n")
	g.printf("}\n")

	g.printf("\n// Store%d assigns the values in src through the pointers in dst,\n", n)
	g.printf("// slot 0 first. Slots holding a nil pointer are skipped.\n")
	g.printf("func Store%d[%s any](dst %s, src %s) {\n", n, as, ptrs, t)
	for i := 0; i < n; i++ {
		g.printf("\tif dst.V%d != nil {\n", i)
		g.printf("\t\t*dst.V%d = src.V%d\n", i, i)
		g.printf("\t}\n")
	}
	g.printf("}\n")

	g.printf("\n// Forward%d returns its arguments as a tuple. It is useful for relaying\n", n)
	g.printf("// the results of a call with %d result%s, as in Forward%d(f()).\n", n, plural(n), n)
	g.printf("func Forward%d[%s any](%s) %s {\n", n, as, params("a", "A", n), t)
	g.printf("\treturn %s{%s}\n", t, list("a", 0, n))
	g.printf("}\n")

	g.printf("\n// Zero%d returns the tuple with the same element types as shape\n", n)
	g.printf("// and every slot set to its zero value.\n")
	g.printf("func Zero%d[%s any](shape %s) %s {\n", n, as, t, t)
	g.printf("\treturn %s{}\n", t)
	g.printf("}\n")

	conv := make([]string, n)
	for i := range conv {
		conv[i] = "B" + itoa(i) + "(t.V" + itoa(i) + ")"
	}
	g.printf("\n// Convert%d converts each element of t to the corresponding\n", n)
	g.printf("// destination type using Go's numeric conversion rules.\n")
	g.printf("func Convert%d[%s, %s Number](t %s) %s {\n", n, bs, as, t, tupleType(n, bs))
	g.printf("\treturn %s{%s}\n", tupleType(n, bs), strings.Join(conv, ", "))
	g.printf("}\n")

	g.printf("\n// Assign%d converts each element of src and assigns it to the\n", n)
	g.printf("// corresponding slot of dst, slot 0 first.\n")
	g.printf("func Assign%d[%s, %s Number](dst *%s, src %s) {\n", n, bs, as, tupleType(n, bs), t)
	for i := 0; i < n; i++ {
		g.printf("\tdst.V%d = B%d(src.V%d)\n", i, i, i)
	}
	g.printf("}\n")

	mapParams := make([]string, n)
	mapCalls := make([]string, n)
	for i := range mapParams {
		mapParams[i] = "f" + itoa(i) + " func(A" + itoa(i) + ") B" + itoa(i)
		mapCalls[i] = "f" + itoa(i) + "(t.V" + itoa(i) + ")"
	}
	g.printf("\n// Map%d returns the tuple formed by applying f0 to slot 0 of t,\n", n)
	g.printf("// f1 to slot 1 and so on.\n")
	g.printf("func Map%d[%s, %s any](t %s, %s) %s {\n", n, as, bs, t, strings.Join(mapParams, ", "), tupleType(n, bs))
	g.printf("\treturn %s{%s}\n", tupleType(n, bs), strings.Join(mapCalls, ", "))
	g.printf("}\n")

	g.printf("\n// Apply%d calls f with the elements of t as arguments and returns its result.\n", n)
	g.printf("func Apply%d[%s, R any](f func(%s) R, t %s) R {\n", n, as, as, t)
	g.printf("\treturn f(%s)\n", vals)
	g.printf("}\n")

	g.printf("\n// Do%d calls f with the elements of t as arguments.\n", n)
	g.printf("func Do%d[%s any](f func(%s), t %s) {\n", n, as, as, t)
	g.printf("\tf(%s)\n", vals)
	g.printf("}\n")

	same := tupleType(n, repeat("A", n))
	g.printf("\n// Array%d returns the elements of t, which must all have\n", n)
	g.printf("// the same type, as an array.\n")
	g.printf("func Array%d[A any](t %s) [%d]A {\n", n, same, n)
	g.printf("\treturn [%d]A{%s}\n", n, vals)
	g.printf("}\n")

	elems := make([]string, n)
	for i := range elems {
		elems[i] = "a[" + itoa(i) + "]"
	}
	g.printf("\n// FromArray%d returns a tuple holding the elements of a.\n", n)
	g.printf("func FromArray%d[A any](a [%d]A) %s {\n", n, n, same)
	g.printf("\treturn %s{%s}\n", same, strings.Join(elems, ", "))
	g.printf("}\n")
}

// params formats a parameter list such as "a0 A0, a1 A1".
func params(name, typ string, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = name + itoa(i) + " " + typ + itoa(i)
	}
	return strings.Join(ps, ", ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func itoa(i int) string {
	return string(rune('0' + i))
}
