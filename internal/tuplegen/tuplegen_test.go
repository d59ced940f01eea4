package tuplegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/golden"
)

// decls parses src and returns the names of its top-level functions,
// types and methods, the latter in the form Type.Method.
func decls(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	names := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
				continue
			}
			recv := d.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			switch r := recv.(type) {
			case *ast.IndexExpr:
				recv = r.X
			case *ast.IndexListExpr:
				recv = r.X
			}
			names[recv.(*ast.Ident).Name+"."+d.Name.Name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					names[ts.Name.Name] = true
				}
			}
		}
	}
	return names
}

func TestCompositions(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(compositions(1), [][]int{{1}}))
	qt.Assert(t, qt.DeepEquals(compositions(3), [][]int{{1, 1, 1}, {1, 2}, {2, 1}, {3}}))
	for n := 1; n <= 8; n++ {
		parts := compositions(n)
		qt.Assert(t, qt.HasLen(parts, 1<<(n-1)))
		for _, p := range parts {
			sum := 0
			for _, x := range p {
				sum += x
			}
			qt.Assert(t, qt.Equals(sum, n))
		}
	}
}

func TestGenerateTuple(t *testing.T) {
	src, err := Generate(KindTuple, DefaultConfig())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(src), "// Code generated by tuplegen; DO NOT EDIT.\n\npackage tuple\n")))

	names := decls(t, src)
	for n := 1; n <= 8; n++ {
		for _, name := range []string{"T", "MkT", "Tie", "Load", "Store", "Forward", "Zero", "Convert", "Assign", "Map", "Apply", "Do", "Array", "FromArray"} {
			qt.Assert(t, qt.IsTrue(names[name+itoa(n)]), qt.Commentf("missing %s%d", name, n))
		}
		for _, m := range []string{"T", "Len", "Types", "String"} {
			qt.Assert(t, qt.IsTrue(names["T"+itoa(n)+"."+m]), qt.Commentf("missing T%d.%s", n, m))
		}
		for i := 0; i < n; i++ {
			for _, m := range []string{"Get", "Ptr", "Take"} {
				qt.Assert(t, qt.IsTrue(names["T"+itoa(n)+"."+m+itoa(i)]), qt.Commentf("missing T%d.%s%d", n, m, i))
			}
		}
		qt.Assert(t, qt.IsFalse(names["T"+itoa(n)+".Get"+itoa(n)]))
	}
	qt.Assert(t, qt.IsFalse(names["T9"]))
	qt.Assert(t, qt.StringContains(string(src), "func (t T3[A0, A1, A2]) T() (A0, A1, A2) {"))
	qt.Assert(t, qt.StringContains(string(src), "func (t T1[A0]) T() A0 {"))
}

func TestGenerateCat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArity = 4
	src, err := Generate(KindCat, cfg)
	qt.Assert(t, qt.IsNil(err))
	names := decls(t, src)
	var got []string
	for name := range names {
		got = append(got, name)
	}
	want := []string{"Cat_1_1", "Cat_1_2", "Cat_2_1", "Cat_1_3", "Cat_2_2", "Cat_3_1"}
	qt.Assert(t, qt.CmpEquals(got, want, cmpSorted))
	qt.Assert(t, qt.StringContains(string(src), "return T4[A0, A1, B0, B1]{a.V0, a.V1, b.V0, b.V1}"))
}

func TestGenerateSplit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSplit = 3
	src, err := Generate(KindSplit, cfg)
	qt.Assert(t, qt.IsNil(err))
	names := decls(t, src)
	qt.Assert(t, qt.HasLen(names, 1+2+4))
	qt.Assert(t, qt.IsTrue(names["Split_1_2"]))
	qt.Assert(t, qt.IsTrue(names["Split_3"]))
	qt.Assert(t, qt.StringContains(string(src), "func Split_1_2[A0, A1, A2 any](t T3[A0, A1, A2]) T2[T1[A0], T2[A1, A2]] {"))
}

func TestGenerateFunc(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFunc = 2
	src, err := Generate(KindFunc, cfg)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "package tuplefunc\n"))
	qt.Assert(t, qt.StringContains(string(src), `"`+TuplePath+`"`))
	names := decls(t, src)
	qt.Assert(t, qt.HasLen(names, 12*2*2))
	for _, name := range []string{"ToA_1_1", "ToR_2_2", "ToAR_1_2", "ToAE_2_1", "ToCRE_1_2", "ToCARE_2_2"} {
		qt.Assert(t, qt.IsTrue(names[name]), qt.Commentf("missing %s", name))
	}
	qt.Assert(t, qt.IsFalse(names["ToC_1_1"]))
	qt.Assert(t, qt.IsFalse(names["ToE_1_1"]))
}

func TestGeneratePackageOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Package = "other"
	src, err := Generate(KindCat, cfg)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "\npackage other\n"))
}

var validateTests = []struct {
	about  string
	kind   Kind
	modify func(*Config)
	err    string
}{{
	about:  "default",
	kind:   KindTuple,
	modify: func(*Config) {},
}, {
	about:  "arity too small",
	kind:   KindTuple,
	modify: func(c *Config) { c.MaxArity = 0 },
	err:    "max arity 0 out of range [1, 9]",
}, {
	about:  "arity too large",
	kind:   KindCat,
	modify: func(c *Config) { c.MaxArity = 10 },
	err:    "max arity 10 out of range [1, 9]",
}, {
	about:  "split larger than arity",
	kind:   KindSplit,
	modify: func(c *Config) { c.MaxArity, c.MaxSplit = 4, 5 },
	err:    "max split 5 out of range [1, 4]",
}, {
	about:  "split limit ignored for cat",
	kind:   KindCat,
	modify: func(c *Config) { c.MaxArity, c.MaxSplit = 3, 6 },
}, {
	about:  "func limit ignored for tuple",
	kind:   KindTuple,
	modify: func(c *Config) { c.MaxArity, c.MaxFunc = 2, 4 },
}, {
	about:  "func too small",
	kind:   KindFunc,
	modify: func(c *Config) { c.MaxFunc = 0 },
	err:    "max func 0 out of range [1, 8]",
}, {
	about:  "func larger than arity",
	kind:   KindFunc,
	modify: func(c *Config) { c.MaxArity = 3 },
	err:    "max func 4 out of range [1, 3]",
}}

func TestValidate(t *testing.T) {
	for _, test := range validateTests {
		t.Run(test.about, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(&cfg)
			err := cfg.Validate(test.kind)
			if test.err == "" {
				qt.Assert(t, qt.IsNil(err))
				_, err = Generate(test.kind, cfg)
				qt.Assert(t, qt.IsNil(err))
				return
			}
			qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfig))
			qt.Assert(t, qt.StringContains(err.Error(), test.err))

			_, err = Generate(test.kind, cfg)
			qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfig))
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, k))
	}
	_, err := ParseKind("tuples")
	qt.Assert(t, qt.ErrorMatches(err, `unknown kind "tuples"`))
}

// TestGeneratedFilesUpToDate checks that the checked-in generated
// source matches the generator. Run with -update to rewrite it.
func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, f := range []struct {
		kind Kind
		path string
	}{
		{KindTuple, "../../tuple/tuple_gen.go"},
		{KindCat, "../../tuple/cat_gen.go"},
		{KindSplit, "../../tuple/split_gen.go"},
		{KindFunc, "../../tuple/tuplefunc/tuplefunc_gen.go"},
	} {
		t.Run(string(f.kind), func(t *testing.T) {
			src, err := Generate(f.kind, DefaultConfig())
			qt.Assert(t, qt.IsNil(err))
			path, err := filepath.Abs(f.path)
			qt.Assert(t, qt.IsNil(err))
			golden.AssertBytes(t, src, path)
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate(Kind("bogus"), DefaultConfig())
	qt.Assert(t, qt.ErrorMatches(err, `unknown kind "bogus"`))
}

func TestJoinWords(t *testing.T) {
	qt.Assert(t, qt.Equals(joinWords([]string{"a"}), "a"))
	qt.Assert(t, qt.Equals(joinWords([]string{"a", "b"}), "a and b"))
	qt.Assert(t, qt.Equals(joinWords([]string{"a", "b", "c"}), "a, b and c"))
}

var cmpSorted = cmpopts.SortSlices(func(a, b string) bool {
	return a < b
})
