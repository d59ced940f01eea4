// Package tuplegen generates the arity-specific source code for the
// tuple and tuplefunc packages.
//
// Go has no variadic type parameters, so every operation on tuples
// exists once per arity. The generator writes those copies so that
// they stay consistent with one another.
package tuplegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate and
// Generate when the configuration is out of range.
var ErrInvalidConfig = errors.New("invalid generator configuration")

// maxSupportedArity bounds MaxArity. Type parameter and field names
// are formed from single decimal digits.
const maxSupportedArity = 9

// TuplePath is the import path of the tuple package, used by the
// generated tuplefunc source.
const TuplePath = "github.com/tuplekit/tuplekit/tuple"

// Kind selects which file is generated.
type Kind string

const (
	// KindTuple generates the tuple types, their accessors and the
	// per-arity helpers.
	KindTuple Kind = "tuple"
	// KindCat generates the Cat_M_N concatenation functions.
	KindCat Kind = "cat"
	// KindSplit generates the Split_... partition functions.
	KindSplit Kind = "split"
	// KindFunc generates the tuplefunc conversion functions.
	KindFunc Kind = "tuplefunc"
)

// Kinds returns all the kinds known to Generate.
func Kinds() []Kind {
	return []Kind{KindTuple, KindCat, KindSplit, KindFunc}
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Config holds the parameters of a generation run.
type Config struct {
	// Package is the package name written into the generated file.
	// If empty, the default for the kind is used.
	Package string

	// MaxArity is the largest tuple type generated. Cat functions
	// are generated for all pairs whose arities sum to at most MaxArity.
	MaxArity int

	// MaxSplit is the largest source arity for which Split
	// functions are generated. The number of partitions
	// doubles with every extra element. It must not exceed MaxArity.
	MaxSplit int

	// MaxFunc is the largest argument and result count handled
	// by the tuplefunc conversions. It must not exceed MaxArity.
	MaxFunc int
}

// DefaultConfig returns the configuration used to generate the
// checked-in source.
func DefaultConfig() Config {
	return Config{
		MaxArity: 8,
		MaxSplit: 8,
		MaxFunc:  4,
	}
}

// Validate checks that c describes a generation run of the given
// kind that can succeed. Only the limits read by kind are checked.
func (c Config) Validate(kind Kind) error {
	if c.MaxArity < 1 || c.MaxArity > maxSupportedArity {
		return fmt.Errorf("%w: max arity %d out of range [1, %d]", ErrInvalidConfig, c.MaxArity, maxSupportedArity)
	}
	switch kind {
	case KindSplit:
		if c.MaxSplit < 1 || c.MaxSplit > c.MaxArity {
			return fmt.Errorf("%w: max split %d out of range [1, %d]", ErrInvalidConfig, c.MaxSplit, c.MaxArity)
		}
	case KindFunc:
		if c.MaxFunc < 1 || c.MaxFunc > c.MaxArity {
			return fmt.Errorf("%w: max func %d out of range [1, %d]", ErrInvalidConfig, c.MaxFunc, c.MaxArity)
		}
	}
	return nil
}

func (c Config) packageFor(kind Kind) string {
	if c.Package != "" {
		return c.Package
	}
	if kind == KindFunc {
		return "tuplefunc"
	}
	return "tuple"
}

// Generate returns the gofmt-formatted source for the given kind.
func Generate(kind Kind, cfg Config) ([]byte, error) {
	if err := cfg.Validate(kind); err != nil {
		return nil, err
	}
	g := &generator{cfg: cfg}
	g.printf("// Code generated by tuplegen; DO NOT EDIT.\n\n")
	g.printf("package %s\n\n", cfg.packageFor(kind))
	switch kind {
	case KindTuple:
		g.printf("import (\n\t\"fmt\"\n\t\"reflect\"\n)\n")
		for n := 1; n <= cfg.MaxArity; n++ {
			g.genTuple(n)
		}
	case KindCat:
		for total := 2; total <= cfg.MaxArity; total++ {
			for m := 1; m < total; m++ {
				g.genCat(m, total-m)
			}
		}
	case KindSplit:
		for n := 1; n <= cfg.MaxSplit; n++ {
			for _, parts := range compositions(n) {
				g.genSplit(parts)
			}
		}
	case KindFunc:
		g.printf("import (\n\t\"context\"\n\n\t%q\n)\n", TuplePath)
		for _, v := range funcVariants() {
			for n := 1; n <= cfg.MaxFunc; n++ {
				for m := 1; m <= cfg.MaxFunc; m++ {
					g.genFunc(v, n, m)
				}
			}
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format %s source: %w", kind, err)
	}
	return src, nil
}

type generator struct {
	cfg Config
	buf bytes.Buffer
}

func (g *generator) printf(f string, a ...any) {
	fmt.Fprintf(&g.buf, f, a...)
}

// compositions returns all the ordered partitions of n into
// positive parts, in lexical order.
func compositions(n int) [][]int {
	if n == 0 {
		return [][]int{nil}
	}
	var all [][]int
	for first := 1; first <= n; first++ {
		for _, rest := range compositions(n - first) {
			all = append(all, append([]int{first}, rest...))
		}
	}
	return all
}

// names returns n names formed from prefix and consecutive
// indexes starting at start.
func names(prefix string, start, n int) []string {
	ns := make([]string, n)
	for i := range ns {
		ns[i] = fmt.Sprintf("%s%d", prefix, start+i)
	}
	return ns
}

func list(prefix string, start, n int) string {
	return strings.Join(names(prefix, start, n), ", ")
}

func repeat(s string, n int) string {
	ss := make([]string, n)
	for i := range ss {
		ss[i] = s
	}
	return strings.Join(ss, ", ")
}

// results formats a result list, adding parentheses
// when there is more than one result.
func results(rs []string) string {
	if len(rs) == 1 {
		return rs[0]
	}
	return "(" + strings.Join(rs, ", ") + ")"
}

func tupleType(n int, args string) string {
	return fmt.Sprintf("T%d[%s]", n, args)
}

// joinWords joins words in English list form: "a", "a and b", "a, b and c".
func joinWords(words []string) string {
	if len(words) == 1 {
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}
