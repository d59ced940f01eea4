package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplekit/tuplekit/internal/tuplegen"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--version"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(stdout.String(), "tuplegen "+version+"\n"))
}

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--kind", "cat", "--max-arity", "3"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stdout.String(), "func Cat_1_2["))
	qt.Assert(t, qt.Not(qt.StringContains(stdout.String(), "func Cat_1_3[")))
	qt.Assert(t, qt.Equals(stderr.String(), ""))
}

func TestRunOutFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "split_gen.go")
	var stdout, stderr bytes.Buffer
	err := run([]string{"--kind=split", "--max-split=2", "-o", out, "-v"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(stdout.Len(), 0))
	qt.Assert(t, qt.StringContains(stderr.String(), "wrote generated source"))

	data, err := os.ReadFile(out)
	qt.Assert(t, qt.IsNil(err))
	cfg := tuplegen.DefaultConfig()
	cfg.MaxSplit = 2
	want, err := tuplegen.Generate(tuplegen.KindSplit, cfg)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), string(want)))
}

var runErrorTests = []struct {
	about    string
	args     []string
	err      string
	exitCode int
}{{
	about:    "unknown kind",
	args:     []string{"--kind", "pairs"},
	err:      `unknown kind "pairs"`,
	exitCode: 2,
}, {
	about:    "unknown flag",
	args:     []string{"--arity", "3"},
	err:      `unknown flag: --arity`,
	exitCode: 2,
}, {
	about:    "invalid config",
	args:     []string{"--max-arity", "12"},
	err:      `invalid generator configuration: max arity 12 out of range \[1, 9\]`,
	exitCode: 2,
}, {
	about:    "extra arguments",
	args:     []string{"extra"},
	err:      `unexpected arguments \["extra"\]`,
	exitCode: 2,
}, {
	about:    "unwritable output",
	args:     []string{"--out", filepath.Join("no", "such", "dir", "x.go")},
	err:      `cannot write generated source: .*`,
	exitCode: 0,
}}

func TestRunErrors(t *testing.T) {
	for _, test := range runErrorTests {
		t.Run(test.about, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(test.args, &stdout, &stderr)
			qt.Assert(t, qt.ErrorMatches(err, test.err))
			var uerr usageError
			if test.exitCode == 0 {
				qt.Assert(t, qt.IsFalse(errors.As(err, &uerr)))
				return
			}
			qt.Assert(t, qt.IsTrue(errors.As(err, &uerr)))
			qt.Assert(t, qt.Equals(uerr.ExitCode(), test.exitCode))
		})
	}
}
