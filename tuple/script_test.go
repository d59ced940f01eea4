package tuple_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rogpeppe/go-internal/testscript"
)

// TestCompile builds small programs against this module with the go
// command. Most of the scripts check that misuse of the package is
// rejected by the type checker rather than at run time.
func TestCompile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping go command invocations in short mode")
	}
	goCmd, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}
	modRoot, err := filepath.Abs("..")
	qt.Assert(t, qt.IsNil(err))
	goEnv := goEnvVars(t, goCmd, "GOCACHE", "GOMODCACHE", "GOPATH", "GOPROXY")

	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			for k, v := range goEnv {
				env.Setenv(k, v)
			}
			env.Setenv("GOFLAGS", "-mod=mod")
			env.Setenv("GOTOOLCHAIN", "local")
			env.Setenv("GOWORK", "off")
			gomod := fmt.Sprintf(`module example.com/check

go 1.24

require github.com/tuplekit/tuplekit v0.0.0

replace github.com/tuplekit/tuplekit => %s
`, modRoot)
			return os.WriteFile(filepath.Join(env.WorkDir, "go.mod"), []byte(gomod), 0o666)
		},
	})
}

// goEnvVars returns the values of the named go environment
// variables as reported by the go command.
func goEnvVars(t *testing.T, goCmd string, names ...string) map[string]string {
	out, err := exec.Command(goCmd, append([]string{"env"}, names...)...).Output()
	qt.Assert(t, qt.IsNil(err))
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	qt.Assert(t, qt.HasLen(lines, len(names)))
	vars := make(map[string]string)
	for i, name := range names {
		if lines[i] != "" {
			vars[name] = lines[i]
		}
	}
	return vars
}
