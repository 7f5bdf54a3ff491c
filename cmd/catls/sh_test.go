// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/catls/internal/issue"
	"github.com/invowk/catls/internal/testutil"
	"github.com/invowk/catls/internal/vshell"

	"github.com/spf13/afero"
)

// osEnv returns a test environment on the host filesystem, rooted at a
// fresh temporary directory. The interpreter needs a real working directory.
func osEnv(t *testing.T, files map[string]string) (*testEnv, string) {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteFiles(t, afero.NewBasePathFs(afero.NewOsFs(), dir), prefixed(files))
	return newTestEnv(t, afero.NewOsFs(), dir), dir
}

// prefixed roots relative names at "/" for a BasePathFs.
func prefixed(files map[string]string) map[string]string {
	out := make(map[string]string, len(files))
	for name, content := range files {
		out["/"+name] = content
	}
	return out
}

func TestShCommand_Inline(t *testing.T) {
	t.Parallel()

	env, dir := osEnv(t, map[string]string{"b.txt": "bb\n", "a.txt": "a\n"})

	if err := env.execute(t, "sh", "-c", `cat "$1" '>' out.txt; cat -n out.txt`, "a.txt"); err != nil {
		t.Fatalf("execute error = %v, stderr: %s", err, env.stderr)
	}
	if want := "Content written to out.txt\n1: a\n"; env.stdout.String() != want {
		t.Errorf("stdout = %q, want %q", env.stdout, want)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil || string(data) != "a\n" {
		t.Errorf("out.txt = %q, %v", data, err)
	}
}

func TestShCommand_ScriptFile(t *testing.T) {
	t.Parallel()

	env, _ := osEnv(t, map[string]string{
		"list.sh": "ls -r \"$@\"\n",
		"x.txt":   "",
		"y.txt":   "",
	})

	if err := env.execute(t, "sh", "list.sh", "x.txt", "y.txt"); err != nil {
		t.Fatalf("execute error = %v, stderr: %s", err, env.stderr)
	}
	if want := "y.txt\nx.txt\n\n"; env.stdout.String() != want {
		t.Errorf("stdout = %q, want %q", env.stdout, want)
	}
}

func TestShCommand_ExitStatus(t *testing.T) {
	t.Parallel()

	env, _ := osEnv(t, nil)

	err := env.execute(t, "sh", "-c", "exit 4")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if exitErr.Code != 4 || exitErr.Err != nil {
		t.Errorf("ExitError = %+v, want bare status 4", exitErr)
	}
}

func TestShCommand_ParseError(t *testing.T) {
	t.Parallel()

	env, _ := osEnv(t, nil)

	err := env.execute(t, "sh", "-c", "if then")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID != issue.ScriptParseFailedId {
		t.Fatalf("error = %v, want ServiceError with ScriptParseFailedId", err)
	}
	if !errors.Is(err, vshell.ErrParse) {
		t.Errorf("error does not wrap vshell.ErrParse: %v", err)
	}
}

func TestShCommand_MissingScript(t *testing.T) {
	t.Parallel()

	env, _ := osEnv(t, nil)

	err := env.execute(t, "sh", "nope.sh")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID != issue.ScriptReadFailedId {
		t.Fatalf("error = %v, want ServiceError with ScriptReadFailedId", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error does not wrap os.ErrNotExist: %v", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != "read script" || ae.Resource != "nope.sh" {
		t.Fatalf("error = %v, want ActionableError for reading nope.sh", err)
	}
	if got := formatErrorForDisplay(err, false); !strings.HasPrefix(got, "failed to read script: nope.sh: ") {
		t.Errorf("formatErrorForDisplay() = %q", got)
	}
}

func TestResolveAgainst(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(string(filepath.Separator), "etc", "x.sh")
	tests := []struct {
		dir, path, want string
	}{
		{"", "x.sh", "x.sh"},
		{"/work", "x.sh", filepath.Join("/work", "x.sh")},
		{"/work", abs, abs},
	}

	for _, tt := range tests {
		if got := resolveAgainst(tt.dir, tt.path); got != tt.want {
			t.Errorf("resolveAgainst(%q, %q) = %q, want %q", tt.dir, tt.path, got, tt.want)
		}
	}
}
