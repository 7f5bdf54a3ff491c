// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"testing"

	"github.com/invowk/catls/internal/testutil"

	"github.com/spf13/afero"
)

type testEnv struct {
	app    *App
	fs     afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func noEnv(string) (string, bool) { return "", false }

// newTestEnv builds an App over fsys with its working directory at dir and
// its configuration directory at /cfg.
func newTestEnv(t *testing.T, fsys afero.Fs, dir string) *testEnv {
	t.Helper()

	env := &testEnv{fs: fsys, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	app, err := NewApp(Dependencies{
		FS:        fsys,
		Stdin:     &bytes.Buffer{},
		Stdout:    env.stdout,
		Stderr:    env.stderr,
		Dir:       dir,
		ConfigDir: "/cfg",
		LookupEnv: noEnv,
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	env.app = app
	return env
}

// memEnv returns a test environment over an in-memory tree rooted at /work.
func memEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()

	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/work", 0o755); err != nil {
		t.Fatal(err)
	}
	testutil.WriteFiles(t, fsys, files)
	return newTestEnv(t, fsys, "/work")
}

// execute runs the command tree with args, without fang.
func (e *testEnv) execute(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCommand(e.app)
	root.SetArgs(args)
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	return root.ExecuteContext(t.Context())
}
