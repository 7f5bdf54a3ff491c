// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"github.com/invowk/catls/pkg/platform"
)

// SetHomeDir points the platform's home directory variable at dir for the
// duration of the test. Windows uses USERPROFILE, everything else HOME.
// Tests calling it must not be parallel.
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()

	if runtime.GOOS == platform.Windows {
		t.Setenv("USERPROFILE", dir)
		return
	}
	t.Setenv("HOME", dir)
}
