// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !unix

package abort

import (
	"os/exec"
	"testing"

	"go.astrophena.name/cmnutil/testutil"
)

func assertAborted(t *testing.T, exitErr *exec.ExitError) {
	t.Helper()
	testutil.AssertEqual(t, exitErr.ExitCode(), 3)
}
