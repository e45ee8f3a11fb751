// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package abort

import (
	"os/exec"
	"syscall"
	"testing"
)

func assertAborted(t *testing.T, exitErr *exec.ExitError) {
	t.Helper()
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		t.Fatalf("want syscall.WaitStatus, got %T", exitErr.Sys())
	}
	if !ws.Signaled() {
		t.Fatalf("want the child to be killed by a signal, it exited with status %d", ws.ExitStatus())
	}
	if ws.Signal() != syscall.SIGABRT {
		t.Fatalf("want the child to be killed by SIGABRT, got %v", ws.Signal())
	}
}
