// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package abort

import (
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"golang.org/x/sys/unix"
)

// abnormalExit kills the process with SIGABRT. With the traceback level at
// "crash" the runtime writes its goroutine dump to stderr and then re-raises
// the signal with the default action, so the parent sees death by signal
// rather than an exit status. If the process is still alive after a second,
// it exits with 128+SIGABRT as a shell would report.
func abnormalExit() {
	debug.SetTraceback("crash")
	signal.Reset(unix.SIGABRT)
	unix.Kill(unix.Getpid(), unix.SIGABRT)
	time.Sleep(time.Second)
	os.Exit(128 + int(unix.SIGABRT))
}
