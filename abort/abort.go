// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package abort terminates the process when a "can't happen" check fails.
//
// Each check writes a single diagnostic line to standard error and then
// aborts the process. The line names the checked expression as it appears
// in the source, together with the line, function, and file of the call:
//
//	[pthread_attr_init(&attr)] on line [42] within function [spawn]in file [/src/spawn.go]: cannot allocate memory
//
// The format, including the missing space before "in file", is kept
// byte-for-byte so existing log scrapers keep working.
//
// Checks are meant for invariants around system calls. Recoverable
// failures should be returned as errors instead.
package abort

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/exp/constraints"
)

var (
	stderr    io.Writer = os.Stderr
	terminate           = abnormalExit
)

// OnStatus aborts if status is not zero, decoding it as an errno value.
// It is meant for calls that return zero on success and an error number on
// failure.
func OnStatus[T constraints.Integer](status T) {
	if status == 0 {
		return
	}
	reason := fmt.Sprintf("unknown error %d", status)
	if status > 0 {
		reason = syscall.Errno(status).Error()
	}
	fail(callSite(1, "OnStatus"), reason)
}

// OnError aborts if err is not nil.
func OnError(err error) {
	if err == nil {
		return
	}
	fail(callSite(1, "OnError"), err.Error())
}

// SentinelCheck checks results of calls that report failure by returning a
// reserved value. See [Sentinel].
type SentinelCheck[T comparable] struct{ sentinel T }

// Sentinel returns a check that aborts when a call returns sentinel:
//
//	abort.Sentinel(-1).Check(unix.Write(fd, buf))
func Sentinel[T comparable](sentinel T) SentinelCheck[T] {
	return SentinelCheck[T]{sentinel: sentinel}
}

// Check aborts if got equals the sentinel. The diagnostic decodes err, the
// out-of-band error reported alongside got, and never got itself.
func (c SentinelCheck[T]) Check(got T, err error) {
	if got != c.sentinel {
		return
	}
	reason := "success"
	if err != nil {
		reason = err.Error()
	}
	fail(callSite(1, "Check"), reason)
}

// Site is the location of a failed check.
type Site struct {
	Expr string // source text of the checked expression, or "?"
	Line int
	Func string // function name without package qualifier
	File string
}

// Format returns the diagnostic line for s failing with reason.
func (s Site) Format(reason string) string {
	return fmt.Sprintf("[%s] on line [%d] within function [%s]in file [%s]: %s\n",
		s.Expr, s.Line, s.Func, s.File, reason)
}

func fail(s Site, reason string) {
	io.WriteString(stderr, s.Format(reason))
	terminate()
}
