// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package toolchain checks the Go toolchain and C library against the
// minimum versions this module needs.
//
// The checks run at build time: a Go toolchain older than 1.23 fails to
// compile the package, and so does a cgo build against glibc older than
// 2.17, the first release with secure_getenv. [Check] repeats the same
// checks at run time and reports what it detected.
//
// A toolchain or library that can't be identified is skipped, not failed.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"go.astrophena.name/cmnutil/logger"
)

// ErrTooOld is wrapped by the error of a failed [Result].
var ErrTooOld = errors.New("version too old")

// Requirement is a minimum version of a toolchain component.
type Requirement struct {
	Name string // "Go" or "glibc"
	Min  string // minimum version, like "1.23"

	detect func() string
}

// Minimums lists the requirements checked by [Check].
var Minimums = []Requirement{
	{Name: "Go", Min: "1.23", detect: goVersion},
	{Name: "glibc", Min: "2.17", detect: libcVersion},
}

// Result is the outcome of testing a [Requirement].
type Result struct {
	Requirement
	// Detected is the version found, or empty if the component could not be
	// identified.
	Detected string
	// Err is non-nil if Detected is older than Min.
	Err error
}

// Skipped reports whether the requirement could not be tested.
func (r Result) Skipped() bool { return r.Detected == "" }

// Check tests every requirement in [Minimums] against the running binary.
func Check(ctx context.Context) []Result {
	results := make([]Result, 0, len(Minimums))
	for _, req := range Minimums {
		detected := ""
		if req.detect != nil {
			detected = req.detect()
		}
		results = append(results, req.Test(ctx, detected))
	}
	return results
}

// Test compares the detected version against r.Min. Versions that are empty
// or can't be parsed skip the test.
func (r Requirement) Test(ctx context.Context, detected string) Result {
	res := Result{Requirement: r, Detected: detected}
	if detected == "" {
		logger.Debug(ctx, "version not detected", slog.String("name", r.Name))
		return res
	}

	have, err := semver.NewVersion(numericPrefix(detected))
	if err != nil {
		logger.Debug(ctx, "version not understood",
			slog.String("name", r.Name),
			slog.String("detected", detected),
			slog.Any("err", err),
		)
		res.Detected = ""
		return res
	}
	want, err := semver.NewVersion(r.Min)
	if err != nil {
		panic(fmt.Sprintf("toolchain: invalid minimum version %q for %s: %v", r.Min, r.Name, err))
	}

	if have.LessThan(want) {
		res.Err = fmt.Errorf("%s Version Test -- [ FAIL ]: this software requires %s to be at least %s, detected %s: %w",
			r.Name, r.Name, r.Min, detected, ErrTooOld)
	}
	return res
}

// numericPrefix trims a version string to its leading dotted numbers, so
// "go1.23rc1" becomes "1.23".
func numericPrefix(v string) string {
	v = strings.TrimPrefix(v, "go")
	end := strings.IndexFunc(v, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if end >= 0 {
		v = v[:end]
	}
	return strings.TrimSuffix(v, ".")
}

func goVersion() string {
	v := runtime.Version()
	// Development builds report "devel go1.x-hash ..." and can't be ordered.
	if !strings.HasPrefix(v, "go") {
		return ""
	}
	return v
}
