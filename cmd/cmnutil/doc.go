// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Cmnutil reports whether the current toolchain satisfies the version
requirements of the cmnutil headers.

By default it checks the Go toolchain (at least 1.23) and, when built with
cgo on Linux, the C library (glibc at least 2.17). Each requirement is
reported as PASS, FAIL or SKIP; SKIP means the component could not be
identified. The command fails if any requirement fails.

With -colors it prints the ANSI color constants instead.

Colors are used only when standard output is a terminal and NO_COLOR is
unset.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/cmnutil/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
