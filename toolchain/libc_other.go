// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !cgo || !linux

package toolchain

// Without cgo nothing links against the C library.
func libcVersion() string { return "" }
