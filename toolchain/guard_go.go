// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !go1.23

package toolchain

// Go 1.23 added range-over-func iterators, which this module uses
// throughout. Older toolchains stop here.
var _ = Go_Version_Test_FAIL_this_software_requires_Go_to_be_at_least_1_23
