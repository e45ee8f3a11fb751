// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build cgo && linux

package toolchain

/*
#define _POSIX_C_SOURCE 200809L

#include <features.h>

// secure_getenv first appeared in glibc 2.17.
#if defined(__GLIBC__)
#if 2 > __GLIBC__ || (2 == __GLIBC__ && 17 > __GLIBC_MINOR__)
#error "GLIBC Version Test -- [ FAIL ]"
#error "This software requires the glibc to be at least 2.17"
#endif

#include <gnu/libc-version.h>

static const char *cmnutil_libc_version(void) { return gnu_get_libc_version(); }
#else
static const char *cmnutil_libc_version(void) { return ""; }
#endif
*/
import "C"

func libcVersion() string { return C.GoString(C.cmnutil_libc_version()) }
