// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package secureenv looks up environment variables the way glibc's
// secure_getenv does: a process running with elevated privileges sees an
// empty environment, so an unprivileged user can't steer it.
package secureenv

import "os"

// Getenv returns the value of the environment variable named by key, or an
// empty string if the variable is unset or the process runs with elevated
// privileges.
func Getenv(key string) string {
	if privileged() {
		return ""
	}
	return os.Getenv(key)
}
