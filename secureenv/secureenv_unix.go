// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package secureenv

import "golang.org/x/sys/unix"

var ids = struct {
	uid, euid, gid, egid func() int
}{unix.Getuid, unix.Geteuid, unix.Getgid, unix.Getegid}

// privileged reports whether the process runs set-user-ID or set-group-ID.
func privileged() bool {
	return ids.uid() != ids.euid() || ids.gid() != ids.egid()
}
