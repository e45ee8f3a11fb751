// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/cmnutil/syncx"
)

// Info describes the running binary.
type Info struct {
	Name      string // command name
	Module    string // main module version, "(devel)" for local builds
	Commit    string // VCS revision, if known
	GoVersion string
	OS, Arch  string
}

// String returns a human-readable description of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Module)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s)", i.Commit)
	}
	fmt.Fprintf(&sb, "\nbuilt with %s for %s/%s\n", i.GoVersion, i.OS, i.Arch)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns the build information of the running binary.
func Version() Info {
	return info.Get(func() Info {
		i := Info{
			Name:      CmdName(),
			Module:    "(devel)",
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		if bi.Main.Version != "" {
			i.Module = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				i.Commit = s.Value
			}
		}
		return i
	})
}

// CmdName returns the base name of the running executable, without
// extension.
func CmdName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
