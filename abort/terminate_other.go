// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !unix

package abort

import "os"

// abnormalExit exits with status 3, the status of abort() in the Microsoft
// C runtime.
func abnormalExit() { os.Exit(3) }
