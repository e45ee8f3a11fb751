// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package release releases resources and clears the handle in one step,
// so a handle that is used after release is visibly empty.
package release

import (
	"io"
	"reflect"
)

// Free calls free with *h if it is non-nil and then sets *h to nil.
// Calling Free on an already released handle does nothing.
func Free[T any](h **T, free func(*T)) {
	if *h != nil {
		free(*h)
	}
	*h = nil
}

// Close closes *c if it is not the zero value and then resets *c to the
// zero value, returning the error from Close. Calling Close on an already
// released handle does nothing and returns nil.
func Close[C io.Closer](c *C) error {
	var err error
	if !reflect.ValueOf(c).Elem().IsZero() {
		err = (*c).Close()
	}
	var zero C
	*c = zero
	return err
}
