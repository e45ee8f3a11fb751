// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package narrow converts between numeric types without silently losing
// range or precision.
package narrow

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrFailed is returned by [Cast] when a value is not exactly representable
// in the target type.
var ErrFailed = errors.New("narrow cast failed")

// Error describes a failed [Cast]. It matches [ErrFailed] with [errors.Is].
type Error struct {
	Value  any    // the value passed to Cast
	Source string // source type name
	Target string // target type name
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v (%s) is not representable as %s", ErrFailed, e.Value, e.Source, e.Target)
}

func (e *Error) Unwrap() error { return ErrFailed }

// Cast converts v to Target and reports an error unless converting the
// result back to Source yields v again.
//
// A value changing sign fails, even when two's complement makes the round
// trip succeed (-1 as uint). An integer converted to a floating-point type
// fails when the result lies outside the range of the integer type, and a
// floating-point value fails when it lies outside the range of the integer
// type it is converted to.
//
// NaN never compares equal to itself, so casting NaN always fails.
//
// A failure is an [*Error], whose message includes the value and type names.
// Callers should test for failure with errors.Is(err, ErrFailed) rather than
// by matching the message.
func Cast[Target, Source Number](v Source) (Target, error) {
	var result Target
	if isFloat[Source]() && !isFloat[Target]() && !inRange[Target](float64(v)) {
		return result, castError(v, result)
	}
	result = Target(v)
	if Source(result) != v || (v < 0) != (result < 0) || overflows(v, result) {
		return result, castError(v, result)
	}
	return result, nil
}

func castError[Source, Target Number](v Source, result Target) error {
	return &Error{
		Value:  v,
		Source: fmt.Sprintf("%T", v),
		Target: fmt.Sprintf("%T", result),
	}
}

// MustCast is like [Cast] but panics if the cast fails.
func MustCast[Target, Source Number](v Source) Target {
	result, err := Cast[Target](v)
	if err != nil {
		panic(err)
	}
	return result
}

// overflows reports whether result, an integer source value converted to a
// floating-point type, lies outside the range of Source. Converting such a
// value back to Source is implementation-dependent: some architectures
// saturate, which would make the round trip look exact.
func overflows[Source, Target Number](_ Source, result Target) bool {
	if isFloat[Source]() || !isFloat[Target]() {
		return false
	}
	return !inRange[Source](float64(result))
}

// inRange reports whether f lies within the range of the integer type T.
// It is false for NaN.
func inRange[T Number](f float64) bool {
	bits := 8 * unsafe.Sizeof(T(0))
	half := float64(uint64(1) << (bits - 1))
	if isSigned[T]() {
		return f >= -half && f < half
	}
	return f >= 0 && f < 2*half
}

func isFloat[T Number]() bool {
	var one, two T = 1, 2
	return one/two != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}
