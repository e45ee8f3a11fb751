// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package seq builds iterators over ad hoc lists of values.
//
// It lets a loop range over a handful of literals without declaring a
// slice first:
//
//	for dir := range seq.Of("include", "src", "test") {
//		// ...
//	}
package seq

import "iter"

// Of returns an iterator that yields vals in order, each exactly once.
// With no vals the iterator is empty.
func Of[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate is like [Of], but also yields the index of each value.
func Enumerate[T any](vals ...T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range vals {
			if !yield(i, v) {
				return
			}
		}
	}
}
