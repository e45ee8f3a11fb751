// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package narrow

import (
	"errors"
	"math"
	"testing"

	"go.astrophena.name/cmnutil/testutil"
)

func assertFails[Target, Source Number](t *testing.T, v Source) {
	t.Helper()
	_, err := Cast[Target](v)
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("Cast[%T](%v): want ErrFailed, got %v", Target(0), v, err)
	}
}

func assertRoundTrips[Target, Source Number](t *testing.T, v Source) {
	t.Helper()
	got, err := Cast[Target](v)
	if err != nil {
		t.Fatalf("Cast[%T](%v): %v", Target(0), v, err)
	}
	testutil.AssertEqual(t, Source(got), v)
}

func TestCast(t *testing.T) {
	t.Run("int32 to int8", func(t *testing.T) {
		got, err := Cast[int8](int32(100))
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, int8(100))

		assertFails[int8](t, int32(200))
		assertFails[int8](t, int32(-129))
		assertRoundTrips[int8](t, int32(127))
		assertRoundTrips[int8](t, int32(-128))
	})

	t.Run("sign change", func(t *testing.T) {
		assertFails[uint](t, -1)
		assertFails[uint8](t, int16(-1))
		assertFails[int8](t, uint8(255))
		assertFails[int64](t, uint64(math.MaxUint64))
		assertRoundTrips[uint32](t, int64(math.MaxUint32))
	})

	t.Run("float to int", func(t *testing.T) {
		assertRoundTrips[int](t, 42.0)
		assertRoundTrips[int](t, -42.0)
		assertFails[int](t, 1.5)
		assertFails[int8](t, 1e30)
		assertFails[int](t, math.Inf(1))
	})

	t.Run("float to int bounds", func(t *testing.T) {
		assertFails[int64](t, float64(1<<63))
		assertRoundTrips[int64](t, float64(-1<<63))
		assertFails[int32](t, float32(1<<31))
		assertRoundTrips[int32](t, float32(-1<<31))
		assertFails[int32](t, float64(-1<<31-1))
		assertFails[uint64](t, float64(1<<64))
		assertRoundTrips[uint64](t, float64(1<<63))
		assertFails[uint32](t, float64(1<<32))
		assertRoundTrips[uint32](t, float64(math.MaxUint32))
		assertFails[uint8](t, -0.5)
	})

	t.Run("int to float", func(t *testing.T) {
		assertRoundTrips[float64](t, int64(1<<53))
		assertFails[float64](t, int64(1<<53+1))
		assertFails[float32](t, int32(1<<24+1))
		assertFails[float64](t, int64(math.MaxInt64))
		assertRoundTrips[float64](t, int64(math.MinInt64))
		assertFails[float64](t, uint64(math.MaxUint64))
		assertRoundTrips[float32](t, uint8(255))
	})

	t.Run("float to float", func(t *testing.T) {
		assertRoundTrips[float32](t, 0.5)
		assertFails[float32](t, 0.1)
		assertFails[float32](t, math.MaxFloat64)
		assertRoundTrips[float32](t, math.Inf(-1))
	})

	t.Run("NaN always fails", func(t *testing.T) {
		assertFails[float32](t, math.NaN())
		assertFails[float64](t, math.NaN())
		assertFails[int](t, math.NaN())
	})

	t.Run("widening", func(t *testing.T) {
		assertRoundTrips[int64](t, int8(-5))
		assertRoundTrips[uint64](t, uint16(65535))
		assertRoundTrips[float64](t, float32(0.1))
	})
}

func TestCastError(t *testing.T) {
	_, err := Cast[int8](int32(200))
	var ne *Error
	if !errors.As(err, &ne) {
		t.Fatalf("want *Error, got %T", err)
	}
	testutil.AssertEqual(t, ne.Value, any(int32(200)))
	testutil.AssertEqual(t, ne.Source, "int32")
	testutil.AssertEqual(t, ne.Target, "int8")
	testutil.AssertEqual(t, err.Error(), "narrow cast failed: 200 (int32) is not representable as int8")

	got, err := Cast[int64](float64(1 << 63))
	if !errors.As(err, &ne) {
		t.Fatalf("want *Error, got %T", err)
	}
	testutil.AssertEqual(t, got, int64(0))
	testutil.AssertEqual(t, ne.Source, "float64")
	testutil.AssertEqual(t, ne.Target, "int64")
}

func TestMustCast(t *testing.T) {
	testutil.AssertEqual(t, MustCast[uint8](300-45), uint8(255))

	r := testutil.AssertPanics(t, func() { MustCast[uint8](256) })
	err, ok := r.(error)
	if !ok || !errors.Is(err, ErrFailed) {
		t.Fatalf("want panic with ErrFailed, got %v", r)
	}
}
