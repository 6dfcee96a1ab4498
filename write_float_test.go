// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"math/rand"
	"testing"
)

func TestWriteFloat64RoundTripDecimal(t *testing.T) {
	opts := DefaultOptions()
	buf := make([]byte, FloatBufferSize(opts))
	rnd := rand.New(rand.NewSource(1))
	check := func(v float64) {
		n := WriteFloat64(v, buf, Standard, opts)
		got, consumed, err := ParseFloat64(buf[:n], Standard, opts)
		if err != nil {
			t.Fatalf("ParseFloat64(%q) (from %v) error: %v", buf[:n], v, err)
		}
		if consumed != n {
			t.Fatalf("ParseFloat64(%q) consumed %d, want %d", buf[:n], consumed, n)
		}
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Fatalf("round-trip mismatch: %v -> %q -> %v", v, buf[:n], got)
		}
	}
	check(0)
	check(math.Copysign(0, -1))
	check(1)
	check(-1)
	check(math.MaxFloat64)
	check(math.SmallestNonzeroFloat64)
	check(1.7976931348623157e308)
	for i := 0; i < 5000; i++ {
		bits := rnd.Uint64()
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		check(v)
	}
}

func TestWriteFloat32RoundTripDecimal(t *testing.T) {
	opts := DefaultOptions()
	buf := make([]byte, FloatBufferSize(opts))
	rnd := rand.New(rand.NewSource(2))
	check := func(v float32) {
		n := WriteFloat32(v, buf, Standard, opts)
		got, consumed, err := ParseFloat32(buf[:n], Standard, opts)
		if err != nil {
			t.Fatalf("ParseFloat32(%q) (from %v) error: %v", buf[:n], v, err)
		}
		if consumed != n {
			t.Fatalf("ParseFloat32(%q) consumed %d, want %d", buf[:n], consumed, n)
		}
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Fatalf("round-trip mismatch: %v -> %q -> %v", v, buf[:n], got)
		}
	}
	check(0)
	check(1)
	check(-1)
	check(math.MaxFloat32)
	check(math.SmallestNonzeroFloat32)
	for i := 0; i < 5000; i++ {
		bits := rnd.Uint32()
		v := math.Float32frombits(bits)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		check(v)
	}
}

func TestWriteFloat64SpecialValues(t *testing.T) {
	opts := DefaultOptions()
	buf := make([]byte, FloatBufferSize(opts))
	n := WriteFloat64(math.NaN(), buf, Standard, opts)
	if string(buf[:n]) != "NaN" {
		t.Fatalf("NaN formatted as %q, want \"NaN\"", buf[:n])
	}
	n = WriteFloat64(math.Inf(1), buf, Standard, opts)
	if string(buf[:n]) != "inf" {
		t.Fatalf("+Inf formatted as %q, want \"inf\"", buf[:n])
	}
	n = WriteFloat64(math.Inf(-1), buf, Standard, opts)
	if string(buf[:n]) != "-inf" {
		t.Fatalf("-Inf formatted as %q, want \"-inf\"", buf[:n])
	}
}

func TestWriteFloat64NonDecimalRadixRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	buf := make([]byte, FloatBufferSize(opts))
	rnd := rand.New(rand.NewSource(3))
	for _, radix := range []uint8{2, 3, 7, 16, 36} {
		fb, err := NewFormatBuilder().Radix(radix).ExponentBase(radix).ExponentRadix(radix).Build()
		if err != nil {
			t.Fatalf("radix %d: build failed: %v", radix, err)
		}
		for i := 0; i < 300; i++ {
			bits := rnd.Uint64()
			v := math.Float64frombits(bits)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			n := WriteFloat64(v, buf, fb, opts)
			got, consumed, err := ParseFloat64(buf[:n], fb, opts)
			if err != nil {
				t.Fatalf("radix %d: ParseFloat64(%q) (from %v) error: %v", radix, buf[:n], v, err)
			}
			if consumed != n {
				t.Fatalf("radix %d: consumed %d, want %d", radix, consumed, n)
			}
			if math.Float64bits(got) != math.Float64bits(v) {
				t.Fatalf("radix %d: round-trip mismatch: %v -> %q -> %v", radix, v, buf[:n], got)
			}
		}
	}
}

// TestWriteFloat64Base3DBLMAX checks the base-3 shortest-round-trip encoding
// of DBL_MAX (see DESIGN.md for the digit-string derivation): it asserts
// shortest-round-trip correctness and pins the verified digit string as a
// regression vector.
func TestWriteFloat64Base3DBLMAX(t *testing.T) {
	fb, err := NewFormatBuilder().Radix(3).ExponentBase(3).ExponentRadix(3).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	opts := DefaultOptions()
	buf := make([]byte, FloatBufferSize(opts))
	n := WriteFloat64(math.MaxFloat64, buf, fb, opts)
	got, consumed, err := ParseFloat64(buf[:n], fb, opts)
	if err != nil {
		t.Fatalf("ParseFloat64(%q) error: %v", buf[:n], err)
	}
	if consumed != n {
		t.Fatalf("consumed %d, want %d", consumed, n)
	}
	if got != math.MaxFloat64 {
		t.Fatalf("round-trip mismatch: MaxFloat64 -> %q -> %v", buf[:n], got)
	}
	const want = "1.0020200012020012100112000100111021e212221"
	if string(buf[:n]) != want {
		t.Fatalf("WriteFloat64(MaxFloat64, base3) = %q, want %q", buf[:n], want)
	}
}
