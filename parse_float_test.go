// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestParseFloat64HalfwayRoundToEven(t *testing.T) {
	opts := DefaultOptions()
	// 9007199254740993 is exactly halfway between the two representable
	// binary64 values 9007199254740992 and 9007199254740994; the even
	// mantissa (9007199254740992, mantissa bit 0 clear) wins.
	v, n, err := ParseFloat64([]byte("9007199254740993"), Standard, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("9007199254740993") {
		t.Fatalf("consumed %d, want full string", n)
	}
	if v != 9007199254740992.0 {
		t.Fatalf("ParseFloat64(9007199254740993) = %v, want 9007199254740992.0 (round-to-even down)", v)
	}

	// 9007199254740995 sits halfway between 9007199254740994 and
	// 9007199254740996; the even mantissa this time is the latter.
	v, _, err = ParseFloat64([]byte("9007199254740995"), Standard, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 9007199254740996.0 {
		t.Fatalf("ParseFloat64(9007199254740995) = %v, want 9007199254740996.0 (round-to-even up)", v)
	}
}

func TestParseFloat64Simple(t *testing.T) {
	opts := DefaultOptions()
	v, n, err := ParseFloat64([]byte("1e308"), Standard, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 || v != 1e308 {
		t.Fatalf("ParseFloat64(1e308) = %v, %d, want 1e308, 5", v, n)
	}
}

func TestParseFloat64MatchesStrconv(t *testing.T) {
	opts := DefaultOptions()
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 3000; i++ {
		bits := rnd.Uint64()
		want := math.Float64frombits(bits)
		if math.IsNaN(want) || math.IsInf(want, 0) {
			continue
		}
		s := strconv.FormatFloat(want, 'g', -1, 64)
		got, n, err := ParseFloat64([]byte(s), Standard, opts)
		if err != nil {
			t.Fatalf("ParseFloat64(%q) error: %v", s, err)
		}
		if n != len(s) {
			t.Fatalf("ParseFloat64(%q) consumed %d, want %d", s, n, len(s))
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Fatalf("ParseFloat64(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseFloat64LossyMatchesNonLossy(t *testing.T) {
	strict := DefaultOptions()
	lossy, err := strict.Rebuild().Lossy(true).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		bits := rnd.Uint64()
		want := math.Float64frombits(bits)
		if math.IsNaN(want) || math.IsInf(want, 0) {
			continue
		}
		s := strconv.FormatFloat(want, 'g', -1, 64)
		a, _, errA := ParseFloat64([]byte(s), Standard, strict)
		b, _, errB := ParseFloat64([]byte(s), Standard, lossy)
		if errA != nil || errB != nil {
			t.Fatalf("ParseFloat64(%q) errors: strict=%v lossy=%v", s, errA, errB)
		}
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatalf("ParseFloat64(%q): strict=%v lossy=%v disagree", s, a, b)
		}
	}
}

func TestParseFloat64MissingExponentDigits(t *testing.T) {
	_, _, err := ParseFloat64([]byte("1e"), Standard, DefaultOptions())
	if err == nil {
		t.Fatalf("expected error for a dangling exponent marker")
	}
}

func TestParseFloat64EmptyInput(t *testing.T) {
	_, _, err := ParseFloat64(nil, Standard, DefaultOptions())
	if err == nil {
		t.Fatalf("expected error for empty input")
	}
}
