// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

func TestFormatBuilderDefaults(t *testing.T) {
	f, err := NewFormatBuilder().Build()
	if err != nil {
		t.Fatalf("default build failed: %v", err)
	}
	if f.Radix() != 10 || f.ExponentBase() != 10 || f.ExponentRadix() != 10 {
		t.Fatalf("unexpected default radixes: %d/%d/%d", f.Radix(), f.ExponentBase(), f.ExponentRadix())
	}
	if f.DecimalPoint() != '.' || f.Exponent() != 'e' {
		t.Fatalf("unexpected default punctuation: %q/%q", f.DecimalPoint(), f.Exponent())
	}
	if f.DigitSeparator() != 0 || f.BasePrefix() != 0 || f.BaseSuffix() != 0 {
		t.Fatalf("expected no separator/prefix/suffix by default")
	}
}

func TestFormatRebuildLaw(t *testing.T) {
	orig, err := NewFormatBuilder().
		Radix(16).ExponentBase(2).Exponent('p').BasePrefix('x').
		DigitSeparator('_').WithFlags(IntegerInternalDigitSeparator).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	rebuilt, err := orig.Rebuild().Build()
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if rebuilt != orig {
		t.Fatalf("Rebuild().Build() = %+v, want %+v", rebuilt, orig)
	}
}

func TestFormatInvalidRadix(t *testing.T) {
	for _, r := range []uint8{0, 1, 37, 255} {
		if _, err := NewFormatBuilder().Radix(r).Build(); err == nil {
			t.Fatalf("Radix(%d): expected error", r)
		}
	}
}

func TestFormatInvalidExponentBase(t *testing.T) {
	// exponent_base must be radix, or 2 for a power-of-two radix, or 4 for
	// radix 16; any other pairing is invalid.
	if _, err := NewFormatBuilder().Radix(10).ExponentBase(2).Build(); err == nil {
		t.Fatalf("expected error for (radix=10, exponent_base=2)")
	}
	if _, err := NewFormatBuilder().Radix(16).ExponentBase(4).Build(); err != nil {
		t.Fatalf("(radix=16, exponent_base=4) should be valid: %v", err)
	}
	if _, err := NewFormatBuilder().Radix(8).ExponentBase(2).Build(); err != nil {
		t.Fatalf("(radix=8, exponent_base=2) should be valid: %v", err)
	}
}

func TestFormatSeparatorCollisions(t *testing.T) {
	cases := []byte{'.', 'e', '+', '-'}
	for _, c := range cases {
		if _, err := NewFormatBuilder().DigitSeparator(c).Build(); err == nil {
			t.Fatalf("DigitSeparator(%q): expected error", c)
		}
	}
	// a separator that is itself a valid digit in the mantissa radix is invalid.
	if _, err := NewFormatBuilder().Radix(16).DigitSeparator('a').Build(); err == nil {
		t.Fatalf("DigitSeparator('a') at radix 16: expected error")
	}
	if _, err := NewFormatBuilder().Radix(10).DigitSeparator('a').Build(); err != nil {
		t.Fatalf("DigitSeparator('a') at radix 10 should be valid: %v", err)
	}
}

func TestFormatConflictingFlags(t *testing.T) {
	if _, err := NewFormatBuilder().WithFlags(NoPositiveMantissaSign | RequiredMantissaSign).Build(); err == nil {
		t.Fatalf("expected error for conflicting mantissa-sign flags")
	}
	if _, err := NewFormatBuilder().WithFlags(NoPositiveExponentSign | RequiredExponentSign).Build(); err == nil {
		t.Fatalf("expected error for conflicting exponent-sign flags")
	}
	if _, err := NewFormatBuilder().WithFlags(NoExponentNotation | RequiredExponentNotation).Build(); err == nil {
		t.Fatalf("expected error for conflicting exponent-notation flags")
	}
}

func TestIsPow2RadixAndLog2(t *testing.T) {
	for r, want := range map[uint8]bool{2: true, 4: true, 8: true, 16: true, 32: true, 3: false, 10: false, 36: false} {
		if got := isPow2Radix(r); got != want {
			t.Fatalf("isPow2Radix(%d) = %v, want %v", r, got, want)
		}
	}
	for r, want := range map[uint8]uint{2: 1, 4: 2, 8: 3, 16: 4, 32: 5} {
		if got := log2OfPow2Radix(r); got != want {
			t.Fatalf("log2OfPow2Radix(%d) = %d, want %d", r, got, want)
		}
	}
}
