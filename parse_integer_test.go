// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math/rand"
	"testing"
)

func TestParseUintRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	fmt := Standard
	var buf [64]byte
	for i := 0; i < 5000; i++ {
		v := rnd.Uint64()
		n := WriteUint(v, buf[:], fmt.Radix())
		got, consumed, err := ParseUint[uint64](buf[:n], fmt)
		if err != nil {
			t.Fatalf("ParseUint(%q) error: %v", buf[:n], err)
		}
		if consumed != n || got != v {
			t.Fatalf("ParseUint(%q) = %d, %d, want %d, %d", buf[:n], got, consumed, v, n)
		}
	}
}

func TestParseUintEveryWidth(t *testing.T) {
	fmt := Standard
	if v, n, err := ParseUint[uint8](sliceOf("255"), fmt); err != nil || v != 255 || n != 3 {
		t.Fatalf("ParseUint[uint8](255) = %d, %d, %v", v, n, err)
	}
	if _, _, err := ParseUint[uint8](sliceOf("256"), fmt); err == nil {
		t.Fatalf("ParseUint[uint8](256): expected overflow error")
	}
	if v, n, err := ParseUint[uint16](sliceOf("65535"), fmt); err != nil || v != 65535 || n != 5 {
		t.Fatalf("ParseUint[uint16](65535) = %d, %d, %v", v, n, err)
	}
	if v, n, err := ParseUint[uint32](sliceOf("4294967295"), fmt); err != nil || v != 4294967295 || n != 10 {
		t.Fatalf("ParseUint[uint32](max) = %d, %d, %v", v, n, err)
	}
}

func TestParseUintPartialStopsAtNonDigit(t *testing.T) {
	v, n, err := ParseUintPartial[uint64](sliceOf("123abc"), Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 123 || n != 3 {
		t.Fatalf("ParseUintPartial(123abc) = %d, %d, want 123, 3", v, n)
	}
}

func TestParseUintHexRadix(t *testing.T) {
	fmt, err := NewFormatBuilder().Radix(16).ExponentBase(16).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	v, n, err := ParseUint[uint32](sliceOf("1a2b"), fmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1a2b || n != 4 {
		t.Fatalf("ParseUint(hex 1a2b) = %#x, %d, want %#x, 4", v, n, 0x1a2b)
	}
}

func sliceOf(s string) []byte { return []byte(s) }
