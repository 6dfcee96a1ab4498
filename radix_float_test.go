// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

func TestPow2RadixDigitsExact(t *testing.T) {
	// 1.5 == mant 0b11 (mantBits=1, implicit leading bit), e2 = -1:
	// value = 3 * 2**-1 = 1.5. In binary that's "1.1", i.e. digits "11",
	// k=1 (one digit before the point).
	digits, k := pow2RadixDigits(0b11, -1, 2)
	if string(digits) != "11" || k != 1 {
		t.Fatalf("pow2RadixDigits(0b11, -1, 2) = %q, %d, want \"11\", 1", digits, k)
	}
}

func TestPow2RadixDigitsTrailingZerosStripped(t *testing.T) {
	// mant=0b1000 (=8), e2=0: value = 8 = 0b1000. Shortest binary expansion
	// strips trailing zero digits down to "1" with k=4.
	digits, k := pow2RadixDigits(0b1000, 0, 2)
	if string(digits) != "1" || k != 4 {
		t.Fatalf("pow2RadixDigits(8, 0, 2) = %q, %d, want \"1\", 4", digits, k)
	}
}

func TestPow2RadixDigitsZero(t *testing.T) {
	digits, k := pow2RadixDigits(0, 0, 16)
	if string(digits) != "0" || k != 1 {
		t.Fatalf("pow2RadixDigits(0) = %q, %d, want \"0\", 1", digits, k)
	}
}

func TestPow2RadixDigitsHex(t *testing.T) {
	// mant = 0xff, e2 = 0: value = 255 = 0xff.
	digits, k := pow2RadixDigits(0xff, 0, 16)
	if string(digits) != "ff" || k != 2 {
		t.Fatalf("pow2RadixDigits(0xff, 0, 16) = %q, %d, want \"ff\", 2", digits, k)
	}
}
