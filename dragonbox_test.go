// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"testing"

	"github.com/db47h/lexical/internal/bigint"
)

func TestFloorDivDigit(t *testing.T) {
	var s bigint.Int
	s.SetUint64(7)
	var r bigint.Int
	r.SetUint64(38) // 38 / 7 = 5 remainder 3
	d := floorDivDigit(&r, &s, 10)
	if d != 5 {
		t.Fatalf("floorDivDigit(38, 7, radix 10) = %d, want 5", d)
	}
}

func TestCarryDigitsNoCarry(t *testing.T) {
	vals := []uint32{1, 2, 3}
	digits, k := carryDigits(vals, 10, 5)
	if string(digits) != "123" || k != 5 {
		t.Fatalf("carryDigits(no carry) = %q, %d, want \"123\", 5", digits, k)
	}
}

func TestCarryDigitsPropagates(t *testing.T) {
	// 9,9,10 with radix 10: the last digit rounds up to 10, carrying all the
	// way through the run of 9s and off the front, growing the digit count
	// by one and bumping k.
	vals := []uint32{9, 9, 10}
	digits, k := carryDigits(vals, 10, 5)
	if string(digits) != "1000" || k != 6 {
		t.Fatalf("carryDigits(carry) = %q, %d, want \"1000\", 6", digits, k)
	}
}

func TestEstimateKReasonable(t *testing.T) {
	// mant*2**e2 == 1.0 exactly (mantBits=52 implied bit, e2 = -52): the
	// decimal exponent should land at k=1 or thereabouts (never negative
	// enough to produce an empty leading digit run after fixupK corrects it).
	mant := uint64(1) << 52
	k := estimateK(mant, -52, 10)
	if k < 0 || k > 2 {
		t.Fatalf("estimateK(1.0) = %d, want something near 1", k)
	}
}
