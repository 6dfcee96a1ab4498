// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"

	"github.com/db47h/lexical/internal/bigint"
)

// slowMantissaExp computes the correctly-rounded (mant, e2) pair for the
// exact value of digits (ASCII digits of the given radix, no sign, no
// point, no leading/trailing zeros required) with an implied radix point
// after the first pointPos digits: value = (digits interpreted as a radix
// integer) * radix**(pointPos-len(digits)).
//
// This is the slow path (C6): where the fast path and Eisel-Lemire can't
// prove their result correctly rounded, this reconstructs the value exactly
// as an arbitrary-precision integer (internal/bigint) and locates the
// correctly-rounded binary significand by exact comparison, never by
// re-approximating in floating point. It is the float parser's path of last
// resort and is expected to run rarely and need not be fast.
//
// mantBits is the target significand width (52 for float64, 23 for
// float32) and e2Min is the smallest binary exponent the target format can
// represent normally (the caller passes a lower e2Min to let subnormal
// results through with a narrower mantissa). radix is the digits' radix
// (2..36; the float parsers pass the format's radix, so every non-decimal
// input is reconstructed here). The returned mant carries its
// implicit leading bit for normal results; for a subnormal result mant has
// fewer than mantBits+1 significant bits and e2 == e2Min.
func slowMantissaExp(digits []byte, pointPos int, radix uint8, mantBits uint, e2Min int32) (mant uint64, e2 int32, ok bool) {
	if len(digits) == 0 {
		return 0, 0, true
	}

	var d bigint.Int
	for _, c := range digits {
		d.MulSmall(&d, uint32(radix))
		d.AddSmall(&d, uint32(digitValue(c)))
	}
	if d.IsZero() {
		return 0, 0, true
	}
	radixExp := pointPos - len(digits)

	bitlen := d.BitLen()
	guess := int32(math.Floor(float64(bitlen-1)+float64(radixExp)*math.Log2(float64(radix)))) - int32(mantBits)

	e2 = bracketExponent(&d, radixExp, radix, guess, mantBits)
	if e2 < e2Min {
		e2 = e2Min
	}

	lo, hi := uint64(0), uint64(1)<<(mantBits+1)-1
	if e2 == e2Min {
		// Subnormal range: the significand may use fewer than mantBits+1
		// bits, so don't require the implicit leading bit to be set.
		lo = 0
	} else {
		lo = 1 << mantBits
	}
	mantFloor := binarySearchFloor(&d, radixExp, radix, e2, lo, hi)

	cmp := cmpValueToMant(&d, radixExp, radix, 2*mantFloor+1, e2-1)
	switch {
	case cmp > 0:
		mant = mantFloor + 1
	case cmp < 0:
		mant = mantFloor
	default:
		if mantFloor&1 == 0 {
			mant = mantFloor
		} else {
			mant = mantFloor + 1
		}
	}
	if mant > hi {
		mant >>= 1
		e2++
	}
	return mant, e2, true
}

// bracketExponent finds the e2 such that 2**(e2+mantBits) <= d*radix**radixExp
// < 2**(e2+mantBits+1), starting from an approximate guess and correcting it
// by exact comparison.
func bracketExponent(d *bigint.Int, radixExp int, radix uint8, guess int32, mantBits uint) int32 {
	e2 := guess
	for i := 0; i < 64 && cmpValueToPow2(d, radixExp, radix, e2+int32(mantBits)+1) >= 0; i++ {
		e2++
	}
	for i := 0; i < 64 && cmpValueToPow2(d, radixExp, radix, e2+int32(mantBits)) < 0; i++ {
		e2--
	}
	return e2
}

// binarySearchFloor returns the largest mant in [lo, hi] such that
// mant*2**e2 <= d*radix**radixExp.
func binarySearchFloor(d *bigint.Int, radixExp int, radix uint8, e2 int32, lo, hi uint64) uint64 {
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if cmpValueToMant(d, radixExp, radix, mid, e2) >= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// cmpValueToPow2 returns the sign of (d*radix**radixExp - 2**p), computed as
// an exact big-integer comparison: whichever side has a negative exponent
// gets the other side's corresponding power folded in instead, so both
// operands compared are plain non-negative-exponent products.
func cmpValueToPow2(d *bigint.Int, radixExp int, radix uint8, p int32) int {
	var a, b bigint.Int
	a.Set(d)
	b.SetUint64(1)
	if radixExp >= 0 {
		a.MulPowRadix(&a, radix, uint(radixExp))
	} else {
		b.MulPowRadix(&b, radix, uint(-radixExp))
	}
	if p >= 0 {
		b.MulPow2(&b, uint(p))
	} else {
		a.MulPow2(&a, uint(-p))
	}
	return a.Cmp(&b)
}

// cmpValueToMant returns the sign of (d*radix**radixExp - mant*2**e2), using
// the same cross-multiplication as cmpValueToPow2.
func cmpValueToMant(d *bigint.Int, radixExp int, radix uint8, mant uint64, e2 int32) int {
	var a, b bigint.Int
	a.Set(d)
	b.SetUint64(mant)
	if radixExp >= 0 {
		a.MulPowRadix(&a, radix, uint(radixExp))
	} else {
		b.MulPowRadix(&b, radix, uint(-radixExp))
	}
	if e2 >= 0 {
		b.MulPow2(&b, uint(e2))
	} else {
		a.MulPow2(&a, uint(-e2))
	}
	return a.Cmp(&b)
}
