// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !compact

package lexical

// Exponent limits for the Eisel-Lemire medium path, one pair per target
// width. A decimal exponent outside a type's range always falls through to
// the big-integer slow path (exact 5^q is either too large to matter, in
// which case the fast/slow paths settle overflow/underflow directly, or the
// shared detailedPowersOfTen table simply has no entry for it).
const (
	f64MinExponentRoundToEven = -4
	f64MaxExponentRoundToEven = 23
	f64MinExponentFastPath    = -22
	f64MaxExponentFastPath    = 22
	f64MaxMantissaFastPath    = 1 << 53 // 2^53, matches float64's 53-bit significand

	f32MinExponentRoundToEven = -17
	f32MaxExponentRoundToEven = 10
	f32MinExponentFastPath    = -10
	f32MaxExponentFastPath    = 10
	f32MaxMantissaFastPath    = 1 << 24 // 2^24, matches float32's 24-bit significand
)

// pow10tab holds the exact powers of ten 10^0..10^18 as uint64 (10^19 also
// fits a uint64 but is not included). The fast path multiplies or divides a
// mantissa by one of these instead of calling math.Pow10, the same way
// decimal.pow10tab turns repeated multiplication into a table lookup.
var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
}

// pow10f64tab holds 10^0..10^22 as float64, the powers for which the
// multiply-or-divide-by-power-of-ten fast path (fastPathF64) is
// exact per Clinger's algorithm: a float64 holds 15-17 significant decimal
// digits exactly, and 10^22 is the largest power of ten itself exactly
// representable as a float64.
var pow10f64tab = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// pow10f32tab holds 10^0..10^10 as float32, the equivalent table for the
// narrower binary32 fast path.
var pow10f32tab = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// maxDigitsFastU64 is the number of decimal digits guaranteed to round-trip
// through a uint64 without overflow (every 19-digit value fits; some 20-digit
// values, from 18446744073709551616 up, do not).
const maxDigitsFastU64 = 19
