// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math"

// FloatBufferSize returns the buffer size WriteFloat64/WriteFloat32 never
// write past under opts: the documented ≈1077-byte bound (the positional
// expansion of the smallest subnormal, plus sign, point and exponent) grown
// to cover a larger max_significant_digits request.
func FloatBufferSize(opts Options) int {
	m := int(opts.MaxSignificantDigits)
	if m < 52 {
		m = 52
	}
	return 1077 + m
}

// WriteFloat64 writes v into buf under fmt and opts, returning the number
// of bytes written. buf must be at least FloatBufferSize(opts) bytes; as
// with WriteUint, WriteFloat64 never writes past the end of buf (every
// write here goes through copy or an explicit bound), truncating rather
// than panicking if the caller under-sized it.
func WriteFloat64(v float64, buf []byte, fmt Format, opts Options) int {
	if math.IsNaN(v) {
		return writeSpecial(buf, opts.NaNString, false)
	}
	bits := math.Float64bits(v)
	negative := bits>>63 != 0
	if math.IsInf(v, 0) {
		return writeSpecial(buf, opts.InfString, negative)
	}
	const mantBits = 52
	const bias = 1023
	const e2Min = -1074

	mant, e2, isZero := decompose(bits&^(uint64(1)<<63), mantBits, bias, e2Min)
	return writeFloatBits(mant, e2, isZero, negative, mantBits, e2Min, buf, fmt, opts)
}

// WriteFloat32 is WriteFloat64 for float32.
func WriteFloat32(v float32, buf []byte, fmt Format, opts Options) int {
	if math.IsNaN(float64(v)) {
		return writeSpecial(buf, opts.NaNString, false)
	}
	bits := uint64(math.Float32bits(v))
	negative := bits>>31 != 0
	if math.IsInf(float64(v), 0) {
		return writeSpecial(buf, opts.InfString, negative)
	}
	const mantBits = 23
	const bias = 127
	const e2Min = -149

	mant, e2, isZero := decompose(bits&^(uint64(1)<<31), mantBits, bias, e2Min)
	return writeFloatBits(mant, e2, isZero, negative, mantBits, e2Min, buf, fmt, opts)
}

// decompose unpacks a (non-special) IEEE-754 bit pattern, as laid out by
// packBits (exponent field above mantBits bits, no sign), into the
// (mant, e2) pair the rest of C9 shares with the parser's slow path: mant
// carries its implicit leading bit for a normal result, value == mant*2**e2.
func decompose(bits uint64, mantBits uint, bias int64, e2Min int32) (mant uint64, e2 int32, isZero bool) {
	frac := bits &^ (^uint64(0) << mantBits)
	biased := int64(bits >> mantBits)
	if biased == 0 {
		if frac == 0 {
			return 0, 0, true
		}
		return frac, e2Min, false
	}
	mant = frac | uint64(1)<<mantBits
	e2 = int32(biased - bias - int64(mantBits))
	return mant, e2, false
}

// writeSpecial writes s into buf, preceded by '-' when negative is true.
func writeSpecial(buf []byte, s []byte, negative bool) int {
	n := 0
	if negative {
		n += copy(buf, "-")
	}
	n += copy(buf[n:], s)
	return n
}

// writeFloatBits runs the shared C9 pipeline once a float has been reduced
// to its (mant, e2) pair: generate shortest digits via whichever engine
// fits the format's radix, apply the documented post-processing order, then
// lay the result out as positional or scientific notation.
func writeFloatBits(mant uint64, e2 int32, isZero, negative bool, mantBits uint, e2Min int32, buf []byte, fmt Format, opts Options) int {
	radix := fmt.Radix()

	n := 0
	if negative {
		n += copy(buf[n:], "-")
	} else if fmt.Has(RequiredMantissaSign) {
		n += copy(buf[n:], "+")
	}

	if isZero {
		return n + writeZero(buf[n:], opts)
	}

	var digits []byte
	var k int
	if isPow2Radix(radix) {
		digits, k = pow2RadixDigits(mant, e2, radix)
	} else {
		digits, k = shortestDigits(mant, e2, mantBits, e2Min, radix)
	}

	digits, k = applyMaxSignificantDigits(digits, k, radix, opts)
	digits = applyMinSignificantDigits(digits, opts)

	decExp := k - 1
	if opts.NegativeExponentBreak < int32(decExp) && int32(decExp) < opts.PositiveExponentBreak {
		n += writePositional(buf[n:], digits, k, opts)
	} else {
		n += writeScientific(buf[n:], digits, decExp, fmt, opts)
	}
	return n
}

// writeZero writes the formatter's canonical zero: "0" or "0.0" depending
// on trim_floats, matching what writePositional would produce for a digit
// string of a single zero.
func writeZero(buf []byte, opts Options) int {
	if opts.TrimFloats {
		return copy(buf, "0")
	}
	n := copy(buf, "0")
	n += copy(buf[n:], []byte{opts.DecimalPoint})
	n += copy(buf[n:], "0")
	return n
}

// applyMaxSignificantDigits truncates or rounds digits down to at most
// opts.MaxSignificantDigits digits, per opts.RoundMode. Rounding propagates
// a carry leftward the same way carryDigits does for a digit-generation
// round-up, growing k by one if the carry runs off the front.
func applyMaxSignificantDigits(digits []byte, k int, radix uint8, opts Options) ([]byte, int) {
	maxDigits := int(opts.MaxSignificantDigits)
	if len(digits) <= maxDigits {
		return digits, k
	}
	kept := digits[:maxDigits]
	if opts.RoundMode == Truncate {
		return kept, k
	}
	roundUp := digitValue(digits[maxDigits])*2 >= int(radix)
	if !roundUp {
		return kept, k
	}
	out := make([]byte, maxDigits)
	copy(out, kept)
	carry := 1
	for i := maxDigits - 1; i >= 0 && carry != 0; i-- {
		v := digitValue(out[i]) + carry
		carry = 0
		if v == int(radix) {
			v = 0
			carry = 1
		}
		out[i] = digitChars[v]
	}
	if carry != 0 {
		shifted := make([]byte, maxDigits)
		shifted[0] = digitChars[1]
		copy(shifted[1:], out[:maxDigits-1])
		out = shifted
		k++
	}
	return out, k
}

// applyMinSignificantDigits pads digits with trailing zeros up to
// opts.MinSignificantDigits.
func applyMinSignificantDigits(digits []byte, opts Options) []byte {
	minDigits := int(opts.MinSignificantDigits)
	if len(digits) >= minDigits {
		return digits
	}
	out := make([]byte, minDigits)
	copy(out, digits)
	for i := len(digits); i < minDigits; i++ {
		out[i] = '0'
	}
	return out
}

// writePositional lays digits out in positional (non-scientific) notation:
// value == 0.digits * radix**k, so k is the count of digits before the
// point (padding with zeros on whichever side runs short), honoring
// trim_floats when the fractional part is all zeros.
func writePositional(buf []byte, digits []byte, k int, opts Options) int {
	n := 0
	switch {
	case k <= 0:
		n += copy(buf[n:], "0")
		n += copy(buf[n:], []byte{opts.DecimalPoint})
		for i := 0; i < -k; i++ {
			n += copy(buf[n:], "0")
		}
		n += copy(buf[n:], digits)
	case k >= len(digits):
		n += copy(buf[n:], digits)
		for i := len(digits); i < k; i++ {
			n += copy(buf[n:], "0")
		}
		if !opts.TrimFloats {
			n += copy(buf[n:], []byte{opts.DecimalPoint})
			n += copy(buf[n:], "0")
		}
		return n
	default:
		n += copy(buf[n:], digits[:k])
		n += copy(buf[n:], []byte{opts.DecimalPoint})
		n += copy(buf[n:], digits[k:])
		return n
	}
	return n
}

// writeScientific lays digits out as scientific notation: one digit, a
// point, the remaining digits (or a single "0" if there are none), the
// format's exponent character, and the signed exponent (a power of the
// mantissa radix), written in the format's exponent radix.
func writeScientific(buf []byte, digits []byte, decExp int, fmt Format, opts Options) int {
	n := 0
	n += copy(buf[n:], digits[:1])
	n += copy(buf[n:], []byte{opts.DecimalPoint})
	if len(digits) > 1 {
		n += copy(buf[n:], digits[1:])
	} else {
		n += copy(buf[n:], "0")
	}
	n += copy(buf[n:], []byte{opts.Exponent})

	expRadix := fmt.ExponentRadix()
	mag := decExp
	if decExp < 0 {
		n += copy(buf[n:], "-")
		mag = -decExp
	} else if fmt.Has(RequiredExponentSign) {
		n += copy(buf[n:], "+")
	}
	n += WriteUint(uint64(mag), buf[n:], expRadix)
	return n
}
