// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"math/bits"
)

// eiselLemire64 attempts the medium-path conversion of a (mantissa,
// exponent) pair to a float64, following Eisel & Lemire's "Number Parsing at
// a Gigabyte per Second" (2020): multiply the normalized decimal mantissa by
// a 128-bit approximation of 5^exponent from detailedPowersOfTen, then round
// the top 53 bits to nearest-even.
//
// It reports ok == false whenever it cannot PROVE the rounding is correct -
// either the exponent falls outside the table's range, or the bits just
// below the rounding point are too close to a tie for the table's bounded
// approximation error to resolve. Callers fall through to the exact
// big-integer slow path in that case; with lossy false, this function never
// returns an incorrect result.
func eiselLemire64(mantissa uint64, exponent int64, negative, lossy bool) (f float64, ok bool) {
	const mantBits = 52

	topHi, topLo, e2, ok := lemireProduct(mantissa, exponent)
	if !ok {
		return 0, false
	}
	mant, e2, ok := lemireRound(topHi, topLo, e2, mantBits, exponent, lossy)
	if !ok {
		return 0, false
	}

	biased := e2 + mantBits + 1023
	if biased <= 0 || biased >= 2047 {
		return 0, false
	}

	bits64 := uint64(biased)<<mantBits | (mant &^ (1 << mantBits))
	if negative {
		bits64 |= 1 << 63
	}
	return math.Float64frombits(bits64), true
}

// eiselLemire32 is the binary32 counterpart of eiselLemire64: it reuses the
// shared detailedPowersOfTen table (the same 5^q values serve any target
// width) but rounds to a 24-bit significand and a narrower exponent field.
func eiselLemire32(mantissa uint64, exponent int64, negative, lossy bool) (f float32, ok bool) {
	const mantBits = 23

	topHi, topLo, e2, ok := lemireProduct(mantissa, exponent)
	if !ok {
		return 0, false
	}
	mant, e2, ok := lemireRound(topHi, topLo, e2, mantBits, exponent, lossy)
	if !ok {
		return 0, false
	}

	biased := e2 + mantBits + 127
	if biased <= 0 || biased >= 255 {
		return 0, false
	}

	bits32 := uint32(biased)<<mantBits | (uint32(mant) &^ (1 << mantBits))
	if negative {
		bits32 |= 1 << 31
	}
	return math.Float32frombits(bits32), true
}

// lemireProduct normalizes mantissa to 64 significant bits (shifting left by
// the leading-zero count clz) and multiplies it by the table's 128-bit
// approximation of 5^exponent, returning the top 128 bits of that exact
// product as two 64-bit words (topHi:topLo), together with the binary
// exponent e2 such that the true value is approximately
// (topHi:topLo) * 2^e2, before the final rounding step.
func lemireProduct(mantissa uint64, exponent int64) (topHi, topLo uint64, e2 int32, ok bool) {
	if mantissa == 0 {
		return 0, 0, 0, true
	}
	if exponent < detailedPowersOfTenMinExp10 || exponent > detailedPowersOfTenMaxExp10 {
		return 0, 0, 0, false
	}

	clz := bits.LeadingZeros64(mantissa)
	man := mantissa << uint(clz)

	p := detailedPowersOfTen[exponent-detailedPowersOfTenMinExp10]

	aHi, aLo := bits.Mul64(man, p.hi)
	bHi, _ := bits.Mul64(man, p.lo)

	sumLo, carry := bits.Add64(aLo, bHi, 0)
	sumHi := aHi + carry // carry is 0 or 1; aHi < 2^64-1 whenever it would overflow here

	e2 = p.binExp + int32(exponent) - int32(clz) + 64
	return sumHi, sumLo, e2, true
}

// lemireRound rounds the 128-bit approximate significand (topHi:topLo) to
// mantBits+1 significant bits (nearest, ties to even), declining to round
// (ok == false) whenever the table's bounded approximation error could flip
// the decision. It returns the rounded mantissa (with its implicit leading
// bit still set in bit mantBits) and the exponent e2 adjusted for the bits
// discarded in rounding.
//
// The comparison against the halfway point is done as exact 128-bit integer
// arithmetic (via bits.Sub64 borrow propagation): the shift separating the
// kept mantissa bits from the discarded remainder always exceeds 64 bits for
// both binary32 and binary64, so the remainder and halfway point routinely
// span both words of the 128-bit value and cannot be compared as a single
// uint64.
//
// lossy, when true, never declines: a remainder within the table's error
// bound of the halfway point is rounded by its nearest side anyway (an
// unproven but best-effort guess), matching how Options.Lossy asks the
// parser to skip the exact slow path entirely.
func lemireRound(topHi, topLo uint64, e2 int32, mantBits uint, exponent int64, lossy bool) (mant uint64, outExp2 int32, ok bool) {
	exact := exponent >= 0 && exponent <= exactPowerOfTenMaxQ
	var errULP uint64
	if !exact {
		errULP = 2
	}

	var nbits int
	if topHi != 0 {
		nbits = 64 + bits.Len64(topHi)
	} else {
		nbits = bits.Len64(topLo)
	}
	if nbits != 127 && nbits != 128 {
		return 0, 0, false
	}
	leading := uint(nbits - 1)
	shift := leading - mantBits // always > 64 for both binary32 and binary64
	shiftHi := shift - 64

	truncated := topHi >> shiftHi
	remHi := topHi & (1<<shiftHi - 1)
	remLo := topLo
	halfHi := uint64(1) << (shiftHi - 1)

	loD, borrow := bits.Sub64(remLo, 0, 0)
	hiD, borrowOut := bits.Sub64(remHi, halfHi, borrow)

	var diffHi, diffLo uint64
	remGEHalf := borrowOut == 0
	if remGEHalf {
		diffHi, diffLo = hiD, loD
	} else {
		loD2, b := bits.Sub64(0, remLo, 0)
		hiD2, _ := bits.Sub64(halfHi, remHi, b)
		diffHi, diffLo = hiD2, loD2
	}
	withinErr := diffHi == 0 && diffLo <= errULP

	switch {
	case remGEHalf && diffHi == 0 && diffLo == 0:
		if errULP != 0 && !lossy {
			return 0, 0, false // exact tie, but table entry was only approximate
		}
		if truncated&1 == 0 {
			mant = truncated
		} else {
			mant = truncated + 1
		}
	case withinErr:
		if !lossy {
			return 0, 0, false
		}
		if remGEHalf {
			mant = truncated + 1
		} else {
			mant = truncated
		}
	case remGEHalf:
		mant = truncated + 1
	default:
		mant = truncated
	}

	e2 += int32(shift)
	if mant>>(mantBits+1) != 0 {
		mant >>= 1
		e2++
	}
	return mant, e2, true
}
