// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"

	"github.com/db47h/lexical/internal/bigint"
)

// maxShortestDigits bounds the digit count shortestDigits can produce. The
// smallest radix this engine serves (3) needs about (mantBits+1)/log2(3)
// significant digits (34 for binary64) to pin a value down uniquely; the bound below
// leaves ample headroom over that for the occasional extra digit the
// asymmetric-boundary and round-to-even cases can add.
const maxShortestDigits = 128

// shortestDigits runs Steele & White's free-format digit-generation
// algorithm (the one commonly nicknamed Dragon4) to produce the shortest
// digit string, in the given radix, that round-trips back to the exact
// binary value mant*2**e2 under round-to-nearest-even.
//
// mant carries its implicit leading bit for a normal result (mantBits+1
// significant bits); for a subnormal result mant has fewer significant bits
// and e2 == e2Min, the format's smallest representable binary exponent.
// This is the same (mant, e2) convention slowMantissaExp produces on the
// parser side.
//
// Rather than the cached-128-bit-power-table approximation the name
// "Dragonbox" usually refers to, this reconstructs the value's exact
// rational boundaries with internal/bigint and generates digits by exact
// big-integer division: the table-driven approximation cannot be ported
// here without a way to catch a transcription error by running it (see
// DESIGN.md), whereas this formulation is correct by construction once the
// arithmetic itself is right. It serves both the decimal formatter and the
// general (non-power-of-two) radix formatter, since both need exactly the
// same shortest-round-trip guarantee.
//
// digits is returned as ASCII bytes (digitChars-indexed), most significant
// first, with no leading or trailing zeros; the empty mantissa (mant == 0)
// is the caller's job to special-case as the literal "0" since it has no
// well-defined boundary interval. k is the decimal exponent such that the
// value equals 0.digits (digits read in the given radix) * radix**k --
// equivalently, digits[0] sits at place radix**(k-1).
func shortestDigits(mant uint64, e2 int32, mantBits uint, e2Min int32, radix uint8) (digits []byte, k int) {
	var r, s, mp, mm bigint.Int
	initBoundaries(&r, &s, &mp, &mm, mant, e2, mantBits, e2Min)
	even := mant&1 == 0

	k = estimateK(mant, e2, radix)
	fixupK(&r, &s, &mp, &mm, radix, even, &k)

	var vals [maxShortestDigits]uint32
	n := 0
	for {
		r.MulSmall(&r, uint32(radix))
		mp.MulSmall(&mp, uint32(radix))
		mm.MulSmall(&mm, uint32(radix))

		d := floorDivDigit(&r, &s, radix)
		var prod bigint.Int
		prod.MulSmall(&s, d)
		r.Sub(&r, &prod)

		low := r.Cmp(&mm) < 0 || (even && r.Cmp(&mm) == 0)
		var sum bigint.Int
		sum.Add(&r, &mp)
		high := sum.Cmp(&s) > 0 || (even && sum.Cmp(&s) == 0)

		if n >= maxShortestDigits {
			panic("lexical: shortest-digit generation exceeded capacity")
		}

		switch {
		case !low && !high:
			vals[n] = d
			n++
			continue
		case low && !high:
			vals[n] = d
		case high && !low:
			vals[n] = d + 1
		default:
			var twice bigint.Int
			twice.MulPow2(&r, 1)
			c := twice.Cmp(&s)
			if c > 0 || (c == 0 && d&1 == 1) {
				vals[n] = d + 1
			} else {
				vals[n] = d
			}
		}
		n++
		break
	}

	return carryDigits(vals[:n], radix, k)
}

// initBoundaries computes the exact rational value r/s and its half-ulp
// neighbor gaps mp (toward the next larger float) and mm (toward the next
// smaller one), scaled to share a common, convenient denominator. mant is
// at a power-of-two boundary (the smallest normalized significand) gets an
// asymmetric mm (half of mp), since its predecessor is only half a ulp away
// while its successor is a full ulp away -- except at the very bottom of
// the subnormal range, where both neighbors are equally spaced.
func initBoundaries(r, s, mp, mm *bigint.Int, mant uint64, e2 int32, mantBits uint, e2Min int32) {
	isMinMantissa := mant == uint64(1)<<mantBits
	if e2 >= 0 {
		if !isMinMantissa {
			r.SetUint64(mant)
			r.MulPow2(r, uint(e2)+1)
			s.SetUint64(2)
			mp.SetUint64(1)
			mp.MulPow2(mp, uint(e2))
			mm.Set(mp)
			return
		}
		r.SetUint64(mant)
		r.MulPow2(r, uint(e2)+2)
		s.SetUint64(4)
		mp.SetUint64(1)
		mp.MulPow2(mp, uint(e2)+1)
		mm.SetUint64(1)
		mm.MulPow2(mm, uint(e2))
		return
	}
	if e2 == e2Min || !isMinMantissa {
		r.SetUint64(mant)
		r.MulPow2(r, 1)
		s.SetUint64(1)
		s.MulPow2(s, uint(1-e2))
		mp.SetUint64(1)
		mm.SetUint64(1)
		return
	}
	r.SetUint64(mant)
	r.MulPow2(r, 2)
	s.SetUint64(1)
	s.MulPow2(s, uint(2-e2))
	mp.SetUint64(2)
	mm.SetUint64(1)
}

// estimateK guesses the decimal (or radix-k) exponent via floating-point
// log, biased a hair low so the exact fixup loop in fixupK only ever needs
// to grow it, never shrink it by more than the one correction it already
// performs.
func estimateK(mant uint64, e2 int32, radix uint8) int {
	const eps = 1e-10
	lnValue := math.Log(float64(mant)) + float64(e2)*math.Ln2
	est := lnValue/math.Log(float64(radix)) - eps
	return int(math.Ceil(est))
}

// fixupK corrects estimateK's guess by exact comparison: scales r/s/mp/mm
// by radix**|k| in the direction estimateK's sign implies, then nudges k by
// exactly as much as the boundary test (r+mp against s) requires -- at most
// one step up, or a short run of steps down, since the floating-point
// estimate is never off by more than one in either direction.
func fixupK(r, s, mp, mm *bigint.Int, radix uint8, even bool, k *int) {
	if *k >= 0 {
		s.MulPowRadix(s, radix, uint(*k))
	} else {
		n := uint(-*k)
		r.MulPowRadix(r, radix, n)
		mp.MulPowRadix(mp, radix, n)
		mm.MulPowRadix(mm, radix, n)
	}

	highOK := func(r, mp, s *bigint.Int) bool {
		var sum bigint.Int
		sum.Add(r, mp)
		c := sum.Cmp(s)
		return c < 0 || (even && c == 0)
	}

	if !highOK(r, mp, s) {
		s.MulSmall(s, uint32(radix))
		*k++
		return
	}
	for i := 0; i < 64; i++ {
		var r2, mp2, mm2 bigint.Int
		r2.MulSmall(r, uint32(radix))
		mp2.MulSmall(mp, uint32(radix))
		mm2.MulSmall(mm, uint32(radix))
		if !highOK(&r2, &mp2, s) {
			break
		}
		r.Set(&r2)
		mp.Set(&mp2)
		mm.Set(&mm2)
		*k--
	}
}

// floorDivDigit returns the largest d in [0, radix) such that d*s <= r, via
// binary search: the algorithm's own scaling keeps r < radix*s at the point
// this is called, so d always fits a single radix digit.
func floorDivDigit(r, s *bigint.Int, radix uint8) uint32 {
	var t bigint.Int
	lo, hi := uint32(0), uint32(radix)-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if t.MulSmall(s, mid).Cmp(r) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// carryDigits converts the raw digit values generated by shortestDigits's
// main loop to ASCII, propagating the carry a final round-up-to-radix step
// can leave behind (d+1 == radix) back through the already-written digits,
// growing the digit string by one place and bumping k when the carry runs
// off the front.
func carryDigits(vals []uint32, radix uint8, k int) ([]byte, int) {
	carry := uint32(0)
	for i := len(vals) - 1; i >= 0; i-- {
		vals[i] += carry
		carry = 0
		if vals[i] == uint32(radix) {
			vals[i] = 0
			carry = 1
		}
	}
	out := make([]byte, 0, len(vals)+1)
	if carry != 0 {
		out = append(out, digitChars[1])
		k++
	}
	for _, v := range vals {
		out = append(out, digitChars[v])
	}
	return out, k
}
