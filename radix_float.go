// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "github.com/db47h/lexical/internal/bigint"

// pow2RadixDigits produces the exact digit string, in the given power-of-two
// radix, for the binary value mant*2**e2. Unlike the general shortestDigits
// engine, no search for a round-tripping approximation is needed: a
// power-of-two radix groups the value's own bits, so the result is exact by
// construction, and the "shortest" string is simply that exact expansion
// with trailing (least-significant) zero digits dropped.
//
// digits is ASCII, most significant first; k is the decimal exponent such
// that the value equals 0.digits (read in the given radix) * radix**k.
func pow2RadixDigits(mant uint64, e2 int32, radix uint8) (digits []byte, k int) {
	if mant == 0 {
		return []byte{'0'}, 1
	}

	lg := int32(log2OfPow2Radix(radix))
	// Shift mant so its least significant bit lands on a digit boundary:
	// pad by the distance from e2 up to the next multiple of lg, so the
	// padded value's bits group into whole digits with no remainder.
	pad := ((e2 % lg) + lg) % lg
	e2Aligned := e2 - pad

	var m bigint.Int
	m.SetUint64(mant)
	m.Lsh(&m, uint(pad))

	bitLen := m.BitLen()
	numDigits := (bitLen + int(lg) - 1) / int(lg)
	if numDigits == 0 {
		numDigits = 1
	}

	vals := make([]byte, numDigits)
	mask := uint64(radix) - 1
	for i := 0; i < numDigits; i++ {
		v := m.ShiftRightExtract(uint(i) * uint(lg))
		vals[numDigits-1-i] = digitChars[v&mask]
	}

	end := len(vals)
	for end > 1 && vals[end-1] == '0' {
		end--
	}
	return vals[:end], numDigits + int(e2Aligned)/int(lg)
}
