// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"encoding/binary"
	"math/bits"
)

// Unsigned is the set of unsigned integer widths ParseUint/ParseUintPartial
// can target. It is a closed set (not ~uint8 etc.) so bitWidthOf can resolve
// a target's width with a plain type switch instead of reflection.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// bitWidthOf reports the bit width of T, used to pick which (if any) SWAR
// multi-digit tier applies: the compact one-digit-at-a-time loop always
// produces the right answer, the chunked tiers just get there faster for
// wide targets where the input is long enough to benefit.
func bitWidthOf[T Unsigned]() int {
	switch any(T(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// ParseUint parses a non-negative integer of width T from s under fmt,
// requiring the entire buffer to be consumed.
func ParseUint[T Unsigned](s []byte, fmt Format) (value T, consumed int, err error) {
	value, consumed, err = ParseUintPartial[T](s, fmt)
	if err != nil {
		return value, consumed, err
	}
	if consumed != len(s) {
		return value, consumed, &Error{Kind: ErrInvalidDigit, Position: consumed}
	}
	return value, consumed, nil
}

// ParseUintPartial parses a non-negative integer of width T from a prefix of
// s, tolerating trailing unconsumed input (C7). It is parameterized by
// target width and radix the same way lexical-core's parse_integer is
// monomorphized per integer type: a target width of 32 bits or more enables
// the 4-digit SWAR tier, 64 bits or more additionally enables the 8-digit
// tier, and exactly one of those tiers (or neither, for narrower targets)
// processes the run of digits before a single-digit loop mops up whatever
// the chosen tier couldn't consume — the last chunk short of a full
// chunk-width, any digit separator, and every non-decimal radix, since the
// SWAR byte tricks below only hold for contiguous ASCII '0'-'9' bytes.
//
// Overflow is detected at every accumulation step but, per spec, reported
// only once every valid digit has been consumed, so the returned error
// position always lands just past the last digit rather than wherever the
// accumulator happened to first exceed T's range.
func ParseUintPartial[T Unsigned](s []byte, fmt Format) (value T, consumed int, err error) {
	radix := fmt.Radix()
	sepPlace := integerSepPlacement(fmt)
	sep := fmt.DigitSeparator()
	hasSep := sep != 0 && fmt.HasAny(digitSeparatorFlagMask)

	n := len(s)
	if n == 0 {
		return 0, 0, &Error{Kind: ErrEmpty, Position: 0}
	}

	maxVal := uint64(^T(0))
	width := bitWidthOf[T]()

	var acc uint64
	var overflow bool
	digitCount := 0
	leadingZero := false
	i := 0

	accumulate := func(v, mul uint64, digitsAdded int, firstByte byte) {
		if digitCount == 0 {
			leadingZero = firstByte == '0'
		}
		digitCount += digitsAdded
		if overflow {
			return
		}
		acc, overflow = mulAddOverflow(acc, mul, v, maxVal)
	}

	canSWAR := radix == 10 && !hasSep
	if canSWAR && width >= 64 {
		for i+8 <= n {
			val := binary.LittleEndian.Uint64(s[i : i+8])
			if !isEightDigitsASCII(val) {
				break
			}
			accumulate(parseEightDigitsSWAR(val), 100000000, 8, s[i])
			i += 8
		}
	} else if canSWAR && width >= 32 {
		for i+4 <= n {
			val := binary.LittleEndian.Uint32(s[i : i+4])
			if !isFourDigitsASCII(val) {
				break
			}
			accumulate(uint64(parseFourDigitsSWAR(val)), 10000, 4, s[i])
			i += 4
		}
	}

	// Single-digit tail: the remainder of a chunk tier's run, every digit of
	// a non-decimal radix or a format with digit separators, and (when
	// neither tier above applies) the whole input. Placement (leading/
	// internal/trailing) and consecutive-separator rules are enforced the
	// same way the float mantissa scanner enforces them.
	var sepErr *Error
	i, _, sepErr = scanDigitRun(s, i, radix, sep, hasSep, sepPlace, func(c byte) {
		accumulate(uint64(digitValue(c)), uint64(radix), 1, c)
	})
	if sepErr != nil {
		return 0, i, sepErr
	}

	if digitCount == 0 {
		return 0, i, &Error{Kind: ErrEmptyMantissa, Position: 0}
	}
	if leadingZero && fmt.Has(NoIntegerLeadingZeros) && digitCount > 1 {
		return 0, i, &Error{Kind: ErrInvalidLeadingZeros, Position: 0}
	}
	if overflow {
		return T(maxVal), i, &Error{Kind: ErrOverflow, Position: i}
	}
	return T(acc), i, nil
}

// mulAddOverflow computes acc*mul+add as an exact 128-bit product (via
// bits.Mul64/Add64, the same overflow-checked primitives internal/bigint
// uses for its limb arithmetic) and reports whether the true result exceeds
// limit.
func mulAddOverflow(acc, mul, add, limit uint64) (result uint64, overflow bool) {
	hi, lo := bits.Mul64(acc, mul)
	lo, carry := bits.Add64(lo, add, 0)
	hi += carry
	if hi != 0 || lo > limit {
		return lo, true
	}
	return lo, false
}

// isEightDigitsASCII reports whether all 8 bytes packed into val (as loaded
// by binary.LittleEndian.Uint64) are ASCII '0'-'9', using the classic SWAR
// "subtract and test the high nibble" trick: adding 0x06 to a digit's low
// nibble never carries into the high nibble, while doing so to any non-
// digit byte in the checked range either does or leaves the high nibble
// already wrong, so after the add, the high nibble alone distinguishes a
// digit byte (0x3) from anything else.
func isEightDigitsASCII(val uint64) bool {
	const msbMask = 0xF0F0F0F0F0F0F0F0
	const addMask = 0x0606060606060606
	const want = 0x3333333333333333
	return (val&msbMask)|(((val+addMask)&msbMask)>>4) == want
}

// isFourDigitsASCII is the 4-byte counterpart of isEightDigitsASCII.
func isFourDigitsASCII(val uint32) bool {
	const msbMask = 0xF0F0F0F0
	const addMask = 0x06060606
	const want = 0x33333333
	return (val&msbMask)|(((val+addMask)&msbMask)>>4) == want
}

// parseEightDigitsSWAR converts 8 packed ASCII digit bytes (val, as loaded
// by binary.LittleEndian.Uint64; the caller must have already confirmed
// isEightDigitsASCII) into their base-10 value, using the widely used
// "parse 8 digits without a loop" trick: subtract the '0' bias from every
// byte, combine adjacent digit pairs into two-digit values via one
// multiply-shift, then combine adjacent pairs of those into 4-digit values
// via a second multiply that lands the final sum in the top 32 bits.
func parseEightDigitsSWAR(val uint64) uint64 {
	const mask = 0x000000FF000000FF
	const mul1 = 0x000F424000000064 // 100 + (1000000 << 32)
	const mul2 = 0x0000271000000001 // 1 + (10000 << 32)
	val -= 0x3030303030303030
	val = (val * 10) + (val >> 8)
	return (((val & mask) * mul1) + (((val >> 16) & mask) * mul2)) >> 32
}

// parseFourDigitsSWAR is the 4-byte counterpart of parseEightDigitsSWAR.
func parseFourDigitsSWAR(val uint32) uint32 {
	const mask = 0x00FF00FF
	const mul1 = 1 + (100 << 16)
	val -= 0x30303030
	val = (val * 10) + (val >> 8)
	return ((val & mask) * mul1) >> 16
}
