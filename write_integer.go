// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// digitChars maps a digit value 0..35 to its ASCII representation, lowercase
// for the letter digits (radix > 10), matching strconv.FormatInt's default
// case for hex.
const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// decimalPairs holds the two-digit ASCII string for every value 0..99, the
// Jeaiii-style lookup table C8's decimal fast path indexes into: two digits
// written per division instead of one, the same table strconv's itoa uses
// for the same reason.
const decimalPairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// maxUintDigits bounds the digits any uint64 needs in the narrowest
// supported radix (binary): 64.
const maxUintDigits = 64

// WriteUint writes value in the given radix (2..36) to buf, returning the
// number of bytes written. buf should be at least UintBufferSize[T](radix)
// bytes: the digits are built in scratch space and copied into buf, so a
// shorter buf receives only the leading digits that fit, and the returned
// count is the number of bytes actually written.
func WriteUint[T Unsigned](value T, buf []byte, radix uint8) int {
	u := uint64(value)
	switch {
	case radix == 10:
		return writeUintDecimal(u, buf)
	case isPow2Radix(radix):
		return writeUintPow2(u, buf, radix)
	default:
		return writeUintGeneral(u, buf, radix)
	}
}

// UintBufferSize returns the maximum number of bytes WriteUint can write for
// type T in the given radix: the digit count of T's maximum value in that
// radix, plus one byte of slack, matching the integer writer's documented
// buffer-size contract of ⌈log_radix(2^bits)⌉ + 1 bytes.
func UintBufferSize[T Unsigned](radix uint8) int {
	maxVal := uint64(^T(0))
	r := uint64(radix)
	n := 1
	for maxVal >= r {
		maxVal /= r
		n++
	}
	return n + 1
}

// writeUintDecimal implements C8's decimal fast path: repeatedly divide by
// 100 and write two ASCII digits per step, from least significant to most,
// then shift the result to the front of buf.
func writeUintDecimal(u uint64, buf []byte) int {
	var scratch [maxUintDigits]byte
	i := len(scratch)
	for u >= 100 {
		is := (u % 100) * 2
		u /= 100
		i -= 2
		scratch[i] = decimalPairs[is]
		scratch[i+1] = decimalPairs[is+1]
	}
	is := u * 2
	i--
	scratch[i] = decimalPairs[is+1]
	if u >= 10 {
		i--
		scratch[i] = decimalPairs[is]
	}
	return copy(buf, scratch[i:])
}

// writeUintPow2 implements C8's power-of-two path: radix is an exact power
// of two, so each digit is exactly log2(radix) bits of the value with no
// rounding or division involved, extracted from the least-significant end.
func writeUintPow2(u uint64, buf []byte, radix uint8) int {
	shift := log2OfPow2Radix(radix)
	mask := uint64(radix) - 1

	var scratch [maxUintDigits]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = digitChars[u&mask]
		u >>= shift
		if u == 0 {
			break
		}
	}
	return copy(buf, scratch[i:])
}

// writeUintGeneral implements C8's general-radix path: repeated divmod by
// radix, one digit per division, for any radix that is neither 10 nor a
// power of two.
func writeUintGeneral(u uint64, buf []byte, radix uint8) int {
	var scratch [maxUintDigits]byte
	i := len(scratch)
	r := uint64(radix)
	for {
		i--
		scratch[i] = digitChars[u%r]
		u /= r
		if u == 0 {
			break
		}
	}
	return copy(buf, scratch[i:])
}
