// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements the fixed-capacity, base-2**32 unsigned
// arbitrary-precision integer used by the float parser's slow path and by
// the general-radix float formatter.
//
// Unlike math/big.Int, an Int never allocates: its limbs live in the value
// itself, little-endian, so a caller can declare one on the stack and pass
// it by pointer through a parse or format call without the GC ever seeing
// it. This mirrors how the decimal package's own dec type stores an
// unbounded-looking integer in a fixed Word slice, except an Int's capacity
// is a compile-time array bound rather than a slice that can still grow.
package bigint

import "math/bits"

// maxLimbs bounds an Int to 5120 bits. The slow parse path's exact
// comparison cross-multiplies the full significant-digit run (capped at
// maxSignificantDigitsSlowPath, see scan.go) by 10**|exponent| to clear
// fractional scale on one side of the comparison; the worst case (a maximal
// digit run paired with the widest decimal exponent magnitude the
// Eisel-Lemire table covers, 342) needs on the order of 3700 bits. The
// remaining headroom covers the larger per-digit cost of non-power-of-two,
// non-decimal radixes (e.g. base 3 or base 36) that mul_pow can't
// special-case with a precomputed table.
const maxLimbs = 160

// Int is a fixed-capacity, little-endian unsigned integer:
//
//	x = limbs[n-1]*2**(32*(n-1)) + ... + limbs[1]*2**32 + limbs[0]
//
// The zero value represents 0. A normalized Int never carries leading zero
// limbs; n == 0 is the only representation of zero.
type Int struct {
	limbs [maxLimbs]uint32
	n     int
}

// norm drops leading zero limbs.
func (z *Int) norm() *Int {
	n := z.n
	for n > 0 && z.limbs[n-1] == 0 {
		n--
	}
	z.n = n
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Int) SetZero() *Int {
	z.n = 0
	return z
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool { return z.n == 0 }

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.limbs[0] = uint32(x)
	z.limbs[1] = uint32(x >> 32)
	z.n = 2
	return z.norm()
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	z.limbs = x.limbs
	z.n = x.n
	return z
}

// BitLen returns the number of bits required to represent z; BitLen(0) == 0.
func (z *Int) BitLen() int {
	if z.n == 0 {
		return 0
	}
	return (z.n-1)*32 + bits.Len32(z.limbs[z.n-1])
}

// grow panics if n exceeds the fixed capacity: a contract breach by the
// caller (mantissa/exponent combination that overran the documented
// capacity), not a recoverable runtime condition.
func grow(n int) {
	if n > maxLimbs {
		panic("bigint: capacity exceeded")
	}
}

// MulSmall sets z = x * m, where m is a single 32-bit limb, and returns z.
func (z *Int) MulSmall(x *Int, m uint32) *Int {
	if m == 0 || x.n == 0 {
		return z.SetZero()
	}
	n := x.n
	grow(n + 1)
	var limbs [maxLimbs]uint32
	var carry uint32
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul32(x.limbs[i], m)
		var c uint32
		lo, c = bits.Add32(lo, carry, 0)
		hi += c
		limbs[i] = lo
		carry = hi
	}
	limbs[n] = carry
	z.limbs = limbs
	z.n = n + 1
	return z.norm()
}

// AddSmall sets z = x + a, where a is a single 32-bit limb, and returns z.
// Used by the slow parser path to fold one more decimal digit into the
// accumulated mantissa (z = z*10 + digit).
func (z *Int) AddSmall(x *Int, a uint32) *Int {
	n := x.n
	if a == 0 {
		return z.Set(x)
	}
	grow(n + 1)
	var limbs [maxLimbs]uint32
	copy(limbs[:n], x.limbs[:n])
	carry := a
	i := 0
	for carry != 0 {
		if i == n {
			limbs[i] = carry
			n++
			break
		}
		var c uint32
		limbs[i], c = bits.Add32(limbs[i], carry, 0)
		carry = c
		i++
	}
	z.limbs = limbs
	z.n = n
	return z.norm()
}

// MulPow5 sets z = x * 5**n and returns z.
func (z *Int) MulPow5(x *Int, n uint) *Int {
	z.Set(x)
	// 5**13 < 2**32 <= 5**14, so batch up to 13 at a time.
	const chunk = 13
	pow5 := [chunk + 1]uint32{
		1, 5, 25, 125, 625, 3125, 15625, 78125, 390625, 1953125,
		9765625, 48828125, 244140625, 1220703125,
	}
	for n > 0 {
		k := n
		if k > chunk {
			k = chunk
		}
		z.MulSmall(z, pow5[k])
		n -= k
	}
	return z
}

// MulPow2 sets z = x * 2**n and returns z; it is an alias for Lsh.
func (z *Int) MulPow2(x *Int, n uint) *Int {
	return z.Lsh(x, n)
}

// MulPow10 sets z = x * 10**n and returns z.
func (z *Int) MulPow10(x *Int, n uint) *Int {
	z.MulPow5(x, n)
	return z.Lsh(z, n)
}

// log2PowerOfTwo reports whether radix is an exact power of two and, if so,
// its base-2 logarithm. The general-radix slow path uses this to shift
// instead of multiply for binary, octal and hex, the same shortcut the
// power-of-two float path takes to skip big-integer arithmetic entirely.
func log2PowerOfTwo(radix uint8) (uint, bool) {
	if radix < 2 || radix&(radix-1) != 0 {
		return 0, false
	}
	return uint(bits.Len8(radix - 1)), true
}

// maxRadixChunk returns the largest k such that radix**k fits in a uint32,
// along with that value, for use as a single MulSmall multiplier.
func maxRadixChunk(radix uint8) (k uint, radixPow uint32) {
	p := uint64(1)
	for {
		next := p * uint64(radix)
		if next > 0xffffffff {
			return k, uint32(p)
		}
		p = next
		k++
	}
}

// MulPowRadix sets z = x * radix**n and returns z. Unlike MulPow10, radix is
// a runtime value in [2, 36]: a power-of-two radix shifts exactly, any other
// radix multiplies in the largest single-limb chunks that fit a uint32,
// mirroring MulPow5's batching.
func (z *Int) MulPowRadix(x *Int, radix uint8, n uint) *Int {
	if lg, ok := log2PowerOfTwo(radix); ok {
		return z.Lsh(x, n*lg)
	}
	z.Set(x)
	chunk, chunkPow := maxRadixChunk(radix)
	for n > 0 {
		k := n
		m := chunkPow
		if k > chunk {
			k = chunk
		} else if k < chunk {
			p := uint64(1)
			for i := uint(0); i < k; i++ {
				p *= uint64(radix)
			}
			m = uint32(p)
		}
		z.MulSmall(z, m)
		n -= k
	}
	return z
}

// Lsh sets z = x << n (a logical left shift) and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	if x.n == 0 {
		return z.SetZero()
	}
	limbShift := int(n / 32)
	bitShift := uint(n % 32)
	newN := x.n + limbShift
	if bitShift != 0 {
		newN++
	}
	grow(newN)
	var limbs [maxLimbs]uint32
	if bitShift == 0 {
		copy(limbs[limbShift:limbShift+x.n], x.limbs[:x.n])
	} else {
		var carry uint32
		for i := 0; i < x.n; i++ {
			limbs[limbShift+i] = x.limbs[i]<<bitShift | carry
			carry = x.limbs[i] >> (32 - bitShift)
		}
		limbs[limbShift+x.n] = carry
	}
	z.limbs = limbs
	z.n = newN
	return z.norm()
}

// Add sets z = x + y and returns z. Used by the float formatter's exact
// shortest-digit search to add a scaled boundary width to a remainder.
func (z *Int) Add(x, y *Int) *Int {
	if x.n < y.n {
		x, y = y, x
	}
	n := x.n
	grow(n + 1)
	var limbs [maxLimbs]uint32
	var carry uint32
	for i := 0; i < y.n; i++ {
		var c uint32
		limbs[i], c = bits.Add32(x.limbs[i], y.limbs[i], carry)
		carry = c
	}
	for i := y.n; i < n; i++ {
		var c uint32
		limbs[i], c = bits.Add32(x.limbs[i], 0, carry)
		carry = c
	}
	limbs[n] = carry
	z.limbs = limbs
	z.n = n + 1
	return z.norm()
}

// Sub sets z = x - y and returns z. x must be >= y; the float formatter's
// digit-extraction loop only ever subtracts a remainder from the value it
// was just compared against, so this is always in range.
func (z *Int) Sub(x, y *Int) *Int {
	var limbs [maxLimbs]uint32
	var borrow uint32
	n := x.n
	for i := 0; i < n; i++ {
		var yl uint32
		if i < y.n {
			yl = y.limbs[i]
		}
		var b uint32
		limbs[i], b = bits.Sub32(x.limbs[i], yl, borrow)
		borrow = b
	}
	z.limbs = limbs
	z.n = n
	return z.norm()
}

// Cmp compares the magnitude of z and y, returning -1, 0 or +1 as
// z < y, z == y or z > y.
func (z *Int) Cmp(y *Int) int {
	if z.n != y.n {
		if z.n < y.n {
			return -1
		}
		return 1
	}
	for i := z.n - 1; i >= 0; i-- {
		if z.limbs[i] != y.limbs[i] {
			if z.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Hi64 returns the 64 most-significant bits of z, left-aligned so that the
// top bit of a nonzero z's top limb sits at bit 63 of the first word
// returned, along with whether any lower-order bits were truncated.
func (z *Int) Hi64() (hi uint64, truncated bool) {
	if z.n == 0 {
		return 0, false
	}
	s := uint(bits.LeadingZeros32(z.limbs[z.n-1]))
	hi = uint64(z.limbs[z.n-1]) << 32
	if z.n >= 2 {
		hi |= uint64(z.limbs[z.n-2])
	}
	hi <<= s
	if z.n >= 3 {
		lo := z.limbs[z.n-3]
		hi |= uint64(lo) >> (32 - s)
		truncated = lo<<s != 0
	}
	for i := 0; !truncated && i < z.n-3; i++ {
		truncated = z.limbs[i] != 0
	}
	return hi, truncated
}

// ShiftRightExtract returns the low bits of z >> n, without modifying z:
// only the two limbs starting at limb n/32 are read, so at most 64-n%32
// bits of z >> n are returned. Used by the power-of-two radix formatter
// (pow2RadixDigits) to read off one digit's group of bits at a time.
func (z *Int) ShiftRightExtract(n uint) uint64 {
	limbShift := int(n / 32)
	bitShift := uint(n % 32)
	if limbShift >= z.n {
		return 0
	}
	lo := uint64(0)
	if limbShift < z.n {
		lo = uint64(z.limbs[limbShift])
	}
	hi := uint64(0)
	if limbShift+1 < z.n {
		hi = uint64(z.limbs[limbShift+1])
	}
	v := lo | hi<<32
	return v >> bitShift
}

// TruncateTo sets z = z mod 2**n (keeps only the low n bits) and returns z.
func (z *Int) TruncateTo(n uint) *Int {
	limbShift := int(n / 32)
	bitShift := uint(n % 32)
	if limbShift >= z.n {
		return z
	}
	if bitShift != 0 {
		mask := uint32(1)<<bitShift - 1
		z.limbs[limbShift] &= mask
		limbShift++
	}
	for i := limbShift; i < z.n; i++ {
		z.limbs[i] = 0
	}
	return z.norm()
}
