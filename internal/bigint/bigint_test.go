// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

func (z *Int) big() *big.Int {
	b := new(big.Int)
	for i := z.n - 1; i >= 0; i-- {
		b.Lsh(b, 32)
		b.Or(b, big.NewInt(int64(z.limbs[i])))
	}
	return b
}

func TestMulSmall(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	var z Int
	for i := 0; i < 2000; i++ {
		x := uint64(rnd.Uint32())<<32 | uint64(rnd.Uint32())
		m := rnd.Uint32()
		z.SetUint64(x)
		z.MulSmall(&z, m)
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), big.NewInt(int64(m)))
		if got := z.big(); got.Cmp(want) != 0 {
			t.Fatalf("MulSmall(%d, %d) = %s, want %s", x, m, got, want)
		}
	}
}

func TestMulPow5(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x := rnd.Uint64() % (1 << 53)
		n := uint(rnd.Intn(60))
		var z Int
		z.SetUint64(x)
		z.MulPow5(&z, n)
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil))
		if got := z.big(); got.Cmp(want) != 0 {
			t.Fatalf("MulPow5(%d, %d) = %s, want %s", x, n, got, want)
		}
	}
}

func TestMulPow10(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		x := rnd.Uint64() % (1 << 53)
		n := uint(rnd.Intn(40))
		var z Int
		z.SetUint64(x)
		z.MulPow10(&z, n)
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil))
		if got := z.big(); got.Cmp(want) != 0 {
			t.Fatalf("MulPow10(%d, %d) = %s, want %s", x, n, got, want)
		}
	}
}

func TestLsh(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		x := rnd.Uint64()
		n := uint(rnd.Intn(300))
		var z Int
		z.SetUint64(x)
		z.Lsh(&z, n)
		want := new(big.Int).Lsh(new(big.Int).SetUint64(x), n)
		if got := z.big(); got.Cmp(want) != 0 {
			t.Fatalf("Lsh(%d, %d) = %s, want %s", x, n, got, want)
		}
	}
}

func TestCmp(t *testing.T) {
	var a, b Int
	a.SetUint64(100)
	b.SetUint64(200)
	if a.Cmp(&b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Cmp(&a) <= 0 {
		t.Fatalf("expected b > a")
	}
	b.SetUint64(100)
	if a.Cmp(&b) != 0 {
		t.Fatalf("expected a == b")
	}
}

func TestHi64(t *testing.T) {
	var z Int
	z.SetUint64(1)
	z.Lsh(&z, 200)
	hi, trunc := z.Hi64()
	if hi != 1<<63 {
		t.Fatalf("Hi64() hi = %x, want %x", hi, uint64(1)<<63)
	}
	if trunc {
		t.Fatalf("Hi64() truncated = true for an exact power of two")
	}
	z.SetUint64(1)
	z.Lsh(&z, 200)
	var one Int
	one.SetUint64(1)
	z2 := new(Int)
	*z2 = z
	// (3<<200) + 1: the low bit lies far below the top 64 bits, so it is truncated.
	z.SetUint64(3)
	z.Lsh(&z, 200)
	z.AddSmall(&z, 1)
	_, trunc = z.Hi64()
	if !trunc {
		t.Fatalf("Hi64() truncated = false, want true for a value with low-order bits set")
	}
}

func TestAdd(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		x := rnd.Uint64()
		y := rnd.Uint64()
		var xz, yz, z Int
		xz.SetUint64(x)
		xz.Lsh(&xz, uint(rnd.Intn(200)))
		yz.SetUint64(y)
		yz.Lsh(&yz, uint(rnd.Intn(200)))
		z.Add(&xz, &yz)
		want := new(big.Int).Add(xz.big(), yz.big())
		if got := z.big(); got.Cmp(want) != 0 {
			t.Fatalf("Add(%s, %s) = %s, want %s", xz.big(), yz.big(), got, want)
		}
	}
}

func TestSub(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for i := 0; i < 500; i++ {
		var xz, yz, z Int
		xz.SetUint64(rnd.Uint64())
		xz.Lsh(&xz, uint(rnd.Intn(200)))
		// y <= x: derive y by right-shifting a copy of x's bigint value.
		want := new(big.Int).Rsh(xz.big(), uint(rnd.Intn(40)))
		yz.SetUint64(want.Uint64())
		if want.BitLen() > 64 {
			// reconstruct yz exactly from want for the rare wide case.
			buf := want.Bytes()
			yz.SetZero()
			for _, b := range buf {
				yz.MulSmall(&yz, 256)
				yz.AddSmall(&yz, uint32(b))
			}
		}
		z.Sub(&xz, &yz)
		expect := new(big.Int).Sub(xz.big(), want)
		if got := z.big(); got.Cmp(expect) != 0 {
			t.Fatalf("Sub(%s, %s) = %s, want %s", xz.big(), want, got, expect)
		}
	}
}

func TestTruncateAndExtract(t *testing.T) {
	var z Int
	z.SetUint64(0b1011)
	z.Lsh(&z, 4) // 0b1011_0000
	digit := z.ShiftRightExtract(4)
	if digit != 0b1011 {
		t.Fatalf("ShiftRightExtract = %b, want %b", digit, 0b1011)
	}
	z.TruncateTo(4)
	if !z.IsZero() {
		t.Fatalf("TruncateTo(4) = %v, want 0", z.big())
	}
}
