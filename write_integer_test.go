// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math/rand"
	"strconv"
	"testing"
)

func TestWriteUintDecimalMatchesStrconv(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	var buf [64]byte
	for i := 0; i < 2000; i++ {
		v := rnd.Uint64()
		n := WriteUint(v, buf[:], 10)
		got := string(buf[:n])
		want := strconv.FormatUint(v, 10)
		if got != want {
			t.Fatalf("WriteUint(%d, radix=10) = %q, want %q", v, got, want)
		}
	}
}

func TestWriteUintEveryRadixMatchesStrconv(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for radix := uint8(2); radix <= 36; radix++ {
		var buf [64]byte
		for i := 0; i < 200; i++ {
			v := rnd.Uint64()
			n := WriteUint(v, buf[:], radix)
			got := string(buf[:n])
			want := strconv.FormatUint(v, int(radix))
			if got != want {
				t.Fatalf("WriteUint(%d, radix=%d) = %q, want %q", v, radix, got, want)
			}
		}
	}
}

func TestWriteUintZero(t *testing.T) {
	var buf [8]byte
	n := WriteUint(uint64(0), buf[:], 10)
	if string(buf[:n]) != "0" {
		t.Fatalf("WriteUint(0) = %q, want \"0\"", string(buf[:n]))
	}
}

func TestUintBufferSizeNeverTruncates(t *testing.T) {
	for radix := uint8(2); radix <= 36; radix++ {
		size := UintBufferSize[uint64](radix)
		var buf [128]byte
		n := WriteUint(^uint64(0), buf[:], radix)
		if n > size {
			t.Fatalf("radix %d: UintBufferSize = %d but WriteUint(MaxUint64) wrote %d bytes", radix, size, n)
		}
	}
}
