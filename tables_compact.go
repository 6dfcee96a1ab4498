// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build compact

package lexical

import "math"

// Exponent limits for the Eisel-Lemire medium path; identical to the
// default build's tables.go (these are plain constants, not a table, so
// the compact tag buys nothing by recomputing them).
const (
	f64MinExponentRoundToEven = -4
	f64MaxExponentRoundToEven = 23
	f64MinExponentFastPath    = -22
	f64MaxExponentFastPath    = 22
	f64MaxMantissaFastPath    = 1 << 53

	f32MinExponentRoundToEven = -17
	f32MaxExponentRoundToEven = 10
	f32MinExponentFastPath    = -10
	f32MaxExponentFastPath    = 10
	f32MaxMantissaFastPath    = 1 << 24
)

// maxDigitsFastU64 is unchanged under the compact build; it is a property
// of uint64's range, not a table entry.
const maxDigitsFastU64 = 19

// pow10tab, pow10f64tab and pow10f32tab trade the default build's baked-in
// literal tables for values computed once at package init via math.Pow,
// per the "compact" build tag's code-size/table-size tradeoff: identical
// contents, smaller .rodata, one extra multiply loop at startup.
var pow10tab = computePow10Uint64Table()

var pow10f64tab = computePow10Float64Table()

var pow10f32tab = computePow10Float32Table()

func computePow10Uint64Table() [19]uint64 {
	var t [19]uint64
	v := uint64(1)
	for i := range t {
		t[i] = v
		v *= 10
	}
	return t
}

func computePow10Float64Table() [23]float64 {
	var t [23]float64
	for i := range t {
		t[i] = math.Pow(10, float64(i))
	}
	return t
}

func computePow10Float32Table() [11]float32 {
	var t [11]float32
	for i := range t {
		t[i] = float32(math.Pow(10, float64(i)))
	}
	return t
}
