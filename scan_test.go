// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

// TestScanFloatDigitSeparatorPlacement exercises scanFloatDigits' per-group
// leading/internal/trailing/consecutive enforcement through ParseFloat64,
// across the Rust, Go, Perl, Python, Ruby and CXX14 dialects, with Standard
// (no separator) as a control.
func TestScanFloatDigitSeparatorPlacement(t *testing.T) {
	cases := []struct {
		name    string
		fmt     Format
		input   string
		wantErr bool
		wantVal float64
	}{
		// Rust and Go: separators allowed anywhere (leading, internal,
		// trailing) but never consecutive.
		{"Rust/internal", Rust, "1_000", false, 1000},
		{"Rust/consecutive", Rust, "1__2", true, 0},
		{"Rust/leading", Rust, "_1", false, 1},
		{"Rust/trailing", Rust, "1_", false, 1},
		{"Rust/exponent", Rust, "1e1_0", false, 1e10},
		{"Go/internal", Go, "1_000", false, 1000},
		{"Go/consecutive", Go, "1__2", true, 0},
		{"Go/leading", Go, "_1", false, 1},
		{"Go/trailing", Go, "1_", false, 1},
		{"Go/exponent", Go, "1e1_0", false, 1e10},

		// Perl: separators allowed anywhere, including consecutive.
		{"Perl/internal", Perl, "1_000", false, 1000},
		{"Perl/consecutive", Perl, "1__2", false, 12},
		{"Perl/leading", Perl, "_1", false, 1},
		{"Perl/trailing", Perl, "1_", false, 1},
		{"Perl/exponent", Perl, "1e1_0", false, 1e10},

		// Python and Ruby: internal only, PEP 515-style.
		{"Python/internal", Python, "1_000", false, 1000},
		{"Python/consecutive", Python, "1__2", true, 0},
		{"Python/leading", Python, "_1", true, 0},
		{"Python/trailing", Python, "1_", true, 0},
		{"Python/exponent", Python, "1e1_0", false, 1e10},
		{"Ruby/internal", Ruby, "1_000", false, 1000},
		{"Ruby/consecutive", Ruby, "1__2", true, 0},
		{"Ruby/leading", Ruby, "_1", true, 0},
		{"Ruby/trailing", Ruby, "1_", true, 0},
		{"Ruby/exponent", Ruby, "1e1_0", false, 1e10},

		// CXX14 uses a single-quote separator, internal only.
		{"CXX14/internal", CXX14, "1'000", false, 1000},
		{"CXX14/consecutive", CXX14, "1''2", true, 0},
		{"CXX14/leading", CXX14, "'1", true, 0},
		{"CXX14/trailing", CXX14, "1'", true, 0},
		{"CXX14/exponent", CXX14, "1.5e1'0", false, 1.5e10},

		// Standard declares no separator at all: an underscore is just an
		// invalid digit, so every case below leaves unconsumed input and
		// fails the full-string parse.
		{"Standard/internal", Standard, "1_000", true, 0},
		{"Standard/consecutive", Standard, "1__2", true, 0},
		{"Standard/leading", Standard, "_1", true, 0},
		{"Standard/trailing", Standard, "1_", true, 0},
		{"Standard/exponent", Standard, "1e1_0", true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, n, err := ParseFloat64([]byte(c.input), c.fmt, DefaultOptions())
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseFloat64(%q) = %v, %d, nil, want an error", c.input, v, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFloat64(%q) unexpected error: %v", c.input, err)
			}
			if n != len(c.input) {
				t.Fatalf("ParseFloat64(%q) consumed %d, want %d", c.input, n, len(c.input))
			}
			if v != c.wantVal {
				t.Fatalf("ParseFloat64(%q) = %v, want %v", c.input, v, c.wantVal)
			}
		})
	}
}

// TestParseUintDigitSeparatorPlacement is the integer-parser counterpart of
// TestScanFloatDigitSeparatorPlacement: ParseUintPartial's single-digit tail
// loop must enforce the same per-group placement and consecutive-separator
// rules as the float mantissa scanner.
func TestParseUintDigitSeparatorPlacement(t *testing.T) {
	cases := []struct {
		name    string
		fmt     Format
		input   string
		wantErr bool
		wantVal uint64
	}{
		{"Rust/internal", Rust, "1_000", false, 1000},
		{"Rust/consecutive", Rust, "1__2", true, 0},
		{"Rust/leading", Rust, "_1", false, 1},
		{"Rust/trailing", Rust, "1_", false, 1},

		{"Perl/consecutive", Perl, "1__2", false, 12},
		{"Perl/leading", Perl, "_1", false, 1},
		{"Perl/trailing", Perl, "1_", false, 1},

		{"Python/internal", Python, "1_000", false, 1000},
		{"Python/consecutive", Python, "1__2", true, 0},
		{"Python/leading", Python, "_1", true, 0},
		{"Python/trailing", Python, "1_", true, 0},

		{"Standard/internal", Standard, "1_000", true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, n, err := ParseUint[uint64]([]byte(c.input), c.fmt)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseUint(%q) = %d, %d, nil, want an error", c.input, v, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUint(%q) unexpected error: %v", c.input, err)
			}
			if n != len(c.input) {
				t.Fatalf("ParseUint(%q) consumed %d, want %d", c.input, n, len(c.input))
			}
			if v != c.wantVal {
				t.Fatalf("ParseUint(%q) = %d, want %d", c.input, v, c.wantVal)
			}
		})
	}
}
