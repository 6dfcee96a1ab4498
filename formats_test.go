// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

func TestPredefinedFormatsValid(t *testing.T) {
	all := map[string]Format{
		"Standard": Standard, "JSON": JSON, "JSON5": JSON5, "Rust": Rust,
		"Python": Python, "C99": C99, "CXX14": CXX14, "CXX17": CXX17,
		"Go": Go, "Java": Java, "JavaScript": JavaScript, "Perl": Perl,
		"Ruby": Ruby, "Hex": Hex, "HexFloat": HexFloat, "Binary": Binary,
		"Octal": Octal, "Ignore": Ignore,
	}
	if len(all) < 16 {
		t.Fatalf("only %d predefined formats, want >= 16", len(all))
	}
	for name, f := range all {
		if !f.IsValid() {
			t.Errorf("%s: not valid", name)
		}
	}
}

func TestJSONFormatFlags(t *testing.T) {
	if JSON.Has(RequiredMantissaSign) {
		t.Fatalf("JSON should not require a mantissa sign")
	}
	if !JSON.Has(NoPositiveMantissaSign) {
		t.Fatalf("JSON should forbid a '+' mantissa sign")
	}
	if !JSON.Has(NoIntegerLeadingZeros) {
		t.Fatalf("JSON should forbid leading zeros")
	}
	if !JSON.Has(NoSpecial) {
		t.Fatalf("JSON should forbid NaN/Infinity literals")
	}
}

func TestRadixFormats(t *testing.T) {
	if Hex.Radix() != 16 || Hex.ExponentBase() != 2 || Hex.Exponent() != 'p' {
		t.Fatalf("Hex format fields wrong: radix=%d base=%d exp=%q", Hex.Radix(), Hex.ExponentBase(), Hex.Exponent())
	}
	if HexFloat.BasePrefix() != 'x' {
		t.Fatalf("HexFloat should carry a \"0x\" base prefix")
	}
	if Binary.Radix() != 2 || Octal.Radix() != 8 {
		t.Fatalf("Binary/Octal radixes wrong: %d/%d", Binary.Radix(), Octal.Radix())
	}
}
