// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"reflect"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.MinSignificantDigits != 1 {
		t.Fatalf("MinSignificantDigits = %d, want 1", o.MinSignificantDigits)
	}
	if o.MaxSignificantDigits < maxShortestDigits {
		t.Fatalf("MaxSignificantDigits = %d, too small to guarantee no shortest-digit truncation (need >= %d)",
			o.MaxSignificantDigits, maxShortestDigits)
	}
	if o.NegativeExponentBreak >= 0 || o.PositiveExponentBreak <= 0 {
		t.Fatalf("exponent breaks must straddle zero: %d/%d", o.NegativeExponentBreak, o.PositiveExponentBreak)
	}
}

func TestOptionsRebuildLaw(t *testing.T) {
	orig, err := NewOptionsBuilder().
		Lossy(true).
		MinSignificantDigits(3).
		MaxSignificantDigits(20).
		SetRoundMode(Truncate).
		TrimFloats(true).
		Exponent('E').
		DecimalPoint(',').
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	rebuilt, err := orig.Rebuild().Build()
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if !reflect.DeepEqual(rebuilt, orig) {
		t.Fatalf("Rebuild().Build() = %+v, want %+v", rebuilt, orig)
	}
}

func TestOptionsInvalidBounds(t *testing.T) {
	if _, err := NewOptionsBuilder().MinSignificantDigits(10).MaxSignificantDigits(5).Build(); err == nil {
		t.Fatalf("expected error when min > max")
	}
	if _, err := NewOptionsBuilder().MinSignificantDigits(0).Build(); err == nil {
		t.Fatalf("expected error for zero MinSignificantDigits")
	}
}

func TestOptionsInvalidSpecialStrings(t *testing.T) {
	if _, err := NewOptionsBuilder().NaNString([]byte("")).Build(); err == nil {
		t.Fatalf("expected error for empty NaN string")
	}
	if _, err := NewOptionsBuilder().NaNString([]byte("123")).Build(); err == nil {
		t.Fatalf("expected error for a NaN string not starting with a letter")
	}
	// infinity_string must share a case-insensitive prefix with inf_string.
	if _, err := NewOptionsBuilder().InfString([]byte("inf")).InfinityString([]byte("unrelated")).Build(); err == nil {
		t.Fatalf("expected error when infinity_string doesn't extend inf_string")
	}
}

func TestOptionsPunctuationCollision(t *testing.T) {
	if _, err := NewOptionsBuilder().Exponent('.').DecimalPoint('.').Build(); err == nil {
		t.Fatalf("expected error when exponent char equals decimal point")
	}
}
