// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// Flag is a single bit of a Format's digit-separator / requirement /
// prohibition / case-sensitivity policy. Flags combine with bitwise OR, the
// same way the packed flags word of a Format is built up internally.
type Flag uint64

// Digit-separator placement flags. Each of the three digit groups (integer,
// fraction, exponent) gets its own leading/internal/trailing/consecutive
// bit, plus one shared flag for whether a separator may appear adjacent to
// a special value string (e.g. "1_000" is fine, but does "na_n" parse?).
const (
	IntegerInternalDigitSeparator Flag = 1 << iota
	IntegerLeadingDigitSeparator
	IntegerTrailingDigitSeparator
	IntegerConsecutiveDigitSeparator
	FractionInternalDigitSeparator
	FractionLeadingDigitSeparator
	FractionTrailingDigitSeparator
	FractionConsecutiveDigitSeparator
	ExponentInternalDigitSeparator
	ExponentLeadingDigitSeparator
	ExponentTrailingDigitSeparator
	ExponentConsecutiveDigitSeparator
	SpecialDigitSeparator

	RequiredIntegerDigits
	RequiredFractionDigits
	RequiredExponentDigits
	RequiredMantissaDigits
	RequiredMantissaSign
	RequiredExponentSign
	RequiredExponentNotation

	NoPositiveMantissaSign
	NoPositiveExponentSign
	NoExponentNotation
	NoSpecial
	NoIntegerLeadingZeros
	NoFloatLeadingZeros
	NoExponentWithoutFraction

	CaseSensitiveSpecial
	CaseSensitiveExponent
	CaseSensitiveBasePrefix
	CaseSensitiveBaseSuffix
)

// digitSeparatorFlagMask ORs together every digit-separator placement flag;
// it is the flag set used by the predefined Ignore format (separators
// allowed anywhere, nothing else constrained).
const digitSeparatorFlagMask = IntegerInternalDigitSeparator | IntegerLeadingDigitSeparator |
	IntegerTrailingDigitSeparator | IntegerConsecutiveDigitSeparator |
	FractionInternalDigitSeparator | FractionLeadingDigitSeparator |
	FractionTrailingDigitSeparator | FractionConsecutiveDigitSeparator |
	ExponentInternalDigitSeparator | ExponentLeadingDigitSeparator |
	ExponentTrailingDigitSeparator | ExponentConsecutiveDigitSeparator |
	SpecialDigitSeparator

const requiredDigitsMask = RequiredIntegerDigits | RequiredFractionDigits |
	RequiredExponentDigits | RequiredMantissaDigits

// Packed layout of the meta word: 8 one-byte fields, low byte first.
const (
	shiftRadix = iota * 8
	shiftExponentBase
	shiftExponentRadix
	shiftDigitSeparator
	shiftDecimalPoint
	shiftExponentChar
	shiftBasePrefix
	shiftBaseSuffix
)

// Format is the number-format descriptor: a packed 128-bit value (two
// uint64 words in this implementation) that parameterizes every parse and
// format operation with radix, digit-separator policy, special-value
// handling, and sign/exponent rules. Format is a small, comparable value
// type; it carries no pointers and is safe to share across goroutines once
// built, exactly like the flags/precision fields of a decimal.Decimal.
type Format struct {
	flags Flag
	meta  uint64
}

func (f Format) byteAt(shift uint) byte { return byte(f.meta >> shift) }

// Radix returns the mantissa digit radix, in [2, 36].
func (f Format) Radix() uint8 { return f.byteAt(shiftRadix) }

// ExponentBase returns the base of the exponent multiplier: either Radix()
// or 2 (for formats like hex floats where the mantissa is read in one base
// but the exponent scales a power of two).
func (f Format) ExponentBase() uint8 { return f.byteAt(shiftExponentBase) }

// ExponentRadix returns the radix used to read/write the exponent's own
// digits, in [2, 36].
func (f Format) ExponentRadix() uint8 { return f.byteAt(shiftExponentRadix) }

// DigitSeparator returns the digit-separator byte, or 0 if none is allowed.
func (f Format) DigitSeparator() byte { return f.byteAt(shiftDigitSeparator) }

// DecimalPoint returns the radix-point byte expected while parsing.
func (f Format) DecimalPoint() byte { return f.byteAt(shiftDecimalPoint) }

// Exponent returns the exponent-introducing character expected while
// parsing (e.g. 'e').
func (f Format) Exponent() byte { return f.byteAt(shiftExponentChar) }

// BasePrefix returns the optional base-prefix character (e.g. 'x' for a
// "0x" prefix), or 0 if none is recognized.
func (f Format) BasePrefix() byte { return f.byteAt(shiftBasePrefix) }

// BaseSuffix returns the optional base-suffix character, or 0 if none is
// recognized.
func (f Format) BaseSuffix() byte { return f.byteAt(shiftBaseSuffix) }

// Has reports whether every bit of flag is set.
func (f Format) Has(flag Flag) bool { return f.flags&flag == flag }

// HasAny reports whether at least one bit of flag is set.
func (f Format) HasAny(flag Flag) bool { return f.flags&flag != 0 }

// LeadingDigitSeparator reports whether a separator may lead any digit group.
func (f Format) LeadingDigitSeparator() bool {
	return f.HasAny(IntegerLeadingDigitSeparator | FractionLeadingDigitSeparator | ExponentLeadingDigitSeparator)
}

// InternalDigitSeparator reports whether a separator may appear between
// digits of any group.
func (f Format) InternalDigitSeparator() bool {
	return f.HasAny(IntegerInternalDigitSeparator | FractionInternalDigitSeparator | ExponentInternalDigitSeparator)
}

// TrailingDigitSeparator reports whether a separator may trail any digit group.
func (f Format) TrailingDigitSeparator() bool {
	return f.HasAny(IntegerTrailingDigitSeparator | FractionTrailingDigitSeparator | ExponentTrailingDigitSeparator)
}

// ConsecutiveDigitSeparator reports whether two separators may appear back
// to back in any digit group.
func (f Format) ConsecutiveDigitSeparator() bool {
	return f.HasAny(IntegerConsecutiveDigitSeparator | FractionConsecutiveDigitSeparator | ExponentConsecutiveDigitSeparator)
}

// RequiredDigits reports whether any digit-count requirement is set.
func (f Format) RequiredDigits() bool { return f.HasAny(requiredDigitsMask) }

// isPow2Radix reports whether r is one of the radixes whose digits map
// directly onto a fixed number of bits (2, 4, 8, 16, 32).
func isPow2Radix(r uint8) bool {
	switch r {
	case 2, 4, 8, 16, 32:
		return true
	}
	return false
}

// log2OfPow2Radix returns log2(r) for a power-of-two radix.
func log2OfPow2Radix(r uint8) uint {
	switch r {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	}
	return 0
}

// IsValid reports whether f satisfies every cross-field invariant of a
// Format. It is total and side-effect free, as required by spec: calling
// it is always safe, even on a zero-value, never-built Format.
func (f Format) IsValid() bool {
	r := f.Radix()
	if r < 2 || r > 36 {
		return false
	}
	eb := f.ExponentBase()
	switch {
	case eb == r:
		// (r, r): the common case, any radix paired with itself.
	case eb == 2 && isPow2Radix(r):
		// (4,2), (8,2), (16,2), (32,2): a power-of-two mantissa radix
		// read digit-group-wise but scaled by powers of two.
	case eb == 4 && r == 16:
		// (16,4): hex floats scaled by base-4 "quads".
	default:
		return false
	}
	er := f.ExponentRadix()
	if er < 2 || er > 36 {
		return false
	}
	sep := f.DigitSeparator()
	if sep != 0 {
		dp := f.DecimalPoint()
		ec := f.Exponent()
		if sep == dp || sep == ec || sep == '+' || sep == '-' {
			return false
		}
		// a separator must not be usable as a digit in the mantissa radix.
		if d := digitValue(sep); d < int(r) {
			return false
		}
	}
	if f.DecimalPoint() == f.Exponent() {
		return false
	}
	if f.Has(NoExponentNotation) && f.Has(RequiredExponentNotation) {
		return false
	}
	if f.Has(NoPositiveMantissaSign) && f.Has(RequiredMantissaSign) {
		return false
	}
	if f.Has(NoPositiveExponentSign) && f.Has(RequiredExponentSign) {
		return false
	}
	return true
}

// FormatBuilder builds a Format, validating all of its cross-field
// constraints in Build, the same way decimal.Context validates precision
// and rounding mode before they're used.
type FormatBuilder struct {
	radix, exponentBase, exponentRadix   uint8
	digitSeparator, decimalPoint         byte
	exponentChar, basePrefix, baseSuffix byte
	flags                                Flag
}

// NewFormatBuilder returns a builder pre-populated with the common decimal
// defaults: radix 10, exponent base 10, exponent radix 10, '.' decimal
// point, 'e' exponent character, no separator, no prefix/suffix, no flags.
func NewFormatBuilder() *FormatBuilder {
	return &FormatBuilder{
		radix:         10,
		exponentBase:  10,
		exponentRadix: 10,
		decimalPoint:  '.',
		exponentChar:  'e',
	}
}

func (b *FormatBuilder) Radix(r uint8) *FormatBuilder         { b.radix = r; return b }
func (b *FormatBuilder) ExponentBase(r uint8) *FormatBuilder  { b.exponentBase = r; return b }
func (b *FormatBuilder) ExponentRadix(r uint8) *FormatBuilder { b.exponentRadix = r; return b }
func (b *FormatBuilder) DigitSeparator(c byte) *FormatBuilder { b.digitSeparator = c; return b }
func (b *FormatBuilder) DecimalPoint(c byte) *FormatBuilder   { b.decimalPoint = c; return b }
func (b *FormatBuilder) Exponent(c byte) *FormatBuilder       { b.exponentChar = c; return b }
func (b *FormatBuilder) BasePrefix(c byte) *FormatBuilder     { b.basePrefix = c; return b }
func (b *FormatBuilder) BaseSuffix(c byte) *FormatBuilder     { b.baseSuffix = c; return b }

// Flags sets (replacing any previous value) the full flag set at once.
func (b *FormatBuilder) Flags(f Flag) *FormatBuilder { b.flags = f; return b }

// WithFlags ORs additional flags into the builder's flag set.
func (b *FormatBuilder) WithFlags(f Flag) *FormatBuilder { b.flags |= f; return b }

func (b *FormatBuilder) pack() Format {
	meta := uint64(b.radix) << shiftRadix
	meta |= uint64(b.exponentBase) << shiftExponentBase
	meta |= uint64(b.exponentRadix) << shiftExponentRadix
	meta |= uint64(b.digitSeparator) << shiftDigitSeparator
	meta |= uint64(b.decimalPoint) << shiftDecimalPoint
	meta |= uint64(b.exponentChar) << shiftExponentChar
	meta |= uint64(b.basePrefix) << shiftBasePrefix
	meta |= uint64(b.baseSuffix) << shiftBaseSuffix
	return Format{flags: b.flags, meta: meta}
}

// IsValid reports whether the builder's current values would produce a
// valid Format; it never mutates the builder or allocates.
func (b *FormatBuilder) IsValid() bool { return b.pack().IsValid() }

// Build validates and returns the Format, or reports the first invariant
// violated. A failed build never returns a usable Format: the zero value
// is returned alongside the error, matching the "a failed build is a hard
// error and must not produce a descriptor" requirement.
func (b *FormatBuilder) Build() (Format, error) {
	f := b.pack()
	if !f.IsValid() {
		return Format{}, &Error{Kind: ErrInvalidFormat}
	}
	return f, nil
}

// Rebuild returns a new builder pre-populated with f's current values, so
// that f.Rebuild().Build() reproduces f (the options/format "rebuild law").
func (f Format) Rebuild() *FormatBuilder {
	return &FormatBuilder{
		radix:         f.Radix(),
		exponentBase:  f.ExponentBase(),
		exponentRadix: f.ExponentRadix(),
		digitSeparator: f.DigitSeparator(),
		decimalPoint:  f.DecimalPoint(),
		exponentChar:  f.Exponent(),
		basePrefix:    f.BasePrefix(),
		baseSuffix:    f.BaseSuffix(),
		flags:         f.flags,
	}
}
