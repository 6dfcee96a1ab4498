// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// Predefined format constants cover the common language-dialect grammars a
// caller would otherwise have to assemble by hand from FormatBuilder. Each
// is built once at package init and never mutated afterward: a Format is a
// small value type, so callers are expected to copy these by value, the
// same way decimal.Context presets are handed out ready to use.
//
// The concrete flag bits backing each of these are part of the public ABI:
// a caller reading a JSON number or a Rust literal needs byte-for-byte the
// same grammar every language's own parser accepts, so these must not
// change shape across releases even though the packed representation
// itself is opaque.
var (
	// Standard is the package default: decimal, radix 10, 'e' exponent,
	// '.' point, no separators, no special restrictions beyond IsValid's
	// invariants. Equivalent to NewFormatBuilder().Build().
	Standard = mustFormat(NewFormatBuilder())

	// JSON matches RFC 8259 §6: no leading zeros in the integer part, no
	// '+' on the mantissa, no special values (NaN/Infinity are not valid
	// JSON numbers), no base prefix, case-insensitive 'e'/'E' exponent.
	JSON = mustFormat(NewFormatBuilder().
		WithFlags(NoIntegerLeadingZeros | NoPositiveMantissaSign | NoSpecial))

	// JSON5 relaxes JSON to additionally allow a leading '+', a leading or
	// trailing decimal point, and Infinity/NaN (ECMA-404's superset used by
	// config-file dialects).
	JSON5 = mustFormat(NewFormatBuilder().
		WithFlags(NoIntegerLeadingZeros))

	// Rust matches a Rust float/integer literal: digit separators ('_')
	// anywhere in the mantissa or exponent, but never consecutive, and
	// never adjacent to a special-value string.
	Rust = mustFormat(NewFormatBuilder().
		DigitSeparator('_').
		WithFlags(digitSeparatorFlagMask &^ (IntegerConsecutiveDigitSeparator |
			FractionConsecutiveDigitSeparator | ExponentConsecutiveDigitSeparator | SpecialDigitSeparator)))

	// Python matches a Python numeric literal: '_' separators internal
	// only (PEP 515 forbids a leading, trailing or consecutive '_'), no
	// special-value strings in literal form.
	Python = mustFormat(NewFormatBuilder().
		DigitSeparator('_').
		WithFlags(IntegerInternalDigitSeparator | FractionInternalDigitSeparator |
			ExponentInternalDigitSeparator | NoSpecial))

	// C99 matches a C99 floating constant: no digit separators, mandatory
	// fraction or exponent digits are not required by the grammar, and a
	// "0x" hex-float prefix is recognized.
	C99 = mustFormat(NewFormatBuilder().
		BasePrefix('x'))

	// CXX14 matches C++14's single-quote digit separators: internal only,
	// never consecutive, never adjacent to a leading/trailing position.
	CXX14 = mustFormat(NewFormatBuilder().
		DigitSeparator('\'').
		WithFlags(IntegerInternalDigitSeparator | FractionInternalDigitSeparator | ExponentInternalDigitSeparator))

	// CXX17 is CXX14 plus a recognized "0x" hex-float prefix (C++17 added
	// hexadecimal floating-point literals).
	CXX17 = mustFormat(NewFormatBuilder().
		DigitSeparator('\'').
		BasePrefix('x').
		WithFlags(IntegerInternalDigitSeparator | FractionInternalDigitSeparator | ExponentInternalDigitSeparator))

	// Go matches a Go numeric literal: '_' separators anywhere but never
	// consecutive, and a "0x" hex-float prefix.
	Go = mustFormat(NewFormatBuilder().
		DigitSeparator('_').
		BasePrefix('x').
		WithFlags(digitSeparatorFlagMask &^ (IntegerConsecutiveDigitSeparator |
			FractionConsecutiveDigitSeparator | ExponentConsecutiveDigitSeparator | SpecialDigitSeparator)))

	// Java matches a Java floating literal: no digit separators in the
	// fractional/exponent part before the 'f'/'d' suffix lands (those
	// suffixes are a collaborator's concern, not this grammar's), required
	// exponent digits.
	Java = mustFormat(NewFormatBuilder().
		WithFlags(RequiredExponentDigits))

	// JavaScript matches an ECMAScript numeric literal: no leading zeros,
	// no digit separators, case-insensitive exponent marker.
	JavaScript = mustFormat(NewFormatBuilder().
		WithFlags(NoIntegerLeadingZeros))

	// Perl allows '_' separators anywhere, including consecutive and
	// leading/trailing, matching Perl's notoriously permissive literal
	// grammar.
	Perl = mustFormat(NewFormatBuilder().
		DigitSeparator('_').
		WithFlags(digitSeparatorFlagMask))

	// Ruby matches a Ruby numeric literal: '_' separators internal only.
	// Digits on either side of the point are not required by this format.
	Ruby = mustFormat(NewFormatBuilder().
		DigitSeparator('_').
		WithFlags(IntegerInternalDigitSeparator | FractionInternalDigitSeparator | ExponentInternalDigitSeparator))

	// Hex is a bare hexadecimal-mantissa format with a binary exponent
	// ("p" notation, base 2): radix 16, exponent_base 2, exponent char 'p'.
	Hex = mustFormat(NewFormatBuilder().
		Radix(16).ExponentBase(2).Exponent('p'))

	// HexFloat is Hex with a "0x" base prefix, matching C99/C++17's
	// printf %a / hexfloat literal grammar.
	HexFloat = mustFormat(NewFormatBuilder().
		Radix(16).ExponentBase(2).Exponent('p').BasePrefix('x'))

	// Binary is a bare binary-mantissa format with its own base-2 exponent
	// notation.
	Binary = mustFormat(NewFormatBuilder().
		Radix(2).ExponentBase(2).ExponentRadix(2).Exponent('p'))

	// Octal is a bare octal-mantissa format.
	Octal = mustFormat(NewFormatBuilder().
		Radix(8).ExponentBase(2).ExponentRadix(8).Exponent('p'))

	// Ignore is the maximally permissive format: digit separators allowed
	// in any position, including adjacent to a special-value string, and
	// no requirement or prohibition flags set. Useful for round-tripping
	// whatever a formatter configured with TrimFloats/custom punctuation
	// produced.
	Ignore = mustFormat(NewFormatBuilder().
		DigitSeparator('_').
		WithFlags(digitSeparatorFlagMask))
)

// mustFormat builds b, panicking if the predefined dialect's own flags
// don't satisfy Format's invariants -- a bug in this file, not a runtime
// condition any caller can hit.
func mustFormat(b *FormatBuilder) Format {
	f, err := b.Build()
	if err != nil {
		panic("lexical: predefined format failed to validate: " + err.Error())
	}
	return f
}
