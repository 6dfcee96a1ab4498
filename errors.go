// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

//go:generate stringer -type=ErrorKind

// ErrorKind identifies the way a parse or option build failed. Kinds are
// data, not sentinel errors: callers switch on Kind rather than comparing
// against package-level error values, the same way decimal.Decimal reports
// Accuracy as a small enum rather than a family of error variables.
type ErrorKind uint8

const (
	// ErrEmpty: the input contained no bytes at all.
	ErrEmpty ErrorKind = iota
	// ErrInvalidDigit: a byte was encountered that is not a valid digit,
	// separator, sign, or terminator at that position.
	ErrInvalidDigit
	// ErrEmptyMantissa: no mantissa digits (integer or fraction) were found.
	ErrEmptyMantissa
	// ErrEmptyFraction: a decimal point was present but no fraction digits followed.
	ErrEmptyFraction
	// ErrEmptyExponent: an exponent character was present but no exponent digits followed.
	ErrEmptyExponent
	// ErrMissingSign: the format requires a mantissa sign that was not present.
	ErrMissingSign
	// ErrMissingMantissaSign: the format requires a mantissa sign that was not present.
	ErrMissingMantissaSign
	// ErrMissingExponentSign: the format requires an exponent sign that was not present.
	ErrMissingExponentSign
	// ErrInvalidLeadingZeros: the format forbids the leading zeros that were found.
	ErrInvalidLeadingZeros
	// ErrExponentWithoutFraction: an exponent followed an integer-only
	// mantissa in a format that forbids this.
	ErrExponentWithoutFraction
	// ErrInvalidPositiveMantissaSign: a '+' mantissa sign was found in a
	// format that forbids it.
	ErrInvalidPositiveMantissaSign
	// ErrInvalidPositiveExponentSign: a '+' exponent sign was found in a
	// format that forbids it.
	ErrInvalidPositiveExponentSign
	// ErrInvalidExponent: exponent notation that the format forbids. The
	// scanner does not check NoExponentNotation, so no parse in this package
	// returns this kind.
	ErrInvalidExponent
	// ErrMissingExponent: the format requires exponent notation that was not present.
	ErrMissingExponent
	// ErrOverflow: the value's magnitude exceeds the target type's range.
	ErrOverflow
	// ErrUnderflow: the value's magnitude is smaller than the target type can represent.
	ErrUnderflow

	// ErrInvalidNanString: the configured NaN string is invalid (empty,
	// too long, non-ASCII-letter-leading, or ambiguous with another
	// special string).
	ErrInvalidNanString
	// ErrInvalidInfString: the configured Inf string is invalid.
	ErrInvalidInfString
	// ErrInvalidInfinityString: the configured Infinity string is invalid.
	ErrInvalidInfinityString
	// ErrInvalidPunctuation: a punctuation byte (separator, decimal
	// point, exponent character, sign) collides with another, or with a
	// digit of the mantissa radix.
	ErrInvalidPunctuation
	// ErrInvalidFormat: a Format failed one of its cross-field invariants.
	ErrInvalidFormat
	// ErrInvalidBounds: an Options field is outside its documented bounds
	// (e.g. min_significant_digits > max_significant_digits).
	ErrInvalidBounds
)

// Error is a positional parse or validation failure: all errors in this
// package are values of this concrete type, never a bare string or a
// wrapped stdlib error, so callers can always recover the byte offset and
// switch on Kind without a type assertion.
type Error struct {
	Kind ErrorKind
	// Position is the zero-based byte offset into the input at which the
	// error was detected. It is meaningful for every Kind except the
	// Options/Format validation kinds, for which it is always 0.
	Position int
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, &Error{Kind: ErrOverflow}) works without caring about
// Position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
