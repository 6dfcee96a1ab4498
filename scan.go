// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// maxSignificantDigitsSlowPath bounds how many significant digits the
// scanner retains verbatim for the slow path. Digits beyond this count
// cannot change a correctly-rounded binary64/binary32 result (the classic
// "too many digits to matter" bound, generalized with headroom for non-
// decimal radixes); they are still counted (so manyDigits and the decimal
// exponent stay correct) but not copied into the retained buffer.
const maxSignificantDigitsSlowPath = 512

// scanResult is the digit scanner's output: the parsed number plus the raw
// significant-digit run the slow path needs to reconstruct the exact value.
type scanResult struct {
	number
	digits      []byte // significant digits, radix-valued as ASCII bytes, no leading zeros
	pointPos    int    // value == digits (as a radix integer) * radix**(pointPos-len(digits))
	explicitExp int64  // the exponent-notation digits, signed, in exponent_base units
}

// sepPlacement decodes which positions a digit group's separator may
// occupy: before any digit in the group (leading), between two digits
// (internal), after the last digit (trailing), and immediately next to
// another separator (consecutive).
type sepPlacement struct {
	leading, internal, trailing, consecutive bool
}

func integerSepPlacement(fmt Format) sepPlacement {
	return sepPlacement{
		leading:     fmt.Has(IntegerLeadingDigitSeparator),
		internal:    fmt.Has(IntegerInternalDigitSeparator),
		trailing:    fmt.Has(IntegerTrailingDigitSeparator),
		consecutive: fmt.Has(IntegerConsecutiveDigitSeparator),
	}
}

func fractionSepPlacement(fmt Format) sepPlacement {
	return sepPlacement{
		leading:     fmt.Has(FractionLeadingDigitSeparator),
		internal:    fmt.Has(FractionInternalDigitSeparator),
		trailing:    fmt.Has(FractionTrailingDigitSeparator),
		consecutive: fmt.Has(FractionConsecutiveDigitSeparator),
	}
}

func exponentSepPlacement(fmt Format) sepPlacement {
	return sepPlacement{
		leading:     fmt.Has(ExponentLeadingDigitSeparator),
		internal:    fmt.Has(ExponentInternalDigitSeparator),
		trailing:    fmt.Has(ExponentTrailingDigitSeparator),
		consecutive: fmt.Has(ExponentConsecutiveDigitSeparator),
	}
}

// scanDigitRun reads a run of radix digits and (if hasSep) sep bytes from
// s[i:], enforcing p's placement rules, calling onDigit with each valid
// digit byte in order. It stops at the first byte that is neither a digit
// nor sep.
//
// A separator immediately following another separator is judged against
// p.consecutive regardless of where the pair falls in the group, matching
// "consecutive separators, if disallowed, raise InvalidDigit at the second
// separator": that check always takes priority. A lone separator with no
// digit seen yet in the group is judged against p.leading; a lone
// separator after a digit is provisionally accepted if either internal or
// trailing is allowed, then confirmed once it's clear which one it was --
// internal if a digit follows, trailing if the run ends first.
func scanDigitRun(s []byte, i int, radix uint8, sep byte, hasSep bool, p sepPlacement, onDigit func(byte)) (newIndex int, count int, err *Error) {
	n := len(s)
	sawDigit := false
	sepRun := 0
	sepAfterDigit := false
	for i < n {
		c := s[i]
		if hasSep && c == sep {
			switch {
			case sepRun > 0:
				if !p.consecutive {
					return i, count, &Error{Kind: ErrInvalidDigit, Position: i}
				}
			case !sawDigit:
				if !p.leading {
					return i, count, &Error{Kind: ErrInvalidDigit, Position: i}
				}
				sepAfterDigit = false
			default:
				if !p.internal && !p.trailing {
					return i, count, &Error{Kind: ErrInvalidDigit, Position: i}
				}
				sepAfterDigit = true
			}
			sepRun++
			i++
			continue
		}
		if !isDigit(c, radix) {
			break
		}
		if sepRun > 0 && sepAfterDigit && !p.internal {
			return i, count, &Error{Kind: ErrInvalidDigit, Position: i}
		}
		onDigit(c)
		count++
		sawDigit = true
		sepRun = 0
		i++
	}
	if sepRun > 0 && sepAfterDigit && !p.trailing {
		return i, count, &Error{Kind: ErrInvalidDigit, Position: i}
	}
	return i, count, nil
}

// scanDigitGroup is scanDigitRun specialized to append every valid digit
// byte to digits, the shape the mantissa's integer and fraction groups need.
func scanDigitGroup(s []byte, i int, radix uint8, sep byte, hasSep bool, p sepPlacement, digits []byte) (outDigits []byte, newIndex int, added int, err *Error) {
	newIndex, added, err = scanDigitRun(s, i, radix, sep, hasSep, p, func(c byte) {
		digits = append(digits, c)
	})
	return digits, newIndex, added, err
}

// scanFloatDigits reads a mantissa (with an optional radix point) and an
// optional exponent from s according to fmt, starting at the first byte
// after any sign. It returns the number of bytes consumed and an error at
// the position of the first invalid byte. Digit separators (including
// per-group placement and consecutive-separator rules), required/forbidden
// leading zeros, and required exponent notation are all enforced here, the
// same way decimal's mantissa scanner enforces radix-specific digit
// grouping while reading.
func scanFloatDigits(s []byte, fmt Format) (res scanResult, consumed int, err *Error) {
	radix := fmt.Radix()
	sep := fmt.DigitSeparator()
	hasSep := sep != 0 && fmt.HasAny(digitSeparatorFlagMask)

	i := 0
	n := len(s)

	// integer digits
	intStart := len(res.digits)
	var intDigits int
	res.digits, i, intDigits, err = scanDigitGroup(s, i, radix, sep, hasSep, integerSepPlacement(fmt), res.digits)
	if err != nil {
		return res, i, err
	}
	leadingZero := intDigits > 0 && res.digits[intStart] == '0'
	if leadingZero && fmt.Has(NoIntegerLeadingZeros) && intDigits > 1 {
		return res, i, &Error{Kind: ErrInvalidLeadingZeros, Position: 0}
	}

	hasIntDigits := intDigits > 0
	res.pointPos = len(res.digits)

	// fraction
	hasFraction := false
	var fracDigits int
	if i < n && s[i] == fmt.DecimalPoint() {
		hasFraction = true
		i++
		res.digits, i, fracDigits, err = scanDigitGroup(s, i, radix, sep, hasSep, fractionSepPlacement(fmt), res.digits)
		if err != nil {
			return res, i, err
		}
	}
	hasFracDigits := fracDigits > 0

	if !hasIntDigits && !hasFracDigits {
		return res, i, &Error{Kind: ErrEmptyMantissa, Position: 0}
	}
	if hasFraction && !hasFracDigits && fmt.Has(RequiredFractionDigits) {
		return res, i, &Error{Kind: ErrEmptyFraction, Position: 0}
	}
	if !hasFraction && fmt.Has(RequiredFractionDigits) {
		return res, i, &Error{Kind: ErrEmptyFraction, Position: 0}
	}

	// strip leading zeros we copied into res.digits (they don't change the
	// value but would throw off pointPos bookkeeping and the fast-path
	// mantissa below)
	res.digits, res.pointPos = trimLeadingZeros(res.digits, res.pointPos)
	res.digits = capSignificantDigits(res.digits)

	// exponent
	hasExp := false
	var expSign int64 = 1
	var expDigits int64
	if i < n && isExponentChar(s[i], fmt) {
		j := i + 1
		neg := false
		if j < n && (s[j] == '+' || s[j] == '-') {
			neg = s[j] == '-'
			if s[j] == '+' && fmt.Has(NoPositiveExponentSign) {
				return res, j, &Error{Kind: ErrInvalidPositiveExponentSign, Position: j}
			}
			j++
		} else if fmt.Has(RequiredExponentSign) {
			return res, j, &Error{Kind: ErrMissingExponentSign, Position: j}
		}
		expRadix := fmt.ExponentRadix()
		var expCount int
		j, expCount, err = scanDigitRun(s, j, expRadix, sep, hasSep, exponentSepPlacement(fmt), func(c byte) {
			expDigits = expDigits*int64(expRadix) + int64(digitValue(c))
		})
		if err != nil {
			return res, j, err
		}
		if expCount == 0 {
			return res, j, &Error{Kind: ErrEmptyExponent, Position: j}
		}
		if neg {
			expSign = -1
		}
		hasExp = true
		i = j
	}
	if !hasExp && fmt.Has(RequiredExponentNotation) {
		return res, i, &Error{Kind: ErrMissingExponent, Position: 0}
	}
	if hasExp && !hasFraction && fmt.Has(NoExponentWithoutFraction) {
		return res, i, &Error{Kind: ErrExponentWithoutFraction, Position: 0}
	}

	res.explicitExp = expSign * expDigits

	var used int
	res.mantissa, used, res.manyDigits = packMantissa(res.digits, radix)
	// The mantissa represents only the first `used` digits; any digits
	// dropped past that are folded into the exponent as if they had been
	// zero, the same adjustment decimal's own truncating conversions make.
	// This is only exercised by the radix-10 fast/Lemire tiers, where
	// exponent_base always equals the mantissa radix (see Format.IsValid),
	// so the units agree without a ratio conversion.
	res.exponent = int64(res.pointPos-used) + res.explicitExp

	return res, i, nil
}

// trimLeadingZeros removes leading '0' bytes from digits, integer and
// fraction alike, adjusting pointPos (the digit count before the decimal
// point, which goes negative once fraction zeros are dropped) to match. An
// all-zero digit run comes back empty.
func trimLeadingZeros(digits []byte, pointPos int) ([]byte, int) {
	i := 0
	for i < len(digits) && digits[i] == '0' {
		i++
	}
	if i == 0 {
		return digits, pointPos
	}
	return digits[i:], pointPos - i
}

// capSignificantDigits bounds digits to maxSignificantDigitsSlowPath entries:
// beyond that many significant digits, no further digit can change a
// correctly-rounded binary32/binary64 result, so the slow path's big integer
// never needs to grow past what bigint.Int can hold. If any truncated digit
// is nonzero, a single sentinel digit is appended in its place so the exact
// big-integer comparisons in slow.go still see the value as strictly greater
// than the truncated prefix — enough to break an exact-halfway tie correctly
// without otherwise perturbing the comparison.
func capSignificantDigits(digits []byte) []byte {
	if len(digits) <= maxSignificantDigitsSlowPath {
		return digits
	}
	kept := digits[:maxSignificantDigitsSlowPath]
	for _, c := range digits[maxSignificantDigitsSlowPath:] {
		if c != '0' {
			out := make([]byte, maxSignificantDigitsSlowPath+1)
			copy(out, kept)
			out[maxSignificantDigitsSlowPath] = '1'
			return out
		}
	}
	return kept
}

// isExponentChar reports whether c is the format's exponent marker,
// honoring the format's case-sensitivity flag.
func isExponentChar(c byte, fmt Format) bool {
	e := fmt.Exponent()
	if fmt.Has(CaseSensitiveExponent) {
		return c == e
	}
	return lowerASCII(c) == lowerASCII(e)
}

// packMantissa folds as many leading digits of the (radix-valued ASCII)
// digits slice as fit into a uint64 without overflow. used reports how many
// digits were actually folded in; manyDigits reports whether any
// significant digits had to be dropped (forcing the parser to fall back
// past the fast path for correctness).
func packMantissa(digits []byte, radix uint8) (mantissa uint64, used int, manyDigits bool) {
	const maxU64 = ^uint64(0)
	for i, c := range digits {
		v := uint64(digitValue(c))
		if mantissa > (maxU64-v)/uint64(radix) {
			manyDigits = true
			return mantissa, i, manyDigits
		}
		mantissa = mantissa*uint64(radix) + v
	}
	return mantissa, len(digits), manyDigits
}
