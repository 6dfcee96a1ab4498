// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// RoundMode selects how the float formatter truncates a value to
// max_significant_digits. Unlike decimal.RoundingMode (six IEEE-754-style
// modes for arbitrary-precision arithmetic), the formatter here only ever
// needs to choose between rounding and hard truncation: every other
// rounding behavior is already handled by the shortest-round-trip digit
// search (shortestDigits) before max_significant_digits ever kicks in.
type RoundMode uint8

const (
	// Round rounds the last retained digit up when the first dropped digit
	// is at least half the radix (so a tie rounds up), and down otherwise.
	Round RoundMode = iota
	// Truncate drops digits past the limit without rounding.
	Truncate
)

const maxSpecialStringLen = 50

// Options holds the runtime-tunable knobs that a Format's compile-time
// flags don't cover: the special-value strings, lossy-parsing toggle, and
// the formatter's precision/notation/rounding policy. Options is a plain
// value; build one with OptionsBuilder and pass it by value or pointer to
// Parse*/Write* the way a decimal.Decimal is configured via SetPrec/SetMode
// before an operation rather than through package-level global state.
type Options struct {
	// Lossy, if true, allows the float parser to skip the slow path and
	// return a best-effort (Eisel-Lemire or fast-path) result even when it
	// cannot prove that result is correctly rounded.
	Lossy bool

	NaNString      []byte
	InfString      []byte
	InfinityString []byte

	// MinSignificantDigits and MaxSignificantDigits bound the digit count
	// emitted by the formatter; both are formatter-only and ignored by Parse*.
	MinSignificantDigits uint32
	MaxSignificantDigits uint32

	// NegativeExponentBreak and PositiveExponentBreak set the decimal
	// exponent range, exclusive, within which the formatter prefers
	// positional notation over scientific notation.
	NegativeExponentBreak int32
	PositiveExponentBreak int32

	RoundMode  RoundMode
	TrimFloats bool

	// Exponent and DecimalPoint are the characters the formatter writes;
	// they default to the same bytes as the Format used for the
	// corresponding parse, but may be overridden independently (a format
	// that *parses* either 'e' or 'E' still needs to pick one to *write*).
	Exponent     byte
	DecimalPoint byte
}

// DefaultOptions returns the default decimal options: not lossy, "NaN",
// "inf", "infinity", exponent breaks of -5/17 (matching Go's strconv 'g'
// format defaults), round-to-nearest, no trailing-zero trimming, and '.'/'e'
// punctuation. MaxSignificantDigits defaults well above the digit count any
// supported radix's shortest round-trip representation ever needs (53 for
// the widest case, base 2's binary64 encoding; 35 for base 3), so the default never
// truncates a shortest result; callers asking for fewer digits opt in
// explicitly.
func DefaultOptions() Options {
	o, err := NewOptionsBuilder().Build()
	if err != nil {
		panic("lexical: default options failed to validate: " + err.Error())
	}
	return o
}

// OptionsBuilder collects Options fields before one validating Build call,
// the same "set every field, then one fallible Build" shape FormatBuilder
// uses and decimal.Context uses for precision/rounding-mode setup.
type OptionsBuilder struct {
	o Options
}

// NewOptionsBuilder returns a builder pre-populated with the defaults
// described in DefaultOptions.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{o: Options{
		NaNString:              []byte("NaN"),
		InfString:              []byte("inf"),
		InfinityString:         []byte("infinity"),
		MinSignificantDigits:   1,
		MaxSignificantDigits:   128,
		NegativeExponentBreak:  -5,
		PositiveExponentBreak:  17,
		RoundMode:              Round,
		Exponent:               'e',
		DecimalPoint:           '.',
	}}
}

func (b *OptionsBuilder) Lossy(v bool) *OptionsBuilder                      { b.o.Lossy = v; return b }
func (b *OptionsBuilder) NaNString(s []byte) *OptionsBuilder                { b.o.NaNString = s; return b }
func (b *OptionsBuilder) InfString(s []byte) *OptionsBuilder                { b.o.InfString = s; return b }
func (b *OptionsBuilder) InfinityString(s []byte) *OptionsBuilder           { b.o.InfinityString = s; return b }
func (b *OptionsBuilder) MinSignificantDigits(n uint32) *OptionsBuilder     { b.o.MinSignificantDigits = n; return b }
func (b *OptionsBuilder) MaxSignificantDigits(n uint32) *OptionsBuilder     { b.o.MaxSignificantDigits = n; return b }
func (b *OptionsBuilder) NegativeExponentBreak(n int32) *OptionsBuilder    { b.o.NegativeExponentBreak = n; return b }
func (b *OptionsBuilder) PositiveExponentBreak(n int32) *OptionsBuilder    { b.o.PositiveExponentBreak = n; return b }
func (b *OptionsBuilder) SetRoundMode(m RoundMode) *OptionsBuilder          { b.o.RoundMode = m; return b }
func (b *OptionsBuilder) TrimFloats(v bool) *OptionsBuilder                 { b.o.TrimFloats = v; return b }
func (b *OptionsBuilder) Exponent(c byte) *OptionsBuilder                   { b.o.Exponent = c; return b }
func (b *OptionsBuilder) DecimalPoint(c byte) *OptionsBuilder               { b.o.DecimalPoint = c; return b }

func (b *OptionsBuilder) GetLossy() bool          { return b.o.Lossy }
func (b *OptionsBuilder) GetNaNString() []byte    { return b.o.NaNString }
func (b *OptionsBuilder) GetInfString() []byte    { return b.o.InfString }

// validSpecialString reports whether s satisfies the length and
// leading-letter requirements of nan_string/inf_string/infinity_string.
func validSpecialString(s []byte) bool {
	if len(s) == 0 || len(s) > maxSpecialStringLen {
		return false
	}
	c := s[0]
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// hasCaseInsensitivePrefix reports whether short is a case-insensitive
// prefix of long.
func hasCaseInsensitivePrefix(long, short []byte) bool {
	if len(short) > len(long) {
		return false
	}
	for i, c := range short {
		lc := long[i]
		if lowerASCII(c) != lowerASCII(lc) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsValid reports whether the builder's current values would build
// successfully, without allocating or mutating the builder.
func (b *OptionsBuilder) IsValid() bool {
	o := &b.o
	if !validSpecialString(o.NaNString) || !validSpecialString(o.InfString) || !validSpecialString(o.InfinityString) {
		return false
	}
	// inf_string must not equal, nor be a prefix-ambiguous superset of,
	// nan_string; infinity_string must share a prefix with inf_string so
	// the scanner's "longest match wins" rule (see spec Open Questions) is
	// well-defined. Concretely: inf_string may not itself start with
	// nan_string's text (and vice versa), and infinity_string must start
	// with inf_string's text case-insensitively.
	if hasCaseInsensitivePrefix(o.InfString, o.NaNString) || hasCaseInsensitivePrefix(o.NaNString, o.InfString) {
		return false
	}
	if hasCaseInsensitivePrefix(o.NaNString, o.InfinityString) || hasCaseInsensitivePrefix(o.InfinityString, o.NaNString) {
		return false
	}
	if !hasCaseInsensitivePrefix(o.InfinityString, o.InfString) {
		return false
	}
	if o.MinSignificantDigits == 0 || o.MaxSignificantDigits == 0 || o.MinSignificantDigits > o.MaxSignificantDigits {
		return false
	}
	if o.NegativeExponentBreak >= 0 || o.PositiveExponentBreak <= 0 {
		return false
	}
	if o.DecimalPoint == o.Exponent {
		return false
	}
	return true
}

// Build validates and returns the Options, or the first invariant violated.
func (b *OptionsBuilder) Build() (Options, error) {
	if !b.IsValid() {
		return Options{}, &Error{Kind: classifyOptionsError(&b.o)}
	}
	return b.o, nil
}

// classifyOptionsError re-walks the same checks as IsValid to report which
// one failed first, in the same order IsValid checks them.
func classifyOptionsError(o *Options) ErrorKind {
	switch {
	case !validSpecialString(o.NaNString):
		return ErrInvalidNanString
	case !validSpecialString(o.InfString):
		return ErrInvalidInfString
	case !validSpecialString(o.InfinityString):
		return ErrInvalidInfinityString
	case hasCaseInsensitivePrefix(o.InfString, o.NaNString), hasCaseInsensitivePrefix(o.NaNString, o.InfString):
		return ErrInvalidNanString
	case hasCaseInsensitivePrefix(o.NaNString, o.InfinityString), hasCaseInsensitivePrefix(o.InfinityString, o.NaNString):
		return ErrInvalidInfinityString
	case !hasCaseInsensitivePrefix(o.InfinityString, o.InfString):
		return ErrInvalidInfinityString
	case o.MinSignificantDigits == 0 || o.MaxSignificantDigits == 0 || o.MinSignificantDigits > o.MaxSignificantDigits:
		return ErrInvalidBounds
	case o.NegativeExponentBreak >= 0 || o.PositiveExponentBreak <= 0:
		return ErrInvalidBounds
	default:
		return ErrInvalidPunctuation
	}
}

// Rebuild returns a builder pre-populated with o's current values, so that
// o.Rebuild().Build() reproduces o.
func (o Options) Rebuild() *OptionsBuilder {
	return &OptionsBuilder{o: o}
}
