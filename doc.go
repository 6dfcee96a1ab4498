// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lexical implements correctly-rounded, allocation-light conversion
between numeric text and Go's native integer and floating-point types.

Every conversion is parameterized by two small value types instead of a
profusion of function variants: a Format describes the grammar a string is
read in or written in (digit radix, punctuation, digit-separator placement,
which sign/zero/exponent rules are required or forbidden), and an Options
holds the runtime knobs a Format's compile-time flags don't cover (special-
value spellings, rounding mode, significant-digit bounds, scientific-versus-
positional notation breaks). Both are built with a validating builder --
FormatBuilder and OptionsBuilder -- the same "accumulate fields, then one
fallible Build" shape used throughout this package for anything with
cross-field invariants:

    fmt, err := lexical.NewFormatBuilder().Radix(16).ExponentBase(16).BasePrefix('x').Build()
    opts := lexical.DefaultOptions()
    v, n, err := lexical.ParseFloat64(b, fmt, opts)

Parsing a float runs a tiered pipeline, fastest path first: a pure-integer
fast path for mantissas that fit exactly in a float64/float32, then the
Eisel-Lemire algorithm (a 128-bit-table-driven multiplication that resolves
the overwhelming majority of decimal inputs in a handful of instructions),
falling back to an arbitrary-precision decimal-to-binary conversion (see
internal/bigint) for the rare decimal input that lands so close to a
rounding boundary that Eisel-Lemire cannot certify it. Input in any radix
other than 10 always takes this exact path. Every tier is correctly rounded:
Options.Lossy opts out of the slow path in exchange for never falling back
to it, not out of correctness on the tiers that do run.

Formatting a float produces the shortest decimal (or, for a non-power-of-two
radix, shortest radix-r) digit string that reads back to the exact same
value, using a Steele & White-style free-format digit generator for radixes
that need an approximation search, and an exact bit-grouping expansion for
power-of-two radixes, which need none.

Parsing and formatting integers share the same Format/Options machinery but
skip the floating-point tiering entirely: WriteUint and ParseUint convert an
unsigned value digit-by-digit against the chosen radix, with a small amount
of loop unrolling for the common case of radix 10.

All errors are values of the single concrete type Error, carrying an
ErrorKind enum and a byte Position, rather than a family of sentinel error
variables -- callers switch on Kind and compare with errors.Is rather than
doing type assertions.
*/
package lexical
