// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// digitValue returns the value 0..35 of an ASCII digit character c, or a
// value >= 36 if c is not an ASCII alphanumeric digit character in any
// supported radix. It is case-insensitive, matching the scanner's default
// (case sensitivity of non-digit tokens is controlled separately by the
// Format's case-sensitivity flags; digit letters a-z/A-Z are always
// case-folded, exactly as strconv.ParseInt treats hex digits).
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 255
	}
}

// isDigit reports whether c is a valid digit in the given radix.
func isDigit(c byte, radix uint8) bool {
	return digitValue(c) < int(radix)
}
