// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

func TestDigitValue(t *testing.T) {
	cases := []struct {
		c    byte
		want int
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'z', 35}, {'A', 10}, {'Z', 35}, {'+', 255}, {' ', 255},
	}
	for _, c := range cases {
		if got := digitValue(c.c); got != c.want {
			t.Errorf("digitValue(%q) = %d, want %d", c.c, got, c.want)
		}
	}
}
