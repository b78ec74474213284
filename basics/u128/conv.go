// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package u128

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by Parse wrapped in a *NumError.
var (
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range")
)

// NumError records a failed conversion.
type NumError struct {
	Num string
	Err error
}

func (e *NumError) Error() string {
	return "u128.Parse: parsing " + strconv.Quote(e.Num) + ": " +
		e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

// digitVal returns the value of the digit c or 36 if c is not a digit.
func digitVal(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'z':
		return uint64(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return 36
}

// Parse converts the string s into a Uint128. The prefixes 0x, 0o and 0b
// select base 16, 8 and 2; otherwise the string is decimal. Single
// underscores may separate digits.
func Parse(s string) (x Uint128, err error) {
	num := s
	base := uint64(10)
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		}
	}
	if s == "" {
		return Zero, &NumError{num, ErrSyntax}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if i == 0 || i == len(s)-1 || s[i-1] == '_' {
				return Zero, &NumError{num, ErrSyntax}
			}
			continue
		}
		d := digitVal(c)
		if d >= base {
			return Zero, &NumError{num, ErrSyntax}
		}
		var overflow bool
		if x, overflow = x.Mul64(base); overflow {
			return Max, &NumError{num, ErrRange}
		}
		if x, overflow = x.Add(From64(d)); overflow {
			return Max, &NumError{num, ErrRange}
		}
	}
	return x, nil
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text returns the representation of x in the given base. The base must be
// in the range [2, 36].
func (x Uint128) Text(base int) string {
	if base < 2 || base > len(digits) {
		panic("u128: illegal base")
	}
	if x.IsZero() {
		return "0"
	}
	var buf [Size]byte
	i := len(buf)
	b := uint64(base)
	for !x.IsZero() {
		var r uint64
		x, r = x.QuoRem64(b)
		i--
		buf[i] = digits[r]
	}
	return string(buf[i:])
}

// String returns the decimal representation of x.
func (x Uint128) String() string { return x.Text(10) }

// Format supports the verbs b, o, d, x, X, s and v together with the flags
// '#', '-' and '0' and a width.
func (x Uint128) Format(f fmt.State, verb rune) {
	var s, prefix string
	switch verb {
	case 'b':
		s, prefix = x.Text(2), "0b"
	case 'o':
		s, prefix = x.Text(8), "0"
	case 'd', 's', 'v':
		s = x.Text(10)
	case 'x':
		s, prefix = x.Text(16), "0x"
	case 'X':
		s, prefix = strings.ToUpper(x.Text(16)), "0X"
	default:
		fmt.Fprintf(f, "%%!%c(u128.Uint128=%s)", verb, x.Text(10))
		return
	}
	if !f.Flag('#') {
		prefix = ""
	}
	w, ok := f.Width()
	n := len(prefix) + len(s)
	if !ok || w <= n {
		f.Write([]byte(prefix + s))
		return
	}
	pad := w - n
	switch {
	case f.Flag('-'):
		s = prefix + s + strings.Repeat(" ", pad)
	case f.Flag('0'):
		s = prefix + strings.Repeat("0", pad) + s
	default:
		s = strings.Repeat(" ", pad) + prefix + s
	}
	f.Write([]byte(s))
}
