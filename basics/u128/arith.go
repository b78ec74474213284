// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package u128

import "math/bits"

// Add computes x+y and reports whether the sum wrapped around.
func (x Uint128) Add(y Uint128) (z Uint128, carry bool) {
	var c uint64
	z.Lo, c = bits.Add64(x.Lo, y.Lo, 0)
	z.Hi, c = bits.Add64(x.Hi, y.Hi, c)
	return z, c != 0
}

// Sub computes x-y and reports whether the difference wrapped around.
func (x Uint128) Sub(y Uint128) (z Uint128, borrow bool) {
	var b uint64
	z.Lo, b = bits.Sub64(x.Lo, y.Lo, 0)
	z.Hi, b = bits.Sub64(x.Hi, y.Hi, b)
	return z, b != 0
}

// Mul64 computes x*m and detects overflow. The returned product is truncated
// to 128 bits.
func (x Uint128) Mul64(m uint64) (z Uint128, overflow bool) {
	hi, lo := bits.Mul64(x.Lo, m)
	hh, hl := bits.Mul64(x.Hi, m)
	var c uint64
	z.Lo = lo
	z.Hi, c = bits.Add64(hl, hi, 0)
	return z, hh != 0 || c != 0
}

// QuoRem64 returns the quotient x/d and the remainder x%d. The function
// panics for d == 0.
func (x Uint128) QuoRem64(d uint64) (q Uint128, r uint64) {
	q.Hi, r = x.Hi/d, x.Hi%d
	q.Lo, r = bits.Div64(r, x.Lo, d)
	return q, r
}
