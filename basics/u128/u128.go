// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package u128 provides an unsigned 128-bit integer type together with the
// bit counting functions of the xbits package for that width.
//
// Go has no 128-bit integer type. Uint128 stores the value in two uint64
// halves and derives every count from the math/bits functions on the halves.
package u128

import (
	"math/big"
	"math/bits"
)

// Size is the width of Uint128 in bits.
const Size = 128

// Uint128 is an unsigned 128-bit integer. The zero value represents 0.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

var (
	// Zero has no bits set.
	Zero = Uint128{}
	// Max has all 128 bits set.
	Max = Uint128{Hi: 1<<64 - 1, Lo: 1<<64 - 1}
)

// New creates the value hi*2^64 + lo.
func New(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// From64 converts a uint64 value.
func From64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether x is zero.
func (x Uint128) IsZero() bool { return x.Hi|x.Lo == 0 }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

// Not returns the complement of x.
func (x Uint128) Not() Uint128 { return Uint128{^x.Hi, ^x.Lo} }

// And computes x & y.
func (x Uint128) And(y Uint128) Uint128 { return Uint128{x.Hi & y.Hi, x.Lo & y.Lo} }

// Or computes x | y.
func (x Uint128) Or(y Uint128) Uint128 { return Uint128{x.Hi | y.Hi, x.Lo | y.Lo} }

// Xor computes x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 { return Uint128{x.Hi ^ y.Hi, x.Lo ^ y.Lo} }

// Lsh computes x << n.
func (x Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Hi: x.Lo << (n - 64)}
	}
	return Uint128{Hi: x.Hi<<n | x.Lo>>(64-n), Lo: x.Lo << n}
}

// Rsh computes x >> n.
func (x Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Lo: x.Hi >> (n - 64)}
	}
	return Uint128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
}

// OnesCount returns the number of one bits.
func (x Uint128) OnesCount() int {
	return bits.OnesCount64(x.Hi) + bits.OnesCount64(x.Lo)
}

// ZerosCount returns the number of zero bits.
func (x Uint128) ZerosCount() int { return x.Not().OnesCount() }

// LeadingZeros returns the number of leading zero bits; the result is 128
// for x == 0.
func (x Uint128) LeadingZeros() int {
	if x.Hi != 0 {
		return bits.LeadingZeros64(x.Hi)
	}
	return 64 + bits.LeadingZeros64(x.Lo)
}

// TrailingZeros returns the number of trailing zero bits; the result is 128
// for x == 0.
func (x Uint128) TrailingZeros() int {
	if x.Lo != 0 {
		return bits.TrailingZeros64(x.Lo)
	}
	return 64 + bits.TrailingZeros64(x.Hi)
}

// LeadingOnes returns the number of leading one bits; the result is 128 for
// Max.
func (x Uint128) LeadingOnes() int { return x.Not().LeadingZeros() }

// TrailingOnes returns the number of trailing one bits; the result is 128 for
// Max.
func (x Uint128) TrailingOnes() int { return x.Not().TrailingZeros() }

// Len returns the minimum number of bits required to represent x.
func (x Uint128) Len() int { return Size - x.LeadingZeros() }

// Big returns x as big integer.
func (x Uint128) Big() *big.Int {
	z := new(big.Int).SetUint64(x.Hi)
	z.Lsh(z, 64)
	return z.Or(z, new(big.Int).SetUint64(x.Lo))
}
