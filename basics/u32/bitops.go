// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package u32 provides table and shift based implementations of the bit
// counting functions for the uint32 type. They don't use math/bits and serve
// as an independent reference for the xbits package.
package u32

// ntzConst is the de Bruijn multiplier used by NTZ and NLZ.
const ntzConst = 0x04d7651f

// Helper table for de Bruijn algorithm by Danny DubÃ©. See Henry S.
// Warren, Jr. "Hacker's Delight" section 5-1 figure 5-26.
var ntzTable = [32]int8{
	0, 1, 2, 24, 3, 19, 6, 25,
	22, 4, 20, 10, 16, 7, 12, 26,
	31, 23, 18, 5, 21, 9, 15, 11,
	30, 17, 8, 14, 29, 13, 28, 27}

// NTZ computes the number of trailing zeros for an unsigned 32-bit integer.
func NTZ(x uint32) int {
	if x == 0 {
		return 32
	}
	x = (x & -x) * ntzConst
	return int(ntzTable[x>>27])
}

// NLZ computes the number of leading zeros for an unsigned 32-bit integer.
func NLZ(x uint32) int {
	// Smear left most bit to the right
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	// x is now 2^k-1; x+1 is a power of two or zero on overflow
	x++
	if x == 0 {
		return 0
	}
	x *= ntzConst
	return 32 - int(ntzTable[x>>27])
}

// NTO computes the number of trailing ones.
func NTO(x uint32) int { return NTZ(^x) }

// NLO computes the number of leading ones.
func NLO(x uint32) int { return NLZ(^x) }

// Pop computes the number of bits set in x. See "Hacker's Delight" section
// 5-1 figure 5-2.
func Pop(x uint32) int {
	x = x - ((x >> 1) & 0x55555555)
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	x = x + (x >> 8)
	x = x + (x >> 16)
	return int(x & 0x3f)
}

// Zeros computes the number of bits cleared in x.
func Zeros(x uint32) int { return Pop(^x) }
