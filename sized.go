// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbits

import "math/bits"

// The functions below complement math/bits for the named widths. The
// counterparts OnesCount*, LeadingZeros* and TrailingZeros* are found there.

// --- ZerosCount ---

// ZerosCount8 returns the number of zero bits in x.
func ZerosCount8(x uint8) int { return bits.OnesCount8(^x) }

// ZerosCount16 returns the number of zero bits in x.
func ZerosCount16(x uint16) int { return bits.OnesCount16(^x) }

// ZerosCount32 returns the number of zero bits in x.
func ZerosCount32(x uint32) int { return bits.OnesCount32(^x) }

// ZerosCount64 returns the number of zero bits in x.
func ZerosCount64(x uint64) int { return bits.OnesCount64(^x) }

// --- LeadingOnes ---

// LeadingOnes8 returns the number of leading one bits in x; the result is 8
// for x == 0xff.
func LeadingOnes8(x uint8) int { return bits.LeadingZeros8(^x) }

// LeadingOnes16 returns the number of leading one bits in x; the result is 16
// for x == 0xffff.
func LeadingOnes16(x uint16) int { return bits.LeadingZeros16(^x) }

// LeadingOnes32 returns the number of leading one bits in x; the result is 32
// for x == 1<<32-1.
func LeadingOnes32(x uint32) int { return bits.LeadingZeros32(^x) }

// LeadingOnes64 returns the number of leading one bits in x; the result is 64
// for x == 1<<64-1.
func LeadingOnes64(x uint64) int { return bits.LeadingZeros64(^x) }

// --- TrailingOnes ---

// TrailingOnes8 returns the number of trailing one bits in x; the result is 8
// for x == 0xff.
func TrailingOnes8(x uint8) int { return bits.TrailingZeros8(^x) }

// TrailingOnes16 returns the number of trailing one bits in x; the result is
// 16 for x == 0xffff.
func TrailingOnes16(x uint16) int { return bits.TrailingZeros16(^x) }

// TrailingOnes32 returns the number of trailing one bits in x; the result is
// 32 for x == 1<<32-1.
func TrailingOnes32(x uint32) int { return bits.TrailingZeros32(^x) }

// TrailingOnes64 returns the number of trailing one bits in x; the result is
// 64 for x == 1<<64-1.
func TrailingOnes64(x uint64) int { return bits.TrailingZeros64(^x) }
