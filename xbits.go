// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbits

import (
	"math/bits"
	"unsafe"
)

// Unsigned is the constraint for all unsigned integer types including
// uintptr.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// UintSize is the size of a uint in bits.
const UintSize = bits.UintSize

// Width returns the number of bits of the type T.
func Width[T Unsigned]() int {
	var x T
	return 8 * int(unsafe.Sizeof(x))
}

// Not returns the complement of x. All bits of the width of T are flipped.
func Not[T Unsigned](x T) T { return ^x }

// OnesCount returns the number of one bits in x.
func OnesCount[T Unsigned](x T) int {
	switch unsafe.Sizeof(x) {
	case 1:
		return bits.OnesCount8(uint8(x))
	case 2:
		return bits.OnesCount16(uint16(x))
	case 4:
		return bits.OnesCount32(uint32(x))
	default:
		return bits.OnesCount64(uint64(x))
	}
}

// ZerosCount returns the number of zero bits in x.
func ZerosCount[T Unsigned](x T) int { return OnesCount(^x) }

// LeadingZeros returns the number of leading zero bits in x. The result is
// the width of T for x == 0.
func LeadingZeros[T Unsigned](x T) int {
	switch unsafe.Sizeof(x) {
	case 1:
		return bits.LeadingZeros8(uint8(x))
	case 2:
		return bits.LeadingZeros16(uint16(x))
	case 4:
		return bits.LeadingZeros32(uint32(x))
	default:
		return bits.LeadingZeros64(uint64(x))
	}
}

// TrailingZeros returns the number of trailing zero bits in x. The result is
// the width of T for x == 0.
func TrailingZeros[T Unsigned](x T) int {
	switch unsafe.Sizeof(x) {
	case 1:
		return bits.TrailingZeros8(uint8(x))
	case 2:
		return bits.TrailingZeros16(uint16(x))
	case 4:
		return bits.TrailingZeros32(uint32(x))
	default:
		return bits.TrailingZeros64(uint64(x))
	}
}

// LeadingOnes returns the number of leading one bits in x. The result is the
// width of T if all bits of x are set.
func LeadingOnes[T Unsigned](x T) int { return LeadingZeros(^x) }

// TrailingOnes returns the number of trailing one bits in x. The result is
// the width of T if all bits of x are set.
func TrailingOnes[T Unsigned](x T) int { return TrailingZeros(^x) }

// Max returns the value of T with all bits set.
func Max[T Unsigned]() T { return ^T(0) }
