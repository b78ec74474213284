// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xbits counts leading and trailing ones of fixed-width unsigned
// integers.
//
// The package math/bits provides LeadingZeros, TrailingZeros and OnesCount
// but no functions for the dual operations. They are computed here by
// complementing the argument first:
//
//	LeadingOnes(x)  == LeadingZeros(^x)
//	TrailingOnes(x) == TrailingZeros(^x)
//	ZerosCount(x)   == OnesCount(^x)
//
// The complement flips all bits of the type's width, so the result always
// lies in the range [0, W] where W is the bit size of the type. All functions
// are generic over the unsigned integer types and compile to the hardware
// bit-scan instructions that math/bits uses. The 128-bit width is supported
// by the package github.com/ulikunitz/xbits/basics/u128.
package xbits
