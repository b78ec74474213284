// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package u32

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestNTZ(t *testing.T) {
	tests := [...]struct {
		x uint32
		n int
	}{
		{0, 32},
		{1, 0},
		{2, 1},
		{0x80000000, 31},
		{0xffffffff, 0},
		{0x00010000, 16},
		{0x6, 1},
	}
	for _, c := range tests {
		n := NTZ(c.x)
		if n != c.n {
			t.Errorf("NTZ(%#x) = %d; want %d", c.x, n, c.n)
		}
	}
}

func TestNLZ(t *testing.T) {
	tests := [...]struct {
		x uint32
		n int
	}{
		{0, 32},
		{1, 31},
		{2, 30},
		{0x80000000, 0},
		{0xffffffff, 0},
		{0x00010000, 15},
		{0x7fffffff, 1},
	}
	for _, c := range tests {
		n := NLZ(c.x)
		if n != c.n {
			t.Errorf("NLZ(%#x) = %d; want %d", c.x, n, c.n)
		}
	}
}

func TestOnes(t *testing.T) {
	tests := [...]struct {
		x        uint32
		nlo, nto int
	}{
		{0, 0, 0},
		{0xffffffff, 32, 32},
		{0x80000001, 1, 1},
		{0xf000000f, 4, 4},
		{0xfffffffe, 31, 0},
		{0x7fffffff, 0, 31},
		{0x4b, 0, 2},
	}
	for _, c := range tests {
		if n := NLO(c.x); n != c.nlo {
			t.Errorf("NLO(%#x) = %d; want %d", c.x, n, c.nlo)
		}
		if n := NTO(c.x); n != c.nto {
			t.Errorf("NTO(%#x) = %d; want %d", c.x, n, c.nto)
		}
	}
}

func TestAgainstMathBits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		x := r.Uint32()
		// vary the number of leading and trailing ones
		switch i % 4 {
		case 1:
			x |= ^uint32(0) << (x % 32)
		case 2:
			x |= ^uint32(0) >> (x % 32)
		case 3:
			x &= ^uint32(0) >> (x % 32)
		}
		if g, w := NTZ(x), bits.TrailingZeros32(x); g != w {
			t.Fatalf("NTZ(%#x) = %d; want %d", x, g, w)
		}
		if g, w := NLZ(x), bits.LeadingZeros32(x); g != w {
			t.Fatalf("NLZ(%#x) = %d; want %d", x, g, w)
		}
		if g, w := Pop(x), bits.OnesCount32(x); g != w {
			t.Fatalf("Pop(%#x) = %d; want %d", x, g, w)
		}
		if g := Pop(x) + Zeros(x); g != 32 {
			t.Fatalf("Pop(%#x) + Zeros(%#x) = %d; want %d",
				x, x, g, 32)
		}
	}
}

func BenchmarkNLO(b *testing.B) {
	n := 0
	for i := 0; i < b.N; i++ {
		n += NLO(uint32(i) << 5)
	}
	_ = n
}
