// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordstat

import (
	"bytes"
	"errors"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	"github.com/ulikunitz/zdata"

	"github.com/ulikunitz/xbits/internal/corpus"
)

var widths = []int{8, 16, 32, 64}

func TestNew(t *testing.T) {
	for _, w := range []int{0, 1, 7, 24, 128} {
		if _, err := New(w); !errors.Is(err, ErrWidth) {
			t.Errorf("New(%d) error %v; want %v", w, err, ErrWidth)
		}
	}
	for _, w := range widths {
		s, err := New(w)
		if err != nil {
			t.Fatalf("New(%d) error %s", w, err)
		}
		if len(s.Ones) != w+1 || len(s.TrailingZeros) != w+1 {
			t.Fatalf("New(%d): histograms have %d buckets; want %d",
				w, len(s.Ones), w+1)
		}
	}
}

func TestCountBytes(t *testing.T) {
	data := []byte{0x00, 0xff, 0x4b, 0xcb, 0x0f}
	s, err := Count(bytes.NewReader(data), 8)
	if err != nil {
		t.Fatalf("Count error %s", err)
	}
	want, _ := New(8)
	want.Words = 5
	want.Ones[0], want.Ones[8], want.Ones[4], want.Ones[5] = 1, 1, 2, 1
	want.LeadingOnes[0], want.LeadingOnes[8], want.LeadingOnes[2] = 3, 1, 1
	want.TrailingOnes[0], want.TrailingOnes[8] = 1, 1
	want.TrailingOnes[2], want.TrailingOnes[4] = 2, 1
	want.LeadingZeros[8], want.LeadingZeros[0] = 1, 2
	want.LeadingZeros[1], want.LeadingZeros[4] = 1, 1
	want.TrailingZeros[8], want.TrailingZeros[0] = 1, 4
	if diff := pretty.Diff(s, want); len(diff) > 0 {
		t.Fatalf("Count returned unexpected stats:\n%v", diff)
	}
	if n := s.TotalOnes(); n != 21 {
		t.Fatalf("TotalOnes() = %d; want %d", n, 21)
	}
	if n := s.TotalZeros(); n != 19 {
		t.Fatalf("TotalZeros() = %d; want %d", n, 19)
	}
}

func TestTail(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7}
	tests := [...]struct {
		width int
		words int64
		tail  int
	}{
		{8, 7, 0},
		{16, 3, 1},
		{32, 1, 3},
		{64, 0, 7},
	}
	for _, c := range tests {
		s, err := Count(bytes.NewReader(data), c.width)
		if err != nil {
			t.Fatalf("Count(width %d) error %s", c.width, err)
		}
		if s.Words != c.words || s.Tail != c.tail {
			t.Errorf("width %d: Words, Tail = %d, %d; want %d, %d",
				c.width, s.Words, s.Tail, c.words, c.tail)
		}
	}
}

func TestChunkedWrites(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	data := make([]byte, 10007)
	r.Read(data)
	for _, w := range widths {
		want, err := Count(bytes.NewReader(data), w)
		if err != nil {
			t.Fatalf("Count error %s", err)
		}
		s, _ := New(w)
		p := data
		for len(p) > 0 {
			k := r.Intn(13)
			if k > len(p) {
				k = len(p)
			}
			s.Write(p[:k])
			p = p[k:]
		}
		s.Flush()
		if diff := pretty.Diff(s, want); len(diff) > 0 {
			t.Fatalf("width %d: chunked writes differ:\n%v", w, diff)
		}
	}
}

func TestMerge(t *testing.T) {
	a, _ := Count(bytes.NewReader([]byte{0xff, 0x01}), 8)
	b, _ := Count(bytes.NewReader([]byte{0x80}), 8)
	if err := a.Merge(b); err != nil {
		t.Fatalf("Merge error %s", err)
	}
	if a.Words != 3 || a.LeadingOnes[1] != 1 || a.TrailingOnes[1] != 1 {
		t.Fatalf("Merge: unexpected result %# v", pretty.Formatter(a))
	}
	c, _ := New(16)
	if err := a.Merge(c); !errors.Is(err, ErrWidth) {
		t.Fatalf("Merge of different widths error %v; want %v",
			err, ErrWidth)
	}
}

func TestMean(t *testing.T) {
	if m := Mean([]int64{0, 0, 0}); m != 0 {
		t.Errorf("Mean of empty histogram = %g; want 0", m)
	}
	if m := Mean([]int64{1, 0, 3}); m != 1.5 {
		t.Errorf("Mean = %g; want 1.5", m)
	}
}

func checkInvariants(t *testing.T, name string, data []byte, s *Stats) {
	t.Helper()
	k := s.Width / 8
	if s.Words != int64(len(data)/k) || s.Tail != len(data)%k {
		t.Fatalf("%s: Words, Tail = %d, %d; want %d, %d", name,
			s.Words, s.Tail, len(data)/k, len(data)%k)
	}
	for _, h := range [][]int64{s.Ones, s.LeadingOnes, s.TrailingOnes,
		s.LeadingZeros, s.TrailingZeros} {
		var n int64
		for _, c := range h {
			n += c
		}
		if n != s.Words {
			t.Fatalf("%s: histogram sum %d; want %d", name, n, s.Words)
		}
	}
	var ones int64
	for _, b := range data[:len(data)-s.Tail] {
		ones += int64(bits.OnesCount8(b))
	}
	if g := s.TotalOnes(); g != ones {
		t.Fatalf("%s: TotalOnes() = %d; want %d", name, g, ones)
	}
	if g := s.TotalOnes() + s.TotalZeros(); g != s.Words*int64(s.Width) {
		t.Fatalf("%s: TotalOnes + TotalZeros = %d; want %d", name, g,
			s.Words*int64(s.Width))
	}
	// Every word has exactly one run touching its most significant bit.
	if g := s.Words - s.LeadingOnes[0] - s.LeadingZeros[0]; g != 0 {
		t.Fatalf("%s: %d words without leading run", name, g)
	}
}

func TestSilesia(t *testing.T) {
	if testing.Short() {
		t.Skip("Silesia corpus skipped in short mode")
	}
	files, err := corpus.Files(zdata.Silesia)
	if err != nil {
		t.Fatalf("corpus.Files(zdata.Silesia) error %s", err)
	}
	for _, f := range files {
		for _, w := range widths {
			s, err := Count(bytes.NewReader(f.Data), w)
			if err != nil {
				t.Fatalf("%s: Count error %s", f.Name, err)
			}
			checkInvariants(t, f.Name, f.Data, s)
		}
	}
}

func BenchmarkCount64(b *testing.B) {
	data := make([]byte, 1<<20)
	rand.New(rand.NewSource(1)).Read(data)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Count(bytes.NewReader(data), 64); err != nil {
			b.Fatalf("Count error %s", err)
		}
	}
}
