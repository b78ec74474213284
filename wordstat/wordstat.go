// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordstat computes histograms of the bit counts of the xbits
// package over a byte stream. The stream is interpreted as a sequence of
// little-endian words of 8, 16, 32 or 64 bits.
package wordstat

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ulikunitz/xbits"
)

// ErrWidth indicates an unsupported word width.
var ErrWidth = errors.New("wordstat: word width must be 8, 16, 32 or 64")

// Stats collects the histograms. Each histogram has Width+1 buckets; bucket
// i counts the words for which the function returned i.
type Stats struct {
	Width int
	Words int64

	Ones          []int64
	LeadingOnes   []int64
	TrailingOnes  []int64
	LeadingZeros  []int64
	TrailingZeros []int64

	// Tail is the number of bytes that didn't fill a word.
	Tail int

	buf [8]byte
	n   int
}

// New creates statistics for the given word width.
func New(width int) (*Stats, error) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return nil, ErrWidth
	}
	s := &Stats{Width: width}
	s.Ones = make([]int64, width+1)
	s.LeadingOnes = make([]int64, width+1)
	s.TrailingOnes = make([]int64, width+1)
	s.LeadingZeros = make([]int64, width+1)
	s.TrailingZeros = make([]int64, width+1)
	return s, nil
}

func record[T xbits.Unsigned](s *Stats, x T) {
	s.Words++
	s.Ones[xbits.OnesCount(x)]++
	s.LeadingOnes[xbits.LeadingOnes(x)]++
	s.TrailingOnes[xbits.TrailingOnes(x)]++
	s.LeadingZeros[xbits.LeadingZeros(x)]++
	s.TrailingZeros[xbits.TrailingZeros(x)]++
}

// word records a single word. The length of p must be Width/8.
func (s *Stats) word(p []byte) {
	switch s.Width {
	case 8:
		record(s, p[0])
	case 16:
		record(s, binary.LittleEndian.Uint16(p))
	case 32:
		record(s, binary.LittleEndian.Uint32(p))
	default:
		record(s, binary.LittleEndian.Uint64(p))
	}
}

// Write records all complete words in p. Bytes of an incomplete word are
// kept for the next call to Write. The function never fails.
func (s *Stats) Write(p []byte) (n int, err error) {
	n = len(p)
	k := s.Width / 8
	if s.n > 0 {
		c := copy(s.buf[s.n:k], p)
		s.n += c
		p = p[c:]
		if s.n < k {
			return n, nil
		}
		s.word(s.buf[:k])
		s.n = 0
	}
	for len(p) >= k {
		s.word(p[:k])
		p = p[k:]
	}
	s.n = copy(s.buf[:], p)
	return n, nil
}

// ReadFrom writes all data from r into the statistics.
func (s *Stats) ReadFrom(r io.Reader) (n int64, err error) {
	buf := make([]byte, 32<<10)
	for {
		k, err := r.Read(buf)
		s.Write(buf[:k])
		n += int64(k)
		if err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
	}
}

// Flush adds the bytes of an incomplete word to Tail and discards them.
func (s *Stats) Flush() {
	s.Tail += s.n
	s.n = 0
	s.buf = [8]byte{}
}

// Count computes the statistics for the data from r.
func Count(r io.Reader, width int) (s *Stats, err error) {
	if s, err = New(width); err != nil {
		return nil, err
	}
	if _, err = s.ReadFrom(r); err != nil {
		return nil, err
	}
	s.Flush()
	return s, nil
}

// Merge adds the statistics of o to s. Both must have the same width.
// Incomplete words of s and o are not combined.
func (s *Stats) Merge(o *Stats) error {
	if s.Width != o.Width {
		return ErrWidth
	}
	s.Words += o.Words
	s.Tail += o.Tail
	for i := 0; i <= s.Width; i++ {
		s.Ones[i] += o.Ones[i]
		s.LeadingOnes[i] += o.LeadingOnes[i]
		s.TrailingOnes[i] += o.TrailingOnes[i]
		s.LeadingZeros[i] += o.LeadingZeros[i]
		s.TrailingZeros[i] += o.TrailingZeros[i]
	}
	return nil
}

// TotalOnes returns the number of one bits in all recorded words.
func (s *Stats) TotalOnes() int64 {
	var t int64
	for i, c := range s.Ones {
		t += int64(i) * c
	}
	return t
}

// TotalZeros returns the number of zero bits in all recorded words.
func (s *Stats) TotalZeros() int64 {
	return s.Words*int64(s.Width) - s.TotalOnes()
}

// Mean returns the average value of the histogram h.
func Mean(h []int64) float64 {
	var sum, n int64
	for i, c := range h {
		sum += int64(i) * c
		n += c
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
