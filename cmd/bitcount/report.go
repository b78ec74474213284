// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/bits"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/ulikunitz/xbits"
	"github.com/ulikunitz/xbits/basics/u128"
	"github.com/ulikunitz/xbits/internal/corpus"
	"github.com/ulikunitz/xbits/wordstat"
)

var errWidth = errors.New("width must be 8, 16, 32, 64, 128 or size")

// parseWidth converts the argument of the --width option into a number of
// bits. The name "size" selects the width of the uint type.
func parseWidth(s string) (int, error) {
	switch s {
	case "size":
		return bits.UintSize, nil
	case "8", "16", "32", "64", "128":
		return strconv.Atoi(s)
	}
	return 0, errWidth
}

// Report holds all counts for a single value.
type Report struct {
	Value         string
	Width         int
	Ones          int
	Zeros         int
	LeadingOnes   int
	TrailingOnes  int
	LeadingZeros  int
	TrailingZeros int
}

func fill[T xbits.Unsigned](r *Report, x T) {
	r.Ones = xbits.OnesCount(x)
	r.Zeros = xbits.ZerosCount(x)
	r.LeadingOnes = xbits.LeadingOnes(x)
	r.TrailingOnes = xbits.TrailingOnes(x)
	r.LeadingZeros = xbits.LeadingZeros(x)
	r.TrailingZeros = xbits.TrailingZeros(x)
}

// countValue parses s and computes the counts for a value of the given
// width. Values that need more bits than available are rejected.
func countValue(s string, width int) (r Report, err error) {
	x, err := u128.Parse(s)
	if err != nil {
		return Report{}, err
	}
	if x.Len() > width {
		return Report{}, fmt.Errorf("value %s doesn't fit into %d bits",
			s, width)
	}
	r = Report{Value: s, Width: width}
	switch width {
	case 8:
		fill(&r, uint8(x.Lo))
	case 16:
		fill(&r, uint16(x.Lo))
	case 32:
		fill(&r, uint32(x.Lo))
	case 64:
		fill(&r, x.Lo)
	case 128:
		r.Ones = x.OnesCount()
		r.Zeros = x.ZerosCount()
		r.LeadingOnes = x.LeadingOnes()
		r.TrailingOnes = x.TrailingOnes()
		r.LeadingZeros = x.LeadingZeros()
		r.TrailingZeros = x.TrailingZeros()
	default:
		return Report{}, errWidth
	}
	return r, nil
}

// writeReports prints the reports as table.
func writeReports(w io.Writer, reports []Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Value", "Width", "Ones", "Zeros",
		"Leading Ones", "Trailing Ones", "Leading Zeros",
		"Trailing Zeros"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range reports {
		table.Append([]string{
			r.Value,
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Ones),
			strconv.Itoa(r.Zeros),
			strconv.Itoa(r.LeadingOnes),
			strconv.Itoa(r.TrailingOnes),
			strconv.Itoa(r.LeadingZeros),
			strconv.Itoa(r.TrailingZeros),
		})
	}
	table.Render()
}

// FileStats are the word statistics of a file or a directory tree.
type FileStats struct {
	Name  string
	Size  int64
	Files int
	Stats *wordstat.Stats
}

// countFile computes the word statistics for the named file. The name "-"
// selects standard input; for a directory all regular files below it are
// counted.
func countFile(name string, width int) (fst *FileStats, err error) {
	if name == "-" {
		return countReader(name, os.Stdin, width)
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return countReader(name, f, width)
	}
	return countDir(name, os.DirFS(name), width)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (n int, err error) {
	n, err = cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

func countReader(name string, r io.Reader, width int) (*FileStats, error) {
	cr := &countingReader{r: r}
	s, err := wordstat.Count(cr, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &FileStats{Name: name, Size: cr.n, Files: 1, Stats: s}, nil
}

func countDir(name string, fsys fs.FS, width int) (*FileStats, error) {
	files, err := corpus.Files(fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s, err := wordstat.New(width)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		fstat, err := wordstat.New(width)
		if err != nil {
			return nil, err
		}
		fstat.Write(f.Data)
		fstat.Flush()
		if err = s.Merge(fstat); err != nil {
			return nil, err
		}
	}
	return &FileStats{
		Name:  name,
		Size:  corpus.Size(files),
		Files: len(files),
		Stats: s,
	}, nil
}

// writeFileStats prints the histograms of the statistics as table.
func writeFileStats(w io.Writer, fst *FileStats) {
	s := fst.Stats
	fmt.Fprintf(w, "%s: %s in %d file(s), %d %d-bit words, %d tail bytes\n",
		fst.Name, humanize.Bytes(uint64(fst.Size)), fst.Files,
		s.Words, s.Width, s.Tail)
	fmt.Fprintf(w, "ones %d, zeros %d\n", s.TotalOnes(), s.TotalZeros())

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"N", "Ones", "Leading Ones",
		"Trailing Ones", "Leading Zeros", "Trailing Zeros"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i := 0; i <= s.Width; i++ {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatInt(s.Ones[i], 10),
			strconv.FormatInt(s.LeadingOnes[i], 10),
			strconv.FormatInt(s.TrailingOnes[i], 10),
			strconv.FormatInt(s.LeadingZeros[i], 10),
			strconv.FormatInt(s.TrailingZeros[i], 10),
		})
	}
	table.SetFooter([]string{"Mean",
		strconv.FormatFloat(wordstat.Mean(s.Ones), 'f', 3, 64),
		strconv.FormatFloat(wordstat.Mean(s.LeadingOnes), 'f', 3, 64),
		strconv.FormatFloat(wordstat.Mean(s.TrailingOnes), 'f', 3, 64),
		strconv.FormatFloat(wordstat.Mean(s.LeadingZeros), 'f', 3, 64),
		strconv.FormatFloat(wordstat.Mean(s.TrailingZeros), 'f', 3, 64),
	})
	table.Render()
}
