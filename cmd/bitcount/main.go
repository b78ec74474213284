// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bitcount prints the number of ones, zeros, leading and trailing
// ones and zeros of unsigned integers and of the words of files.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/spf13/pflag"

	"github.com/ulikunitz/xbits/xlog"
)

const usageStr = `Usage: bitcount [OPTION]... [VALUE]...
Print the counts of one and zero bits for each VALUE of the given width. VALUE
may be decimal or use the prefixes 0x, 0o or 0b.

  -f, --file=FILE   print word statistics of FILE; - is standard input and
                    for a directory all files below it are used
  -h, --help        give this help
  -p, --pretty      print results as Go values
  -v, --verbose     verbose mode
  -V, --version     display version string
  -w, --width=W     bit width 8, 16, 32, 64, 128 or size; default 64

Report bugs using <https://github.com/ulikunitz/xbits/issues>.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help     = pflag.BoolP("help", "h", false, "")
		file     = pflag.StringP("file", "f", "", "")
		asValues = pflag.BoolP("pretty", "p", false, "")
		verbose  = pflag.BoolP("verbose", "v", false, "")
		showVer  = pflag.BoolP("version", "V", false, "")
		widthArg = pflag.StringP("width", "w", "64", "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *showVer {
		fmt.Printf("%s %s\n", cmdName, version)
		os.Exit(0)
	}

	var debug xlog.Logger
	if *verbose {
		debug = log.New(os.Stderr, cmdName+": ", 0)
	}

	width, err := parseWidth(*widthArg)
	if err != nil {
		log.Fatal(err)
	}
	xlog.Printf(debug, "width %d", width)

	if *file == "" && pflag.NArg() == 0 {
		log.Fatalf("for help, type %s -h", cmdName)
	}

	if *file != "" {
		xlog.Printf(debug, "counting words of %s", *file)
		fst, err := countFile(*file, width)
		if err != nil {
			log.Fatal(err)
		}
		if *asValues {
			pretty.Println(fst)
		} else {
			writeFileStats(os.Stdout, fst)
		}
	}

	if pflag.NArg() == 0 {
		return
	}
	reports := make([]Report, 0, pflag.NArg())
	for _, arg := range pflag.Args() {
		r, err := countValue(arg, width)
		if err != nil {
			log.Fatal(err)
		}
		xlog.Printf(debug, "%s: %+v", arg, r)
		reports = append(reports, r)
	}
	if *asValues {
		for _, r := range reports {
			pretty.Println(r)
		}
		return
	}
	writeReports(os.Stdout, reports)
}
