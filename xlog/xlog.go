// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog supports debug output that can be switched off.

A Logger is passed explicitly to the functions of this package. A nil Logger
disables the output and the arguments are not formatted at all. The
*log.Logger type of the standard library satisfies the interface.

The bitcount command uses it for its verbose mode:

	var debug xlog.Logger
	if *verbose {
		debug = log.New(os.Stderr, "bitcount: ", 0)
	}
	xlog.Printf(debug, "width %d", width)
*/
package xlog

import "fmt"

// Logger is the interface for the output of messages.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Enabled reports whether output to l will be written.
func Enabled(l Logger) bool { return l != nil }
