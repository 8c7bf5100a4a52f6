// Package ivlog provides the verbose progress logging used by the VQ
// trainer and the CLI drivers, gated behind a single boolean so normal
// runs stay silent.
//
// Modeled on the teacher's cmd/gwebp/main.go progress lines
// (fmt.Fprintf(os.Stderr, ...) statements toggled by a -v flag) rather
// than a structured logging library: IV1's CLI has the same
// shape — occasional human-readable progress during a long encode, not
// machine-parsed log records.
package ivlog

import (
	"fmt"
	"os"
)

// Verbose gates Progressf output. CLI drivers set this from a -v flag.
var Verbose bool

// Progressf writes a progress line to stderr when Verbose is set.
func Progressf(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
