// Command iv1-round is the round-trip test driver: it writes the same
// out_base.iv1 + out_base (PNG reconstruction) pair as iv1-encode,
// retained per spec.md §6 as a dedicated round-trip entry point.
package main

import (
	"fmt"
	"os"

	"github.com/ivycodec/iv1"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: iv1-round input.png out_base\n")
}

func main() {
	if len(os.Args) != 3 {
		usage()
		os.Exit(0)
	}

	if err := iv1.EncodeToBase(os.Args[1], os.Args[2], iv1.DefaultEncoderOptions()); err != nil {
		fmt.Fprintln(os.Stderr, "iv1-round:", err)
		os.Exit(1)
	}
}
