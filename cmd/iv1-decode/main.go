// Command iv1-decode expands an .iv1 file back into a PNG image.
package main

import (
	"fmt"
	"os"

	"github.com/ivycodec/iv1"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: iv1-decode input.iv1 output.png\n")
}

func main() {
	if len(os.Args) != 3 {
		usage()
		os.Exit(0)
	}

	if err := iv1.DecodeFile(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "iv1-decode:", err)
		os.Exit(1)
	}
}
