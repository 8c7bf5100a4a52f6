// Command iv1-dictview renders an .iv1 file's trained dictionaries as a
// single preview image, for inspecting what a trained codebook learned.
package main

import (
	"fmt"
	"os"

	"github.com/ivycodec/iv1"
	"github.com/ivycodec/iv1/internal/container"
	"github.com/ivycodec/iv1/support"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: iv1-dictview input.iv1 output.png\n")
}

func main() {
	if len(os.Args) != 3 {
		usage()
		os.Exit(0)
	}

	f, err := container.Load(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "iv1-dictview:", err)
		os.Exit(1)
	}

	view := iv1.DictView(f)
	if err := support.SavePNG(os.Args[2], view); err != nil {
		fmt.Fprintln(os.Stderr, "iv1-dictview:", err)
		os.Exit(1)
	}
}
