// Command iv1-encode compresses a PNG image into an .iv1 file and a PNG
// reconstruction preview.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ivycodec/iv1"
	"github.com/ivycodec/iv1/internal/ivlog"
	"github.com/ivycodec/iv1/internal/vq"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: iv1-encode [-seed N] input.png out_base\n")
}

func main() {
	seed := flag.Int64("seed", vq.DefaultSeed, "VQ dictionary training seed")
	verbose := flag.Bool("v", false, "log VQ training progress to stderr")
	flag.Usage = usage
	flag.Parse()
	ivlog.Verbose = *verbose

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(0)
	}

	opts := iv1.EncoderOptions{Seed: *seed}
	if err := iv1.EncodeToBase(args[0], args[1], opts); err != nil {
		fmt.Fprintln(os.Stderr, "iv1-encode:", err)
		os.Exit(1)
	}
}
