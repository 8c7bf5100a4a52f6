package iv1

import "github.com/ivycodec/iv1/internal/vq"

// Fixed codec parameters. original_source/IV1.cpp hardcodes these same
// values (BlockImage<4,4>, VQGenerateDictFast<...>(x, 256, 1000)) for
// both the palette and detail passes; SPEC_FULL.md keeps them fixed
// rather than exposing them as tunables.
const (
	BlockW = 4
	BlockH = 4

	PaletteK = 256
	DetailK  = 256

	// TrainIterations bounds each VQ pass's assign/update loop.
	TrainIterations = 1000
)

// EncoderOptions configures Encode and EncodeFile.
type EncoderOptions struct {
	// Seed drives both VQ passes' dictionary initialization. Use
	// DefaultEncoderOptions for reproducible output.
	Seed int64
}

// DefaultEncoderOptions returns the options used when none are given:
// a fixed seed, for reproducible encodes across runs.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{Seed: vq.DefaultSeed}
}
