package iv1

import (
	"fmt"

	"github.com/ivycodec/iv1/internal/blockimage"
	"github.com/ivycodec/iv1/internal/blockops"
	"github.com/ivycodec/iv1/internal/container"
	"github.com/ivycodec/iv1/internal/vq"
	"github.com/ivycodec/iv1/support"
)

// Encode runs the full IV1 encode pipeline (C7) over img: block
// partition and YUV weighting, palette VQ over per-block means,
// residual computation against the reconstructed means, and detail VQ
// over the residuals.
func Encode(img support.RGB8Image, opts EncoderOptions) (*container.File, error) {
	if img.Width == 0 || img.Height == 0 {
		return nil, ErrEmptyInput
	}

	bi := blockimage.FromImage(img, BlockW, BlockH)

	means := blockops.Mean(bi.Data)
	dict0, indices0, err := vq.Train(means, PaletteK, TrainIterations, vq.TrainOptions{Seed: opts.Seed})
	if err != nil {
		return nil, fmt.Errorf("iv1: training palette dictionary: %w", err)
	}

	reconstructedMeans := vq.Decode(dict0, indices0)
	residuals := blockops.SubMean(bi.Data, reconstructedMeans)
	dict1, indices1, err := vq.Train(residuals, DetailK, TrainIterations, vq.TrainOptions{Seed: opts.Seed})
	if err != nil {
		return nil, fmt.Errorf("iv1: training detail dictionary: %w", err)
	}

	return &container.File{
		NBlocksX: bi.NBlocksX, NBlocksY: bi.NBlocksY,
		ActualW: bi.ActualW, ActualH: bi.ActualH,
		Dict0: dict0, Indices0: indices0,
		Dict1: dict1, Indices1: indices1,
	}, nil
}

// EncodeFile loads a PNG from inPath, encodes it, and writes the
// resulting .iv1 file to outPath.
func EncodeFile(inPath, outPath string, opts EncoderOptions) error {
	img, err := support.LoadPNG(inPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPNGDecode, err)
	}
	f, err := Encode(img, opts)
	if err != nil {
		return err
	}
	return container.Save(outPath, f)
}

// EncodeToBase loads a PNG from inPath, encodes it, writes the codebooks
// and index streams to outBase+".iv1", and writes a PNG reconstruction
// (decode(encode(img))) to outBase itself, matching the iv1-encode and
// iv1-round CLI drivers' shared "in.png out_base" argument convention
// from spec.md §6.
func EncodeToBase(inPath, outBase string, opts EncoderOptions) error {
	img, err := support.LoadPNG(inPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPNGDecode, err)
	}
	f, err := Encode(img, opts)
	if err != nil {
		return err
	}
	if err := container.Save(outBase+".iv1", f); err != nil {
		return err
	}
	preview, err := Decode(f)
	if err != nil {
		return err
	}
	return support.SavePNG(outBase, preview)
}
