package iv1

import (
	"fmt"

	"github.com/ivycodec/iv1/internal/blockimage"
	"github.com/ivycodec/iv1/internal/blockops"
	"github.com/ivycodec/iv1/internal/container"
	"github.com/ivycodec/iv1/internal/vq"
	"github.com/ivycodec/iv1/support"
)

// Decode runs the full IV1 decode pipeline: VQ-decode both
// dictionaries against their index streams, add the reconstructed
// residual back onto the reconstructed mean, and convert the resulting
// block image back to an RGB8 raster, cropping any mirror padding away.
func Decode(f *container.File) (support.RGB8Image, error) {
	if err := validateIndices(f.Indices0, f.Dict0.Rows()); err != nil {
		return support.RGB8Image{}, err
	}
	if err := validateIndices(f.Indices1, f.Dict1.Rows()); err != nil {
		return support.RGB8Image{}, err
	}

	means := vq.Decode(f.Dict0, f.Indices0)
	residuals := vq.Decode(f.Dict1, f.Indices1)
	blocks := blockops.AddMean(residuals, means)

	bi := &blockimage.BlockImage{
		Data: blocks, BW: BlockW, BH: BlockH,
		NBlocksX: f.NBlocksX, NBlocksY: f.NBlocksY,
		ActualW: f.ActualW, ActualH: f.ActualH,
	}
	return bi.ToRGB8(), nil
}

// DecodeFile reads an .iv1 file from inPath, decodes it, and writes the
// resulting image as a PNG to outPath.
func DecodeFile(inPath, outPath string) error {
	f, err := container.Load(inPath)
	if err != nil {
		return err
	}
	img, err := Decode(f)
	if err != nil {
		return err
	}
	return support.SavePNG(outPath, img)
}

func validateIndices(indices []uint16, k int) error {
	for _, idx := range indices {
		if int(idx) >= k {
			return fmt.Errorf("%w: index %d >= dictionary size %d", ErrIndexOutOfRange, idx, k)
		}
	}
	return nil
}
