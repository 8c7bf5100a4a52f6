// Package blockimage implements the IV1 block/YUV-weighted image model:
// partitioning an RGB8 raster into fixed-size blocks, mirror-repeat
// padding non-aligned images, and converting between block-row-major
// feature matrices and RGB8 rasters.
//
// Grounded on original_source/IV1BlockImage.h for the transform
// semantics, reworked into idiomatic Go rather than transliterated — in
// particular the vertical mirror-pad here is derived directly from the
// invariant "padded pixel at (x, H+r) copies real pixel at (x, H-1-r)"
// instead of reusing the original's buggy rowStride/newRowStride mixup
// (see SPEC_FULL.md §9).
package blockimage

import (
	"math"

	"github.com/ivycodec/iv1/internal/matrix"
	"github.com/ivycodec/iv1/internal/yuvweight"
	"github.com/ivycodec/iv1/support"
)

const channels = 3

// BlockImage wraps a FeatureMatrix<3*bw*bh> interpreted as nBlocksX x
// nBlocksY blocks in block-row-major order (blockY outermost), plus the
// actual (pre-padding) image dimensions.
type BlockImage struct {
	Data               *matrix.Matrix
	BW, BH             int
	NBlocksX, NBlocksY int
	ActualW, ActualH   int
}

// ceilDiv computes ceil(a/b) for positive integers.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// mirrorPad pads img by mirror-repeat to (nBlocksX*bw, nBlocksY*bh).
// Extra right columns mirror the rightmost real columns in reverse
// order; extra bottom rows mirror the bottom real rows, copying whole
// rows (so the mirrored rows carry the same mirrored columns as the
// rows they're based on).
func mirrorPad(img support.RGB8Image, bw, bh, nBlocksX, nBlocksY int) support.RGB8Image {
	paddedW := nBlocksX * bw
	paddedH := nBlocksY * bh

	// Pad columns first, over the original height.
	widened := support.NewRGB8Image(paddedW, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			widened.Set(x, y, r, g, b)
		}
		for c := 0; c < paddedW-img.Width; c++ {
			// Column W+c mirrors column W-1-c.
			srcX := img.Width - 1 - c
			r, g, b := img.At(srcX, y)
			widened.Set(img.Width+c, y, r, g, b)
		}
	}
	if paddedH == img.Height {
		return widened
	}

	// Pad rows, copying whole (already column-padded) rows.
	out := support.NewRGB8Image(paddedW, paddedH)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < paddedW; x++ {
			r, g, b := widened.At(x, y)
			out.Set(x, y, r, g, b)
		}
	}
	for r := 0; r < paddedH-img.Height; r++ {
		srcY := img.Height - 1 - r
		dstY := img.Height + r
		for x := 0; x < paddedW; x++ {
			rr, gg, bb := widened.At(x, srcY)
			out.Set(x, dstY, rr, gg, bb)
		}
	}
	return out
}

// FromImage builds a YUV-weighted BlockImage from an RGB8 raster,
// mirror-padding first if the image isn't a multiple of the block size.
func FromImage(img support.RGB8Image, bw, bh int) *BlockImage {
	nBlocksX := ceilDiv(img.Width, bw)
	nBlocksY := ceilDiv(img.Height, bh)

	bi := &BlockImage{
		BW: bw, BH: bh,
		NBlocksX: nBlocksX, NBlocksY: nBlocksY,
		ActualW: img.Width, ActualH: img.Height,
	}

	if nBlocksX == 0 || nBlocksY == 0 {
		bi.Data = matrix.New(channels*bw*bh, 0)
		return bi
	}

	src := img
	if img.Width%bw != 0 || img.Height%bh != 0 {
		src = mirrorPad(img, bw, bh, nBlocksX, nBlocksY)
	}

	bi.Data = matrix.New(channels*bw*bh, nBlocksX*nBlocksY)
	row := make([]float32, channels*bw*bh)
	for blockY := 0; blockY < nBlocksY; blockY++ {
		for blockX := 0; blockX < nBlocksX; blockX++ {
			for y := 0; y < bh; y++ {
				for x := 0; x < bw; x++ {
					r, g, b := src.At(blockX*bw+x, blockY*bh+y)
					base := (y*bw + x) * channels
					row[base+0] = float32(r) * yuvweight.R
					row[base+1] = float32(g) * yuvweight.G
					row[base+2] = float32(b) * yuvweight.B
				}
			}
			bi.Data.SetRow(blockY*nBlocksX+blockX, row)
		}
	}
	return bi
}

// FromDict gathers block rows from dict using indices (the VQ-decode
// reverse constructor): block i is dict[indices[i]].
func FromDict(dict *matrix.Matrix, indices []uint16, bw, bh, nBlocksX, nBlocksY int) *BlockImage {
	bi := &BlockImage{
		BW: bw, BH: bh,
		NBlocksX: nBlocksX, NBlocksY: nBlocksY,
		ActualW: nBlocksX * bw, ActualH: nBlocksY * bh,
		Data: matrix.New(dict.Width(), len(indices)),
	}
	for i, idx := range indices {
		bi.Data.SetRow(i, dict.Row(int(idx)))
	}
	return bi
}

func clampRound(v float32) byte {
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return byte(math.Round(float64(v)))
}

// ToRGB8 inverts the block-partition + YUV-weighting transform: each
// feature element is multiplied by the inverse channel weight, clamped
// to [0, 255], rounded, and written into the padded raster, which is
// then cropped to ActualW x ActualH if padding was applied.
func (bi *BlockImage) ToRGB8() support.RGB8Image {
	paddedW := bi.BW * bi.NBlocksX
	paddedH := bi.BH * bi.NBlocksY
	out := support.NewRGB8Image(paddedW, paddedH)

	for blockY := 0; blockY < bi.NBlocksY; blockY++ {
		for blockX := 0; blockX < bi.NBlocksX; blockX++ {
			block := bi.Data.Row(blockY*bi.NBlocksX + blockX)
			for y := 0; y < bi.BH; y++ {
				for x := 0; x < bi.BW; x++ {
					base := (y*bi.BW + x) * channels
					r := clampRound(block[base+0] * yuvweight.InvR)
					g := clampRound(block[base+1] * yuvweight.InvG)
					b := clampRound(block[base+2] * yuvweight.InvB)
					out.Set(blockX*bi.BW+x, blockY*bi.BH+y, r, g, b)
				}
			}
		}
	}

	if bi.ActualW == paddedW && bi.ActualH == paddedH {
		return out
	}

	cropped := support.NewRGB8Image(bi.ActualW, bi.ActualH)
	for y := 0; y < bi.ActualH; y++ {
		for x := 0; x < bi.ActualW; x++ {
			r, g, b := out.At(x, y)
			cropped.Set(x, y, r, g, b)
		}
	}
	return cropped
}
