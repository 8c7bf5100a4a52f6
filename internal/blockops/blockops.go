// Package blockops implements the per-block mean/residual arithmetic
// (C3) that sits between the block/YUV feature matrix and the two VQ
// passes: the palette pass quantizes block means, the detail pass
// quantizes residuals against the reconstructed mean.
//
// Grounded on original_source/IV1BlockImage.h's BlockRGBMean,
// BlockRGBSubtractMean and BlockRGBAddMean templates, generalized from
// a compile-time block size to matrix.Matrix's runtime row width.
package blockops

import "github.com/ivycodec/iv1/internal/matrix"

const channels = 3

// Mean computes, for each row of blocks (row width 3*bw*bh), the
// per-channel average over all bw*bh pixels, returning a row-width-3
// matrix with one row per input row.
func Mean(blocks *matrix.Matrix) *matrix.Matrix {
	pixelsPerBlock := blocks.Width() / channels
	out := matrix.New(channels, blocks.Rows())
	mean := make([]float32, channels)
	for i := 0; i < blocks.Rows(); i++ {
		row := blocks.Row(i)
		mean[0], mean[1], mean[2] = 0, 0, 0
		for p := 0; p < pixelsPerBlock; p++ {
			base := p * channels
			mean[0] += row[base+0]
			mean[1] += row[base+1]
			mean[2] += row[base+2]
		}
		inv := 1 / float32(pixelsPerBlock)
		mean[0] *= inv
		mean[1] *= inv
		mean[2] *= inv
		out.SetRow(i, mean)
	}
	return out
}

// SubMean subtracts, from each pixel of each block in blocks, the
// corresponding row's per-channel mean, producing a residual matrix of
// the same shape as blocks.
func SubMean(blocks, means *matrix.Matrix) *matrix.Matrix {
	pixelsPerBlock := blocks.Width() / channels
	out := matrix.New(blocks.Width(), blocks.Rows())
	residual := make([]float32, blocks.Width())
	for i := 0; i < blocks.Rows(); i++ {
		row := blocks.Row(i)
		mean := means.Row(i)
		for p := 0; p < pixelsPerBlock; p++ {
			base := p * channels
			residual[base+0] = row[base+0] - mean[0]
			residual[base+1] = row[base+1] - mean[1]
			residual[base+2] = row[base+2] - mean[2]
		}
		out.SetRow(i, residual)
	}
	return out
}

// AddMean adds, to each pixel of each block in residuals, the
// corresponding row's per-channel mean, reconstructing full blocks.
func AddMean(residuals, means *matrix.Matrix) *matrix.Matrix {
	pixelsPerBlock := residuals.Width() / channels
	out := matrix.New(residuals.Width(), residuals.Rows())
	block := make([]float32, residuals.Width())
	for i := 0; i < residuals.Rows(); i++ {
		row := residuals.Row(i)
		mean := means.Row(i)
		for p := 0; p < pixelsPerBlock; p++ {
			base := p * channels
			block[base+0] = row[base+0] + mean[0]
			block[base+1] = row[base+1] + mean[1]
			block[base+2] = row[base+2] + mean[2]
		}
		out.SetRow(i, block)
	}
	return out
}
