// Package yuvweight provides the luma-biased per-channel weights applied
// to RGB feature vectors before vector quantization, so that squared
// Euclidean distance in feature space is proportional to luminance-
// weighted perceptual error.
//
// Modeled on sharpyuv's predefined-colorspace-constant-table shape
// (sharpyuv.BT601/BT709): a small set of precomputed coefficients rather
// than a runtime colorspace conversion. IV1 needs only a flat
// multiplicative weight per channel, not sharpyuv's subsampled RGB->YUV420
// conversion with iterative error diffusion.
package yuvweight

import "math"

// Rec. 709 luma coefficients: Y = 0.2125*R + 0.7154*G + 0.0721*B.
const (
	lumaR = 0.2125
	lumaG = 0.7154
	lumaB = 0.0721
)

// R, G, B are the per-channel multiplicative weights applied in feature
// space (sqrt of the luma coefficients, so squared distance carries the
// luma weighting linearly).
var R, G, B float32

// InvR, InvG, InvB invert the weighting, used when reconstructing RGB8
// pixels from weighted feature space.
var InvR, InvG, InvB float32

func init() {
	R = float32(math.Sqrt(lumaR))
	G = float32(math.Sqrt(lumaG))
	B = float32(math.Sqrt(lumaB))
	InvR = 1 / R
	InvG = 1 / G
	InvB = 1 / B
}
