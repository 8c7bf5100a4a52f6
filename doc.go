// Package iv1 implements the Ivy-One lossy image codec: a two-stage
// vector-quantization pipeline over 4x4 pixel blocks. Each block's
// per-channel RGB mean is quantized against a 256-entry palette
// dictionary; the residual left after subtracting the reconstructed
// mean is separately quantized against a 256-entry detail dictionary.
// Both dictionaries are trained per image with generalized Lloyd's
// algorithm (internal/vq).
//
// Encode and Decode operate on in-memory images (support.RGB8Image)
// and container files (internal/container.File); EncodeFile and
// DecodeFile wrap them with PNG and .iv1 file I/O, mirroring the
// teacher's split between its root encode/decode API and its CLI's
// file-handling glue.
package iv1
