package iv1

import "errors"

var (
	// ErrEmptyInput is returned by Encode when given a zero-width or
	// zero-height image.
	ErrEmptyInput = errors.New("iv1: empty input image")
	// ErrIndexOutOfRange is returned by Decode when a container file's
	// codeword index exceeds its dictionary's size.
	ErrIndexOutOfRange = errors.New("iv1: codebook index out of range")
	// ErrPNGDecode is returned by EncodeFile when the input file isn't a
	// readable PNG.
	ErrPNGDecode = errors.New("iv1: failed to decode PNG")
)
