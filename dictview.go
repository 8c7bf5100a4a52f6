package iv1

import (
	"github.com/ivycodec/iv1/internal/blockimage"
	"github.com/ivycodec/iv1/internal/blockops"
	"github.com/ivycodec/iv1/internal/container"
	"github.com/ivycodec/iv1/internal/vq"
	"github.com/ivycodec/iv1/support"
)

// dictViewGrid is the number of codewords along each axis of the
// preview: 256 palette entries along X, 256 detail entries along Y,
// matching both dictionaries' fixed size.
const dictViewGrid = 256

// DictView renders f's two dictionaries as a single 1024x1024 preview
// image: a dictViewGrid x dictViewGrid grid of 4x4 blocks where block
// (x, y) reconstructs palette codeword x summed with detail codeword y.
// Grounded on original_source/IV1dictview.cpp, whose linear block index
// i = y*256+x yields the same idxDict0[i] = i&255, idxDict1[i] = i>>8
// split used here.
func DictView(f *container.File) support.RGB8Image {
	n := dictViewGrid * dictViewGrid
	indices0 := make([]uint16, n)
	indices1 := make([]uint16, n)
	for i := 0; i < n; i++ {
		indices0[i] = uint16(i & 0xff)
		indices1[i] = uint16(i >> 8)
	}

	means := vq.Decode(f.Dict0, indices0)
	details := vq.Decode(f.Dict1, indices1)
	blocks := blockops.AddMean(details, means)

	bi := &blockimage.BlockImage{
		Data: blocks, BW: BlockW, BH: BlockH,
		NBlocksX: dictViewGrid, NBlocksY: dictViewGrid,
		ActualW: dictViewGrid * BlockW, ActualH: dictViewGrid * BlockH,
	}
	return bi.ToRGB8()
}
