// Package container implements the IV1 flat binary file format (C6): a
// fixed 16-byte header followed by the palette codebook, palette
// indices, detail codebook and detail indices, each written back to
// back with no padding or chunk framing.
//
// Grounded on the teacher's internal/container riff.go/parser.go for
// the reader/writer shape (buffered I/O, sentinel errors wrapped with
// fmt.Errorf, length-checked reads), but rewritten for IV1's flat
// fixed-layout format in place of RIFF's nested, self-describing chunk
// tree. Deliberately does not reproduce original_source/IV1File.h's
// dict1-loading bug, where the reader loop calls fwrite instead of
// fread and corrupts the input file it's supposed to be reading; this
// package never writes to a file it opens for Load.
package container

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ivycodec/iv1/internal/dsp"
	"github.com/ivycodec/iv1/internal/matrix"
	"github.com/ivycodec/iv1/internal/pool"
)

const (
	magic      = "IVY1"
	headerSize = 16

	// PaletteK and DetailK are the fixed codebook sizes baked into the
	// format: both VQ passes always train 256 codewords.
	PaletteK     = 256
	DetailK      = 256
	PaletteWidth = 3
	DetailWidth  = 48
)

var (
	// ErrBadMagic is returned when a file's leading 4 bytes aren't "IVY1".
	ErrBadMagic = errors.New("container: bad magic number")
	// ErrShortRead is returned when a write is short (disk full, etc).
	ErrShortRead = errors.New("container: short read")
	// ErrTruncated is returned when a file ends before its declared
	// payload is fully present.
	ErrTruncated = errors.New("container: truncated file")
)

// File is the decoded contents of an .iv1 file.
type File struct {
	NBlocksX, NBlocksY int
	ActualW, ActualH   int
	Dict0              *matrix.Matrix // palette codebook, width PaletteWidth
	Indices0           []uint16       // one per block
	Dict1              *matrix.Matrix // detail codebook, width DetailWidth
	Indices1           []uint16       // one per block
}

// Save writes f to path in the IV1 flat binary format.
func Save(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("container: creating %s: %w", path, err)
	}
	w := bufio.NewWriter(out)

	var header [headerSize]byte
	copy(header[0:4], magic)
	binary.LittleEndian.PutUint16(header[4:6], uint16(f.NBlocksX))
	binary.LittleEndian.PutUint16(header[6:8], uint16(f.NBlocksY))
	binary.LittleEndian.PutUint32(header[8:12], uint32(f.ActualW))
	binary.LittleEndian.PutUint32(header[12:16], uint32(f.ActualH))

	writeErr := func() error {
		if _, err := w.Write(header[:]); err != nil {
			return err
		}
		if err := writeQuantizedMatrix(w, f.Dict0); err != nil {
			return err
		}
		if err := writeIndices(w, f.Indices0); err != nil {
			return err
		}
		if err := writeQuantizedMatrix(w, f.Dict1); err != nil {
			return err
		}
		if err := writeIndices(w, f.Indices1); err != nil {
			return err
		}
		return w.Flush()
	}()

	if writeErr != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %s: %v", ErrShortRead, path, writeErr)
	}
	return out.Close()
}

func writeQuantizedMatrix(w *bufio.Writer, m *matrix.Matrix) error {
	buf := pool.Get(m.Width())
	defer pool.Put(buf)
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		for j, v := range row {
			buf[j] = dsp.QuantizeU8(v)
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// writeIndices truncates each index to a single byte, lossless since
// K=256 means every index fits in [0, 255].
func writeIndices(w *bufio.Writer, indices []uint16) error {
	buf := pool.Get(len(indices))
	defer pool.Put(buf)
	for i, idx := range indices {
		buf[i] = byte(idx)
	}
	_, err := w.Write(buf)
	return err
}

// Load reads an .iv1 file from path. It never writes to path.
func Load(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("container: opening %s: %w", path, err)
	}
	defer in.Close()
	r := bufio.NewReader(in)

	var header [headerSize]byte
	if err := readFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("container: reading %s header: %w", path, err)
	}
	if string(header[0:4]) != magic {
		return nil, fmt.Errorf("%w: %s", ErrBadMagic, path)
	}

	f := &File{
		NBlocksX: int(binary.LittleEndian.Uint16(header[4:6])),
		NBlocksY: int(binary.LittleEndian.Uint16(header[6:8])),
		ActualW:  int(binary.LittleEndian.Uint32(header[8:12])),
		ActualH:  int(binary.LittleEndian.Uint32(header[12:16])),
	}
	nBlocks := f.NBlocksX * f.NBlocksY

	f.Dict0, err = readQuantizedMatrix(r, PaletteWidth, PaletteK)
	if err != nil {
		return nil, fmt.Errorf("container: reading %s palette dict: %w", path, err)
	}
	f.Indices0, err = readIndices(r, nBlocks)
	if err != nil {
		return nil, fmt.Errorf("container: reading %s palette indices: %w", path, err)
	}
	f.Dict1, err = readQuantizedMatrix(r, DetailWidth, DetailK)
	if err != nil {
		return nil, fmt.Errorf("container: reading %s detail dict: %w", path, err)
	}
	f.Indices1, err = readIndices(r, nBlocks)
	if err != nil {
		return nil, fmt.Errorf("container: reading %s detail indices: %w", path, err)
	}
	return f, nil
}

func readQuantizedMatrix(r io.Reader, width, rows int) (*matrix.Matrix, error) {
	buf := pool.Get(width)
	defer pool.Put(buf)
	m := matrix.New(width, rows)
	floatRow := make([]float32, width)
	for i := 0; i < rows; i++ {
		if err := readFull(r, buf); err != nil {
			return nil, err
		}
		for j, u8 := range buf {
			floatRow[j] = dsp.DequantizeU8(u8)
		}
		m.SetRow(i, floatRow)
	}
	return m, nil
}

// readIndices widens each stored byte back to a uint16 (high byte
// zero), the inverse of writeIndices's truncation.
func readIndices(r io.Reader, n int) ([]uint16, error) {
	if n == 0 {
		return nil, nil
	}
	buf := pool.Get(n)
	defer pool.Put(buf)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	indices := make([]uint16, n)
	for i, u8 := range buf {
		indices[i] = uint16(u8)
	}
	return indices, nil
}

func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
