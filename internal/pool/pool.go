// Package pool provides bucketed sync.Pool instances for reducing allocations
// in the IV1 container reader/writer and the VQ trainer's centroid-update
// scratch buffers. Buffers are organized by size class to minimize waste.
package pool

import "sync"

// Size classes tuned to IV1's actual buffer footprint: the palette
// codebook payload (256*3 = 768B), the detail codebook payload
// (256*48 = 12288B), and index streams/training scratch which scale
// with block count for typical images.
const (
	Size1K  = 1024
	Size16K = 16384
	Size64K = 262144
	Size1M  = 1048576
	Size8M  = 8388608
)

// bucketIndex returns the pool index for a given size.
func bucketIndex(size int) int {
	switch {
	case size <= Size1K:
		return 0
	case size <= Size16K:
		return 1
	case size <= Size64K:
		return 2
	case size <= Size1M:
		return 3
	default:
		return 4
	}
}

var sizes = [5]int{Size1K, Size16K, Size64K, Size1M, Size8M}

var bytePools [5]sync.Pool
var float32Pools [5]sync.Pool

func init() {
	for i := range bytePools {
		sz := sizes[i]
		bytePools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
		float32Pools[i] = sync.Pool{
			New: func() any {
				b := make([]float32, sz/4)
				return &b
			},
		}
	}
}

// Get returns a byte slice of at least the requested size from the pool.
// The returned slice has length == size and may have a larger capacity.
// The caller must call Put when done.
func Get(size int) []byte {
	idx := bucketIndex(size)
	bp := bytePools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
		*bp = b
		return b
	}
	return b[:size]
}

// Put returns a byte slice to the pool. The slice must have been obtained
// from Get.
func Put(b []byte) {
	c := cap(b)
	idx := bucketIndex(c)
	b = b[:c]
	bytePools[idx].Put(&b)
}

// GetFloat32 returns a float32 slice of at least the requested length,
// used by the VQ trainer for its per-iteration centroid-sum accumulator
// and recomputed-row scratch.
func GetFloat32(length int) []float32 {
	idx := bucketIndex(length * 4)
	bp := float32Pools[idx].Get().(*[]float32)
	b := *bp
	if cap(b) < length {
		b = make([]float32, length)
		*bp = b
		return b
	}
	return b[:length]
}

// PutFloat32 returns a float32 slice to the pool.
func PutFloat32(b []float32) {
	c := cap(b)
	idx := bucketIndex(c * 4)
	b = b[:c]
	float32Pools[idx].Put(&b)
}
