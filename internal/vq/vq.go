// Package vq implements generalized Lloyd's algorithm (k-means) vector
// quantization: dictionary training (C4) and codebook decoding (C5).
// It is the dominant component of the IV1 pipeline, run twice per image
// — once over per-block RGB means (D=3) and once over per-block
// residuals (D=48) — with identical code in both cases since
// matrix.Matrix carries its row width at runtime.
//
// The assign step's nearest-codeword search and its partial-distance
// early termination are modeled on the teacher's 1-D k-means in
// encode_analysis.go's assignSegments, generalized from a scalar
// histogram to D-dimensional feature vectors. The parallel assignment
// pass is modeled on encode_parallel.go's atomic row-claiming worker
// pool: each worker pulls the next unclaimed row from a shared counter
// and writes only its own output slot, so results are independent of
// scheduling order.
package vq

import (
	"errors"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ivycodec/iv1/internal/ivlog"
	"github.com/ivycodec/iv1/internal/matrix"
	"github.com/ivycodec/iv1/internal/pool"
)

// ErrZeroK is returned by Train when k is not positive.
var ErrZeroK = errors.New("vq: k must be positive")

// DefaultSeed is the fixed seed callers should use for reproducible
// training when no other seed source is specified.
const DefaultSeed = 1

// invalidIndex marks "no prior assignment" in the convergence check.
// Safe as a sentinel since IV1 never trains with k close to 65536.
const invalidIndex uint16 = 0xffff

// TrainOptions configures a Train call.
type TrainOptions struct {
	// Seed drives the initial codeword selection. Callers that want
	// reproducible output should pass DefaultSeed or their own fixed
	// value; the zero value is a legitimate seed, not a sentinel.
	Seed int64
	// Workers bounds the assignment pass's worker-pool size. Zero
	// selects runtime.GOMAXPROCS(0).
	Workers int
}

// Train runs generalized Lloyd's algorithm over x's rows, producing a
// k-row codebook and a per-row nearest-codeword index. tmax bounds the
// number of assign/update iterations; a value of zero returns a
// dictionary seeded from x with a single assignment pass and no
// refinement. An empty x (zero rows) yields an empty dictionary and a
// nil index slice.
func Train(x *matrix.Matrix, k, tmax int, opts TrainOptions) (*matrix.Matrix, []uint16, error) {
	if k <= 0 {
		return nil, nil, ErrZeroK
	}
	n := x.Rows()
	if n == 0 {
		return matrix.New(x.Width(), 0), nil, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	dict := seedDict(x, k, opts.Seed)
	indices := make([]uint16, n)

	if tmax <= 0 {
		assignParallel(x, dict, indices, workers)
		return dict, indices, nil
	}

	prevIndices := make([]uint16, n)
	for i := range prevIndices {
		prevIndices[i] = invalidIndex
	}

	meanScale := meanFeatureScale(x)
	tau := meanScale * meanScale * 1e-6

	for iter := 0; iter < tmax; iter++ {
		assignParallel(x, dict, indices, workers)
		changed := !equalIndices(indices, prevIndices)
		copy(prevIndices, indices)
		if !changed {
			break
		}
		movement := updateCentroids(x, dict, indices, k)
		splitDeadCodewords(x, dict, indices, k)
		ivlog.Progressf("vq: iter %d k=%d movement=%.6f tau=%.6f\n", iter, k, movement, tau)
		if movement < tau {
			break
		}
	}
	// Final pass keeps the returned indices consistent with the
	// dictionary as it stood after the last update/split.
	assignParallel(x, dict, indices, workers)
	return dict, indices, nil
}

// Decode gathers dict[indices[i]] into row i of the result, the inverse
// of the per-row index assignment Train produces.
func Decode(dict *matrix.Matrix, indices []uint16) *matrix.Matrix {
	out := matrix.New(dict.Width(), len(indices))
	for i, idx := range indices {
		out.SetRow(i, dict.Row(int(idx)))
	}
	return out
}

// seedDict picks k initial codewords as uniformly random distinct rows
// of x. When x has k or fewer rows, rows are reused (duplicating the
// last row) so the dictionary always has exactly k entries.
func seedDict(x *matrix.Matrix, k int, seed int64) *matrix.Matrix {
	n := x.Rows()
	dict := matrix.New(x.Width(), k)
	if n <= k {
		for i := 0; i < k; i++ {
			src := i
			if src >= n {
				src = n - 1
			}
			dict.SetRow(i, x.Row(src))
		}
		return dict
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)))
	perm := rng.Perm(n)
	for i := 0; i < k; i++ {
		dict.SetRow(i, x.Row(perm[i]))
	}
	return dict
}

// assignParallel sets indices[i] to the nearest codeword in dict for
// each row of x, splitting the rows across workers goroutines that
// claim work via an atomic counter.
func assignParallel(x, dict *matrix.Matrix, indices []uint16, workers int) {
	n := x.Rows()
	var next int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				row := atomic.AddInt64(&next, 1) - 1
				if row >= int64(n) {
					return
				}
				indices[row] = nearest(x.Row(int(row)), dict)
			}
		}()
	}
	wg.Wait()
}

// nearest finds the dict row with minimum squared distance to v, using
// partial-distance early termination: the per-dimension accumulation
// for a candidate aborts as soon as its running sum meets or exceeds
// the current best, since no further dimension can reduce it.
func nearest(v []float32, dict *matrix.Matrix) uint16 {
	best := 0
	bestDist := float32(math.MaxFloat32)
	for i := 0; i < dict.Rows(); i++ {
		d := dict.Row(i)
		var sum float32
		aborted := false
		for j := range v {
			diff := v[j] - d[j]
			sum += diff * diff
			if sum >= bestDist {
				aborted = true
				break
			}
		}
		if !aborted {
			bestDist = sum
			best = i
		}
	}
	return uint16(best)
}

// updateCentroids recomputes each codeword as the mean of its assigned
// rows, leaving codewords with no assigned rows untouched (handled
// separately by splitDeadCodewords). Returns the largest single-codeword
// movement, for convergence testing.
//
// The per-iteration accumulator (k rows of width floats) and the
// recomputed-row scratch are pulled from internal/pool rather than
// freshly allocated: Train calls this once per iteration, up to tmax
// (1000) times per codebook, so reusing these buffers avoids a fresh
// k*width-sized garbage allocation on every pass.
func updateCentroids(x, dict *matrix.Matrix, indices []uint16, k int) float32 {
	width := dict.Width()
	sums := pool.GetFloat32(k * width)
	defer pool.PutFloat32(sums)
	for i := range sums {
		sums[i] = 0
	}
	counts := make([]int, k)
	for row, idx := range indices {
		rv := x.Row(row)
		s := sums[int(idx)*width : int(idx)*width+width]
		for j, v := range rv {
			s[j] += v
		}
		counts[idx]++
	}

	var maxMovement float32
	newRow := pool.GetFloat32(width)
	defer pool.PutFloat32(newRow)
	for i := 0; i < k; i++ {
		if counts[i] == 0 {
			continue
		}
		inv := 1 / float32(counts[i])
		s := sums[i*width : i*width+width]
		for j := 0; j < width; j++ {
			newRow[j] = s[j] * inv
		}
		movement := euclideanDist(dict.Row(i), newRow)
		if movement > maxMovement {
			maxMovement = movement
		}
		dict.SetRow(i, newRow)
	}
	return maxMovement
}

// splitDeadCodewords replaces each codeword with zero assigned rows
// with the farthest point (by squared distance from its centroid) in
// the currently largest cluster, ties broken by lowest row index.
func splitDeadCodewords(x, dict *matrix.Matrix, indices []uint16, k int) {
	counts := make([]int, k)
	for _, idx := range indices {
		counts[idx]++
	}
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			continue
		}
		largest := argmax(counts)
		if counts[largest] <= 1 {
			continue
		}
		row := farthestInCluster(x, dict, indices, largest)
		dict.SetRow(i, x.Row(row))
		indices[row] = uint16(i)
		counts[largest]--
		counts[i]++
	}
}

func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

func farthestInCluster(x, dict *matrix.Matrix, indices []uint16, cluster int) int {
	centroid := dict.Row(cluster)
	best := -1
	bestDist := float32(-1)
	for row := 0; row < x.Rows(); row++ {
		if int(indices[row]) != cluster {
			continue
		}
		d := squaredDist(x.Row(row), centroid)
		if d > bestDist {
			bestDist = d
			best = row
		}
	}
	return best
}

func squaredDist(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func euclideanDist(a, b []float32) float32 {
	return float32(math.Sqrt(float64(squaredDist(a, b))))
}

func meanFeatureScale(x *matrix.Matrix) float32 {
	n := x.Rows()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		var s float32
		for _, v := range x.Row(i) {
			s += v * v
		}
		sum += float64(s)
	}
	return float32(math.Sqrt(sum / float64(n)))
}

func equalIndices(a, b []uint16) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
