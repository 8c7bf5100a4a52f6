package blockops

import (
	"testing"

	"github.com/ivycodec/iv1/internal/matrix"
)

func rowsMatrix(width int, rows [][]float32) *matrix.Matrix {
	m := matrix.New(width, 0)
	for _, r := range rows {
		m.AppendRow(r)
	}
	return m
}

func TestMeanOfTwoPixelBlock(t *testing.T) {
	blocks := rowsMatrix(6, [][]float32{
		{0, 0, 0, 10, 20, 30},
	})
	means := Mean(blocks)
	got := means.Row(0)
	want := []float32{5, 10, 15}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mean[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSubAddMeanRoundTrip(t *testing.T) {
	blocks := rowsMatrix(6, [][]float32{
		{1, 2, 3, 9, 8, 7},
	})
	means := Mean(blocks)
	residuals := SubMean(blocks, means)
	reconstructed := AddMean(residuals, means)
	orig := blocks.Row(0)
	got := reconstructed.Row(0)
	for i := range orig {
		if got[i] != orig[i] {
			t.Errorf("reconstructed[%d] = %v, want %v", i, got[i], orig[i])
		}
	}
}

func TestSubMeanZerosOutConstantBlock(t *testing.T) {
	blocks := rowsMatrix(6, [][]float32{
		{5, 5, 5, 5, 5, 5},
	})
	means := Mean(blocks)
	residuals := SubMean(blocks, means)
	for _, v := range residuals.Row(0) {
		if v != 0 {
			t.Errorf("residual = %v, want 0", v)
		}
	}
}
