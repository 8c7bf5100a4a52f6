package matrix

import "testing"

func TestNewZeroInitialized(t *testing.T) {
	m := New(3, 4)
	if m.Width() != 3 {
		t.Fatalf("Width() = %d, want 3", m.Width())
	}
	if m.Rows() != 4 {
		t.Fatalf("Rows() = %d, want 4", m.Rows())
	}
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.Row(i) {
			if v != 0 {
				t.Fatalf("row %d not zero-initialized: %v", i, m.Row(i))
			}
		}
	}
}

func TestRowReadWrite(t *testing.T) {
	m := New(3, 2)
	m.SetRow(0, []float32{1, 2, 3})
	m.SetRow(1, []float32{4, 5, 6})

	if got := m.Row(0); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("Row(0) = %v", got)
	}

	// Writes through Row() mutate the matrix.
	m.Row(1)[0] = 99
	if got := m.Row(1)[0]; got != 99 {
		t.Fatalf("Row(1)[0] = %v, want 99", got)
	}
}

func TestAppendRow(t *testing.T) {
	m := New(3, 0)
	if m.Rows() != 0 {
		t.Fatalf("Rows() = %d, want 0", m.Rows())
	}
	n := m.AppendRow([]float32{1, 2, 3})
	if n != 1 || m.Rows() != 1 {
		t.Fatalf("AppendRow: n=%d rows=%d", n, m.Rows())
	}
	m.AppendRow([]float32{4, 5, 6})
	if m.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", m.Rows())
	}
	if got := m.Row(1); got[0] != 4 {
		t.Fatalf("Row(1) = %v", got)
	}
}

func TestZeroRows(t *testing.T) {
	m := New(48, 0)
	if m.Rows() != 0 {
		t.Fatalf("Rows() = %d, want 0", m.Rows())
	}
}
