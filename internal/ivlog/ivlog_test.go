package ivlog

import (
	"os"
	"testing"
)

func TestProgressfSilentByDefault(t *testing.T) {
	if Verbose {
		t.Fatal("Verbose should default to false")
	}
	// Nothing to assert on stderr output directly; this just confirms
	// Progressf doesn't panic when Verbose is false.
	Progressf("unseen %d\n", 1)
}

func TestProgressfWritesWhenVerbose(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	Verbose = true
	defer func() { Verbose = false }()
	Progressf("hello %d\n", 42)
	w.Close()

	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	got := string(buf[:n])
	if got != "hello 42\n" {
		t.Errorf("got %q, want %q", got, "hello 42\n")
	}
}
