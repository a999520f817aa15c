//go:build !windows

package safefile

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"
)

func TestOpenRegular_RejectsFIFO(t *testing.T) {
	fifo := filepath.Join(t.TempDir(), "pipe")
	if err := syscall.Mkfifo(fifo, 0644); err != nil {
		t.Fatal(err)
	}

	// Must return without blocking on the FIFO open.
	_, _, err := OpenRegular(fifo)
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("OpenRegular() error = %v, want ErrNotRegularFile", err)
	}
	if IsRegular(fifo) {
		t.Error("IsRegular(fifo) = true, want false")
	}
}
