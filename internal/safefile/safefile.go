// Package safefile opens input files for scanning without following
// symlinks or blocking on special files.
package safefile

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegularFile is returned for symlinks, FIFOs, devices, sockets and directories.
var ErrNotRegularFile = errors.New("not a regular file")

// OpenRegular opens path for reading after checking that it names a
// regular file. The path is checked with Lstat before opening and the
// descriptor is checked again with Stat afterwards, so a file swapped
// for a FIFO or device between the two calls is still rejected.
//
// On error no file is left open. On success the caller must close the file.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, nil, err
	}
	if !linkInfo.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%s: %w", describeMode(linkInfo.Mode()), ErrNotRegularFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", describeMode(info.Mode()), ErrNotRegularFile)
	}

	return f, info, nil
}

// IsRegular reports whether path names a regular file without following symlinks.
func IsRegular(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().IsRegular()
}

func describeMode(m os.FileMode) string {
	switch {
	case m.IsDir():
		return "directory"
	case m&os.ModeSymlink != 0:
		return "symlink"
	case m&os.ModeNamedPipe != 0:
		return "named pipe"
	case m&os.ModeSocket != 0:
		return "socket"
	case m&os.ModeDevice != 0:
		return "device"
	default:
		return "special file"
	}
}
