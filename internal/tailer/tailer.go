// Package tailer follows a growing text file line by line.
package tailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/nxadm/tail"

	"github.com/regextract/regextract-go/internal/safefile"
)

// errBuffer is the buffer size for the error channel.
const errBuffer = 8

// Config controls how a file is followed.
type Config struct {
	// FromStart reads existing content before following. When false,
	// only lines appended after New returns are delivered.
	FromStart bool

	// Poll uses stat polling instead of file system notifications.
	Poll bool

	// ReOpen reopens the file when it is truncated, moved or recreated.
	ReOpen bool
}

// DefaultConfig returns the configuration used by the follow command.
func DefaultConfig() Config {
	return Config{ReOpen: true}
}

// Tailer delivers lines appended to a file.
type Tailer struct {
	t      *tail.Tail
	lines  chan string
	errs   chan error
	cancel context.CancelFunc
	done   chan struct{}

	stopOnce sync.Once
	stopErr  error
}

// New starts following path. The file must exist and be a regular file.
// Lines and Errors are closed when ctx is cancelled, Stop is called, or
// the underlying tail ends.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, safefile.ErrNotRegularFile)
	}

	whence := io.SeekEnd
	if cfg.FromStart {
		whence = io.SeekStart
	}

	t, err := tail.TailFile(path, tail.Config{
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
		ReOpen:    cfg.ReOpen,
		MustExist: true,
		Poll:      cfg.Poll,
		Follow:    true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	tr := &Tailer{
		t:      t,
		lines:  make(chan string),
		errs:   make(chan error, errBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go tr.run(ctx)
	return tr, nil
}

// Lines returns the channel of lines without their trailing newline or CR.
func (tr *Tailer) Lines() <-chan string {
	return tr.lines
}

// Errors returns the channel of non-fatal read errors.
func (tr *Tailer) Errors() <-chan error {
	return tr.errs
}

// Stop stops following and waits for the delivery goroutine to exit.
// Safe to call multiple times.
func (tr *Tailer) Stop() error {
	tr.stopOnce.Do(func() {
		tr.cancel()
		err := tr.t.Stop()
		tr.t.Cleanup()
		<-tr.done
		if err != nil && !errors.Is(err, context.Canceled) {
			tr.stopErr = err
		}
	})
	return tr.stopErr
}

func (tr *Tailer) run(ctx context.Context) {
	defer close(tr.done)
	defer close(tr.lines)
	defer close(tr.errs)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-tr.t.Lines:
			if !ok {
				if err := tr.t.Wait(); err != nil {
					tr.sendError(ctx, err)
				}
				return
			}
			if line.Err != nil {
				tr.sendError(ctx, line.Err)
				continue
			}
			select {
			case tr.lines <- strings.TrimRight(line.Text, "\r"):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (tr *Tailer) sendError(ctx context.Context, err error) {
	select {
	case tr.errs <- err:
	case <-ctx.Done():
	default:
		// Buffer full; the consumer is not draining errors.
	}
}
