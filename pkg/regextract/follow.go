package regextract

import (
	"context"

	"github.com/regextract/regextract-go/internal/tailer"
)

// followErrBuffer is the buffer size for the Follow error channel.
const followErrBuffer = 16

// LineResult is the report for one line appended to a followed file.
type LineResult struct {
	Path   string
	Line   int // 1-based count of lines received since Follow started
	Text   string
	Report Report
}

// FollowConfig configures Follow.
type FollowConfig struct {
	// FromStart scans the existing content before following.
	FromStart bool

	// Poll uses stat polling instead of file system notifications.
	Poll bool
}

// Follow watches the file at path and runs ExtractAll on every line
// appended to it. Only lines with at least one match are sent.
//
// Both channels are closed when ctx is cancelled or the file can no
// longer be followed. Errors on the error channel are non-fatal.
// Follow returns an error immediately if the file does not exist or is
// not a regular file.
func (e *Extractor) Follow(ctx context.Context, path string, cfg FollowConfig) (<-chan LineResult, <-chan error, error) {
	tcfg := tailer.DefaultConfig()
	tcfg.FromStart = cfg.FromStart
	tcfg.Poll = cfg.Poll

	t, err := tailer.New(ctx, path, tcfg)
	if err != nil {
		return nil, nil, err
	}
	e.log.Debug("started following", "path", path, "from_start", cfg.FromStart)

	out := make(chan LineResult)
	errs := make(chan error, followErrBuffer)
	go e.follow(ctx, path, t, out, errs)
	return out, errs, nil
}

func (e *Extractor) follow(ctx context.Context, path string, t *tailer.Tailer, out chan<- LineResult, errs chan<- error) {
	defer close(errs)
	defer close(out)
	defer func() { _ = t.Stop() }()

	lines, terrs := t.Lines(), t.Errors()
	n := 0
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			n++
			report := e.ExtractAll(line)
			if report.Total() == 0 {
				continue
			}
			select {
			case out <- LineResult{Path: path, Line: n, Text: line, Report: report}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-terrs:
			if !ok {
				terrs = nil
				continue
			}
			sendError(ctx, errs, err)
		}
	}
}

// sendError sends err unless ctx is done. Errors are dropped when the
// buffer is full rather than stalling extraction.
func sendError(ctx context.Context, errs chan<- error, err error) {
	select {
	case errs <- err:
	case <-ctx.Done():
	default:
	}
}
