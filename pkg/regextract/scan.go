package regextract

import (
	"context"
	"fmt"
	"iter"

	"github.com/regextract/regextract-go/internal/chunk"
	"github.com/regextract/regextract-go/internal/inputfinder"
)

// ChunkResult is the extraction report for one chunk of a file.
type ChunkResult struct {
	Path   string // file the chunk came from
	Index  int    // 0-based chunk number within the file
	Offset int64  // byte offset of the chunk within the file
	Report Report
}

// ScanFile reads the file at path in bounded chunks and runs ExtractAll
// on each chunk independently. Chunks are at most the configured chunk
// size (WithChunkSize), so matches that straddle a chunk boundary are
// not reported.
//
// The file is opened when iteration starts and closed when it ends,
// including when the caller breaks out early. Iteration stops after the
// first error, which is yielded with a zero ChunkResult. Open errors are
// wrapped, so errors.Is(err, fs.ErrNotExist) works for a missing file.
// The context is checked between chunks.
func (e *Extractor) ScanFile(ctx context.Context, path string) iter.Seq2[ChunkResult, error] {
	return func(yield func(ChunkResult, error) bool) {
		e.log.Debug("scanning file", "path", path, "chunk_size", e.chunkSize)
		for c, err := range chunk.File(path, e.chunkSize) {
			if err != nil {
				yield(ChunkResult{}, fmt.Errorf("scan %s: %w", path, err))
				return
			}
			if err := ctx.Err(); err != nil {
				yield(ChunkResult{}, err)
				return
			}

			res := ChunkResult{
				Path:   path,
				Index:  c.Index,
				Offset: c.Offset,
				Report: e.ExtractAll(c.Text),
			}
			if !yield(res, nil) {
				return
			}
		}
	}
}

// ScanFileAll is like ScanFile but collects every chunk result.
func (e *Extractor) ScanFileAll(ctx context.Context, path string) ([]ChunkResult, error) {
	var results []ChunkResult
	for res, err := range e.ScanFile(ctx, path) {
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ScanDir scans every regular file in dir whose name matches glob
// (all files when glob is empty), in name order. Subdirectories,
// symlinks and special files are skipped.
func (e *Extractor) ScanDir(ctx context.Context, dir, glob string) iter.Seq2[ChunkResult, error] {
	return func(yield func(ChunkResult, error) bool) {
		files, err := inputfinder.Find(dir, glob)
		if err != nil {
			yield(ChunkResult{}, fmt.Errorf("scan %s: %w", dir, err))
			return
		}
		e.log.Debug("scanning directory", "dir", dir, "files", len(files))

		for _, f := range files {
			for res, err := range e.ScanFile(ctx, f) {
				if !yield(res, err) || err != nil {
					return
				}
			}
		}
	}
}

// ScanFile scans a file with the built-in categories and the default chunk size.
// See (*Extractor).ScanFile.
func ScanFile(ctx context.Context, path string) iter.Seq2[ChunkResult, error] {
	return defaultExtractor.ScanFile(ctx, path)
}

// ScanFileAll collects ScanFile results for the built-in categories.
func ScanFileAll(ctx context.Context, path string) ([]ChunkResult, error) {
	return defaultExtractor.ScanFileAll(ctx, path)
}
