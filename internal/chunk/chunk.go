// Package chunk splits text input into bounded segments for scanning.
//
// Segments are cut at a fixed byte budget, so a match that straddles two
// segments is seen by neither. Only UTF-8 sequences are kept whole.
package chunk

import (
	"io"
	"iter"
	"unicode/utf8"

	"github.com/regextract/regextract-go/internal/safefile"
)

// DefaultSize is the default maximum segment size in bytes.
const DefaultSize = 1024

// Chunk is one segment of input.
type Chunk struct {
	Index  int    // 0-based position in the sequence
	Offset int64  // byte offset of Text in the input
	Text   string // at most the reader's size in bytes
}

// Reader yields consecutive chunks from an io.Reader.
// A Reader is not safe for concurrent use.
type Reader struct {
	r       io.Reader
	buf     []byte
	pending int // bytes in buf not yet returned
	index   int
	offset  int64
	eof     bool
}

// NewReader returns a Reader producing chunks of at most size bytes.
// A non-positive size selects DefaultSize. Sizes below utf8.UTFMax are
// raised to utf8.UTFMax so every chunk can hold a complete rune.
func NewReader(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultSize
	}
	if size < utf8.UTFMax {
		size = utf8.UTFMax
	}
	return &Reader{r: r, buf: make([]byte, size)}
}

// Next returns the next chunk, or io.EOF once the input is exhausted.
// Any other error comes from the underlying reader.
func (r *Reader) Next() (Chunk, error) {
	if !r.eof && r.pending < len(r.buf) {
		n, err := io.ReadFull(r.r, r.buf[r.pending:])
		r.pending += n
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			r.eof = true
		default:
			return Chunk{}, err
		}
	}

	if r.pending == 0 {
		return Chunk{}, io.EOF
	}

	cut := r.pending
	if !r.eof {
		cut = runeBoundary(r.buf[:r.pending])
	}

	c := Chunk{
		Index:  r.index,
		Offset: r.offset,
		Text:   string(r.buf[:cut]),
	}
	r.index++
	r.offset += int64(cut)
	r.pending = copy(r.buf, r.buf[cut:r.pending])
	return c, nil
}

// All returns an iterator over the remaining chunks.
// Iteration stops after the first error, which is yielded with a zero Chunk.
func (r *Reader) All() iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		for {
			c, err := r.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Chunk{}, err)
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// File returns an iterator over the chunks of the regular file at path.
// The file is opened when iteration starts and closed when it ends,
// whether by exhaustion, an error, or the caller breaking out early.
func File(path string, size int) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		f, _, err := safefile.OpenRegular(path)
		if err != nil {
			yield(Chunk{}, err)
			return
		}
		defer f.Close()

		for c, err := range NewReader(f, size).All() {
			if !yield(c, err) {
				return
			}
		}
	}
}

// runeBoundary returns the length of the longest prefix of b that does
// not end inside a UTF-8 sequence.
func runeBoundary(b []byte) int {
	limit := len(b) - utf8.UTFMax
	for i := len(b) - 1; i >= 0 && i > limit; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) || i == 0 {
			return len(b)
		}
		return i
	}
	return len(b)
}
