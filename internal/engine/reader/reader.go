// Package reader turns a stream of raw output chunks into complete lines.
package reader

import (
	"bytes"
)

// Source yields output produced since its previous read without blocking.
type Source interface {
	ReadIncremental() []byte
}

// Reader drains a Source and returns only fully terminated lines.
// A trailing fragment is held back and prepended to the next read,
// so a record is never split across two results.
type Reader struct {
	src  Source
	buf  []byte
	read uint64
}

// New creates a Reader over src.
func New(src Source) *Reader {
	return &Reader{src: src}
}

// Lines returns the complete lines that became available since the previous call.
// Line terminators are stripped; a "\r" before the "\n" is stripped as well.
// It returns nil when no complete line is available.
func (r *Reader) Lines() []string {
	chunk := r.src.ReadIncremental()
	if len(chunk) == 0 && bytes.IndexByte(r.buf, '\n') < 0 {
		return nil
	}
	r.read += uint64(len(chunk))
	r.buf = append(r.buf, chunk...)

	var lines []string
	for {
		i := bytes.IndexByte(r.buf, '\n')
		if i < 0 {
			break
		}
		line := bytes.TrimSuffix(r.buf[:i], []byte{'\r'})
		lines = append(lines, string(line))
		r.buf = r.buf[i+1:]
	}

	// Release the consumed prefix so the backing array does not grow without bound.
	if len(r.buf) == 0 {
		r.buf = nil
	} else {
		r.buf = bytes.Clone(r.buf)
	}
	return lines
}

// Pending returns the buffered unterminated fragment.
func (r *Reader) Pending() string {
	return string(r.buf)
}

// BytesRead returns the total number of bytes drained from the source.
func (r *Reader) BytesRead() uint64 {
	return r.read
}
