package stream

import (
	"fmt"

	"github.com/arloliu/seqcodec/errs"
	"github.com/arloliu/seqcodec/internal/pool"
)

// Base128Writer is the innermost stream of a writer pipeline: it owns the
// encoded byte buffer and appends one base-128 varint per value.
//
// The writer uses a pooled byte buffer with amortized growth, so Put never
// fails on space. Decorator layers (delta, run-length) wrap a Base128Writer
// and forward transformed values into it.
//
// Lifecycle: retrieve the encoded bytes with Bytes() before calling
// Finish(), which returns the buffer to the pool and invalidates the writer.
type Base128Writer[T Unsigned] struct {
	buf *pool.ByteBuffer
}

var _ Writer[uint64] = (*Base128Writer[uint64])(nil)

// NewBase128Writer creates a base-128 varint writer over an empty pooled
// buffer.
func NewBase128Writer[T Unsigned]() *Base128Writer[T] {
	return &Base128Writer[T]{
		buf: pool.GetStreamBuffer(),
	}
}

// Put appends the varint encoding of value to the backing buffer.
//
// The buffer grows as needed; this operation never fails on space.
// Panics if Finish() has been called (nil buffer).
func (w *Base128Writer[T]) Put(value T) error {
	if w.buf == nil {
		panic("writer already finished - cannot put after Finish()")
	}

	w.buf.Grow(MaxUvarintLen[T]())
	w.buf.B = AppendUvarint(w.buf.B, value)

	return nil
}

// Size returns the current length of the encoded buffer in bytes.
func (w *Base128Writer[T]) Size() int {
	if w.buf == nil {
		panic("writer already finished - cannot access size after Finish()")
	}

	return w.buf.Len()
}

// Close is a no-op: the byte stream needs no trailing framing.
func (w *Base128Writer[T]) Close() error {
	return nil
}

// Bytes returns the encoded byte slice.
//
// The returned slice references the internal buffer and is valid until the
// next call to Put or Finish. The caller must not modify it.
func (w *Base128Writer[T]) Bytes() []byte {
	if w.buf == nil {
		panic("writer already finished - cannot access bytes after Finish()")
	}

	return w.buf.Bytes()
}

// Reset clears the writer so it can encode a new sequence, retaining the
// allocated buffer.
func (w *Base128Writer[T]) Reset() {
	if w.buf != nil {
		w.buf.Reset()
	}
}

// Finish returns the backing buffer to the pool.
//
// After calling Finish the writer is no longer usable; Put, Size and Bytes
// will panic. Copy the result of Bytes() first if it must outlive the
// writer.
func (w *Base128Writer[T]) Finish() {
	if w.buf != nil {
		pool.PutStreamBuffer(w.buf)
		w.buf = nil
	}
}

// Base128Reader is the innermost stream of a reader pipeline: a read-only
// cursor over an already-finalized encoded buffer.
//
// The reader never modifies the source buffer. It fails with
// errs.ErrBufferUnderrun once the cursor reaches the end bound, which
// sequential callers may treat as end-of-data.
type Base128Reader[T Unsigned] struct {
	data []byte
	pos  int
	end  int
}

var _ Reader[uint64] = (*Base128Reader[uint64])(nil)

// NewBase128Reader creates a varint reader over data.
//
// The caller retains ownership of data and must not mutate it while the
// reader is in use.
func NewBase128Reader[T Unsigned](data []byte) *Base128Reader[T] {
	return &Base128Reader[T]{
		data: data,
		end:  len(data),
	}
}

// Next decodes one varint at the cursor and advances past it.
func (r *Base128Reader[T]) Next() (T, error) {
	if r.pos >= r.end {
		return 0, fmt.Errorf("%w: read past end of stream at offset %d", errs.ErrBufferUnderrun, r.pos)
	}

	value, next, err := Uvarint[T](r.data[:r.end], r.pos)
	if err != nil {
		return 0, err
	}
	r.pos = next

	return value, nil
}

// Offset returns the current read cursor position in bytes.
func (r *Base128Reader[T]) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Base128Reader[T]) Remaining() int {
	return r.end - r.pos
}
