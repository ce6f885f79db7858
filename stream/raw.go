package stream

import (
	"fmt"

	"github.com/arloliu/seqcodec/endian"
	"github.com/arloliu/seqcodec/errs"
	"github.com/arloliu/seqcodec/internal/pool"
)

// byteWidth returns the fixed encoded width in bytes of the unsigned type T.
func byteWidth[T Unsigned]() int {
	return int(bitWidth[T]()) / 8
}

// RawWriter stores each value at its fixed width using the configured endian
// engine, with no transformation.
//
// Raw encoding trades space for speed and random access: every value costs
// exactly the width of T, and the Nth value lives at byte offset N*width.
// It is the baseline the varint stack is measured against, and a useful
// innermost stream when values are large and unordered so neither delta nor
// varint encoding helps.
type RawWriter[T Unsigned] struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

var _ Writer[uint64] = (*RawWriter[uint64])(nil)

// NewRawWriter creates a fixed-width writer using the specified endian
// engine (typically little-endian) over an empty pooled buffer.
func NewRawWriter[T Unsigned](engine endian.EndianEngine) *RawWriter[T] {
	return &RawWriter[T]{
		buf:    pool.GetStreamBuffer(),
		engine: engine,
	}
}

// Put appends value at its fixed width to the backing buffer.
func (w *RawWriter[T]) Put(value T) error {
	if w.buf == nil {
		panic("writer already finished - cannot put after Finish()")
	}

	width := byteWidth[T]()
	start := w.buf.Len()
	w.buf.ExtendOrGrow(width)
	dst := w.buf.B[start:]
	switch width {
	case 1:
		dst[0] = byte(value)
	case 2:
		w.engine.PutUint16(dst, uint16(value))
	case 4:
		w.engine.PutUint32(dst, uint32(value))
	default:
		w.engine.PutUint64(dst, uint64(value))
	}

	return nil
}

// Size returns the current length of the encoded buffer in bytes.
func (w *RawWriter[T]) Size() int {
	if w.buf == nil {
		panic("writer already finished - cannot access size after Finish()")
	}

	return w.buf.Len()
}

// Close is a no-op: raw streams need no trailing framing.
func (w *RawWriter[T]) Close() error {
	return nil
}

// Bytes returns the encoded byte slice.
//
// The returned slice references the internal buffer and is valid until the
// next call to Put or Finish. The caller must not modify it.
func (w *RawWriter[T]) Bytes() []byte {
	if w.buf == nil {
		panic("writer already finished - cannot access bytes after Finish()")
	}

	return w.buf.Bytes()
}

// Reset clears the writer so it can encode a new sequence, retaining the
// allocated buffer.
func (w *RawWriter[T]) Reset() {
	if w.buf != nil {
		w.buf.Reset()
	}
}

// Finish returns the backing buffer to the pool and invalidates the writer.
func (w *RawWriter[T]) Finish() {
	if w.buf != nil {
		pool.PutStreamBuffer(w.buf)
		w.buf = nil
	}
}

// RawReader is a read-only cursor over fixed-width encoded data.
type RawReader[T Unsigned] struct {
	data   []byte
	engine endian.EndianEngine
	pos    int
}

var _ Reader[uint64] = (*RawReader[uint64])(nil)

// NewRawReader creates a fixed-width reader over data using the specified
// endian engine. The engine must match the one the data was written with.
func NewRawReader[T Unsigned](data []byte, engine endian.EndianEngine) *RawReader[T] {
	return &RawReader[T]{
		data:   data,
		engine: engine,
	}
}

// Next reads one fixed-width value at the cursor and advances past it.
func (r *RawReader[T]) Next() (T, error) {
	width := byteWidth[T]()
	if r.pos+width > len(r.data) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrBufferUnderrun, width, r.pos, len(r.data)-r.pos)
	}

	var value T
	switch width {
	case 1:
		value = T(r.data[r.pos])
	case 2:
		value = T(r.engine.Uint16(r.data[r.pos : r.pos+2]))
	case 4:
		value = T(r.engine.Uint32(r.data[r.pos : r.pos+4]))
	default:
		value = T(r.engine.Uint64(r.data[r.pos : r.pos+8]))
	}
	r.pos += width

	return value, nil
}

// At returns the value at the specified index without moving the cursor.
//
// Raw encoding supports random access: the value at index lives at byte
// offset index*width. Returns false when the index is out of bounds.
func (r *RawReader[T]) At(index int) (T, bool) {
	width := byteWidth[T]()
	offset := index * width
	if index < 0 || offset+width > len(r.data) {
		return 0, false
	}

	switch width {
	case 1:
		return T(r.data[offset]), true
	case 2:
		return T(r.engine.Uint16(r.data[offset : offset+2])), true
	case 4:
		return T(r.engine.Uint32(r.data[offset : offset+4])), true
	default:
		return T(r.engine.Uint64(r.data[offset : offset+8])), true
	}
}
