// Package seqcodec provides a small stack of composable binary codecs for
// compactly serializing sequences of unsigned integers inside a columnar or
// time-series storage engine.
//
// Three primitives, each exploiting a different statistical property, stack
// transparently through a uniform stream contract:
//
//   - base-128 varint encoding for general magnitude
//   - delta encoding for monotonic growth
//   - run-length encoding for repetition
//
// # Basic Usage
//
// Encoding a sorted sequence (e.g. timestamps at a mostly-regular interval):
//
//	writer := seqcodec.NewSortedWriter[uint64]()
//	defer writer.Finish()
//
//	for _, ts := range timestamps {
//	    if err := writer.Put(ts); err != nil {
//	        return err
//	    }
//	}
//	if err := writer.Close(); err != nil {
//	    return err
//	}
//	encoded := writer.Bytes() // copy if it must outlive the writer
//
// Decoding requires the caller to know the value count; the encoded form is
// not self-delimiting:
//
//	reader := seqcodec.NewSortedReader[uint64](encoded)
//	for i := 0; i < count; i++ {
//	    ts, err := reader.Next()
//	    ...
//	}
//
// # Package Structure
//
// This package provides convenient wrappers around the stream package for
// the common pipeline shapes. For custom layer stacking, use the stream
// package directly; for byte-level compression of finalized buffers, use
// the compress package.
package seqcodec

import (
	"fmt"

	"github.com/arloliu/seqcodec/compress"
	"github.com/arloliu/seqcodec/endian"
	"github.com/arloliu/seqcodec/format"
	"github.com/arloliu/seqcodec/stream"
)

// EncodedWriter is the uniform surface of the prebuilt writer pipelines: a
// stream writer plus access to the finalized bytes and the buffer lifecycle.
type EncodedWriter[T stream.Unsigned] interface {
	stream.Writer[T]
	// Bytes returns the encoded byte slice. The slice references the
	// internal buffer and is valid until Finish is called.
	Bytes() []byte
	// Finish returns buffer resources to the pool and invalidates the writer.
	Finish()
}

// NewWriter creates the prebuilt writer pipeline for the specified encoding.
//
// format.TypeVarint yields a bare base-128 stream, format.TypeDelta the
// sorted pipeline, format.TypeRLE the repeat pipeline, and format.TypeRaw a
// little-endian fixed-width stream.
func NewWriter[T stream.Unsigned](encoding format.EncodingType) (EncodedWriter[T], error) {
	switch encoding {
	case format.TypeVarint:
		return stream.NewBase128Writer[T](), nil
	case format.TypeDelta:
		return NewSortedWriter[T](), nil
	case format.TypeRLE:
		return NewRepeatWriter[T](), nil
	case format.TypeRaw:
		return stream.NewRawWriter[T](endian.GetLittleEndianEngine()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding type: %s", encoding)
	}
}

// NewReader creates the mirrored reader pipeline for data produced by a
// NewWriter of the same encoding and element type.
func NewReader[T stream.Unsigned](data []byte, encoding format.EncodingType) (stream.Reader[T], error) {
	switch encoding {
	case format.TypeVarint:
		return stream.NewBase128Reader[T](data), nil
	case format.TypeDelta:
		return NewSortedReader[T](data), nil
	case format.TypeRLE:
		return NewRepeatReader[T](data), nil
	case format.TypeRaw:
		return stream.NewRawReader[T](data, endian.GetLittleEndianEngine()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding type: %s", encoding)
	}
}

// SortedWriter encodes a non-decreasing sequence as run-length collapsed
// deltas over a base-128 byte stream.
//
// This is the densest of the prebuilt pipelines for sorted sequences with
// regular gaps: a constant sampling interval becomes a constant delta,
// which collapses to a single (count, delta) pair.
type SortedWriter[T stream.Unsigned] struct {
	outer *stream.DeltaWriter[T]
	base  *stream.Base128Writer[T]
}

// NewSortedWriter creates a writer pipeline of delta over run-length over
// base-128 varint for non-decreasing input.
func NewSortedWriter[T stream.Unsigned]() *SortedWriter[T] {
	base := stream.NewBase128Writer[T]()

	return &SortedWriter[T]{
		outer: stream.NewDeltaWriter[T](stream.NewRunLengthWriter[T](base)),
		base:  base,
	}
}

// Put pushes one value into the pipeline. The input sequence must be
// non-decreasing; violations fail with errs.ErrNonMonotonicInput.
func (w *SortedWriter[T]) Put(value T) error {
	return w.outer.Put(value)
}

// Size returns the number of encoded bytes accumulated so far, excluding
// any unflushed run state.
func (w *SortedWriter[T]) Size() int {
	return w.outer.Size()
}

// Close flushes pending state down the pipeline. It must be called exactly
// once, before Bytes() is read back.
func (w *SortedWriter[T]) Close() error {
	return w.outer.Close()
}

// Bytes returns the encoded byte slice. The slice references the internal
// buffer and is valid until Finish is called.
func (w *SortedWriter[T]) Bytes() []byte {
	return w.base.Bytes()
}

// Finish returns buffer resources to the pool and invalidates the writer.
func (w *SortedWriter[T]) Finish() {
	w.base.Finish()
}

// NewSortedReader creates the mirrored reader pipeline for data produced by
// a SortedWriter.
func NewSortedReader[T stream.Unsigned](data []byte) *stream.DeltaReader[T] {
	return stream.NewDeltaReader[T](stream.NewRunLengthReader[T](stream.NewBase128Reader[T](data)))
}

// RepeatWriter encodes a sequence with long runs of equal values (no
// ordering constraint) as (count, value) varint pairs.
type RepeatWriter[T stream.Unsigned] struct {
	outer *stream.RunLengthWriter[T]
	base  *stream.Base128Writer[T]
}

// NewRepeatWriter creates a writer pipeline of run-length over base-128
// varint.
func NewRepeatWriter[T stream.Unsigned]() *RepeatWriter[T] {
	base := stream.NewBase128Writer[T]()

	return &RepeatWriter[T]{
		outer: stream.NewRunLengthWriter[T](base),
		base:  base,
	}
}

// Put pushes one value into the pipeline.
func (w *RepeatWriter[T]) Put(value T) error {
	return w.outer.Put(value)
}

// Size returns the number of encoded bytes accumulated so far, excluding
// the open run.
func (w *RepeatWriter[T]) Size() int {
	return w.outer.Size()
}

// Close flushes the open run. It must be called exactly once, before
// Bytes() is read back.
func (w *RepeatWriter[T]) Close() error {
	return w.outer.Close()
}

// Bytes returns the encoded byte slice. The slice references the internal
// buffer and is valid until Finish is called.
func (w *RepeatWriter[T]) Bytes() []byte {
	return w.base.Bytes()
}

// Finish returns buffer resources to the pool and invalidates the writer.
func (w *RepeatWriter[T]) Finish() {
	w.base.Finish()
}

// NewRepeatReader creates the mirrored reader pipeline for data produced by
// a RepeatWriter.
func NewRepeatReader[T stream.Unsigned](data []byte) *stream.RunLengthReader[T] {
	return stream.NewRunLengthReader[T](stream.NewBase128Reader[T](data))
}

// Compress compresses a finalized encoded buffer with the specified
// algorithm. Pass format.CompressionNone to bypass.
func Compress(data []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress reverses Compress for the specified algorithm.
func Decompress(data []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
