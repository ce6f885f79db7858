package stream

import (
	"fmt"

	"github.com/arloliu/seqcodec/errs"
)

// RunLengthWriter collapses consecutive equal values into (count, value)
// pairs, forwarding each pair to the wrapped stream with the count first.
//
// Repetition is most common in the delta domain: a constant sampling
// interval produces a constant delta, so the typical stack feeds a delta
// layer's output through a run-length layer into the varint byte stream.
//
// The writer keeps exactly one open run (current value and count). A run is
// flushed when a differing value arrives and once more, unconditionally, on
// Close. Closing a writer that never saw a Put emits the degenerate pair
// (0, 0); readers treat a zero count as end-of-data (see RunLengthReader).
type RunLengthWriter[T Unsigned] struct {
	inner Writer[T]
	value T
	count T
}

var _ Writer[uint64] = (*RunLengthWriter[uint64])(nil)

// NewRunLengthWriter creates a run-length writer over the given stream.
func NewRunLengthWriter[T Unsigned](inner Writer[T]) *RunLengthWriter[T] {
	return &RunLengthWriter[T]{inner: inner}
}

// Put extends the open run when value matches it, otherwise flushes the open
// run to the underlying stream and starts a new run of length one.
//
// A run longer than T's maximum value splits into multiple pairs so the
// count never wraps; readers handle consecutive pairs with the same value
// transparently.
func (w *RunLengthWriter[T]) Put(value T) error {
	switch {
	case value != w.value:
		if w.count > 0 {
			if err := w.flush(); err != nil {
				return err
			}
		}
		w.value = value
		w.count = 0
	case w.count == ^T(0):
		if err := w.flush(); err != nil {
			return err
		}
		w.count = 0
	}
	w.count++

	return nil
}

// flush emits the open run as a (count, value) pair, count first.
func (w *RunLengthWriter[T]) flush() error {
	if err := w.inner.Put(w.count); err != nil {
		return err
	}

	return w.inner.Put(w.value)
}

// Size returns the byte size of the underlying stream.
//
// Note that the open run is not included until it is flushed.
func (w *RunLengthWriter[T]) Size() int {
	return w.inner.Size()
}

// Close flushes the open run unconditionally and closes the underlying
// stream.
//
// The terminal flush happens even when no value was ever put, emitting a
// (0, 0) pair. This preserves the wire format: a decoder can rely on every
// closed run-length stream ending in a complete pair.
func (w *RunLengthWriter[T]) Close() error {
	if err := w.flush(); err != nil {
		return err
	}

	return w.inner.Close()
}

// RunLengthReader expands (count, value) pairs read from the wrapped stream
// back into individual values.
//
// A refill pair with count zero marks the end of the logical sequence (the
// degenerate pair a writer emits when closed without any Put) and is
// reported as errs.ErrBufferUnderrun, the same signal as an exhausted
// underlying stream.
type RunLengthReader[T Unsigned] struct {
	inner     Reader[T]
	value     T
	remaining T
}

var _ Reader[uint64] = (*RunLengthReader[uint64])(nil)

// NewRunLengthReader creates a run-length reader over the given stream.
func NewRunLengthReader[T Unsigned](inner Reader[T]) *RunLengthReader[T] {
	return &RunLengthReader[T]{inner: inner}
}

// Next returns the next value, refilling from a (count, value) pair when the
// buffered run is exhausted.
func (r *RunLengthReader[T]) Next() (T, error) {
	if r.remaining == 0 {
		count, err := r.inner.Next()
		if err != nil {
			return 0, err
		}
		value, err := r.inner.Next()
		if err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, fmt.Errorf("%w: zero-length run marks end of stream", errs.ErrBufferUnderrun)
		}

		r.value = value
		r.remaining = count
	}
	r.remaining--

	return r.value, nil
}
