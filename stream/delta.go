package stream

import (
	"fmt"

	"github.com/arloliu/seqcodec/errs"
)

// DeltaWriter transforms a non-decreasing sequence of values into a sequence
// of non-negative differences, forwarding each difference to the wrapped
// stream.
//
// Because the input must be non-decreasing, every forwarded delta is small
// for slowly-growing sequences (such as sorted timestamps) and encodes
// compactly under the varint layer beneath. Regular sampling intervals
// produce constant deltas, which a run-length layer beneath collapses
// further.
type DeltaWriter[T Unsigned] struct {
	inner Writer[T]
	prev  T
}

var _ Writer[uint64] = (*DeltaWriter[uint64])(nil)

// NewDeltaWriter creates a delta writer over the given stream.
//
// The previous-value state starts at zero, so the first Put forwards the
// value itself as the first delta.
func NewDeltaWriter[T Unsigned](inner Writer[T]) *DeltaWriter[T] {
	return &DeltaWriter[T]{inner: inner}
}

// Put forwards value-previous to the underlying stream and records value as
// the new previous.
//
// The input sequence must be non-decreasing: value < previous is a caller
// contract violation reported as errs.ErrNonMonotonicInput. On violation the
// underlying stream is left untouched, so a rejected Put never corrupts the
// encoded output.
func (w *DeltaWriter[T]) Put(value T) error {
	if value < w.prev {
		return fmt.Errorf("%w: value %d is less than previous %d", errs.ErrNonMonotonicInput, value, w.prev)
	}

	if err := w.inner.Put(value - w.prev); err != nil {
		return err
	}
	w.prev = value

	return nil
}

// Size returns the byte size of the underlying stream.
func (w *DeltaWriter[T]) Size() int {
	return w.inner.Size()
}

// Close closes the underlying stream. The delta layer has no pending state
// of its own.
func (w *DeltaWriter[T]) Close() error {
	return w.inner.Close()
}

// DeltaReader is the exact inverse of DeltaWriter: it reads one delta from
// the wrapped stream per Next call and reconstructs the original value as
// previous+delta.
//
// For any sequence accepted by the writer, reading the same number of values
// back reproduces the sequence exactly.
type DeltaReader[T Unsigned] struct {
	inner Reader[T]
	prev  T
}

var _ Reader[uint64] = (*DeltaReader[uint64])(nil)

// NewDeltaReader creates a delta reader over the given stream.
func NewDeltaReader[T Unsigned](inner Reader[T]) *DeltaReader[T] {
	return &DeltaReader[T]{inner: inner}
}

// Next reads one delta from the underlying stream and returns
// previous+delta, updating the previous-value state.
func (r *DeltaReader[T]) Next() (T, error) {
	delta, err := r.inner.Next()
	if err != nil {
		return 0, err
	}

	r.prev += delta

	return r.prev, nil
}
