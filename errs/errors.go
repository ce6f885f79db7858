// Package errs defines the sentinel errors shared by all seqcodec packages.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to add context,
// so callers can classify failures with errors.Is while still getting a
// descriptive message.
package errs

import "errors"

var (
	// ErrBufferUnderrun is returned when a read operation reaches the end of
	// the available bytes before a complete value could be decoded. For
	// sequential readers that do not know the value count in advance, callers
	// may treat this as an end-of-data signal rather than corruption.
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrOverflow is returned when a decoded magnitude exceeds the bit width
	// of the target integer type. Malformed or adversarial input is rejected
	// rather than silently truncated or wrapped.
	ErrOverflow = errors.New("varint overflow")

	// ErrNonMonotonicInput is returned when a value smaller than its
	// predecessor is put into a delta writer. This is a caller contract
	// violation; the underlying stream is left untouched.
	ErrNonMonotonicInput = errors.New("non-monotonic input")

	// ErrInsufficientSpace is returned when a bounds-checked encode target is
	// too small to hold the encoded bytes. The target buffer is left
	// unmodified; the growable-buffer encode path never fails on space.
	ErrInsufficientSpace = errors.New("insufficient space")
)
