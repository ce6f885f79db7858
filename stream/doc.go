// Package stream implements the composable integer stream codecs at the core
// of seqcodec: a base-128 varint byte stream, a delta layer, a run-length
// layer and a fixed-width raw stream.
//
// # Composition model
//
// Every codec layer implements the same narrow contract — Writer (Put /
// Size / Close) on the encode path, Reader (Next) on the decode path — and
// wraps another stream implementing the same contract. A pipeline is built
// innermost-out: the Base128Writer owns the byte buffer, and decorator
// layers transform values on the way down to it. Each layer is oblivious to
// what sits above or below it, so layers stack in any order.
//
// The typical stack for sorted sequences with regular gaps (such as
// timestamps at a fixed sampling interval) feeds deltas through run-length
// collapsing into varints:
//
//	base := stream.NewBase128Writer[uint64]()
//	rle := stream.NewRunLengthWriter[uint64](base)
//	writer := stream.NewDeltaWriter[uint64](rle)
//
//	for _, v := range values {
//	    if err := writer.Put(v); err != nil {
//	        return err
//	    }
//	}
//	if err := writer.Close(); err != nil {
//	    return err
//	}
//	encoded := base.Bytes() // copy before base.Finish()
//
// A constant sampling interval becomes a constant delta, which the
// run-length layer collapses to a single (count, delta) pair regardless of
// sequence length.
//
// Reading mirrors the writer stack exactly:
//
//	reader := stream.NewDeltaReader[uint64](
//	    stream.NewRunLengthReader[uint64](
//	        stream.NewBase128Reader[uint64](encoded)))
//
//	for i := 0; i < count; i++ {
//	    v, err := reader.Next()
//	    ...
//	}
//
// # Caller responsibilities
//
// The encoded streams are not self-delimiting: the caller records how many
// values were encoded and drives the reader accordingly. Close must be
// called exactly once, on the outermost writer; it flushes pending state
// (the run-length layer's open run) down the stack. The backing buffer is
// exclusively owned by the writer during encoding and must not be handed to
// a reader until the pipeline has been closed.
//
// # Error model
//
// All operations are synchronous, in-memory transforms; failures are
// immediate and never retried. The sentinel kinds live in the errs package:
// ErrBufferUnderrun (read past available bytes, also the end-of-data signal
// for sequential readers), ErrOverflow (decoded magnitude exceeds the value
// type's width), ErrNonMonotonicInput (delta precondition violated) and
// ErrInsufficientSpace (bounds-checked encode target too small).
package stream
