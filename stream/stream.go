package stream

// Unsigned constrains the value types the stream codecs operate on.
//
// Codec layers are generic over the unsigned width so the same pipeline code
// serves 16, 32 and 64-bit columns. The encoded byte length adapts to the
// width automatically (see MaxUvarintLen).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Writer is the value-stream contract every codec layer implements on the
// encode path.
//
// Layers compose by wrapping another Writer: the outermost layer receives
// caller values, transforms them, and forwards the result to the layer
// beneath. A layer never knows what is above or below it.
//
// Close must be called exactly once, on the outermost layer of a pipeline;
// it flushes any pending layer state (such as an open run) and propagates
// down to the innermost stream. Closing intermediate layers individually
// would flush their pending state twice.
type Writer[T Unsigned] interface {
	// Put pushes one value into the stream.
	Put(value T) error

	// Size returns the number of bytes accumulated in the backing stream.
	Size() int

	// Close flushes pending state and closes the underlying stream.
	Close() error
}

// Reader is the value-stream contract on the decode path.
//
// The encoded streams carry no self-describing length; the caller drives the
// reader and must know how many values were encoded. Reading past the end of
// the encoded data fails with errs.ErrBufferUnderrun, which sequential
// callers may treat as an end-of-data signal.
type Reader[T Unsigned] interface {
	// Next decodes and returns the next value from the stream.
	Next() (T, error)
}
