package compress

// NoOpCompressor provides a no-operation compressor that bypasses data without compression.
//
// This compressor is useful for:
//   - Testing and benchmarking scenarios where you want to measure overhead without compression
//   - Development environments where compression is disabled for debugging
//   - Scenarios where the encoded stream is already dense enough that general-purpose
//     compression adds no benefit
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress bypasses compression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress bypasses decompression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
