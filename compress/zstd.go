package compress

// ZstdCompressor provides Zstandard compression for finalized stream buffers.
//
// Zstd favors compression ratio over speed, making it the right choice for
// cold storage and archival of encoded columns, long retention windows, and
// network transfer where bandwidth is limited.
//
// Two implementations back this type, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings, fastest)
//   - pure-Go builds fall back to klauspost/compress/zstd
//
// Both produce standard Zstandard frames, so data compressed by one can be
// decompressed by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
