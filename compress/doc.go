// Package compress provides byte-level compression codecs for finalized
// seqcodec stream buffers.
//
// Encoded columns go through a two-stage strategy:
//
//  1. Encoding: the stream codecs exploit structure in the values
//     (delta for monotonic growth, run-length for repetition, varint for
//     magnitude).
//  2. Compression: a general-purpose algorithm squeezes whatever entropy
//     remains in the encoded bytes.
//
// This package implements the second stage. The storage layer that owns the
// encoded buffers decides whether and when to apply it; the stream codecs
// themselves never compress.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// Use CreateCodec or GetCodec to obtain a Codec for a compression type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(encoded)
//
// All codecs are safe for concurrent use; internal encoder/decoder state is
// pooled per operation.
package compress
