package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/seqcodec/format"
	"github.com/stretchr/testify/require"
)

// repetitivepayload mimics an encoded stream with plenty of redundancy so
// the real algorithms have something to compress.
func repetitivePayload(size int) []byte {
	pattern := []byte{0x01, 0x64, 0x01, 0x00, 0x02, 0x00, 0x01, 0x63}
	data := make([]byte, 0, size)
	for len(data) < size {
		data = append(data, pattern...)
	}

	return data[:size]
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := repetitivePayload(4096)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	payload := repetitivePayload(16 * 1024)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionLZ4, "payload")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0xff), "payload")
	require.Error(t, err)
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}
