package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeVarint EncodingType = 0x1 // TypeVarint represents base-128 varint encoding.
	TypeDelta  EncodingType = 0x2 // TypeDelta represents delta encoding.
	TypeRLE    EncodingType = 0x3 // TypeRLE represents run-length encoding.
	TypeRaw    EncodingType = 0x4 // TypeRaw represents fixed-width raw encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeVarint:
		return "Varint"
	case TypeDelta:
		return "Delta"
	case TypeRLE:
		return "RLE"
	case TypeRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
