package stream

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/seqcodec/errs"
)

// bitWidth returns the bit width of the unsigned type T.
func bitWidth[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// MaxUvarintLen returns the maximum encoded length in bytes of a base-128
// varint of type T: ceil(width/7).
//
// Useful for pre-growing buffers before an append.
func MaxUvarintLen[T Unsigned]() int {
	return int(bitWidth[T]()+6) / 7
}

// UvarintLen returns the exact encoded length in bytes of v.
//
// The length is the minimal number of 7-bit groups needed to represent v,
// with a minimum of one byte: UvarintLen(0) == 1.
func UvarintLen[T Unsigned](v T) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// AppendUvarint appends the base-128 encoding of v to dst and returns the
// extended slice.
//
// Each output byte carries 7 payload bits in bits 0-6, least-significant
// group first; bit 7 is set on every byte except the last. The value zero
// encodes as a single 0x00 byte. This variant targets a growable buffer and
// never fails on space; for fixed-capacity targets use PutUvarint.
func AppendUvarint[T Unsigned](dst []byte, v T) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// PutUvarint encodes v into the fixed-capacity buffer dst and returns the
// number of bytes written.
//
// Unlike AppendUvarint, this variant is bounds-checked: if dst is too small
// to hold the complete encoding it returns errs.ErrInsufficientSpace and
// leaves dst untouched, so a failed encode never produces a partial value.
func PutUvarint[T Unsigned](dst []byte, v T) (int, error) {
	need := UvarintLen(v)
	if need > len(dst) {
		return 0, fmt.Errorf("%w: varint needs %d bytes, buffer has %d", errs.ErrInsufficientSpace, need, len(dst))
	}

	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)

	return i + 1, nil
}

// Uvarint decodes one base-128 varint of type T from data starting at
// offset.
//
// It returns the decoded value and the offset of the first byte after the
// consumed encoding. On failure the returned offset equals the input offset,
// so a failed decode never advances the cursor.
//
// Failure conditions:
//   - errs.ErrBufferUnderrun: offset is out of range, or data ends before a
//     terminating byte (high bit clear) is found.
//   - errs.ErrOverflow: the accumulated magnitude exceeds the bit width of
//     T. Oversized input is rejected, never truncated or wrapped.
func Uvarint[T Unsigned](data []byte, offset int) (T, int, error) {
	if offset < 0 || offset >= len(data) {
		return 0, offset, fmt.Errorf("%w: offset %d out of range for %d bytes", errs.ErrBufferUnderrun, offset, len(data))
	}

	width := bitWidth[T]()

	var acc T
	var shift uint
	for i := offset; i < len(data); i++ {
		group := T(data[i] & 0x7f)
		if shift >= width || (group != 0 && shift+uint(bits.Len64(uint64(group))) > width) {
			return 0, offset, fmt.Errorf("%w: value exceeds %d bits at offset %d", errs.ErrOverflow, width, offset)
		}

		acc |= group << shift
		if data[i] < 0x80 {
			return acc, i + 1, nil
		}
		shift += 7
	}

	return 0, offset, fmt.Errorf("%w: unterminated varint at offset %d", errs.ErrBufferUnderrun, offset)
}
