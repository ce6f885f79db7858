package stream

import (
	"math"
	"testing"

	"github.com/arloliu/seqcodec/endian"
	"github.com/arloliu/seqcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestRaw_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []uint64{0, 1, math.MaxUint64, 1 << 33, 42}

	writer := NewRawWriter[uint64](engine)
	defer writer.Finish()
	for _, v := range values {
		require.NoError(t, writer.Put(v))
	}
	require.NoError(t, writer.Close())
	require.Equal(t, 8*len(values), writer.Size())

	reader := NewRawReader[uint64](writer.Bytes(), engine)
	for _, want := range values {
		got, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := reader.Next()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestRaw_RoundTrip_NarrowWidths(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("uint16", func(t *testing.T) {
		writer := NewRawWriter[uint16](engine)
		defer writer.Finish()
		values := []uint16{0, 1, 256, math.MaxUint16}
		for _, v := range values {
			require.NoError(t, writer.Put(v))
		}
		require.Equal(t, 2*len(values), writer.Size())

		reader := NewRawReader[uint16](writer.Bytes(), engine)
		for _, want := range values {
			got, err := reader.Next()
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("uint32", func(t *testing.T) {
		writer := NewRawWriter[uint32](engine)
		defer writer.Finish()
		values := []uint32{0, math.MaxUint32, 7}
		for _, v := range values {
			require.NoError(t, writer.Put(v))
		}
		require.Equal(t, 4*len(values), writer.Size())

		reader := NewRawReader[uint32](writer.Bytes(), engine)
		for _, want := range values {
			got, err := reader.Next()
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})
}

func TestRaw_GrowsPastPooledCapacity(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	// 1000 uint64 values exceed the 4KiB pooled buffer and force a grow
	// mid-sequence.
	writer := NewRawWriter[uint64](engine)
	defer writer.Finish()
	const count = 1000
	for i := uint64(0); i < count; i++ {
		require.NoError(t, writer.Put(i*7))
	}
	require.Equal(t, 8*count, writer.Size())

	reader := NewRawReader[uint64](writer.Bytes(), engine)
	for i := uint64(0); i < count; i++ {
		got, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, i*7, got)
	}
}

func TestRaw_BigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	writer := NewRawWriter[uint32](engine)
	defer writer.Finish()
	require.NoError(t, writer.Put(0x01020304))
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, writer.Bytes())

	reader := NewRawReader[uint32](writer.Bytes(), engine)
	got, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), got)
}

func TestRawReader_At(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []uint64{10, 20, 30}

	writer := NewRawWriter[uint64](engine)
	defer writer.Finish()
	for _, v := range values {
		require.NoError(t, writer.Put(v))
	}

	reader := NewRawReader[uint64](writer.Bytes(), engine)
	for i, want := range values {
		got, ok := reader.At(i)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := reader.At(3)
	require.False(t, ok)
	_, ok = reader.At(-1)
	require.False(t, ok)

	// Random access must not disturb the sequential cursor.
	got, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(10), got)
}

func TestRawReader_TruncatedValue(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	reader := NewRawReader[uint64]([]byte{1, 2, 3}, engine)

	_, err := reader.Next()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}
