package stream

import (
	"testing"

	"github.com/arloliu/seqcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestBase128Writer_PutAndSize(t *testing.T) {
	writer := NewBase128Writer[uint64]()
	defer writer.Finish()

	require.Equal(t, 0, writer.Size())
	require.Empty(t, writer.Bytes())

	require.NoError(t, writer.Put(0))
	require.Equal(t, 1, writer.Size())

	require.NoError(t, writer.Put(300))
	require.Equal(t, 3, writer.Size())
	require.Equal(t, []byte{0x00, 0xac, 0x02}, writer.Bytes())
}

func TestBase128Writer_CloseIsNoOp(t *testing.T) {
	writer := NewBase128Writer[uint64]()
	defer writer.Finish()

	require.NoError(t, writer.Put(42))
	before := append([]byte(nil), writer.Bytes()...)

	require.NoError(t, writer.Close())
	require.Equal(t, before, writer.Bytes(), "close must not add trailing framing")
}

func TestBase128Writer_Reset(t *testing.T) {
	writer := NewBase128Writer[uint64]()
	defer writer.Finish()

	require.NoError(t, writer.Put(1))
	require.NoError(t, writer.Put(2))
	writer.Reset()

	require.Equal(t, 0, writer.Size())
	require.NoError(t, writer.Put(7))
	require.Equal(t, []byte{0x07}, writer.Bytes())
}

func TestBase128Writer_PutAfterFinishPanics(t *testing.T) {
	writer := NewBase128Writer[uint64]()
	writer.Finish()

	require.Panics(t, func() { _ = writer.Put(1) })
	require.Panics(t, func() { _ = writer.Bytes() })
	require.Panics(t, func() { _ = writer.Size() })

	// Double Finish is safe.
	require.NotPanics(t, writer.Finish)
}

func TestBase128Reader_Next(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 40}

	writer := NewBase128Writer[uint64]()
	defer writer.Finish()
	for _, v := range values {
		require.NoError(t, writer.Put(v))
	}

	reader := NewBase128Reader[uint64](writer.Bytes())
	for _, want := range values {
		got, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, writer.Size(), reader.Offset())
	require.Equal(t, 0, reader.Remaining())
}

func TestBase128Reader_UnderrunAtEnd(t *testing.T) {
	reader := NewBase128Reader[uint64]([]byte{0x05})

	got, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(5), got)

	_, err = reader.Next()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestBase128Reader_EmptyBuffer(t *testing.T) {
	reader := NewBase128Reader[uint64](nil)

	_, err := reader.Next()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestBase128Reader_TruncatedVarint(t *testing.T) {
	// Continuation bit set on the last available byte.
	reader := NewBase128Reader[uint64]([]byte{0x05, 0xff})

	got, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(5), got)

	_, err = reader.Next()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
	require.Equal(t, 1, reader.Offset(), "failed decode must not advance the cursor")
}

func TestBase128Reader_DoesNotMutateSource(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	snapshot := append([]byte(nil), data...)

	reader := NewBase128Reader[uint64](data)
	for n := 0; n < 3; n++ {
		_, err := reader.Next()
		require.NoError(t, err)
	}

	require.Equal(t, snapshot, data)
}
