package stream

import (
	"testing"

	"github.com/arloliu/seqcodec/endian"
	"github.com/arloliu/seqcodec/errs"
	"github.com/stretchr/testify/require"
)

// The recommended stack for sorted sequences: deltas flow through run-length
// collapsing into the varint byte stream, and the reader mirrors it.
func buildSortedPipeline(t *testing.T) (*DeltaWriter[uint64], *Base128Writer[uint64]) {
	t.Helper()
	base := NewBase128Writer[uint64]()
	t.Cleanup(base.Finish)

	return NewDeltaWriter[uint64](NewRunLengthWriter[uint64](base)), base
}

func TestComposedPipeline_RoundTrip(t *testing.T) {
	values := []uint64{100, 100, 101, 101, 101, 200}

	writer, base := buildSortedPipeline(t)
	for _, v := range values {
		require.NoError(t, writer.Put(v))
	}
	require.NoError(t, writer.Close())

	reader := NewDeltaReader[uint64](NewRunLengthReader[uint64](NewBase128Reader[uint64](base.Bytes())))
	for _, want := range values {
		got, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := reader.Next()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestComposedPipeline_SmallerThanRaw(t *testing.T) {
	values := []uint64{100, 100, 101, 101, 101, 200}

	writer, base := buildSortedPipeline(t)
	for _, v := range values {
		require.NoError(t, writer.Put(v))
	}
	require.NoError(t, writer.Close())

	raw := NewRawWriter[uint64](endian.GetLittleEndianEngine())
	defer raw.Finish()
	for _, v := range values {
		require.NoError(t, raw.Put(v))
	}

	require.Less(t, base.Size(), raw.Size(),
		"repeated deltas must encode strictly smaller than fixed-width values")
}

func TestComposedPipeline_ConstantInterval(t *testing.T) {
	// A fixed sampling interval collapses to the first delta pair plus a
	// single run pair, regardless of sequence length.
	const count = 1000
	values := make([]uint64, count)
	for i := range values {
		values[i] = 1672531200000000 + uint64(i)*1000000
	}

	writer, base := buildSortedPipeline(t)
	for _, v := range values {
		require.NoError(t, writer.Put(v))
	}
	require.NoError(t, writer.Close())

	// (1, first) + (count-1, interval): two pairs total.
	require.Less(t, base.Size(), 24)

	reader := NewDeltaReader[uint64](NewRunLengthReader[uint64](NewBase128Reader[uint64](base.Bytes())))
	for _, want := range values {
		got, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestComposedPipeline_NonMonotonicRejectedThroughStack(t *testing.T) {
	writer, base := buildSortedPipeline(t)

	require.NoError(t, writer.Put(100))
	require.NoError(t, writer.Put(100))
	sizeBefore := base.Size()

	err := writer.Put(99)
	require.ErrorIs(t, err, errs.ErrNonMonotonicInput)
	require.Equal(t, sizeBefore, base.Size())
}
