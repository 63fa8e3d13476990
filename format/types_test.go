package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseByteOrder(t *testing.T) {
	cases := map[string]ByteOrder{
		"little": LittleEndian,
		"LE":     LittleEndian,
		"big":    BigEndian,
		"Be":     BigEndian,
		"native": NativeEndian,
	}
	for name, want := range cases {
		got, err := ParseByteOrder(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseByteOrder("middle")
	require.Error(t, err)
}

func TestParseCompression(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	got, err := ParseCompression("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, got)

	_, err = ParseCompression("brotli")
	require.Error(t, err)
}

func TestStringUnknown(t *testing.T) {
	require.Equal(t, "Unknown", ByteOrder(0).String())
	require.Equal(t, "Unknown", CompressionType(0xF).String())
}
