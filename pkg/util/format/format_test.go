package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0B", FormatBytes(0))
	require.Equal(t, "512B", FormatBytes(512))
	require.Equal(t, "4KB", FormatBytes(4096))
	require.Equal(t, "1MB", FormatBytes(1<<20))
	require.Equal(t, "1.50MB", FormatBytes(3<<19))
	require.Equal(t, "2GB", FormatBytes(2<<30))
}

func TestParseBytes(t *testing.T) {
	cases := map[string]uint64{
		"0":     0,
		"512":   512,
		"512B":  512,
		"4KB":   4096,
		"4kb":   4096,
		"1MB":   1 << 20,
		"1.5MB": 3 << 19,
		"2GB":   2 << 30,
		" 8KB ": 8192,
		"1TB":   1 << 40,
	}

	for in, want := range cases {
		got, err := ParseBytes(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "abc", "-1", "-4KB", "KB"} {
		_, err := ParseBytes(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseBytesRoundTrip(t *testing.T) {
	for _, v := range []int64{1, 512, 4096, 1 << 20, 3 << 20, 1 << 30} {
		got, err := ParseBytes(FormatBytes(v))
		require.NoError(t, err)
		require.Equal(t, uint64(v), got)
	}
}

func TestParseOffset(t *testing.T) {
	cases := map[string]uint64{
		"0":      0,
		"4096":   4096,
		"0x1000": 4096,
		"0X10":   16,
		" 42 ":   42,
	}

	for in, want := range cases {
		got, err := ParseOffset(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "-1", "0x", "12g"} {
		_, err := ParseOffset(in)
		require.Error(t, err, "input %q", in)
	}
}
