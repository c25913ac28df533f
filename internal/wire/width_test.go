package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintByteWidth(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{0xFF, 1},
		{0x100, 2},
		{0xFFFF, 2},
		{0x10000, 4},
		{0xFFFFFFFF, 4},
		{0x100000000, 8},
		{^uint64(0), 8},
	}

	for _, c := range cases {
		require.Equal(c.want, UintByteWidth(c.v), "v=%#x", c.v)
	}
}

func TestIntByteWidth(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		v    int64
		want int
	}{
		{0, 1},
		{-100, 1},
		{100, 1},
		{127, 1},
		{-128, 1},
		{128, 2},
		{-129, 2},
		{32767, 2},
		{-32768, 2},
		{32768, 4},
		{-1 << 40, 8},
	}

	for _, c := range cases {
		require.Equal(c.want, IntByteWidth(c.v), "v=%d", c.v)
	}
}

func TestFitsSignedAtWidth(t *testing.T) {
	require := require.New(t)

	// 200 needs 1 unsigned byte but doesn't fit signed int8 (max 127).
	require.False(FitsSignedAtWidth(200, 1))
	require.True(FitsSignedAtWidth(100, 1))
	require.True(FitsSignedAtWidth(127, 1))
	require.False(FitsSignedAtWidth(128, 1))

	require.True(FitsSignedAtWidth(1<<63-1, 8))
	require.False(FitsSignedAtWidth(1<<63, 8))
}

func TestWidthMinimalityProperty(t *testing.T) {
	require := require.New(t)

	// For every width class boundary, the reported width is the smallest
	// of {1,2,4,8} able to hold the value.
	for _, v := range []uint64{0, 1, 0xFE, 0xFF, 0x100, 0xFFFE, 0xFFFF, 0x10000, 0xFFFFFFFE, 0xFFFFFFFF, 0x100000000} {
		w := UintByteWidth(v)
		require.Contains([]int{1, 2, 4, 8}, w)
		// v must fit in w bytes unsigned.
		if w < 8 {
			require.LessOrEqual(v, uint64(1)<<(8*w)-1)
		}
		// and must not fit in the next smaller native width, unless w==1.
		if w > 1 {
			smaller := w / 2
			require.Greater(v, uint64(1)<<(8*smaller)-1)
		}
	}
}
