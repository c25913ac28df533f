package utf8scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateWellFormed(t *testing.T) {
	require := require.New(t)

	cases := [][]byte{
		[]byte(""),
		[]byte("hello world!"),
		[]byte("héllo"),      // 2-byte: é
		[]byte("中文"),    // 3-byte: 中文
		[]byte("\U0001F600"),      // 4-byte emoji
		{0xE0, 0xA0, 0x80},        // smallest valid 3-byte (U+0800)
		{0xED, 0x9F, 0xBF},        // U+D7FF, just below surrogate range
		{0xEE, 0x80, 0x80},        // U+E000, just above surrogate range
		{0xF0, 0x90, 0x80, 0x80},  // smallest valid 4-byte (U+10000)
		{0xF4, 0x8F, 0xBF, 0xBF},  // U+10FFFF, the maximum codepoint
	}

	for _, c := range cases {
		_, ok := Validate(c, true)
		require.True(ok, "%x", c)
	}
}

func TestValidateRejectsOverlong(t *testing.T) {
	require := require.New(t)

	cases := [][]byte{
		{0xC0, 0x80},       // overlong 2-byte NUL
		{0xC1, 0xBF},       // overlong 2-byte
		{0xE0, 0x80, 0x80}, // overlong 3-byte
		{0xE0, 0x9F, 0xBF}, // overlong 3-byte, just below the valid floor
		{0xF0, 0x80, 0x80, 0x80},
		{0xF0, 0x8F, 0xBF, 0xBF},
	}

	for _, c := range cases {
		_, ok := Validate(c, false)
		require.False(ok, "%x", c)
	}
}

func TestValidateRejectsSurrogates(t *testing.T) {
	require := require.New(t)

	cases := [][]byte{
		{0xED, 0xA0, 0x80}, // U+D800, lowest high surrogate
		{0xED, 0xBF, 0xBF}, // U+DFFF, highest low surrogate
	}

	for _, c := range cases {
		_, ok := Validate(c, false)
		require.False(ok, "%x", c)
	}
}

func TestValidateRejectsAboveMax(t *testing.T) {
	require := require.New(t)

	cases := [][]byte{
		{0xF4, 0x90, 0x80, 0x80}, // U+110000, just above U+10FFFF
		{0xF5, 0x80, 0x80, 0x80}, // invalid lead byte
		{0xF7, 0xBF, 0xBF, 0xBF},
	}

	for _, c := range cases {
		_, ok := Validate(c, false)
		require.False(ok, "%x", c)
	}
}

func TestValidateRejectsStrayContinuation(t *testing.T) {
	require := require.New(t)

	cases := [][]byte{
		{0x80},
		{0xBF},
		{'a', 0x80, 'b'},
	}

	for _, c := range cases {
		_, ok := Validate(c, false)
		require.False(ok, "%x", c)
	}
}

func TestValidateRejectsTruncatedSequences(t *testing.T) {
	require := require.New(t)

	cases := [][]byte{
		{0xC2},             // 2-byte lead, no continuation
		{0xE0, 0xA0},       // 3-byte, missing last continuation
		{0xF0, 0x90, 0x80}, // 4-byte, missing last continuation
	}

	for _, c := range cases {
		_, ok := Validate(c, false)
		require.False(ok, "%x", c)
	}
}

func TestValidateNULRejection(t *testing.T) {
	require := require.New(t)

	offset, ok := Validate([]byte{'a', 0x00, 'b'}, true)
	require.False(ok)
	require.Equal(1, offset)

	_, ok = Validate([]byte{'a', 0x00, 'b'}, false)
	require.True(ok)
}

func TestValidateASCIIFastPath(t *testing.T) {
	require := require.New(t)

	// A long ASCII-only run should validate without hitting the DFA branch
	// at all (exercised implicitly: if the DFA ran it would still accept,
	// so this mainly documents the fast path's existence).
	long := make([]byte, 4096)
	for i := range long {
		long[i] = byte('a' + i%26)
	}

	_, ok := Validate(long, true)
	require.True(ok)
}
