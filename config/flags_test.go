package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDecodeFlags(t *testing.T) {
	require := require.New(t)

	f := DefaultDecodeFlags()
	require.True(f.RejectNUL)
	require.True(f.RejectInvalidUTF8)
	require.True(f.RejectDuplicateKeys)
	require.True(f.RejectTrailingBytes)
	require.True(f.RejectNonFiniteFloat)
	require.Equal(DefaultMaxDepth, f.MaxDepth)
	require.Equal(DefaultMaxStringLength, f.MaxStringLength)
	require.Equal(DefaultMaxContainerSize, f.MaxContainerSize)
	require.Equal(DefaultMaxDocumentSize, f.MaxDocumentSize)
}

func TestDefaultEncodeFlags(t *testing.T) {
	require := require.New(t)

	f := DefaultEncodeFlags()
	require.True(f.RejectNUL)
	require.True(f.RejectInvalidUTF8)
	require.True(f.RejectDuplicateKeys)
	require.True(f.RejectNonFiniteFloat)
	require.Equal(DefaultMaxDepth, f.MaxDepth)
}

func TestNewDecodeFlagsWithOptions(t *testing.T) {
	require := require.New(t)

	f := NewDecodeFlags(
		WithMaxDepth(8),
		WithRejectNUL(false),
		WithMaxStringLength(1024),
	)

	require.Equal(8, f.MaxDepth)
	require.False(f.RejectNUL)
	require.Equal(1024, f.MaxStringLength)
	// Untouched fields keep their defaults.
	require.True(f.RejectInvalidUTF8)
	require.Equal(DefaultMaxContainerSize, f.MaxContainerSize)
}

func TestNewEncodeFlagsWithOptions(t *testing.T) {
	require := require.New(t)

	f := NewEncodeFlags(
		WithEncodeMaxDepth(4),
		WithEncodeRejectNonFiniteFloat(false),
	)

	require.Equal(4, f.MaxDepth)
	require.False(f.RejectNonFiniteFloat)
	require.True(f.RejectDuplicateKeys)
}
