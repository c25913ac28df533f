package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	require := require.New(t)

	require.True(Zero.IsZero())
	require.Equal(int64(0), Zero.SignedLength())
}

func TestNewIntNormalizesTrailingZeroBytes(t *testing.T) {
	require := require.New(t)

	n := NewInt(1, []byte{0x01, 0x00, 0x00}, 0)
	require.Equal([]byte{0x01}, n.Magnitude)
	require.Equal(int64(1), n.SignedLength())
}

func TestNewIntAllZeroMagnitudeCollapsesToZero(t *testing.T) {
	require := require.New(t)

	n := NewInt(1, []byte{0x00, 0x00}, 5)
	require.True(n.IsZero())
	require.Equal(int8(0), n.Sign)
}

func TestSignedLengthEncodesSign(t *testing.T) {
	require := require.New(t)

	pos := NewInt(1, []byte{0xFF, 0x01}, 0)
	require.Equal(int64(2), pos.SignedLength())

	neg := NewInt(-1, []byte{0xFF, 0x01}, 0)
	require.Equal(int64(-2), neg.SignedLength())
}

func TestFromSignedLengthRoundTrip(t *testing.T) {
	require := require.New(t)

	sign, length := FromSignedLength(3)
	require.Equal(int8(1), sign)
	require.Equal(3, length)

	sign, length = FromSignedLength(-3)
	require.Equal(int8(-1), sign)
	require.Equal(3, length)

	sign, length = FromSignedLength(0)
	require.Equal(int8(0), sign)
	require.Equal(0, length)
}

func TestNewUint64(t *testing.T) {
	require := require.New(t)

	n := NewUint64(1, 0x1234, 0)
	require.Equal(uint64(0x1234), n.Uint64())
	require.Equal([]byte{0x34, 0x12}, n.Magnitude)

	zero := NewUint64(1, 0, 7)
	require.True(zero.IsZero())
}

func TestUint64RoundTrip(t *testing.T) {
	require := require.New(t)

	n := NewUint64(1, 0xDEADBEEF, 0)
	require.Equal(uint64(0xDEADBEEF), n.Uint64())
}
