package encoder

import (
	"math"
	"testing"

	"github.com/kstenerud/go-bonjson/bignum"
	"github.com/kstenerud/go-bonjson/config"
	"github.com/stretchr/testify/require"
)

func TestNullEncoding(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Null())
	require.Equal([]byte{0xCD}, e.Bytes())
}

func TestFloatPrefersFloat32WhenExact(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Float(1.5))

	out := e.Bytes()
	require.Equal(byte(0xCB), out[0])
	require.Len(out, 5)

	bits := uint32(out[1]) | uint32(out[2])<<8 | uint32(out[3])<<16 | uint32(out[4])<<24
	require.Equal(float32(1.5), math.Float32frombits(bits))
}

func TestFloatFallsBackToFloat64(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Float(math.Pi))

	out := e.Bytes()
	require.Equal(byte(0xCC), out[0])
	require.Len(out, 9)
}

func TestFloatRejectsNaNByDefault(t *testing.T) {
	require := require.New(t)

	e := New()
	err := e.Float(math.NaN())
	require.Error(err)
}

func TestFloatAllowsNaNWhenDisabled(t *testing.T) {
	require := require.New(t)

	e := New(config.WithEncodeRejectNonFiniteFloat(false))
	require.NoError(e.Float(math.NaN()))
}

func TestFloatIntegerValuedEncodesAsSmallInt(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Float(5.0))
	require.Equal([]byte{0x69}, e.Bytes()) // SmallInt(5) = 5+100 = 0x69
}

func TestFloatIntegerValuedNegativeEncodesAsInt(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Float(-101.0))
	require.Equal([]byte{0xE4, 0x9B}, e.Bytes())
}

func TestFloatNegativeZeroRemainsFloat32(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Float(math.Copysign(0, -1)))

	out := e.Bytes()
	require.Equal(byte(0xCB), out[0])
	require.Len(out, 5)

	bits := uint32(out[1]) | uint32(out[2])<<8 | uint32(out[3])<<16 | uint32(out[4])<<24
	require.True(math.Signbit(float64(math.Float32frombits(bits))))
}

func TestFloatLargeIntegerValuedBeyondUint64RemainsFloat(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Float(1e20))

	out := e.Bytes()
	require.Equal(byte(0xCC), out[0])
}

func TestUintPrefersIntWidthWhenItFits(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Uint(500))

	out := e.Bytes()
	require.Equal(byte(0xE5), out[0]) // Int width 2
}

func TestUintUsesUintWidthWhenTooLargeForInt(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Uint(math.MaxUint64))

	out := e.Bytes()
	require.Equal(byte(0xE3), out[0]) // Uint width 8
}

func TestBigNumberRoundTripBytes(t *testing.T) {
	require := require.New(t)

	e := New()
	n := bignum.NewUint64(1, 12345, -2)
	require.NoError(e.BigNumber(n))

	out := e.Bytes()
	require.Equal(byte(0xCA), out[0])
}

func TestBoolEncoding(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Bool(true))
	require.Equal([]byte{0xCF}, e.Bytes())

	e.Reset()
	require.NoError(e.Bool(false))
	require.Equal([]byte{0xCE}, e.Bytes())
}
