package encoder

import (
	"testing"

	"github.com/kstenerud/go-bonjson/config"
	"github.com/stretchr/testify/require"
)

func TestSmallIntRoundTripBytes(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Int(42))
	require.Equal([]byte{0x8E}, e.Bytes())
}

func TestSmallIntNegativeBoundary(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Int(-100))
	require.Equal([]byte{0x00}, e.Bytes())

	e.Reset()
	require.NoError(e.Int(100))
	require.Equal([]byte{0xC8}, e.Bytes())
}

func TestIntJustOutsideSmallIntRange(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Int(-101))
	require.Equal([]byte{0xE4, 0x9B}, e.Bytes())
}

func TestShortStringEncoding(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.String("hi"))
	require.Equal([]byte{0xD2, 'h', 'i'}, e.Bytes())
}

func TestObjectEncoding(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.BeginObject())
	require.NoError(e.ObjectKey("a"))
	require.NoError(e.Bool(true))
	require.NoError(e.EndContainer())
	require.Equal([]byte{0xFD, 0xD1, 'a', 0xCF, 0xFE}, e.Bytes())
}

func TestArrayEncoding(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Int64Array([]int64{1, 2, 3}))
	require.Equal([]byte{0xFC, 0x65, 0x66, 0x67, 0xFE}, e.Bytes())
}

func TestObjectKeyOutsideObjectFails(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.BeginArray())
	err := e.ObjectKey("x")
	require.Error(err)
}

func TestEndContainerWithDanglingKeyFails(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.BeginObject())
	require.NoError(e.ObjectKey("a"))
	err := e.EndContainer()
	require.Error(err)
}

func TestEndContainerUnbalancedFails(t *testing.T) {
	require := require.New(t)

	e := New()
	err := e.EndContainer()
	require.Error(err)
}

func TestSecondRootValueFails(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Int(1))
	err := e.Int(2)
	require.Error(err)
	require.Equal([]byte{0x65}, e.Bytes()) // only the first value was written
}

func TestSecondRootValueFailsAfterContainerCloses(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.BeginArray())
	require.NoError(e.Int(1))
	require.NoError(e.EndContainer())

	err := e.Bool(true)
	require.Error(err)
}

func TestResetAllowsNewRootValue(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.Int(1))
	e.Reset()
	require.NoError(e.Int(2))
}

func TestDuplicateKeyRejected(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.BeginObject())
	require.NoError(e.ObjectKey("a"))
	require.NoError(e.Int(1))
	err := e.ObjectKey("a")
	require.Error(err)
}

func TestDuplicateKeyAllowedWhenDisabled(t *testing.T) {
	require := require.New(t)

	e := New(config.WithEncodeRejectDuplicateKeys(false))
	require.NoError(e.BeginObject())
	require.NoError(e.ObjectKey("a"))
	require.NoError(e.Int(1))
	require.NoError(e.ObjectKey("a"))
	require.NoError(e.Int(2))
	require.NoError(e.EndContainer())
}

func TestNestedContainersAndEndAllContainers(t *testing.T) {
	require := require.New(t)

	e := New()
	require.NoError(e.BeginObject())
	require.NoError(e.ObjectKey("items"))
	require.NoError(e.BeginArray())
	require.NoError(e.Int(1))
	require.NoError(e.EndAllContainers())
	require.Equal(0, e.Depth())
}

func TestMaxDepthExceeded(t *testing.T) {
	require := require.New(t)

	e := New(config.WithEncodeMaxDepth(2))
	require.NoError(e.BeginArray())
	require.NoError(e.BeginArray())
	err := e.BeginArray()
	require.Error(err)
}

func TestMaxContainerSizeExceeded(t *testing.T) {
	require := require.New(t)

	e := New(config.WithEncodeMaxContainerSize(2))
	require.NoError(e.BeginArray())
	require.NoError(e.Int(1))
	require.NoError(e.Int(2))
	err := e.Int(3)
	require.Error(err)
}

func TestNULRejectedInString(t *testing.T) {
	require := require.New(t)

	e := New()
	err := e.String("a\x00b")
	require.Error(err)
}

func TestLongStringEncoding(t *testing.T) {
	require := require.New(t)

	e := New()
	s := "this string is definitely longer than fifteen bytes"
	require.NoError(e.String(s))

	out := e.Bytes()
	require.Equal(byte(0xFF), out[0])
	require.Equal(byte(0xFF), out[len(out)-1])
	require.Equal(s, string(out[1:len(out)-1]))
}
