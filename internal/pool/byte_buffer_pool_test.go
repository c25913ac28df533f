package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(64)
	require.NotNil(bb)
	require.Equal(0, len(bb.B))
	require.Equal(64, cap(bb.B))
}

func TestByteBuffer_Reset(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 1, 2, 3)
	require.Equal(3, len(bb.B))

	capBefore := cap(bb.B)
	bb.Reset()
	require.Equal(0, len(bb.B))
	require.Equal(capBefore, cap(bb.B))
}

func TestNewByteBufferPool(t *testing.T) {
	require := require.New(t)

	p := NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)
	require.NotNil(p)

	bb := p.Get()
	require.NotNil(bb)
	require.Equal(0, len(bb.B))
}

func TestByteBufferPool_GetPutRoundTrip(t *testing.T) {
	require := require.New(t)

	p := NewByteBufferPool(16, 0)
	bb := p.Get()
	bb.B = append(bb.B, 'a', 'b', 'c')

	p.Put(bb)

	bb2 := p.Get()
	require.Equal(0, len(bb2.B))
}

func TestByteBufferPool_PutNilIsNoop(t *testing.T) {
	p := NewByteBufferPool(16, 0)
	p.Put(nil)
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	require := require.New(t)

	p := NewByteBufferPool(16, 32)
	bb := NewByteBuffer(16)
	bb.B = make([]byte, 0, 64) // exceeds maxThreshold

	p.Put(bb)

	// The oversized buffer was discarded rather than pooled; Get still
	// works by allocating a fresh buffer from New.
	got := p.Get()
	require.NotNil(got)
}

func TestByteBufferPool_ZeroThresholdNeverDiscards(t *testing.T) {
	require := require.New(t)

	p := NewByteBufferPool(16, 0)
	bb := NewByteBuffer(16)
	bb.B = make([]byte, 0, 1<<20)
	p.Put(bb)

	got := p.Get()
	require.NotNil(got)
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	p := NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := p.Get()
			bb.B = append(bb.B, 1, 2, 3)
			p.Put(bb)
		}()
	}
	wg.Wait()
}
