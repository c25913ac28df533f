package encoder

import (
	"github.com/kstenerud/go-bonjson/config"
	"github.com/kstenerud/go-bonjson/internal/pool"
)

// encoderBufferPool reuses the teacher's ByteBuffer pool
// (internal/pool.ByteBufferPool) for Encoder output buffers, so a
// high-throughput caller that repeatedly acquires and releases encoders
// doesn't pay one allocation per document.
var encoderBufferPool = pool.NewByteBufferPool(pool.DefaultBufferSize, pool.MaxBufferThreshold)

// Acquire returns an Encoder whose output buffer is borrowed from a
// shared pool, configured by opts. Call Release when done with it to
// return the buffer to the pool; the Encoder itself must not be used
// after Release.
func Acquire(opts ...config.EncodeOption) *Encoder {
	bb := encoderBufferPool.Get()
	e := New(opts...)
	e.buf = bb.B
	e.pooled = bb

	return e
}

// Release returns e's underlying buffer to the pool it was acquired
// from. It is a no-op if e was created with New rather than Acquire.
func Release(e *Encoder) {
	if e.pooled == nil {
		return
	}

	e.pooled.B = e.buf
	encoderBufferPool.Put(e.pooled)
	e.pooled = nil
	e.buf = nil
}
