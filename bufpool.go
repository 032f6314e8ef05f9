package zlutf

import "sync"

// scratchSize is well past the 16-byte worst case a single fast encoder
// call can produce, leaving headroom for the wrapper's carry-drain step
// to land in the same buffer.
const scratchSize = 64

// scratchPool reuses the transcoder loop's per-call scratch buffer, the
// same "pool the hot-path allocation" shape teacher applies to its
// CHUNK_SIZE copy buffer.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, scratchSize)
		return &b
	},
}

func getScratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

func putScratch(b *[]byte) {
	scratchPool.Put(b)
}

// SourceChunkSize is the read-chunk size Source uses when pulling
// from an io.Reader source, mirroring teacher's CHUNK_SIZE convention for
// io.Copy-style loops.
const SourceChunkSize = 32 * 1024

var sourceBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, SourceChunkSize)
		return &b
	},
}
