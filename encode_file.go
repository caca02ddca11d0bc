package quillustrate

import (
	"github.com/btparker/quillustrate/internal/pool"
	"github.com/btparker/quillustrate/internal/qbin"
)

// encodeFile serializes f into a freshly-allocated, right-sized byte
// slice, using a pooled scratch buffer for the append chain so Save does
// not grow the slice incrementally.
func encodeFile(f qbin.File) []byte {
	size := f.Size()
	scratch := pool.Get(size)[:0]
	encoded := f.Encode(scratch)

	out := make([]byte, len(encoded))
	copy(out, encoded)
	pool.Put(encoded)
	return out
}
