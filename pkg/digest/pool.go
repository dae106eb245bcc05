package digest

import "sync"

// copyBufferSize is the buffer size for streaming reader digests.
const copyBufferSize = 32 * 1024

// encodeBufPool holds reusable buffers for the moderate text-encoding tier.
// Buffers are handed out at zero length; transform.Append grows past the
// pooled capacity only when an encoding expands the input.
var encodeBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, pooledTextLimit)
		return &buf
	},
}

// copyBufPool holds reusable copy buffers for SHA256HexReader.
var copyBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, copyBufferSize)
		return &buf
	},
}
