package handler

import (
	"bytes"
	"sync"
)

// Snapshots with a full history encode to roughly 1-2KB
const (
	bufferInitialSize = 2048
	bufferMaxRetained = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew too large to keep
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > bufferMaxRetained {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
