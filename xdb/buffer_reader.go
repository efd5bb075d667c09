package xdb

import (
	"fmt"
	"os"
)

// bufferReader is the full-buffer reader variant: the whole file is
// loaded into one owned byte slice at construction, and readAt is a
// bounds-checked copy out of it. It never issues physical reads after
// construction, so its I/O counter is always 0.
type bufferReader struct {
	data []byte
}

func newBufferReader(path string) (*bufferReader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xdb: read %s: %w", path, err)
	}
	return &bufferReader{data: data}, nil
}

func (r *bufferReader) readAt(offset int64, dst []byte) error {
	end := offset + int64(len(dst))
	if offset < 0 || end > int64(len(r.data)) {
		return fmt.Errorf("xdb: read [%d,%d) past buffer length %d: %w", offset, end, len(r.data), ErrShortRead)
	}
	copy(dst, r.data[offset:end])
	return nil
}

func (r *bufferReader) resetIOCount() {}
func (r *bufferReader) ioCount() int  { return 0 }
func (r *bufferReader) close() error  { r.data = nil; return nil }
