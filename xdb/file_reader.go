package xdb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// fileReader is the positional file reader variant: it keeps the
// file open for random-access reads and issues every read at an
// absolute offset via os.File.ReadAt, which is backed by pread (or
// the platform equivalent) and therefore safe to call concurrently
// from multiple goroutines without an external lock — there is no
// shared seek cursor to race on.
type fileReader struct {
	f   *os.File
	ios int64 // atomic
}

func newFileReader(path string) (*fileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xdb: open %s: %w", path, err)
	}
	return &fileReader{f: f}, nil
}

// readAt fills dst with exactly len(dst) bytes starting at offset,
// looping over short reads until the target count is reached or EOF
// is hit first. Each call to the underlying ReadAt counts as one
// physical read issued to the backing store.
func (r *fileReader) readAt(offset int64, dst []byte) error {
	total := 0
	for total < len(dst) {
		n, err := r.f.ReadAt(dst[total:], offset+int64(total))
		atomic.AddInt64(&r.ios, 1)
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				if total < len(dst) {
					return fmt.Errorf("xdb: eof after %d/%d bytes at offset %d: %w", total, len(dst), offset, ErrShortRead)
				}
				break
			}
			return fmt.Errorf("xdb: read at offset %d: %w", offset, err)
		}
	}
	return nil
}

func (r *fileReader) resetIOCount() { atomic.StoreInt64(&r.ios, 0) }
func (r *fileReader) ioCount() int  { return int(atomic.LoadInt64(&r.ios)) }
func (r *fileReader) close() error  { return r.f.Close() }
