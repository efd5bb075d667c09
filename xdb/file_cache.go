package xdb

import "encoding/binary"

// fileCache is the File strategy: no preloaded arrays at all. Every
// query pays one 8-byte read for the vector slot, up to
// floor(log2(n))+1 reads for the binary search, and one read for the
// payload.
type fileCache struct {
	fr *fileReader
}

func newFileCache(path string) (*fileCache, error) {
	fr, err := newFileReader(path)
	if err != nil {
		return nil, err
	}
	return &fileCache{fr: fr}, nil
}

func (c *fileCache) slot(idx uint32) (uint32, uint32, error) {
	var buf [VectorIndexSlotSize]byte
	if err := c.fr.readAt(int64(HeaderLength)+int64(idx)*VectorIndexSlotSize, buf[:]); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(buf[0:4]), binary.LittleEndian.Uint32(buf[4:8]), nil
}

func (c *fileCache) recordAt(pos uint32, dst []byte) error { return c.fr.readAt(int64(pos), dst) }
func (c *fileCache) payloadAt(ptr uint32, dst []byte) error { return c.fr.readAt(int64(ptr), dst) }

func (c *fileCache) search(addr []byte) (string, error) {
	family, ok := FamilyOf(addr)
	if !ok {
		return "", ErrBadLength
	}
	c.fr.resetIOCount()
	return searchCore(c, family, addr)
}

func (c *fileCache) ioCount() int { return c.fr.ioCount() }
func (c *fileCache) close() error { return c.fr.close() }
