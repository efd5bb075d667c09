package xdb

// contentCache is the Content strategy: the whole file is preloaded
// into one buffer and the vector index is additionally decoded into
// flat arrays, so queries never touch a reader at all. I/O count is
// always 0.
type contentCache struct {
	buf *bufferReader
	vec *vectorTable
}

func newContentCache(path string) (*contentCache, error) {
	buf, err := newBufferReader(path)
	if err != nil {
		return nil, err
	}
	if len(buf.data) < HeaderLength+VectorIndexLength {
		_ = buf.close()
		return nil, ErrShortRead
	}
	vec, err := decodeVectorTable(buf.data[HeaderLength : HeaderLength+VectorIndexLength])
	if err != nil {
		_ = buf.close()
		return nil, err
	}
	return &contentCache{buf: buf, vec: vec}, nil
}

func (c *contentCache) slot(idx uint32) (uint32, uint32, error) { return c.vec.slot(idx) }
func (c *contentCache) recordAt(pos uint32, dst []byte) error   { return c.buf.readAt(int64(pos), dst) }
func (c *contentCache) payloadAt(ptr uint32, dst []byte) error  { return c.buf.readAt(int64(ptr), dst) }

func (c *contentCache) search(addr []byte) (string, error) {
	family, ok := FamilyOf(addr)
	if !ok {
		return "", ErrBadLength
	}
	return searchCore(c, family, addr)
}

func (c *contentCache) ioCount() int { return 0 }
func (c *contentCache) close() error { return c.buf.close() }
