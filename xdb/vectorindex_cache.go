package xdb

// vectorIndexCache is the VectorIndex strategy: the vector index is
// preloaded once at construction (one 524288-byte read), so queries
// skip the vector I/O, but segment records and payloads still go
// through the positional file reader. Typical query I/O count is
// ceil(log2(n)) + 1.
type vectorIndexCache struct {
	fr  *fileReader
	vec *vectorTable
}

func newVectorIndexCache(path string) (*vectorIndexCache, error) {
	fr, err := newFileReader(path)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, VectorIndexLength)
	if err := fr.readAt(HeaderLength, raw); err != nil {
		_ = fr.close()
		return nil, err
	}
	vec, err := decodeVectorTable(raw)
	if err != nil {
		_ = fr.close()
		return nil, err
	}
	fr.resetIOCount()
	return &vectorIndexCache{fr: fr, vec: vec}, nil
}

func (c *vectorIndexCache) slot(idx uint32) (uint32, uint32, error) { return c.vec.slot(idx) }
func (c *vectorIndexCache) recordAt(pos uint32, dst []byte) error {
	return c.fr.readAt(int64(pos), dst)
}
func (c *vectorIndexCache) payloadAt(ptr uint32, dst []byte) error {
	return c.fr.readAt(int64(ptr), dst)
}

func (c *vectorIndexCache) search(addr []byte) (string, error) {
	family, ok := FamilyOf(addr)
	if !ok {
		return "", ErrBadLength
	}
	c.fr.resetIOCount()
	return searchCore(c, family, addr)
}

func (c *vectorIndexCache) ioCount() int { return c.fr.ioCount() }
func (c *vectorIndexCache) close() error { return c.fr.close() }
