package xdb

// reader is the abstract random-access byte source over an xdb file.
// Implementations fill dst with exactly len(dst) bytes starting at
// offset, or return an error — short files fail rather than silently
// returning a partial read.
//
// ioCount tracks physical reads issued to the backing store since the
// last reset; resetIOCount is called once at the top of every
// Searcher.Search so the count is a per-query metric.
type reader interface {
	readAt(offset int64, dst []byte) error
	resetIOCount()
	ioCount() int
	close() error
}
