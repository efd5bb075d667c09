// Package xdb implements the read-only query core of an offline
// IP-to-region lookup engine over the "xdb" binary index format.
//
// File layout:
//
//	offset 0                header, 256 bytes, never consulted by search
//	offset 256               vector index, 256*256 slots * 8 bytes = 524288 bytes
//	offset 256+524288...     segment index + region payload pool, interleaved
//
// Each vector slot is selected by the query address's first two
// bytes and names a half-open byte range [sPtr, ePtr) holding that
// slot's sorted, fixed-stride segment array:
//
//	record := startIP(ipLen) | endIP(ipLen) | dataLen(u16le) | dataPtr(u32le)
//
// ipLen is 4 for IPv4 (indexSize 14) and 16 for IPv6 (indexSize 38).
// Every multi-byte integer in the file is little-endian except IP
// range bytes, which are family-specific (see family.go): IPv6 range
// bytes are big-endian network order; IPv4 range bytes are stored
// byte-reversed relative to the network-order bytes a query presents.
//
// Three cache strategies share one binary-search algorithm over the
// segment array and differ only in where the vector slot and segment
// records come from: Content preloads the vector index and the whole
// file; VectorIndex preloads only the vector index; File preloads
// nothing and reads everything through a positional file reader.
package xdb
