package xdb

import "errors"

const (
	// HeaderLength is the fixed size of the xdb header region.
	HeaderLength = 256

	// VectorIndexRows and VectorIndexCols size the 256x256 slot table.
	VectorIndexRows = 256
	VectorIndexCols = 256

	// VectorIndexSlotSize is the byte size of one (sPtr, ePtr) slot.
	VectorIndexSlotSize = 8

	// VectorIndexLength is the total byte size of the vector index region.
	VectorIndexLength = VectorIndexRows * VectorIndexCols * VectorIndexSlotSize
)

// Errors returned by the core. Callers should use errors.Is against
// these sentinels rather than matching on message text.
var (
	// ErrBadLength is returned when a query byte sequence is neither
	// 4 nor 16 bytes long.
	ErrBadLength = errors.New("xdb: address must be 4 or 16 bytes")

	// ErrShortRead is returned when the backing store has fewer bytes
	// than a read requested, including at construction time when the
	// file is shorter than header+vector index.
	ErrShortRead = errors.New("xdb: short read from backing store")

	// ErrCorruptSlot is returned when a vector slot's byte range is
	// not a non-negative multiple of the family's record stride, or
	// when ePtr < sPtr — treated as corruption, never as an unsigned
	// underflow.
	ErrCorruptSlot = errors.New("xdb: corrupt vector slot range")

	// ErrCorruptPayload is returned when a matched region payload is
	// not valid UTF-8.
	ErrCorruptPayload = errors.New("xdb: region payload is not valid UTF-8")

	// ErrClosed is returned by a Searcher used after Close.
	ErrClosed = errors.New("xdb: searcher is closed")

	// ErrBadHeader is returned by ReadHeader when the file is shorter
	// than HeaderLength.
	ErrBadHeader = errors.New("xdb: file too short for header")
)
