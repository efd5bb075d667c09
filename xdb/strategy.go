package xdb

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unicode/utf8"
)

// strategy is the narrow contract the three cache variants share:
// search, the last query's I/O cost, and disposal.
type strategy interface {
	search(addr []byte) (string, error)
	ioCount() int
	close() error
}

// segmentSource supplies the pieces the shared binary-search
// algorithm needs, letting each strategy decide whether a piece comes
// from preloaded memory or a reader. idx is the vector slot index
// (addr[0]*256 + addr[1]); pos is an absolute file offset.
type segmentSource interface {
	slot(idx uint32) (sPtr, ePtr uint32, err error)
	recordAt(pos uint32, dst []byte) error
	payloadAt(ptr uint32, dst []byte) error
}

var scratchPool = sync.Pool{New: func() any { return make([]byte, 0, 256) }}

// scratch returns a slice of length n backed by local (a stack array
// slice) when n fits, otherwise a pooled buffer; release must be
// called once the caller is done with the slice.
func scratch(local []byte, n int) (buf []byte, release func()) {
	if n <= cap(local) {
		return local[:n], func() {}
	}
	v := scratchPool.Get().([]byte)
	if cap(v) < n {
		v = make([]byte, n)
	}
	v = v[:n]
	return v, func() { scratchPool.Put(v[:0]) }
}

// searchCore derives the vector slot from the first two address
// bytes, binary-searches the fixed-stride segment array within
// [sPtr, ePtr), and on a hit decodes and reads the region payload.
// Returns "" (not an error) when no record matches.
func searchCore(src segmentSource, family Family, addr []byte) (string, error) {
	idx := uint32(addr[0])*256 + uint32(addr[1])
	sPtr, ePtr, err := src.slot(idx)
	if err != nil {
		return "", err
	}

	stride := family.indexSize()
	span := int64(ePtr) - int64(sPtr)
	if span < 0 || span%int64(stride) != 0 {
		// e_ptr < s_ptr or a stride mismatch is treated as format
		// corruption, never as an unsigned underflow of
		// (e_ptr-s_ptr)/indexSize.
		return "", fmt.Errorf("xdb: slot span %d not a multiple of stride %d: %w", span, stride, ErrCorruptSlot)
	}
	high := span/int64(stride) - 1
	low := int64(0)

	ipLen := family.ipLen()
	var recordStack [256]byte
	rec, releaseRec := scratch(recordStack[:0], stride)
	defer releaseRec()

	var dataLen uint16
	var dataPtr uint32
	found := false
	for low <= high {
		mid := (low + high) >> 1
		pos := sPtr + uint32(mid)*uint32(stride)
		if err := src.recordAt(pos, rec); err != nil {
			return "", err
		}
		sip := rec[:ipLen]
		eip := rec[ipLen : 2*ipLen]
		switch {
		case family.compareIP(addr, sip) < 0:
			high = mid - 1
		case family.compareIP(addr, eip) > 0:
			low = mid + 1
		default:
			dataLen = binary.LittleEndian.Uint16(rec[2*ipLen : 2*ipLen+2])
			dataPtr = binary.LittleEndian.Uint32(rec[2*ipLen+2 : 2*ipLen+6])
			found = true
		}
		if found {
			break
		}
	}

	if !found || dataLen == 0 {
		return "", nil
	}

	var payloadStack [256]byte
	payload, releasePayload := scratch(payloadStack[:0], int(dataLen))
	defer releasePayload()
	if err := src.payloadAt(dataPtr, payload); err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("xdb: payload at offset %d len %d: %w", dataPtr, dataLen, ErrCorruptPayload)
	}
	return string(payload), nil
}
