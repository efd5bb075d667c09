// Package xdbtest synthesizes minimal xdb byte buffers for tests. It
// mirrors the production layout xdb/doc.go documents but is kept
// entirely separate from the reader/strategy code it exercises, the
// same way google-codesearch keeps its index writer and reader in
// separate files. It is not part of the module's public surface and
// implements no offline-build-tool policy beyond writing the bytes
// the xdb format defines.
package xdbtest

import (
	"encoding/binary"
	"os"
	"sort"
)

// Family mirrors xdb.Family without importing the xdb package, so
// this test helper has no production dependency in either direction.
type Family int

const (
	IPv4 Family = 4
	IPv6 Family = 16
)

const (
	headerLen = 256
	vecRows   = 256
	vecCols   = 256
	vecLen    = vecRows * vecCols * 8
)

// Record is one segment entry: Start/End are ipLen-byte addresses in
// network-order form, i.e. the same byte layout a query would use.
// Build re-encodes them into the family's on-disk storage order.
type Record struct {
	Start, End []byte
	Payload    string
}

// Builder accumulates per-slot records and header fields, then
// encodes a complete xdb byte buffer on Build.
type Builder struct {
	family Family
	slots  map[uint32][]Record
	header [headerLen]byte
}

func NewBuilder(family Family) *Builder {
	return &Builder{family: family, slots: make(map[uint32][]Record)}
}

// SetHeader fills the header fields xdb.ReadHeader decodes.
func (b *Builder) SetHeader(version, indexPolicy, buildEpoch, startPtr, endPtr uint32) {
	binary.LittleEndian.PutUint32(b.header[0:4], version)
	binary.LittleEndian.PutUint32(b.header[4:8], indexPolicy)
	binary.LittleEndian.PutUint32(b.header[8:12], buildEpoch)
	binary.LittleEndian.PutUint32(b.header[12:16], startPtr)
	binary.LittleEndian.PutUint32(b.header[16:20], endPtr)
}

// Put adds records to the vector slot selected by (byte0, byte1).
// Records may be added out of order; Build sorts them by start IP.
func (b *Builder) Put(byte0, byte1 byte, recs ...Record) {
	idx := uint32(byte0)*256 + uint32(byte1)
	b.slots[idx] = append(b.slots[idx], recs...)
}

func (b *Builder) ipLen() int  { return int(b.family) }
func (b *Builder) stride() int { return 2*b.ipLen() + 6 }

// storeIP re-encodes a network-order address into the family's
// on-disk storage order: byte-reversed for IPv4, unchanged (already
// big-endian) for IPv6.
func storeIP(family Family, ip []byte) []byte {
	out := make([]byte, len(ip))
	if family == IPv4 {
		for i := range ip {
			out[len(ip)-1-i] = ip[i]
		}
		return out
	}
	copy(out, ip)
	return out
}

func compareNetworkOrder(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Build encodes the header, the full 256x256 vector index and every
// slot's sorted segment array followed by its payload pool, and
// returns the complete file bytes.
func (b *Builder) Build() []byte {
	stride := b.stride()

	idxs := make([]uint32, 0, len(b.slots))
	for idx := range b.slots {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })

	segBytes := 0
	for _, idx := range idxs {
		segBytes += len(b.slots[idx]) * stride
	}
	poolStart := headerLen + vecLen + segBytes

	sPtrs := make(map[uint32]uint32, len(idxs))
	ePtrs := make(map[uint32]uint32, len(idxs))
	segBuf := make([]byte, 0, segBytes)
	payloadBuf := make([]byte, 0)

	for _, idx := range idxs {
		recs := append([]Record(nil), b.slots[idx]...)
		sort.Slice(recs, func(i, j int) bool {
			return compareNetworkOrder(recs[i].Start, recs[j].Start) < 0
		})
		sPtr := uint32(headerLen + vecLen + len(segBuf))
		for _, r := range recs {
			segBuf = append(segBuf, storeIP(b.family, r.Start)...)
			segBuf = append(segBuf, storeIP(b.family, r.End)...)
			var lenBuf [2]byte
			binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(r.Payload)))
			segBuf = append(segBuf, lenBuf[:]...)
			var ptrBuf [4]byte
			dataPtr := uint32(poolStart + len(payloadBuf))
			binary.LittleEndian.PutUint32(ptrBuf[:], dataPtr)
			segBuf = append(segBuf, ptrBuf[:]...)
			payloadBuf = append(payloadBuf, []byte(r.Payload)...)
		}
		ePtrs[idx] = uint32(headerLen + vecLen + len(segBuf))
		sPtrs[idx] = sPtr
	}

	out := make([]byte, 0, poolStart+len(payloadBuf))
	out = append(out, b.header[:]...)

	vecBuf := make([]byte, vecLen)
	for idx := 0; idx < vecRows*vecCols; idx++ {
		off := idx * 8
		binary.LittleEndian.PutUint32(vecBuf[off:off+4], sPtrs[uint32(idx)])
		binary.LittleEndian.PutUint32(vecBuf[off+4:off+8], ePtrs[uint32(idx)])
	}
	out = append(out, vecBuf...)
	out = append(out, segBuf...)
	out = append(out, payloadBuf...)
	return out
}

// WriteFile encodes and writes the buffer to path.
func (b *Builder) WriteFile(path string) error {
	return os.WriteFile(path, b.Build(), 0o644)
}
