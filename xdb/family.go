package xdb

import "encoding/binary"

// Family identifies the address family a query byte sequence belongs
// to. It is derived solely from the query's byte length (spec: "no
// address-family auto-detection beyond inferring it from byte
// length") — the xdb file itself never tags a slot's family.
type Family int

const (
	// IPv4 addresses are 4 bytes; segment records use a 14-byte stride.
	IPv4 Family = 4
	// IPv6 addresses are 16 bytes; segment records use a 38-byte stride.
	IPv6 Family = 16
)

// FamilyOf returns the Family implied by an address byte length, or
// false if the length is neither 4 nor 16.
func FamilyOf(addr []byte) (Family, bool) {
	switch len(addr) {
	case 4:
		return IPv4, true
	case 16:
		return IPv6, true
	default:
		return 0, false
	}
}

// ipLen is the byte length of one start/end IP field for the family.
func (f Family) ipLen() int { return int(f) }

// indexSize is the fixed stride of one segment record for the family:
// two IP fields plus a 2-byte length and a 4-byte pointer.
func (f Family) indexSize() int { return 2*f.ipLen() + 6 }

// compareIP orders query against a stored start/end IP field of the
// same family. Both slices must have length f.ipLen().
//
// IPv6 range bytes are stored big-endian (network order), matching
// the query's own byte order, so the comparison is a plain two-word
// big-endian lexicographic compare.
//
// IPv4 range bytes are stored byte-reversed relative to the
// network-order query: query[i] pairs with stored[ipLen-1-i]. The
// stored bytes therefore read as a little-endian uint32 while the
// query reads as a big-endian uint32; comparing the two as uint32
// values reproduces the intended byte-reversed pairing exactly.
func (f Family) compareIP(query, stored []byte) int {
	if f == IPv4 {
		q := binary.BigEndian.Uint32(query)
		s := binary.LittleEndian.Uint32(stored)
		switch {
		case q < s:
			return -1
		case q > s:
			return 1
		default:
			return 0
		}
	}
	q0, q1 := binary.BigEndian.Uint64(query[0:8]), binary.BigEndian.Uint64(query[8:16])
	s0, s1 := binary.BigEndian.Uint64(stored[0:8]), binary.BigEndian.Uint64(stored[8:16])
	switch {
	case q0 != s0:
		if q0 < s0 {
			return -1
		}
		return 1
	case q1 < s1:
		return -1
	case q1 > s1:
		return 1
	default:
		return 0
	}
}
