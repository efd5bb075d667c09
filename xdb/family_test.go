package xdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyOf(t *testing.T) {
	f, ok := FamilyOf(make([]byte, 4))
	assert.True(t, ok)
	assert.Equal(t, IPv4, f)

	f, ok = FamilyOf(make([]byte, 16))
	assert.True(t, ok)
	assert.Equal(t, IPv6, f)

	_, ok = FamilyOf(make([]byte, 6))
	assert.False(t, ok)
}

func TestIndexSize(t *testing.T) {
	assert.Equal(t, 14, IPv4.indexSize())
	assert.Equal(t, 38, IPv6.indexSize())
}

// TestIPv4ByteReversalPairing pins down the exact IPv4 byte-reversal
// pairing rule against handcrafted stored bytes, independent of
// xdbtest.
func TestIPv4ByteReversalPairing(t *testing.T) {
	// network-order query 1.2.3.4; byte-reversed storage is 4.3.2.1.
	query := []byte{1, 2, 3, 4}
	stored := []byte{4, 3, 2, 1}
	assert.Equal(t, 0, IPv4.compareIP(query, stored))

	// A stored value one higher in the reversed encoding (5.3.2.1,
	// i.e. network-order 1.2.3.5) must compare greater.
	higher := []byte{5, 3, 2, 1}
	assert.Equal(t, -1, IPv4.compareIP(query, higher))
}

func TestIPv6BigEndianHalves(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	a[15] = 1
	b[15] = 2
	assert.Equal(t, -1, IPv6.compareIP(a, b))
	assert.Equal(t, 1, IPv6.compareIP(b, a))
	assert.Equal(t, 0, IPv6.compareIP(a, a))

	// A difference in the high 64 bits dominates regardless of the
	// low 64 bits.
	c := make([]byte, 16)
	c[0] = 1
	assert.Equal(t, -1, IPv6.compareIP(a, c))
}
