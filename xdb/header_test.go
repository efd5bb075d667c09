package xdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4ba-Co/ip2region/xdb/xdbtest"
)

func TestReadHeader(t *testing.T) {
	b := xdbtest.NewBuilder(xdbtest.IPv4)
	b.SetHeader(2, 1, 1700000000, 1000, 2000)
	b.Put(1, 1, xdbtest.Record{Start: v4("1.1.0.0"), End: v4("1.1.255.255"), Payload: "x"})
	path := buildFixture(t, b)

	h, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), h.Version)
	assert.Equal(t, uint32(1), h.IndexPolicy)
	assert.Equal(t, uint32(1700000000), h.BuildEpoch)
	assert.Equal(t, uint32(1000), h.StartIndexPtr)
	assert.Equal(t, uint32(2000), h.EndIndexPtr)
}

func TestReadHeaderShortFile(t *testing.T) {
	path := buildFixture(t, xdbtest.NewBuilder(xdbtest.IPv4))
	require.NoError(t, copyTruncated(path, path+".tiny", 10))

	_, err := ReadHeader(path + ".tiny")
	assert.ErrorIs(t, err, ErrBadHeader)
}
