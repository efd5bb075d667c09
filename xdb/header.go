package xdb

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Header decodes the build metadata carried in the xdb file's first
// 256 bytes. None of these fields are consulted by Search; Header
// exists for operators and tooling (the CLI's -info flag) to report
// what file is loaded.
type Header struct {
	Version       uint32
	IndexPolicy   uint32
	BuildEpoch    uint32
	StartIndexPtr uint32
	EndIndexPtr   uint32
}

// ReadHeader opens path, reads the first HeaderLength bytes and
// decodes them independently of any Searcher/strategy construction.
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("xdb: open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, HeaderLength)
	n, err := f.ReadAt(buf, 0)
	if n < HeaderLength {
		return Header{}, ErrBadHeader
	}
	if err != nil && n < HeaderLength {
		return Header{}, fmt.Errorf("xdb: read header: %w", err)
	}
	return Header{
		Version:       binary.LittleEndian.Uint32(buf[0:4]),
		IndexPolicy:   binary.LittleEndian.Uint32(buf[4:8]),
		BuildEpoch:    binary.LittleEndian.Uint32(buf[8:12]),
		StartIndexPtr: binary.LittleEndian.Uint32(buf[12:16]),
		EndIndexPtr:   binary.LittleEndian.Uint32(buf[16:20]),
	}, nil
}
