package xdb

import (
	"math/bits"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/4ba-Co/ip2region/xdb/xdbtest"
)

func v4(s string) []byte {
	ip := net.ParseIP(s)
	if ip == nil {
		panic("bad ipv4 literal: " + s)
	}
	v4 := ip.To4()
	if v4 == nil {
		panic("not an ipv4 literal: " + s)
	}
	return []byte(v4)
}

func v6(s string) []byte {
	ip := net.ParseIP(s)
	if ip == nil {
		panic("bad ipv6 literal: " + s)
	}
	v6 := ip.To16()
	if v6 == nil {
		panic("not an ipv6 literal: " + s)
	}
	return []byte(v6)
}

// buildFixture writes b's buffer to a temp file and returns its path.
func buildFixture(t *testing.T, b *xdbtest.Builder) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.xdb")
	require.NoError(t, b.WriteFile(path))
	return path
}

// copyTruncated writes the first n bytes of src to dst, to build a
// corrupt/short fixture for construction-failure tests.
func copyTruncated(src, dst string, n int) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if n > len(data) {
		n = len(data)
	}
	return os.WriteFile(dst, data[:n], 0o644)
}

// ceilLog2 is the ceil(log2(n)) bound on binary-search comparisons,
// with n <= 1 treated as requiring zero comparisons.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
