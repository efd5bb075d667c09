package xdb

import "fmt"

// Policy selects which cache strategy a Searcher constructs. The set
// is closed; there is no open-ended registration.
type Policy int

const (
	// File preloads nothing; every query reads through the file.
	File Policy = iota
	// VectorIndex preloads the 524288-byte vector index only.
	VectorIndex
	// Content preloads the whole file plus the decoded vector index.
	Content
)

func (p Policy) String() string {
	switch p {
	case File:
		return "file"
	case VectorIndex:
		return "vector_index"
	case Content:
		return "content"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses the CLI/config spelling of a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "file":
		return File, nil
	case "vector", "vector_index", "vectorindex":
		return VectorIndex, nil
	case "content":
		return Content, nil
	default:
		return 0, fmt.Errorf("xdb: unknown policy %q", s)
	}
}
