package xdb

// Lookup is a thin one-shot convenience: open a Searcher, run one
// query, dispose it. It adds no lookup semantics of its own over
// Search/Close.
//
// addr must already be a validated 4- or 16-byte address; string
// parsing lives outside this package (see internal/addr).
func Lookup(policy Policy, path string, addr []byte) (string, error) {
	s, err := New(policy, path)
	if err != nil {
		return "", err
	}
	defer s.Close()
	return s.Search(addr)
}
