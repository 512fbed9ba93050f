package btreeset

import (
	"context"

	"btreeset/internal/memio"
)

// newTestIO wires a fresh in-memory backend for each test. Keeping the
// helper in the package (rather than _test-suffixed internal/memio
// directly) lets every *_test.go file in this package share it.
func newTestIO() (*IO[*memio.Backend[int], int], *memio.Backend[int]) {
	b := memio.New[int]()
	io := memio.IO[int]()
	io.Handle = b
	return io, b
}

var ctx = context.Background()
