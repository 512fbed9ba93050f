// Package btreeset implements an on-disk B-tree set: an ordered
// collection of unique keys stored as fixed-capacity pages reached
// through a client-supplied page I/O interface. The package owns the
// algorithmic core only — search descent, split propagation, recursive
// delete with borrow/merge rebalance, and the delete-scoped write-back
// cache. Persistence, page layout, allocation policy, and concurrency
// control belong to the caller's IO implementation.
package btreeset

import (
	"cmp"

	"btreeset/internal/base"
)

// Tree is an immutable-from-the-caller's-perspective handle on a
// B-tree set: its order (the minimum item count per non-root page) and
// the current root page id. Every mutating operation returns a new
// Tree value; Order never changes after New.
type Tree[K cmp.Ordered] struct {
	Order int
	Root  PageID
	opts  options[K]
}

// PageID is re-exported from internal/base so callers building an IO
// implementation never need to import the internal package directly.
type PageID = base.PageID

// None is the sentinel PageID meaning "no page".
const None = base.None

// New creates an empty tree of the given order. N must be at least 2
// (a page must be able to split into two halves of at least one item
// each); New returns ErrInvalidOrder otherwise.
func New[K cmp.Ordered](order int, opts ...Option[K]) (Tree[K], error) {
	if order < 2 {
		return Tree[K]{}, ErrInvalidOrder
	}

	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	return Tree[K]{Order: order, Root: None, opts: o}, nil
}
