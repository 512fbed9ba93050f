package btreeset

import (
	"cmp"
	"context"
	"fmt"

	"btreeset/internal/algo"
	"btreeset/internal/base"
)

// pathStep records one page visited on a miss during descent: the page
// itself, its id, and the child slot r that was followed onward. The
// path is built root-first and consumed root-last by the bubble step
// that runs after a miss reaches a leaf.
type pathStep[K cmp.Ordered] struct {
	id   PageID
	page *base.Page[K]
	r    int
}

// searchResult is the outcome of descending the tree for a key: either
// a hit (the page and index where it lives) or a miss carrying the
// full descent path so Insert can bubble from the leaf back to the
// root.
type searchResult[K cmp.Ordered] struct {
	found bool
	page  *base.Page[K]
	pid   PageID
	index int
	path  []pathStep[K] // root-first; path[len(path)-1] is the deepest miss
}

// search descends from the root performing a binary search at every
// page. Any reader (*base.IO or the delete cache) can drive it; the rd
// function abstracts over that difference.
func search[K cmp.Ordered](ctx context.Context, rd func(context.Context, PageID) (*base.Page[K], error), root PageID, x K) (searchResult[K], error) {
	id := root
	var path []pathStep[K]

	for id != None {
		if err := ctx.Err(); err != nil {
			return searchResult[K]{}, err
		}

		p, err := rd(ctx, id)
		if err != nil {
			return searchResult[K]{}, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		if err := validatePage(p, id); err != nil {
			return searchResult[K]{}, err
		}

		idx, found := algo.Search(p, x)
		if found {
			return searchResult[K]{found: true, page: p, pid: id, index: idx, path: path}, nil
		}

		path = append(path, pathStep[K]{id: id, page: p, r: idx})
		id = p.Child(idx)
	}

	return searchResult[K]{found: false, path: path}, nil
}

// validatePage checks the invariants a single read can observe in
// isolation — leaf/internal uniformity and strictly increasing keys —
// without walking the rest of the tree. A back-end returning a page
// that fails either is corrupt; the core refuses to build on top of it.
func validatePage[K cmp.Ordered](p *base.Page[K], id PageID) error {
	if p.IsMixed() {
		return fmt.Errorf("%w: page %d mixes leaf and internal children", ErrInvariantViolation, id)
	}
	for i := 1; i < len(p.E); i++ {
		if !(p.E[i-1].Key < p.E[i].Key) {
			return fmt.Errorf("%w: page %d keys out of order at index %d", ErrInvariantViolation, id, i)
		}
	}
	return nil
}

// Member reports whether x is present in the tree. It costs O(depth)
// back-end reads and performs no mutation.
func Member[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], t Tree[K], x K) (bool, error) {
	rd := func(ctx context.Context, id PageID) (*base.Page[K], error) {
		return io.Read(ctx, io.Handle, id)
	}
	res, err := search(ctx, rd, t.Root, x)
	if err != nil {
		return false, err
	}
	return res.found, nil
}
