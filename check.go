package btreeset

import (
	"cmp"
	"context"
	"fmt"
)

// Check walks the whole tree and verifies the structural invariants
// the core relies on: every page is purely a leaf or purely internal,
// keys within a page are strictly increasing, every non-root page
// holds between Order and 2*Order items, every leaf sits at the same
// depth, and every key in a subtree falls strictly between the
// separators that bound it. It is meant for tests and for callers that
// want to validate a back-end after restoring it from storage; normal
// operation never calls it (unless WithCheckAfterEveryOp is set).
func Check[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], t Tree[K]) error {
	if t.Root == None {
		return nil
	}
	leafDepth := -1
	return checkNode(ctx, io, t.Root, true, nil, nil, t.Order, 0, &leafDepth)
}

func checkNode[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], id PageID, isRoot bool, lower, upper *K, order, depth int, leafDepth *int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := io.Read(ctx, io.Handle, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}
	if err := validatePage(p, id); err != nil {
		return err
	}

	m := p.Len()
	if isRoot {
		if m > 2*order {
			return fmt.Errorf("%w: root page %d (fp=%x) has %d items, want <= %d", ErrInvariantViolation, id, fingerprint(p), m, 2*order)
		}
	} else if m < order || m > 2*order {
		return fmt.Errorf("%w: page %d (fp=%x) has %d items, want between %d and %d", ErrInvariantViolation, id, fingerprint(p), m, order, 2*order)
	}

	if lower != nil && m > 0 && !(*lower < p.E[0].Key) {
		return fmt.Errorf("%w: page %d (fp=%x) first key %v does not exceed its lower separator %v", ErrInvariantViolation, id, fingerprint(p), p.E[0].Key, *lower)
	}
	if upper != nil && m > 0 && !(p.E[m-1].Key < *upper) {
		return fmt.Errorf("%w: page %d (fp=%x) last key %v does not precede its upper separator %v", ErrInvariantViolation, id, fingerprint(p), p.E[m-1].Key, *upper)
	}

	if p.IsLeaf() {
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return fmt.Errorf("%w: leaf page %d at depth %d, want %d", ErrInvariantViolation, id, depth, *leafDepth)
		}
		return nil
	}

	for i := 0; i <= m; i++ {
		childLo, childHi := lower, upper
		if i > 0 {
			k := p.E[i-1].Key
			childLo = &k
		}
		if i < m {
			k := p.E[i].Key
			childHi = &k
		}
		if err := checkNode(ctx, io, p.Child(i), false, childLo, childHi, order, depth+1, leafDepth); err != nil {
			return err
		}
	}
	return nil
}
