package btreeset

import (
	"cmp"
	"context"
	"fmt"

	"btreeset/internal/algo"
	"btreeset/internal/base"
	"btreeset/internal/cache"
)

// Delete removes x from the tree. If x is absent, Delete is a no-op and
// returns t unchanged (idempotent).
//
// Unlike Insert, Delete routes every page access through a
// delete-scoped cache: borrow and merge steps revisit a sibling
// page that a deeper step already read, and the cache makes sure that
// page is fetched once and written once no matter how many rebalance
// steps touch it on the way back to the root.
func Delete[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], t Tree[K], x K) (Tree[K], error) {
	if t.Root == None {
		return t, nil
	}

	c := cache.New[H, K](io)

	removed, underflow, err := delKey(ctx, c, t.Root, x, t.Order)
	if err != nil {
		return t, err
	}
	if !removed {
		return t, nil
	}

	newRoot := t.Root
	if underflow {
		root, err := c.Read(ctx, t.Root)
		if err != nil {
			return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		if root.Len() == 0 {
			newRoot = root.P0
			c.Delete(t.Root)
			t.opts.logger.Info("root emptied, tree shrank by one level", "old_root", t.Root, "new_root", newRoot)
		}
	}

	if err := c.Flush(ctx); err != nil {
		return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}

	return finishMutation(ctx, io, Tree[K]{Order: t.Order, Root: newRoot, opts: t.opts})
}

// delKey removes x from the subtree rooted at id. removed reports
// whether x was present at all; underflow reports whether, after
// removal, this page (as rewritten) holds fewer than Order items —
// the caller at the next level up must rebalance around it.
func delKey[H any, K cmp.Ordered](ctx context.Context, c *cache.Cache[H, K], id PageID, x K, order int) (removed bool, underflow bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, false, err
	}

	p, err := c.Read(ctx, id)
	if err != nil {
		return false, false, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}
	if err := validatePage(p, id); err != nil {
		return false, false, err
	}

	idx, found := algo.Search(p, x)

	if p.IsLeaf() {
		if !found {
			return false, false, nil
		}
		p.RemoveAt(idx)
		c.Write(id, p)
		return true, p.Len() < order, nil
	}

	if found {
		predKey, childUnderflow, err := delMax(ctx, c, p.Child(idx), order)
		if err != nil {
			return false, false, err
		}
		p.E[idx].Key = predKey
		c.Write(id, p)

		if childUnderflow {
			selfUnderflow, err := rebalance(ctx, c, p, id, idx, order)
			if err != nil {
				return false, false, err
			}
			return true, selfUnderflow, nil
		}
		return true, false, nil
	}

	childRemoved, childUnderflow, err := delKey(ctx, c, p.Child(idx), x, order)
	if err != nil {
		return false, false, err
	}
	if !childRemoved {
		return false, false, nil
	}
	if !childUnderflow {
		return true, false, nil
	}

	selfUnderflow, err := rebalance(ctx, c, p, id, idx, order)
	if err != nil {
		return false, false, err
	}
	return true, selfUnderflow, nil
}

// delMax removes and returns the largest key in the subtree rooted at
// id — the in-order predecessor used to splice an internal-node hit.
func delMax[H any, K cmp.Ordered](ctx context.Context, c *cache.Cache[H, K], id PageID, order int) (key K, underflow bool, err error) {
	if err := ctx.Err(); err != nil {
		var zero K
		return zero, false, err
	}

	p, err := c.Read(ctx, id)
	if err != nil {
		var zero K
		return zero, false, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}

	if p.IsLeaf() {
		last := p.Len() - 1
		k := p.E[last].Key
		p.RemoveAt(last)
		c.Write(id, p)
		return k, p.Len() < order, nil
	}

	r := p.Len()
	k, childUnderflow, err := delMax(ctx, c, p.Child(r), order)
	if err != nil {
		var zero K
		return zero, false, err
	}
	if !childUnderflow {
		return k, false, nil
	}

	selfUnderflow, err := rebalance(ctx, c, p, id, r, order)
	if err != nil {
		var zero K
		return zero, false, err
	}
	return k, selfUnderflow, nil
}

// rebalance restores the minimum-occupancy invariant around the child
// at slot r of page p (identified by id) after that child lost an item
// and dropped below Order. It prefers the right sibling: borrow
// (m-Order+1)/2 items from it, where m is the sibling's item count, if
// that is at least one, otherwise merge the sibling into the child.
// Only when r is the rightmost slot — there is no right sibling — does
// it fall back to the left sibling instead, by the same rule. The
// merge always folds the higher-indexed page into the lower-indexed
// one, matching the child-slot renumbering that Page.RemoveAt
// produces.
func rebalance[H any, K cmp.Ordered](ctx context.Context, c *cache.Cache[H, K], p *base.Page[K], id PageID, r int, order int) (underflow bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	childID := p.Child(r)
	child, err := c.Read(ctx, childID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}

	if r < p.Len() {
		rightID := p.Child(r + 1)
		right, err := c.Read(ctx, rightID)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		if k := (right.Len() - order + 1) / 2; k > 0 {
			moved := base.Item[K]{Key: p.E[r].Key, P: right.P0}
			child.E = append(child.E, moved)
			child.E = append(child.E, right.E[:k-1]...)
			right.P0 = right.E[k-1].P
			p.E[r].Key = right.E[k-1].Key
			right.E = append([]base.Item[K]{}, right.E[k:]...)

			c.Write(rightID, right)
			c.Write(childID, child)
			c.Write(id, p)
			return false, nil
		}

		sep := base.Item[K]{Key: p.E[r].Key, P: right.P0}
		child.E = append(child.E, sep)
		child.E = append(child.E, right.E...)

		c.Write(childID, child)
		c.Delete(rightID)
		p.RemoveAt(r)
		c.Write(id, p)
		return p.Len() < order, nil
	}

	leftID := p.Child(r - 1)
	left, err := c.Read(ctx, leftID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}
	if k := (left.Len() - order + 1) / 2; k > 0 {
		m := left.Len()
		borrowed := left.E[m-k]
		moved := append([]base.Item[K]{}, left.E[m-k+1:]...)
		moved = append(moved, base.Item[K]{Key: p.E[r-1].Key, P: child.P0})
		child.E = append(moved, child.E...)
		child.P0 = borrowed.P
		p.E[r-1].Key = borrowed.Key
		left.E = left.E[:m-k]

		c.Write(leftID, left)
		c.Write(childID, child)
		c.Write(id, p)
		return false, nil
	}

	sep := base.Item[K]{Key: p.E[r-1].Key, P: child.P0}
	left.E = append(left.E, sep)
	left.E = append(left.E, child.E...)

	c.Write(leftID, left)
	c.Delete(childID)
	p.RemoveAt(r - 1)
	c.Write(id, p)
	return p.Len() < order, nil
}
