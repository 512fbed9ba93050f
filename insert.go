package btreeset

import (
	"cmp"
	"context"
	"fmt"

	"btreeset/internal/algo"
	"btreeset/internal/base"
)

// Insert adds x to the tree. Insertion is set semantics: if x is
// already present, Insert is a no-op and returns t unchanged.
// Otherwise it locates the insertion leaf via search, then
// bubbles the new item up the descent path, splitting any page that
// would otherwise overflow past 2*Order items, possibly growing the
// tree by one level.
//
// Writes go straight to the back-end; Insert never buffers through a
// cache the way Delete does, because nothing it touches is revisited
// within the same call.
func Insert[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], t Tree[K], x K) (Tree[K], error) {
	if t.Root == None {
		id, err := io.Allocate(ctx, io.Handle)
		if err != nil {
			return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		leaf := &base.Page[K]{E: []base.Item[K]{{Key: x, P: None}}}
		if err := io.Write(ctx, io.Handle, id, leaf); err != nil {
			return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		t.opts.logger.Info("tree grew from empty", "key", x, "root", id)
		return finishMutation(ctx, io, Tree[K]{Order: t.Order, Root: id, opts: t.opts})
	}

	rd := func(ctx context.Context, id PageID) (*base.Page[K], error) {
		return io.Read(ctx, io.Handle, id)
	}
	res, err := search(ctx, rd, t.Root, x)
	if err != nil {
		return t, err
	}
	if res.found {
		return t, nil
	}

	u := base.Item[K]{Key: x, P: None}

	for i := len(res.path) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return t, err
		}

		step := res.path[i]

		if step.page.Len() < 2*t.Order {
			step.page.InsertAt(step.r, u)
			if err := io.Write(ctx, io.Handle, step.id, step.page); err != nil {
				return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
			}
			return finishMutation(ctx, io, t)
		}

		v, right := algo.Split(step.page, u, step.r, t.Order)

		rightID, err := io.Allocate(ctx, io.Handle)
		if err != nil {
			return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		v.P = rightID

		if err := io.Write(ctx, io.Handle, rightID, right); err != nil {
			return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}
		if err := io.Write(ctx, io.Handle, step.id, step.page); err != nil {
			return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
		}

		u = v
	}

	// The bubble reached past the root: grow the tree by one level.
	newRootID, err := io.Allocate(ctx, io.Handle)
	if err != nil {
		return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}
	newRoot := &base.Page[K]{P0: t.Root, E: []base.Item[K]{u}}
	if err := io.Write(ctx, io.Handle, newRootID, newRoot); err != nil {
		return t, fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}
	t.opts.logger.Info("root split, tree grew by one level", "new_root", newRootID)

	return finishMutation(ctx, io, Tree[K]{Order: t.Order, Root: newRootID, opts: t.opts})
}

// finishMutation optionally re-validates structural invariants when the
// caller asked for WithCheckAfterEveryOp; otherwise it is a no-op that
// returns nt unchanged.
func finishMutation[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], nt Tree[K]) (Tree[K], error) {
	if !nt.opts.checkAfterEvery {
		return nt, nil
	}
	if err := Check(ctx, io, nt); err != nil {
		return nt, err
	}
	return nt, nil
}
