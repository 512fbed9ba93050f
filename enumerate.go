package btreeset

import (
	"cmp"
	"context"
	"fmt"
)

// AllKeys returns every key in the tree in ascending order. It is
// side-effect free: an in-order walk that never writes a page.
func AllKeys[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], t Tree[K]) ([]K, error) {
	var out []K
	if err := walk(ctx, io, t.Root, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], id PageID, out *[]K) error {
	if id == None {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := io.Read(ctx, io.Handle, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}
	if err := validatePage[K](p, id); err != nil {
		return err
	}

	if err := walk(ctx, io, p.P0, out); err != nil {
		return err
	}
	for _, it := range p.E {
		*out = append(*out, it.Key)
		if err := walk(ctx, io, it.P, out); err != nil {
			return err
		}
	}
	return nil
}
