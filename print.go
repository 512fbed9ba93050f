package btreeset

import (
	"cmp"
	"context"
	"fmt"
	"strings"
)

// Print renders the tree as an indented page dump: each page's own
// keys on one line, tagged with its content fingerprint, followed by
// its children at one deeper indent level — own keys first, then P0's
// subtree, then each item's right subtree, the same order the
// original recursive tree-printer walks a page.
func Print[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], t Tree[K]) (string, error) {
	var sb strings.Builder
	if t.Root == None {
		return "<empty>\n", nil
	}
	if err := printNode(ctx, io, t.Root, 0, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func printNode[H any, K cmp.Ordered](ctx context.Context, io *IO[H, K], id PageID, depth int, sb *strings.Builder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := io.Read(ctx, io.Handle, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendFailed, err)
	}

	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%spage %d (fp=%016x):", indent, id, fingerprint(p))
	for _, it := range p.E {
		fmt.Fprintf(sb, " %v", it.Key)
	}
	sb.WriteByte('\n')

	if !p.IsLeaf() {
		for i := 0; i <= p.Len(); i++ {
			if err := printNode(ctx, io, p.Child(i), depth+1, sb); err != nil {
				return err
			}
		}
	}
	return nil
}
