package btreeset

import (
	"cmp"
	"context"

	"btreeset/internal/base"
)

// IO is the page storage back-end's callback bundle: a handle plus the
// four operations the core never performs on its own — Read, Write,
// Allocate, Delete. H is whatever the back-end needs to locate its own
// state.
type IO[H any, K cmp.Ordered] = base.IO[H, K]

// Page is the persisted shape of one B-tree page: a leftmost subtree
// pointer P0 and an ordered item vector E. Back-ends decode/encode
// this however they like; the core never mandates a byte layout.
type Page[K cmp.Ordered] = base.Page[K]

// Item is a (key, right-subtree) pair within a page.
type Item[K cmp.Ordered] = base.Item[K]

// MkIO assembles an IO bundle from a handle and the four callbacks.
// It exists mainly to spell out the expected parameter order (handle,
// read, write, allocate, delete); callers are free to build an
// IO[H, K] literal directly instead.
func MkIO[H any, K cmp.Ordered](
	handle H,
	read func(ctx context.Context, h H, id PageID) (*Page[K], error),
	write func(ctx context.Context, h H, id PageID, p *Page[K]) error,
	allocate func(ctx context.Context, h H) (PageID, error),
	del func(ctx context.Context, h H, id PageID) error,
) *IO[H, K] {
	return &IO[H, K]{
		Handle:   handle,
		Read:     read,
		Write:    write,
		Allocate: allocate,
		Delete:   del,
	}
}
