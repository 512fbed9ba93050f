// Package cache implements the delete-scoped write-back page cache: a
// one-shot buffer that lives for the span of a single Delete call and
// batches the back-end effects of the borrow/merge/splice steps so a
// revisited page is never read twice or written twice.
package cache

import (
	"cmp"
	"context"
	"fmt"

	"btreeset/internal/base"
)

// state tags a cache entry as Clean, Dirty, or Deleted; it is never
// exposed outside this package.
type state int

const (
	clean state = iota
	dirty
	deleted
)

type entry[K cmp.Ordered] struct {
	page  *base.Page[K]
	state state
}

// Cache is the delete-scoped page cache. Construct one per Delete call
// with New and discard it after Flush; it has no long-lived identity.
//
// The entry set is expected to stay O(depth) for one delete (root path,
// plus at most one sibling touched per underflow step), so a plain map
// is adequate at this scale.
type Cache[H any, K cmp.Ordered] struct {
	io      *base.IO[H, K]
	entries map[base.PageID]*entry[K]
}

// New opens a cache bound to the given back-end.
func New[H any, K cmp.Ordered](io *base.IO[H, K]) *Cache[H, K] {
	return &Cache[H, K]{io: io, entries: make(map[base.PageID]*entry[K])}
}

// Read returns the page's current body, whatever its state. Reading an
// id the cache has marked Deleted is a programming error — the
// algorithms above never construct such a call if the tree is
// well-formed — and panics rather than returning a silently wrong page.
func (c *Cache[H, K]) Read(ctx context.Context, id base.PageID) (*base.Page[K], error) {
	if e, ok := c.entries[id]; ok {
		if e.state == deleted {
			panic(fmt.Sprintf("cache: read of deleted page %d", id))
		}
		return e.page, nil
	}

	p, err := c.io.Read(ctx, c.io.Handle, id)
	if err != nil {
		return nil, err
	}
	c.entries[id] = &entry[K]{page: p, state: clean}
	return p, nil
}

// Write marks a page Dirty. It does not touch the back-end until Flush.
func (c *Cache[H, K]) Write(id base.PageID, p *base.Page[K]) {
	c.entries[id] = &entry[K]{page: p, state: dirty}
}

// Delete marks a page id Deleted. A later Read of the same id panics.
func (c *Cache[H, K]) Delete(id base.PageID) {
	c.entries[id] = &entry[K]{state: deleted}
}

// Allocate always goes straight to the back-end: a freshly allocated
// page has no prior cached state to reconcile.
func (c *Cache[H, K]) Allocate(ctx context.Context) (base.PageID, error) {
	return c.io.Allocate(ctx, c.io.Handle)
}

// Flush applies every buffered effect to the back-end: all Dirty pages
// are written before any page is deleted, so a back-end that only
// guarantees crash-consistency within a single call never observes a
// deleted page's id reused by a write it hasn't applied yet.
func (c *Cache[H, K]) Flush(ctx context.Context) error {
	var toDelete []base.PageID

	for id, e := range c.entries {
		switch e.state {
		case dirty:
			if err := c.io.Write(ctx, c.io.Handle, id, e.page); err != nil {
				return fmt.Errorf("cache flush: write page %d: %w", id, err)
			}
		case deleted:
			toDelete = append(toDelete, id)
		}
	}

	for _, id := range toDelete {
		if err := c.io.Delete(ctx, c.io.Handle, id); err != nil {
			return fmt.Errorf("cache flush: delete page %d: %w", id, err)
		}
	}

	return nil
}
