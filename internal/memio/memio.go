// Package memio is an in-memory reference implementation of the page
// I/O callback bundle (base.IO), used across this module's own test
// suite and benchmarks. It is not part of the engine's public surface —
// real back-ends persist pages to disk, object storage, and so on — but
// every test and boundary scenario here needs some concrete back-end to
// drive, and a map is the simplest one that can also inject faults on
// demand.
package memio

import (
	"cmp"
	"context"
	"fmt"
	"sync"

	"btreeset/internal/base"
)

// FaultMode lets tests force a callback to fail, exercising the
// BackendError path without needing a real, flaky storage medium.
type FaultMode int

const (
	NoFault FaultMode = iota
	FailRead
	FailWrite
	FailAllocate
	FailDelete
)

// Backend is the handle type passed through base.IO.Handle. Construct
// one with New: the zero value has no page map, so a Write to it
// panics, and its first Allocate returns None.
type Backend[K cmp.Ordered] struct {
	mu     sync.Mutex
	pages  map[base.PageID]*base.Page[K]
	nextID base.PageID
	fault  FaultMode

	Reads, Writes, Allocs, Deletes int // call counters, useful for cache tests
}

// New returns an empty backend.
func New[K cmp.Ordered]() *Backend[K] {
	return &Backend[K]{pages: make(map[base.PageID]*base.Page[K]), nextID: 1}
}

// SetFault arms a one-shot-per-call failure mode for the given callback.
func (b *Backend[K]) SetFault(f FaultMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fault = f
}

func (b *Backend[K]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pages)
}

// IO builds a base.IO bundle wired to this backend.
func IO[K cmp.Ordered]() *base.IO[*Backend[K], K] {
	return &base.IO[*Backend[K], K]{
		Read:     readPage[K],
		Write:    writePage[K],
		Allocate: allocatePage[K],
		Delete:   deletePage[K],
	}
}

func readPage[K cmp.Ordered](_ context.Context, b *Backend[K], id base.PageID) (*base.Page[K], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Reads++

	if b.fault == FailRead {
		b.fault = NoFault
		return nil, fmt.Errorf("memio: injected read failure on page %d", id)
	}

	p, ok := b.pages[id]
	if !ok {
		return nil, fmt.Errorf("memio: no such page %d", id)
	}
	return p.Clone(), nil
}

func writePage[K cmp.Ordered](_ context.Context, b *Backend[K], id base.PageID, p *base.Page[K]) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Writes++

	if b.fault == FailWrite {
		b.fault = NoFault
		return fmt.Errorf("memio: injected write failure on page %d", id)
	}

	b.pages[id] = p.Clone()
	return nil
}

func allocatePage[K cmp.Ordered](_ context.Context, b *Backend[K]) (base.PageID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Allocs++

	if b.fault == FailAllocate {
		b.fault = NoFault
		return base.None, fmt.Errorf("memio: injected allocate failure")
	}

	id := b.nextID
	b.nextID++
	return id, nil
}

func deletePage[K cmp.Ordered](_ context.Context, b *Backend[K], id base.PageID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Deletes++

	if b.fault == FailDelete {
		b.fault = NoFault
		return fmt.Errorf("memio: injected delete failure on page %d", id)
	}

	if _, ok := b.pages[id]; !ok {
		return fmt.Errorf("memio: no such page %d", id)
	}
	delete(b.pages, id)
	return nil
}
