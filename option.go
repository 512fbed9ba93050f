package btreeset

import "cmp"

// options configures the behavior of a Tree's operations. It has no
// effect on the structure of the tree itself — order is fixed at New
// and never changes.
type options[K cmp.Ordered] struct {
	logger          Logger
	checkAfterEvery bool // re-validate invariants after every Insert/Delete
}

func defaultOptions[K cmp.Ordered]() options[K] {
	return options[K]{logger: DiscardLogger{}}
}

// Option configures a Tree using the functional options pattern.
type Option[K cmp.Ordered] func(*options[K])

// WithLogger attaches a structured logger. Root growth/shrink events
// log at Info; nothing else is logged, and borrow/merge steps emit no
// log lines. The search/member/enumerate hot paths never log.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger[K cmp.Ordered](l Logger) Option[K] {
	return func(o *options[K]) {
		o.logger = l
	}
}

// WithCheckAfterEveryOp enables eager invariant validation: every
// Insert and Delete calls Check before returning. Intended for tests
// and development, not production hot paths — it adds a full tree walk
// to every mutation.
//
//goland:noinspection GoUnusedExportedFunction
func WithCheckAfterEveryOp[K cmp.Ordered]() Option[K] {
	return func(o *options[K]) {
		o.checkAfterEvery = true
	}
}
