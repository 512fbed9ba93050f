package btreeset

import "errors"

// Sentinel errors for the three failure classes the core recognises.
// BackendError and InvariantViolation are not single values — they wrap
// the offending callback error or violated invariant with fmt.Errorf's
// %w, and callers branch on them with errors.Is.
//
//goland:noinspection GoUnusedGlobalVariable
var (
	// ErrInvalidOrder is returned by New when N < 2.
	ErrInvalidOrder = errors.New("btreeset: order must be >= 2")

	// ErrBackendFailed wraps a page I/O callback's own error. Once an
	// operation returns an error wrapping this, the tree value it
	// returned should be discarded unless the back-end guarantees
	// transactional semantics.
	ErrBackendFailed = errors.New("btreeset: back-end callback failed")

	// ErrInvariantViolation wraps a detected break of a structural
	// invariant (balance, occupancy, ordering, leaf depth). These are
	// storage-corruption or programming errors and are always fatal to
	// the operation that found them. A read of a page the delete-scoped
	// cache has marked deleted does not return this error: the cache
	// panics instead.
	ErrInvariantViolation = errors.New("btreeset: structural invariant violated")
)
