// Package algo contains the stateless search and split arithmetic used
// to traverse and edit a B-tree set page. Nothing here touches I/O; it
// operates purely on a *base.Page held in memory.
package algo

import (
	"cmp"

	"btreeset/internal/base"
)

// Search performs the classical half-open binary search for X over a
// page's item vector. Found reports whether E[Index].Key == X; when
// Found is false, Index is R, the count of items whose key is <= X (the
// one-based child slot: R==0 descends P0, otherwise E[R-1].P).
func Search[K cmp.Ordered](p *base.Page[K], x K) (index int, found bool) {
	lo, hi := 0, len(p.E)
	for lo < hi {
		mid := (lo + hi) / 2
		if p.E[mid].Key < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(p.E) && p.E[lo].Key == x {
		return lo, true
	}
	return lo, false
}

// Split divides a full page (m == 2N) around the incoming item u, which
// would land at child slot r. It returns the item v that must be
// promoted to the parent and the freshly built right sibling's body; a
// is mutated in place to become the left half. The caller still owes
// two things the algorithm can't do on its own: giving the new sibling
// a PageID and pointing v.P at it (Split leaves v.P as whatever subtree
// pointer the promoted item carried, per the source's assignment order).
func Split[K cmp.Ordered](a *base.Page[K], u base.Item[K], r int, n int) (v base.Item[K], right *base.Page[K]) {
	var rightE []base.Item[K]

	switch {
	case r == n:
		// U itself is the median; A keeps its left N items untouched.
		v = u
		rightE = append([]base.Item[K]{}, a.E[n:]...)
		a.E = a.E[:n]

	case r < n:
		// Old median E[N-1] is promoted; U is spliced into the left half.
		v = a.E[n-1]
		rightE = append([]base.Item[K]{}, a.E[n:]...)
		left := append([]base.Item[K]{}, a.E[:n-1]...)
		left = append(left, base.Item[K]{})
		copy(left[r+1:], left[r:n-1])
		left[r] = u
		a.E = left

	default: // r > n
		v = a.E[n]
		rightE = append([]base.Item[K]{}, a.E[n+1:]...)
		pos := r - n - 1
		rightE = append(rightE, base.Item[K]{})
		copy(rightE[pos+1:], rightE[pos:len(rightE)-1])
		rightE[pos] = u
		a.E = a.E[:n]
	}

	right = &base.Page[K]{P0: v.P, E: rightE}
	return v, right
}
