package btreeset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btreeset/internal/memio"
)

func insertAll(t *testing.T, io *IO[*memio.Backend[int], int], order int, keys []int) Tree[int] {
	t.Helper()
	tr, err := New[int](order)
	require.NoError(t, err)
	for _, k := range keys {
		tr, err = Insert(ctx, io, tr, k)
		require.NoError(t, err)
	}
	return tr
}

// TestDeleteAbsentKeyIsNoOp checks idempotence: deleting a key that was
// never inserted leaves the tree untouched.
func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	io, _ := newTestIO()
	tr := insertAll(t, io, 2, []int{1, 2, 3})
	before := tr.Root

	tr2, err := Delete(ctx, io, tr, 99)
	require.NoError(t, err)
	assert.Equal(t, before, tr2.Root)

	keys, err := AllKeys(ctx, io, tr2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, keys)
}

// TestDeleteOnEmptyTree exercises the degenerate case directly.
func TestDeleteOnEmptyTree(t *testing.T) {
	io, _ := newTestIO()
	tr, err := New[int](2)
	require.NoError(t, err)

	tr2, err := Delete(ctx, io, tr, 7)
	require.NoError(t, err)
	assert.Equal(t, None, tr2.Root)
}

// TestDeleteLastKeyEmptiesTree covers the single-leaf root shrinking to
// nothing: delete the one key a single-page tree holds.
func TestDeleteLastKeyEmptiesTree(t *testing.T) {
	io, _ := newTestIO()
	tr := insertAll(t, io, 2, []int{5})

	tr, err := Delete(ctx, io, tr, 5)
	require.NoError(t, err)
	assert.Equal(t, None, tr.Root)

	ok, err := Member(ctx, io, tr, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestDeleteBorrowsFromRightSibling builds a three-leaf N=2 tree whose
// leftmost leaf sits at the minimum occupancy and whose right sibling
// has a spare item, then deletes a key from the leftmost leaf. The
// resulting underflow must be fixed by rotating one item in from the
// right rather than merging.
func TestDeleteBorrowsFromRightSibling(t *testing.T) {
	io, _ := newTestIO()
	tr := insertAll(t, io, 2, []int{10, 20, 30, 40, 50, 60, 70, 80, 45})

	tr, err := Delete(ctx, io, tr, 10)
	require.NoError(t, err)
	require.NoError(t, Check(ctx, io, tr))

	keys, err := AllKeys(ctx, io, tr)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30, 40, 45, 50, 60, 70, 80}, keys)
}

// TestDeleteSplicesInternalNode deletes a key that lives in an internal
// page's item vector rather than a leaf, forcing a splice against the
// in-order predecessor pulled from the left subtree.
func TestDeleteSplicesInternalNode(t *testing.T) {
	io, _ := newTestIO()
	tr := insertAll(t, io, 2, []int{10, 20, 30, 40, 50, 60, 70, 80, 45})

	tr, err := Delete(ctx, io, tr, 10)
	require.NoError(t, err)
	tr, err = Delete(ctx, io, tr, 40) // 40 is an internal separator, not a leaf item
	require.NoError(t, err)
	require.NoError(t, Check(ctx, io, tr))

	keys, err := AllKeys(ctx, io, tr)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30, 45, 50, 60, 70, 80}, keys)
}

// TestDeleteMergeShrinksRoot drives a sequence of deletes that borrows
// from the right, merges two leaves, borrows from the left, and removes
// a key without underflow; the last delete then merges the two
// remaining leaves, emptying the root so the tree collapses by one
// level.
func TestDeleteMergeShrinksRoot(t *testing.T) {
	io, _ := newTestIO()
	tr := insertAll(t, io, 2, []int{10, 20, 30, 40, 50, 60, 70, 80, 45})

	var err error
	for _, k := range []int{10, 20, 70, 30} {
		tr, err = Delete(ctx, io, tr, k)
		require.NoError(t, err)
		require.NoError(t, Check(ctx, io, tr))
	}

	rootBeforeShrink := tr.Root
	tr, err = Delete(ctx, io, tr, 40)
	require.NoError(t, err)
	require.NoError(t, Check(ctx, io, tr))

	assert.NotEqual(t, rootBeforeShrink, tr.Root, "root page should have been replaced by its sole child")

	keys, err := AllKeys(ctx, io, tr)
	require.NoError(t, err)
	assert.Equal(t, []int{45, 50, 60, 80}, keys)
}

// TestInsertDeleteRoundTrip checks that inserting a key and immediately
// deleting it restores the tree to its prior key set.
func TestInsertDeleteRoundTrip(t *testing.T) {
	io, _ := newTestIO()
	tr := insertAll(t, io, 2, []int{1, 2, 3, 4, 5})

	before, err := AllKeys(ctx, io, tr)
	require.NoError(t, err)

	tr, err = Insert(ctx, io, tr, 100)
	require.NoError(t, err)
	tr, err = Delete(ctx, io, tr, 100)
	require.NoError(t, err)

	after, err := AllKeys(ctx, io, tr)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// TestRandomizedStress drives a long randomized sequence of inserts and
// deletes against both the tree and a reference Go set, checking
// structural invariants and membership agreement after every step.
func TestRandomizedStress(t *testing.T) {
	io, _ := newTestIO()
	tr, err := New[int](3)
	require.NoError(t, err)

	reference := make(map[int]bool)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		k := rng.Intn(300)
		if rng.Intn(2) == 0 {
			tr, err = Insert(ctx, io, tr, k)
			require.NoError(t, err)
			reference[k] = true
		} else {
			tr, err = Delete(ctx, io, tr, k)
			require.NoError(t, err)
			delete(reference, k)
		}

		require.NoError(t, Check(ctx, io, tr))

		ok, err := Member(ctx, io, tr, k)
		require.NoError(t, err)
		assert.Equal(t, reference[k], ok, "membership disagreement on key %d at step %d", k, i)
	}

	want := make([]int, 0, len(reference))
	for k := range reference {
		want = append(want, k)
	}
	got, err := AllKeys(ctx, io, tr)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}
