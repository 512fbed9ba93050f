package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageIsLeaf(t *testing.T) {
	leaf := &Page[int]{P0: None, E: []Item[int]{{Key: 10, P: None}, {Key: 20, P: None}}}
	assert.True(t, leaf.IsLeaf())
	assert.False(t, leaf.IsMixed())

	internal := &Page[int]{P0: PageID(1), E: []Item[int]{{Key: 10, P: PageID(2)}}}
	assert.False(t, internal.IsLeaf())
	assert.False(t, internal.IsMixed())
}

func TestPageIsMixed(t *testing.T) {
	mixed := &Page[int]{P0: None, E: []Item[int]{{Key: 10, P: PageID(2)}}}
	assert.True(t, mixed.IsMixed())
}

func TestPageChild(t *testing.T) {
	p := &Page[int]{P0: PageID(1), E: []Item[int]{{Key: 10, P: PageID(2)}, {Key: 20, P: PageID(3)}}}
	assert.Equal(t, PageID(1), p.Child(0))
	assert.Equal(t, PageID(2), p.Child(1))
	assert.Equal(t, PageID(3), p.Child(2))
}

func TestPageInsertAt(t *testing.T) {
	p := &Page[int]{P0: None, E: []Item[int]{{Key: 10}, {Key: 30}}}
	p.InsertAt(1, Item[int]{Key: 20})
	assert.Equal(t, []int{10, 20, 30}, keys(p))
}

func TestPageRemoveAt(t *testing.T) {
	p := &Page[int]{P0: None, E: []Item[int]{{Key: 10}, {Key: 20}, {Key: 30}}}
	p.RemoveAt(1)
	assert.Equal(t, []int{10, 30}, keys(p))
}

func TestPageClone(t *testing.T) {
	p := &Page[int]{P0: None, E: []Item[int]{{Key: 10}}}
	c := p.Clone()
	c.E[0].Key = 99
	assert.Equal(t, 10, p.E[0].Key)
	assert.Equal(t, 99, c.E[0].Key)
}

func keys(p *Page[int]) []int {
	out := make([]int, len(p.E))
	for i, it := range p.E {
		out[i] = it.Key
	}
	return out
}
