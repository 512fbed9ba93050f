package btreeset

import (
	"cmp"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// fingerprint digests a page's content into a single uint64: its
// leftmost pointer followed by each item's key and right pointer in
// order. It is a diagnostic aid only — Check and Print attach it to
// error messages and tree dumps so two runs that disagree about a
// page's body are easy to tell apart without printing the whole page.
func fingerprint[K cmp.Ordered](p *Page[K]) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "p0:%d;", p.P0)
	for _, it := range p.E {
		fmt.Fprintf(d, "%v:%d;", it.Key, it.P)
	}
	return d.Sum64()
}
