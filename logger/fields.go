package logger

import (
	"fmt"

	"btreeset"
)

// normalizeArgs rewrites any btreeset.PageID found among the args into
// its 0x-prefixed hex form instead of a bare decimal uint64. Check and
// Print write page ids in decimal (only their content fingerprints are
// hex), so a page id logged here does not read the same as in a tree
// dump.
func normalizeArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if id, ok := a.(btreeset.PageID); ok {
			out[i] = fmt.Sprintf("0x%x", uint64(id))
			continue
		}
		out[i] = a
	}
	return out
}
