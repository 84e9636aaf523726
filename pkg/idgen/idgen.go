// Package idgen derives sequential record identifiers of the form
// PREFIX001, PREFIX002, ... from the set of identifiers already in use.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
)

// NextID returns the next unused identifier for the given prefix.
//
// Among existing identifiers that start with prefix and whose remainder
// parses as a non-negative base-10 integer, the maximum is taken (zero when
// none match) and incremented. The numeric part is zero-padded to at least
// three digits; wider numbers are never truncated. Identifiers under the
// prefix with non-numeric suffixes are ignored.
//
// The caller must pass the current full identifier set on every call; the
// allocator keeps no state of its own.
func NextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		if len(id) <= len(prefix) || !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
