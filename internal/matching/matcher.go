package matching

import "strings"

// Match resolves a canonical target name against one index. Phase one is an
// exact key lookup. Phase two scans keys in insertion order and accepts the
// first key that is a substring of the target or contains the target as a
// substring. The first-wins policy is deliberately permissive and carries no
// confidence ranking; swapping in a stricter matcher must not require
// touching callers.
//
// A miss is not an error: it means this source has nothing for the entity
// and the caller degrades gracefully.
func Match[T any](idx *Index[T], target string) (T, bool) {
	var zero T
	if idx == nil || target == "" {
		return zero, false
	}

	if record, ok := idx.Get(target); ok {
		return record, true
	}

	for _, key := range idx.Keys() {
		if strings.Contains(target, key) || strings.Contains(key, target) {
			record, _ := idx.Get(key)
			return record, true
		}
	}

	return zero, false
}
