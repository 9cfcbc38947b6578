package matching

import (
	"sort"
	"strings"
)

// DefaultSuffixes are the generic trailing words stripped to produce
// best-effort aliases, so "premier league" is also reachable as
// "premier".
func DefaultSuffixes() []string {
	return []string{" league", " division", " liga", " tour"}
}

// Index maps canonical names (and their suffix-stripped aliases) to one
// signal source's records. Scan order is insertion order, which keeps the
// partial matcher deterministic; inserting an existing key overwrites the
// record but keeps the original position. Aliases are best effort, so the
// overwrite rule is acceptable by contract.
type Index[T any] struct {
	keys    []string
	entries map[string]T
}

// NewIndex builds an index from raw provider spellings. Suffix-stripped
// aliases are added for every canonical form ending in one of the given
// suffixes. Raw names are inserted in sorted order so the partial scan is
// deterministic no matter how the record map was assembled.
func NewIndex[T any](records map[string]T, suffixes []string) *Index[T] {
	raws := make([]string, 0, len(records))
	for raw := range records {
		raws = append(raws, raw)
	}
	sort.Strings(raws)

	idx := &Index[T]{entries: make(map[string]T, len(records))}
	for _, raw := range raws {
		record := records[raw]
		canonical := Normalize(raw)
		idx.put(canonical, record)
		for _, suffix := range suffixes {
			if strings.HasSuffix(canonical, suffix) {
				idx.put(strings.TrimSpace(strings.TrimSuffix(canonical, suffix)), record)
			}
		}
	}

	return idx
}

func (idx *Index[T]) put(key string, record T) {
	if key == "" {
		return
	}
	if _, exists := idx.entries[key]; !exists {
		idx.keys = append(idx.keys, key)
	}
	idx.entries[key] = record
}

// Len reports the number of distinct keys, aliases included.
func (idx *Index[T]) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.keys)
}

// Get performs an exact key lookup.
func (idx *Index[T]) Get(key string) (T, bool) {
	var zero T
	if idx == nil {
		return zero, false
	}
	record, ok := idx.entries[key]
	if !ok {
		return zero, false
	}
	return record, true
}

// Keys returns the scan order. The slice is shared; callers must not mutate.
func (idx *Index[T]) Keys() []string {
	if idx == nil {
		return nil
	}
	return idx.keys
}
