package matching

import "testing"

func TestNewIndexSuffixAliases(t *testing.T) {
	idx := NewIndex(map[string]int{
		"Super League Greece": 1,
		"Premier-League":      2,
	}, DefaultSuffixes())

	if _, ok := idx.Get("super league greece"); !ok {
		t.Fatalf("expected canonical key to be indexed")
	}
	if record, ok := idx.Get("premier"); !ok || record != 2 {
		t.Fatalf("expected suffix-stripped alias: got=%d ok=%t", record, ok)
	}
	if _, ok := idx.Get("super league"); ok {
		t.Fatalf("suffix must only strip at the end of the name")
	}
}

func TestNewIndexOverwriteKeepsPosition(t *testing.T) {
	idx := &Index[string]{entries: map[string]string{}}
	idx.put("premier league", "first")
	idx.put("la liga", "second")
	idx.put("premier league", "updated")

	if got := idx.Len(); got != 2 {
		t.Fatalf("unexpected key count: got=%d want=2", got)
	}
	if got := idx.Keys()[0]; got != "premier league" {
		t.Fatalf("overwrite must not move the key: got=%q", got)
	}
	if record, _ := idx.Get("premier league"); record != "updated" {
		t.Fatalf("overwrite must replace the record: got=%q", record)
	}
}

func TestNewIndexSkipsEmptyKeys(t *testing.T) {
	idx := NewIndex(map[string]int{"  ": 1, " league": 2}, DefaultSuffixes())
	for _, key := range idx.Keys() {
		if key == "" {
			t.Fatalf("empty key must not be indexed")
		}
	}
}
