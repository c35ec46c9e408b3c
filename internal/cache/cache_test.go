package cache

import (
	"context"
	"testing"
)

func TestMemoryCache_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k)); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}

	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Fatal("expected a to be evicted")
	}
	b, ok, err := c.Get(ctx, "c")
	if err != nil || !ok || string(b) != "c" {
		t.Fatalf("expected c to be cached, got %q %v %v", b, ok, err)
	}
}

func TestLayoutKey_ChangesWithEveryInput(t *testing.T) {
	base := LayoutKey("epoch-a", 1, "2025-12-30", "clip", 100, 220)

	others := map[string]string{
		"epoch":       LayoutKey("epoch-b", 1, "2025-12-30", "clip", 100, 220),
		"version":     LayoutKey("epoch-a", 2, "2025-12-30", "clip", 100, 220),
		"date":        LayoutKey("epoch-a", 1, "2025-12-31", "clip", 100, 220),
		"policy":      LayoutKey("epoch-a", 1, "2025-12-30", "overshoot", 100, 220),
		"hourHeight":  LayoutKey("epoch-a", 1, "2025-12-30", "clip", 120, 220),
		"columnWidth": LayoutKey("epoch-a", 1, "2025-12-30", "clip", 100, 180),
	}
	for name, key := range others {
		if key == base {
			t.Errorf("changing %s must change the key, both are %q", name, key)
		}
	}
}
