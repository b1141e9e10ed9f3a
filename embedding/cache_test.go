package embedding

import "testing"

func TestCacheGetSet(t *testing.T) {
	c := NewCache(4)
	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Set("gas", []float32{1, 2, 3})
	vec, ok := c.Get("gas")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(vec) != 3 || vec[0] != 1 {
		t.Errorf("got %v, want [1 2 3]", vec)
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache(4)
	c.Set("gas", []float32{1})
	c.Set("gas", []float32{2})
	vec, _ := c.Get("gas")
	if len(vec) != 1 || vec[0] != 2 {
		t.Errorf("got %v, want the newer vector", vec)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Set("a", []float32{1})
	c.Set("b", []float32{2})

	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}
	c.Set("c", []float32{3})

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should have survived eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be present")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := NewCache(0)
	if c.capacity != 1024 {
		t.Errorf("capacity = %d, want 1024", c.capacity)
	}
}
