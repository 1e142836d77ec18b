package iconic

import "testing"

func TestResourceBagSetLookupRemove(t *testing.T) {
	var b ResourceBag
	if _, ok := b.Lookup("x"); ok {
		t.Fatal("empty bag should have no entries")
	}
	b.Set("x", 1)
	b.Set("y", 2)
	b.Set("x", 3)

	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if v, ok := b.Lookup("x"); !ok || v != 3 {
		t.Errorf("x = %v, %v; want 3, true", v, ok)
	}
	if !b.Remove("x") {
		t.Error("Remove(x) should report true")
	}
	if b.Remove("x") {
		t.Error("second Remove(x) should report false")
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestResourceBagRangeOrder(t *testing.T) {
	var b ResourceBag
	for _, k := range []string{"c", "a", "b"} {
		b.Set(k, k)
	}
	b.Set("a", "again") // replacing keeps position
	b.Remove("c")
	b.Set("c", "c")

	var keys []string
	b.Range(func(k string, _ any) bool {
		keys = append(keys, k)
		return true
	})
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys = %v, want %v", keys, want)
			break
		}
	}
}

func TestResourceBagRangeStops(t *testing.T) {
	var b ResourceBag
	b.Set("a", 1)
	b.Set("b", 2)
	n := 0
	b.Range(func(string, any) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("visited %d entries, want 1", n)
	}
}
