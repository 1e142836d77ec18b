package iconic

// ResourceBag is a string-keyed store attached to an Element. Keys keep
// their insertion order so Range and Dispose are deterministic.
type ResourceBag struct {
	items map[string]any
	keys  []string
}

// Set stores v under key, replacing any existing entry in place.
func (b *ResourceBag) Set(key string, v any) {
	if b.items == nil {
		b.items = make(map[string]any)
	}
	if _, ok := b.items[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.items[key] = v
}

// Lookup returns the value stored under key.
func (b *ResourceBag) Lookup(key string) (any, bool) {
	v, ok := b.items[key]
	return v, ok
}

// Remove deletes key and reports whether it was present.
func (b *ResourceBag) Remove(key string) bool {
	if _, ok := b.items[key]; !ok {
		return false
	}
	delete(b.items, key)
	for i, k := range b.keys {
		if k == key {
			copy(b.keys[i:], b.keys[i+1:])
			b.keys[len(b.keys)-1] = ""
			b.keys = b.keys[:len(b.keys)-1]
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (b *ResourceBag) Len() int {
	return len(b.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
// fn must not modify the bag.
func (b *ResourceBag) Range(fn func(key string, v any) bool) {
	for _, k := range b.keys {
		if !fn(k, b.items[k]) {
			return
		}
	}
}

// clear removes every entry.
func (b *ResourceBag) clear() {
	b.items = nil
	b.keys = nil
}
