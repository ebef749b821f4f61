package items

// Set is an ordered collection of named items. Its length and order are
// fixed once created; only item values change.
type Set struct {
	entries []Named
}

// NewSet creates a set from the given entries. The slice is copied but the
// items are not.
func NewSet(entries ...Named) *Set {
	return &Set{entries: append([]Named(nil), entries...)}
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// At returns the entry at position i. It panics if i is out of range.
func (s *Set) At(i int) Named {
	return s.entries[i]
}

// Lines returns one "name: value" line per entry.
func (s *Set) Lines() []string {
	lines := make([]string, len(s.entries))
	for i, e := range s.entries {
		lines[i] = e.String()
	}
	return lines
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{entries: make([]Named, len(s.entries))}
	for i, e := range s.entries {
		c.entries[i] = Named{Name: e.Name, Item: Clone(e.Item)}
	}
	return c
}
