package domain

import "slices"

// ResourceSet is the user-selected set of doctypes, in selection order
// and without duplicates.
type ResourceSet []string

// NewResourceSet builds a ResourceSet, dropping empty and repeated entries.
func NewResourceSet(doctypes ...string) ResourceSet {
	set := make(ResourceSet, 0, len(doctypes))
	for _, d := range doctypes {
		if d == "" || slices.Contains(set, d) {
			continue
		}
		set = append(set, d)
	}
	return set
}

// Contains reports whether the doctype is selected.
func (s ResourceSet) Contains(doctype string) bool {
	return slices.Contains(s, doctype)
}

// Empty reports whether nothing is selected.
func (s ResourceSet) Empty() bool {
	return len(s) == 0
}

// Equal reports whether both sets select the same doctypes, ignoring order.
func (s ResourceSet) Equal(other ResourceSet) bool {
	if len(s) != len(other) {
		return false
	}
	for _, d := range s {
		if !other.Contains(d) {
			return false
		}
	}
	return true
}

// ApplyResourceFilter keeps only the records whose doctype is selected.
// An empty selection returns the store unchanged.
func ApplyResourceFilter(store Store, selected ResourceSet) Store {
	if selected.Empty() {
		return store
	}
	out := make(Store, len(store))
	for k, r := range store {
		if selected.Contains(r.Doctype) {
			out[k] = r
		}
	}
	return out
}
