package domain

import (
	"encoding/json"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Store is the flat document set keyed by canonical key.
// It is only ever replaced as a whole, never edited in place.
type Store map[string]Record

// NewStore builds a Store from a document listing. Later duplicates of the
// same canonical key replace earlier ones.
func NewStore(docs []Document) Store {
	s := make(Store, len(docs))
	for _, doc := range docs {
		s[Key(doc)] = NewRecord(doc)
	}
	return s
}

// Has reports whether the store contains a record for the document.
func (s Store) Has(doc Document) bool {
	_, ok := s[Key(doc)]
	return ok
}

// Keys returns the store keys in sorted order.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Doctypes returns the distinct doctypes present in the store, sorted.
func (s Store) Doctypes() []string {
	seen := make(map[string]struct{})
	for _, r := range s {
		seen[r.Doctype] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Digest returns a stable fingerprint of the store contents.
// An empty store has an empty digest.
func (s Store) Digest() string {
	if len(s) == 0 {
		return ""
	}
	h := xxhash.New()
	for _, k := range s.Keys() {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{0})
		// Record marshaling never fails: it only holds strings and slices.
		data, _ := json.Marshal(s[k])
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
