package domain

// undefinedSegment is what a missing field renders as inside a fallback key.
// Persisted caches written by earlier clients use the same literal.
const undefinedSegment = "undefined"

// Key returns the canonical identity of a document.
//
// CREs are identified by their ID and standards by their name. Every other
// doctype falls back to "{name}-{sectionID}-{section}".
func Key(doc Document) string {
	switch doc.Doctype {
	case DoctypeCRE:
		return doc.ID
	case DoctypeStandard:
		return doc.Name
	default:
		return orUndefined(doc.Name) + "-" + orUndefined(doc.SectionID) + "-" + orUndefined(doc.Section)
	}
}

// KeyIsAmbiguous reports whether Key falls back to a key with missing
// section segments. Such keys may collide between distinct documents.
func KeyIsAmbiguous(doc Document) bool {
	if doc.Doctype == DoctypeCRE || doc.Doctype == DoctypeStandard {
		return false
	}
	return doc.SectionID == "" && doc.Section == ""
}

// orUndefined renders an empty segment as undefined. Document fields are plain
// strings, so after decoding an absent field and an explicit "" are the same
// value and both key as undefined.
func orUndefined(s string) string {
	if s == "" {
		return undefinedSegment
	}
	return s
}
