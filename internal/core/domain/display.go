package domain

import (
	"net/url"
	"strings"
)

// DisplayName returns the human readable label of a document, e.g.
// "CRE: 616-305: Development processes" or "Standard: ASVS: V1.1".
func DisplayName(doc Document) string {
	parts := []string{doc.Doctype}
	if doc.Doctype != DoctypeStandard {
		parts = append(parts, doc.ID)
	}
	parts = append(parts, doc.Name, doc.SectionID, doc.Section)

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ": ")
}

// InternalURL returns the path under which the frontend serves a document.
func InternalURL(doc Document) string {
	if doc.Doctype == DoctypeCRE {
		return "/cre/" + url.PathEscape(doc.ID)
	}

	u := "/node/" + url.PathEscape(strings.ToLower(doc.Doctype)) + "/" + url.PathEscape(doc.Name)
	switch {
	case doc.SectionID != "":
		u += "/sectionid/" + url.PathEscape(doc.SectionID)
	case doc.Section != "":
		u += "/section/" + url.PathEscape(doc.Section)
	}
	return u
}
