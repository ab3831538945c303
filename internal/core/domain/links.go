package domain

import (
	"slices"
	"strings"
)

// linkOrder is the display order of well-known link types.
// Unknown types follow in alphabetical order.
var linkOrder = []string{LinkContains, LinkIsPartOf, LinkRelated, LinkLinkedTo}

// LinkGroup holds the links of one type, sorted by target display name.
type LinkGroup struct {
	Ltype string
	Links []Link
}

// FilterLinks drops links whose target doctype is not selected.
// Links without a target are always dropped when a selection is active.
func FilterLinks(doc Document, selected ResourceSet) Document {
	if selected.Empty() {
		return doc
	}
	out := doc.Clone()
	out.Links = slices.DeleteFunc(out.Links, func(l Link) bool {
		return l.Document == nil || !selected.Contains(l.Document.Doctype)
	})
	return out
}

// GroupLinks groups the links of a document by link type.
func GroupLinks(doc Document) []LinkGroup {
	byType := make(map[string][]Link)
	for _, l := range doc.Links {
		if l.Document == nil {
			continue
		}
		byType[l.Ltype] = append(byType[l.Ltype], l)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	slices.SortFunc(types, compareLinkTypes)

	groups := make([]LinkGroup, 0, len(types))
	for _, t := range types {
		links := byType[t]
		slices.SortStableFunc(links, func(a, b Link) int {
			return strings.Compare(DisplayName(*a.Document), DisplayName(*b.Document))
		})
		groups = append(groups, LinkGroup{Ltype: t, Links: links})
	}
	return groups
}

func compareLinkTypes(a, b string) int {
	ia, ib := slices.Index(linkOrder, a), slices.Index(linkOrder, b)
	switch {
	case ia >= 0 && ib >= 0:
		return ia - ib
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
