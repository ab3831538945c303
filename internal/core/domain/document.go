// Package domain contains the core domain types of the CRE document graph.
package domain

const (
	// DoctypeCRE is the doctype of Common Requirement documents.
	DoctypeCRE = "CRE"
	// DoctypeStandard is the doctype of external standards.
	DoctypeStandard = "Standard"

	// LinkContains is the only link type that defines tree hierarchy.
	LinkContains = "Contains"
	// LinkIsPartOf is the inverse of LinkContains.
	LinkIsPartOf = "Is Part Of"
	// LinkRelated marks a cross-link between documents.
	LinkRelated = "Related"
	// LinkLinkedTo marks a link from a CRE to a standard or tool.
	LinkLinkedTo = "Linked To"
)

// Document is a document record as returned by the backend.
type Document struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Doctype     string `json:"doctype"`
	Description string `json:"description,omitempty"`
	Hyperlink   string `json:"hyperlink,omitempty"`
	SectionID   string `json:"sectionID,omitempty"`
	Section     string `json:"section,omitempty"`
	Links       []Link `json:"links,omitempty"`
}

// Link is a directed, typed edge to another document.
type Link struct {
	Ltype    string    `json:"ltype"`
	Document *Document `json:"document"`
}

// Clone returns a deep copy of the document, including every linked document.
func (d Document) Clone() Document {
	out := d
	if d.Links == nil {
		return out
	}
	out.Links = make([]Link, len(d.Links))
	for i, l := range d.Links {
		out.Links[i] = Link{Ltype: l.Ltype}
		if l.Document != nil {
			target := l.Document.Clone()
			out.Links[i].Document = &target
		}
	}
	return out
}

// Record is a Document enriched with presentation data. It is the value type of a Store.
type Record struct {
	Document
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
}

// NewRecord enriches a document with its display name and internal URL.
func NewRecord(doc Document) Record {
	return Record{
		Document:    doc,
		DisplayName: DisplayName(doc),
		URL:         InternalURL(doc),
	}
}

// Page is one page of a paginated document listing.
type Page struct {
	Documents  []Document
	Page       int
	TotalPages int
}
