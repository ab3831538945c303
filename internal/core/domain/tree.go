package domain

// TreeNode is a materialized document whose links point to child nodes
// instead of raw documents. A TreeNode subtree is always finite.
type TreeNode struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Doctype     string     `json:"doctype"`
	Description string     `json:"description,omitempty"`
	Hyperlink   string     `json:"hyperlink,omitempty"`
	SectionID   string     `json:"sectionID,omitempty"`
	Section     string     `json:"section,omitempty"`
	DisplayName string     `json:"displayName"`
	URL         string     `json:"url"`
	Links       []TreeLink `json:"links"`
}

// TreeLink is an edge of a materialized tree.
type TreeLink struct {
	Ltype    string   `json:"ltype"`
	Document TreeNode `json:"document"`
}

// NewTreeNode copies the scalar fields of a record into a node without links.
func NewTreeNode(r Record) TreeNode {
	return TreeNode{
		ID:          r.ID,
		Name:        r.Name,
		Doctype:     r.Doctype,
		Description: r.Description,
		Hyperlink:   r.Hyperlink,
		SectionID:   r.SectionID,
		Section:     r.Section,
		DisplayName: r.DisplayName,
		URL:         r.URL,
		Links:       []TreeLink{},
	}
}

// Key returns the canonical key of the node.
func (n TreeNode) Key() string {
	return Key(Document{ID: n.ID, Name: n.Name, Doctype: n.Doctype, SectionID: n.SectionID, Section: n.Section})
}

// Walk calls fn for the node and every descendant in depth-first order.
// depth is 0 for the node itself. Walk stops when fn returns false.
func (n TreeNode) Walk(fn func(node TreeNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n TreeNode) walk(fn func(node TreeNode, depth int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, l := range n.Links {
		if !l.Document.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Forest is the ordered list of trees, one per root document.
type Forest []TreeNode

// Find returns the tree whose root has the given canonical key.
func (f Forest) Find(key string) (TreeNode, bool) {
	for _, n := range f {
		if n.Key() == key {
			return n, true
		}
	}
	return TreeNode{}, false
}

// ForestSnapshot is the persisted form of a Forest. StoreDigest records the
// Store the forest was derived from so stale snapshots can be rejected.
type ForestSnapshot struct {
	StoreDigest string     `json:"store_digest"`
	Roots       []Document `json:"roots"`
	Forest      Forest     `json:"forest"`
}
