// Package forest turns the flat document store into rooted trees.
package forest

import (
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"go.trai.ch/zerr"
)

// Materializer builds trees from the records of a Store.
type Materializer struct {
	store domain.Store
}

// New creates a Materializer over store.
func New(store domain.Store) *Materializer {
	return &Materializer{store: store}
}

// Build materializes the tree rooted at doc.
//
// Only "Contains" links whose target is in the store are followed. Links to
// standards become leaves regardless of their type. A key already in path is
// never entered again, which bounds the depth by the size of the store.
func (m *Materializer) Build(doc domain.Document, path *Path) (domain.TreeNode, error) {
	selfKey := domain.Key(doc)
	path.Push(selfKey)

	record, ok := m.store[selfKey]
	if !ok {
		return domain.TreeNode{}, zerr.With(
			zerr.Wrap(domain.ErrDocumentNotInStore, "cannot build tree"), "key", selfKey)
	}
	node := domain.NewTreeNode(record)

	// Decide what to recurse into before descending: children push onto path.
	var recursable []domain.Record
	for _, l := range record.Links {
		if l.Ltype != domain.LinkContains || l.Document == nil {
			continue
		}
		key := domain.Key(*l.Document)
		target, inStore := m.store[key]
		if !inStore || path.Contains(key) {
			continue
		}
		recursable = append(recursable, target)
	}

	for _, target := range recursable {
		child, err := m.Build(target.Document, path)
		if err != nil {
			return domain.TreeNode{}, err
		}
		node.Links = append(node.Links, domain.TreeLink{Ltype: domain.LinkContains, Document: child})
	}

	for _, l := range record.Links {
		if l.Document == nil || l.Document.Doctype != domain.DoctypeStandard {
			continue
		}
		key := domain.Key(*l.Document)
		if path.Contains(key) {
			continue
		}
		node.Links = append(node.Links, domain.TreeLink{Ltype: l.Ltype, Document: m.leaf(*l.Document)})
	}

	return node, nil
}

// BuildForest materializes one tree per root, each with a fresh Path.
// Roots that are not in the store are skipped and reported.
func (m *Materializer) BuildForest(roots []domain.Document) (domain.Forest, []error) {
	forest := make(domain.Forest, 0, len(roots))
	var errs []error
	for _, root := range roots {
		node, err := m.Build(root, NewPath())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		forest = append(forest, node)
	}
	return forest, errs
}

// leaf returns a childless node for a linked standard, preferring the
// enriched store record when one exists.
func (m *Materializer) leaf(doc domain.Document) domain.TreeNode {
	if record, ok := m.store[domain.Key(doc)]; ok {
		return domain.NewTreeNode(record)
	}
	return domain.NewTreeNode(domain.NewRecord(doc))
}
