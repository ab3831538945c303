package orchestrator

import "github.com/Pa04rth/OpenCRE/internal/core/domain"

// State is an immutable view of the orchestrator. A new State value is
// published on every transition; published values are never modified.
type State struct {
	// Store is the document store after the resource filter.
	Store domain.Store
	// Forest is the materialized root forest of Store.
	Forest domain.Forest
	// Selected is the current resource selection.
	Selected domain.ResourceSet
	// SelectedKnown is false until the stored selection has been read.
	SelectedKnown bool
	// Loading is true while a backend or cache load is in flight.
	Loading bool
	// Revision is bumped every time Store is replaced.
	Revision uint64
}

// Transition is one entry of the update log.
type Transition struct {
	Reason string
	State  State
}

// Action is a state change requested through Dispatch.
type Action interface {
	reason() string
}

// SetSelectedResources replaces the resource selection.
type SetSelectedResources struct {
	Resources domain.ResourceSet
}

func (SetSelectedResources) reason() string { return "select resources" }

// Invalidate drops every loaded and persisted snapshot.
type Invalidate struct{}

func (Invalidate) reason() string { return "invalidate" }
