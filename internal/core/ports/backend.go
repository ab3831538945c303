// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
)

// Backend is the document graph backend.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// AllDocuments returns one page of the full flat document listing.
	AllDocuments(ctx context.Context, page, perPage int) (domain.Page, error)

	// RootDocuments returns the root-level documents.
	RootDocuments(ctx context.Context) ([]domain.Document, error)

	// DocumentByID returns a single document.
	// It returns domain.ErrDocumentNotFound if the backend does not know the ID
	// and a *domain.UpstreamError for any other unexpected response.
	DocumentByID(ctx context.Context, id string) (domain.Document, error)

	// Resources returns the doctypes a user can select.
	Resources(ctx context.Context) ([]string, error)
}
