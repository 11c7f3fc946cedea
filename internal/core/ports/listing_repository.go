package ports

import (
	"context"

	"github.com/stayhub/listings-api/internal/core/domain"
)

// ListListingsFilter carries all query parameters for listing pages.
type ListListingsFilter struct {
	PropertyType string // optional: exact match on property_type
	Page         int    // 1-based
	PerPage      int    // max rows per page (capped at 100 by service)
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	Insert(ctx context.Context, l *domain.Listing) error
	// List returns one page ordered by listing id ascending. An out-of-range
	// page yields an empty slice, not an error.
	List(ctx context.Context, filter ListListingsFilter) ([]*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	// FindByURL is used for the pre-insert duplicate check on listing_url.
	FindByURL(ctx context.Context, url string) (*domain.Listing, error)
	// Update replaces the stored document with the given merged listing.
	Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	// Delete removes the document and returns it for confirmation.
	Delete(ctx context.Context, id string) (*domain.Listing, error)
}
