package ports

import (
	"context"
	"time"

	"github.com/stayhub/listings-api/internal/core/domain"
)

// ListingPatch is a partial update. Nil fields are left untouched; the
// service merges the patch onto the stored listing and re-validates the
// result before persisting.
type ListingPatch struct {
	ListingURL           *string
	Name                 *string
	Summary              *string
	Space                *string
	Description          *string
	NeighborhoodOverview *string
	Notes                *string
	Transit              *string
	Access               *string
	Interaction          *string
	HouseRules           *string
	PropertyType         *string
	RoomType             *string
	BedType              *string
	MinimumNights        *string
	MaximumNights        *string
	CancellationPolicy   *string
	LastScraped          *time.Time
	CalendarLastScraped  *time.Time
	FirstReview          *time.Time
	LastReview           *time.Time
	Accommodates         *int
	Bedrooms             *int
	Beds                 *int
	NumberOfReviews      *int
	Bathrooms            *float64
	Amenities            []string
	Price                *float64
	SecurityDeposit      *float64
	CleaningFee          *float64
	ExtraPeople          *float64
	GuestsIncluded       *int
	Images               *domain.Images
	Host                 *domain.Host
	Address              *domain.Address
	Availability         *domain.Availability
	ReviewScores         *domain.ReviewScores
	Reviews              []domain.Review
}

// ReviewSummary is the aggregate returned for a listing's reviews.
type ReviewSummary struct {
	ListingID       string
	Count           int
	FirstReviewDate *time.Time
	LastReviewDate  *time.Time
	Reviews         []domain.Review // ordered by date ascending
}

// ListingService defines use-case operations for listings.
type ListingService interface {
	List(ctx context.Context, filter ListListingsFilter) ([]*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	Update(ctx context.Context, id string, patch ListingPatch) (*domain.Listing, error)
	Delete(ctx context.Context, id string) (*domain.Listing, error)
	Reviews(ctx context.Context, id string) (*ReviewSummary, error)
}
