package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/stayhub/listings-api/internal/core/domain"
	"github.com/stayhub/listings-api/internal/core/ports"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ListingService implements the listing query and CRUD use cases.
type ListingService struct {
	repo   ports.ListingRepository
	logger zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, logger: logger}
}

// List returns one page of listings ordered by id ascending. Page and
// per-page default to 1 and 10; per-page is capped at 100. An out-of-range
// page yields an empty slice.
func (s *ListingService) List(ctx context.Context, filter ports.ListListingsFilter) ([]*domain.Listing, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	listings, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Int("page", filter.Page).Msg("failed to list listings")
		return nil, err
	}
	return listings, nil
}

// Get retrieves a single listing by id.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the listing and rejects it when either the id or the
// listing URL is already taken, then inserts it.
func (s *ListingService) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, l.ID); err == nil {
		return nil, domain.ErrDuplicateListing
	} else if !errors.Is(err, domain.ErrListingNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByURL(ctx, l.ListingURL); err == nil {
		return nil, domain.ErrDuplicateListing
	} else if !errors.Is(err, domain.ErrListingNotFound) {
		return nil, err
	}

	if err := s.repo.Insert(ctx, l); err != nil {
		s.logger.Error().Err(err).Str("listing_id", l.ID).Msg("failed to create listing")
		return nil, err
	}

	s.logger.Info().Str("listing_id", l.ID).Str("property_type", l.PropertyType).Msg("listing created")
	return l, nil
}

// Update merges the patch onto the stored listing, re-validates the result
// and persists it. Required fields must still resolve to valid values after
// the merge.
func (s *ListingService) Update(ctx context.Context, id string, patch ports.ListingPatch) (*domain.Listing, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := applyPatch(*existing, patch)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &merged)
	if err != nil {
		s.logger.Error().Err(err).Str("listing_id", id).Msg("failed to update listing")
		return nil, err
	}

	s.logger.Info().Str("listing_id", id).Msg("listing updated")
	return updated, nil
}

// Delete removes the listing and returns the deleted record.
func (s *ListingService) Delete(ctx context.Context, id string) (*domain.Listing, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrListingNotFound) {
			s.logger.Error().Err(err).Str("listing_id", id).Msg("failed to delete listing")
		}
		return nil, err
	}

	s.logger.Info().Str("listing_id", id).Msg("listing deleted")
	return deleted, nil
}

// Reviews returns the listing's reviews ordered by date ascending together
// with the count and the first/last review dates.
func (s *ListingService) Reviews(ctx context.Context, id string) (*ports.ReviewSummary, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, len(listing.Reviews))
	copy(reviews, listing.Reviews)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.Before(reviews[j].Date)
	})

	summary := &ports.ReviewSummary{
		ListingID: listing.ID,
		Count:     len(reviews),
		Reviews:   reviews,
	}
	if len(reviews) > 0 {
		first := reviews[0].Date
		last := reviews[len(reviews)-1].Date
		summary.FirstReviewDate = &first
		summary.LastReviewDate = &last
	}
	return summary, nil
}

// applyPatch copies every non-nil patch field onto the listing. The id is
// immutable and not part of the patch.
func applyPatch(l domain.Listing, p ports.ListingPatch) domain.Listing {
	if p.ListingURL != nil {
		l.ListingURL = *p.ListingURL
	}
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Summary != nil {
		l.Summary = *p.Summary
	}
	if p.Space != nil {
		l.Space = *p.Space
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.NeighborhoodOverview != nil {
		l.NeighborhoodOverview = *p.NeighborhoodOverview
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.Transit != nil {
		l.Transit = *p.Transit
	}
	if p.Access != nil {
		l.Access = *p.Access
	}
	if p.Interaction != nil {
		l.Interaction = *p.Interaction
	}
	if p.HouseRules != nil {
		l.HouseRules = *p.HouseRules
	}
	if p.PropertyType != nil {
		l.PropertyType = *p.PropertyType
	}
	if p.RoomType != nil {
		l.RoomType = *p.RoomType
	}
	if p.BedType != nil {
		l.BedType = *p.BedType
	}
	if p.MinimumNights != nil {
		l.MinimumNights = *p.MinimumNights
	}
	if p.MaximumNights != nil {
		l.MaximumNights = *p.MaximumNights
	}
	if p.CancellationPolicy != nil {
		l.CancellationPolicy = *p.CancellationPolicy
	}
	if p.LastScraped != nil {
		l.LastScraped = p.LastScraped
	}
	if p.CalendarLastScraped != nil {
		l.CalendarLastScraped = p.CalendarLastScraped
	}
	if p.FirstReview != nil {
		l.FirstReview = p.FirstReview
	}
	if p.LastReview != nil {
		l.LastReview = p.LastReview
	}
	if p.Accommodates != nil {
		l.Accommodates = *p.Accommodates
	}
	if p.Bedrooms != nil {
		l.Bedrooms = p.Bedrooms
	}
	if p.Beds != nil {
		l.Beds = p.Beds
	}
	if p.NumberOfReviews != nil {
		l.NumberOfReviews = p.NumberOfReviews
	}
	if p.Bathrooms != nil {
		l.Bathrooms = p.Bathrooms
	}
	if p.Amenities != nil {
		l.Amenities = p.Amenities
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.SecurityDeposit != nil {
		l.SecurityDeposit = p.SecurityDeposit
	}
	if p.CleaningFee != nil {
		l.CleaningFee = p.CleaningFee
	}
	if p.ExtraPeople != nil {
		l.ExtraPeople = p.ExtraPeople
	}
	if p.GuestsIncluded != nil {
		l.GuestsIncluded = p.GuestsIncluded
	}
	if p.Images != nil {
		l.Images = p.Images
	}
	if p.Host != nil {
		l.Host = p.Host
	}
	if p.Address != nil {
		l.Address = p.Address
	}
	if p.Availability != nil {
		l.Availability = p.Availability
	}
	if p.ReviewScores != nil {
		l.ReviewScores = p.ReviewScores
	}
	if p.Reviews != nil {
		l.Reviews = p.Reviews
	}
	return l
}
