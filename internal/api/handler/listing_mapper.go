package handler

import (
	"github.com/stayhub/listings-api/internal/core/domain"
	"github.com/stayhub/listings-api/internal/core/ports"
)

// --- Request → domain / service input ---

func toListing(req createListingRequest) *domain.Listing {
	return &domain.Listing{
		ID:                   req.ID,
		ListingURL:           req.ListingURL,
		Name:                 req.Name,
		Summary:              req.Summary,
		Space:                req.Space,
		Description:          req.Description,
		NeighborhoodOverview: req.NeighborhoodOverview,
		Notes:                req.Notes,
		Transit:              req.Transit,
		Access:               req.Access,
		Interaction:          req.Interaction,
		HouseRules:           req.HouseRules,
		PropertyType:         req.PropertyType,
		RoomType:             req.RoomType,
		BedType:              req.BedType,
		MinimumNights:        req.MinimumNights,
		MaximumNights:        req.MaximumNights,
		CancellationPolicy:   req.CancellationPolicy,
		LastScraped:          req.LastScraped,
		CalendarLastScraped:  req.CalendarLastScraped,
		FirstReview:          req.FirstReview,
		LastReview:           req.LastReview,
		Accommodates:         req.Accommodates,
		Bedrooms:             req.Bedrooms,
		Beds:                 req.Beds,
		NumberOfReviews:      req.NumberOfReviews,
		Bathrooms:            req.Bathrooms,
		Amenities:            req.Amenities,
		Price:                req.Price,
		SecurityDeposit:      req.SecurityDeposit,
		CleaningFee:          req.CleaningFee,
		ExtraPeople:          req.ExtraPeople,
		GuestsIncluded:       req.GuestsIncluded,
		Images:               req.Images,
		Host:                 req.Host,
		Address:              req.Address,
		Availability:         req.Availability,
		ReviewScores:         req.ReviewScores,
		Reviews:              toReviews(req.Reviews),
	}
}

func toPatch(req updateListingRequest) ports.ListingPatch {
	return ports.ListingPatch{
		ListingURL:           req.ListingURL,
		Name:                 req.Name,
		Summary:              req.Summary,
		Space:                req.Space,
		Description:          req.Description,
		NeighborhoodOverview: req.NeighborhoodOverview,
		Notes:                req.Notes,
		Transit:              req.Transit,
		Access:               req.Access,
		Interaction:          req.Interaction,
		HouseRules:           req.HouseRules,
		PropertyType:         req.PropertyType,
		RoomType:             req.RoomType,
		BedType:              req.BedType,
		MinimumNights:        req.MinimumNights,
		MaximumNights:        req.MaximumNights,
		CancellationPolicy:   req.CancellationPolicy,
		LastScraped:          req.LastScraped,
		CalendarLastScraped:  req.CalendarLastScraped,
		FirstReview:          req.FirstReview,
		LastReview:           req.LastReview,
		Accommodates:         req.Accommodates,
		Bedrooms:             req.Bedrooms,
		Beds:                 req.Beds,
		NumberOfReviews:      req.NumberOfReviews,
		Bathrooms:            req.Bathrooms,
		Amenities:            req.Amenities,
		Price:                req.Price,
		SecurityDeposit:      req.SecurityDeposit,
		CleaningFee:          req.CleaningFee,
		ExtraPeople:          req.ExtraPeople,
		GuestsIncluded:       req.GuestsIncluded,
		Images:               req.Images,
		Host:                 req.Host,
		Address:              req.Address,
		Availability:         req.Availability,
		ReviewScores:         req.ReviewScores,
		Reviews:              toReviews(req.Reviews),
	}
}

func toReviews(reqs []reviewRequest) []domain.Review {
	if reqs == nil {
		return nil
	}
	out := make([]domain.Review, len(reqs))
	for i, r := range reqs {
		out[i] = domain.Review{
			ID:           r.ID,
			Date:         r.Date,
			ReviewerName: r.ReviewerName,
			Comments:     r.Comments,
		}
	}
	return out
}

// --- Service result → HTTP response ---

func toReviewSummaryResponse(s *ports.ReviewSummary) reviewSummaryResponse {
	return reviewSummaryResponse{
		ListingID:       s.ListingID,
		Count:           s.Count,
		FirstReviewDate: s.FirstReviewDate,
		LastReviewDate:  s.LastReviewDate,
		Reviews:         s.Reviews,
	}
}
