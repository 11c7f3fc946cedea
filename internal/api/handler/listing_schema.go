package handler

import (
	"time"

	"github.com/stayhub/listings-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type reviewRequest struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"          validate:"required"`
	ReviewerName string    `json:"reviewer_name"`
	Comments     string    `json:"comments"      validate:"required"`
}

type createListingRequest struct {
	ID                   string                `json:"id"            validate:"required"`
	ListingURL           string                `json:"listing_url"   validate:"required,url"`
	Name                 string                `json:"name"          validate:"required,max=256"`
	Summary              string                `json:"summary"`
	Space                string                `json:"space"`
	Description          string                `json:"description"   validate:"required"`
	NeighborhoodOverview string                `json:"neighborhood_overview"`
	Notes                string                `json:"notes"`
	Transit              string                `json:"transit"`
	Access               string                `json:"access"`
	Interaction          string                `json:"interaction"`
	HouseRules           string                `json:"house_rules"`
	PropertyType         string                `json:"property_type" validate:"required,max=64"`
	RoomType             string                `json:"room_type"     validate:"required,max=64"`
	BedType              string                `json:"bed_type"`
	MinimumNights        string                `json:"minimum_nights"`
	MaximumNights        string                `json:"maximum_nights"`
	CancellationPolicy   string                `json:"cancellation_policy"`
	LastScraped          *time.Time            `json:"last_scraped"`
	CalendarLastScraped  *time.Time            `json:"calendar_last_scraped"`
	FirstReview          *time.Time            `json:"first_review"`
	LastReview           *time.Time            `json:"last_review"`
	Accommodates         int                   `json:"accommodates"  validate:"required,gt=0"`
	Bedrooms             *int                  `json:"bedrooms"      validate:"omitempty,gte=0"`
	Beds                 *int                  `json:"beds"          validate:"omitempty,gte=0"`
	NumberOfReviews      *int                  `json:"number_of_reviews" validate:"omitempty,gte=0"`
	Bathrooms            *float64              `json:"bathrooms"     validate:"omitempty,gte=0"`
	Amenities            []string              `json:"amenities"`
	Price                float64               `json:"price"         validate:"gte=0"`
	SecurityDeposit      *float64              `json:"security_deposit" validate:"omitempty,gte=0"`
	CleaningFee          *float64              `json:"cleaning_fee"  validate:"omitempty,gte=0"`
	ExtraPeople          *float64              `json:"extra_people"  validate:"omitempty,gte=0"`
	GuestsIncluded       *int                  `json:"guests_included" validate:"omitempty,gte=0"`
	Images               *domain.Images        `json:"images"`
	Host                 *domain.Host          `json:"host"`
	Address              *domain.Address       `json:"address"`
	Availability         *domain.Availability  `json:"availability"`
	ReviewScores         *domain.ReviewScores  `json:"review_scores"`
	Reviews              []reviewRequest       `json:"reviews" validate:"omitempty,dive"`
}

// updateListingRequest carries a partial update; nil fields are untouched.
// The merged result is re-validated by the service, so only per-field range
// checks live here.
type updateListingRequest struct {
	ListingURL           *string               `json:"listing_url"   validate:"omitempty,url"`
	Name                 *string               `json:"name"          validate:"omitempty,max=256"`
	Summary              *string               `json:"summary"`
	Space                *string               `json:"space"`
	Description          *string               `json:"description"`
	NeighborhoodOverview *string               `json:"neighborhood_overview"`
	Notes                *string               `json:"notes"`
	Transit              *string               `json:"transit"`
	Access               *string               `json:"access"`
	Interaction          *string               `json:"interaction"`
	HouseRules           *string               `json:"house_rules"`
	PropertyType         *string               `json:"property_type" validate:"omitempty,max=64"`
	RoomType             *string               `json:"room_type"     validate:"omitempty,max=64"`
	BedType              *string               `json:"bed_type"`
	MinimumNights        *string               `json:"minimum_nights"`
	MaximumNights        *string               `json:"maximum_nights"`
	CancellationPolicy   *string               `json:"cancellation_policy"`
	LastScraped          *time.Time            `json:"last_scraped"`
	CalendarLastScraped  *time.Time            `json:"calendar_last_scraped"`
	FirstReview          *time.Time            `json:"first_review"`
	LastReview           *time.Time            `json:"last_review"`
	Accommodates         *int                  `json:"accommodates"  validate:"omitempty,gt=0"`
	Bedrooms             *int                  `json:"bedrooms"      validate:"omitempty,gte=0"`
	Beds                 *int                  `json:"beds"          validate:"omitempty,gte=0"`
	NumberOfReviews      *int                  `json:"number_of_reviews" validate:"omitempty,gte=0"`
	Bathrooms            *float64              `json:"bathrooms"     validate:"omitempty,gte=0"`
	Amenities            []string              `json:"amenities"`
	Price                *float64              `json:"price"         validate:"omitempty,gte=0"`
	SecurityDeposit      *float64              `json:"security_deposit" validate:"omitempty,gte=0"`
	CleaningFee          *float64              `json:"cleaning_fee"  validate:"omitempty,gte=0"`
	ExtraPeople          *float64              `json:"extra_people"  validate:"omitempty,gte=0"`
	GuestsIncluded       *int                  `json:"guests_included" validate:"omitempty,gte=0"`
	Images               *domain.Images        `json:"images"`
	Host                 *domain.Host          `json:"host"`
	Address              *domain.Address       `json:"address"`
	Availability         *domain.Availability  `json:"availability"`
	ReviewScores         *domain.ReviewScores  `json:"review_scores"`
	Reviews              []reviewRequest       `json:"reviews" validate:"omitempty,dive"`
}

// --- Response types ---

type listListingsResponse struct {
	Data    []*domain.Listing `json:"data"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

type reviewSummaryResponse struct {
	ListingID       string          `json:"listing_id"`
	Count           int             `json:"count"`
	FirstReviewDate *time.Time      `json:"first_review_date,omitempty"`
	LastReviewDate  *time.Time      `json:"last_review_date,omitempty"`
	Reviews         []domain.Review `json:"reviews"`
}

type deleteListingResponse struct {
	Message string          `json:"message"`
	Deleted *domain.Listing `json:"deleted"`
}
