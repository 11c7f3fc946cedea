package domain

import (
	"errors"
	"time"
)

var ErrListingNotFound = errors.New("listing not found")
var ErrDuplicateListing = errors.New("listing already exists")

// ValidationError reports one or more field-level problems with a listing
// payload. It is a client error, never a store failure.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid listing"
	}
	msg := "invalid listing: " + e.Fields[0]
	for _, f := range e.Fields[1:] {
		msg += "; " + f
	}
	return msg
}

// Review is a single guest review attached to a listing.
type Review struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Date         time.Time `json:"date" bson:"date"`
	ReviewerName string    `json:"reviewer_name,omitempty" bson:"reviewer_name,omitempty"`
	Comments     string    `json:"comments" bson:"comments"`
}

// Images holds the picture URLs exposed by a listing.
type Images struct {
	ThumbnailURL string `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	MediumURL    string `json:"medium_url,omitempty" bson:"medium_url,omitempty"`
	PictureURL   string `json:"picture_url,omitempty" bson:"picture_url,omitempty"`
	XLPictureURL string `json:"xl_picture_url,omitempty" bson:"xl_picture_url,omitempty"`
}

// Host describes the property owner.
type Host struct {
	HostID       string `json:"host_id,omitempty" bson:"host_id,omitempty"`
	HostName     string `json:"host_name,omitempty" bson:"host_name,omitempty"`
	HostLocation string `json:"host_location,omitempty" bson:"host_location,omitempty"`
	HostAbout    string `json:"host_about,omitempty" bson:"host_about,omitempty"`
	HostPicture  string `json:"host_picture_url,omitempty" bson:"host_picture_url,omitempty"`
}

// Address locates the property.
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	Suburb  string `json:"suburb,omitempty" bson:"suburb,omitempty"`
	Market  string `json:"market,omitempty" bson:"market,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// Availability captures the booking calendar counters.
type Availability struct {
	Availability30  int `json:"availability_30" bson:"availability_30"`
	Availability60  int `json:"availability_60" bson:"availability_60"`
	Availability90  int `json:"availability_90" bson:"availability_90"`
	Availability365 int `json:"availability_365" bson:"availability_365"`
}

// ReviewScores aggregates guest ratings.
type ReviewScores struct {
	Accuracy      int `json:"review_scores_accuracy,omitempty" bson:"review_scores_accuracy,omitempty"`
	Cleanliness   int `json:"review_scores_cleanliness,omitempty" bson:"review_scores_cleanliness,omitempty"`
	CheckIn       int `json:"review_scores_checkin,omitempty" bson:"review_scores_checkin,omitempty"`
	Communication int `json:"review_scores_communication,omitempty" bson:"review_scores_communication,omitempty"`
	Location      int `json:"review_scores_location,omitempty" bson:"review_scores_location,omitempty"`
	Value         int `json:"review_scores_value,omitempty" bson:"review_scores_value,omitempty"`
	Rating        int `json:"review_scores_rating,omitempty" bson:"review_scores_rating,omitempty"`
}

// Listing is the core aggregate root. IDs are application-assigned strings,
// not generated ObjectIDs, so duplicates must be checked before insert.
type Listing struct {
	ID                   string        `json:"id" bson:"_id"`
	ListingURL           string        `json:"listing_url" bson:"listing_url"`
	Name                 string        `json:"name" bson:"name"`
	Summary              string        `json:"summary,omitempty" bson:"summary,omitempty"`
	Space                string        `json:"space,omitempty" bson:"space,omitempty"`
	Description          string        `json:"description" bson:"description"`
	NeighborhoodOverview string        `json:"neighborhood_overview,omitempty" bson:"neighborhood_overview,omitempty"`
	Notes                string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Transit              string        `json:"transit,omitempty" bson:"transit,omitempty"`
	Access               string        `json:"access,omitempty" bson:"access,omitempty"`
	Interaction          string        `json:"interaction,omitempty" bson:"interaction,omitempty"`
	HouseRules           string        `json:"house_rules,omitempty" bson:"house_rules,omitempty"`
	PropertyType         string        `json:"property_type" bson:"property_type"`
	RoomType             string        `json:"room_type" bson:"room_type"`
	BedType              string        `json:"bed_type,omitempty" bson:"bed_type,omitempty"`
	MinimumNights        string        `json:"minimum_nights,omitempty" bson:"minimum_nights,omitempty"`
	MaximumNights        string        `json:"maximum_nights,omitempty" bson:"maximum_nights,omitempty"`
	CancellationPolicy   string        `json:"cancellation_policy,omitempty" bson:"cancellation_policy,omitempty"`
	LastScraped          *time.Time    `json:"last_scraped,omitempty" bson:"last_scraped,omitempty"`
	CalendarLastScraped  *time.Time    `json:"calendar_last_scraped,omitempty" bson:"calendar_last_scraped,omitempty"`
	FirstReview          *time.Time    `json:"first_review,omitempty" bson:"first_review,omitempty"`
	LastReview           *time.Time    `json:"last_review,omitempty" bson:"last_review,omitempty"`
	Accommodates         int           `json:"accommodates" bson:"accommodates"`
	Bedrooms             *int          `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Beds                 *int          `json:"beds,omitempty" bson:"beds,omitempty"`
	NumberOfReviews      *int          `json:"number_of_reviews,omitempty" bson:"number_of_reviews,omitempty"`
	Bathrooms            *float64      `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Amenities            []string      `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Price                float64       `json:"price" bson:"price"`
	SecurityDeposit      *float64      `json:"security_deposit,omitempty" bson:"security_deposit,omitempty"`
	CleaningFee          *float64      `json:"cleaning_fee,omitempty" bson:"cleaning_fee,omitempty"`
	ExtraPeople          *float64      `json:"extra_people,omitempty" bson:"extra_people,omitempty"`
	GuestsIncluded       *int          `json:"guests_included,omitempty" bson:"guests_included,omitempty"`
	Images               *Images       `json:"images,omitempty" bson:"images,omitempty"`
	Host                 *Host         `json:"host,omitempty" bson:"host,omitempty"`
	Address              *Address      `json:"address,omitempty" bson:"address,omitempty"`
	Availability         *Availability `json:"availability,omitempty" bson:"availability,omitempty"`
	ReviewScores         *ReviewScores `json:"review_scores,omitempty" bson:"review_scores,omitempty"`
	Reviews              []Review      `json:"reviews,omitempty" bson:"reviews,omitempty"`
}

// Validate checks the invariants every persisted listing must satisfy.
// Returns a *ValidationError naming each violated field.
func (l *Listing) Validate() error {
	var fields []string
	if l.ID == "" {
		fields = append(fields, "id is required")
	}
	if l.ListingURL == "" {
		fields = append(fields, "listing_url is required")
	}
	if l.Name == "" {
		fields = append(fields, "name is required")
	}
	if l.Description == "" {
		fields = append(fields, "description is required")
	}
	if l.PropertyType == "" {
		fields = append(fields, "property_type is required")
	}
	if l.RoomType == "" {
		fields = append(fields, "room_type is required")
	}
	if l.Accommodates <= 0 {
		fields = append(fields, "accommodates must be a positive integer")
	}
	if l.Price < 0 {
		fields = append(fields, "price must not be negative")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
