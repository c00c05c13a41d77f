package domain

import "time"

// Property categories follow the destination the house is in
// ('diani', 'naivasha', 'nanyuki', ...). Free-form on purpose: new
// destinations are added through seeding, not code.
type Property struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gt=0"`
	MaxGuests     int       `json:"max_guests" validate:"required,gte=1"`
	Bedrooms      int       `json:"bedrooms" validate:"required,gte=0"`
	ImageURL      string    `json:"image_url" validate:"required"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	Featured      bool      `json:"featured"`
	Category      string    `json:"category" validate:"required"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	CategorizedImages []ImageCategory `json:"categorized_images"`
}

// ImageCategory is one named group in a property's gallery
// ("Bedroom", "Pool", ...). Order matters on both levels: groups keep
// the order their category first appeared in, images keep row order.
type ImageCategory struct {
	Category string   `json:"category"`
	Images   []string `json:"images"`
}

// PropertyImage is a single gallery photo row before grouping.
type PropertyImage struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url"`
}
