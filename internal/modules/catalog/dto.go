package catalog

type CreatePropertyRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
	MaxGuests     int      `json:"max_guests" binding:"required,gte=1"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	ImageURL      string   `json:"image_url" binding:"required"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Featured      bool     `json:"featured"`
	Category      string   `json:"category" binding:"required"`
}
