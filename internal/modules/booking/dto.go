package booking

import "time"

type CreateBookingRequest struct {
	PropertyID      int64     `json:"property_id" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required"`
	GuestEmail      string    `json:"guest_email" binding:"required,email"`
	GuestPhone      string    `json:"guest_phone" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	Guests          int       `json:"guests"`
	Currency        string    `json:"currency"`
	PaymentMethod   string    `json:"payment_method"`
	SpecialRequests string    `json:"special_requests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityResponse struct {
	PropertyID   int64    `json:"property_id"`
	BlockedDates []string `json:"blocked_dates"`
}

type WhatsAppBookingRequest struct {
	PropertyName string `json:"propertyName" binding:"required"`
	GuestName    string `json:"guestName"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Guests       int    `json:"guests"`
}
