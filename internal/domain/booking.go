package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PayMpesa   PaymentMethod = "mpesa"
	PayPaypal  PaymentMethod = "paypal"
	PayContact PaymentMethod = "contact"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

type Booking struct {
	ID              int64         `json:"id"`
	PropertyID      int64         `json:"property_id" validate:"required"`
	GuestName       string        `json:"guest_name" validate:"required"`
	GuestEmail      string        `json:"guest_email" validate:"required,email"`
	GuestPhone      string        `json:"guest_phone" validate:"required"`
	CheckIn         time.Time     `json:"check_in" validate:"required"`
	CheckOut        time.Time     `json:"check_out" validate:"required"`
	Guests          int           `json:"guests"`
	TotalAmount     float64       `json:"total_amount" validate:"gte=0"`
	Currency        string        `json:"currency"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
