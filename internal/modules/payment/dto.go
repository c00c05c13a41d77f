package payment

import "time"

type CreateOrderRequest struct {
	// Amount arrives as a string from the checkout page, the way the
	// provider SDKs send it.
	Amount    string `json:"amount" binding:"required"`
	Currency  string `json:"currency" binding:"required"`
	Intent    string `json:"intent" binding:"required"`
	BookingID int64  `json:"booking_id"`
}

type CaptureOrderRequest struct {
	BookingID int64 `json:"booking_id"`
}

type Order struct {
	ID        string    `json:"id"`
	Provider  Provider  `json:"provider"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Intent    string    `json:"intent"`
	BookingID int64     `json:"booking_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
