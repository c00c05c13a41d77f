package domain

import "time"

type ContactMessage struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name" validate:"required"`
	LastName         string    `json:"last_name" validate:"required"`
	Email            string    `json:"email" validate:"required,email"`
	Phone            string    `json:"phone,omitempty"`
	PropertyInterest string    `json:"property_interest,omitempty"`
	Message          string    `json:"message" validate:"required"`
	CreatedAt        time.Time `json:"created_at"`
}
