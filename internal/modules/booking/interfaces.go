package booking

import (
	"context"
	"time"

	"kejastays/internal/domain"
)

// BookingRepository defines the storage operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveInWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error)
}

// PropertyReader is the slice of the property repository bookings need.
type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// BlockedDateRepository reads manual availability blocks.
type BlockedDateRepository interface {
	GetInWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.BlockedDate, error)
}
