package repository

import (
	"context"
	"time"

	"kejastays/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	PropertyID      int64     `gorm:"column:property_id;index"`
	GuestName       string    `gorm:"column:guest_name"`
	GuestEmail      string    `gorm:"column:guest_email"`
	GuestPhone      string    `gorm:"column:guest_phone"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	Guests          int       `gorm:"column:guests"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	Currency        string    `gorm:"column:currency"`
	PaymentMethod   string    `gorm:"column:payment_method"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	Status          string    `gorm:"column:status"`
	SpecialRequests *string   `gorm:"column:special_requests;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:              m.ID,
		PropertyID:      m.PropertyID,
		GuestName:       m.GuestName,
		GuestEmail:      m.GuestEmail,
		GuestPhone:      m.GuestPhone,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		Guests:          m.Guests,
		TotalAmount:     m.TotalAmount,
		Currency:        m.Currency,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		Status:          domain.BookingStatus(m.Status),
		SpecialRequests: requests,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var requests *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}

	return bookingModel{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
		PaymentMethod:   string(b.PaymentMethod),
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		SpecialRequests: requests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByPropertyID(ctx context.Context, propertyID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("check_in").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetActiveInWindow returns non-cancelled bookings whose stay overlaps
// [from, to]. Pending holds count; only cancellation frees the dates.
func (r *BookingRepository) GetActiveInWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("property_id = ? AND status <> ?", propertyID, string(domain.BookingCancelled))

	if !from.IsZero() {
		q = q.Where("check_out >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("check_in <= ?", to)
	}

	var rows []bookingModel
	if err := q.Order("check_in").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": string(status),
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
