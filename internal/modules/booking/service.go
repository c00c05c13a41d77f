package booking

import (
	"context"
	"time"

	"kejastays/internal/domain"
	"kejastays/internal/pricing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type Service struct {
	bookings    BookingRepository
	properties  PropertyReader
	blockedDays BlockedDateRepository
	log         zerolog.Logger
}

func NewService(bookings BookingRepository, properties PropertyReader, blockedDays BlockedDateRepository, log zerolog.Logger) *Service {
	return &Service{
		bookings:    bookings,
		properties:  properties,
		blockedDays: blockedDays,
		log:         log,
	}
}

// BlockedDays collects every calendar day the property cannot be booked
// for inside [from, to]: manual blocks span their full range, active
// bookings contribute their occupied nights (check-in up to the day
// before check-out).
func (s *Service) BlockedDays(ctx context.Context, propertyID int64, from, to time.Time) (pricing.DaySet, error) {
	days := pricing.NewDaySet()

	blocks, err := s.blockedDays.GetInWindow(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		days.AddRange(b.StartDate, b.EndDate)
	}

	active, err := s.bookings.GetActiveInWindow(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	for _, b := range active {
		lastNight := b.CheckOut.AddDate(0, 0, -1)
		if lastNight.Before(b.CheckIn) {
			lastNight = b.CheckIn
		}
		days.AddRange(b.CheckIn, lastNight)
	}

	return days, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrValidation
	}
	if req.Guests < 0 {
		return nil, ErrValidation
	}

	currency := pricing.KES
	if req.Currency != "" {
		cur, ok := pricing.ParseCurrency(req.Currency)
		if !ok {
			return nil, ErrValidation
		}
		currency = cur
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	switch method {
	case domain.PayMpesa, domain.PayPaypal, domain.PayContact:
	case "":
		method = domain.PayContact
	default:
		return nil, ErrValidation
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.BlockedDays(ctx, req.PropertyID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !pricing.RangeAvailable(req.CheckIn, req.CheckOut, blocked) {
		return nil, ErrNotAvailable
	}

	// The total is derived here, never trusted from the client.
	nights := pricing.Nights(req.CheckIn, req.CheckOut)
	quote := pricing.Quote(property.PricePerNight, pricing.KES, currency, nights)

	b := &domain.Booking{
		PropertyID:      req.PropertyID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalAmount:     quote.Total,
		Currency:        string(currency),
		PaymentMethod:   method,
		PaymentStatus:   domain.PaymentPending,
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			// 23P01 exclusion_violation from idx_bookings_no_overlap.
			if pgErr.ConstraintName == "idx_bookings_no_overlap" &&
				(pgErr.Code == "23P01" || pgErr.Code == "23505") {
				return nil, ErrOverbooking
			}
		}
		return nil, err
	}

	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("property_id", b.PropertyID).
		Int("nights", nights).
		Float64("total", b.TotalAmount).
		Str("currency", b.Currency).
		Msg("booking created")

	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	st, ok := domain.ParseBookingStatus(status)
	if !ok {
		return nil, ErrValidation
	}

	b, err := s.bookings.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("booking_id", b.ID).
		Str("status", string(st)).
		Msg("booking status updated")

	return b, nil
}
