// Package payment holds the PayPal and M-Pesa order endpoints. Real
// gateway calls are out of scope; orders live in memory and capture
// always succeeds, but the booking payment-status wiring is real so
// the flow can be exercised end to end.
package payment

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"kejastays/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Provider string

const (
	Paypal Provider = "paypal"
	Mpesa  Provider = "mpesa"
)

var (
	ErrValidation    = errors.New("invalid payment request")
	ErrOrderNotFound = errors.New("order not found")
)

const (
	OrderCreated   = "CREATED"
	OrderCompleted = "COMPLETED"
)

// BookingPaymentWriter updates a booking once its order is captured.
type BookingPaymentWriter interface {
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error)
}

type Service struct {
	bookings BookingPaymentWriter
	log      zerolog.Logger

	mu     sync.Mutex
	orders map[string]*Order
}

func NewService(bookings BookingPaymentWriter, log zerolog.Logger) *Service {
	return &Service{
		bookings: bookings,
		log:      log,
		orders:   make(map[string]*Order),
	}
}

func (s *Service) CreateOrder(provider Provider, req CreateOrderRequest) (*Order, error) {
	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount <= 0 {
		return nil, ErrValidation
	}
	if req.Currency == "" || req.Intent == "" {
		return nil, ErrValidation
	}

	o := &Order{
		ID:        string(provider) + "_order_" + uuid.NewString(),
		Provider:  provider,
		Amount:    amount,
		Currency:  req.Currency,
		Intent:    req.Intent,
		BookingID: req.BookingID,
		Status:    OrderCreated,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()

	s.log.Info().
		Str("order_id", o.ID).
		Str("provider", string(provider)).
		Float64("amount", amount).
		Str("currency", o.Currency).
		Msg("payment order created")

	return o, nil
}

// CaptureOrder marks a stub order completed and, when the order is
// tied to a booking, flips that booking's payment status.
func (s *Service) CaptureOrder(ctx context.Context, provider Provider, orderID string, bookingID int64) (*Order, error) {
	s.mu.Lock()
	o, ok := s.orders[orderID]
	if ok {
		o.Status = OrderCompleted
	}
	s.mu.Unlock()

	if !ok || o.Provider != provider {
		return nil, ErrOrderNotFound
	}

	if bookingID == 0 {
		bookingID = o.BookingID
	}
	if bookingID != 0 && s.bookings != nil {
		if _, err := s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentCompleted); err != nil {
			s.log.Warn().
				Err(err).
				Str("order_id", orderID).
				Int64("booking_id", bookingID).
				Msg("captured order but booking update failed")
		}
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("provider", string(provider)).
		Msg("payment order captured")

	return o, nil
}

// MpesaSetup mirrors the client-setup endpoint of the original stub.
func (s *Service) MpesaSetup() map[string]string {
	return map[string]string{
		"message": "Mpesa setup endpoint - implement token generation here",
	}
}
