package payment

import (
	"context"
	"strings"
	"testing"

	"kejastays/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingPaymentWriter struct {
	mock.Mock
}

func (m *MockBookingPaymentWriter) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestCreateOrder(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())

	o, err := svc.CreateOrder(Mpesa, CreateOrderRequest{
		Amount:   "33600",
		Currency: "KES",
		Intent:   "CAPTURE",
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(o.ID, "mpesa_order_"))
	assert.Equal(t, 33600.0, o.Amount)
	assert.Equal(t, OrderCreated, o.Status)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())

	tests := []struct {
		name string
		req  CreateOrderRequest
	}{
		{"non-numeric amount", CreateOrderRequest{Amount: "abc", Currency: "KES", Intent: "CAPTURE"}},
		{"zero amount", CreateOrderRequest{Amount: "0", Currency: "KES", Intent: "CAPTURE"}},
		{"negative amount", CreateOrderRequest{Amount: "-5", Currency: "KES", Intent: "CAPTURE"}},
		{"missing currency", CreateOrderRequest{Amount: "100", Intent: "CAPTURE"}},
		{"missing intent", CreateOrderRequest{Amount: "100", Currency: "USD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(Paypal, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCaptureOrderUpdatesBooking(t *testing.T) {
	bookings := new(MockBookingPaymentWriter)
	svc := NewService(bookings, zerolog.Nop())

	bookings.On("UpdatePaymentStatus", mock.Anything, int64(7), domain.PaymentCompleted).
		Return(&domain.Booking{ID: 7, PaymentStatus: domain.PaymentCompleted}, nil)

	o, err := svc.CreateOrder(Paypal, CreateOrderRequest{
		Amount:    "258.77",
		Currency:  "USD",
		Intent:    "CAPTURE",
		BookingID: 7,
	})
	assert.NoError(t, err)

	captured, err := svc.CaptureOrder(context.Background(), Paypal, o.ID, 0)

	assert.NoError(t, err)
	assert.Equal(t, OrderCompleted, captured.Status)
	bookings.AssertExpectations(t)
}

func TestCaptureUnknownOrder(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())

	_, err := svc.CaptureOrder(context.Background(), Mpesa, "mpesa_order_missing", 0)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCaptureWrongProvider(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())

	o, err := svc.CreateOrder(Mpesa, CreateOrderRequest{
		Amount:   "100",
		Currency: "KES",
		Intent:   "CAPTURE",
	})
	assert.NoError(t, err)

	_, err = svc.CaptureOrder(context.Background(), Paypal, o.ID, 0)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
