package booking

import (
	"context"
	"testing"
	"time"

	"kejastays/internal/domain"
	"kejastays/internal/pricing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetActiveInWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, propertyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockPropertyReader struct {
	mock.Mock
}

func (m *MockPropertyReader) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

type MockBlockedDateRepository struct {
	mock.Mock
}

func (m *MockBlockedDateRepository) GetInWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.BlockedDate, error) {
	args := m.Called(ctx, propertyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlockedDate), args.Error(1)
}

func newTestService() (*Service, *MockBookingRepository, *MockPropertyReader, *MockBlockedDateRepository) {
	bookings := new(MockBookingRepository)
	properties := new(MockPropertyReader)
	blocks := new(MockBlockedDateRepository)
	return NewService(bookings, properties, blocks, zerolog.Nop()), bookings, properties, blocks
}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		PropertyID: 1,
		GuestName:  "Amina Odhiambo",
		GuestEmail: "amina@example.com",
		GuestPhone: "+254712345678",
		CheckIn:    d(2025, 8, 1),
		CheckOut:   d(2025, 8, 4),
		Guests:     2,
	}
}

func TestCreateBookingComputesTotal(t *testing.T) {
	svc, bookings, properties, blocks := newTestService()

	properties.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Property{ID: 1, PricePerNight: 10000, IsActive: true}, nil)
	blocks.On("GetInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.BlockedDate{}, nil)
	bookings.On("GetActiveInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	// 3 nights x 10,000 KES + 12% fee
	assert.Equal(t, 33600.0, b.TotalAmount)
	assert.Equal(t, "KES", b.Currency)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	bookings.AssertExpectations(t)
}

func TestCreateBookingUSDTotal(t *testing.T) {
	svc, bookings, properties, blocks := newTestService()

	properties.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Property{ID: 1, PricePerNight: 10000, IsActive: true}, nil)
	blocks.On("GetInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.BlockedDate{}, nil)
	bookings.On("GetActiveInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Currency = "USD"
	b, err := svc.CreateBooking(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "USD", b.Currency)
	assert.InDelta(t, 258.77, b.TotalAmount, 1.0)
}

func TestCreateBookingRejectsInvertedRange(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingRejectsZeroNights(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validRequest()
	req.CheckOut = req.CheckIn

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingRejectsUnknownCurrency(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validRequest()
	req.Currency = "EUR"

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingBlockedByManualBlock(t *testing.T) {
	svc, bookings, properties, blocks := newTestService()

	properties.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Property{ID: 1, PricePerNight: 10000, IsActive: true}, nil)
	blocks.On("GetInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.BlockedDate{
			{PropertyID: 1, StartDate: d(2025, 8, 2), EndDate: d(2025, 8, 2), Reason: domain.BlockManual},
		}, nil)
	bookings.On("GetActiveInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotAvailable)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingBlockedByExistingBooking(t *testing.T) {
	svc, bookings, properties, blocks := newTestService()

	properties.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Property{ID: 1, PricePerNight: 10000, IsActive: true}, nil)
	blocks.On("GetInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.BlockedDate{}, nil)
	bookings.On("GetActiveInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Booking{
			{PropertyID: 1, CheckIn: d(2025, 8, 3), CheckOut: d(2025, 8, 6), Status: domain.BookingConfirmed},
		}, nil)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestCreateBookingSoftDeletedProperty(t *testing.T) {
	svc, _, properties, _ := newTestService()

	properties.On("GetByID", mock.Anything, int64(1)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBlockedDaysMergesSources(t *testing.T) {
	svc, bookings, _, blocks := newTestService()

	from, to := d(2025, 8, 1), d(2025, 8, 31)

	blocks.On("GetInWindow", mock.Anything, int64(1), from, to).
		Return([]domain.BlockedDate{
			{PropertyID: 1, StartDate: d(2025, 8, 8), EndDate: d(2025, 8, 11), Reason: domain.BlockManual},
		}, nil)
	bookings.On("GetActiveInWindow", mock.Anything, int64(1), from, to).
		Return([]domain.Booking{
			{PropertyID: 1, CheckIn: d(2025, 8, 20), CheckOut: d(2025, 8, 23), Status: domain.BookingPending},
		}, nil)

	days, err := svc.BlockedDays(context.Background(), 1, from, to)

	assert.NoError(t, err)
	// 4 manual days + 3 occupied nights.
	assert.Len(t, days, 7)
	assert.True(t, days.Contains(d(2025, 8, 8)))
	assert.True(t, days.Contains(d(2025, 8, 11)))
	assert.True(t, days.Contains(d(2025, 8, 20)))
	assert.True(t, days.Contains(d(2025, 8, 22)))
	// Check-out day itself stays open.
	assert.False(t, days.Contains(d(2025, 8, 23)))

	assert.False(t, pricing.RangeAvailable(d(2025, 8, 8), d(2025, 8, 10), days))
	assert.True(t, pricing.RangeAvailable(d(2025, 8, 13), d(2025, 8, 16), days))
}

func TestUpdateStatus(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingConfirmed).
		Return(&domain.Booking{ID: 7, Status: domain.BookingConfirmed}, nil)

	b, err := svc.UpdateStatus(context.Background(), 7, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 7, "archived")
	assert.ErrorIs(t, err, ErrValidation)
}
