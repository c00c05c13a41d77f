package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		in, out  time.Time
		expected int
	}{
		{"three nights", d(2025, 8, 1), d(2025, 8, 4), 3},
		{"same day", d(2025, 8, 1), d(2025, 8, 1), 0},
		{"ignores time of day", d(2025, 8, 1).Add(23 * time.Hour), d(2025, 8, 2), 1},
		{"missing check-out", d(2025, 8, 1), time.Time{}, 0},
		{"missing check-in", time.Time{}, d(2025, 8, 4), 0},
		{"inverted range is signed", d(2025, 8, 4), d(2025, 8, 1), -3},
		{"across month boundary", d(2025, 8, 30), d(2025, 9, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nights(tt.in, tt.out))
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	amounts := []float64{0, 1, 130, 10000, 123456.78}
	for _, x := range amounts {
		back := Convert(Convert(x, KES, USD), USD, KES)
		assert.InDelta(t, x, back, 1e-9)
	}

	assert.Equal(t, 500.0, Convert(500, KES, KES))
	assert.InDelta(t, 76.923, Convert(10000, KES, USD), 0.001)
	assert.Equal(t, 130.0, Convert(1, USD, KES))
}

func TestQuoteKES(t *testing.T) {
	// 10,000 KES/night, 3 nights, displayed in KES.
	b := Quote(10000, KES, KES, 3)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 30000.0, b.Subtotal)
	assert.Equal(t, 3600.0, b.ServiceFee)
	assert.Equal(t, 33600.0, b.Total)
	assert.Equal(t, KES, b.Currency)
}

func TestQuoteUSD(t *testing.T) {
	// Same stay displayed in USD: fee rounds in USD, not KES.
	b := Quote(10000, KES, USD, 3)

	assert.InDelta(t, 76.92, b.NightlyPrice, 0.01)
	assert.InDelta(t, 230.77, b.Subtotal, 0.01)
	assert.Equal(t, 28.0, b.ServiceFee)
	assert.InDelta(t, 258.77, b.Total, 1.0)
}

func TestQuoteZeroNights(t *testing.T) {
	b := Quote(10000, KES, KES, 0)

	assert.Zero(t, b.Subtotal)
	assert.Zero(t, b.ServiceFee)
	assert.Zero(t, b.Total)
}

func TestQuoteFeeIdentity(t *testing.T) {
	for _, nights := range []int{1, 2, 5, 14} {
		for _, price := range []float64{1500, 9999, 25000} {
			b := Quote(price, KES, KES, nights)
			assert.Equal(t, b.Subtotal+b.ServiceFee, b.Total)
			assert.Equal(t, float64(int64(b.Subtotal*ServiceFeeRate+0.5)), b.ServiceFee)
		}
	}
}

func TestRangeAvailable(t *testing.T) {
	blocked := NewDaySet(d(2025, 8, 9))

	// Selection straddling the blocked day.
	assert.False(t, RangeAvailable(d(2025, 8, 8), d(2025, 8, 10), blocked))

	// Endpoints count: check-out landing on the block also conflicts.
	assert.False(t, RangeAvailable(d(2025, 8, 7), d(2025, 8, 9), blocked))
	assert.False(t, RangeAvailable(d(2025, 8, 9), d(2025, 8, 11), blocked))

	// Clear ranges on either side.
	assert.True(t, RangeAvailable(d(2025, 8, 5), d(2025, 8, 8), blocked))
	assert.True(t, RangeAvailable(d(2025, 8, 10), d(2025, 8, 12), blocked))
}

func TestRangeAvailablePartialSelection(t *testing.T) {
	blocked := NewDaySet(d(2025, 8, 9))

	// No dates at all: permissive default.
	assert.True(t, RangeAvailable(time.Time{}, time.Time{}, blocked))

	// Check-in only tests just that day.
	assert.False(t, RangeAvailable(d(2025, 8, 9), time.Time{}, blocked))
	assert.True(t, RangeAvailable(d(2025, 8, 10), time.Time{}, blocked))
}

func TestDaySet(t *testing.T) {
	s := NewDaySet()
	s.AddRange(d(2025, 8, 8), d(2025, 8, 11))

	assert.Len(t, s, 4)
	assert.True(t, s.Contains(d(2025, 8, 8)))
	assert.True(t, s.Contains(d(2025, 8, 11)))
	assert.False(t, s.Contains(d(2025, 8, 12)))

	// Time of day never matters.
	assert.True(t, s.Contains(d(2025, 8, 10).Add(15*time.Hour)))

	days := s.Days()
	assert.Equal(t, d(2025, 8, 8), days[0])
	assert.Equal(t, d(2025, 8, 11), days[3])
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "KES 30,000", Format(30000, KES))
	assert.Equal(t, "KES 3,600", Format(3600, KES))
	assert.Equal(t, "$77", Format(76.92, USD))
	assert.Equal(t, "$1,234,568", Format(1234567.9, USD))
	assert.Equal(t, "KES 0", Format(0.2, KES))
	assert.Equal(t, "$259", Format(258.77, USD))
}
