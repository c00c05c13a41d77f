// Package pricing holds the stay-quotation rules: night counting,
// blocked-day availability and the service-fee breakdown. Everything
// here is pure; callers own the state and re-quote on every change.
package pricing

import (
	"math"
	"time"
)

// ServiceFeeRate is the flat surcharge applied to every stay subtotal.
const ServiceFeeRate = 0.12

// Breakdown is a quote for one stay. Never persisted; bookings store
// only the resulting total.
type Breakdown struct {
	Nights       int      `json:"nights"`
	NightlyPrice float64  `json:"nightly_price"`
	Subtotal     float64  `json:"subtotal"`
	ServiceFee   float64  `json:"service_fee"`
	Total        float64  `json:"total"`
	Currency     Currency `json:"currency"`
}

// Nights returns the calendar-day difference between checkIn and
// checkOut, ignoring the time of day. Zero if either endpoint is
// missing. The result is signed: an inverted range comes back
// negative, and it is the caller's job to reject it.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	return int(day(checkOut).Sub(day(checkIn)).Hours() / 24)
}

// DaySet is a set of blocked calendar days, keyed by the day truncated
// to midnight UTC.
type DaySet map[time.Time]struct{}

func NewDaySet(days ...time.Time) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s[day(d)] = struct{}{}
	}
	return s
}

func (s DaySet) Contains(t time.Time) bool {
	_, ok := s[day(t)]
	return ok
}

// AddRange marks every day from start to end inclusive.
func (s DaySet) AddRange(start, end time.Time) {
	for d := day(start); !d.After(day(end)); d = d.AddDate(0, 0, 1) {
		s[d] = struct{}{}
	}
}

// Days returns the set's members in ascending order.
func (s DaySet) Days() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Before(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// RangeAvailable reports whether every calendar day from checkIn to
// checkOut inclusive is free of blocks. A selection with no check-in
// is trivially available; a check-in with no check-out tests only the
// check-in day.
func RangeAvailable(checkIn, checkOut time.Time, blocked DaySet) bool {
	if checkIn.IsZero() {
		return true
	}
	if checkOut.IsZero() {
		return !blocked.Contains(checkIn)
	}
	last := day(checkOut)
	for d := day(checkIn); !d.After(last); d = d.AddDate(0, 0, 1) {
		if blocked.Contains(d) {
			return false
		}
	}
	return true
}

// Quote prices a stay of nights nights at pricePerNight (in the
// listing currency) for display in the given currency. The nightly
// price converts first, so the 12% fee rounds in the display currency.
func Quote(pricePerNight float64, listing, display Currency, nights int) Breakdown {
	nightly := Convert(pricePerNight, listing, display)
	subtotal := nightly * float64(nights)
	fee := math.Round(subtotal * ServiceFeeRate)
	return Breakdown{
		Nights:       nights,
		NightlyPrice: nightly,
		Subtotal:     subtotal,
		ServiceFee:   fee,
		Total:        subtotal + fee,
		Currency:     display,
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
