package domain

import "time"

type BlockReason string

const (
	BlockManual  BlockReason = "manual"
	BlockBooking BlockReason = "booking"
	BlockSync    BlockReason = "calendar_sync"
)

// BlockedDate is an inclusive range of calendar days a property cannot
// be booked for. Manual blocks come from the blocked_dates table;
// confirmed bookings contribute ranges at read time.
type BlockedDate struct {
	ID         int64       `json:"id"`
	PropertyID int64       `json:"property_id"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Reason     BlockReason `json:"reason"`
	CreatedAt  time.Time   `json:"created_at"`
}
