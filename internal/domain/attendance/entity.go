package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one attendance row per (employee, calendar day). IDs are minted
// from the counters table rather than a database sequence so the collection
// keeps the same identifier scheme as the legacy store.
type Record struct {
	ID             int64
	EmployeeID     int
	DateTime       time.Time // source calendar date at local midnight
	ServerCheckin  *time.Time
	ServerCheckout *time.Time
	BreakStart     *time.Time
	BreakEnd       *time.Time

	TotalTime                 *decimal.Decimal
	AvailableTimeWithoutBreak *decimal.Decimal
	TotalBreakTime            *string

	TotalLeaves                int
	ExtraTime                  int
	FirstHalfDeductionMinutes  int
	SecondHalfDeductionMinutes int

	Month string // MM/YYYY, derived from DateTime

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameDay reports whether the record belongs to the given calendar day,
// comparing the date part only. The reconciler keys on this, not on an
// equality of instants.
func (r Record) SameDay(day time.Time) bool {
	y1, m1, d1 := r.DateTime.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
