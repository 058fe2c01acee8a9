package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// at builds the stored instant whose local wall-clock time is h:m:s on an
// arbitrary fixed day.
func at(h, m, s int) *time.Time {
	t := time.Date(2024, 3, 11, h, m, s, 0, time.UTC).Add(-shiftOffset)
	return &t
}

func TestCalculateDeductions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checkin    *time.Time
		checkout   *time.Time
		breakStart *time.Time
		breakEnd   *time.Time
		want       Deductions
	}{
		{
			name:       "on time all day",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{},
		},
		{
			name:       "grace boundary inclusive at 09:10",
			checkin:    at(9, 10, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{},
		},
		{
			name:       "fifteen minutes late costs one block",
			checkin:    at(9, 15, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{FirstHalf: 30},
		},
		{
			name:       "forty-one minutes late costs two blocks",
			checkin:    at(9, 41, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{FirstHalf: 60},
		},
		{
			name:       "no checkin forfeits the first half",
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{FirstHalf: 240},
		},
		{
			name:     "nothing at all forfeits both halves",
			want:     Deductions{FirstHalf: 240, SecondHalf: 240},
		},
		{
			name:     "checkin at 13:00 forfeits the first half",
			checkin:  at(13, 0, 0),
			checkout: at(18, 0, 0),
			breakEnd: at(14, 0, 0),
			want:     Deductions{FirstHalf: 240},
		},
		{
			name:     "afternoon arrival deducts both halves",
			checkin:  at(14, 30, 0),
			checkout: at(18, 0, 0),
			want:     Deductions{FirstHalf: 240, SecondHalf: 30},
		},
		{
			name:       "late return from break",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 45, 0),
			want:       Deductions{SecondHalf: 60},
		},
		{
			name:     "late break return overwrites the late-arrival value",
			checkin:  at(14, 30, 0),
			checkout: at(18, 0, 0),
			breakEnd: at(15, 50, 0),
			// late arrival alone would deduct 30; the 110-minute late
			// return replaces it with 120 rather than adding.
			want: Deductions{FirstHalf: 240, SecondHalf: 120},
		},
		{
			name:       "early break costs a block with no grace",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(12, 45, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{FirstHalf: 30},
		},
		{
			name:       "late arrival plus early break is additive and unclamped",
			checkin:    at(12, 30, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(12, 0, 0),
			breakEnd:   at(14, 0, 0),
			// 210 minutes late plus a 60-minute-early break: 210 + 60,
			// past the 240-minute half. Matches the source system; there
			// is no clamp.
			want: Deductions{FirstHalf: 270},
		},
		{
			name:       "early departure costs a block",
			checkin:    at(9, 0, 0),
			checkout:   at(17, 45, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{SecondHalf: 30},
		},
		{
			name:       "exact 18:00 checkout has no penalty and no credit",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{},
		},
		{
			name:       "no checkout forfeits the second half",
			checkin:    at(9, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{SecondHalf: 240},
		},
		{
			name:       "morning arrival with no break return forfeits the second half",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 30, 0),
			breakStart: at(13, 0, 0),
			// Never came back from break: the 240 overrides the would-be
			// overtime checkout, though extra time is still credited.
			want: Deductions{SecondHalf: 240, Extra: 30},
		},
		{
			name:       "late break return then early departure are additive",
			checkin:    at(9, 0, 0),
			checkout:   at(17, 0, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(15, 0, 0),
			// 60 for the late return, then 60 more for leaving an hour
			// early.
			want: Deductions{SecondHalf: 120},
		},
		{
			name:       "overtime credits whole blocks only",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 45, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{Extra: 30},
		},
		{
			name:       "partial overtime block is not credited",
			checkin:    at(9, 0, 0),
			checkout:   at(18, 20, 0),
			breakStart: at(13, 0, 0),
			breakEnd:   at(14, 0, 0),
			want:       Deductions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateDeductions(tt.checkin, tt.checkout, tt.breakStart, tt.breakEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}
