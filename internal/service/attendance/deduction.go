package attendance

import "time"

const (
	// fullHalfMinutes is the length of one shift half; forfeiting a half
	// costs the whole 240 minutes.
	fullHalfMinutes = 240

	// blockMinutes is the 30-minute unit all deductions round up to.
	blockMinutes = 30

	// graceMinutes of lateness are tolerated at the 09:00 and 14:00
	// boundaries before deduction starts accruing.
	graceMinutes = 10
)

// Shift boundaries as wall-clock seconds of day.
var (
	firstHalfStart   = clockSeconds(9, 0)  // first half runs 09:00-13:00
	firstGraceEnd    = clockSeconds(9, 10)
	breakWindowStart = clockSeconds(13, 0) // break window 13:00-14:00
	secondHalfStart  = clockSeconds(14, 0) // second half runs 14:00-18:00
	secondGraceEnd   = clockSeconds(14, 10)
	shiftEnd         = clockSeconds(18, 0)
)

func clockSeconds(hour, minute int) int {
	return hour*3600 + minute*60
}

// Deductions is the outcome of the shift policy for one row. FirstHalf
// and SecondHalf are deduction minutes in multiples of 30; Extra is
// credited overtime minutes, floored to whole 30-minute blocks.
type Deductions struct {
	FirstHalf  int
	SecondHalf int
	Extra      int
}

// CalculateDeductions applies the shift policy to the four resolved
// instants of a row. All comparisons happen on local wall-clock time,
// i.e. after re-adding the shift offset.
//
// Branch order matters and is part of the policy:
//   - a late return from break OVERWRITES any second-half deduction the
//     late arrival produced, it does not add to it;
//   - a missing break-end for a morning arrival forfeits the second half
//     outright, overriding the early-departure sum;
//   - break-taken-early and late-arrival deductions are additive on the
//     first half and are NOT clamped at 240.
func CalculateDeductions(checkin, checkout, breakStart, breakEnd *time.Time) Deductions {
	var d Deductions

	ci, hasCheckin := localSeconds(checkin)
	co, hasCheckout := localSeconds(checkout)
	bs, hasBreakStart := localSeconds(breakStart)
	be, hasBreakEnd := localSeconds(breakEnd)

	switch {
	case hasCheckin && ci > firstGraceEnd && ci < breakWindowStart:
		if late := (ci - firstHalfStart) / 60; late > graceMinutes {
			d.FirstHalf = lateBlocks(late)
		}
	case hasCheckin && ci >= breakWindowStart:
		// Arriving after the break window opens forfeits the first half.
		d.FirstHalf = fullHalfMinutes
		if ci > secondGraceEnd && ci < shiftEnd {
			if late := (ci - secondHalfStart) / 60; late > graceMinutes {
				d.SecondHalf = lateBlocks(late)
			}
		}
	}

	// Late return from break. Overwrites, never adds.
	if hasBreakEnd && be > secondGraceEnd {
		if late := (be - secondHalfStart) / 60; late > graceMinutes {
			d.SecondHalf = lateBlocks(late)
		}
	}

	// Break taken before the window opens. No grace on this one.
	if hasBreakStart && bs < breakWindowStart {
		early := (breakWindowStart - bs) / 60
		d.FirstHalf += earlyBlocks(early)
	}

	if !hasCheckin {
		d.FirstHalf = fullHalfMinutes
	}

	if hasCheckout && co < shiftEnd {
		early := (shiftEnd - co) / 60
		d.SecondHalf += earlyBlocks(early)
	} else if !hasCheckout {
		d.SecondHalf = fullHalfMinutes
	}

	// Morning arrival that never returned from break forfeits the whole
	// second half, regardless of what accrued above.
	if hasCheckin && ci < breakWindowStart && !hasBreakEnd {
		d.SecondHalf = fullHalfMinutes
	}

	if hasCheckout && co > shiftEnd {
		over := (co - shiftEnd) / 60
		d.Extra = over / blockMinutes * blockMinutes
	}

	return d
}

// lateBlocks converts minutes late into deduction minutes: the first ten
// minutes are grace, everything beyond rounds up to a 30-minute block.
func lateBlocks(minutesLate int) int {
	return ((minutesLate-graceMinutes-1)/blockMinutes + 1) * blockMinutes
}

// earlyBlocks converts minutes of early departure (or early break) into
// deduction minutes, rounding up to a 30-minute block with no grace.
func earlyBlocks(minutesEarly int) int {
	return ((minutesEarly-1)/blockMinutes + 1) * blockMinutes
}

// localSeconds re-adds the shift offset and reduces the instant to
// wall-clock seconds of day.
func localSeconds(t *time.Time) (int, bool) {
	if t == nil {
		return 0, false
	}
	local := t.Add(shiftOffset)
	return local.Hour()*3600 + local.Minute()*60 + local.Second(), true
}
