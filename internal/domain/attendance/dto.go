package attendance

import (
	"time"

	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

// ImportRequest triggers a processing run. FilePath is either an http(s)
// URL or a path on the local filesystem.
type ImportRequest struct {
	FilePath string `json:"file_path"`
}

func (r ImportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FilePath) {
		errs = append(errs, validator.ValidationError{Field: "file_path", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportSummary reports what a processing run did. Degraded counts rows
// whose time fields could not be parsed and were imported with full
// deductions; FailedChunks counts batches that were dropped entirely.
type ImportSummary struct {
	RunID        string `json:"run_id"`
	TotalRows    int64  `json:"total_rows"`
	Inserted     int64  `json:"inserted"`
	Updated      int64  `json:"updated"`
	Skipped      int64  `json:"skipped"`
	Degraded     int64  `json:"degraded"`
	FailedChunks int64  `json:"failed_chunks"`
}

// ListFilter narrows record listings. EmployeeID is required; Month is
// optional and must be MM/YYYY when present.
type ListFilter struct {
	EmployeeID int
	Month      string
}

func (f ListFilter) Validate() error {
	if f.EmployeeID <= 0 {
		return ErrEmployeeIDRequired
	}
	if f.Month != "" && !validator.IsValidMonth(f.Month) {
		return ErrInvalidMonth
	}
	return nil
}

// RecordResponse is the JSON shape of a stored record.
type RecordResponse struct {
	ID                         int64   `json:"id"`
	EmployeeID                 int     `json:"employee_id"`
	Date                       string  `json:"date"`
	ServerCheckin              *string `json:"server_checkin"`
	ServerCheckout             *string `json:"server_checkout"`
	BreakStart                 *string `json:"break_start"`
	BreakEnd                   *string `json:"break_end"`
	TotalTime                  *string `json:"total_time"`
	AvailableTimeWithoutBreak  *string `json:"available_time_without_break"`
	TotalBreakTime             *string `json:"total_break_time"`
	TotalLeaves                int     `json:"total_leaves"`
	ExtraTime                  int     `json:"extra_time"`
	FirstHalfDeductionMinutes  int     `json:"first_half_deduction_minutes"`
	SecondHalfDeductionMinutes int     `json:"second_half_deduction_minutes"`
	Month                      string  `json:"month"`
}

// NewRecordResponse converts a stored record into its response shape.
func NewRecordResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:                         r.ID,
		EmployeeID:                 r.EmployeeID,
		Date:                       r.DateTime.Format("2006-01-02"),
		ServerCheckin:              timePtrToString(r.ServerCheckin),
		ServerCheckout:             timePtrToString(r.ServerCheckout),
		BreakStart:                 timePtrToString(r.BreakStart),
		BreakEnd:                   timePtrToString(r.BreakEnd),
		TotalBreakTime:             r.TotalBreakTime,
		TotalLeaves:                r.TotalLeaves,
		ExtraTime:                  r.ExtraTime,
		FirstHalfDeductionMinutes:  r.FirstHalfDeductionMinutes,
		SecondHalfDeductionMinutes: r.SecondHalfDeductionMinutes,
		Month:                      r.Month,
	}
	if r.TotalTime != nil {
		s := r.TotalTime.StringFixed(2)
		resp.TotalTime = &s
	}
	if r.AvailableTimeWithoutBreak != nil {
		s := r.AvailableTimeWithoutBreak.StringFixed(2)
		resp.AvailableTimeWithoutBreak = &s
	}
	return resp
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
