package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
)

// Required CSV columns, matched by exact header name.
var requiredColumns = []string{
	"Employee ID",
	"Date",
	"Clock In",
	"Clock Out",
	"Break In",
	"Break Out",
	"Total Hours",
	"Worked Hours",
	"Break Hours",
	"Total Leaves",
}

// Accepted layouts for the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

// rawRow is one CSV data row before normalization.
type rawRow struct {
	line        int
	employeeID  string
	date        string
	clockIn     string
	clockOut    string
	breakIn     string
	breakOut    string
	totalHours  string
	workedHours string
	breakHours  string
	totalLeaves string
}

// hasAnyClock reports whether at least one of the four time fields is
// present. Rows with all four blank carry no attendance signal and are
// dropped before processing.
func (r rawRow) hasAnyClock() bool {
	return strings.TrimSpace(r.clockIn) != "" ||
		strings.TrimSpace(r.clockOut) != "" ||
		strings.TrimSpace(r.breakIn) != "" ||
		strings.TrimSpace(r.breakOut) != ""
}

// chunkReader streams CSV data rows in bounded chunks.
type chunkReader struct {
	csv       *csv.Reader
	columns   map[string]int
	chunkSize int
	line      int
}

func newChunkReader(r io.Reader, chunkSize int) (*chunkReader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, attendance.ErrEmptyFile
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", attendance.ErrMissingColumns, strings.Join(missing, ", "))
	}

	return &chunkReader{
		csv:       cr,
		columns:   columns,
		chunkSize: chunkSize,
		line:      1,
	}, nil
}

// Next returns up to chunkSize rows. It reports io.EOF alongside the last
// (possibly empty) chunk.
func (c *chunkReader) Next() ([]rawRow, error) {
	rows := make([]rawRow, 0, c.chunkSize)
	for len(rows) < c.chunkSize {
		fields, err := c.csv.Read()
		if err == io.EOF {
			return rows, io.EOF
		}
		if err != nil {
			return rows, fmt.Errorf("read csv row: %w", err)
		}
		c.line++

		get := func(name string) string {
			idx := c.columns[name]
			if idx >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[idx])
		}

		rows = append(rows, rawRow{
			line:        c.line,
			employeeID:  get("Employee ID"),
			date:        get("Date"),
			clockIn:     get("Clock In"),
			clockOut:    get("Clock Out"),
			breakIn:     get("Break In"),
			breakOut:    get("Break Out"),
			totalHours:  get("Total Hours"),
			workedHours: get("Worked Hours"),
			breakHours:  get("Break Hours"),
			totalLeaves: get("Total Leaves"),
		})
	}
	return rows, nil
}

// rowResult is the outcome of normalizing one row: a candidate record,
// possibly degraded (time fields zeroed out with full deductions), or
// skipped entirely when the row has no usable key.
type rowResult struct {
	record   attendance.Record
	degraded bool
	reason   string
	skip     bool
}

// buildRecord normalizes a raw row into a candidate record. Time parsing
// is all-or-nothing: one corrupt clock value nils all four fields rather
// than mixing a valid check-in with a broken check-out.
func buildRecord(row rawRow) rowResult {
	if !row.hasAnyClock() {
		return rowResult{skip: true, reason: "no time fields"}
	}

	employeeID, err := strconv.Atoi(row.employeeID)
	if err != nil || employeeID <= 0 {
		return rowResult{skip: true, reason: "missing or invalid employee id"}
	}

	date, err := parseDate(row.date)
	if err != nil {
		return rowResult{skip: true, reason: "missing or invalid date"}
	}

	clockIn, errIn := NormalizeClock(row.clockIn)
	clockOut, errOut := NormalizeClock(row.clockOut)
	breakIn, errBreakIn := NormalizeClock(row.breakIn)
	breakOut, errBreakOut := NormalizeClock(row.breakOut)

	if err := firstError(errIn, errOut, errBreakIn, errBreakOut); err != nil {
		// Fail open: the row still produces a record, with every time
		// field absent and therefore full deductions on both halves.
		return rowResult{
			record:   assembleRecord(row, employeeID, date, nil, nil, nil, nil),
			degraded: true,
			reason:   err.Error(),
		}
	}

	return rowResult{record: assembleRecord(row, employeeID, date, clockIn, clockOut, breakIn, breakOut)}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func assembleRecord(row rawRow, employeeID int, date time.Time, clockIn, clockOut, breakIn, breakOut *time.Time) attendance.Record {
	checkin := ResolveShiftTime(&date, clockIn)
	checkout := ResolveShiftTime(&date, clockOut)
	breakStart := ResolveShiftTime(&date, breakIn)
	breakEnd := ResolveShiftTime(&date, breakOut)

	d := CalculateDeductions(checkin, checkout, breakStart, breakEnd)

	rec := attendance.Record{
		EmployeeID:                 employeeID,
		DateTime:                   date,
		ServerCheckin:              checkin,
		ServerCheckout:             checkout,
		BreakStart:                 breakStart,
		BreakEnd:                   breakEnd,
		TotalTime:                  parseDecimalHours(row.totalHours),
		AvailableTimeWithoutBreak:  parseDecimalHours(row.workedHours),
		TotalLeaves:                parseLeaves(row.totalLeaves),
		ExtraTime:                  d.Extra,
		FirstHalfDeductionMinutes:  d.FirstHalf,
		SecondHalfDeductionMinutes: d.SecondHalf,
		Month:                      date.Format("01/2006"),
	}
	if s := strings.TrimSpace(row.breakHours); s != "" {
		rec.TotalBreakTime = &s
	}
	return rec
}

func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// parseDecimalHours converts an "H:MM" duration into decimal hours with
// two places, e.g. "7:45" -> 7.75. Unparseable values become absent.
func parseDecimalHours(raw string) *decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	d := decimal.NewFromInt(int64(hours)).
		Add(decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))).
		Round(2)
	return &d
}

func parseLeaves(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
