package attendance

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
)

const csvHeader = "Employee ID,Date,Clock In,Clock Out,Break In,Break Out,Total Hours,Worked Hours,Break Hours,Total Leaves\n"

func TestNewChunkReader_MissingColumns(t *testing.T) {
	t.Parallel()

	_, err := newChunkReader(strings.NewReader("Employee ID,Date\n"), 10)
	assert.ErrorIs(t, err, attendance.ErrMissingColumns)
}

func TestNewChunkReader_EmptyFile(t *testing.T) {
	t.Parallel()

	_, err := newChunkReader(strings.NewReader(""), 10)
	assert.ErrorIs(t, err, attendance.ErrEmptyFile)
}

func TestChunkReader_ChunksRows(t *testing.T) {
	t.Parallel()

	data := csvHeader +
		"101,2024-03-11,09:00,18:00,13:00,14:00,9:00,8:00,1:00,0\n" +
		"102,2024-03-11,09:05,18:00,13:00,14:00,9:00,8:00,1:00,0\n" +
		"103,2024-03-11,09:10,18:00,13:00,14:00,9:00,8:00,1:00,0\n"

	reader, err := newChunkReader(strings.NewReader(data), 2)
	require.NoError(t, err)

	first, err := reader.Next()
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "101", first[0].employeeID)
	assert.Equal(t, "102", first[1].employeeID)

	second, err := reader.Next()
	assert.ErrorIs(t, err, io.EOF)
	require.Len(t, second, 1)
	assert.Equal(t, "103", second[0].employeeID)
}

func TestBuildRecord(t *testing.T) {
	t.Parallel()

	base := rawRow{
		line:        2,
		employeeID:  "42",
		date:        "2024-03-11",
		clockIn:     "09:15",
		clockOut:    "18:00",
		breakIn:     "13:00",
		breakOut:    "14:00",
		totalHours:  "8:45",
		workedHours: "7:45",
		breakHours:  "1:00",
		totalLeaves: "2",
	}

	res := buildRecord(base)
	require.False(t, res.skip)
	require.False(t, res.degraded)

	rec := res.record
	assert.Equal(t, 42, rec.EmployeeID)
	assert.Equal(t, "03/2024", rec.Month)
	assert.Equal(t, 2, rec.TotalLeaves)
	assert.Equal(t, 30, rec.FirstHalfDeductionMinutes)
	assert.Equal(t, 0, rec.SecondHalfDeductionMinutes)
	require.NotNil(t, rec.ServerCheckin)
	assert.Equal(t, "2024-03-11 04:15:00", rec.ServerCheckin.Format("2006-01-02 15:04:05"))
	require.NotNil(t, rec.TotalTime)
	assert.Equal(t, "8.75", rec.TotalTime.StringFixed(2))
	require.NotNil(t, rec.AvailableTimeWithoutBreak)
	assert.Equal(t, "7.75", rec.AvailableTimeWithoutBreak.StringFixed(2))
	require.NotNil(t, rec.TotalBreakTime)
	assert.Equal(t, "1:00", *rec.TotalBreakTime)
}

func TestBuildRecord_CorruptTimeDegradesWholeRow(t *testing.T) {
	t.Parallel()

	row := rawRow{
		employeeID: "42",
		date:       "2024-03-11",
		clockIn:    "09:00",
		clockOut:   "nonsense",
		breakIn:    "13:00",
		breakOut:   "14:00",
	}

	res := buildRecord(row)
	require.False(t, res.skip)
	assert.True(t, res.degraded)

	// One corrupt field nils all four; the record lands with full
	// deductions instead of mixing valid and broken values.
	rec := res.record
	assert.Nil(t, rec.ServerCheckin)
	assert.Nil(t, rec.ServerCheckout)
	assert.Nil(t, rec.BreakStart)
	assert.Nil(t, rec.BreakEnd)
	assert.Equal(t, 240, rec.FirstHalfDeductionMinutes)
	assert.Equal(t, 240, rec.SecondHalfDeductionMinutes)
}

func TestBuildRecord_SkipsUnusableRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  rawRow
	}{
		{
			name: "all four time fields blank",
			row:  rawRow{employeeID: "42", date: "2024-03-11"},
		},
		{
			name: "missing employee id",
			row:  rawRow{date: "2024-03-11", clockIn: "09:00"},
		},
		{
			name: "missing date",
			row:  rawRow{employeeID: "42", clockIn: "09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, buildRecord(tt.row).skip)
		})
	}
}

func TestParseDecimalHours(t *testing.T) {
	t.Parallel()

	d := parseDecimalHours("7:30")
	require.NotNil(t, d)
	assert.Equal(t, "7.50", d.StringFixed(2))

	d = parseDecimalHours("0:20")
	require.NotNil(t, d)
	assert.Equal(t, "0.33", d.StringFixed(2))

	assert.Nil(t, parseDecimalHours(""))
	assert.Nil(t, parseDecimalHours("seven"))
	assert.Nil(t, parseDecimalHours("7"))
}
