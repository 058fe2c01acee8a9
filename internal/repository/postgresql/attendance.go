package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db database.Pool
}

func NewAttendanceRepository(db database.Pool) attendance.Repository {
	return &attendanceRepository{db: db}
}

const recordColumns = `
	id, employee_id, date_time, server_checkin, server_checkout,
	break_start, break_end, total_time, available_time_without_break,
	total_break_time, total_leaves, extra_time,
	first_half_deduction_minutes, second_half_deduction_minutes,
	month, created_at, updated_at
`

// ListByEmployee implements attendance.Repository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int) ([]attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE employee_id = $1
	`

	rows, err := a.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE employee_id = $1
	`
	args := []any{filter.EmployeeID}

	if filter.Month != "" {
		query += ` AND month = $2`
		args = append(args, filter.Month)
	}
	query += ` ORDER BY date_time`

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE id = $1
	`

	rec, err := scanRecord(a.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get record %d: %w", id, err)
	}

	return rec, nil
}

// Update implements attendance.Repository. Every data field of the stored
// record is overwritten with the candidate's values.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	query := `
		UPDATE attendance_records SET
			employee_id = $2,
			date_time = $3,
			server_checkin = $4,
			server_checkout = $5,
			break_start = $6,
			break_end = $7,
			total_time = $8,
			available_time_without_break = $9,
			total_break_time = $10,
			total_leaves = $11,
			extra_time = $12,
			first_half_deduction_minutes = $13,
			second_half_deduction_minutes = $14,
			month = $15,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := a.db.Exec(ctx, query, recordArgs(record)...)
	if err != nil {
		return fmt.Errorf("failed to update record %d: %w", record.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// SetBatch implements attendance.Repository. All records are staged as
// set-operations keyed by their pre-allocated IDs and committed as one
// transaction; a failure anywhere abandons the whole batch.
func (a *attendanceRepository) SetBatch(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date_time, server_checkin, server_checkout,
			break_start, break_end, total_time, available_time_without_break,
			total_break_time, total_leaves, extra_time,
			first_half_deduction_minutes, second_half_deduction_minutes, month
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (id) DO UPDATE SET
			employee_id = EXCLUDED.employee_id,
			date_time = EXCLUDED.date_time,
			server_checkin = EXCLUDED.server_checkin,
			server_checkout = EXCLUDED.server_checkout,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			total_time = EXCLUDED.total_time,
			available_time_without_break = EXCLUDED.available_time_without_break,
			total_break_time = EXCLUDED.total_break_time,
			total_leaves = EXCLUDED.total_leaves,
			extra_time = EXCLUDED.extra_time,
			first_half_deduction_minutes = EXCLUDED.first_half_deduction_minutes,
			second_half_deduction_minutes = EXCLUDED.second_half_deduction_minutes,
			month = EXCLUDED.month,
			updated_at = NOW()
	`

	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(query, recordArgs(rec)...)
		}

		results := tx.SendBatch(ctx, batch)
		for range records {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to stage record: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close batch: %w", err)
		}
		return nil
	})
}

// recordArgs returns the query arguments shared by Update and SetBatch,
// with the decimal hour fields stored as fixed two-place text.
func recordArgs(rec attendance.Record) []any {
	return []any{
		rec.ID,
		rec.EmployeeID,
		rec.DateTime,
		rec.ServerCheckin,
		rec.ServerCheckout,
		rec.BreakStart,
		rec.BreakEnd,
		decimalToText(rec.TotalTime),
		decimalToText(rec.AvailableTimeWithoutBreak),
		rec.TotalBreakTime,
		rec.TotalLeaves,
		rec.ExtraTime,
		rec.FirstHalfDeductionMinutes,
		rec.SecondHalfDeductionMinutes,
		rec.Month,
	}
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record rows: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var totalTime, availableTime *string

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.DateTime, &rec.ServerCheckin, &rec.ServerCheckout,
		&rec.BreakStart, &rec.BreakEnd, &totalTime, &availableTime,
		&rec.TotalBreakTime, &rec.TotalLeaves, &rec.ExtraTime,
		&rec.FirstHalfDeductionMinutes, &rec.SecondHalfDeductionMinutes,
		&rec.Month, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	if rec.TotalTime, err = textToDecimal(totalTime); err != nil {
		return attendance.Record{}, fmt.Errorf("invalid total_time for record %d: %w", rec.ID, err)
	}
	if rec.AvailableTimeWithoutBreak, err = textToDecimal(availableTime); err != nil {
		return attendance.Record{}, fmt.Errorf("invalid available_time_without_break for record %d: %w", rec.ID, err)
	}

	return rec, nil
}

func decimalToText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func textToDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
