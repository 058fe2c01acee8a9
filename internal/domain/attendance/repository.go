package attendance

import (
	"context"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// ListByEmployee retrieves every record stored for an employee. The
	// reconciler scans the result for a date-part match; duplicate
	// prevention lives there, not in a database constraint.
	ListByEmployee(ctx context.Context, employeeID int) ([]Record, error)

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id int64) (Record, error)

	// List retrieves records for an employee, optionally narrowed to a month
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// Update overwrites every data field of an existing record by ID
	Update(ctx context.Context, record Record) error

	// SetBatch persists records whose IDs are already allocated as one
	// atomic batch. Either all records land or none do.
	SetBatch(ctx context.Context, records []Record) error
}

// CounterRepository mints monotonically increasing identifiers per
// collection name. Next must be atomic under concurrent callers.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
