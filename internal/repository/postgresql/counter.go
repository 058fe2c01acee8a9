package postgresql

import (
	"context"
	"fmt"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type counterRepository struct {
	db database.Pool
}

func NewCounterRepository(db database.Pool) attendance.CounterRepository {
	return &counterRepository{db: db}
}

// Next implements attendance.CounterRepository. The upsert-increment is a
// single statement, so two concurrent writers can never be handed the
// same identifier. Increments consumed by a batch that later fails are
// not returned to the counter.
func (c *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, latest_id)
		VALUES ($1, 1)
		ON CONFLICT (name)
		DO UPDATE SET latest_id = counters.latest_id + 1
		RETURNING latest_id
	`

	var id int64
	if err := c.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}

	return id, nil
}
