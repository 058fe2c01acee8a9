package postgresql

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterNext(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs("Attendance").
		WillReturnRows(pgxmock.NewRows([]string{"latest_id"}).AddRow(int64(7)))

	repo := NewCounterRepository(mock)

	id, err := repo.Next(context.Background(), "Attendance")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterNext_FirstUse(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// A counter that does not exist yet is created at 1 by the same
	// statement that increments it.
	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs("Attendance").
		WillReturnRows(pgxmock.NewRows([]string{"latest_id"}).AddRow(int64(1)))

	repo := NewCounterRepository(mock)

	id, err := repo.Next(context.Background(), "Attendance")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterNext_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs("Attendance").
		WillReturnError(errors.New("connection reset"))

	repo := NewCounterRepository(mock)

	_, err = repo.Next(context.Background(), "Attendance")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to increment counter")
}
