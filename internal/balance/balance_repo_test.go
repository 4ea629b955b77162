package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorindio/agendamento-ferias/internal/balance"
)

func TestRepositoryReserve(t *testing.T) {
	userID := uuid.NewString()

	t.Run("success when enough days remain", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE leave_balances").
			WithArgs(userID, 2027, 5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := balance.NewRepository(nil, db)
		ok, err := repo.Reserve(context.Background(), userID, 2027, 5)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative guard rejects overdraw", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE leave_balances").
			WithArgs(userID, 2027, 40).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := balance.NewRepository(nil, db)
		ok, err := repo.Reserve(context.Background(), userID, 2027, 40)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositorySetTotal(t *testing.T) {
	userID := uuid.NewString()

	t.Run("negative guard rejects total below used", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE leave_balances").
			WithArgs(userID, 2027, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := balance.NewRepository(nil, db)
		ok, err := repo.SetTotal(context.Background(), userID, 2027, 3)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryGetOrCreate(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "year", "total_days", "used_days", "created_at", "updated_at",
	}).AddRow(uuid.New().String(), userID.String(), 2027, balance.DefaultTotalDays, 0, now, now)

	mock.ExpectQuery("INSERT INTO leave_balances").
		WithArgs(userID.String(), 2027, balance.DefaultTotalDays).
		WillReturnRows(rows)

	repo := balance.NewRepository(nil, db)
	b, err := repo.GetOrCreate(context.Background(), userID.String(), 2027)

	require.NoError(t, err)
	assert.Equal(t, balance.DefaultTotalDays, b.TotalDays)
	assert.Equal(t, 0, b.UsedDays)
	assert.Equal(t, balance.DefaultTotalDays, b.AvailableDays())
	assert.NoError(t, mock.ExpectationsWereMet())
}
