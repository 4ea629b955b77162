package balance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/scope"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// GetOrCreate returns the ledger row for the user/year pair,
	// inserting a fresh one with the default allowance when missing.
	GetOrCreate(ctx context.Context, userID string, year int) (*LeaveBalance, error)
	// Reserve adds days to used_days only if enough days remain.
	// Returns false without touching the row when they do not.
	Reserve(ctx context.Context, userID string, year, days int) (bool, error)
	// Release subtracts days from used_days, clamping at zero.
	Release(ctx context.Context, userID string, year, days int) error
	// SetTotal updates total_days only while used_days still fits
	// under the new total. Returns false when it would not.
	SetTotal(ctx context.Context, userID string, year, totalDays int) (bool, error)
	FindByUser(ctx context.Context, userID string) ([]LeaveBalance, error)
	FindByYear(ctx context.Context, year int) ([]LeaveBalance, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *repository) execer() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) GetOrCreate(ctx context.Context, userID string, year int) (*LeaveBalance, error) {
	query := `
INSERT INTO leave_balances (id, user_id, year, total_days, used_days, created_at, updated_at)
VALUES (gen_random_uuid(), $1, $2, $3, 0, NOW(), NOW())
ON CONFLICT (user_id, year) DO UPDATE SET year = EXCLUDED.year
RETURNING id, user_id, year, total_days, used_days, created_at, updated_at
`
	var b LeaveBalance
	row := r.execer().QueryRowContext(ctx, query, userID, year, DefaultTotalDays)
	if err := row.Scan(&b.ID, &b.UserID, &b.Year, &b.TotalDays, &b.UsedDays, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Reserve(ctx context.Context, userID string, year, days int) (bool, error) {
	query := `
UPDATE leave_balances
SET used_days = used_days + $3, updated_at = NOW()
WHERE user_id = $1 AND year = $2 AND total_days - used_days >= $3
`
	res, err := r.execer().ExecContext(ctx, query, userID, year, days)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *repository) Release(ctx context.Context, userID string, year, days int) error {
	query := `
UPDATE leave_balances
SET used_days = GREATEST(0, used_days - $3), updated_at = NOW()
WHERE user_id = $1 AND year = $2
`
	_, err := r.execer().ExecContext(ctx, query, userID, year, days)
	return err
}

func (r *repository) SetTotal(ctx context.Context, userID string, year, totalDays int) (bool, error) {
	query := `
UPDATE leave_balances
SET total_days = $3, updated_at = NOW()
WHERE user_id = $1 AND year = $2 AND used_days <= $3
`
	res, err := r.execer().ExecContext(ctx, query, userID, year, totalDays)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Order("year DESC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(scope.ByYear(year)).
		Order("user_id ASC").
		Find(&balances).Error
	return balances, err
}
