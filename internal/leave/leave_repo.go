package leave

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/scope"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	FindByUserAndYear(ctx context.Context, userID string, year int) ([]LeaveRequest, error)
	FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	// FindOverlapping returns the user's requests whose period touches
	// [start, end]. Cancelled and rejected requests never conflict.
	FindOverlapping(ctx context.Context, userID string, start, end time.Time) ([]LeaveRequest, error)
	// UpdateStatus transitions a request only while it still holds one
	// of the expected statuses. Returns false when the row was already
	// moved by a concurrent decision.
	UpdateStatus(ctx context.Context, id string, from []string, to string, deciderID, reason string) (bool, error)
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
}

func (r *repository) execer() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Order("start_date DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByUserAndYear(ctx context.Context, userID string, year int) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Order("start_date DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindOverlapping(ctx context.Context, userID string, start, end time.Time) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Where("status NOT IN ?", []string{StatusCancelled, StatusRejected}).
		Where("NOT (end_date < ? OR start_date > ?)", start, end).
		Find(&requests).Error
	return requests, err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, from []string, to string, deciderID, reason string) (bool, error) {
	args := []any{to, reason, deciderID, id}
	placeholders := make([]string, len(from))
	for i, status := range from {
		args = append(args, status)
		placeholders[i] = fmt.Sprintf("$%d", len(args))
	}

	// Cancelling keeps the recorded decider and reason so an approved
	// request still shows who approved it after the fact.
	query := fmt.Sprintf(`
UPDATE leave_requests
SET
	status = $1,
	decision_reason = CASE WHEN $1 = 'CANCELLED' THEN decision_reason ELSE $2 END,
	decider_id = CASE WHEN $1 = 'CANCELLED' THEN decider_id ELSE NULLIF($3, '')::uuid END,
	decided_at = CASE WHEN $1 IN ('APPROVED', 'REJECTED') THEN NOW() ELSE decided_at END,
	cancelled_at = CASE WHEN $1 = 'CANCELLED' THEN NOW() ELSE cancelled_at END,
	updated_at = NOW()
WHERE id = $4 AND status IN (%s)
`, strings.Join(placeholders, ", "))

	res, err := r.execer().ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
