package team

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/user"
)

type Repository interface {
	Create(ctx context.Context, t *Team) error
	Update(ctx context.Context, t *Team) error
	FindByID(ctx context.Context, id string) (*Team, error)
	FindAll(ctx context.Context) ([]Team, error)
	FindByManager(ctx context.Context, managerID string) ([]Team, error)
	FindByMember(ctx context.Context, userID string) ([]Team, error)
	FindMembers(ctx context.Context, teamID string) ([]user.User, error)
	AddMember(ctx context.Context, teamID, userID string) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	// FindManagersOf returns the distinct managers of every team the
	// user belongs to. Used to decide who gets notified about a new
	// leave request.
	FindManagersOf(ctx context.Context, userID string) ([]user.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindByMember(ctx context.Context, userID string) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members tm ON tm.team_id = teams.id").
		Where("tm.user_id = ?", userID).
		Order("teams.name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindMembers(ctx context.Context, teamID string) ([]user.User, error) {
	var members []user.User
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Joins("JOIN team_members tm ON tm.user_id = users.id").
		Where("tm.team_id = ?", teamID).
		Order("users.full_name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) AddMember(ctx context.Context, teamID, userID string) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO team_members (team_id, user_id, created_at) VALUES (?, ?, NOW())`,
		teamID, userID,
	).Error
}

func (r *repository) RemoveMember(ctx context.Context, teamID, userID string) error {
	res := r.db.WithContext(ctx).Exec(
		`DELETE FROM team_members WHERE team_id = ? AND user_id = ?`,
		teamID, userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindManagersOf(ctx context.Context, userID string) ([]user.User, error) {
	var managers []user.User
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT u.*
		       FROM users u
		       JOIN teams t ON t.manager_id = u.id
		       JOIN team_members tm ON tm.team_id = t.id
		      WHERE tm.user_id = ? AND t.deleted_at IS NULL`, userID).
		Scan(&managers).Error
	return managers, err
}
