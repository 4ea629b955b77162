package team_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/team"
	teamerrors "github.com/vitorindio/agendamento-ferias/internal/team/errors"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

type fakeTeamRepo struct {
	createFn       func(ctx context.Context, t *team.Team) error
	findByIDFn     func(ctx context.Context, id string) (*team.Team, error)
	addMemberFn    func(ctx context.Context, teamID, userID string) error
	removeMemberFn func(ctx context.Context, teamID, userID string) error
}

func (f *fakeTeamRepo) Create(ctx context.Context, t *team.Team) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	t.ID = uuid.New()
	return nil
}
func (f *fakeTeamRepo) Update(context.Context, *team.Team) error { return nil }
func (f *fakeTeamRepo) FindByID(ctx context.Context, id string) (*team.Team, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTeamRepo) FindAll(context.Context) ([]team.Team, error) { return nil, nil }
func (f *fakeTeamRepo) FindByManager(context.Context, string) ([]team.Team, error) {
	return nil, nil
}
func (f *fakeTeamRepo) FindByMember(context.Context, string) ([]team.Team, error) {
	return nil, nil
}
func (f *fakeTeamRepo) FindMembers(context.Context, string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeTeamRepo) AddMember(ctx context.Context, teamID, userID string) error {
	if f.addMemberFn != nil {
		return f.addMemberFn(ctx, teamID, userID)
	}
	return nil
}
func (f *fakeTeamRepo) RemoveMember(ctx context.Context, teamID, userID string) error {
	if f.removeMemberFn != nil {
		return f.removeMemberFn(ctx, teamID, userID)
	}
	return nil
}
func (f *fakeTeamRepo) FindManagersOf(context.Context, string) ([]user.User, error) {
	return nil, nil
}

type fakeUserRepo struct {
	findByIDFn func(ctx context.Context, id string) (*user.User, error)
}

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByConfirmationToken(context.Context, string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindAll(context.Context) ([]user.User, error)    { return nil, nil }
func (f *fakeUserRepo) FindActive(context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(context.Context, *user.User) error        { return nil }

func TestServiceCreate(t *testing.T) {
	managerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		users := &fakeUserRepo{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: managerID, FullName: "Bruno Lima", Role: user.RoleManager}, nil
			},
		}

		resp, err := team.NewService(&fakeTeamRepo{}, users).Create(context.Background(), team.CreateTeamRequest{
			Name:      "Platform",
			ManagerID: managerID.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, managerID, resp.ManagerID)
	})

	t.Run("negative manager does not exist", func(t *testing.T) {
		users := &fakeUserRepo{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		_, err := team.NewService(&fakeTeamRepo{}, users).Create(context.Background(), team.CreateTeamRequest{
			Name:      "Platform",
			ManagerID: uuid.NewString(),
		})

		assert.ErrorIs(t, err, teamerrors.ErrManagerNotFound)
	})

	t.Run("negative manager holds USER role", func(t *testing.T) {
		users := &fakeUserRepo{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: managerID, Role: user.RoleUser}, nil
			},
		}

		_, err := team.NewService(&fakeTeamRepo{}, users).Create(context.Background(), team.CreateTeamRequest{
			Name:      "Platform",
			ManagerID: managerID.String(),
		})

		assert.ErrorIs(t, err, teamerrors.ErrManagerRoleRequired)
	})
}

func TestServiceRemoveMember(t *testing.T) {
	teamID := uuid.New()

	t.Run("negative user is not a member", func(t *testing.T) {
		repo := &fakeTeamRepo{
			findByIDFn: func(ctx context.Context, id string) (*team.Team, error) {
				return &team.Team{ID: teamID, Name: "Platform"}, nil
			},
			removeMemberFn: func(ctx context.Context, teamID, userID string) error {
				return gorm.ErrRecordNotFound
			},
		}

		err := team.NewService(repo, &fakeUserRepo{}).RemoveMember(context.Background(), teamID.String(), uuid.NewString())

		assert.ErrorIs(t, err, teamerrors.ErrMemberNotFound)
	})
}
