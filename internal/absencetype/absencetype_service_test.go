package absencetype_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/absencetype"
	absencetypeerrors "github.com/vitorindio/agendamento-ferias/internal/absencetype/errors"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, t *absencetype.AbsenceType) error
	findByIDFn   func(ctx context.Context, id string) (*absencetype.AbsenceType, error)
	findByNameFn func(ctx context.Context, name string) (*absencetype.AbsenceType, error)
	findActiveFn func(ctx context.Context) ([]absencetype.AbsenceType, error)
	updateFn     func(ctx context.Context, t *absencetype.AbsenceType) error
}

func (f *fakeRepo) Create(ctx context.Context, t *absencetype.AbsenceType) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	t.ID = uuid.New()
	return nil
}
func (f *fakeRepo) FindAll(context.Context) ([]absencetype.AbsenceType, error) { return nil, nil }
func (f *fakeRepo) FindActive(ctx context.Context) ([]absencetype.AbsenceType, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, nil
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByName(ctx context.Context, name string) (*absencetype.AbsenceType, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) Update(ctx context.Context, t *absencetype.AbsenceType) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func TestServiceCreate(t *testing.T) {
	t.Run("success applies defaults", func(t *testing.T) {
		svc := absencetype.NewService(&fakeRepo{}, nil)

		resp, err := svc.Create(context.Background(), absencetype.CreateAbsenceTypeRequest{
			Name: "Study Leave",
		})

		require.NoError(t, err)
		assert.Equal(t, "#34D399", resp.ColorHex)
		assert.True(t, resp.DeductsBalance)
		assert.True(t, resp.Active)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		existing := &absencetype.AbsenceType{ID: uuid.New(), Name: "Vacation"}
		repo := &fakeRepo{
			findByNameFn: func(ctx context.Context, name string) (*absencetype.AbsenceType, error) {
				return existing, nil
			},
		}

		_, err := absencetype.NewService(repo, nil).Create(context.Background(), absencetype.CreateAbsenceTypeRequest{
			Name: "Vacation",
		})

		assert.ErrorIs(t, err, absencetypeerrors.ErrTypeNameTaken)
	})
}

func TestServiceToggleActive(t *testing.T) {
	typeID := uuid.New()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
			return &absencetype.AbsenceType{ID: typeID, Name: "Vacation", Active: true}, nil
		},
	}

	resp, err := absencetype.NewService(repo, nil).ToggleActive(context.Background(), typeID.String())

	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestServiceGetActiveWithoutCache(t *testing.T) {
	repo := &fakeRepo{
		findActiveFn: func(ctx context.Context) ([]absencetype.AbsenceType, error) {
			return []absencetype.AbsenceType{
				{ID: uuid.New(), Name: "Vacation", Active: true},
				{ID: uuid.New(), Name: "Day Off", Active: true},
			}, nil
		},
	}

	resp, err := absencetype.NewService(repo, nil).GetActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp, 2)
}
