package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/absencetype"
	absencetypeerrors "github.com/vitorindio/agendamento-ferias/internal/absencetype/errors"
	"github.com/vitorindio/agendamento-ferias/internal/balance"
	balanceerrors "github.com/vitorindio/agendamento-ferias/internal/balance/errors"
	"github.com/vitorindio/agendamento-ferias/internal/leave"
	leaveerrors "github.com/vitorindio/agendamento-ferias/internal/leave/errors"
	"github.com/vitorindio/agendamento-ferias/internal/team"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

type fakeLeaveRepo struct {
	createFn          func(ctx context.Context, r *leave.LeaveRequest) error
	findByIDFn        func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findOverlappingFn func(ctx context.Context, userID string, start, end time.Time) ([]leave.LeaveRequest, error)
	updateStatusFn    func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error)
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepo) Create(ctx context.Context, r *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	r.ID = uuid.New()
	return nil
}
func (f *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeLeaveRepo) FindByUser(context.Context, string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindByUserAndYear(context.Context, string, int) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindByStatus(context.Context, string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindAll(context.Context) ([]leave.LeaveRequest, error) { return nil, nil }
func (f *fakeLeaveRepo) FindOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	if f.findOverlappingFn != nil {
		return f.findOverlappingFn(ctx, userID, start, end)
	}
	return nil, nil
}
func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
	return f.updateStatusFn(ctx, id, from, to, deciderID, reason)
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

type fakeTeamRepo struct {
	findManagersOfFn func(ctx context.Context, userID string) ([]user.User, error)
}

func (f *fakeTeamRepo) Create(context.Context, *team.Team) error          { return nil }
func (f *fakeTeamRepo) Update(context.Context, *team.Team) error          { return nil }
func (f *fakeTeamRepo) FindByID(context.Context, string) (*team.Team, error) {
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
func (f *fakeTeamRepo) AddMember(context.Context, string, string) error    { return nil }
func (f *fakeTeamRepo) RemoveMember(context.Context, string, string) error { return nil }
func (f *fakeTeamRepo) FindManagersOf(ctx context.Context, userID string) ([]user.User, error) {
	if f.findManagersOfFn != nil {
		return f.findManagersOfFn(ctx, userID)
	}
	return nil, nil
}

type fakeTypeRepo struct {
	findByIDFn func(ctx context.Context, id string) (*absencetype.AbsenceType, error)
}

func (f *fakeTypeRepo) Create(context.Context, *absencetype.AbsenceType) error { return nil }
func (f *fakeTypeRepo) FindAll(context.Context) ([]absencetype.AbsenceType, error) {
	return nil, nil
}
func (f *fakeTypeRepo) FindActive(context.Context) ([]absencetype.AbsenceType, error) {
	return nil, nil
}
func (f *fakeTypeRepo) FindByID(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeTypeRepo) FindByName(context.Context, string) (*absencetype.AbsenceType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTypeRepo) Update(context.Context, *absencetype.AbsenceType) error { return nil }

type fakeLedger struct {
	getOrCreateFn func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error)
	reserveFn     func(ctx context.Context, userID string, year, days int) (bool, error)
	releaseFn     func(ctx context.Context, userID string, year, days int) error
}

func (f *fakeLedger) WithTx(tx *sql.Tx) balance.Repository { return f }
func (f *fakeLedger) GetOrCreate(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
	return f.getOrCreateFn(ctx, userID, year)
}
func (f *fakeLedger) Reserve(ctx context.Context, userID string, year, days int) (bool, error) {
	return f.reserveFn(ctx, userID, year, days)
}
func (f *fakeLedger) Release(ctx context.Context, userID string, year, days int) error {
	if f.releaseFn != nil {
		return f.releaseFn(ctx, userID, year, days)
	}
	return nil
}
func (f *fakeLedger) SetTotal(context.Context, string, int, int) (bool, error) {
	return false, nil
}
func (f *fakeLedger) FindByUser(context.Context, string) ([]balance.LeaveBalance, error) {
	return nil, nil
}
func (f *fakeLedger) FindByYear(context.Context, int) ([]balance.LeaveBalance, error) {
	return nil, nil
}

type fixture struct {
	requesterID uuid.UUID
	approverID  uuid.UUID
	typeID      uuid.UUID
	requestID   uuid.UUID
	requester   *user.User
	approver    *user.User
	absType     *absencetype.AbsenceType
}

func newFixture() fixture {
	f := fixture{
		requesterID: uuid.New(),
		approverID:  uuid.New(),
		typeID:      uuid.New(),
		requestID:   uuid.New(),
	}
	f.requester = &user.User{
		ID:       f.requesterID,
		FullName: "Ana Souza",
		Email:    "ana@example.com",
		Role:     user.RoleUser,
		Active:   true,
	}
	f.approver = &user.User{
		ID:       f.approverID,
		FullName: "Bruno Lima",
		Email:    "bruno@example.com",
		Role:     user.RoleManager,
		Active:   true,
	}
	f.absType = &absencetype.AbsenceType{
		ID:             f.typeID,
		Name:           "Vacation",
		DeductsBalance: true,
		Active:         true,
	}
	return f
}

func (f fixture) userLookup(ctx context.Context, id string) (*user.User, error) {
	switch id {
	case f.requesterID.String():
		return f.requester, nil
	case f.approverID.String():
		return f.approver, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fixture) pendingRequest(start, end time.Time) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:            f.requestID,
		UserID:        f.requesterID,
		AbsenceTypeID: f.typeID,
		StartDate:     start,
		EndDate:       end,
		Status:        leave.StatusPending,
	}
}

func futureDate(days int) time.Time {
	now := time.Now().UTC().AddDate(0, 0, days)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func TestServiceCreate(t *testing.T) {
	fx := newFixture()
	start := futureDate(10)
	end := futureDate(14)

	newService := func(repo *fakeLeaveRepo, ledger *fakeLedger) leave.Service {
		return leave.NewService(
			nil, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
				return fx.absType, nil
			}},
			ledger, nil,
		)
	}

	healthyLedger := &fakeLedger{
		getOrCreateFn: func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
			return &balance.LeaveBalance{UserID: fx.requesterID, Year: year, TotalDays: 30, UsedDays: 0}, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		svc := newService(&fakeLeaveRepo{}, healthyLedger)

		resp, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     start.Format("2006-01-02"),
			EndDate:       end.Format("2006-01-02"),
		})

		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 5, resp.TotalDays)
	})

	t.Run("negative end before start", func(t *testing.T) {
		svc := newService(&fakeLeaveRepo{}, healthyLedger)

		_, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     end.Format("2006-01-02"),
			EndDate:       start.Format("2006-01-02"),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative start in the past", func(t *testing.T) {
		svc := newService(&fakeLeaveRepo{}, healthyLedger)

		_, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     futureDate(-2).Format("2006-01-02"),
			EndDate:       futureDate(3).Format("2006-01-02"),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrPastDate)
	})

	t.Run("negative bad date format", func(t *testing.T) {
		svc := newService(&fakeLeaveRepo{}, healthyLedger)

		_, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     "10/01/2027",
			EndDate:       "12/01/2027",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findOverlappingFn: func(ctx context.Context, userID string, s, e time.Time) ([]leave.LeaveRequest, error) {
				return []leave.LeaveRequest{*fx.pendingRequest(s, e)}, nil
			},
		}
		svc := newService(repo, healthyLedger)

		_, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     start.Format("2006-01-02"),
			EndDate:       end.Format("2006-01-02"),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrPeriodConflict)
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		drained := &fakeLedger{
			getOrCreateFn: func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
				return &balance.LeaveBalance{UserID: fx.requesterID, Year: year, TotalDays: 30, UsedDays: 28}, nil
			},
		}
		svc := newService(&fakeLeaveRepo{}, drained)

		_, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     start.Format("2006-01-02"),
			EndDate:       end.Format("2006-01-02"),
		})

		assert.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)
	})

	t.Run("negative inactive absence type", func(t *testing.T) {
		inactive := *fx.absType
		inactive.Active = false
		svc := leave.NewService(
			nil, &fakeLeaveRepo{},
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
				return &inactive, nil
			}},
			healthyLedger, nil,
		)

		_, err := svc.Create(context.Background(), fx.requesterID.String(), leave.CreateRequestRequest{
			AbsenceTypeID: fx.typeID.String(),
			StartDate:     start.Format("2006-01-02"),
			EndDate:       end.Format("2006-01-02"),
		})

		assert.ErrorIs(t, err, absencetypeerrors.ErrTypeInactive)
	})
}

func TestServiceApprove(t *testing.T) {
	fx := newFixture()
	start := futureDate(20)
	end := futureDate(24)

	t.Run("success reserves balance inside the transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		reservedDays := 0
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				assert.Equal(t, []string{leave.StatusPending}, from)
				assert.Equal(t, leave.StatusApproved, to)
				return true, nil
			},
		}
		ledger := &fakeLedger{
			getOrCreateFn: func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
				return &balance.LeaveBalance{UserID: fx.requesterID, Year: year, TotalDays: 30}, nil
			},
			reserveFn: func(ctx context.Context, userID string, year, days int) (bool, error) {
				reservedDays = days
				return true, nil
			},
		}

		svc := leave.NewService(
			db, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
				return fx.absType, nil
			}},
			ledger, nil,
		)

		_, err = svc.Approve(context.Background(), fx.requestID.String(), fx.approverID.String())

		require.NoError(t, err)
		assert.Equal(t, 5, reservedDays)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative balance ran out before approval", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				return true, nil
			},
		}
		ledger := &fakeLedger{
			getOrCreateFn: func(ctx context.Context, userID string, year int) (*balance.LeaveBalance, error) {
				return &balance.LeaveBalance{UserID: fx.requesterID, Year: year, TotalDays: 30, UsedDays: 30}, nil
			},
			reserveFn: func(ctx context.Context, userID string, year, days int) (bool, error) {
				return false, nil
			},
		}

		svc := leave.NewService(
			db, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
				return fx.absType, nil
			}},
			ledger, nil,
		)

		_, err = svc.Approve(context.Background(), fx.requestID.String(), fx.approverID.String())

		assert.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative request no longer pending", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				req := fx.pendingRequest(start, end)
				req.Status = leave.StatusApproved
				return req, nil
			},
		}

		svc := leave.NewService(
			nil, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{},
			&fakeLedger{}, nil,
		)

		_, err := svc.Approve(context.Background(), fx.requestID.String(), fx.approverID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrOnlyPendingDecidable)
	})

	t.Run("negative raced by a concurrent decision", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				// Another decision moved the row after the read above.
				return false, nil
			},
		}

		svc := leave.NewService(
			db, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
				return fx.absType, nil
			}},
			&fakeLedger{}, nil,
		)

		_, err = svc.Approve(context.Background(), fx.requestID.String(), fx.approverID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrOnlyPendingDecidable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative approver without manager role", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
		}

		svc := leave.NewService(
			nil, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{},
			&fakeLedger{}, nil,
		)

		_, err := svc.Approve(context.Background(), fx.requestID.String(), fx.requesterID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrApprovalForbidden)
	})

	t.Run("negative missing request wins over missing authority", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := leave.NewService(
			nil, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{},
			&fakeLedger{}, nil,
		)

		// The caller holds no manager role, but the request does not
		// exist either. The caller learns about the missing request.
		_, err := svc.Approve(context.Background(), fx.requestID.String(), fx.requesterID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrRequestNotFound)
	})
}

func TestServiceReject(t *testing.T) {
	fx := newFixture()
	start := futureDate(20)
	end := futureDate(22)

	t.Run("success with empty reason", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				assert.Equal(t, leave.StatusRejected, to)
				assert.Empty(t, reason)
				return true, nil
			},
		}

		svc := leave.NewService(
			db, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{},
			&fakeLedger{}, nil,
		)

		_, err = svc.Reject(context.Background(), fx.requestID.String(), fx.approverID.String(), "")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceCancel(t *testing.T) {
	fx := newFixture()
	start := futureDate(30)
	end := futureDate(33)

	newService := func(db *sql.DB, repo *fakeLeaveRepo, ledger *fakeLedger) leave.Service {
		return leave.NewService(
			db, repo,
			&fakeUserRepo{findByIDFn: fx.userLookup},
			&fakeTeamRepo{},
			&fakeTypeRepo{findByIDFn: func(ctx context.Context, id string) (*absencetype.AbsenceType, error) {
				return fx.absType, nil
			}},
			ledger, nil,
		)
	}

	t.Run("success pending request keeps balance untouched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		released := false
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				assert.Equal(t, []string{leave.StatusPending}, from)
				assert.Equal(t, leave.StatusCancelled, to)
				return true, nil
			},
		}
		ledger := &fakeLedger{
			releaseFn: func(ctx context.Context, userID string, year, days int) error {
				released = true
				return nil
			},
		}

		_, err = newService(db, repo, ledger).Cancel(context.Background(), fx.requestID.String(), fx.requesterID.String())

		require.NoError(t, err)
		assert.False(t, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success approved request releases reserved days", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		releasedDays := 0
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				req := fx.pendingRequest(start, end)
				req.Status = leave.StatusApproved
				return req, nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				assert.Equal(t, []string{leave.StatusApproved}, from)
				return true, nil
			},
		}
		ledger := &fakeLedger{
			releaseFn: func(ctx context.Context, userID string, year, days int) error {
				releasedDays = days
				return nil
			},
		}

		_, err = newService(db, repo, ledger).Cancel(context.Background(), fx.requestID.String(), fx.requesterID.String())

		require.NoError(t, err)
		assert.Equal(t, 4, releasedDays)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative concurrent approval aborts the cancel", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		released := false
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
			updateStatusFn: func(ctx context.Context, id string, from []string, to, deciderID, reason string) (bool, error) {
				// An approval committed between the read and this update,
				// so the guard pinned to the read status must miss.
				assert.Equal(t, []string{leave.StatusPending}, from)
				return false, nil
			},
		}
		ledger := &fakeLedger{
			releaseFn: func(ctx context.Context, userID string, year, days int) error {
				released = true
				return nil
			},
		}

		_, err = newService(db, repo, ledger).Cancel(context.Background(), fx.requestID.String(), fx.requesterID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrCancelTerminal)
		assert.False(t, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative rejected request cannot be cancelled", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				req := fx.pendingRequest(start, end)
				req.Status = leave.StatusRejected
				return req, nil
			},
		}

		_, err := newService(nil, repo, &fakeLedger{}).Cancel(context.Background(), fx.requestID.String(), fx.requesterID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrCancelTerminal)
	})

	t.Run("negative caller is not the requester", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return fx.pendingRequest(start, end), nil
			},
		}

		_, err := newService(nil, repo, &fakeLedger{}).Cancel(context.Background(), fx.requestID.String(), fx.approverID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrCancelForbidden)
	})
}

func TestTotalDays(t *testing.T) {
	req := leave.LeaveRequest{
		StartDate: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 1, req.TotalDays())

	req.EndDate = time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, req.TotalDays())
}
