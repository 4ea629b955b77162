package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/absencetype"
	absencetypeerrors "github.com/vitorindio/agendamento-ferias/internal/absencetype/errors"
	"github.com/vitorindio/agendamento-ferias/internal/balance"
	balanceerrors "github.com/vitorindio/agendamento-ferias/internal/balance/errors"
	leaveerrors "github.com/vitorindio/agendamento-ferias/internal/leave/errors"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka"
	"github.com/vitorindio/agendamento-ferias/internal/notification"
	"github.com/vitorindio/agendamento-ferias/internal/team"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequestRequest) (RequestResponse, error)
	Approve(ctx context.Context, requestID, approverID string) (RequestResponse, error)
	Reject(ctx context.Context, requestID, approverID, reason string) (RequestResponse, error)
	Cancel(ctx context.Context, requestID, callerID string) (RequestResponse, error)
	GetByID(ctx context.Context, requestID string) (RequestResponse, error)
	GetMine(ctx context.Context, userID string) ([]RequestResponse, error)
	GetMineByYear(ctx context.Context, userID string, year int) ([]RequestResponse, error)
	GetPending(ctx context.Context) ([]RequestResponse, error)
	GetAll(ctx context.Context) ([]RequestResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	userRepo user.Repository
	teamRepo team.Repository
	typeRepo absencetype.Repository
	ledger   balance.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

// NewService wires the request workflow. outbox may be nil, which
// disables notifications without touching the rest of the flow.
func NewService(
	db *sql.DB,
	repo Repository,
	userRepo user.Repository,
	teamRepo team.Repository,
	typeRepo absencetype.Repository,
	ledger balance.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
		teamRepo: teamRepo,
		typeRepo: typeRepo,
		ledger:   ledger,
		outbox:   outbox,
		logger:   l,
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return d, nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequestRequest) (RequestResponse, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return RequestResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return RequestResponse{}, err
	}
	if end.Before(start) {
		return RequestResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if start.Before(today()) {
		return RequestResponse{}, leaveerrors.ErrPastDate
	}

	requester, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, leaveerrors.ErrRequesterNotFound
		}
		return RequestResponse{}, err
	}

	absType, err := s.typeRepo.FindByID(ctx, req.AbsenceTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, absencetypeerrors.ErrTypeNotFound
		}
		return RequestResponse{}, err
	}
	if !absType.Active {
		return RequestResponse{}, absencetypeerrors.ErrTypeInactive
	}

	conflicts, err := s.repo.FindOverlapping(ctx, userID, start, end)
	if err != nil {
		return RequestResponse{}, err
	}
	if len(conflicts) > 0 {
		return RequestResponse{}, leaveerrors.ErrPeriodConflict
	}

	request := LeaveRequest{
		UserID:        requester.ID,
		AbsenceTypeID: absType.ID,
		StartDate:     start,
		EndDate:       end,
		Status:        StatusPending,
		Comment:       req.Comment,
	}

	// Advisory check only. Days are reserved at approval, so the
	// request may still be rejected later if the balance ran out.
	if absType.DeductsBalance {
		bal, err := s.ledger.GetOrCreate(ctx, userID, start.Year())
		if err != nil {
			return RequestResponse{}, err
		}
		if bal.AvailableDays() < request.TotalDays() {
			return RequestResponse{}, balanceerrors.ErrInsufficientBalance
		}
	}

	if err := s.repo.Create(ctx, &request); err != nil {
		return RequestResponse{}, err
	}

	s.queueCreatedNotifications(ctx, request, requester)

	s.logger.Info("leave request created",
		zap.String("request_id", request.ID.String()),
		zap.String("user_id", userID),
		zap.Int("total_days", request.TotalDays()),
	)
	return mapToResponse(request), nil
}

func (s *service) queueCreatedNotifications(ctx context.Context, request LeaveRequest, requester *user.User) {
	if s.outbox == nil {
		return
	}

	managers, err := s.teamRepo.FindManagersOf(ctx, requester.ID.String())
	if err != nil {
		s.logger.Warn("manager lookup for notification failed",
			zap.String("request_id", request.ID.String()), zap.Error(err))
		return
	}

	contacts := make([]notification.ManagerContact, 0, len(managers))
	for _, m := range managers {
		contacts = append(contacts, notification.ManagerContact{Name: m.FullName, Email: m.Email})
	}

	err = notification.QueueRequestCreated(
		ctx, s.outbox,
		request.ID.String(), requester.FullName,
		notification.FormatPeriod(request.StartDate, request.EndDate),
		contacts,
	)
	if err != nil {
		s.logger.Warn("queue created notification failed",
			zap.String("request_id", request.ID.String()), zap.Error(err))
	}
}

func (s *service) resolveApprover(ctx context.Context, approverID string) (*user.User, error) {
	approver, err := s.userRepo.FindByID(ctx, approverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrApproverNotFound
		}
		return nil, err
	}
	if approver.Role != user.RoleManager && approver.Role != user.RoleAdmin {
		return nil, leaveerrors.ErrApprovalForbidden
	}
	return approver, nil
}

func (s *service) Approve(ctx context.Context, requestID, approverID string) (RequestResponse, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	if request.Status != StatusPending {
		return RequestResponse{}, leaveerrors.ErrOnlyPendingDecidable
	}

	approver, err := s.resolveApprover(ctx, approverID)
	if err != nil {
		return RequestResponse{}, err
	}

	absType, err := s.typeRepo.FindByID(ctx, request.AbsenceTypeID.String())
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	moved, err := qtx.UpdateStatus(ctx, requestID, []string{StatusPending}, StatusApproved, approverID, "")
	if err != nil {
		return RequestResponse{}, err
	}
	if !moved {
		return RequestResponse{}, leaveerrors.ErrOnlyPendingDecidable
	}

	if absType.DeductsBalance {
		year := request.StartDate.Year()
		ledgerTx := s.ledger.WithTx(tx)
		if _, err := ledgerTx.GetOrCreate(ctx, request.UserID.String(), year); err != nil {
			return RequestResponse{}, err
		}
		ok, err := ledgerTx.Reserve(ctx, request.UserID.String(), year, request.TotalDays())
		if err != nil {
			return RequestResponse{}, err
		}
		if !ok {
			return RequestResponse{}, balanceerrors.ErrInsufficientBalance
		}
	}

	s.queueDecidedNotification(ctx, tx, *request, true, "")

	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("leave request approved",
		zap.String("request_id", requestID),
		zap.String("approver_id", approver.ID.String()),
	)
	return s.GetByID(ctx, requestID)
}

func (s *service) Reject(ctx context.Context, requestID, approverID, reason string) (RequestResponse, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	if request.Status != StatusPending {
		return RequestResponse{}, leaveerrors.ErrOnlyPendingDecidable
	}

	approver, err := s.resolveApprover(ctx, approverID)
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	moved, err := qtx.UpdateStatus(ctx, requestID, []string{StatusPending}, StatusRejected, approverID, reason)
	if err != nil {
		return RequestResponse{}, err
	}
	if !moved {
		return RequestResponse{}, leaveerrors.ErrOnlyPendingDecidable
	}

	s.queueDecidedNotification(ctx, tx, *request, false, reason)

	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("leave request rejected",
		zap.String("request_id", requestID),
		zap.String("approver_id", approver.ID.String()),
	)
	return s.GetByID(ctx, requestID)
}

func (s *service) queueDecidedNotification(ctx context.Context, tx *sql.Tx, request LeaveRequest, approved bool, reason string) {
	if s.outbox == nil {
		return
	}

	requester, err := s.userRepo.FindByID(ctx, request.UserID.String())
	if err != nil {
		s.logger.Warn("requester lookup for notification failed",
			zap.String("request_id", request.ID.String()), zap.Error(err))
		return
	}

	err = notification.QueueRequestDecided(
		ctx, s.outbox.WithTx(tx),
		request.ID.String(), requester.FullName, requester.Email,
		notification.FormatPeriod(request.StartDate, request.EndDate),
		approved, reason,
	)
	if err != nil {
		s.logger.Warn("queue decided notification failed",
			zap.String("request_id", request.ID.String()), zap.Error(err))
	}
}

func (s *service) Cancel(ctx context.Context, requestID, callerID string) (RequestResponse, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}

	if request.UserID.String() != callerID {
		return RequestResponse{}, leaveerrors.ErrCancelForbidden
	}
	if request.IsTerminal() {
		return RequestResponse{}, leaveerrors.ErrCancelTerminal
	}

	absType, err := s.typeRepo.FindByID(ctx, request.AbsenceTypeID.String())
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The guard is pinned to the status we read so a decision landing in
	// between makes the update miss instead of silently skipping the release.
	moved, err := qtx.UpdateStatus(ctx, requestID, []string{request.Status}, StatusCancelled, "", "")
	if err != nil {
		return RequestResponse{}, err
	}
	if !moved {
		return RequestResponse{}, leaveerrors.ErrCancelTerminal
	}

	// Days were only reserved when the request got approved.
	if request.Status == StatusApproved && absType.DeductsBalance {
		err := s.ledger.WithTx(tx).Release(ctx, request.UserID.String(), request.StartDate.Year(), request.TotalDays())
		if err != nil {
			return RequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("leave request cancelled",
		zap.String("request_id", requestID),
		zap.String("user_id", callerID),
	)
	return s.GetByID(ctx, requestID)
}

func (s *service) GetByID(ctx context.Context, requestID string) (RequestResponse, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	return mapToResponse(*request), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]RequestResponse, error) {
	requests, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetMineByYear(ctx context.Context, userID string, year int) ([]RequestResponse, error) {
	requests, err := s.repo.FindByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetPending(ctx context.Context) ([]RequestResponse, error) {
	requests, err := s.repo.FindByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetAll(ctx context.Context) ([]RequestResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}
