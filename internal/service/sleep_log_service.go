package service

import (
	"context"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/repository"
	"github.com/blaisecz/shift-coach/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SleepLogService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error)
	Get(ctx context.Context, userID, logID uuid.UUID) (*domain.SleepLog, error)
	Update(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateSleepLogRequest) (*domain.SleepLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error)
}

type sleepLogService struct {
	repo     repository.SleepLogRepository
	userRepo repository.UserRepository
	scores   ScoreStore
	logger   *zap.Logger
}

func NewSleepLogService(repo repository.SleepLogRepository, userRepo repository.UserRepository, scores ScoreStore, logger *zap.Logger) SleepLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sleepLogService{
		repo:     repo,
		userRepo: userRepo,
		scores:   scoreStoreOrNoop(scores),
		logger:   logger.Named("sleep_logs"),
	}
}

// Create creates a new sleep log
// Returns (log, isExisting, error) - isExisting is true if returning existing log due to idempotency
func (s *sleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	localTZ := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		localTZ = *req.LocalTimezone
	}
	if localTZ == "" {
		localTZ = "UTC"
	}

	// Normalize timestamps to UTC for storage and overlap checks
	startUTC := req.StartAt.UTC()
	endUTC := req.EndAt.UTC()
	if !endUTC.After(startUTC) {
		return nil, false, domain.ErrInvalidInput
	}

	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, userID, startUTC, endUTC, req.Type)
	if err != nil {
		return nil, false, err
	}
	if hasOverlap {
		return nil, false, domain.ErrOverlappingSleep
	}

	log := &domain.SleepLog{
		UserID:          userID,
		StartAt:         startUTC,
		EndAt:           endUTC,
		Quality:         req.Quality,
		Type:            req.Type,
		LocalTimezone:   localTZ,
		ClientRequestID: req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, false, err
	}

	invalidateDay(ctx, s.scores, s.logger, user, endUTC)
	return log, false, nil
}

func (s *sleepLogService) Get(ctx context.Context, userID, logID uuid.UUID) (*domain.SleepLog, error) {
	log, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return log, nil
}

// Update applies a partial update and re-runs the overlap checks.
func (s *sleepLogService) Update(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateSleepLogRequest) (*domain.SleepLog, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := s.Get(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	previousEnd := log.EndAt

	if req.StartAt != nil {
		log.StartAt = req.StartAt.UTC()
	}
	if req.EndAt != nil {
		log.EndAt = req.EndAt.UTC()
	}
	if req.Quality != nil {
		log.Quality = *req.Quality
	}
	if req.Type != nil {
		log.Type = *req.Type
	}
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		log.LocalTimezone = *req.LocalTimezone
	}

	if !log.EndAt.After(log.StartAt) {
		return nil, domain.ErrInvalidInput
	}

	hasOverlap, err := s.repo.HasOverlapExcluding(ctx, userID, logID, log.StartAt, log.EndAt, log.Type)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, domain.ErrOverlappingSleep
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}

	invalidateDay(ctx, s.scores, s.logger, user, previousEnd)
	if !sameLocalDay(previousEnd, log.EndAt, user.Location()) {
		invalidateDay(ctx, s.scores, s.logger, user, log.EndAt)
	}
	return log, nil
}

func sameLocalDay(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format(domain.DateLayout) == b.In(loc).Format(domain.DateLayout)
}

func (s *sleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	logs, hasMore := pagination.Page(logs, filter.Limit)

	response := &domain.SleepLogListResponse{
		Data: make([]domain.SleepLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, log := range logs {
		response.Data[i] = log.ToResponse()
	}

	if hasMore && len(logs) > 0 {
		lastLog := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:      lastLog.ID,
			StartAt: lastLog.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
