package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blaisecz/shift-coach/internal/repository"
)

const defaultPrecomputeWorkers = 4

// PrecomputeReport summarises one precompute run.
type PrecomputeReport struct {
	Users    int           `json:"users" yaml:"users"`
	Computed int           `json:"computed" yaml:"computed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Took     time.Duration `json:"took" yaml:"took"`
}

// PrecomputeService fills the score cache for every user.
type PrecomputeService interface {
	// Run computes today's scores and coaching state for all users. Per-user
	// failures are counted, not returned.
	Run(ctx context.Context, now time.Time) (*PrecomputeReport, error)
}

type precomputeService struct {
	snapshots SnapshotService
	userRepo  repository.UserRepository
	scores    ScoreStore
	logger    *zap.Logger
	workers   int
}

func NewPrecomputeService(
	snapshots SnapshotService,
	userRepo repository.UserRepository,
	scores ScoreStore,
	logger *zap.Logger,
	workers int,
) PrecomputeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = defaultPrecomputeWorkers
	}
	return &precomputeService{
		snapshots: snapshots,
		userRepo:  userRepo,
		scores:    scoreStoreOrNoop(scores),
		logger:    logger.Named("precompute"),
		workers:   workers,
	}
}

func (s *precomputeService) Run(ctx context.Context, now time.Time) (*PrecomputeReport, error) {
	start := time.Now()
	ids, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	var computed, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, id := range ids {
		g.Go(func() error {
			if err := s.runOne(gctx, id, now); err != nil {
				failed.Add(1)
				s.logger.Warn("precompute failed", zap.Stringer("user_id", id), zap.Error(err))
				return nil
			}
			computed.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &PrecomputeReport{
		Users:    len(ids),
		Computed: int(computed.Load()),
		Failed:   int(failed.Load()),
		Took:     time.Since(start),
	}
	s.logger.Info("precompute finished",
		zap.Int("users", report.Users),
		zap.Int("computed", report.Computed),
		zap.Int("failed", report.Failed),
		zap.Duration("took", report.Took),
	)
	return report, nil
}

func (s *precomputeService) runOne(ctx context.Context, userID uuid.UUID, now time.Time) error {
	entry, _, err := computeEntry(ctx, s.snapshots, userID, now)
	if err != nil {
		return err
	}
	return s.scores.Put(ctx, entry)
}
