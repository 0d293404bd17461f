package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/cache"
	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/blaisecz/shift-coach/internal/repository"
)

// WellnessService exposes each calculator for a stored user.
type WellnessService interface {
	Circadian(ctx context.Context, userID uuid.UUID) (*domain.CircadianOutput, error)
	SleepDeficit(ctx context.Context, userID uuid.UUID) (*domain.SleepDeficitResult, error)
	SleepStages(ctx context.Context, userID, logID uuid.UUID) (*domain.SleepStagePercentages, error)
	Macros(ctx context.Context, userID uuid.UUID) (*domain.MacroTargets, error)
	Steps(ctx context.Context, userID uuid.UUID) (*domain.StepRecommendation, error)
	ShiftLag(ctx context.Context, userID uuid.UUID) (*domain.ShiftLagMetrics, error)
	SocialJetlag(ctx context.Context, userID uuid.UUID) (*domain.SocialJetlagMetrics, error)
	// Today returns the day's scores, from the score cache when present.
	Today(ctx context.Context, userID uuid.UUID) (*domain.DailyScores, error)
}

type wellnessService struct {
	snapshots    SnapshotService
	userRepo     repository.UserRepository
	sleepLogRepo repository.SleepLogRepository
	scores       ScoreStore
	logger       *zap.Logger
	now          func() time.Time
}

func NewWellnessService(
	snapshots SnapshotService,
	userRepo repository.UserRepository,
	sleepLogRepo repository.SleepLogRepository,
	scores ScoreStore,
	logger *zap.Logger,
) WellnessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &wellnessService{
		snapshots:    snapshots,
		userRepo:     userRepo,
		sleepLogRepo: sleepLogRepo,
		scores:       scoreStoreOrNoop(scores),
		logger:       logger.Named("wellness"),
		now:          time.Now,
	}
}

func userSpanInput(userID uuid.UUID, now time.Time) map[string]any {
	return map[string]any{"user_id": userID.String(), "now": now.UTC().Format(time.RFC3339)}
}

func (s *wellnessService) Circadian(ctx context.Context, userID uuid.UUID) (out *domain.CircadianOutput, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "WellnessService.Circadian", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	snap, err := s.snapshots.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return circadianFor(snap)
}

func (s *wellnessService) SleepDeficit(ctx context.Context, userID uuid.UUID) (out *domain.SleepDeficitResult, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "WellnessService.SleepDeficit", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	snap, err := s.snapshots.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	result, err := engine.CalculateSleepDeficit(snap.DailySleep(), snap.User.SleepGoalHours, snap.Now)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *wellnessService) SleepStages(ctx context.Context, userID, logID uuid.UUID) (out *domain.SleepStagePercentages, err error) {
	ctx, span := startSpan(ctx, "WellnessService.SleepStages",
		map[string]any{"user_id": userID.String(), "sleep_log_id": logID.String()},
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	log, err := s.sleepLogRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.UserID != userID {
		return nil, domain.ErrNotFound
	}

	loc := log.Location()
	start, end := log.StartAt.In(loc), log.EndAt.In(loc)
	bedtime := start.Hour()
	stages, err := engine.EstimateSleepStages(engine.StageInput{
		DurationHours: log.Hours(),
		Quality:       engine.RatingQuality(log.Quality),
		BedtimeHour:   &bedtime,
		DaySleep:      engine.ClassifySleepTiming(&start, &end) == domain.SleepTimingDaySleep,
	})
	if err != nil {
		return nil, err
	}
	return &stages, nil
}

func (s *wellnessService) Macros(ctx context.Context, userID uuid.UUID) (*domain.MacroTargets, error) {
	day, err := s.Today(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &day.Macros, nil
}

func (s *wellnessService) Steps(ctx context.Context, userID uuid.UUID) (out *domain.StepRecommendation, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "WellnessService.Steps", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	snap, err := s.snapshots.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	ev, err := Evaluate(snap)
	if err != nil {
		return nil, err
	}

	in := engine.StepInput{Shift: snap.Shift}
	if main, ok := snap.LatestMain(); ok {
		h := main.Hours()
		in.LastMainSleepHours = &h
	}
	recovery := float64(ev.Day.RecoveryScore)
	in.RecoveryScore = &recovery

	rec, err := engine.RecommendSteps(in)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *wellnessService) ShiftLag(ctx context.Context, userID uuid.UUID) (out *domain.ShiftLagMetrics, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "WellnessService.ShiftLag", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	snap, err := s.snapshots.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	lag, err := engine.CalculateShiftLag(engine.ShiftLagInput{
		Now:    snap.Now,
		Sleeps: snap.DailySleep(),
		Shifts: snap.ShiftSpans(),
	})
	if err != nil {
		return nil, err
	}
	return &lag, nil
}

func (s *wellnessService) SocialJetlag(ctx context.Context, userID uuid.UUID) (out *domain.SocialJetlagMetrics, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "WellnessService.SocialJetlag", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	snap, err := s.snapshots.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	jetlag := engine.CalculateSocialJetlag(snap.Periods(), snap.Now)
	return &jetlag, nil
}

func (s *wellnessService) Today(ctx context.Context, userID uuid.UUID) (out *domain.DailyScores, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "WellnessService.Today", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	date := now.In(user.Location()).Format(domain.DateLayout)

	entry, err := s.scores.Get(ctx, userID, date)
	switch {
	case err == nil:
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return &entry.Day, nil
	case !errors.Is(err, domain.ErrCacheMiss):
		s.logger.Warn("score cache read failed", zap.Stringer("user_id", userID), zap.Error(err))
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	entry, _, err = computeEntry(ctx, s.snapshots, userID, now)
	if err != nil {
		return nil, err
	}
	if err := s.scores.Put(ctx, entry); err != nil {
		s.logger.Warn("score cache write failed", zap.Stringer("user_id", userID), zap.Error(err))
	}
	return &entry.Day, nil
}

// computeEntry evaluates a fresh snapshot into a cacheable entry.
func computeEntry(ctx context.Context, snapshots SnapshotService, userID uuid.UUID, now time.Time) (*cache.DailyEntry, *Evaluation, error) {
	snap, err := snapshots.Load(ctx, userID, now)
	if err != nil {
		return nil, nil, err
	}
	ev, err := Evaluate(snap)
	if err != nil {
		return nil, nil, err
	}
	state, err := ev.State()
	if err != nil {
		return nil, nil, err
	}
	return &cache.DailyEntry{
		UserID:     userID,
		Day:        ev.Day,
		State:      state,
		ComputedAt: now.UTC(),
	}, ev, nil
}
