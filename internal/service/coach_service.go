package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/blaisecz/shift-coach/internal/langfuse"
	"github.com/blaisecz/shift-coach/internal/llm"
	"github.com/blaisecz/shift-coach/internal/repository"
)

const (
	coachTipTraceName = "coach-tip"
	feedbackScoreName = "tip_helpful"
	// llmTimeout bounds the enrichment call so a slow model degrades to the canned tip.
	llmTimeout = 8 * time.Second
)

// CoachService classifies the user's state and picks today's tip.
type CoachService interface {
	State(ctx context.Context, userID uuid.UUID) (*domain.CoachingState, error)
	// Tip always returns a usable message; language model failures fall back
	// to a canned one.
	Tip(ctx context.Context, userID uuid.UUID) (*domain.CoachTipResponse, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.TipFeedbackRequest) error
}

type coachService struct {
	snapshots      SnapshotService
	userRepo       repository.UserRepository
	scores         ScoreStore
	llmClient      llm.CoachTipLLM
	langfuseClient langfuse.Client
	logger         *zap.Logger
	now            func() time.Time
}

func NewCoachService(
	snapshots SnapshotService,
	userRepo repository.UserRepository,
	scores ScoreStore,
	llmClient llm.CoachTipLLM,
	langfuseClient langfuse.Client,
	logger *zap.Logger,
) CoachService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &coachService{
		snapshots:      snapshots,
		userRepo:       userRepo,
		scores:         scoreStoreOrNoop(scores),
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		logger:         logger.Named("coach"),
		now:            time.Now,
	}
}

func (s *coachService) State(ctx context.Context, userID uuid.UUID) (out *domain.CoachingState, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "CoachService.State", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	date := now.In(user.Location()).Format(domain.DateLayout)
	if entry, err := s.scores.Get(ctx, userID, date); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return &entry.State, nil
	}

	entry, _, err := computeEntry(ctx, s.snapshots, userID, now)
	if err != nil {
		return nil, err
	}
	if err := s.scores.Put(ctx, entry); err != nil {
		s.logger.Warn("score cache write failed", zap.Stringer("user_id", userID), zap.Error(err))
	}
	return &entry.State, nil
}

func (s *coachService) Tip(ctx context.Context, userID uuid.UUID) (out *domain.CoachTipResponse, err error) {
	now := s.now()
	ctx, span := startSpan(ctx, "CoachService.Tip", userSpanInput(userID, now),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, out, err) }()

	_, ev, err := computeEntry(ctx, s.snapshots, userID, now)
	if err != nil {
		return nil, err
	}
	state, err := ev.State()
	if err != nil {
		return nil, err
	}

	resp := &domain.CoachTipResponse{State: state}

	var injected []domain.Tip
	insight := ev.Insight()
	if tip, ok := engine.SleepInsightTip(&insight); ok {
		injected = append(injected, tip)
		resp.Insight = &insight
	}
	resp.Tip = engine.CoachTip(ev.TipContext(), injected...)

	tipCtx := &domain.CoachTipContext{
		UserID:        userID,
		Shift:         ev.Snapshot.Shift,
		State:         state,
		Tip:           resp.Tip,
		RhythmScore:   ev.Day.RhythmScore,
		RecoveryScore: ev.Day.RecoveryScore,
		SleepDebt:     ev.Day.SleepDebtHours,
	}
	resp.Message, resp.Source = s.phrase(ctx, tipCtx)
	span.SetAttributes(attribute.String("tip.source", string(resp.Source)))

	traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   coachTipTraceName,
		Input:  tipCtx,
		Output: map[string]any{"message": resp.Message, "source": resp.Source},
		Tags:   []string{"shift-coach", string(state.Status)},
		Metadata: map[string]any{
			"degraded_sources": ev.Snapshot.Degraded,
			"tip_score":        resp.Tip.Score,
		},
	})
	if err != nil {
		s.logger.Warn("langfuse trace failed", zap.Stringer("user_id", userID), zap.Error(err))
	}
	resp.TraceID = traceID
	return resp, nil
}

// phrase asks the language model to word the tip. Without a model the rule
// text is used as is; any model failure yields the canned message for the status.
func (s *coachService) phrase(ctx context.Context, tipCtx *domain.CoachTipContext) (string, domain.TipSource) {
	if s.llmClient == nil {
		return tipCtx.Tip.Body, domain.TipSourceRules
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	msg, err := s.llmClient.PhraseTip(ctx, tipCtx)
	switch {
	case err == nil:
		return msg, domain.TipSourceLLM
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		return tipCtx.Tip.Body, domain.TipSourceRules
	default:
		s.logger.Warn("tip enrichment failed, using fallback",
			zap.Stringer("user_id", tipCtx.UserID),
			zap.Bool("rate_limited", llm.IsRateLimited(err)),
			zap.Error(err),
		)
		return engine.FallbackTip(tipCtx.State.Status), domain.TipSourceFallback
	}
}

func (s *coachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.TipFeedbackRequest) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	score := langfuse.ScoreInput{TraceID: req.TraceID, Name: feedbackScoreName}
	if req.Helpful {
		score.Value = 1
	}
	if req.Comment != nil {
		score.Comment = *req.Comment
	}
	if err := s.langfuseClient.CreateScore(ctx, score); err != nil {
		return err
	}

	s.logger.Info("tip feedback recorded",
		zap.Stringer("user_id", userID),
		zap.String("trace_id", req.TraceID),
		zap.Bool("helpful", req.Helpful),
		zap.Bool("forwarded", s.langfuseClient.IsEnabled()),
	)
	return nil
}
