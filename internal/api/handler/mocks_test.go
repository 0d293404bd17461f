package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blaisecz/shift-coach/internal/domain"
)

// serve routes one request through a chi mux so URL params resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error)
	getFunc    func(ctx context.Context, userID, logID uuid.UUID) (*domain.SleepLog, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateSleepLogRequest) (*domain.SleepLog, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error)
}

func (m *MockSleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepLogRequest) (*domain.SleepLog, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepLog{
		ID:            uuid.New(),
		UserID:        userID,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		Quality:       req.Quality,
		Type:          req.Type,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, false, nil
}

func (m *MockSleepLogService) Get(ctx context.Context, userID, logID uuid.UUID) (*domain.SleepLog, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, logID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepLogService) Update(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateSleepLogRequest) (*domain.SleepLog, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, logID, req)
	}
	return &domain.SleepLog{
		ID:            logID,
		UserID:        userID,
		StartAt:       time.Date(2024, 1, 16, 8, 30, 0, 0, time.UTC),
		EndAt:         time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC),
		Quality:       4,
		Type:          domain.SleepTypeMain,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockSleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) (*domain.SleepLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepLogListResponse{
		Data:       []domain.SleepLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockShiftService is a mock implementation of ShiftService
type MockShiftService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateShiftRequest) (*domain.Shift, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.Shift, error)
}

func (m *MockShiftService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateShiftRequest) (*domain.Shift, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Shift{ID: uuid.New(), UserID: userID, Date: req.Date, Label: req.Label, Type: domain.ShiftDay}, nil
}

func (m *MockShiftService) List(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.Shift, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, from, to)
	}
	return nil, nil
}

// MockDailyLogService is a mock implementation of DailyLogService
type MockDailyLogService struct {
	err error
}

func (m *MockDailyLogService) LogMood(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodLogRequest) (*domain.MoodLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.MoodLog{ID: uuid.New(), UserID: userID, Mood: req.Mood, Focus: req.Focus}, nil
}

func (m *MockDailyLogService) LogWater(ctx context.Context, userID uuid.UUID, req *domain.CreateWaterLogRequest) (*domain.WaterLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.WaterLog{ID: uuid.New(), UserID: userID, Ml: req.Ml}, nil
}

func (m *MockDailyLogService) LogCaffeine(ctx context.Context, userID uuid.UUID, req *domain.CreateCaffeineLogRequest) (*domain.CaffeineLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.CaffeineLog{ID: uuid.New(), UserID: userID, Mg: req.Mg}, nil
}

// MockWellnessService returns fixed results, or err for every call.
type MockWellnessService struct {
	err       error
	circadian *domain.CircadianOutput
	deficit   *domain.SleepDeficitResult
	stages    *domain.SleepStagePercentages
	steps     *domain.StepRecommendation
	today     *domain.DailyScores
	shiftLag  *domain.ShiftLagMetrics
	jetlag    *domain.SocialJetlagMetrics
}

func (m *MockWellnessService) Circadian(ctx context.Context, userID uuid.UUID) (*domain.CircadianOutput, error) {
	return m.circadian, m.err
}

func (m *MockWellnessService) SleepDeficit(ctx context.Context, userID uuid.UUID) (*domain.SleepDeficitResult, error) {
	return m.deficit, m.err
}

func (m *MockWellnessService) SleepStages(ctx context.Context, userID, logID uuid.UUID) (*domain.SleepStagePercentages, error) {
	return m.stages, m.err
}

func (m *MockWellnessService) Macros(ctx context.Context, userID uuid.UUID) (*domain.MacroTargets, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.today.Macros, nil
}

func (m *MockWellnessService) Steps(ctx context.Context, userID uuid.UUID) (*domain.StepRecommendation, error) {
	return m.steps, m.err
}

func (m *MockWellnessService) ShiftLag(ctx context.Context, userID uuid.UUID) (*domain.ShiftLagMetrics, error) {
	return m.shiftLag, m.err
}

func (m *MockWellnessService) SocialJetlag(ctx context.Context, userID uuid.UUID) (*domain.SocialJetlagMetrics, error) {
	return m.jetlag, m.err
}

func (m *MockWellnessService) Today(ctx context.Context, userID uuid.UUID) (*domain.DailyScores, error) {
	return m.today, m.err
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	err      error
	state    *domain.CoachingState
	tip      *domain.CoachTipResponse
	feedback []*domain.TipFeedbackRequest
}

func (m *MockCoachService) State(ctx context.Context, userID uuid.UUID) (*domain.CoachingState, error) {
	return m.state, m.err
}

func (m *MockCoachService) Tip(ctx context.Context, userID uuid.UUID) (*domain.CoachTipResponse, error) {
	return m.tip, m.err
}

func (m *MockCoachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.TipFeedbackRequest) error {
	if m.err != nil {
		return m.err
	}
	m.feedback = append(m.feedback, req)
	return nil
}
