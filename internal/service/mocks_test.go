package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/shift-coach/internal/cache"
	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/langfuse"
	"github.com/google/uuid"
)

// MockSleepLogRepository is a mock implementation of SleepLogRepository
type MockSleepLogRepository struct {
	logs            map[uuid.UUID]*domain.SleepLog
	clientRequestID map[string]*domain.SleepLog
	listResult      []domain.SleepLog
	err             error
}

func NewMockSleepLogRepository() *MockSleepLogRepository {
	return &MockSleepLogRepository{
		logs:            make(map[uuid.UUID]*domain.SleepLog),
		clientRequestID: make(map[string]*domain.SleepLog),
	}
}

func (m *MockSleepLogRepository) add(log *domain.SleepLog) *domain.SleepLog {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	m.logs[log.ID] = log
	return log
}

func (m *MockSleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	if m.err != nil {
		return m.err
	}
	log.CreatedAt = time.Now()
	m.add(log)
	if log.ClientRequestID != nil {
		key := log.UserID.String() + ":" + *log.ClientRequestID
		m.clientRequestID[key] = log
	}
	return nil
}

func (m *MockSleepLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	log, ok := m.logs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return log, nil
}

func (m *MockSleepLogRepository) Update(ctx context.Context, log *domain.SleepLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs[log.ID] = log
	return nil
}

func (m *MockSleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepLog, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, *log)
		}
	}
	return result, nil
}

// overlaps mirrors the repository rule: main sleeps collide with anything,
// naps only with main sleeps.
func (m *MockSleepLogRepository) overlaps(userID, excludeID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) bool {
	for _, log := range m.logs {
		if log.UserID != userID || log.ID == excludeID {
			continue
		}
		if sleepType == domain.SleepTypeNap && log.Type == domain.SleepTypeNap {
			continue
		}
		if startAt.Before(log.EndAt) && endAt.After(log.StartAt) {
			return true
		}
	}
	return false
}

func (m *MockSleepLogRepository) HasOverlap(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.overlaps(userID, uuid.Nil, startAt, endAt, sleepType), nil
}

func (m *MockSleepLogRepository) HasOverlapExcluding(ctx context.Context, userID uuid.UUID, excludeID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.overlaps(userID, excludeID, startAt, endAt, sleepType), nil
}

func (m *MockSleepLogRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	log, ok := m.clientRequestID[userID.String()+":"+clientRequestID]
	if !ok {
		return nil, nil
	}
	return log, nil
}

func (m *MockSleepLogRepository) ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepLog
	for _, log := range m.logs {
		if log.UserID == userID && !log.EndAt.Before(from) && !log.EndAt.After(to) {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.After(result[j].StartAt) })
	return result, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uuid.UUID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockShiftRepository is a mock implementation of ShiftRepository
type MockShiftRepository struct {
	shifts map[string]*domain.Shift // user:date
	recent []string
	err    error
}

func NewMockShiftRepository() *MockShiftRepository {
	return &MockShiftRepository{shifts: make(map[string]*domain.Shift)}
}

func (m *MockShiftRepository) Upsert(ctx context.Context, shift *domain.Shift) error {
	if m.err != nil {
		return m.err
	}
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	m.shifts[shift.UserID.String()+":"+shift.Date] = shift
	return nil
}

func (m *MockShiftRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.Shift, error) {
	if m.err != nil {
		return nil, m.err
	}
	shift, ok := m.shifts[userID.String()+":"+date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return shift, nil
}

func (m *MockShiftRepository) ListRange(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.Shift, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Shift
	for _, s := range m.shifts {
		if s.UserID == userID && s.Date >= fromDate && s.Date <= toDate {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *MockShiftRepository) RecentLabels(ctx context.Context, userID uuid.UUID, beforeDate string, n int) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.recent, nil
}

// MockDailyLogRepository is a mock implementation of DailyLogRepository.
// block makes the list calls wait for their context to end.
type MockDailyLogRepository struct {
	moods    []domain.MoodLog
	water    []domain.WaterLog
	caffeine []domain.CaffeineLog
	err      error
	waterErr error
	block    bool
}

func (m *MockDailyLogRepository) CreateMood(ctx context.Context, log *domain.MoodLog) error {
	if m.err != nil {
		return m.err
	}
	log.ID = uuid.New()
	m.moods = append(m.moods, *log)
	return nil
}

func (m *MockDailyLogRepository) CreateWater(ctx context.Context, log *domain.WaterLog) error {
	if m.err != nil {
		return m.err
	}
	log.ID = uuid.New()
	m.water = append(m.water, *log)
	return nil
}

func (m *MockDailyLogRepository) CreateCaffeine(ctx context.Context, log *domain.CaffeineLog) error {
	if m.err != nil {
		return m.err
	}
	log.ID = uuid.New()
	m.caffeine = append(m.caffeine, *log)
	return nil
}

func (m *MockDailyLogRepository) LatestMood(ctx context.Context, userID uuid.UUID, t time.Time) (*domain.MoodLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.MoodLog
	for i := range m.moods {
		mood := &m.moods[i]
		if mood.UserID != userID || mood.LoggedAt.After(t) {
			continue
		}
		if latest == nil || mood.LoggedAt.After(latest.LoggedAt) {
			latest = mood
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

func (m *MockDailyLogRepository) ListWater(ctx context.Context, userID uuid.UUID, r domain.TimeRange) ([]domain.WaterLog, error) {
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.waterErr != nil {
		return nil, m.waterErr
	}
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WaterLog
	for _, w := range m.water {
		if w.UserID == userID && !w.LoggedAt.Before(r.From) && w.LoggedAt.Before(r.To) {
			result = append(result, w)
		}
	}
	return result, nil
}

func (m *MockDailyLogRepository) ListCaffeine(ctx context.Context, userID uuid.UUID, r domain.TimeRange) ([]domain.CaffeineLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.CaffeineLog
	for _, c := range m.caffeine {
		if c.UserID == userID && !c.LoggedAt.Before(r.From) && c.LoggedAt.Before(r.To) {
			result = append(result, c)
		}
	}
	return result, nil
}

// MockScoreStore is an in-memory ScoreStore that records invalidations.
type MockScoreStore struct {
	mu          sync.Mutex
	entries     map[string]*cache.DailyEntry
	invalidated []string
	getErr      error
	putErr      error
}

func NewMockScoreStore() *MockScoreStore {
	return &MockScoreStore{entries: make(map[string]*cache.DailyEntry)}
}

func (m *MockScoreStore) Get(ctx context.Context, userID uuid.UUID, date string) (*cache.DailyEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	e, ok := m.entries[cache.Key(userID, date)]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return e, nil
}

func (m *MockScoreStore) Put(ctx context.Context, e *cache.DailyEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[cache.Key(e.UserID, e.Day.Date)] = e
	return nil
}

func (m *MockScoreStore) Invalidate(ctx context.Context, userID uuid.UUID, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, cache.Key(userID, date))
	m.invalidated = append(m.invalidated, date)
	return nil
}

func (m *MockScoreStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// MockCoachTipLLM is a mock implementation of llm.CoachTipLLM
type MockCoachTipLLM struct {
	message string
	err     error
	calls   int
	got     *domain.CoachTipContext
}

func (m *MockCoachTipLLM) PhraseTip(ctx context.Context, tipCtx *domain.CoachTipContext) (string, error) {
	m.calls++
	m.got = tipCtx
	if m.err != nil {
		return "", m.err
	}
	return m.message, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	if m.err != nil {
		return "", m.err
	}
	m.traces = append(m.traces, in)
	return "b6a7f0a2-4a53-4e22-8b8e-1a6fb1f1f2c1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.err != nil {
		return m.err
	}
	if m.enabled {
		m.scores = append(m.scores, in)
	}
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }

func (m *MockLangfuseClient) Ping(ctx context.Context) error { return nil }

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func sleepTypePtr(t domain.SleepType) *domain.SleepType {
	return &t
}

func timePtr(t time.Time) *time.Time {
	return &t
}
