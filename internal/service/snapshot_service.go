package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/blaisecz/shift-coach/internal/repository"
)

const (
	SnapshotSleepDays = 14
	SnapshotShiftDays = 14
	// A mood check-in older than this no longer describes the user.
	moodMaxAge          = 24 * time.Hour
	defaultFetchTimeout = 3 * time.Second
)

// Snapshot sources, as reported in Snapshot.Degraded.
const (
	SourceShifts   = "shifts"
	SourceSleeps   = "sleep_logs"
	SourceWater    = "water_logs"
	SourceCaffeine = "caffeine_logs"
	SourceMood     = "mood_logs"
)

// Snapshot is one user's recent history as of Now, which is in the user's location.
type Snapshot struct {
	User     *domain.User
	Now      time.Time
	Shift    domain.ShiftType
	Shifts   []domain.Shift
	Sleeps   []domain.SleepLog
	Water    []domain.WaterLog
	Caffeine []domain.CaffeineLog
	Mood     *domain.MoodLog
	// Degraded lists the sources that failed and were replaced by defaults.
	Degraded []string
}

// SnapshotService gathers the inputs for the wellness engine.
type SnapshotService interface {
	// Load fetches every source concurrently. A source that fails or times
	// out is logged and left at its default; only the user lookup is fatal.
	Load(ctx context.Context, userID uuid.UUID, now time.Time) (*Snapshot, error)
}

type snapshotService struct {
	userRepo     repository.UserRepository
	sleepLogRepo repository.SleepLogRepository
	shiftRepo    repository.ShiftRepository
	dailyLogRepo repository.DailyLogRepository
	logger       *zap.Logger
	fetchTimeout time.Duration
}

func NewSnapshotService(
	userRepo repository.UserRepository,
	sleepLogRepo repository.SleepLogRepository,
	shiftRepo repository.ShiftRepository,
	dailyLogRepo repository.DailyLogRepository,
	logger *zap.Logger,
) SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &snapshotService{
		userRepo:     userRepo,
		sleepLogRepo: sleepLogRepo,
		shiftRepo:    shiftRepo,
		dailyLogRepo: dailyLogRepo,
		logger:       logger.Named("snapshot"),
		fetchTimeout: defaultFetchTimeout,
	}
}

func (s *snapshotService) Load(ctx context.Context, userID uuid.UUID, now time.Time) (*Snapshot, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := user.Location()
	now = now.In(loc)
	today := startOfDay(now)
	todayRange := domain.TimeRange{From: today, To: today.AddDate(0, 0, 1)}

	snap := &Snapshot{User: user, Now: now, Shift: domain.ShiftDay}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	fetch := func(source string, fn func(ctx context.Context) error) {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
			defer cancel()
			if err := fn(fctx); err != nil {
				s.logger.Warn("source unavailable, using defaults",
					zap.String("source", source),
					zap.Stringer("user_id", userID),
					zap.Error(err),
				)
				mu.Lock()
				snap.Degraded = append(snap.Degraded, source)
				mu.Unlock()
			}
			return nil
		})
	}

	fetch(SourceShifts, func(ctx context.Context) error {
		from := today.AddDate(0, 0, -(SnapshotShiftDays - 1)).Format(domain.DateLayout)
		shifts, err := s.shiftRepo.ListRange(ctx, userID, from, today.Format(domain.DateLayout))
		if err != nil {
			return err
		}
		snap.Shifts = shifts
		for _, sh := range shifts {
			if sh.Date == today.Format(domain.DateLayout) && sh.Type.Valid() {
				snap.Shift = sh.Type
			}
		}
		return nil
	})
	fetch(SourceSleeps, func(ctx context.Context) error {
		logs, err := s.sleepLogRepo.ListByEndRange(ctx, userID, now.AddDate(0, 0, -SnapshotSleepDays), now)
		if err != nil {
			return err
		}
		snap.Sleeps = logs
		return nil
	})
	fetch(SourceWater, func(ctx context.Context) error {
		logs, err := s.dailyLogRepo.ListWater(ctx, userID, todayRange)
		if err != nil {
			return err
		}
		snap.Water = logs
		return nil
	})
	fetch(SourceCaffeine, func(ctx context.Context) error {
		logs, err := s.dailyLogRepo.ListCaffeine(ctx, userID, todayRange)
		if err != nil {
			return err
		}
		snap.Caffeine = logs
		return nil
	})
	fetch(SourceMood, func(ctx context.Context) error {
		mood, err := s.dailyLogRepo.LatestMood(ctx, userID, now)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if now.Sub(mood.LoggedAt) <= moodMaxAge {
			snap.Mood = mood
		}
		return nil
	})

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(snap.Degraded)
	return snap, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Location is the user's home timezone.
func (s *Snapshot) Location() *time.Location {
	return s.Now.Location()
}

// Periods converts the sleep logs for the engine.
func (s *Snapshot) Periods() []engine.SleepPeriod {
	return s.PeriodsSince(time.Time{})
}

// PeriodsSince converts the sleep logs that ended after since.
func (s *Snapshot) PeriodsSince(since time.Time) []engine.SleepPeriod {
	out := make([]engine.SleepPeriod, 0, len(s.Sleeps))
	for _, l := range s.Sleeps {
		if !l.EndAt.After(since) {
			continue
		}
		out = append(out, engine.SleepPeriod{Start: l.StartAt, End: l.EndAt, Nap: l.Type == domain.SleepTypeNap})
	}
	return out
}

func (s *Snapshot) RatedSleeps() []engine.RatedSleep {
	out := make([]engine.RatedSleep, 0, len(s.Sleeps))
	for _, l := range s.Sleeps {
		out = append(out, engine.RatedSleep{
			SleepPeriod: engine.SleepPeriod{Start: l.StartAt, End: l.EndAt, Nap: l.Type == domain.SleepTypeNap},
			Quality:     l.Quality,
		})
	}
	return out
}

// DailySleep credits each sleep to the local day, in the user's timezone, it ended on.
func (s *Snapshot) DailySleep() []engine.DailySleep {
	loc := s.Location()
	out := make([]engine.DailySleep, 0, len(s.Sleeps))
	for _, l := range s.Sleeps {
		out = append(out, engine.DailySleep{
			Date:    l.EndAt.In(loc).Format(domain.DateLayout),
			Minutes: l.EndAt.Sub(l.StartAt).Minutes(),
		})
	}
	return out
}

func (s *Snapshot) CaffeineIntake() []engine.Intake {
	out := make([]engine.Intake, 0, len(s.Caffeine))
	for _, c := range s.Caffeine {
		out = append(out, engine.Intake{At: c.LoggedAt, Amount: c.Mg})
	}
	return out
}

func (s *Snapshot) WaterMl() int {
	var ml int
	for _, w := range s.Water {
		ml += w.Ml
	}
	return ml
}

// NightShifts counts rostered night shifts in the last week.
func (s *Snapshot) NightShifts() int {
	weekAgo := startOfDay(s.Now).AddDate(0, 0, -6).Format(domain.DateLayout)
	var n int
	for _, sh := range s.Shifts {
		if sh.Type == domain.ShiftNight && sh.Date >= weekAgo {
			n++
		}
	}
	return n
}

// ShiftSpans converts the rostered shifts for the shift lag score.
func (s *Snapshot) ShiftSpans() []engine.ShiftSpan {
	out := make([]engine.ShiftSpan, 0, len(s.Shifts))
	for _, sh := range s.Shifts {
		out = append(out, engine.ShiftSpan{Date: sh.Date, Label: sh.Label, Type: sh.Type, Start: sh.StartAt, End: sh.EndAt})
	}
	return out
}

// SleepHoursSince sums sleep that ended after since, nil when there is none.
func (s *Snapshot) SleepHoursSince(since time.Time) *float64 {
	var h float64
	for _, l := range s.Sleeps {
		if l.EndAt.After(since) && !l.EndAt.After(s.Now) {
			h += l.Hours()
		}
	}
	if h == 0 {
		return nil
	}
	return &h
}

// LatestMain is the most recent main sleep.
func (s *Snapshot) LatestMain() (*domain.SleepLog, bool) {
	var latest *domain.SleepLog
	for i := range s.Sleeps {
		l := &s.Sleeps[i]
		if l.Type != domain.SleepTypeMain {
			continue
		}
		if latest == nil || l.StartAt.After(latest.StartAt) {
			latest = l
		}
	}
	return latest, latest != nil
}
