// Package seed fills an empty database with a few shift workers on a rotating
// roster, with sleep, mood, water and caffeine history to match.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 14

// rotation is a two-on, two-night, three-off pattern with a late shift.
var rotation = []string{"DAY", "DAY", "NIGHT", "NIGHT", "OFF", "OFF", "LATE"}

var seedNamespace = uuid.MustParse("5c0ac4e1-6d0b-4a3a-9d59-5ee0c0ac4e11")

// Dataset is everything Run writes.
type Dataset struct {
	Users     []domain.User
	Shifts    []domain.Shift
	SleepLogs []domain.SleepLog
	Moods     []domain.MoodLog
	Water     []domain.WaterLog
	Caffeine  []domain.CaffeineLog
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.SleepLog{},
		&domain.Shift{},
		&domain.MoodLog{},
		&domain.WaterLog{},
		&domain.CaffeineLog{},
	)
}

// Run seeds the database with sample users and their history. Safe to call multiple times.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	ds := Build(time.Now().UTC(), rand.New(rand.NewSource(time.Now().UnixNano())))

	for i := range ds.Users {
		u := ds.Users[i]
		if err := db.Where("id = ?", u.ID).FirstOrCreate(&u).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.ID, err)
		}
	}
	for i := range ds.Shifts {
		s := ds.Shifts[i]
		if err := db.Where("user_id = ? AND date = ?", s.UserID, s.Date).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}
	}
	for i := range ds.SleepLogs {
		l := ds.SleepLogs[i]
		if err := db.Where("client_request_id = ?", *l.ClientRequestID).FirstOrCreate(&l).Error; err != nil {
			return fmt.Errorf("failed to create sleep log: %w", err)
		}
	}
	if err := createByID(db, ds.Moods); err != nil {
		return fmt.Errorf("failed to create mood log: %w", err)
	}
	if err := createByID(db, ds.Water); err != nil {
		return fmt.Errorf("failed to create water log: %w", err)
	}
	if err := createByID(db, ds.Caffeine); err != nil {
		return fmt.Errorf("failed to create caffeine log: %w", err)
	}

	logger.Info("seed completed",
		zap.Int("users", len(ds.Users)),
		zap.Int("shifts", len(ds.Shifts)),
		zap.Int("sleep_logs", len(ds.SleepLogs)),
	)
	return nil
}

func createByID[T any](db *gorm.DB, rows []T) error {
	for i := range rows {
		if err := db.FirstOrCreate(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Build generates the sample data for the seededDays local days before now.
// Nothing in the result lies after now.
func Build(now time.Time, rng *rand.Rand) Dataset {
	users := Users()
	ds := Dataset{Users: users}
	for ui := range users {
		g := generator{user: &users[ui], now: now, rng: rng, offset: ui * 2}
		g.run(&ds)
	}
	return ds
}

// Users are the sample shift workers, one per timezone.
func Users() []domain.User {
	return []domain.User{
		newUser("11111111-1111-1111-1111-111111111111", "Europe/Amsterdam", 7.5, 82, domain.GoalMaintain),
		newUser("22222222-2222-2222-2222-222222222222", "America/New_York", 8, 95, domain.GoalLose),
		newUser("33333333-3333-3333-3333-333333333333", "Asia/Tokyo", 7, 64, domain.GoalGain),
		newUser("44444444-4444-4444-4444-444444444444", "Australia/Sydney", 7.5, 78, domain.GoalMaintain),
	}
}

func newUser(id, tz string, goal, weight float64, g domain.Goal) domain.User {
	return domain.User{
		ID:             uuid.MustParse(id),
		Timezone:       tz,
		SleepGoalHours: goal,
		WeightKg:       weight,
		Goal:           g,
		WaterGoalMl:    domain.DefaultWaterGoalMl,
	}
}

type generator struct {
	user   *domain.User
	now    time.Time
	rng    *rand.Rand
	offset int
}

func (g *generator) run(ds *Dataset) {
	loc := g.user.Location()
	today := g.now.In(loc)
	first := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -seededDays)

	prevLabel := ""
	for i := 0; i <= seededDays; i++ {
		day := first.AddDate(0, 0, i)
		label := rotation[(i+g.offset)%len(rotation)]
		if i < seededDays {
			ds.Shifts = append(ds.Shifts, g.shift(day, label))
		}

		switch {
		case prevLabel == "NIGHT":
			g.sleep(ds, day, 8, 30, 330+g.rng.Intn(90), domain.SleepTypeMain, i)
		case label == "NIGHT":
			g.sleep(ds, day, 14, 0, 60+g.rng.Intn(30), domain.SleepTypeNap, i)
		default:
			g.sleep(ds, day, 22, 30+g.rng.Intn(30), 360+g.rng.Intn(150), domain.SleepTypeMain, i)
		}
		g.daily(ds, day, label, i)
		prevLabel = label
	}
}

func (g *generator) shift(day time.Time, label string) domain.Shift {
	s := domain.Shift{
		ID:     g.id("shift", day.Format(domain.DateLayout)),
		UserID: g.user.ID,
		Date:   day.Format(domain.DateLayout),
		Label:  label,
	}
	var startHour, hours int
	switch label {
	case "DAY":
		startHour, hours = 7, 12
	case "NIGHT":
		startHour, hours = 19, 12
	case "LATE":
		startHour, hours = 14, 8
	}
	if hours > 0 {
		start := day.Add(time.Duration(startHour) * time.Hour)
		end := start.Add(time.Duration(hours) * time.Hour)
		s.StartAt, s.EndAt = &start, &end
	}
	s.Type = engine.ClassifyShift(label, s.StartAt, nil)
	return s
}

func (g *generator) sleep(ds *Dataset, day time.Time, hour, minute, minutes int, t domain.SleepType, i int) {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	end := start.Add(time.Duration(minutes) * time.Minute)
	if end.After(g.now) {
		return
	}
	reqID := fmt.Sprintf("seed-%s-%s-%d", t, g.user.ID, i)
	ds.SleepLogs = append(ds.SleepLogs, domain.SleepLog{
		ID:              g.id("sleep", reqID),
		UserID:          g.user.ID,
		StartAt:         start.UTC(),
		EndAt:           end.UTC(),
		Quality:         1 + g.rng.Intn(5),
		Type:            t,
		LocalTimezone:   g.user.Timezone,
		ClientRequestID: &reqID,
	})
}

// daily logs a mood check-in, three drinks and one or two coffees, anchored
// to the middle of the waking part of the day.
func (g *generator) daily(ds *Dataset, day time.Time, label string, i int) {
	anchor := day.Add(10 * time.Hour)
	if label == "NIGHT" {
		anchor = day.Add(18 * time.Hour)
	}
	key := fmt.Sprintf("%d", i)

	if at := anchor.Add(6 * time.Hour); !at.After(g.now) {
		ds.Moods = append(ds.Moods, domain.MoodLog{
			ID: g.id("mood", key), UserID: g.user.ID,
			Mood: 1 + g.rng.Intn(5), Focus: 1 + g.rng.Intn(5), LoggedAt: at.UTC(),
		})
	}
	for d := 0; d < 3; d++ {
		at := anchor.Add(time.Duration(d*3) * time.Hour)
		if at.After(g.now) {
			break
		}
		ds.Water = append(ds.Water, domain.WaterLog{
			ID: g.id("water", fmt.Sprintf("%s-%d", key, d)), UserID: g.user.ID,
			Ml: 250 * (1 + g.rng.Intn(3)), LoggedAt: at.UTC(),
		})
	}
	for c := 0; c < 1+g.rng.Intn(2); c++ {
		at := anchor.Add(time.Duration(c*4) * time.Hour)
		if at.After(g.now) {
			break
		}
		ds.Caffeine = append(ds.Caffeine, domain.CaffeineLog{
			ID: g.id("caffeine", fmt.Sprintf("%s-%d", key, c)), UserID: g.user.ID,
			Mg: 80 + 40*g.rng.Intn(3), LoggedAt: at.UTC(),
		})
	}
}

// id is stable across runs so reseeding does not duplicate rows.
func (g *generator) id(kind, key string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+"/"+g.user.ID.String()+"/"+key))
}
