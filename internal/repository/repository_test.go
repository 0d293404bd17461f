package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blaisecz/shift-coach/internal/domain"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestSleepLogRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSleepLogRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sleep_logs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSleepLogRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSleepLogRepository(db)

	id, userID := uuid.New(), uuid.New()
	start := time.Date(2024, 1, 16, 8, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "start_at", "end_at", "quality", "type", "local_timezone"}).
		AddRow(id.String(), userID.String(), start, start.Add(6*time.Hour), 4, "main", "Europe/Prague")
	mock.ExpectQuery(`SELECT \* FROM "sleep_logs" WHERE id = \$1`).
		WillReturnRows(rows)

	log, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, userID, log.UserID)
	assert.Equal(t, domain.SleepTypeMain, log.Type)
	assert.Equal(t, 6.0, log.Hours())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSleepLogRepository_HasOverlap(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)
	end := start.Add(7 * time.Hour)

	tests := []struct {
		name      string
		sleepType domain.SleepType
		query     string
		args      []driver.Value
		count     int
		want      bool
	}{
		{
			name:      "main checks every stored sleep",
			sleepType: domain.SleepTypeMain,
			query:     `SELECT count\(\*\) FROM "sleep_logs" WHERE user_id = \$1 AND start_at < \$2 AND end_at > \$3`,
			args:      []driver.Value{userID, end, start},
			count:     1,
			want:      true,
		},
		{
			name:      "nap only checks main sleeps",
			sleepType: domain.SleepTypeNap,
			query:     `SELECT count\(\*\) FROM "sleep_logs" WHERE user_id = \$1 AND start_at < \$2 AND end_at > \$3 AND type = \$4`,
			args:      []driver.Value{userID, end, start, domain.SleepTypeMain},
			count:     0,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewSleepLogRepository(db)

			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.HasOverlap(context.Background(), userID, start, end, tt.sleepType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSleepLogRepository_HasOverlapExcluding(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSleepLogRepository(db)

	userID, logID := uuid.New(), uuid.New()
	start := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sleep_logs" WHERE .* AND id <> \$5`).
		WithArgs(userID, end, start, domain.SleepTypeMain, logID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	got, err := repo.HasOverlapExcluding(context.Background(), userID, logID, start, end, domain.SleepTypeNap)
	require.NoError(t, err)
	assert.False(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSleepLogRepository_GetByClientRequestID_MissingIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSleepLogRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sleep_logs" WHERE user_id = \$1 AND client_request_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.GetByClientRequestID(context.Background(), uuid.New(), "req-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSleepLogRepository_List_RejectsBadCursor(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSleepLogRepository(db)

	_, err := repo.List(context.Background(), uuid.New(), domain.SleepLogFilter{Cursor: "%%%"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSleepLogRepository_ListByEndRange_PropagatesErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSleepLogRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT \* FROM "sleep_logs" WHERE user_id = \$1 AND \(end_at >= \$2 AND end_at <= \$3\) ORDER BY start_at DESC`).
		WillReturnError(boom)

	_, err := repo.ListByEndRange(context.Background(), uuid.New(), time.Now().Add(-24*time.Hour), time.Now())
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Exists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	a, b := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT "id" FROM "users" ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(a.String()).AddRow(b.String()))

	ids, err := repo.ListIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_RecentLabels(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShiftRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT "label" FROM "shifts" WHERE user_id = \$1 AND date < \$2 ORDER BY date DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"label"}).AddRow("NIGHT").AddRow("OFF").AddRow("DAY"))

	labels, err := repo.RecentLabels(context.Background(), userID, "2024-01-16", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"NIGHT", "OFF", "DAY"}, labels)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_GetByDate_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShiftRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "shifts" WHERE user_id = \$1 AND date = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByDate(context.Background(), uuid.New(), "2024-01-16")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLogRepository_LatestMood_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDailyLogRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "mood_logs" WHERE user_id = \$1 AND logged_at <= \$2 ORDER BY logged_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.LatestMood(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLogRepository_ListWater(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDailyLogRepository(db)

	userID := uuid.New()
	from := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "water_logs" WHERE user_id = \$1 AND \(logged_at >= \$2 AND logged_at < \$3\) ORDER BY logged_at`).
		WithArgs(userID, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "ml", "logged_at"}).
			AddRow(uuid.NewString(), userID.String(), 500, from.Add(8*time.Hour)).
			AddRow(uuid.NewString(), userID.String(), 250, from.Add(12*time.Hour)))

	logs, err := repo.ListWater(context.Background(), userID, domain.TimeRange{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 750, logs[0].Ml+logs[1].Ml)
	require.NoError(t, mock.ExpectationsWereMet())
}
