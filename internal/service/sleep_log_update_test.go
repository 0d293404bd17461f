package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/google/uuid"
)

func TestSleepLogService_Update(t *testing.T) {
	userID := uuid.New()
	logID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	baseLog := domain.SleepLog{
		ID:            logID,
		UserID:        userID,
		StartAt:       time.Date(2024, 1, 16, 8, 30, 0, 0, time.UTC),
		EndAt:         time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC),
		Quality:       3,
		Type:          domain.SleepTypeMain,
		LocalTimezone: "UTC",
	}
	withBase := func(repo *MockSleepLogRepository) {
		logCopy := baseLog
		repo.logs[logID] = &logCopy
	}

	tests := []struct {
		name      string
		req       *domain.UpdateSleepLogRequest
		setupLogs func(*MockSleepLogRepository)
		wantErr   error
		validate  func(*testing.T, *domain.SleepLog)
	}{
		{
			name:      "update quality only",
			req:       &domain.UpdateSleepLogRequest{Quality: intPtr(5)},
			setupLogs: withBase,
			validate: func(t *testing.T, log *domain.SleepLog) {
				if log.Quality != 5 {
					t.Errorf("Quality = %d, want 5", log.Quality)
				}
				if log.Type != domain.SleepTypeMain {
					t.Errorf("Type changed unexpectedly to %s", log.Type)
				}
			},
		},
		{
			name:      "downgrade main sleep to nap",
			req:       &domain.UpdateSleepLogRequest{Type: sleepTypePtr(domain.SleepTypeNap)},
			setupLogs: withBase,
			validate: func(t *testing.T, log *domain.SleepLog) {
				if log.Type != domain.SleepTypeNap {
					t.Errorf("Type = %s, want nap", log.Type)
				}
			},
		},
		{
			name: "update start and end times",
			req: &domain.UpdateSleepLogRequest{
				StartAt: timePtr(time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)),
				EndAt:   timePtr(time.Date(2024, 1, 16, 16, 0, 0, 0, time.UTC)),
			},
			setupLogs: withBase,
			validate: func(t *testing.T, log *domain.SleepLog) {
				if log.Hours() != 7 {
					t.Errorf("Hours() = %v, want 7", log.Hours())
				}
			},
		},
		{
			name:      "update timezone",
			req:       &domain.UpdateSleepLogRequest{LocalTimezone: strPtr("America/New_York")},
			setupLogs: withBase,
			validate: func(t *testing.T, log *domain.SleepLog) {
				if log.LocalTimezone != "America/New_York" {
					t.Errorf("LocalTimezone = %s, want America/New_York", log.LocalTimezone)
				}
			},
		},
		{
			name:      "empty timezone is ignored",
			req:       &domain.UpdateSleepLogRequest{LocalTimezone: strPtr("")},
			setupLogs: withBase,
			validate: func(t *testing.T, log *domain.SleepLog) {
				if log.LocalTimezone != "UTC" {
					t.Errorf("LocalTimezone = %s, want UTC", log.LocalTimezone)
				}
			},
		},
		{
			name:    "log not found",
			req:     &domain.UpdateSleepLogRequest{Quality: intPtr(4)},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "end time before start time",
			req: &domain.UpdateSleepLogRequest{
				EndAt: timePtr(time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)),
			},
			setupLogs: withBase,
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name: "moving into another main sleep",
			req: &domain.UpdateSleepLogRequest{
				StartAt: timePtr(time.Date(2024, 1, 16, 22, 0, 0, 0, time.UTC)),
				EndAt:   timePtr(time.Date(2024, 1, 17, 6, 0, 0, 0, time.UTC)),
			},
			setupLogs: func(repo *MockSleepLogRepository) {
				withBase(repo)
				repo.add(&domain.SleepLog{
					UserID:  userID,
					StartAt: time.Date(2024, 1, 16, 23, 0, 0, 0, time.UTC),
					EndAt:   time.Date(2024, 1, 17, 7, 0, 0, 0, time.UTC),
					Type:    domain.SleepTypeMain,
				})
			},
			wantErr: domain.ErrOverlappingSleep,
		},
		{
			name: "nap moved onto another nap",
			req: &domain.UpdateSleepLogRequest{
				StartAt: timePtr(time.Date(2024, 1, 16, 18, 30, 0, 0, time.UTC)),
				EndAt:   timePtr(time.Date(2024, 1, 16, 19, 30, 0, 0, time.UTC)),
				Type:    sleepTypePtr(domain.SleepTypeNap),
			},
			setupLogs: func(repo *MockSleepLogRepository) {
				withBase(repo)
				repo.add(&domain.SleepLog{
					UserID:  userID,
					StartAt: time.Date(2024, 1, 16, 19, 0, 0, 0, time.UTC),
					EndAt:   time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC),
					Type:    domain.SleepTypeNap,
				})
			},
		},
		{
			name: "unchanged times do not overlap themselves",
			req:  &domain.UpdateSleepLogRequest{Quality: intPtr(2)},
			setupLogs: func(repo *MockSleepLogRepository) {
				withBase(repo)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logRepo := NewMockSleepLogRepository()
			if tt.setupLogs != nil {
				tt.setupLogs(logRepo)
			}

			svc := NewSleepLogService(logRepo, userRepo, nil, nil)
			log, err := svc.Update(context.Background(), userID, logID, tt.req)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Update() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr == nil && tt.validate != nil {
				tt.validate(t, log)
			}
		})
	}
}

func TestSleepLogService_Update_UserNotFound(t *testing.T) {
	svc := NewSleepLogService(NewMockSleepLogRepository(), NewMockUserRepository(), nil, nil)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &domain.UpdateSleepLogRequest{Quality: intPtr(4)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestSleepLogService_Update_WrongOwner(t *testing.T) {
	userID := uuid.New()
	otherUserID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	userRepo.users[otherUserID] = &domain.User{ID: otherUserID, Timezone: "UTC"}

	logRepo := NewMockSleepLogRepository()
	log := logRepo.add(&domain.SleepLog{
		UserID:  otherUserID,
		StartAt: time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		Quality: 3,
		Type:    domain.SleepTypeMain,
	})

	svc := NewSleepLogService(logRepo, userRepo, nil, nil)

	_, err := svc.Update(context.Background(), userID, log.ID, &domain.UpdateSleepLogRequest{Quality: intPtr(4)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v (ownership check)", err, domain.ErrNotFound)
	}
}

func TestSleepLogService_Update_InvalidatesBothDays(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	logRepo := NewMockSleepLogRepository()
	log := logRepo.add(&domain.SleepLog{
		UserID:  userID,
		StartAt: time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC),
		Quality: 3,
		Type:    domain.SleepTypeMain,
	})
	scores := NewMockScoreStore()
	svc := NewSleepLogService(logRepo, userRepo, scores, nil)

	_, err := svc.Update(context.Background(), userID, log.ID, &domain.UpdateSleepLogRequest{
		StartAt: timePtr(time.Date(2024, 1, 16, 23, 0, 0, 0, time.UTC)),
		EndAt:   timePtr(time.Date(2024, 1, 17, 6, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(scores.invalidated) != 2 || scores.invalidated[0] != "2024-01-16" || scores.invalidated[1] != "2024-01-17" {
		t.Errorf("invalidated = %v, want [2024-01-16 2024-01-17]", scores.invalidated)
	}
}
