package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/shift-coach/internal/domain"
)

func TestShiftService_Create(t *testing.T) {
	nightType := domain.ShiftNight
	tokyo, _ := time.LoadLocation("Asia/Tokyo")

	tests := []struct {
		name     string
		req      domain.CreateShiftRequest
		recent   []string
		wantType domain.ShiftType
		wantErr  error
	}{
		{
			name:     "label classifies the shift",
			req:      domain.CreateShiftRequest{Date: "2024-01-17", Label: "NIGHT"},
			wantType: domain.ShiftNight,
		},
		{
			name:     "explicit type wins over the label",
			req:      domain.CreateShiftRequest{Date: "2024-01-17", Label: "CUSTOM", Type: &nightType},
			wantType: domain.ShiftNight,
		},
		{
			name: "start time is read in the user's timezone",
			req: domain.CreateShiftRequest{
				Date:    "2024-01-17",
				Label:   "DAY",
				StartAt: timePtr(time.Date(2024, 1, 17, 6, 0, 0, 0, tokyo).UTC()),
			},
			wantType: domain.ShiftMorning,
		},
		{
			name:     "unknown label after a mixed roster is rotating",
			req:      domain.CreateShiftRequest{Date: "2024-01-17", Label: "SWING"},
			recent:   []string{"EARLY", "DAY", "NIGHT", "OFF"},
			wantType: domain.ShiftRotating,
		},
		{
			name:     "unknown label is off",
			req:      domain.CreateShiftRequest{Date: "2024-01-17", Label: "SWING"},
			wantType: domain.ShiftOff,
		},
		{
			name:    "bad date",
			req:     domain.CreateShiftRequest{Date: "17/01/2024", Label: "DAY"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "end before start",
			req: domain.CreateShiftRequest{
				Date:    "2024-01-17",
				Label:   "DAY",
				StartAt: timePtr(time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)),
				EndAt:   timePtr(time.Date(2024, 1, 17, 8, 0, 0, 0, time.UTC)),
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNightShiftFixture()
			f.users.users[f.userID].Timezone = "Asia/Tokyo"
			f.shifts.recent = tt.recent
			svc := NewShiftService(f.shifts, f.users, f.scores, nil)

			shift, err := svc.Create(context.Background(), f.userID, &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.scores.invalidated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, shift.Type)
			assert.NotEqual(t, uuid.Nil, shift.ID)
			assert.Equal(t, []string{"2024-01-17"}, f.scores.invalidated)
		})
	}
}

func TestShiftService_Create_ReplacesDate(t *testing.T) {
	f := newNightShiftFixture()
	svc := NewShiftService(f.shifts, f.users, f.scores, nil)

	_, err := svc.Create(context.Background(), f.userID, &domain.CreateShiftRequest{Date: "2024-01-16", Label: "OFF"})
	require.NoError(t, err)

	got, err := f.shifts.GetByDate(context.Background(), f.userID, "2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftOff, got.Type)
}

func TestShiftService_Create_UserNotFound(t *testing.T) {
	f := newNightShiftFixture()
	svc := NewShiftService(f.shifts, f.users, f.scores, nil)

	_, err := svc.Create(context.Background(), uuid.New(), &domain.CreateShiftRequest{Date: "2024-01-16", Label: "DAY"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShiftService_List(t *testing.T) {
	f := newNightShiftFixture()
	svc := NewShiftService(f.shifts, f.users, f.scores, nil)
	ctx := context.Background()

	shifts, err := svc.List(ctx, f.userID, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "NIGHT", shifts[0].Label)

	tests := []struct {
		name     string
		from, to string
		wantErr  error
	}{
		{"reversed range", "2024-01-31", "2024-01-01", domain.ErrInvalidInput},
		{"range too long", "2024-01-01", "2024-04-01", domain.ErrInvalidInput},
		{"bad from", "2024-1-1", "2024-01-31", domain.ErrInvalidInput},
		{"bad to", "2024-01-01", "tomorrow", domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(ctx, f.userID, tt.from, tt.to)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = svc.List(ctx, uuid.New(), "2024-01-01", "2024-01-31")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
