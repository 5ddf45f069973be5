package domain_test

import (
	"testing"
	"time"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "full clock value",
			input: "08:30:00",
			want:  8*time.Hour + 30*time.Minute,
		},
		{
			name:  "clock value without seconds",
			input: "17:05",
			want:  17*time.Hour + 5*time.Minute,
		},
		{
			name:  "midnight",
			input: "00:00:00",
			want:  0,
		},
		{
			name:    "hour out of range",
			input:   "24:00:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "08:61:00",
			wantErr: true,
		},
		{
			name:    "not a clock value",
			input:   "delapan pagi",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayName(t *testing.T) {
	// 2025-03-10 is a Monday.
	monday := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	names := []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
	for i, want := range names {
		assert.Equal(t, want, domain.WeekdayName(monday.AddDate(0, 0, i)))
	}
}

func TestValidWeekdayName(t *testing.T) {
	assert.True(t, domain.ValidWeekdayName("Senin"))
	assert.True(t, domain.ValidWeekdayName("Minggu"))
	assert.False(t, domain.ValidWeekdayName("Monday"))
	assert.False(t, domain.ValidWeekdayName("senin"))
	assert.False(t, domain.ValidWeekdayName(""))
}

func TestClockOf(t *testing.T) {
	at := time.Date(2025, time.March, 10, 8, 30, 1, 0, time.UTC)
	assert.Equal(t, 8*time.Hour+30*time.Minute+time.Second, domain.ClockOf(at))
}
