package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDates_TableTests(t *testing.T) {
	tests := []struct {
		name       string
		startDates []time.Time
		expected   []string
	}{
		{
			name: "слоты одного дня схлопываются в одну дату",
			startDates: []time.Time{
				time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local),
				time.Date(2026, 6, 1, 18, 0, 0, 0, time.Local),
				time.Date(2026, 6, 3, 10, 30, 0, 0, time.Local),
			},
			expected: []string{"2026-06-01", "2026-06-03"},
		},
		{
			name: "даты отсортированы по возрастанию",
			startDates: []time.Time{
				time.Date(2026, 7, 10, 12, 0, 0, 0, time.Local),
				time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local),
			},
			expected: []string{"2026-06-01", "2026-07-10"},
		},
		{
			name:       "пустой список слотов",
			startDates: nil,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dates(tt.startDates))
		})
	}
}

func TestTimes_FiltersByDate(t *testing.T) {
	startDates := []time.Time{
		time.Date(2026, 6, 1, 18, 0, 0, 0, time.Local),
		time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local),
		time.Date(2026, 6, 3, 10, 30, 0, 0, time.Local),
	}

	got := Times(startDates, "2026-06-01", 2)

	assert.Equal(t, []Slot{
		{Start: "09:00", End: "11:00"},
		{Start: "18:00", End: "20:00"},
	}, got)
}

func TestTimes_StaleDateReturnsEmpty(t *testing.T) {
	startDates := []time.Time{
		time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local),
	}

	// Дата из устаревшей заявки больше не совпадает со слотами курса:
	// резолвер обязан вернуть пустой список, а не ошибку.
	got := Times(startDates, "2026-06-02", 2)
	assert.Empty(t, got)
}

func TestTimes_ZeroWeekLengthFallsBackToHour(t *testing.T) {
	startDates := []time.Time{
		time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local),
	}

	got := Times(startDates, "2026-06-01", 0)
	assert.Equal(t, []Slot{{Start: "09:00", End: "10:00"}}, got)
}

func TestContains(t *testing.T) {
	startDates := []time.Time{
		time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local),
		time.Date(2026, 6, 1, 18, 0, 0, 0, time.Local),
	}

	assert.True(t, Contains(startDates, "2026-06-01", "18:00", 2))
	assert.False(t, Contains(startDates, "2026-06-01", "12:00", 2))
	assert.False(t, Contains(startDates, "2026-06-02", "09:00", 2))
}
