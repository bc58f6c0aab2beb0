package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/linguaplay/booking/internal/models"
)

func TestEvaluate_TableTests(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		dateStart  string
		persons    int
		weekLength int
		expected   models.AutoOptions
	}{
		{
			name:       "дата за 44 дня включает раннюю регистрацию",
			dateStart:  "2026-07-15",
			persons:    1,
			weekLength: 2,
			expected:   models.AutoOptions{EarlyRegistration: true},
		},
		{
			name:       "дата за две недели раннюю регистрацию не включает",
			dateStart:  "2026-06-15",
			persons:    1,
			weekLength: 2,
			expected:   models.AutoOptions{},
		},
		{
			name:       "дата в прошлом раннюю регистрацию не включает",
			dateStart:  "2026-05-01",
			persons:    1,
			weekLength: 2,
			expected:   models.AutoOptions{},
		},
		{
			name:       "пустая дата не мешает остальным правилам",
			dateStart:  "",
			persons:    5,
			weekLength: 5,
			expected:   models.AutoOptions{GroupEnrollment: true, IntensiveCourse: true},
		},
		{
			name:       "пять студентов включают групповую скидку",
			dateStart:  "",
			persons:    5,
			weekLength: 2,
			expected:   models.AutoOptions{GroupEnrollment: true},
		},
		{
			name:       "четыре студента групповую скидку не включают",
			dateStart:  "",
			persons:    4,
			weekLength: 2,
			expected:   models.AutoOptions{},
		},
		{
			name:       "пять часов в неделю включают интенсив",
			dateStart:  "",
			persons:    1,
			weekLength: 5,
			expected:   models.AutoOptions{IntensiveCourse: true},
		},
		{
			name:       "четыре часа в неделю интенсив не включают",
			dateStart:  "",
			persons:    1,
			weekLength: 4,
			expected:   models.AutoOptions{},
		},
		{
			name:       "все три правила независимы и совместимы",
			dateStart:  "2026-08-01",
			persons:    10,
			weekLength: 6,
			expected: models.AutoOptions{
				EarlyRegistration: true,
				GroupEnrollment:   true,
				IntensiveCourse:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.dateStart, tt.persons, tt.weekLength, now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_ExactThirtyDayBoundary(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	// Ровно 30 дней до полуночи даты начала — ранняя регистрация включается.
	got := Evaluate("2026-07-01", 1, 2, now)
	assert.True(t, got.EarlyRegistration)
}

func TestClampPersons(t *testing.T) {
	assert.Equal(t, 1, ClampPersons(0))
	assert.Equal(t, 1, ClampPersons(-5))
	assert.Equal(t, 1, ClampPersons(1))
	assert.Equal(t, 7, ClampPersons(7))
	assert.Equal(t, 20, ClampPersons(20))
	assert.Equal(t, 20, ClampPersons(50))
}
