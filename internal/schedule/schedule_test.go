package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoroteev/go-coachly/internal/models"
)

func reminder(id, date, timeOfDay string) models.Reminder {
	return models.Reminder{
		ID:                 id,
		UserID:             "user-1",
		Title:              "Reminder " + id,
		Date:               date,
		Time:               timeOfDay,
		NotificationMethod: models.NotificationMethodEmail,
		ReminderType:       models.ReminderTypeCustom,
	}
}

func TestUpcomingExcludesPastAndSorts(t *testing.T) {
	t.Parallel()

	reminders := []models.Reminder{
		reminder("past", "2024-01-10", "09:00"),
		reminder("late", "2024-03-01", "18:30"),
		reminder("early", "2024-01-20", "08:00"),
		reminder("same-day-later", "2024-01-20", "17:00"),
	}

	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	got := Upcoming(reminders, now, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "same-day-later", got[1].ID)
	assert.Equal(t, "late", got[2].ID)

	for _, r := range got {
		at, err := r.At()
		require.NoError(t, err)
		assert.False(t, at.Before(now), "reminder %s is in the past", r.ID)
	}
}

func TestUpcomingOrdersByTimeWithinOneDate(t *testing.T) {
	t.Parallel()

	// Inserted with the later time first. Naive per-field comparison
	// would keep insertion order; the combined instant must not.
	reminders := []models.Reminder{
		reminder("afternoon", "2024-01-20", "14:00"),
		reminder("morning", "2024-01-20", "09:00"),
	}

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := Upcoming(reminders, now, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "morning", got[0].ID)
	assert.Equal(t, "afternoon", got[1].ID)
}

func TestUpcomingTruncatesToLimit(t *testing.T) {
	t.Parallel()

	reminders := []models.Reminder{
		reminder("1", "2024-02-01", "09:00"),
		reminder("2", "2024-02-02", "09:00"),
		reminder("3", "2024-02-03", "09:00"),
		reminder("4", "2024-02-04", "09:00"),
	}

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := Upcoming(reminders, now, DefaultUpcomingLimit)

	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestUpcomingIncludesExactNow(t *testing.T) {
	t.Parallel()

	reminders := []models.Reminder{reminder("exact", "2024-01-15", "09:00")}
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	got := Upcoming(reminders, now, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "exact", got[0].ID)
}

func TestUpcomingSkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	reminders := []models.Reminder{
		reminder("bad", "not-a-date", "09:00"),
		reminder("good", "2024-06-01", "09:00"),
	}

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := Upcoming(reminders, now, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)
}

func TestByDateKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	reminders := []models.Reminder{
		reminder("evening", "2024-01-15", "19:00"),
		reminder("other-day", "2024-01-16", "08:00"),
		reminder("morning", "2024-01-15", "07:00"),
	}

	got := ByDate(reminders, "2024-01-15")

	// Insertion order, not time order.
	require.Len(t, got, 2)
	assert.Equal(t, "evening", got[0].ID)
	assert.Equal(t, "morning", got[1].ID)

	assert.Empty(t, ByDate(reminders, "2024-02-01"))
}

func TestCalendarGridJanuary2024(t *testing.T) {
	t.Parallel()

	// January 1st 2024 is a Monday: one leading empty cell, then 1..31.
	grid := CalendarGrid(2024, time.January)

	require.Len(t, grid, 32)
	assert.Equal(t, 0, grid[0])
	for day := 1; day <= 31; day++ {
		assert.Equal(t, day, grid[day])
	}
}

func TestCalendarGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		year         int
		month        time.Month
		leadingEmpty int
		daysInMonth  int
	}{
		{name: "september 2024 starts on sunday", year: 2024, month: time.September, leadingEmpty: 0, daysInMonth: 30},
		{name: "february 2024 is a leap month", year: 2024, month: time.February, leadingEmpty: 4, daysInMonth: 29},
		{name: "february 2023 is not", year: 2023, month: time.February, leadingEmpty: 3, daysInMonth: 28},
		{name: "december 2024", year: 2024, month: time.December, leadingEmpty: 0, daysInMonth: 31},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			grid := CalendarGrid(tt.year, tt.month)
			require.Len(t, grid, tt.leadingEmpty+tt.daysInMonth)

			for i := 0; i < tt.leadingEmpty; i++ {
				assert.Equal(t, 0, grid[i])
			}
			for day := 1; day <= tt.daysInMonth; day++ {
				assert.Equal(t, day, grid[tt.leadingEmpty+day-1])
			}
		})
	}
}

func TestEndToEndScenario(t *testing.T) {
	t.Parallel()

	created := models.Reminder{
		ID:                 "r-1",
		UserID:             "user-1",
		Title:              "Content Planning",
		Date:               "2024-01-15",
		Time:               "09:00",
		NotificationMethod: models.NotificationMethodEmail,
		ReminderType:       models.ReminderTypeContentCreation,
	}
	reminders := []models.Reminder{created}

	grid := CalendarGrid(2024, time.January)
	assert.Contains(t, grid, 15)
	require.Len(t, ByDate(reminders, "2024-01-15"), 1)

	early := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	assert.Len(t, Upcoming(reminders, early, 0), 1)
	assert.Empty(t, Upcoming(reminders, late, 0))
}
