// Package schedule holds the pure calendar views over a user's
// reminder list. Nothing here touches the database; the delivery
// layer feeds it the rows it already fetched.
package schedule

import (
	"sort"
	"time"

	"github.com/dkoroteev/go-coachly/internal/models"
)

// DefaultUpcomingLimit is how many upcoming reminders the dashboard shows.
const DefaultUpcomingLimit = 3

// Upcoming filters reminders down to those whose combined (date, time)
// instant is at or after now, sorted ascending, truncated to limit.
// A limit <= 0 means no truncation. Entries with an unparseable
// date/time are skipped rather than guessed at.
func Upcoming(reminders []models.Reminder, now time.Time, limit int) []models.Reminder {
	type keyed struct {
		at       time.Time
		reminder models.Reminder
	}

	upcoming := make([]keyed, 0, len(reminders))
	for _, r := range reminders {
		at, err := r.At()
		if err != nil {
			continue
		}
		if at.Before(now) {
			continue
		}
		upcoming = append(upcoming, keyed{at: at, reminder: r})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].at.Before(upcoming[j].at)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	result := make([]models.Reminder, len(upcoming))
	for i, k := range upcoming {
		result[i] = k.reminder
	}
	return result
}

// ByDate returns the reminders scheduled on the given calendar date,
// preserving the original slice order. The calendar view groups a
// day's reminders in the order they were created, not by time.
func ByDate(reminders []models.Reminder, date string) []models.Reminder {
	var matched []models.Reminder
	for _, r := range reminders {
		if r.Date == date {
			matched = append(matched, r)
		}
	}
	return matched
}

// CalendarGrid lays out a month as a flat sequence of 7-column cells:
// one empty cell per weekday preceding day 1 (0 = Sunday), then the
// day numbers 1..daysInMonth. No trailing padding. Empty cells are
// encoded as 0.
func CalendarGrid(year int, month time.Month) []int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := make([]int, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		grid = append(grid, 0)
	}
	for day := 1; day <= daysInMonth; day++ {
		grid = append(grid, day)
	}
	return grid
}
