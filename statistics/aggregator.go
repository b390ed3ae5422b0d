package statistics

import (
	"strings"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"
	"github.com/DANGPP/btlthayPhong-sub000/scheduling"
)

const dayKeyLayout = "2006-01-02"

// Aggregate folds a task collection into the read-only summary shown on the
// statistics screens. asOf anchors the trailing windows so results are
// reproducible in tests.
//
// Tasks whose created time does not parse are silently excluded from the
// weekly and monthly windows; they still count towards the totals.
func Aggregate(tasks []models.Task, sessions []models.FocusSession, asOf time.Time) models.TodoStatistics {
	stats := models.TodoStatistics{
		DailyCompletions:  make(map[string]int),
		CategoryBreakdown: make(map[string]int),
	}

	// Trailing 7 calendar dates, today included.
	for i := 0; i < 7; i++ {
		stats.DailyCompletions[asOf.AddDate(0, 0, -i).Format(dayKeyLayout)] = 0
	}

	weekStart := asOf.AddDate(0, 0, -7)
	monthStart := asOf.AddDate(0, 0, -30)

	for _, t := range tasks {
		stats.TotalTodos++
		if !t.IsCompleted() {
			continue
		}
		stats.CompletedTodos++

		category := t.Category
		if category == "" {
			category = models.DefaultCategory
		}
		stats.CategoryBreakdown[category]++

		for key := range stats.DailyCompletions {
			if strings.HasPrefix(t.CreatedTime, key) {
				stats.DailyCompletions[key]++
			}
		}

		created, err := scheduling.ParseTimestamp(t.CreatedTime)
		if err != nil {
			continue
		}
		if !created.Before(weekStart) && !created.After(asOf) {
			stats.WeeklyCompletedTodos++
		}
		if !created.Before(monthStart) && !created.After(asOf) {
			stats.MonthlyCompletedTodos++
		}
	}

	stats.PendingTodos = stats.TotalTodos - stats.CompletedTodos
	if stats.TotalTodos > 0 {
		stats.CompletionRate = float64(stats.CompletedTodos) / float64(stats.TotalTodos) * 100
	}

	stats.FocusScore = focusScore(stats.CompletionRate, sessions)
	return stats
}

// focusScore = min(100, completionRate*0.6 + 40 if any focus session
// completed). The formula is simple but it feeds the overall-statistics view,
// so it is kept exact.
func focusScore(completionRate float64, sessions []models.FocusSession) float64 {
	score := completionRate * 0.6
	for _, s := range sessions {
		if s.Completed {
			score += 40
			break
		}
	}
	if score > 100 {
		return 100
	}
	return score
}
