package scheduling

import (
	"sort"

	"github.com/DANGPP/btlthayPhong-sub000/models"
)

// GroupByHour folds a task list into hour-bucket slots for the timeline view.
// Tasks without a resolvable time of day land in a leading all-day slot.
// Slots are sorted by hour and empty buckets are omitted.
func GroupByHour(tasks []models.Task) []models.TimeSlot {
	buckets := make(map[int][]models.Task)
	for _, t := range tasks {
		r := Resolve(t)
		buckets[r.Hour] = append(buckets[r.Hour], t)
	}

	hours := make([]int, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	slots := make([]models.TimeSlot, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, models.TimeSlot{
			Hour:  h,
			Label: HourLabel(h),
			Tasks: buckets[h],
		})
	}
	return slots
}

// FilterByDate keeps the tasks whose authoritative timestamp's date part
// equals the given date string (same shape the client wrote, no
// normalization).
func FilterByDate(tasks []models.Task, date string) []models.Task {
	var matched []models.Task
	for _, t := range tasks {
		if Resolve(t).DatePart == date {
			matched = append(matched, t)
		}
	}
	return matched
}
