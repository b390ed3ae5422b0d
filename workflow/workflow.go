package workflow

import (
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"
)

// CompletedDateLayout is the single format used for completion stamps. Older
// documents mix dd/MM/yyyy with dd/M/yyyy hh:mm; new writes are uniform.
const CompletedDateLayout = "2006-01-02T15:04:05Z"

// CycleStrategy names a one-tap status rotation. The calendar and timeline
// screens rotate through the board states, the home and day-task screens use a
// shorter loop ending in completed. The two are used in different contexts and
// are deliberately not merged.
type CycleStrategy string

const (
	BoardCycle  CycleStrategy = "board"
	SimpleCycle CycleStrategy = "simple"
)

// ParseCycleStrategy defaults to the board cycle on an unrecognized name.
func ParseCycleStrategy(name string) CycleStrategy {
	if CycleStrategy(name) == SimpleCycle {
		return SimpleCycle
	}
	return BoardCycle
}

// boardNext: TODO -> IN_PROGRESS -> IN_REVIEW -> DONE -> TODO, with recovery
// edges COMPLETED -> TODO, ON_HOLD -> IN_PROGRESS, CANCELLED -> TODO.
var boardNext = map[models.TaskStatus]models.TaskStatus{
	models.StatusToDo:       models.StatusInProgress,
	models.StatusInProgress: models.StatusInReview,
	models.StatusInReview:   models.StatusDone,
	models.StatusDone:       models.StatusToDo,
	models.StatusCompleted:  models.StatusToDo,
	models.StatusOnHold:     models.StatusInProgress,
	models.StatusCancelled:  models.StatusToDo,
}

// simpleNext: TODO -> IN_PROGRESS -> COMPLETED -> TODO. States outside the
// loop recover to TODO, except ON_HOLD which resumes IN_PROGRESS.
var simpleNext = map[models.TaskStatus]models.TaskStatus{
	models.StatusToDo:       models.StatusInProgress,
	models.StatusInProgress: models.StatusCompleted,
	models.StatusCompleted:  models.StatusToDo,
	models.StatusInReview:   models.StatusToDo,
	models.StatusDone:       models.StatusToDo,
	models.StatusOnHold:     models.StatusInProgress,
	models.StatusCancelled:  models.StatusToDo,
}

// Next returns the successor status under the given strategy. Total over all
// statuses; an unknown status restarts at TODO.
func Next(current models.TaskStatus, strategy CycleStrategy) models.TaskStatus {
	cycle := boardNext
	if strategy == SimpleCycle {
		cycle = simpleNext
	}
	if next, ok := cycle[current]; ok {
		return next
	}
	return models.StatusToDo
}

// Transition applies a status change to a task. No transition is ever
// rejected. Entering COMPLETED stamps the completion date; every other target
// status clears it, so the stamp is meaningful exactly while the task is
// completed.
func Transition(t models.Task, newStatus models.TaskStatus) models.Task {
	if newStatus == models.StatusCompleted {
		if t.Status != models.StatusCompleted || t.CompletedDate == "" {
			t.CompletedDate = now().UTC().Format(CompletedDateLayout)
		}
	} else {
		t.CompletedDate = ""
	}
	t.Status = newStatus
	return t
}

// Advance rotates a task one step along the given cycle.
func Advance(t models.Task, strategy CycleStrategy) models.Task {
	return Transition(t, Next(t.Status, strategy))
}

// overridable in tests
var now = time.Now
