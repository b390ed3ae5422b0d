package models

// TodoStatistics is the read-only summary handed to the presentation layer.
type TodoStatistics struct {
	TotalTodos            int            `json:"totalTodos"`
	CompletedTodos        int            `json:"completedTodos"`
	PendingTodos          int            `json:"pendingTodos"`
	CompletionRate        float64        `json:"completionRate"`
	WeeklyCompletedTodos  int            `json:"weeklyCompletedTodos"`
	MonthlyCompletedTodos int            `json:"monthlyCompletedTodos"`
	DailyCompletions      map[string]int `json:"dailyCompletions"`
	CategoryBreakdown     map[string]int `json:"categoryBreakdown"`
	FocusScore            float64        `json:"focusScore"`
}

// FocusSession records one timed focus run against a task. Only the Completed
// flag feeds into the focus score.
type FocusSession struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	UserID          string `json:"userId" bson:"userId"`
	TaskID          string `json:"taskId" bson:"taskId"`
	DurationMinutes int    `json:"durationMinutes" bson:"durationMinutes"`
	Completed       bool   `json:"completed" bson:"completed"`
	StartedTime     string `json:"startedTime" bson:"startedTime"`
}

// TimeSlot is an hour bucket for the timeline view. Hour is in [0,23], or -1
// for tasks with no resolvable time of day. Derived, never persisted.
type TimeSlot struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
	Tasks []Task `json:"tasks"`
}
