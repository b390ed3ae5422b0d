package models

import "strings"

type TaskStatus string

const (
	StatusToDo       TaskStatus = "to_do"
	StatusInProgress TaskStatus = "in_progress"
	StatusInReview   TaskStatus = "in_review"
	StatusCompleted  TaskStatus = "completed"
	StatusDone       TaskStatus = "done"
	StatusOnHold     TaskStatus = "on_hold"
	StatusCancelled  TaskStatus = "cancelled"
)

// ParseStatus maps a persisted status code to a TaskStatus. Legacy documents may
// carry codes written by older clients, so an unrecognized code falls back to
// StatusToDo instead of failing the read.
func ParseStatus(code string) TaskStatus {
	s := TaskStatus(strings.TrimSpace(code))
	switch s {
	case StatusToDo, StatusInProgress, StatusInReview, StatusCompleted, StatusDone, StatusOnHold, StatusCancelled:
		return s
	default:
		return StatusToDo
	}
}

func (s TaskStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusInReview:
		return "In Review"
	case StatusCompleted:
		return "Completed"
	case StatusDone:
		return "Done"
	case StatusOnHold:
		return "On Hold"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "To Do"
	}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// ParsePriority falls back to PriorityMedium on an unrecognized code, same
// policy as ParseStatus.
func ParsePriority(code string) TaskPriority {
	p := TaskPriority(strings.TrimSpace(code))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p
	default:
		return PriorityMedium
	}
}

// Rank orders priorities for sorting: low < medium < high < urgent.
// Priority carries no workflow meaning beyond display order.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return 1
	}
}

func (p TaskPriority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Medium"
	}
}

const DefaultCategory = "General"

// Task is a unit of work. The timestamp fields are free-form strings because
// documents written by the mobile clients use several shapes (dd/MM/yyyy,
// dd/MM/yyyy HH:mm, ISO 8601, yyyy-MM-dd HH:mm:ss); the scheduling package is
// the only place that interprets them.
type Task struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	Title             string       `json:"title" bson:"title"`
	Description       string       `json:"description" bson:"description"`
	Category          string       `json:"category" bson:"category"`
	Status            TaskStatus   `json:"status" bson:"status"`
	Priority          TaskPriority `json:"priority" bson:"priority"`
	CreatedTime       string       `json:"createdTime" bson:"createdTime"`
	DueTime           string       `json:"dueTime" bson:"dueTime"`
	ReminderTime      string       `json:"reminderTime" bson:"reminderTime"`
	CompletedDate     string       `json:"completedDate" bson:"completedDate"`
	EstimatedDuration int          `json:"estimatedDuration" bson:"estimatedDuration"`
	ActualDuration    int          `json:"actualDuration" bson:"actualDuration"`
	UserID            string       `json:"userId" bson:"userId"`
	WorkspaceID       string       `json:"workspaceId" bson:"workspaceId"`
	AssignedTo        []string     `json:"assignedTo" bson:"assignedTo"`
	CreatedBy         string       `json:"createdBy" bson:"createdBy"`
}

func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

func (t Task) IsShared() bool {
	return t.WorkspaceID != ""
}
