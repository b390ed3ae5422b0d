package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/conflicts"
	"github.com/DANGPP/btlthayPhong-sub000/logging"
	"github.com/DANGPP/btlthayPhong-sub000/models"
	"github.com/DANGPP/btlthayPhong-sub000/scheduling"
	"github.com/DANGPP/btlthayPhong-sub000/workflow"
)

// TaskRepository is the persistence collaborator for todos. The Mongo
// implementation lives in repositories; tests substitute their own.
type TaskRepository interface {
	Create(ctx context.Context, task models.Task) (models.Task, error)
	GetByID(ctx context.Context, id string) (models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]models.Task, error)
	Update(ctx context.Context, task models.Task) error
	Delete(ctx context.Context, id string) error
}

// ReminderScheduler is implemented by NotificationService. Scheduling is best
// effort everywhere it is called.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, task models.Task) error
}

type TaskService struct {
	repo      TaskRepository
	reminders ReminderScheduler
}

// NewTaskService wires the service. reminders may be nil when no
// notifications collaborator is configured.
func NewTaskService(repo TaskRepository, reminders ReminderScheduler) *TaskService {
	return &TaskService{repo: repo, reminders: reminders}
}

// BatchCreateResult carries the outcome of a best-effort batch create.
// Conflicts are advisory; a conflicting todo is still created.
type BatchCreateResult struct {
	Created   []models.Task `json:"created"`
	Conflicts []models.Task `json:"conflicts"`
}

// Create validates and persists a single todo. Title is required; everything
// else defaults (status to_do, priority medium, category General, created time
// now). Validation happens before any persistence call.
func (s *TaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return models.Task{}, fmt.Errorf("todo title is required")
	}
	if task.UserID == "" {
		return models.Task{}, fmt.Errorf("todo user ID is required")
	}

	// Incoming codes go through the fail-to-default parsers so only the
	// stable contract codes ever reach persistence; an unrecognized status
	// or priority lands on to_do / medium, same as the read path.
	task.Status = models.ParseStatus(string(task.Status))
	task.Priority = models.ParsePriority(string(task.Priority))
	if task.Category == "" {
		task.Category = models.DefaultCategory
	}
	if task.CreatedTime == "" {
		task.CreatedTime = time.Now().UTC().Format(createdTimeLayout)
	}
	if task.EstimatedDuration < 0 {
		task.EstimatedDuration = 0
	}
	if task.ActualDuration < 0 {
		task.ActualDuration = 0
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return models.Task{}, err
	}

	if s.reminders != nil && (created.ReminderTime != "" || created.DueTime != "") {
		if err := s.reminders.ScheduleReminder(ctx, created); err != nil {
			logging.Logger.Warnf("Event ID: REMINDER_SCHEDULE_FAILED, Description: Reminder for todo %s not scheduled: %v", created.ID, err)
		}
	}
	return created, nil
}

// BatchCreate persists proposed todos one at a time, collecting the
// successes. A failing item is logged and skipped; it never aborts the rest
// of the batch. Due-time conflicts against the user's existing, unfinished
// todos are detected up front and returned as advisory information.
func (s *TaskService) BatchCreate(ctx context.Context, userID string, proposed []models.Task) (BatchCreateResult, error) {
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return BatchCreateResult{}, fmt.Errorf("failed to load existing todos: %v", err)
	}

	result := BatchCreateResult{
		Created:   []models.Task{},
		Conflicts: conflicts.Detect(existing, proposed),
	}

	for _, task := range proposed {
		task.UserID = userID
		created, err := s.Create(ctx, task)
		if err != nil {
			logging.Logger.Warnf("Event ID: BATCH_ITEM_FAILED, Description: Skipping todo %q in batch create: %v", task.Title, err)
			continue
		}
		result.Created = append(result.Created, created)
	}
	return result, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) ListByWorkspace(ctx context.Context, workspaceID string) ([]models.Task, error) {
	return s.repo.ListByWorkspace(ctx, workspaceID)
}

// SetStatus applies a direct status change. The code goes through the
// fail-to-default parser, so an unknown code lands the todo back on to_do
// rather than failing.
func (s *TaskService) SetStatus(ctx context.Context, id, statusCode string) (models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	updated := workflow.Transition(task, models.ParseStatus(statusCode))
	if err := s.repo.Update(ctx, updated); err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// AdvanceStatus rotates a todo one step along the named cycle strategy.
func (s *TaskService) AdvanceStatus(ctx context.Context, id string, strategy workflow.CycleStrategy) (models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	updated := workflow.Advance(task, strategy)
	if err := s.repo.Update(ctx, updated); err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// Update edits the free-standing fields of a todo. Status is intentionally
// not editable here; it moves only through SetStatus/AdvanceStatus so the
// completion stamp stays consistent.
func (s *TaskService) Update(ctx context.Context, task models.Task) (models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return models.Task{}, fmt.Errorf("todo title is required")
	}
	current, err := s.repo.GetByID(ctx, task.ID)
	if err != nil {
		return models.Task{}, err
	}
	task.Status = current.Status
	task.CompletedDate = current.CompletedDate
	if task.Priority == "" {
		task.Priority = current.Priority
	} else {
		task.Priority = models.ParsePriority(string(task.Priority))
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Timeline resolves a user's todos into hour-bucket slots, optionally
// restricted to one date (raw date-part match, same shape the client wrote).
func (s *TaskService) Timeline(ctx context.Context, userID, date string) ([]models.TimeSlot, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if date != "" {
		tasks = scheduling.FilterByDate(tasks, date)
	}
	return scheduling.GroupByHour(tasks), nil
}

// CheckConflicts reports which of the proposed todos collide with the user's
// existing unfinished todos. Advisory only.
func (s *TaskService) CheckConflicts(ctx context.Context, userID string, proposed []models.Task) ([]models.Task, error) {
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing todos: %v", err)
	}
	return conflicts.Detect(existing, proposed), nil
}
