package repositories

import (
	"context"
	"fmt"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// taskDocument is the flat persisted shape. Fields are decoded permissively:
// anything missing stays at its zero value and the enum codes are normalized
// through the fail-to-default parsers on the way out, so legacy documents
// never fail a read.
type taskDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Title             string             `bson:"title"`
	Description       string             `bson:"description"`
	Category          string             `bson:"category"`
	Status            string             `bson:"status"`
	Priority          string             `bson:"priority"`
	CreatedTime       string             `bson:"createdTime"`
	DueTime           string             `bson:"dueTime"`
	ReminderTime      string             `bson:"reminderTime"`
	CompletedDate     string             `bson:"completedDate"`
	EstimatedDuration int                `bson:"estimatedDuration"`
	ActualDuration    int                `bson:"actualDuration"`
	UserID            string             `bson:"userId"`
	WorkspaceID       string             `bson:"workspaceId"`
	AssignedTo        []string           `bson:"assignedTo"`
	CreatedBy         string             `bson:"createdBy"`
}

func (d taskDocument) toTask() models.Task {
	category := d.Category
	if category == "" {
		category = models.DefaultCategory
	}
	id := ""
	if !d.ID.IsZero() {
		id = d.ID.Hex()
	}
	return models.Task{
		ID:                id,
		Title:             d.Title,
		Description:       d.Description,
		Category:          category,
		Status:            models.ParseStatus(d.Status),
		Priority:          models.ParsePriority(d.Priority),
		CreatedTime:       d.CreatedTime,
		DueTime:           d.DueTime,
		ReminderTime:      d.ReminderTime,
		CompletedDate:     d.CompletedDate,
		EstimatedDuration: d.EstimatedDuration,
		ActualDuration:    d.ActualDuration,
		UserID:            d.UserID,
		WorkspaceID:       d.WorkspaceID,
		AssignedTo:        d.AssignedTo,
		CreatedBy:         d.CreatedBy,
	}
}

func taskFields(t models.Task) bson.M {
	return bson.M{
		"title":             t.Title,
		"description":       t.Description,
		"category":          t.Category,
		"status":            string(t.Status),
		"priority":          string(t.Priority),
		"createdTime":       t.CreatedTime,
		"dueTime":           t.DueTime,
		"reminderTime":      t.ReminderTime,
		"completedDate":     t.CompletedDate,
		"estimatedDuration": t.EstimatedDuration,
		"actualDuration":    t.ActualDuration,
		"userId":            t.UserID,
		"workspaceId":       t.WorkspaceID,
		"assignedTo":        t.AssignedTo,
		"createdBy":         t.CreatedBy,
	}
}

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: db.Collection("todos")}
}

func (r *TaskRepository) Create(ctx context.Context, task models.Task) (models.Task, error) {
	result, err := r.collection.InsertOne(ctx, taskFields(task))
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create todo: %v", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return task, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid todo ID format: %v", err)
	}
	var doc taskDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return models.Task{}, fmt.Errorf("todo not found: %v", err)
	}
	return doc.toTask(), nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *TaskRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]models.Task, error) {
	return r.list(ctx, bson.M{"workspaceId": workspaceID})
}

func (r *TaskRepository) list(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve todos: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	for cursor.Next(ctx) {
		var doc taskDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode todo: %v", err)
		}
		tasks = append(tasks, doc.toTask())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task models.Task) error {
	objectID, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return fmt.Errorf("invalid todo ID format: %v", err)
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": taskFields(task)})
	if err != nil {
		return fmt.Errorf("failed to update todo: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("todo not found for update")
	}
	return nil
}

// Delete is idempotent at the entity-id level: deleting an unknown or already
// deleted id succeeds.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		return fmt.Errorf("failed to delete todo: %v", err)
	}
	return nil
}
