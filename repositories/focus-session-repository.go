package repositories

import (
	"context"
	"fmt"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FocusSessionRepository struct {
	collection *mongo.Collection
}

func NewFocusSessionRepository(db *mongo.Database) *FocusSessionRepository {
	return &FocusSessionRepository{collection: db.Collection("focus_sessions")}
}

func (r *FocusSessionRepository) Create(ctx context.Context, session models.FocusSession) (models.FocusSession, error) {
	result, err := r.collection.InsertOne(ctx, bson.M{
		"userId":          session.UserID,
		"taskId":          session.TaskID,
		"durationMinutes": session.DurationMinutes,
		"completed":       session.Completed,
		"startedTime":     session.StartedTime,
	})
	if err != nil {
		return models.FocusSession{}, fmt.Errorf("failed to create focus session: %v", err)
	}
	session.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return session, nil
}

func (r *FocusSessionRepository) ListByUser(ctx context.Context, userID string) ([]models.FocusSession, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve focus sessions: %v", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.FocusSession
	for cursor.Next(ctx) {
		var doc struct {
			ID              primitive.ObjectID `bson:"_id"`
			UserID          string             `bson:"userId"`
			TaskID          string             `bson:"taskId"`
			DurationMinutes int                `bson:"durationMinutes"`
			Completed       bool               `bson:"completed"`
			StartedTime     string             `bson:"startedTime"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode focus session: %v", err)
		}
		sessions = append(sessions, models.FocusSession{
			ID:              doc.ID.Hex(),
			UserID:          doc.UserID,
			TaskID:          doc.TaskID,
			DurationMinutes: doc.DurationMinutes,
			Completed:       doc.Completed,
			StartedTime:     doc.StartedTime,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return sessions, nil
}
