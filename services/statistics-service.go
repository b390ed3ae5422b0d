package services

import (
	"context"
	"fmt"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"
	"github.com/DANGPP/btlthayPhong-sub000/statistics"
)

// FocusSessionRepository supplies the focus-session history feeding the focus
// score.
type FocusSessionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.FocusSession, error)
}

type StatisticsService struct {
	tasks    TaskRepository
	sessions FocusSessionRepository
}

func NewStatisticsService(tasks TaskRepository, sessions FocusSessionRepository) *StatisticsService {
	return &StatisticsService{tasks: tasks, sessions: sessions}
}

// Overview aggregates a user's todos and focus sessions into the statistics
// summary, anchored at asOf.
func (s *StatisticsService) Overview(ctx context.Context, userID string, asOf time.Time) (models.TodoStatistics, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return models.TodoStatistics{}, fmt.Errorf("failed to load todos for statistics: %v", err)
	}
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return models.TodoStatistics{}, fmt.Errorf("failed to load focus sessions for statistics: %v", err)
	}
	return statistics.Aggregate(tasks, sessions, asOf), nil
}
