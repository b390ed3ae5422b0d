package services

import (
	"context"
	"testing"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions []models.FocusSession
}

func (r *fakeSessionRepo) ListByUser(_ context.Context, userID string) ([]models.FocusSession, error) {
	var out []models.FocusSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestStatisticsOverview(t *testing.T) {
	repo := newFakeTaskRepo()
	sessions := &fakeSessionRepo{sessions: []models.FocusSession{
		{UserID: "u1", Completed: true},
		{UserID: "u2", Completed: true},
	}}
	tasks := NewTaskService(repo, nil)
	service := NewStatisticsService(repo, sessions)

	created, err := tasks.Create(context.Background(), models.Task{Title: "done thing", UserID: "u1", CreatedTime: "2025-01-19T08:00:00Z"})
	require.NoError(t, err)
	_, err = tasks.SetStatus(context.Background(), created.ID, "completed")
	require.NoError(t, err)
	_, err = tasks.Create(context.Background(), models.Task{Title: "open thing", UserID: "u1"})
	require.NoError(t, err)

	asOf := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	stats, err := service.Overview(context.Background(), "u1", asOf)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTodos)
	assert.Equal(t, 1, stats.CompletedTodos)
	assert.Equal(t, 50.0, stats.CompletionRate)
	// 50% * 0.6 + 40 for u1's completed focus session.
	assert.InDelta(t, 70.0, stats.FocusScore, 0.001)
}
