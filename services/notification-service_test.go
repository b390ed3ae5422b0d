package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test-cb"})
}

func TestScheduleReminder(t *testing.T) {
	t.Run("posts the reminder tuple", func(t *testing.T) {
		var received ReminderRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/notifications/schedule", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		service := NewNotificationService(server.Client(), newTestBreaker(), server.URL)
		task := models.Task{ID: "todo-1", Title: "standup", ReminderTime: "20/01/2025 09:00"}

		require.NoError(t, service.ScheduleReminder(context.Background(), task))
		assert.Equal(t, "todo-1", received.TaskID)
		assert.Equal(t, "standup", received.Title)
		assert.Equal(t, "2025-01-20T09:00:00Z", received.ScheduledTime)
	})

	t.Run("falls back to the due time", func(t *testing.T) {
		var received ReminderRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		}))
		defer server.Close()

		service := NewNotificationService(server.Client(), newTestBreaker(), server.URL)
		task := models.Task{ID: "todo-2", Title: "report", DueTime: "2025-01-21 17:00:00"}

		require.NoError(t, service.ScheduleReminder(context.Background(), task))
		assert.Equal(t, "2025-01-21T17:00:00Z", received.ScheduledTime)
	})

	t.Run("no timestamps means nothing is sent", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		service := NewNotificationService(server.Client(), newTestBreaker(), server.URL)
		require.NoError(t, service.ScheduleReminder(context.Background(), models.Task{ID: "todo-3", Title: "untimed"}))
		assert.False(t, called)
	})

	t.Run("unparseable timestamp is skipped without error", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		service := NewNotificationService(server.Client(), newTestBreaker(), server.URL)
		task := models.Task{ID: "todo-4", Title: "odd", ReminderTime: "next tuesday"}
		require.NoError(t, service.ScheduleReminder(context.Background(), task))
		assert.False(t, called)
	})

	t.Run("failure response surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		service := NewNotificationService(server.Client(), newTestBreaker(), server.URL)
		task := models.Task{ID: "todo-5", Title: "doomed", ReminderTime: "20/01/2025 09:00"}
		assert.Error(t, service.ScheduleReminder(context.Background(), task))
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "test-cb",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
		})
		service := NewNotificationService(server.Client(), breaker, server.URL)
		task := models.Task{ID: "todo-6", Title: "doomed", ReminderTime: "20/01/2025 09:00"}

		for i := 0; i < 5; i++ {
			_ = service.ScheduleReminder(context.Background(), task)
		}
		assert.Equal(t, gobreaker.StateOpen, breaker.State())
	})
}
