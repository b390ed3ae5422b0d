package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DANGPP/btlthayPhong-sub000/logging"
	"github.com/DANGPP/btlthayPhong-sub000/models"
	"github.com/DANGPP/btlthayPhong-sub000/scheduling"

	"github.com/sony/gobreaker"
)

// ReminderRequest is the tuple handed to the notifications service. Delivery
// is that service's problem; here we only compute when the reminder fires.
type ReminderRequest struct {
	TaskID        string `json:"taskId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	ScheduledTime string `json:"scheduledTime"`
}

type NotificationService struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

func NewNotificationService(client *http.Client, breaker *gobreaker.CircuitBreaker, baseURL string) *NotificationService {
	return &NotificationService{client: client, breaker: breaker, baseURL: baseURL}
}

// ScheduleReminder posts a reminder tuple for the task. The scheduled time is
// the reminder time when set, otherwise the due time. Tasks with neither, or
// with a timestamp that does not parse, are skipped without error: a missed
// reminder must never block a create.
func (s *NotificationService) ScheduleReminder(ctx context.Context, task models.Task) error {
	raw := task.ReminderTime
	if raw == "" {
		raw = task.DueTime
	}
	if raw == "" {
		return nil
	}

	scheduledAt, err := scheduling.ParseTimestamp(raw)
	if err != nil {
		logging.Logger.Warnf("Event ID: REMINDER_TIME_UNPARSEABLE, Description: Skipping reminder for todo %s, timestamp %q not recognized", task.ID, raw)
		return nil
	}

	payload, err := json.Marshal(ReminderRequest{
		TaskID:        task.ID,
		Title:         task.Title,
		Body:          fmt.Sprintf("Reminder: %s", task.Title),
		ScheduledTime: scheduledAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
	if err != nil {
		return fmt.Errorf("failed to encode reminder request: %v", err)
	}

	_, err = s.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/notifications/schedule", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("notifications service returned status %d", resp.StatusCode)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder: %v", err)
	}
	return nil
}
