package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DANGPP/btlthayPhong-sub000/logging"
	"github.com/DANGPP/btlthayPhong-sub000/models"
	"github.com/DANGPP/btlthayPhong-sub000/services"
	"github.com/DANGPP/btlthayPhong-sub000/workflow"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// requireUserID reads the acting user from the X-User-ID header set by the
// gateway after authentication.
func requireUserID(r *http.Request) (string, error) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		return "", fmt.Errorf("user ID is missing in request header")
	}
	return userID, nil
}

func (h *TaskHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	task.UserID = userID
	if task.CreatedBy == "" {
		task.CreatedBy = userID
	}

	created, err := h.service.Create(r.Context(), task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// BatchCreateTodos creates todos one at a time and reports only the
// successes, alongside advisory due-time conflicts. A failed item never
// aborts the batch.
func (h *TaskHandler) BatchCreateTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var proposed []models.Task
	if err := json.NewDecoder(r.Body).Decode(&proposed); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.BatchCreate(r.Context(), userID, proposed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logging.Logger.Infof("Event ID: BATCH_CREATE_DONE, Description: Batch create for user %s: %d of %d created, %d conflicts", userID, len(result.Created), len(proposed), len(result.Conflicts))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func (h *TaskHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	tasks, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

func (h *TaskHandler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	task, err := h.service.GetByID(r.Context(), vars["todoID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// ChangeTodoStatus applies an explicit status. Unknown codes fall back to
// to_do, matching what older clients persisted.
func (h *TaskHandler) ChangeTodoStatus(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TodoID string `json:"todoId"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	updated, err := h.service.SetStatus(r.Context(), request.TodoID, request.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// AdvanceTodoStatus rotates a todo one step along a named cycle. The calendar
// and timeline screens use the board cycle, the home screen the simple one.
func (h *TaskHandler) AdvanceTodoStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	strategy := workflow.ParseCycleStrategy(r.URL.Query().Get("cycle"))

	updated, err := h.service.AdvanceStatus(r.Context(), vars["todoID"], strategy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *TaskHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	task.ID = vars["todoID"]

	updated, err := h.service.Update(r.Context(), task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *TaskHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.Delete(r.Context(), vars["todoID"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Todo deleted successfully"}`))
}

// GetTimeline returns the hour-bucket slots for a user's todos, optionally
// filtered to one date via ?date=.
func (h *TaskHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	slots, err := h.service.Timeline(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

// CheckConflicts reports advisory due-time collisions for a candidate batch
// without creating anything.
func (h *TaskHandler) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var proposed []models.Task
	if err := json.NewDecoder(r.Body).Decode(&proposed); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	flagged, err := h.service.CheckConflicts(r.Context(), userID, proposed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flagged)
}
