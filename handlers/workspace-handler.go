package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DANGPP/btlthayPhong-sub000/models"
	"github.com/DANGPP/btlthayPhong-sub000/services"

	"github.com/gorilla/mux"
)

type WorkspaceHandler struct {
	service *services.WorkspaceService
	tasks   *services.TaskService
}

func NewWorkspaceHandler(service *services.WorkspaceService, tasks *services.TaskService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service, tasks: tasks}
}

func (h *WorkspaceHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Username    string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	workspace, err := h.service.Create(r.Context(), request.Name, request.Description, userID, request.Username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(workspace)
}

func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workspace, err := h.service.GetByID(r.Context(), vars["workspaceID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workspace)
}

func (h *WorkspaceHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	members, err := h.service.Members(r.Context(), vars["workspaceID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(members)
}

func (h *WorkspaceHandler) GetWorkspaceTodos(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tasks, err := h.tasks.ListByWorkspace(r.Context(), vars["workspaceID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

func (h *WorkspaceHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	var request struct {
		InviteeID string `json:"inviteeId"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	invitation, err := h.service.Invite(r.Context(), vars["workspaceID"], userID, request.InviteeID, models.ParseRole(request.Role))
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(invitation)
}

func (h *WorkspaceHandler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	var request struct {
		Accept   bool   `json:"accept"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.service.Respond(r.Context(), vars["invitationID"], userID, request.Username, request.Accept); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Invitation resolved successfully"}`))
}

func (h *WorkspaceHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	if err := h.service.RemoveMember(r.Context(), vars["workspaceID"], userID, vars["memberID"]); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Member removed from workspace successfully"}`))
}
