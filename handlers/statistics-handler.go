package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/services"
)

type StatisticsHandler struct {
	service *services.StatisticsService
}

func NewStatisticsHandler(service *services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetOverview returns the statistics summary for the acting user. ?asOf=
// (yyyy-MM-dd) anchors the trailing windows; it defaults to now.
func (h *StatisticsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	asOf := time.Now().UTC()
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			asOf = parsed
		}
	}

	stats, err := h.service.Overview(r.Context(), userID, asOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
