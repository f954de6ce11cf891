package handlers

import (
	"net/http"
	"strconv"

	"github.com/gittydia/IMS-BAO/internal/models"
)

// GetActivityHandler godoc
// @Summary Get the most recent audit trail entries
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} models.Activity
// @Failure 403 {string} string "Forbidden"
// @Router /activity [get]
func GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = v
	}

	entries, err := trail.Recent(limit)
	if err != nil {
		http.Error(w, "could not fetch activity", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.Activity{}
	}
	writeJSON(w, http.StatusOK, entries)
}
