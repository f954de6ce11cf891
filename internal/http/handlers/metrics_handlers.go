package handlers

import "net/http"

// GetMetricsHandler godoc
// @Summary Dashboard metrics
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.Metrics
// @Failure 403 {string} string "Forbidden"
// @Router /metrics [get]
func GetMetricsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	metrics, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		http.Error(w, "could not compute metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
