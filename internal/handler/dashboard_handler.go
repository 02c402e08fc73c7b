package handler

import (
	"context"
	"net/http"

	"studentdash/internal/model"
)

type DashboardService interface {
	Summary(ctx context.Context) (*model.DashboardStats, error)
}

type DashboardHandler struct {
	dashboardService DashboardService
}

func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard serves GET /api/dashboard.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
