package handler

import (
	"net/http"

	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard := h.dashboardUsecase.Get()
	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
