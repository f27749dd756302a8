package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"freelance-dashboard/internal/app"
	"freelance-dashboard/internal/transport/http/middleware"
	"freelance-dashboard/internal/transport/http/response"
)

type DashboardHandler struct {
	dashboardService *app.DashboardService
}

func NewDashboardHandler(dashboardService *app.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		response.Msg(c, http.StatusUnauthorized, "Access token required")
		return
	}
	userID, ok := userIDAny.(uint)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	data, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		log.Printf("dashboard data error: %v", err)
		response.Err(c, http.StatusInternalServerError, "Error loading dashboard data")
		return
	}

	c.JSON(http.StatusOK, data)
}
