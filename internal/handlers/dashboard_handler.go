package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "smartstats/internal/errors"
	"smartstats/internal/services"
)

// DashboardHandler handles dashboard-related requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// CreateDashboardRequest represents the request payload for creating a dashboard.
type CreateDashboardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=1000"`
}

// DashboardResponse represents a created dashboard in the response.
type DashboardResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetUserDashboards lists the authenticated user's dashboards
// @Summary     List dashboards
// @Description List the authenticated user's dashboards with chart counts
// @Tags        dashboards
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.DashboardSummary "Dashboards"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboards [get]
func (h *DashboardHandler) GetUserDashboards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.dashboardService.GetUserDashboards(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// CreateDashboard creates a new dashboard
// @Summary     Create a dashboard
// @Description Create a new dashboard owned by the authenticated user
// @Tags        dashboards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDashboardRequest true "Dashboard details"
// @Success     201 {object} DashboardResponse "Dashboard created"
// @Failure     400 {object} ErrorResponse "Missing name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboards [post]
func (h *DashboardHandler) CreateDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Dashboard name is required"))
		return
	}

	dashboard, err := h.dashboardService.CreateDashboard(userID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          dashboard.ID,
		"name":        dashboard.Name,
		"description": dashboard.Description,
	})
}

// DeleteDashboard deletes a dashboard and its charts
// @Summary     Delete a dashboard
// @Description Delete a dashboard owned by the authenticated user; its charts go with it
// @Tags        dashboards
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Dashboard ID"
// @Success     200 {object} MessageResponse "Dashboard deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found or not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboards/{id} [delete]
func (h *DashboardHandler) DeleteDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.dashboardService.DeleteDashboard(userID, dashboardID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dashboard deleted"})
}
