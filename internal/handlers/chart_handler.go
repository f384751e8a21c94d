package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "smartstats/internal/errors"
	"smartstats/internal/models"
	"smartstats/internal/services"
)

// ChartHandler handles chart-related requests.
type ChartHandler struct {
	chartService services.ChartServicer
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartService services.ChartServicer) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// CreateChartRequest represents the request payload for creating a chart.
// Data and Config are opaque JSON documents checked only for syntactic
// well-formedness.
type CreateChartRequest struct {
	Title     string          `json:"title" binding:"required,min=1,max=200"`
	ChartType string          `json:"chart_type" binding:"required,min=1,max=50"`
	Data      json.RawMessage `json:"data" binding:"required,json_document"`
	Config    json.RawMessage `json:"config" binding:"omitempty,json_document"`
}

// ChartResponse represents a chart in list responses.
type ChartResponse struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	ChartType string          `json:"chart_type"`
	Data      models.Document `json:"data"`
	Config    models.Document `json:"config"`
}

// GetDashboardCharts lists the charts of a dashboard
// @Summary     List charts
// @Description List all charts of a dashboard owned by the authenticated user
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Dashboard ID"
// @Success     200 {array} ChartResponse "Charts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Dashboard not found or not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboards/{id}/charts [get]
func (h *ChartHandler) GetDashboardCharts(c *gin.Context) {
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

	charts, err := h.chartService.GetDashboardCharts(userID, dashboardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]ChartResponse, 0, len(charts))
	for i := range charts {
		response = append(response, ChartResponse{
			ID:        charts[i].ID,
			Title:     charts[i].Title,
			ChartType: charts[i].ChartType,
			Data:      charts[i].ParsedData(),
			Config:    charts[i].ParsedConfig(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// CreateChart creates a chart under a dashboard
// @Summary     Create a chart
// @Description Create a chart on a dashboard owned by the authenticated user
// @Tags        charts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Dashboard ID"
// @Param       request body CreateChartRequest true "Chart details"
// @Success     201 {object} MessageResponse "Chart created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Dashboard not found or not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboards/{id}/charts [post]
func (h *ChartHandler) CreateChart(c *gin.Context) {
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

	var req CreateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	chart, err := h.chartService.CreateChart(userID, dashboardID,
		req.Title, req.ChartType, string(req.Data), string(req.Config))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Chart created", "id": chart.ID})
}

// DeleteChart deletes a chart
// @Summary     Delete a chart
// @Description Delete a chart whose parent dashboard belongs to the authenticated user
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Chart ID"
// @Success     200 {object} MessageResponse "Chart deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Chart not found or not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charts/{id} [delete]
func (h *ChartHandler) DeleteChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	chartID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.chartService.DeleteChart(userID, chartID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chart deleted"})
}
