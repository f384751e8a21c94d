package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartstats/internal/analysis"
	apperrors "smartstats/internal/errors"
)

// GenerateHandler handles chart generation requests: pasted CSV data is
// summarized and matched to a chart type, a bare prompt falls back to a
// synthetic dataset.
type GenerateHandler struct {
	generator *analysis.Generator
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generator *analysis.Generator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// GenerateChartRequest represents the chart generation request payload.
type GenerateChartRequest struct {
	Prompt  string `json:"prompt"`
	CSVData string `json:"csv_data"`
}

// GenerateChartResponse represents the response for CSV-backed generation.
type GenerateChartResponse struct {
	Success    bool                 `json:"success"`
	Stats      *analysis.Stats      `json:"stats"`
	Suggestion *analysis.Suggestion `json:"suggestion"`
}

// GenerateChart analyzes CSV data or fabricates a dataset from the prompt
// @Summary     Generate a chart suggestion
// @Description Analyze pasted CSV data into summary statistics and a chart suggestion; without data, fabricate a dataset themed by the prompt
// @Tags        generate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GenerateChartRequest true "Prompt and optional CSV data"
// @Success     200 {object} GenerateChartResponse "Stats and suggestion, or a bare suggestion when no data was supplied"
// @Failure     400 {object} ErrorResponse "Malformed CSV"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /generate-chart [post]
func (h *GenerateHandler) GenerateChart(c *gin.Context) {
	var req GenerateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.CSVData != "" {
		table, err := analysis.ParseCSV(req.CSVData)
		if err != nil {
			respondWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"stats":      analysis.Summarize(table),
			"suggestion": analysis.Suggest(table, req.Prompt),
		})
		return
	}

	c.JSON(http.StatusOK, h.generator.FromPrompt(req.Prompt))
}
