package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	apperrors "smartstats/internal/errors"
	"smartstats/internal/models"
)

// chartService handles chart-related business logic. Charts are reached
// only through their parent dashboard, so every operation first resolves
// ownership through the dashboards table.
type chartService struct {
	db *gorm.DB
}

// NewChartService creates a new ChartServicer.
func NewChartService(db *gorm.DB) ChartServicer {
	return &chartService{db: db}
}

// GetDashboardCharts lists the charts of a dashboard owned by the user.
func (s *chartService) GetDashboardCharts(userID, dashboardID uint) ([]models.Chart, error) {
	if err := s.ownedDashboard(userID, dashboardID); err != nil {
		return nil, err
	}

	charts := []models.Chart{}
	err := s.db.Where("dashboard_id = ?", dashboardID).Order("id").Find(&charts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return charts, nil
}

// CreateChart stores a new chart under a dashboard owned by the user.
// Data must be valid JSON; an absent config is stored as an empty object.
// Neither document is validated against a per-chart-type schema.
func (s *chartService) CreateChart(userID, dashboardID uint, title, chartType, data, config string) (*models.Chart, error) {
	if err := s.ownedDashboard(userID, dashboardID); err != nil {
		return nil, err
	}

	if title == "" || chartType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and chart_type are required")
	}
	if !json.Valid([]byte(data)) {
		return nil, apperrors.WithMessage(apperrors.ErrMalformedJSON, "chart data must be valid JSON")
	}
	if config == "" {
		config = "{}"
	} else if !json.Valid([]byte(config)) {
		return nil, apperrors.WithMessage(apperrors.ErrMalformedJSON, "chart config must be valid JSON")
	}

	chart := &models.Chart{
		Title:       title,
		ChartType:   chartType,
		Data:        data,
		Config:      config,
		DashboardID: dashboardID,
	}

	if err := s.db.Create(chart).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return chart, nil
}

// DeleteChart deletes a chart if its parent dashboard belongs to the user.
func (s *chartService) DeleteChart(userID, chartID uint) error {
	var chart models.Chart
	err := s.db.
		Joins("JOIN dashboards ON dashboards.id = charts.dashboard_id").
		Where("charts.id = ? AND dashboards.user_id = ?", chartID, userID).
		First(&chart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChartNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&chart).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ownedDashboard reports ErrDashboardNotFound unless the dashboard exists
// and belongs to the user.
func (s *chartService) ownedDashboard(userID, dashboardID uint) error {
	var count int64
	err := s.db.Model(&models.Dashboard{}).
		Where("id = ? AND user_id = ?", dashboardID, userID).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrDashboardNotFound
	}
	return nil
}
