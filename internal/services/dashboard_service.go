package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "smartstats/internal/errors"
	"smartstats/internal/models"
)

// dashboardService handles dashboard-related business logic.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// CreateDashboard creates a new dashboard owned by the given user.
func (s *dashboardService) CreateDashboard(userID uint, name, description string) (*models.Dashboard, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Dashboard name is required")
	}

	dashboard := &models.Dashboard{
		Name:        name,
		Description: description,
		UserID:      userID,
	}

	if err := s.db.Create(dashboard).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return dashboard, nil
}

// GetUserDashboards lists the user's dashboards with per-dashboard chart
// counts, in creation order.
func (s *dashboardService) GetUserDashboards(userID uint) ([]DashboardSummary, error) {
	summaries := []DashboardSummary{}
	err := s.db.Model(&models.Dashboard{}).
		Select("dashboards.id, dashboards.name, dashboards.description, count(charts.id) as chart_count").
		Joins("LEFT JOIN charts ON charts.dashboard_id = dashboards.id").
		Where("dashboards.user_id = ?", userID).
		Group("dashboards.id, dashboards.name, dashboards.description").
		Order("dashboards.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return summaries, nil
}

// DeleteDashboard deletes a dashboard and all of its charts in one
// transaction. The cascade is explicit rather than left to the schema so
// the guarantee holds on every supported database. A dashboard owned by a
// different user reports not-found.
func (s *dashboardService) DeleteDashboard(userID, dashboardID uint) error {
	var dashboard models.Dashboard
	err := s.db.Where("id = ? AND user_id = ?", dashboardID, userID).First(&dashboard).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDashboardNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dashboard_id = ?", dashboard.ID).Delete(&models.Chart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dashboard).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
