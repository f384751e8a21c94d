package services

import "smartstats/internal/models"

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// DashboardSummary is a dashboard list entry with its chart count.
type DashboardSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ChartCount  int64  `json:"chart_count"`
}

// DashboardServicer defines the contract for dashboard-related business logic.
// Every operation is scoped to the owning user; a dashboard that exists but
// belongs to someone else behaves exactly like one that does not exist.
type DashboardServicer interface {
	CreateDashboard(userID uint, name, description string) (*models.Dashboard, error)
	GetUserDashboards(userID uint) ([]DashboardSummary, error)
	DeleteDashboard(userID, dashboardID uint) error
}

// ChartServicer defines the contract for chart-related business logic.
// Ownership is checked transitively through the parent dashboard.
type ChartServicer interface {
	GetDashboardCharts(userID, dashboardID uint) ([]models.Chart, error)
	CreateChart(userID, dashboardID uint, title, chartType, data, config string) (*models.Chart, error)
	DeleteChart(userID, chartID uint) error
}

// LoginAuditor records login attempts as a write-only audit trail.
type LoginAuditor interface {
	Record(username string, success bool)
}
