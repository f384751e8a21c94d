package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"smartstats/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique
// username/email. The plaintext password is always "password123".
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", n))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestDashboard creates a dashboard owned by the given user.
func CreateTestDashboard(t *testing.T, db *gorm.DB, userID uint) *models.Dashboard {
	t.Helper()

	dashboard := &models.Dashboard{
		Name:        fmt.Sprintf("Test Dashboard %d", nextID()),
		Description: "fixture dashboard",
		UserID:      userID,
	}
	if err := db.Create(dashboard).Error; err != nil {
		t.Fatalf("failed to create test dashboard: %v", err)
	}
	return dashboard
}

// CreateTestChart creates a chart on the given dashboard with a small
// valid data payload.
func CreateTestChart(t *testing.T, db *gorm.DB, dashboardID uint) *models.Chart {
	t.Helper()

	chart := &models.Chart{
		Title:       fmt.Sprintf("Test Chart %d", nextID()),
		ChartType:   "bar",
		Data:        `[{"name":"A","value":1}]`,
		Config:      `{}`,
		DashboardID: dashboardID,
	}
	if err := db.Create(chart).Error; err != nil {
		t.Fatalf("failed to create test chart: %v", err)
	}
	return chart
}
