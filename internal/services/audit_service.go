package services

import (
	"gorm.io/gorm"

	"smartstats/internal/logger"
	"smartstats/internal/models"
)

// loginAuditService records login attempts. The trail is write-only:
// rows are inserted and logged, never read back.
type loginAuditService struct {
	db *gorm.DB
}

// NewLoginAuditService creates a new LoginAuditor.
func NewLoginAuditService(db *gorm.DB) LoginAuditor {
	return &loginAuditService{db: db}
}

// Record logs a login attempt and persists it. Errors are logged but never
// propagate; auditing must not disrupt the login flow.
func (s *loginAuditService) Record(username string, success bool) {
	logger.Get().Infow("login attempt",
		"username", username,
		"success", success,
	)

	attempt := &models.LoginAttempt{
		Username: username,
		Success:  success,
	}
	if err := s.db.Create(attempt).Error; err != nil {
		logger.Get().Errorw("failed to record login attempt",
			"error", err,
			"username", username,
		)
	}
}
