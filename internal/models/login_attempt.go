package models

// LoginAttempt is a write-only audit row recorded for every login attempt.
// Nothing in the application reads these back.
type LoginAttempt struct {
	Base
	Username string `gorm:"size:80;not null" json:"username"`
	Success  bool   `gorm:"not null" json:"success"`
}
