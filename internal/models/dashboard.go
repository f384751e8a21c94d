package models

// Dashboard represents a user-owned collection of charts. Deleting a
// dashboard removes its charts with it.
type Dashboard struct {
	Base
	Name        string  `gorm:"size:120;not null" json:"name"`
	Description string  `json:"description"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Charts      []Chart `gorm:"foreignKey:DashboardID;constraint:OnDelete:CASCADE" json:"charts,omitempty"`
}
