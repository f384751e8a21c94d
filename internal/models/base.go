package models

import "time"

// Base contains common columns for all tables. Primary keys are
// auto-incrementing integers; ids appear as numbers on the wire.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
