package models

// User represents the user model in the database. The password column
// stores a bcrypt hash and is never serialized.
type User struct {
	Base
	Username   string      `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email      string      `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password   string      `gorm:"size:200;not null" json:"-"`
	Dashboards []Dashboard `gorm:"foreignKey:UserID" json:"dashboards,omitempty"`
}
