package models

import "time"

// User represents a registered student
type User struct {
	UserID       uint      `json:"user_id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
	FirstName    string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	CollegeLevel string    `json:"college_level,omitempty" gorm:"size:50"`
	CollegeID    *uint     `json:"college_id,omitempty" gorm:"index"`
	MajorID      *uint     `json:"major_id,omitempty" gorm:"index"`
	Bio          *string   `json:"bio,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
