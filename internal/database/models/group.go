package models

import "time"

// StudyGroup represents a capacity limited study group for a course.
// InviteCode is a single slot: generating a new code overwrites the previous one.
type StudyGroup struct {
	GroupID         uint       `json:"group_id" gorm:"primaryKey"`
	GroupName       string     `json:"group_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	MaxMembers      int        `json:"max_members" gorm:"not null" validate:"required,min=1"`
	IsPrivate       bool       `json:"is_private" gorm:"not null;default:false"`
	CourseID        uint       `json:"course_id" gorm:"not null;index" validate:"required"`
	InviteCode      *string    `json:"-" gorm:"size:8;uniqueIndex"`
	InviteExpiresAt *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`

	// Relationships
	Course       *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID;references:CourseID"`
	Members      []GroupMember  `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	JoinRequests []JoinRequest  `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Sessions     []StudySession `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StudyGroup
func (StudyGroup) TableName() string {
	return "study_groups"
}
