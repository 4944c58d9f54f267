package models

import "time"

// StudySession is a scheduled meeting of a study group. Times are stored as HH:MM.
type StudySession struct {
	SessionID   uint      `json:"session_id" gorm:"primaryKey"`
	GroupID     uint      `json:"group_id" gorm:"not null;index"`
	SessionDate time.Time `json:"session_date" gorm:"type:date;not null"`
	StartTime   string    `json:"start_time" gorm:"size:5;not null"`
	EndTime     string    `json:"end_time" gorm:"size:5;not null"`
	Location    string    `json:"location" gorm:"size:200;not null"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for StudySession
func (StudySession) TableName() string {
	return "study_sessions"
}
