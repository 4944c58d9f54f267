package models

import "time"

// Resource is a shared link to study material hosted elsewhere
type Resource struct {
	ResourceID  uint      `json:"resource_id" gorm:"primaryKey"`
	UploaderID  uint      `json:"-" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null;size:200"`
	Description string    `json:"description" gorm:"type:text"`
	Filetype    string    `json:"filetype" gorm:"size:20;not null"`
	Source      string    `json:"source" gorm:"size:500;not null"`
	UploadDate  time.Time `json:"upload_date" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}
