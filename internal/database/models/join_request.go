package models

import "time"

// JoinRequest is a persisted intent to join a public group, decided by the owner
type JoinRequest struct {
	RequestID   uint       `json:"request_id" gorm:"primaryKey"`
	GroupID     uint       `json:"group_id" gorm:"not null;index:idx_join_requests_group_user"`
	UserID      uint       `json:"user_id" gorm:"not null;index:idx_join_requests_group_user"`
	JoinStatus  JoinStatus `json:"join_status" gorm:"type:varchar(20);not null;default:'pending';index"`
	RequestDate time.Time  `json:"request_date" gorm:"autoCreateTime"`
	ApprovedBy  *uint      `json:"approved_by,omitempty"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "join_requests"
}
