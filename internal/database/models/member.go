package models

import "time"

// GroupMember is the membership of a user in a study group, unique per (group, user)
type GroupMember struct {
	GroupID  uint       `json:"group_id" gorm:"primaryKey;autoIncrement:false"`
	UserID   uint       `json:"user_id" gorm:"primaryKey;autoIncrement:false;index"`
	Role     MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt time.Time  `json:"joined_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}
