package repository

import "time"

// PublicGroupRow is a discoverable group with its live member count
type PublicGroupRow struct {
	GroupID     uint    `json:"group_id"`
	GroupName   string  `json:"group_name"`
	MaxMembers  int     `json:"max_members"`
	Members     int64   `json:"members"`
	LastSession *string `json:"last_session"`
}

// MemberRow is a group member joined with the user's display name
type MemberRow struct {
	UserID   uint      `json:"user_id"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// UserGroupRow is a group the user belongs to, as listed on the dashboard
type UserGroupRow struct {
	GroupID    uint   `json:"group_id"`
	GroupName  string `json:"group_name"`
	IsPrivate  bool   `json:"is_private"`
	Role       string `json:"role"`
	CourseCode string `json:"course_code"`
}

// PendingRequestRow is a pending join request joined with the requester's name
type PendingRequestRow struct {
	RequestID   uint      `json:"request_id"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	RequestDate time.Time `json:"request_date"`
}

// UpcomingSessionRow is a session of one of the user's groups
type UpcomingSessionRow struct {
	SessionID   uint      `json:"session_id"`
	GroupID     uint      `json:"group_id"`
	GroupName   string    `json:"group_name"`
	SessionDate time.Time `json:"session_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Location    string    `json:"location"`
}

// AccountRow is a user's editable profile with the names behind its lookup ids
type AccountRow struct {
	UserID       uint    `json:"user_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	CollegeLevel string  `json:"college_level"`
	CollegeID    *uint   `json:"college_id"`
	CollegeName  *string `json:"college_name"`
	MajorID      *uint   `json:"major_id"`
	MajorName    *string `json:"major_name"`
	Bio          *string `json:"bio"`
}

// CourseSearchRow is a course search hit
type CourseSearchRow struct {
	CourseID    uint    `json:"course_id"`
	CourseCode  string  `json:"course_code"`
	CourseName  string  `json:"course_name"`
	CollegeName *string `json:"college_name"`
}

// InboxRow is a conversation as listed in a user's inbox
type InboxRow struct {
	ConversationID uint       `json:"conversation_id"`
	OtherUserID    uint       `json:"other_user_id"`
	OtherUserName  string     `json:"other_user_name"`
	LastMessage    *string    `json:"last_message"`
	LastSentAt     *time.Time `json:"last_sent_at"`
	RequestStatus  *string    `json:"request_status"`
	RequesterID    *uint      `json:"requester_user_id"`
}

// MessageRequestRow is a pending message request joined with the requester's name
type MessageRequestRow struct {
	RequestID      uint      `json:"request_id"`
	ConversationID uint      `json:"conversation_id"`
	RequesterID    uint      `json:"requester_user_id"`
	RequesterName  string    `json:"requester_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatMessageRow is a group chat message with its author's name
type ChatMessageRow struct {
	MessageID uint      `json:"message_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	SentTime  time.Time `json:"sent_time"`
}
