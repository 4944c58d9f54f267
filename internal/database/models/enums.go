package models

// MemberRole defines the role of a user inside a study group
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// JoinStatus defines the lifecycle state of a join request
type JoinStatus string

const (
	JoinStatusPending  JoinStatus = "pending"
	JoinStatusApproved JoinStatus = "approved"
	JoinStatusRejected JoinStatus = "rejected"
)

// RequestStatus defines the state of a direct message request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is defined out of the status
func (s JoinStatus) IsTerminal() bool {
	return s == JoinStatusApproved || s == JoinStatusRejected
}
