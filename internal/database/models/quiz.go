package models

import "time"

// Quiz owns an ordered collection of questions
type Quiz struct {
	QuizID      uint      `json:"quiz_id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:200"`
	Description *string   `json:"description" gorm:"type:text"`
	CourseID    *uint     `json:"course_id" gorm:"index"`
	CreatorID   uint      `json:"creator_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Quiz
func (Quiz) TableName() string {
	return "quizzes"
}

// Question belongs to a quiz; Position keeps the authoring order
type Question struct {
	QuestionID   uint         `json:"question_id" gorm:"primaryKey"`
	QuizID       uint         `json:"quiz_id" gorm:"not null;index"`
	QuestionText string       `json:"question_text" gorm:"type:text;not null"`
	QuestionType QuestionType `json:"question_type" gorm:"type:varchar(30);not null;default:'multiple_choice'"`
	Points       int          `json:"points" gorm:"not null"`
	Position     int          `json:"position" gorm:"not null"`

	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Question
func (Question) TableName() string {
	return "questions"
}

// Answer is one selectable option of a question
type Answer struct {
	AnswerID   uint   `json:"answer_id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	AnswerText string `json:"answer_text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}

// TableName returns the table name for Answer
func (Answer) TableName() string {
	return "answers"
}

// UserQuizAttempt is the immutable record of one scored submission
type UserQuizAttempt struct {
	AttemptID   uint      `json:"attempt_id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	QuizID      uint      `json:"quiz_id" gorm:"not null;index"`
	Score       int       `json:"score" gorm:"not null"`
	MaxScore    int       `json:"max_score" gorm:"not null"`
	AttemptedAt time.Time `json:"attempted_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for UserQuizAttempt
func (UserQuizAttempt) TableName() string {
	return "user_quiz_attempts"
}
