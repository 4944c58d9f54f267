package models

import "time"

// FlashcardSet owns a collection of cards
type FlashcardSet struct {
	SetID       uint    `json:"set_id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null;size:200"`
	Description *string `json:"description" gorm:"type:text"`
	CourseID    *uint   `json:"course_id" gorm:"index"`
	CreatorID   uint    `json:"creator_id" gorm:"not null;index"`
	Timestamps

	Cards []Flashcard `json:"cards,omitempty" gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FlashcardSet
func (FlashcardSet) TableName() string {
	return "flashcard_sets"
}

// Flashcard is a two sided card inside a set
type Flashcard struct {
	CardID    uint      `json:"card_id" gorm:"primaryKey"`
	SetID     uint      `json:"set_id" gorm:"not null;index"`
	FrontText string    `json:"front_text" gorm:"type:text;not null"`
	BackText  string    `json:"back_text" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Flashcard
func (Flashcard) TableName() string {
	return "flashcards"
}
