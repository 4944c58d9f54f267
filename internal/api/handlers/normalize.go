package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"
)

// Clients send authoring payloads with several spellings of the same field.
// The helpers below fold them into the service inputs.

// QuizPayload is the loosely typed body of POST /quiz/create
type QuizPayload struct {
	Title       string                   `json:"title" example:"Graph algorithms"`
	Description *string                  `json:"description,omitempty"`
	CourseID    *uint                    `json:"course_id,omitempty"`
	Questions   []map[string]interface{} `json:"questions"`
}

// FlashcardSetPayload is the loosely typed body of POST /flashcards/create
type FlashcardSetPayload struct {
	Title       string                   `json:"title" example:"Big-O cheatsheet"`
	Description *string                  `json:"description,omitempty"`
	CourseID    *uint                    `json:"course_id,omitempty"`
	Cards       []map[string]interface{} `json:"cards,omitempty"`
	Flashcards  []map[string]interface{} `json:"flashcards,omitempty"`
}

var (
	questionTextKeys = []string{"question_text", "text", "question", "prompt"}
	questionTypeKeys = []string{"question_type", "type"}
	answerListKeys   = []string{"answers", "options"}
	answerTextKeys   = []string{"answer_text", "text", "label", "option"}
	correctKeys      = []string{"is_correct", "correct", "isCorrect"}
	cardFrontKeys    = []string{"front_text", "front", "question"}
	cardBackKeys     = []string{"back_text", "back", "answer"}
)

func (p *QuizPayload) toRequest(creatorID uint) (*service.CreateQuizRequest, error) {
	req := &service.CreateQuizRequest{
		Title:       p.Title,
		Description: p.Description,
		CourseID:    p.CourseID,
		CreatorID:   creatorID,
		Questions:   make([]service.QuestionInput, 0, len(p.Questions)),
	}
	for i, raw := range p.Questions {
		text := firstString(raw, questionTextKeys...)
		if text == "" {
			return nil, apperrors.NewValidationError("", fmt.Sprintf("Question %d is missing text", i+1))
		}
		question := service.QuestionInput{
			Text:   text,
			Type:   models.QuestionType(firstString(raw, questionTypeKeys...)),
			Points: 1,
		}
		if question.Type == "" {
			question.Type = models.QuestionTypeMultipleChoice
		}
		if points, ok := intValue(firstValue(raw, "points")); ok {
			question.Points = points
		}
		for _, rawAnswer := range objectList(firstValue(raw, answerListKeys...)) {
			answerText := firstString(rawAnswer, answerTextKeys...)
			if answerText == "" {
				continue
			}
			question.Answers = append(question.Answers, service.AnswerInput{
				Text:      answerText,
				IsCorrect: truthy(firstValue(rawAnswer, correctKeys...)),
			})
		}
		req.Questions = append(req.Questions, question)
	}
	return req, nil
}

func (p *FlashcardSetPayload) toRequest(creatorID uint) *service.CreateFlashcardSetRequest {
	raw := p.Cards
	if len(raw) == 0 {
		raw = p.Flashcards
	}
	req := &service.CreateFlashcardSetRequest{
		Title:       p.Title,
		Description: p.Description,
		CourseID:    p.CourseID,
		CreatorID:   creatorID,
		Cards:       make([]service.CardInput, 0, len(raw)),
	}
	for _, card := range raw {
		front := firstString(card, cardFrontKeys...)
		back := firstString(card, cardBackKeys...)
		if front == "" || back == "" {
			continue
		}
		req.Cards = append(req.Cards, service.CardInput{Front: front, Back: back})
	}
	return req
}

// firstValue returns the value of the first key present and not null
func firstValue(m map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstString returns the first non-blank string value among keys
func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func objectList(v interface{}) []map[string]interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

func intValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

// truthy coerces JSON booleans, numbers and strings like "true", "1" or "yes"
func truthy(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "y":
			return true
		}
	}
	return false
}

// parseSubmittedAnswers converts {"<question id>": <answer id>} into typed ids.
// Entries whose keys or values are not ids are dropped.
func parseSubmittedAnswers(raw map[string]interface{}) map[uint]uint {
	out := make(map[uint]uint, len(raw))
	for key, value := range raw {
		questionID, err := strconv.ParseUint(strings.TrimSpace(key), 10, 64)
		if err != nil || questionID == 0 {
			continue
		}
		answerID, ok := intValue(value)
		if !ok || answerID <= 0 {
			continue
		}
		out[uint(questionID)] = uint(answerID)
	}
	return out
}
