package service

import (
	"context"
	"fmt"
	"sort"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// AnswerInput is one option of a question being authored
type AnswerInput struct {
	Text      string `json:"answer_text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionInput is one question being authored, in quiz order
type QuestionInput struct {
	Text    string              `json:"question_text" validate:"required"`
	Type    models.QuestionType `json:"question_type" validate:"omitempty,oneof=multiple_choice true_false short_answer"`
	Points  int                 `json:"points" validate:"min=0"`
	Answers []AnswerInput       `json:"answers" validate:"dive"`
}

// CreateQuizRequest represents the request to author a quiz with all its questions
type CreateQuizRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description *string         `json:"description,omitempty"`
	CourseID    *uint           `json:"course_id,omitempty"`
	CreatorID   uint            `json:"creator_id" validate:"required"`
	Questions   []QuestionInput `json:"questions" validate:"dive"`
}

// SubmitQuizRequest maps question ids to the selected answer id
type SubmitQuizRequest struct {
	UserID  uint          `json:"user_id" validate:"required"`
	QuizID  uint          `json:"quiz_id" validate:"required"`
	Answers map[uint]uint `json:"answers"`
}

// QuizResult is the outcome of a scored submission
type QuizResult struct {
	AttemptID uint `json:"attempt_id"`
	Score     int  `json:"score"`
	MaxScore  int  `json:"max_score"`
}

// QuizListResponse represents a page of quizzes
type QuizListResponse struct {
	Quizzes []models.Quiz `json:"quizzes"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
}

// QuizService handles quiz authoring, retrieval and scoring
type QuizService struct {
	tx        repository.Transactor
	repos     *repository.Repositories
	publisher events.Publisher
	validator *validator.Validate
}

// NewQuizService creates a new quiz service
func NewQuizService(tx repository.Transactor, repos *repository.Repositories, publisher events.Publisher, validator *validator.Validate) *QuizService {
	return &QuizService{
		tx:        tx,
		repos:     repos,
		publisher: publisher,
		validator: validator,
	}
}

// CreateQuiz inserts the quiz, its questions and their answers as one unit.
// Nothing is visible unless every row was written.
func (s *QuizService) CreateQuiz(ctx context.Context, req *CreateQuizRequest) (uint, error) {
	req.Title = cleanText(req.Title)
	req.Description = cleanOptional(req.Description)
	for i := range req.Questions {
		q := &req.Questions[i]
		q.Text = cleanText(q.Text)
		if q.Type == "" {
			q.Type = models.QuestionTypeMultipleChoice
		}
		for j := range q.Answers {
			q.Answers[j].Text = cleanText(q.Answers[j].Text)
		}
	}
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}

	quiz := &models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		CourseID:    req.CourseID,
		CreatorID:   req.CreatorID,
	}

	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Quizzes.CreateQuiz(ctx, quiz); err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}

		for i, q := range req.Questions {
			question := &models.Question{
				QuizID:       quiz.QuizID,
				QuestionText: q.Text,
				QuestionType: q.Type,
				Points:       q.Points,
				Position:     i + 1,
			}
			if err := tx.Quizzes.CreateQuestion(ctx, question); err != nil {
				return fmt.Errorf("failed to create question %d: %w", i+1, err)
			}

			for _, a := range q.Answers {
				answer := &models.Answer{
					QuestionID: question.QuestionID,
					AnswerText: a.Text,
					IsCorrect:  a.IsCorrect,
				}
				if err := tx.Quizzes.CreateAnswer(ctx, answer); err != nil {
					return fmt.Errorf("failed to create answer for question %d: %w", i+1, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("quiz creation rolled back")
		return 0, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.QuizCreated,
		Key:     fmt.Sprintf("quiz:%d", quiz.QuizID),
		ActorID: req.CreatorID,
		Data:    map[string]interface{}{"quiz_id": quiz.QuizID, "questions": len(req.Questions)},
	})
	return quiz.QuizID, nil
}

// Submit scores a submission and records the attempt in one transaction.
// A question outside the quiz adds nothing to either total. An answer only scores when it
// belongs to the question it was submitted for. An empty answer set records a 0/0 attempt.
func (s *QuizService) Submit(ctx context.Context, req *SubmitQuizRequest) (*QuizResult, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Answers == nil {
		return nil, apperrors.NewValidationError("answers", "is required")
	}

	questionIDs := make([]uint, 0, len(req.Answers))
	for qid := range req.Answers {
		questionIDs = append(questionIDs, qid)
	}
	sort.Slice(questionIDs, func(i, j int) bool { return questionIDs[i] < questionIDs[j] })

	result := &QuizResult{}
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Quizzes.GetByID(ctx, req.QuizID); err != nil {
			return notFound(err, apperrors.ErrQuizNotFound, "load quiz")
		}
		for _, qid := range questionIDs {
			points, ok, err := tx.Quizzes.GetQuestionPoints(ctx, req.QuizID, qid)
			if err != nil {
				return fmt.Errorf("failed to load question %d: %w", qid, err)
			}
			if !ok {
				continue
			}
			result.MaxScore += points

			correct, err := tx.Quizzes.IsCorrectAnswer(ctx, qid, req.Answers[qid])
			if err != nil {
				return fmt.Errorf("failed to check answer for question %d: %w", qid, err)
			}
			if correct {
				result.Score += points
			}
		}

		attempt := &models.UserQuizAttempt{
			UserID:   req.UserID,
			QuizID:   req.QuizID,
			Score:    result.Score,
			MaxScore: result.MaxScore,
		}
		if err := tx.Quizzes.CreateAttempt(ctx, attempt); err != nil {
			return fmt.Errorf("failed to record attempt: %w", err)
		}
		result.AttemptID = attempt.AttemptID
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.QuizAttempted,
		Key:     fmt.Sprintf("quiz:%d", req.QuizID),
		ActorID: req.UserID,
		Data: map[string]interface{}{
			"attempt_id": result.AttemptID,
			"score":      result.Score,
			"max_score":  result.MaxScore,
		},
	})
	return result, nil
}

// GetQuiz returns a quiz with its questions and answers
func (s *QuizService) GetQuiz(ctx context.Context, quizID uint) (*models.Quiz, error) {
	quiz, err := s.repos.Quizzes.GetWithQuestions(ctx, quizID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrQuizNotFound, "load quiz")
	}
	return quiz, nil
}

// ListQuizzes returns one page of quiz headers. page starts at 1; limit is clamped to 1..100.
func (s *QuizService) ListQuizzes(ctx context.Context, page, limit int) (*QuizListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	quizzes, err := s.repos.Quizzes.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return &QuizListResponse{Quizzes: quizzes, Page: page, Limit: limit}, nil
}

// ListAttempts returns the user's attempts, for one quiz when quizID is not zero
func (s *QuizService) ListAttempts(ctx context.Context, userID, quizID uint) ([]models.UserQuizAttempt, error) {
	attempts, err := s.repos.Quizzes.ListAttempts(ctx, userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}
