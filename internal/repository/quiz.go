package repository

import (
	"context"
	"errors"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuizRepository handles database operations for quizzes, their questions and answers
type QuizRepository struct {
	db *gorm.DB
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateQuiz inserts the quiz header only
func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(quiz).Error
}

// CreateQuestion inserts one question without its answers
func (r *QuizRepository) CreateQuestion(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(question).Error
}

// CreateAnswer inserts one answer
func (r *QuizRepository) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

// GetByID retrieves a quiz header
func (r *QuizRepository) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, "quiz_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions retrieves a quiz with its questions in authoring order and their answers
func (r *QuizRepository) GetWithQuestions(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position").Order("question_id")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_id")
		}).
		First(&quiz, "quiz_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// List retrieves quiz headers, newest first
func (r *QuizRepository) List(ctx context.Context, limit, offset int) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("quiz_id DESC").
		Limit(limit).
		Offset(offset).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetQuestionPoints returns the points of a question of the quiz. The bool is false when
// the question does not exist or belongs to another quiz.
func (r *QuizRepository) GetQuestionPoints(ctx context.Context, quizID, questionID uint) (int, bool, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Select("question_id", "points").
		First(&question, "question_id = ? AND quiz_id = ?", questionID, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return question.Points, true, nil
}

// IsCorrectAnswer reports whether answerID is a correct answer of questionID.
// An answer that belongs to a different question is never correct.
func (r *QuizRepository) IsCorrectAnswer(ctx context.Context, questionID, answerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("answer_id = ? AND question_id = ? AND is_correct = ?", answerID, questionID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateAttempt records a scored submission
func (r *QuizRepository) CreateAttempt(ctx context.Context, attempt *models.UserQuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

// ListAttempts lists a user's attempts, optionally filtered by quiz, newest first
func (r *QuizRepository) ListAttempts(ctx context.Context, userID, quizID uint) ([]models.UserQuizAttempt, error) {
	var attempts []models.UserQuizAttempt
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if quizID != 0 {
		query = query.Where("quiz_id = ?", quizID)
	}
	if err := query.Order("attempted_at DESC").Order("attempt_id DESC").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
