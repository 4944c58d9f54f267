package service_test

import (
	"context"
	"errors"
	"testing"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizService(fx *fixture) *service.QuizService {
	return service.NewQuizService(fx.tx, fx.repos, fx.publisher, service.NewValidator())
}

func sampleQuiz(creatorID uint) *service.CreateQuizRequest {
	return &service.CreateQuizRequest{
		Title:     "Sorting",
		CreatorID: creatorID,
		Questions: []service.QuestionInput{
			{
				Text:   "Stable sort?",
				Points: 2,
				Answers: []service.AnswerInput{
					{Text: "Merge sort", IsCorrect: true},
					{Text: "Heap sort"},
				},
			},
			{
				Text:   "Average quicksort?",
				Points: 3,
				Answers: []service.AnswerInput{
					{Text: "O(n^2)"},
					{Text: "O(n log n)", IsCorrect: true},
				},
			},
		},
	}
}

// answerIDs returns the answer ids of the quiz grouped by question, in authoring order
func answerIDs(t *testing.T, svc *service.QuizService, quizID uint) ([]uint, [][]uint) {
	t.Helper()
	quiz, err := svc.GetQuiz(context.Background(), quizID)
	require.NoError(t, err)
	questions := make([]uint, 0, len(quiz.Questions))
	answers := make([][]uint, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, q.QuestionID)
		ids := make([]uint, 0, len(q.Answers))
		for _, a := range q.Answers {
			ids = append(ids, a.AnswerID)
		}
		answers = append(answers, ids)
	}
	return questions, answers
}

func TestCreateQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("persists questions in order", func(t *testing.T) {
		fx := newFixture(t)
		svc := newQuizService(fx)

		quizID, err := svc.CreateQuiz(ctx, sampleQuiz(fx.user(t).UserID))
		require.NoError(t, err)

		quiz, err := svc.GetQuiz(ctx, quizID)
		require.NoError(t, err)
		require.Len(t, quiz.Questions, 2)
		assert.Equal(t, "Stable sort?", quiz.Questions[0].QuestionText)
		assert.Equal(t, 1, quiz.Questions[0].Position)
		assert.Equal(t, models.QuestionTypeMultipleChoice, quiz.Questions[0].QuestionType)
		assert.Len(t, quiz.Questions[1].Answers, 2)
		assert.Equal(t, []events.Type{events.QuizCreated}, fx.publisher.types())
	})

	t.Run("markup is stripped", func(t *testing.T) {
		fx := newFixture(t)
		svc := newQuizService(fx)
		req := sampleQuiz(fx.user(t).UserID)
		req.Title = "<script>alert(1)</script>Graphs & trees"

		quizID, err := svc.CreateQuiz(ctx, req)
		require.NoError(t, err)

		quiz, err := svc.GetQuiz(ctx, quizID)
		require.NoError(t, err)
		assert.Equal(t, "Graphs & trees", quiz.Title)
	})

	t.Run("failure on third answer rolls back everything", func(t *testing.T) {
		fx := newFixture(t)
		svc := newQuizService(fx)
		creator := fx.user(t)

		inserted := 0
		require.NoError(t, fx.db.Callback().Create().Before("gorm:create").Register("test:fail_third_answer", func(tx *gorm.DB) {
			if tx.Statement.Table != "answers" {
				return
			}
			inserted++
			if inserted == 3 {
				_ = tx.AddError(errors.New("disk full"))
			}
		}))

		_, err := svc.CreateQuiz(ctx, sampleQuiz(creator.UserID))
		require.Error(t, err)

		for _, model := range []interface{}{&models.Quiz{}, &models.Question{}, &models.Answer{}} {
			var count int64
			require.NoError(t, fx.db.Model(model).Count(&count).Error)
			assert.Zero(t, count)
		}
		assert.Empty(t, fx.publisher.types())
	})

	t.Run("title required", func(t *testing.T) {
		fx := newFixture(t)
		svc := newQuizService(fx)
		req := sampleQuiz(1)
		req.Title = "   "

		_, err := svc.CreateQuiz(ctx, req)

		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestSubmitQuiz(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *service.QuizService, uint, []uint, [][]uint) {
		fx := newFixture(t)
		svc := newQuizService(fx)
		quizID, err := svc.CreateQuiz(ctx, sampleQuiz(fx.user(t).UserID))
		require.NoError(t, err)
		questions, answers := answerIDs(t, svc, quizID)
		return fx, svc, quizID, questions, answers
	}

	t.Run("partial score", func(t *testing.T) {
		fx, svc, quizID, questions, answers := setup(t)
		student := fx.user(t)

		result, err := svc.Submit(ctx, &service.SubmitQuizRequest{
			UserID: student.UserID,
			QuizID: quizID,
			Answers: map[uint]uint{
				questions[0]: answers[0][0],
				questions[1]: answers[1][0],
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, 5, result.MaxScore)

		attempts, err := svc.ListAttempts(ctx, student.UserID, quizID)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, result.AttemptID, attempts[0].AttemptID)
		assert.Equal(t, 2, attempts[0].Score)
	})

	t.Run("correct answer of another question scores nothing", func(t *testing.T) {
		fx, svc, quizID, questions, answers := setup(t)

		result, err := svc.Submit(ctx, &service.SubmitQuizRequest{
			UserID:  fx.user(t).UserID,
			QuizID:  quizID,
			Answers: map[uint]uint{questions[0]: answers[1][1]},
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 2, result.MaxScore)
	})

	t.Run("question of another quiz is ignored", func(t *testing.T) {
		fx, svc, quizID, _, _ := setup(t)
		otherID, err := svc.CreateQuiz(ctx, sampleQuiz(fx.user(t).UserID))
		require.NoError(t, err)
		otherQuestions, otherAnswers := answerIDs(t, svc, otherID)

		result, err := svc.Submit(ctx, &service.SubmitQuizRequest{
			UserID:  fx.user(t).UserID,
			QuizID:  quizID,
			Answers: map[uint]uint{otherQuestions[0]: otherAnswers[0][0]},
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 0, result.MaxScore)
	})

	t.Run("missing answers", func(t *testing.T) {
		fx, svc, quizID, _, _ := setup(t)

		_, err := svc.Submit(ctx, &service.SubmitQuizRequest{UserID: fx.user(t).UserID, QuizID: quizID})

		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("empty answers record a zero attempt", func(t *testing.T) {
		fx, svc, quizID, _, _ := setup(t)
		student := fx.user(t)

		result, err := svc.Submit(ctx, &service.SubmitQuizRequest{
			UserID:  student.UserID,
			QuizID:  quizID,
			Answers: map[uint]uint{},
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 0, result.MaxScore)
		assert.NotZero(t, result.AttemptID)

		attempts, err := svc.ListAttempts(ctx, student.UserID, quizID)
		require.NoError(t, err)
		assert.Len(t, attempts, 1)
	})

	t.Run("unknown quiz", func(t *testing.T) {
		fx, svc, _, _, _ := setup(t)
		student := fx.user(t)

		_, err := svc.Submit(ctx, &service.SubmitQuizRequest{
			UserID:  student.UserID,
			QuizID:  9999,
			Answers: map[uint]uint{1: 1},
		})

		assert.ErrorIs(t, err, apperrors.ErrQuizNotFound)
		attempts, err := svc.ListAttempts(ctx, student.UserID, 0)
		require.NoError(t, err)
		assert.Empty(t, attempts)
	})
}

func TestGetQuiz_NotFound(t *testing.T) {
	fx := newFixture(t)

	_, err := newQuizService(fx).GetQuiz(context.Background(), 404)

	assert.ErrorIs(t, err, apperrors.ErrQuizNotFound)
}

func TestListQuizzes_ClampsPaging(t *testing.T) {
	fx := newFixture(t)
	svc := newQuizService(fx)
	creator := fx.user(t)
	for i := 0; i < 3; i++ {
		_, err := svc.CreateQuiz(context.Background(), sampleQuiz(creator.UserID))
		require.NoError(t, err)
	}

	page, err := svc.ListQuizzes(context.Background(), 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.Limit)
	assert.Len(t, page.Quizzes, 3)

	page, err = svc.ListQuizzes(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Quizzes, 1)
}
