package handlers

import (
	"net/http"

	"studybuddy-backend/internal/auth"
	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizHandler handles quiz authoring, retrieval and submissions
type QuizHandler struct {
	service service.QuizServiceInterface
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(service service.QuizServiceInterface) *QuizHandler {
	return &QuizHandler{service: service}
}

// CreateQuizResponse represents the response of a created quiz
type CreateQuizResponse struct {
	Message string `json:"message" example:"Quiz created"`
	QuizID  uint   `json:"quiz_id" example:"7"`
}

// SubmitQuizPayload maps question ids to the chosen answer id
type SubmitQuizPayload struct {
	QuizID  uint                   `json:"quiz_id" example:"7"`
	Answers map[string]interface{} `json:"answers" swaggertype:"object,integer"`
}

// AnswerView is an answer option as shown to a quiz taker
type AnswerView struct {
	AnswerID   uint   `json:"answer_id"`
	AnswerText string `json:"answer_text"`
	IsCorrect  *bool  `json:"is_correct,omitempty"`
}

// QuestionView is a question as shown to a quiz taker
type QuestionView struct {
	QuestionID   uint                `json:"question_id"`
	QuestionText string              `json:"question_text"`
	QuestionType models.QuestionType `json:"question_type"`
	Points       int                 `json:"points"`
	Answers      []AnswerView        `json:"answers"`
}

// QuizView is a quiz with its questions. Correct answers are only revealed to the creator.
type QuizView struct {
	QuizID      uint           `json:"quiz_id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	CourseID    *uint          `json:"course_id"`
	CreatorID   uint           `json:"creator_id"`
	Questions   []QuestionView `json:"questions"`
}

func newQuizView(quiz *models.Quiz, viewerID uint) QuizView {
	reveal := quiz.CreatorID == viewerID
	view := QuizView{
		QuizID:      quiz.QuizID,
		Title:       quiz.Title,
		Description: quiz.Description,
		CourseID:    quiz.CourseID,
		CreatorID:   quiz.CreatorID,
		Questions:   make([]QuestionView, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		question := QuestionView{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Points:       q.Points,
			Answers:      make([]AnswerView, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			answer := AnswerView{AnswerID: a.AnswerID, AnswerText: a.AnswerText}
			if reveal {
				correct := a.IsCorrect
				answer.IsCorrect = &correct
			}
			question.Answers = append(question.Answers, answer)
		}
		view.Questions = append(view.Questions, question)
	}
	return view
}

// currentUser returns the authenticated user or responds 401
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok || userID == 0 {
		respondError(c, apperrors.ErrNotLoggedIn)
		return 0, false
	}
	return userID, true
}

// CreateQuiz authors a quiz with all of its questions and answers
// @Summary Create a quiz
// @Description Questions accept question_text, text, question or prompt; answers accept answers or options
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body QuizPayload true "Quiz with questions"
// @Success 201 {object} CreateQuizResponse "Created quiz"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /quiz/create [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload QuizPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req, err := payload.toRequest(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	quizID, err := h.service.CreateQuiz(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateQuizResponse{Message: "Quiz created", QuizID: quizID})
}

// Submit scores a quiz attempt
// @Summary Submit quiz answers
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body SubmitQuizPayload true "Answers keyed by question id"
// @Success 200 {object} service.QuizResult "Score"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /quiz/submit [post]
func (h *QuizHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload SubmitQuizPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if payload.QuizID == 0 {
		badRequest(c, "quiz_id is required")
		return
	}
	if payload.Answers == nil {
		badRequest(c, "answers is required")
		return
	}

	result, err := h.service.Submit(c, &service.SubmitQuizRequest{
		UserID:  userID,
		QuizID:  payload.QuizID,
		Answers: parseSubmittedAnswers(payload.Answers),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListQuizzes lists quizzes newest first
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.QuizListResponse "Quizzes"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /quiz [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 20)
	if !ok {
		return
	}

	quizzes, err := h.service.ListQuizzes(c, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz returns a quiz with its questions
// @Summary Get a quiz
// @Description Correct answers are included only for the quiz creator
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} QuizView "Quiz"
// @Failure 404 {object} ErrorResponse "Quiz not found"
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	quizID, ok := pathID(c, "id")
	if !ok {
		return
	}

	quiz, err := h.service.GetQuiz(c, quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newQuizView(quiz, userID))
}

// ListAttempts lists the caller's attempts at a quiz
// @Summary List my attempts
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} models.UserQuizAttempt "Attempts"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Router /quiz/{id}/attempts [get]
func (h *QuizHandler) ListAttempts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	quizID, ok := pathID(c, "id")
	if !ok {
		return
	}

	attempts, err := h.service.ListAttempts(c, userID, quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}
