package handlers

import (
	"net/http"

	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FlashcardHandler handles flashcard sets
type FlashcardHandler struct {
	service service.FlashcardServiceInterface
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(service service.FlashcardServiceInterface) *FlashcardHandler {
	return &FlashcardHandler{service: service}
}

// CreateSetResponse represents the response of a created flashcard set
type CreateSetResponse struct {
	Message string `json:"message" example:"Flashcard set created"`
	SetID   uint   `json:"set_id" example:"3"`
}

// CreateSet authors a flashcard set with its cards
// @Summary Create a flashcard set
// @Description Cards accept cards or flashcards; cards missing a side are skipped
// @Tags flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param set body FlashcardSetPayload true "Set with cards"
// @Success 201 {object} CreateSetResponse "Created set"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /flashcards/create [post]
func (h *FlashcardHandler) CreateSet(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload FlashcardSetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	setID, err := h.service.CreateSet(c, payload.toRequest(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateSetResponse{Message: "Flashcard set created", SetID: setID})
}

// ListSets lists flashcard sets newest first
// @Summary List flashcard sets
// @Tags flashcards
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum sets, every set when omitted or not positive"
// @Success 200 {array} models.FlashcardSet "Sets"
// @Router /flashcards [get]
func (h *FlashcardHandler) ListSets(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	sets, err := h.service.ListSets(c, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sets)
}

// GetSet returns a set with its cards in order
// @Summary Get a flashcard set
// @Tags flashcards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Success 200 {object} models.FlashcardSet "Set"
// @Failure 404 {object} ErrorResponse "Set not found"
// @Router /flashcards/{id} [get]
func (h *FlashcardHandler) GetSet(c *gin.Context) {
	setID, ok := pathID(c, "id")
	if !ok {
		return
	}

	set, err := h.service.GetSet(c, setID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// UpdateSet edits the title or description of a set
// @Summary Update a flashcard set
// @Tags flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Param set body service.UpdateFlashcardSetRequest true "Fields to change"
// @Success 200 {object} models.FlashcardSet "Updated set"
// @Failure 403 {object} ErrorResponse "Not the creator"
// @Failure 404 {object} ErrorResponse "Set not found"
// @Router /flashcards/{id} [put]
func (h *FlashcardHandler) UpdateSet(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	setID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateFlashcardSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	set, err := h.service.UpdateSet(c, userID, setID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// DeleteSet removes a set and its cards
// @Summary Delete a flashcard set
// @Tags flashcards
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Not the creator"
// @Failure 404 {object} ErrorResponse "Set not found"
// @Router /flashcards/{id} [delete]
func (h *FlashcardHandler) DeleteSet(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	setID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSet(c, userID, setID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CardResponse acknowledges a change to one card
type CardResponse struct {
	Message string `json:"message" example:"Flashcard updated"`
	CardID  uint   `json:"card_id" example:"12"`
}

// UpdateCard rewrites both sides of one card
// @Summary Update a flashcard
// @Description Accepts front_text or front and back_text or back
// @Tags flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Param card body service.UpdateCardRequest true "New sides"
// @Success 200 {object} CardResponse "Updated"
// @Failure 400 {object} ErrorResponse "Missing side"
// @Failure 403 {object} ErrorResponse "Not the creator"
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /flashcards/cards/{id} [put]
func (h *FlashcardHandler) UpdateCard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	req := &service.UpdateCardRequest{
		Front: firstString(raw, cardFrontKeys...),
		Back:  firstString(raw, cardBackKeys...),
	}
	if _, err := h.service.UpdateCard(c, userID, cardID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CardResponse{Message: "Flashcard updated", CardID: cardID})
}

// DeleteCard removes one card from its set
// @Summary Delete a flashcard
// @Tags flashcards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} CardResponse "Deleted"
// @Failure 403 {object} ErrorResponse "Not the creator"
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /flashcards/cards/{id} [delete]
func (h *FlashcardHandler) DeleteCard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCard(c, userID, cardID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CardResponse{Message: "Flashcard deleted", CardID: cardID})
}
