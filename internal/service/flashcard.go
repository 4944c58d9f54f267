package service

import (
	"context"
	"fmt"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CardInput is one card being authored, in set order
type CardInput struct {
	Front string `json:"front_text" validate:"required"`
	Back  string `json:"back_text" validate:"required"`
}

// CreateFlashcardSetRequest represents the request to author a set with all its cards
type CreateFlashcardSetRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description *string     `json:"description,omitempty"`
	CourseID    *uint       `json:"course_id,omitempty"`
	CreatorID   uint        `json:"creator_id" validate:"required"`
	Cards       []CardInput `json:"cards" validate:"dive"`
}

// UpdateCardRequest replaces both sides of one card
type UpdateCardRequest struct {
	Front string `json:"front_text" validate:"required"`
	Back  string `json:"back_text" validate:"required"`
}

// UpdateFlashcardSetRequest represents the editable fields of a set
type UpdateFlashcardSetRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
}

// FlashcardService handles flashcard set authoring and maintenance
type FlashcardService struct {
	tx        repository.Transactor
	repos     *repository.Repositories
	publisher events.Publisher
	validator *validator.Validate
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(tx repository.Transactor, repos *repository.Repositories, publisher events.Publisher, validator *validator.Validate) *FlashcardService {
	return &FlashcardService{
		tx:        tx,
		repos:     repos,
		publisher: publisher,
		validator: validator,
	}
}

// CreateSet inserts the set and its cards as one unit
func (s *FlashcardService) CreateSet(ctx context.Context, req *CreateFlashcardSetRequest) (uint, error) {
	req.Title = cleanText(req.Title)
	req.Description = cleanOptional(req.Description)
	for i := range req.Cards {
		req.Cards[i].Front = cleanText(req.Cards[i].Front)
		req.Cards[i].Back = cleanText(req.Cards[i].Back)
	}
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}

	set := &models.FlashcardSet{
		Title:       req.Title,
		Description: req.Description,
		CourseID:    req.CourseID,
		CreatorID:   req.CreatorID,
	}

	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Flashcards.CreateSet(ctx, set); err != nil {
			return fmt.Errorf("failed to create flashcard set: %w", err)
		}
		for i, c := range req.Cards {
			card := &models.Flashcard{
				SetID:     set.SetID,
				FrontText: c.Front,
				BackText:  c.Back,
				Position:  i + 1,
			}
			if err := tx.Flashcards.CreateCard(ctx, card); err != nil {
				return fmt.Errorf("failed to create card %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.FlashcardSetCreated,
		Key:     fmt.Sprintf("flashcard_set:%d", set.SetID),
		ActorID: req.CreatorID,
		Data:    map[string]interface{}{"set_id": set.SetID, "cards": len(req.Cards)},
	})
	return set.SetID, nil
}

// GetSet returns a set with its cards
func (s *FlashcardService) GetSet(ctx context.Context, setID uint) (*models.FlashcardSet, error) {
	set, err := s.repos.Flashcards.GetWithCards(ctx, setID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrFlashcardSetNotFound, "load flashcard set")
	}
	return set, nil
}

// ListSets returns set headers newest first. A limit of 0 or less lists every set.
func (s *FlashcardService) ListSets(ctx context.Context, limit int) ([]models.FlashcardSet, error) {
	sets, err := s.repos.Flashcards.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcard sets: %w", err)
	}
	return sets, nil
}

// UpdateSet changes the title and description. Only the creator may update a set.
func (s *FlashcardService) UpdateSet(ctx context.Context, userID, setID uint, req *UpdateFlashcardSetRequest) (*models.FlashcardSet, error) {
	if req.Title != nil {
		cleaned := cleanText(*req.Title)
		req.Title = &cleaned
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = cleanOptional(req.Description)
	}

	var updated *models.FlashcardSet
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		set, err := tx.Flashcards.GetByID(ctx, setID)
		if err != nil {
			return notFound(err, apperrors.ErrFlashcardSetNotFound, "load flashcard set")
		}
		if set.CreatorID != userID {
			return apperrors.ErrNotSetCreator
		}
		if len(updates) > 0 {
			if err := tx.Flashcards.UpdateSet(ctx, setID, updates); err != nil {
				return fmt.Errorf("failed to update flashcard set: %w", err)
			}
		}
		updated, err = tx.Flashcards.GetByID(ctx, setID)
		if err != nil {
			return fmt.Errorf("failed to reload flashcard set: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSet removes a set and its cards. Only the creator may delete a set.
func (s *FlashcardService) DeleteSet(ctx context.Context, userID, setID uint) error {
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		set, err := tx.Flashcards.GetByID(ctx, setID)
		if err != nil {
			return notFound(err, apperrors.ErrFlashcardSetNotFound, "load flashcard set")
		}
		if set.CreatorID != userID {
			return apperrors.ErrNotSetCreator
		}
		if err := tx.Flashcards.DeleteSet(ctx, setID); err != nil {
			return fmt.Errorf("failed to delete flashcard set: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.FlashcardSetDeleted,
		Key:     fmt.Sprintf("flashcard_set:%d", setID),
		ActorID: userID,
		Data:    map[string]interface{}{"set_id": setID},
	})
	return nil
}

// cardOwnedBy loads a card and checks that userID created the set it belongs to
func cardOwnedBy(ctx context.Context, tx *repository.Repositories, userID, cardID uint) (*models.Flashcard, error) {
	card, err := tx.Flashcards.GetCard(ctx, cardID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrFlashcardNotFound, "load flashcard")
	}
	set, err := tx.Flashcards.GetByID(ctx, card.SetID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrFlashcardSetNotFound, "load flashcard set")
	}
	if set.CreatorID != userID {
		return nil, apperrors.ErrNotSetCreator
	}
	return card, nil
}

// UpdateCard rewrites one card of a set created by userID
func (s *FlashcardService) UpdateCard(ctx context.Context, userID, cardID uint, req *UpdateCardRequest) (*models.Flashcard, error) {
	req.Front = cleanText(req.Front)
	req.Back = cleanText(req.Back)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	var updated *models.Flashcard
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := cardOwnedBy(ctx, tx, userID, cardID); err != nil {
			return err
		}
		if err := tx.Flashcards.UpdateCard(ctx, cardID, req.Front, req.Back); err != nil {
			return fmt.Errorf("failed to update flashcard: %w", err)
		}
		var err error
		updated, err = tx.Flashcards.GetCard(ctx, cardID)
		if err != nil {
			return fmt.Errorf("failed to reload flashcard: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCard removes one card of a set created by userID
func (s *FlashcardService) DeleteCard(ctx context.Context, userID, cardID uint) error {
	return s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := cardOwnedBy(ctx, tx, userID, cardID); err != nil {
			return err
		}
		if err := tx.Flashcards.DeleteCard(ctx, cardID); err != nil {
			return fmt.Errorf("failed to delete flashcard: %w", err)
		}
		return nil
	})
}
