package repository

import (
	"context"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlashcardRepository handles database operations for flashcard sets and cards
type FlashcardRepository struct {
	db *gorm.DB
}

// NewFlashcardRepository creates a new flashcard repository
func NewFlashcardRepository(db *gorm.DB) *FlashcardRepository {
	return &FlashcardRepository{db: db}
}

// CreateSet inserts the set header only
func (r *FlashcardRepository) CreateSet(ctx context.Context, set *models.FlashcardSet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(set).Error
}

// CreateCard inserts one card
func (r *FlashcardRepository) CreateCard(ctx context.Context, card *models.Flashcard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetByID retrieves a set header
func (r *FlashcardRepository) GetByID(ctx context.Context, id uint) (*models.FlashcardSet, error) {
	var set models.FlashcardSet
	if err := r.db.WithContext(ctx).First(&set, "set_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

// GetWithCards retrieves a set with its cards in authoring order
func (r *FlashcardRepository) GetWithCards(ctx context.Context, id uint) (*models.FlashcardSet, error) {
	var set models.FlashcardSet
	err := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position").Order("card_id")
		}).
		First(&set, "set_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// List retrieves set headers, newest first. A limit of 0 or less returns every set.
func (r *FlashcardRepository) List(ctx context.Context, limit int) ([]models.FlashcardSet, error) {
	var sets []models.FlashcardSet
	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("set_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

// UpdateSet applies column updates to a set header
func (r *FlashcardRepository) UpdateSet(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.FlashcardSet{}).
		Where("set_id = ?", id).
		Updates(updates).Error
}

// DeleteSet removes a set and its cards
func (r *FlashcardRepository) DeleteSet(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("set_id = ?", id).Delete(&models.Flashcard{}).Error; err != nil {
		return err
	}
	return db.Where("set_id = ?", id).Delete(&models.FlashcardSet{}).Error
}

// GetCard retrieves one card
func (r *FlashcardRepository) GetCard(ctx context.Context, cardID uint) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := r.db.WithContext(ctx).First(&card, "card_id = ?", cardID).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard replaces both sides of a card
func (r *FlashcardRepository) UpdateCard(ctx context.Context, cardID uint, front, back string) error {
	return r.db.WithContext(ctx).Model(&models.Flashcard{}).
		Where("card_id = ?", cardID).
		Updates(map[string]interface{}{"front_text": front, "back_text": back}).Error
}

// DeleteCard removes one card. Positions of the remaining cards are left as they are.
func (r *FlashcardRepository) DeleteCard(ctx context.Context, cardID uint) error {
	return r.db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&models.Flashcard{}).Error
}
