package services

import (
	"context"

	"gin-pantry/dto"
	"gin-pantry/models"
	"gin-pantry/repositories"

	"gorm.io/datatypes"
)

const DefaultExpiringDays = 7

type IPantryService interface {
	FindAll(ctx context.Context, userID uint, filter dto.PantryFilter) ([]models.PantryItem, error)
	FindExpiring(ctx context.Context, userID uint, days int) ([]models.PantryItem, error)
	Stats(ctx context.Context, userID uint) (*dto.PantryStats, error)
	Create(ctx context.Context, userID uint, input dto.CreatePantryItemInput) (*models.PantryItem, error)
	Update(ctx context.Context, itemID uint, userID uint, input dto.UpdatePantryItemInput) (*models.PantryItem, error)
	Delete(ctx context.Context, itemID uint, userID uint) (*models.PantryItem, error)
}

type PantryService struct {
	repository repositories.IPantryRepository
}

func NewPantryService(repository repositories.IPantryRepository) IPantryService {
	return &PantryService{repository: repository}
}

func (s *PantryService) FindAll(ctx context.Context, userID uint, filter dto.PantryFilter) ([]models.PantryItem, error) {
	return s.repository.FindAll(ctx, userID, filter)
}

// FindExpiring returns items expiring between today and today+days inclusive.
func (s *PantryService) FindExpiring(ctx context.Context, userID uint, days int) ([]models.PantryItem, error) {
	if days <= 0 {
		days = DefaultExpiringDays
	}
	from := today()
	return s.repository.FindExpiring(ctx, userID, from, from.AddDate(0, 0, days))
}

func (s *PantryService) Stats(ctx context.Context, userID uint) (*dto.PantryStats, error) {
	return s.repository.Stats(ctx, userID, today())
}

func (s *PantryService) Create(ctx context.Context, userID uint, input dto.CreatePantryItemInput) (*models.PantryItem, error) {
	name, err := requiredName(input.Name)
	if err != nil {
		return nil, err
	}
	expiration, err := parseOptionalDate(input.ExpirationDate)
	if err != nil {
		return nil, err
	}
	newItem := models.PantryItem{
		UserID:         userID,
		Name:           name,
		Quantity:       input.Quantity,
		Unit:           input.Unit,
		Category:       input.Category,
		ExpirationDate: expiration,
		IsRunningLow:   input.IsRunningLow,
	}
	return s.repository.Create(ctx, newItem)
}

func (s *PantryService) Update(ctx context.Context, itemID uint, userID uint, input dto.UpdatePantryItemInput) (*models.PantryItem, error) {
	targetItem, err := s.repository.FindById(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if targetItem.Name, err = requiredName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Quantity != nil {
		targetItem.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		targetItem.Unit = *input.Unit
	}
	if input.Category != nil {
		targetItem.Category = *input.Category
	}
	if input.ExpirationDate != nil {
		expiration, err := parseOptionalDate(input.ExpirationDate)
		if err != nil {
			return nil, err
		}
		targetItem.ExpirationDate = expiration
	}
	if input.IsRunningLow != nil {
		targetItem.IsRunningLow = *input.IsRunningLow
	}
	return s.repository.Update(ctx, *targetItem)
}

func (s *PantryService) Delete(ctx context.Context, itemID uint, userID uint) (*models.PantryItem, error) {
	return s.repository.Delete(ctx, itemID, userID)
}

// parseOptionalDate treats nil and "" as no date.
func parseOptionalDate(value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
