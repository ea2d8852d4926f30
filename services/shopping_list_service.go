package services

import (
	"context"
	"fmt"
	"strings"

	"gin-pantry/dto"
	"gin-pantry/metrics"
	"gin-pantry/models"
	"gin-pantry/repositories"
	"gin-pantry/shopping"
)

type IShoppingListService interface {
	FindAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	FindGrouped(ctx context.Context, userID uint) ([]dto.ShoppingListGroup, error)
	Generate(ctx context.Context, userID uint, input dto.GenerateShoppingListInput) ([]models.ShoppingListItem, error)
	Create(ctx context.Context, userID uint, input dto.CreateShoppingListItemInput) (*models.ShoppingListItem, error)
	Update(ctx context.Context, itemID uint, userID uint, input dto.UpdateShoppingListItemInput) (*models.ShoppingListItem, error)
	Toggle(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error)
	Delete(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error)
	ClearChecked(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	ClearAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	AddCheckedToPantry(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type ShoppingListService struct {
	repository repositories.IShoppingListRepository
}

func NewShoppingListService(repository repositories.IShoppingListRepository) IShoppingListService {
	return &ShoppingListService{repository: repository}
}

func (s *ShoppingListService) FindAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.repository.FindAll(ctx, userID)
}

func (s *ShoppingListService) FindGrouped(ctx context.Context, userID uint) ([]dto.ShoppingListGroup, error) {
	items, err := s.repository.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return shopping.GroupByCategory(items), nil
}

// Generate rebuilds the meal-plan rows of the list for [start_date, end_date] and
// returns the whole list.
func (s *ShoppingListService) Generate(ctx context.Context, userID uint, input dto.GenerateShoppingListInput) ([]models.ShoppingListItem, error) {
	start, err := ParseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(input.EndDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	err = s.repository.GenerateFromMealPlan(ctx, userID, start, end)
	metrics.RecordShoppingGeneration(err == nil)
	if err != nil {
		return nil, fmt.Errorf("generate shopping list: %w", err)
	}
	return s.repository.FindAll(ctx, userID)
}

func (s *ShoppingListService) Create(ctx context.Context, userID uint, input dto.CreateShoppingListItemInput) (*models.ShoppingListItem, error) {
	name, err := requiredName(input.IngredientName)
	if err != nil {
		return nil, err
	}
	item := models.ShoppingListItem{
		UserID:         userID,
		IngredientName: name,
		Quantity:       input.Quantity,
		Unit:           input.Unit,
		Category:       categoryOrDefault(input.Category),
	}
	return s.repository.Create(ctx, item)
}

func (s *ShoppingListService) Update(ctx context.Context, itemID uint, userID uint, input dto.UpdateShoppingListItemInput) (*models.ShoppingListItem, error) {
	item, err := s.repository.FindById(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	if input.IngredientName != nil {
		if item.IngredientName, err = requiredName(*input.IngredientName); err != nil {
			return nil, err
		}
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Category != nil {
		item.Category = categoryOrDefault(*input.Category)
	}
	if input.IsChecked != nil {
		item.IsChecked = *input.IsChecked
	}
	return s.repository.Update(ctx, *item)
}

func (s *ShoppingListService) Toggle(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error) {
	return s.repository.ToggleChecked(ctx, itemID, userID)
}

func (s *ShoppingListService) Delete(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error) {
	return s.repository.Delete(ctx, itemID, userID)
}

func (s *ShoppingListService) ClearChecked(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.repository.ClearChecked(ctx, userID)
}

func (s *ShoppingListService) ClearAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.repository.ClearAll(ctx, userID)
}

func (s *ShoppingListService) AddCheckedToPantry(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.repository.MoveCheckedToPantry(ctx, userID)
}

func categoryOrDefault(category string) string {
	if strings.TrimSpace(category) == "" {
		return models.DefaultCategory
	}
	return category
}
