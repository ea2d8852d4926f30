package services

import (
	"context"

	"gin-pantry/dto"
	"gin-pantry/models"
	"gin-pantry/repositories"

	"gorm.io/datatypes"
)

const (
	WeekLength          = 7
	DefaultUpcomingSize = 5
)

type IMealPlanService interface {
	Add(ctx context.Context, userID uint, input dto.AddMealPlanInput) (*models.MealPlan, error)
	Weekly(ctx context.Context, userID uint, startDate string) ([]models.MealPlan, error)
	Upcoming(ctx context.Context, userID uint, limit int) ([]models.MealPlan, error)
	Stats(ctx context.Context, userID uint) (*dto.MealPlanStats, error)
	Delete(ctx context.Context, entryID uint, userID uint) (*models.MealPlan, error)
}

type MealPlanService struct {
	repository repositories.IMealPlanRepository
	recipes    repositories.IRecipeRepository
}

func NewMealPlanService(repository repositories.IMealPlanRepository, recipes repositories.IRecipeRepository) IMealPlanService {
	return &MealPlanService{repository: repository, recipes: recipes}
}

// Add schedules a recipe the user owns, replacing whatever occupied the slot.
func (s *MealPlanService) Add(ctx context.Context, userID uint, input dto.AddMealPlanInput) (*models.MealPlan, error) {
	mealDate, err := ParseDate(input.MealDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.recipes.FindById(ctx, input.RecipeID, userID); err != nil {
		return nil, err
	}

	return s.repository.Upsert(ctx, models.MealPlan{
		UserID:   userID,
		RecipeID: input.RecipeID,
		MealDate: datatypes.Date(mealDate),
		MealType: input.MealType,
	})
}

// Weekly returns the entries of the seven days starting at startDate.
func (s *MealPlanService) Weekly(ctx context.Context, userID uint, startDate string) ([]models.MealPlan, error) {
	if startDate == "" {
		return nil, ErrStartDateRequired
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	return s.repository.FindByDateRange(ctx, userID, start, start.AddDate(0, 0, WeekLength-1))
}

func (s *MealPlanService) Upcoming(ctx context.Context, userID uint, limit int) ([]models.MealPlan, error) {
	if limit <= 0 {
		limit = DefaultUpcomingSize
	}
	return s.repository.FindUpcoming(ctx, userID, today(), limit)
}

func (s *MealPlanService) Stats(ctx context.Context, userID uint) (*dto.MealPlanStats, error) {
	return s.repository.Stats(ctx, userID, today())
}

func (s *MealPlanService) Delete(ctx context.Context, entryID uint, userID uint) (*models.MealPlan, error) {
	return s.repository.Delete(ctx, entryID, userID)
}
