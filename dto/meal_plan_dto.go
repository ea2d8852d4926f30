package dto

type AddMealPlanInput struct {
	RecipeID uint   `json:"recipe_id" binding:"required"`
	MealDate string `json:"meal_date" binding:"required,datetime=2006-01-02"`
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner"`
}

type MealPlanStats struct {
	TotalPlannedMeals int64 `json:"total_planned_meals"`
	ThisWeekCount     int64 `json:"this_week_count"`
}
