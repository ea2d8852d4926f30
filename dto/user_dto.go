package dto

type UpdateProfileInput struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type UpdatePreferencesInput struct {
	DietaryRestrictions *[]string `json:"dietary_restrictions"`
	Allergies           *[]string `json:"allergies"`
	PreferredCuisines   *[]string `json:"preferred_cuisines"`
	DefaultServings     *int      `json:"default_servings" binding:"omitempty,min=1"`
	MeasurementUnit     *string   `json:"measurement_unit" binding:"omitempty,oneof=metric imperial"`
}
