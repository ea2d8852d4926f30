package constants

// Context keys set by the auth middleware
const (
	ContextUserID    = "userID"
	ContextToken     = "token"
	ContextRequestID = "requestID"
)

// Error messages
const (
	ErrInvalidID            = "Invalid id"
	ErrInvalidInput         = "Invalid input"
	ErrUnauthorized         = "Access token missing, access denied"
	ErrInvalidToken         = "Invalid or expired token"
	ErrInvalidCredentials   = "Invalid email or password"
	ErrInvalidPassword      = "Invalid current password"
	ErrEmailInUse           = "Email already in use"
	ErrUserNotFound         = "User not found"
	ErrPantryItemNotFound   = "Pantry item not found"
	ErrRecipeNotFound       = "Recipe not found"
	ErrMealPlanNotFound     = "Meal plan entry not found"
	ErrShoppingItemNotFound = "Shopping list item not found"
	ErrIngredientsRequired  = "At least one ingredient is required to generate a recipe"
	ErrInvalidDateRange     = "Start date must not be after end date"
	ErrStartDateRequired    = "Start date is required"
	ErrRateLimited          = "Too many requests, please slow down"
	ErrAIUnavailable        = "Recipe generation is not configured"
)
