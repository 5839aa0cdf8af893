package usecases

import (
	"errors"

	"recipe-server/entities"
	"recipe-server/repositories"
)

// Instructions shorter than this are rejected as too thin to follow.
const MinInstructionsLength = 20

// ValidationError marks input the caller can fix; handlers report it as 422.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type AuthUseCase struct {
	UserRepo repositories.UserRepository
}

func NewAuthUseCase(userRepo repositories.UserRepository) *AuthUseCase {
	return &AuthUseCase{UserRepo: userRepo}
}

// Signup creates a new user with a hashed password.
func (uc *AuthUseCase) Signup(username, password, imageURL, bio string) (*entities.User, error) {
	if username == "" {
		return nil, &ValidationError{Message: "username is required"}
	}
	if password == "" {
		return nil, &ValidationError{Message: "password is required"}
	}

	user := &entities.User{
		Username: username,
		ImageURL: imageURL,
		Bio:      bio,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Verify checks credentials. It returns (nil, nil) for an unknown username
// and for a wrong password alike, so callers cannot tell the cases apart.
func (uc *AuthUseCase) Verify(username, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !user.Authenticate(password) {
		return nil, nil
	}
	return user, nil
}

// GetByID retrieves a user by ID.
func (uc *AuthUseCase) GetByID(id string) (*entities.User, error) {
	if id == "" {
		return nil, repositories.ErrNotFound
	}
	return uc.UserRepo.GetByID(id)
}

type RecipeUseCase struct {
	RecipeRepo repositories.RecipeRepository
}

func NewRecipeUseCase(recipeRepo repositories.RecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{RecipeRepo: recipeRepo}
}

// Create validates and persists a recipe owned by ownerID.
func (uc *RecipeUseCase) Create(ownerID, title, instructions string, minutesToComplete int) (*entities.Recipe, error) {
	if ownerID == "" {
		return nil, &ValidationError{Message: "owner is required"}
	}
	if title == "" {
		return nil, &ValidationError{Message: "title is required"}
	}
	if instructions == "" {
		return nil, &ValidationError{Message: "instructions are required"}
	}
	if len(instructions) < MinInstructionsLength {
		return nil, &ValidationError{Message: "instructions must be at least 20 characters"}
	}
	if minutesToComplete <= 0 {
		return nil, &ValidationError{Message: "minutes_to_complete must be a positive integer"}
	}

	recipe := &entities.Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutesToComplete,
		UserID:            ownerID,
	}
	if err := uc.RecipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListForOwner returns only recipes owned by ownerID.
func (uc *RecipeUseCase) ListForOwner(ownerID string) ([]entities.Recipe, error) {
	if ownerID == "" {
		return nil, &ValidationError{Message: "owner is required"}
	}
	return uc.RecipeRepo.GetByUserID(ownerID)
}
