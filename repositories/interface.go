package repositories

import "recipe-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
}

type RecipeRepository interface {
	Create(recipe *entities.Recipe) error
	GetByUserID(userID string) ([]entities.Recipe, error)
}
