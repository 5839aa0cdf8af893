package repositories

import (
	"recipe-server/db"
	"recipe-server/entities"
)

type recipePgRepository struct {
	db db.Database
}

func NewRecipePgRepository(database db.Database) RecipeRepository {
	return &recipePgRepository{db: database}
}

func (r *recipePgRepository) Create(recipe *entities.Recipe) error {
	if err := r.db.GetDB().Create(recipe).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *recipePgRepository) GetByUserID(userID string) ([]entities.Recipe, error) {
	recipes := []entities.Recipe{}
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at ASC").Find(&recipes).Error
	if err != nil {
		return nil, translateError(err)
	}
	return recipes, nil
}
