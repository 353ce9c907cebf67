package repositories

import (
	"recipe-api/db"
	"recipe-api/entities"
)

type ingredientPgRepository struct {
	db db.Database
}

func NewIngredientPgRepository(database db.Database) IngredientRepository {
	return &ingredientPgRepository{db: database}
}

func (r *ingredientPgRepository) Create(ingredient *entities.Ingredient) error {
	return r.db.GetDB().Create(ingredient).Error
}

func (r *ingredientPgRepository) GetAllByUserID(userID string) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	err := r.db.GetDB().Where("user_id = ?", userID).Order("name DESC").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientPgRepository) GetByName(userID, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	err := r.db.GetDB().
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientPgRepository) GetByIDs(userID string, ids []string) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.GetDB().Where("user_id = ? AND id IN ?", userID, ids).Find(&ingredients).Error
	return ingredients, err
}
