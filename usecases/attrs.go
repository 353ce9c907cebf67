package usecases

import (
	"errors"
	"strings"

	"recipe-api/entities"
	"recipe-api/repositories"

	"gorm.io/gorm"
)

// Tags and ingredients share the same rules: owned by the caller, name
// required, name unique per user ignoring case.

type TagUseCase struct {
	TagRepo repositories.TagRepository
}

func NewTagUseCase(tagRepo repositories.TagRepository) *TagUseCase {
	return &TagUseCase{TagRepo: tagRepo}
}

func (uc *TagUseCase) List(userID string) ([]entities.Tag, error) {
	return uc.TagRepo.GetAllByUserID(userID)
}

func (uc *TagUseCase) Create(userID, name string) (*entities.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := uc.TagRepo.GetByName(userID, name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &entities.Tag{UserID: userID, Name: name}
	if err := uc.TagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

type IngredientUseCase struct {
	IngredientRepo repositories.IngredientRepository
}

func NewIngredientUseCase(ingredientRepo repositories.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{IngredientRepo: ingredientRepo}
}

func (uc *IngredientUseCase) List(userID string) ([]entities.Ingredient, error) {
	return uc.IngredientRepo.GetAllByUserID(userID)
}

func (uc *IngredientUseCase) Create(userID, name string) (*entities.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := uc.IngredientRepo.GetByName(userID, name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredient := &entities.Ingredient{UserID: userID, Name: name}
	if err := uc.IngredientRepo.Create(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}
