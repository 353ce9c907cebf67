package repositories

import (
	"time"

	"recipe-api/entities"
)

// Ownership-scoped methods always take the owner's user id as an explicit
// argument so the authorization boundary stays visible at every call site.

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
}

type TokenRepository interface {
	Create(token *entities.AuthToken) error
	GetByKey(key string) (*entities.AuthToken, error)
	GetLiveByUserID(userID string, now time.Time) (*entities.AuthToken, error)
	DeleteByUserID(userID string) error
}

type TagRepository interface {
	Create(tag *entities.Tag) error
	GetAllByUserID(userID string) ([]entities.Tag, error)
	GetByName(userID, name string) (*entities.Tag, error)
	GetByIDs(userID string, ids []string) ([]entities.Tag, error)
}

type IngredientRepository interface {
	Create(ingredient *entities.Ingredient) error
	GetAllByUserID(userID string) ([]entities.Ingredient, error)
	GetByName(userID, name string) (*entities.Ingredient, error)
	GetByIDs(userID string, ids []string) ([]entities.Ingredient, error)
}

// RecipeFilter narrows a list query. A recipe matches only if it carries
// every tag id and every ingredient id listed here.
type RecipeFilter struct {
	TagIDs        []string
	IngredientIDs []string
}

type RecipeRepository interface {
	Create(recipe *entities.Recipe) error
	GetByID(userID, id string) (*entities.Recipe, error)
	GetAllByUserID(userID string, filter RecipeFilter) ([]entities.Recipe, error)
	Update(recipe *entities.Recipe) error
	ReplaceTags(recipe *entities.Recipe, tags []entities.Tag) error
	ReplaceIngredients(recipe *entities.Recipe, ingredients []entities.Ingredient) error
	Delete(userID, id string) (int64, error)
}
