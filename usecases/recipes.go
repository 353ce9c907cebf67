package usecases

import (
	"errors"
	"io"

	"recipe-api/entities"
	"recipe-api/repositories"
	"recipe-api/storage"

	"gorm.io/gorm"
)

type RecipeUseCase struct {
	RecipeRepo     repositories.RecipeRepository
	TagRepo        repositories.TagRepository
	IngredientRepo repositories.IngredientRepository
	Images         *storage.ImageStore
}

func NewRecipeUseCase(recipeRepo repositories.RecipeRepository, tagRepo repositories.TagRepository, ingredientRepo repositories.IngredientRepository, images *storage.ImageStore) *RecipeUseCase {
	return &RecipeUseCase{
		RecipeRepo:     recipeRepo,
		TagRepo:        tagRepo,
		IngredientRepo: ingredientRepo,
		Images:         images,
	}
}

// RecipeInput is shared by create, full update and partial update. Nil
// fields are "not provided".
type RecipeInput struct {
	Title         *string   `json:"title"`
	Minutes       *int      `json:"minutes"`
	Price         *float64  `json:"price"`
	Link          *string   `json:"link"`
	TagIDs        *[]string `json:"tags"`
	IngredientIDs *[]string `json:"ingredients"`
}

func (uc *RecipeUseCase) List(userID string, filter repositories.RecipeFilter) ([]entities.Recipe, error) {
	return uc.RecipeRepo.GetAllByUserID(userID, filter)
}

func (uc *RecipeUseCase) Get(userID, id string) (*entities.Recipe, error) {
	recipe, err := uc.RecipeRepo.GetByID(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Someone else's recipe and a nonexistent one look the same.
		return nil, ErrNotFound
	}
	return recipe, err
}

func (uc *RecipeUseCase) Create(userID string, in RecipeInput) (*entities.Recipe, error) {
	if in.Title == nil || *in.Title == "" {
		return nil, ErrTitleRequired
	}

	recipe := &entities.Recipe{UserID: userID, Title: *in.Title}
	if in.Minutes != nil {
		recipe.Minutes = *in.Minutes
	}
	if in.Price != nil {
		recipe.Price = *in.Price
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}
	if recipe.Minutes < 0 || recipe.Price < 0 {
		return nil, ErrNegativeValue
	}

	tags, err := uc.resolveTags(userID, in.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := uc.resolveIngredients(userID, in.IngredientIDs)
	if err != nil {
		return nil, err
	}
	recipe.Tags, recipe.Ingredients = tags, ingredients

	if err := uc.RecipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a full (PUT) or partial (PATCH) update. A full update
// requires the title and resets every omitted field.
func (uc *RecipeUseCase) Update(userID, id string, in RecipeInput, partial bool) (*entities.Recipe, error) {
	recipe, err := uc.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if !partial {
		if in.Title == nil || *in.Title == "" {
			return nil, ErrTitleRequired
		}
		recipe.Minutes, recipe.Price, recipe.Link = 0, 0, ""
		if in.TagIDs == nil {
			in.TagIDs = &[]string{}
		}
		if in.IngredientIDs == nil {
			in.IngredientIDs = &[]string{}
		}
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, ErrTitleRequired
		}
		recipe.Title = *in.Title
	}
	if in.Minutes != nil {
		recipe.Minutes = *in.Minutes
	}
	if in.Price != nil {
		recipe.Price = *in.Price
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}
	if recipe.Minutes < 0 || recipe.Price < 0 {
		return nil, ErrNegativeValue
	}

	// Validate the whole payload before writing anything.
	var tags []entities.Tag
	if in.TagIDs != nil {
		var err error
		if tags, err = uc.resolveTags(userID, in.TagIDs); err != nil {
			return nil, err
		}
	}
	var ingredients []entities.Ingredient
	if in.IngredientIDs != nil {
		var err error
		if ingredients, err = uc.resolveIngredients(userID, in.IngredientIDs); err != nil {
			return nil, err
		}
	}

	if err := uc.RecipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	if in.TagIDs != nil {
		if err := uc.RecipeRepo.ReplaceTags(recipe, tags); err != nil {
			return nil, err
		}
	}
	if in.IngredientIDs != nil {
		if err := uc.RecipeRepo.ReplaceIngredients(recipe, ingredients); err != nil {
			return nil, err
		}
	}

	return recipe, nil
}

func (uc *RecipeUseCase) Delete(userID, id string) error {
	rows, err := uc.RecipeRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachImage validates ownership, stores the uploaded payload and links it
// to the recipe, removing any previous image file.
func (uc *RecipeUseCase) AttachImage(userID, id string, payload io.Reader) (*entities.Recipe, error) {
	recipe, err := uc.Get(userID, id)
	if err != nil {
		return nil, err
	}

	path, err := uc.Images.Save(payload)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotAnImage):
			return nil, ErrNotAnImage
		case errors.Is(err, storage.ErrTooLarge):
			return nil, ErrImageTooLarge
		}
		return nil, err
	}

	oldPath := recipe.ImagePath
	recipe.ImagePath = path
	if err := uc.RecipeRepo.Update(recipe); err != nil {
		_ = uc.Images.Remove(path)
		return nil, err
	}
	if oldPath != "" {
		_ = uc.Images.Remove(oldPath)
	}
	return recipe, nil
}

// resolveTags maps ids to the caller's own tags; any unknown or foreign id
// fails the whole request.
func (uc *RecipeUseCase) resolveTags(userID string, ids *[]string) ([]entities.Tag, error) {
	if ids == nil || len(*ids) == 0 {
		return []entities.Tag{}, nil
	}
	tags, err := uc.TagRepo.GetByIDs(userID, *ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(*ids)) {
		return nil, ErrUnknownAttr
	}
	return tags, nil
}

func (uc *RecipeUseCase) resolveIngredients(userID string, ids *[]string) ([]entities.Ingredient, error) {
	if ids == nil || len(*ids) == 0 {
		return []entities.Ingredient{}, nil
	}
	ingredients, err := uc.IngredientRepo.GetByIDs(userID, *ids)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(uniqueIDs(*ids)) {
		return nil, ErrUnknownAttr
	}
	return ingredients, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
