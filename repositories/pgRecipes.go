package repositories

import (
	"recipe-api/db"
	"recipe-api/entities"
)

type recipePgRepository struct {
	db db.Database
}

func NewRecipePgRepository(database db.Database) RecipeRepository {
	return &recipePgRepository{db: database}
}

func (r *recipePgRepository) Create(recipe *entities.Recipe) error {
	// Associations are replaced explicitly so existing tag/ingredient rows
	// are never re-created.
	tags, ingredients := recipe.Tags, recipe.Ingredients
	if err := r.db.GetDB().Omit("Tags", "Ingredients").Create(recipe).Error; err != nil {
		return err
	}
	if err := r.ReplaceTags(recipe, tags); err != nil {
		return err
	}
	return r.ReplaceIngredients(recipe, ingredients)
}

func (r *recipePgRepository) GetByID(userID, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.GetDB().
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipePgRepository) GetAllByUserID(userID string, filter RecipeFilter) ([]entities.Recipe, error) {
	q := r.db.GetDB().Model(&entities.Recipe{}).Where("recipes.user_id = ?", userID)

	// Intersection semantics: the recipe must carry every requested id. The
	// ids are deduplicated first so the HAVING count compares against the
	// distinct set, not the raw input length.
	if tagIDs := uniqueIDs(filter.TagIDs); len(tagIDs) > 0 {
		sub := r.db.GetDB().
			Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Where("recipe_tags.tag_id IN ?", tagIDs).
			Group("recipe_tags.recipe_id").
			Having("COUNT(DISTINCT recipe_tags.tag_id) = ?", len(tagIDs))
		q = q.Where("recipes.id IN (?)", sub)
	}
	if ingredientIDs := uniqueIDs(filter.IngredientIDs); len(ingredientIDs) > 0 {
		sub := r.db.GetDB().
			Table("recipe_ingredients").
			Select("recipe_ingredients.recipe_id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs).
			Group("recipe_ingredients.recipe_id").
			Having("COUNT(DISTINCT recipe_ingredients.ingredient_id) = ?", len(ingredientIDs))
		q = q.Where("recipes.id IN (?)", sub)
	}

	var recipes []entities.Recipe
	err := q.Preload("Tags").Preload("Ingredients").
		Order("recipes.created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipePgRepository) Update(recipe *entities.Recipe) error {
	return r.db.GetDB().Omit("Tags", "Ingredients").Save(recipe).Error
}

func (r *recipePgRepository) ReplaceTags(recipe *entities.Recipe, tags []entities.Tag) error {
	assoc := r.db.GetDB().Model(recipe).Association("Tags")
	if len(tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return err
		}
	} else if err := assoc.Replace(tags); err != nil {
		return err
	}
	recipe.Tags = tags
	return nil
}

func (r *recipePgRepository) ReplaceIngredients(recipe *entities.Recipe, ingredients []entities.Ingredient) error {
	assoc := r.db.GetDB().Model(recipe).Association("Ingredients")
	if len(ingredients) == 0 {
		if err := assoc.Clear(); err != nil {
			return err
		}
	} else if err := assoc.Replace(ingredients); err != nil {
		return err
	}
	recipe.Ingredients = ingredients
	return nil
}

func (r *recipePgRepository) Delete(userID, id string) (int64, error) {
	res := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Recipe{})
	return res.RowsAffected, res.Error
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
