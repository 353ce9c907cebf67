package repositories

import (
	"recipe-api/db"
	"recipe-api/entities"
)

type tagPgRepository struct {
	db db.Database
}

func NewTagPgRepository(database db.Database) TagRepository {
	return &tagPgRepository{db: database}
}

func (r *tagPgRepository) Create(tag *entities.Tag) error {
	return r.db.GetDB().Create(tag).Error
}

func (r *tagPgRepository) GetAllByUserID(userID string) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.GetDB().Where("user_id = ?", userID).Order("name DESC").Find(&tags).Error
	return tags, err
}

func (r *tagPgRepository) GetByName(userID, name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.GetDB().
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagPgRepository) GetByIDs(userID string, ids []string) ([]entities.Tag, error) {
	var tags []entities.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.GetDB().Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error
	return tags, err
}
